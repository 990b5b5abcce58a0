package services

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"travelsynth/internal/models/response_models"
	"travelsynth/pkg/utils"
)

// rawExcerptLimit bounds the diagnostic prefix attached to parse failures,
// so error messages never carry an unbounded model response.
const rawExcerptLimit = 300

// Models are told to answer with bare JSON but sometimes wrap it in a
// markdown fence anyway. When several fences are present the first
// json-tagged one wins.
var fencedJSONPattern = regexp.MustCompile("(?s)```json\\s*(.*?)\\s*```")

// NormalizeItinerary turns raw generation output into a validated
// ItineraryDocument. It is pure: no I/O, no state. Fallback order is fixed:
// direct parse, then fenced-block parse, then failure.
func NormalizeItinerary(raw string) (*response_models.ItineraryDocument, error) {
	payload, err := extractJSONPayload(raw)
	if err != nil {
		return nil, err
	}

	var doc response_models.ItineraryDocument
	if err := json.Unmarshal(payload, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrInvalidShape, err)
	}

	if err := validateDocument(&doc); err != nil {
		return nil, err
	}

	return &doc, nil
}

func extractJSONPayload(raw string) ([]byte, error) {
	direct := strings.TrimSpace(raw)
	if json.Valid([]byte(direct)) {
		return []byte(direct), nil
	}

	if match := fencedJSONPattern.FindStringSubmatch(raw); match != nil {
		fenced := strings.TrimSpace(match[1])
		if json.Valid([]byte(fenced)) {
			return []byte(fenced), nil
		}
	}

	return nil, fmt.Errorf("%w: response starts with: %s", utils.ErrMalformedOutput, truncateRaw(raw))
}

func validateDocument(doc *response_models.ItineraryDocument) error {
	if len(doc.Days) == 0 {
		return fmt.Errorf("%w: days must be a non-empty list", utils.ErrInvalidShape)
	}

	for i, day := range doc.Days {
		if day.Day < 1 {
			return fmt.Errorf("%w: days[%d].day must be a positive number", utils.ErrInvalidShape, i)
		}
		if strings.TrimSpace(day.Title) == "" {
			return fmt.Errorf("%w: days[%d].title is missing", utils.ErrInvalidShape, i)
		}
		// An empty activities list is fine, a missing field is not.
		if day.Activities == nil {
			return fmt.Errorf("%w: days[%d].activities is missing", utils.ErrInvalidShape, i)
		}
		for j, activity := range *day.Activities {
			if activity.Detail != nil && strings.TrimSpace(activity.Detail.Description) == "" {
				return fmt.Errorf("%w: days[%d].activities[%d].description is missing", utils.ErrInvalidShape, i, j)
			}
		}
	}

	return nil
}

func truncateRaw(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if len(trimmed) <= rawExcerptLimit {
		return trimmed
	}
	// Back up to a rune boundary so the excerpt stays valid UTF-8.
	cut := rawExcerptLimit
	for cut > 0 && !utf8.RuneStart(trimmed[cut]) {
		cut--
	}
	return trimmed[:cut] + "..."
}
