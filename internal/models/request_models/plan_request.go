package request_models

import (
	"fmt"
	"strings"

	"travelsynth/pkg/utils"
)

const (
	MinTripDays = 1
	MaxTripDays = 30
)

var budgetOptions = []string{"Budget-friendly", "Mid-range", "Luxury"}

// GeneratePlanRequest carries the user's trip parameters. Validate must
// pass before anything downstream (prompt, AI call, insert) is attempted.
type GeneratePlanRequest struct {
	Destination string `json:"destination"`
	Days        int    `json:"days"`
	Interests   string `json:"interests"` // comma-separated, e.g. "temples, food"
	Budget      string `json:"budget"`
}

func (r *GeneratePlanRequest) Validate() error {
	if len(strings.TrimSpace(r.Destination)) < 2 {
		return fmt.Errorf("%w: destination must be at least 2 characters", utils.ErrInvalidInput)
	}
	if r.Days < MinTripDays || r.Days > MaxTripDays {
		return fmt.Errorf("%w: days must be between %d and %d", utils.ErrInvalidInput, MinTripDays, MaxTripDays)
	}
	if len(strings.TrimSpace(r.Interests)) < 3 {
		return fmt.Errorf("%w: interests must be at least 3 characters", utils.ErrInvalidInput)
	}
	if normalizeBudget(r.Budget) == "" {
		return fmt.Errorf("%w: budget must be one of %s", utils.ErrInvalidInput, strings.Join(budgetOptions, ", "))
	}
	return nil
}

// NormalizedBudget returns the canonical spelling of a valid budget tier,
// or "" when the tier is unknown.
func (r *GeneratePlanRequest) NormalizedBudget() string {
	return normalizeBudget(r.Budget)
}

// InterestTags splits the free-text interests into a cleaned tag list.
func (r *GeneratePlanRequest) InterestTags() []string {
	parts := strings.Split(r.Interests, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		if tag := strings.TrimSpace(p); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}

func normalizeBudget(budget string) string {
	for _, option := range budgetOptions {
		if strings.EqualFold(strings.TrimSpace(budget), option) {
			return option
		}
	}
	return ""
}
