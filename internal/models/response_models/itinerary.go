package response_models

import (
	"bytes"
	"encoding/json"
	"errors"
)

// ItineraryDocument is the structured itinerary returned by the generation
// service and persisted verbatim with the plan.
type ItineraryDocument struct {
	Days []DayPlan `json:"days"`
}

// DayPlan is one day of the itinerary. Activities is a pointer so that a
// missing "activities" key can be told apart from a present-but-empty list;
// only the latter is a valid document.
type DayPlan struct {
	Day        int         `json:"day"`
	Title      string      `json:"title"`
	Activities *[]Activity `json:"activities"`
	Notes      string      `json:"notes,omitempty"`
}

// Activity accepts two shapes for backward compatibility: early plans stored
// a bare description string, newer ones a structured record.
type Activity struct {
	Plain  string
	Detail *ActivityDetail
}

type ActivityDetail struct {
	Time          string `json:"time"`
	Description   string `json:"description"`
	EstimatedCost string `json:"estimated_cost,omitempty"`
	BookingInfo   string `json:"booking_info,omitempty"`
	Alternatives  string `json:"alternatives,omitempty"`
}

var errActivityShape = errors.New("activity must be a string or an object")

func (a *Activity) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return errActivityShape
	}

	switch trimmed[0] {
	case '"':
		a.Detail = nil
		return json.Unmarshal(trimmed, &a.Plain)
	case '{':
		detail := &ActivityDetail{}
		if err := json.Unmarshal(trimmed, detail); err != nil {
			return err
		}
		a.Plain = ""
		a.Detail = detail
		return nil
	default:
		return errActivityShape
	}
}

func (a Activity) MarshalJSON() ([]byte, error) {
	if a.Detail != nil {
		return json.Marshal(a.Detail)
	}
	return json.Marshal(a.Plain)
}
