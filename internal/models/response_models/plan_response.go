package response_models

// GenerationResult is the uniform outcome of a generation request. Every
// pipeline failure is converted into this shape; nothing throws past the
// orchestrator boundary.
type GenerationResult struct {
	Success bool   `json:"success"`
	PlanID  string `json:"plan_id,omitempty"`
	Error   string `json:"error,omitempty"`
}

// PlanSummary is the dashboard card view of a plan.
type PlanSummary struct {
	ID          string   `json:"id"`
	Destination string   `json:"destination"`
	Days        int      `json:"days"`
	Interests   []string `json:"interests"`
	Budget      string   `json:"budget"`
	CreatedAt   int64    `json:"created_at"`
}

// PlanDetail is the full plan view including the stored itinerary.
type PlanDetail struct {
	PlanSummary
	Itinerary ItineraryDocument `json:"itinerary"`
}
