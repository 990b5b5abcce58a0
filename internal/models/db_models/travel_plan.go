package db_models

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
)

// TravelPlan is a generated itinerary owned by exactly one account.
// Ownership never changes after creation and there is no update path:
// a plan is created once and lives until its owner deletes it.
type TravelPlan struct {
	BaseModel
	UserID      uuid.UUID `gorm:"type:uuid;index"`
	Destination string
	Days        int
	Interests   pq.StringArray `gorm:"type:text[]"`
	Budget      string
	// The validated AI output, stored verbatim. The database never
	// interprets its internal shape.
	Itinerary datatypes.JSON `gorm:"type:jsonb"`
}
