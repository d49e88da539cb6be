package db_models

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
)

// SavedTrip is a built itinerary a user chose to keep. The full day-by-day
// document is stored as JSON; list views only need the scalar columns.
type SavedTrip struct {
	BaseModel
	UserID       uuid.UUID `gorm:"type:uuid;index"`
	Title        string
	DurationDays int
	Cities       pq.StringArray `gorm:"type:text[]"`
	Pace         string
	Generator    string
	TotalRMB     float64
	TotalUSD     float64
	Document     datatypes.JSON `gorm:"type:jsonb"`
}
