package db_models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
)

type Trip struct {
	BaseModel
	Title               string
	Destinations        pq.StringArray `gorm:"type:text[]"`
	StartDate           int64          // unix seconds
	EndDate             *int64
	TotalDays           int
	TotalExperiences    int
	TotalTransitMinutes int
	// Raw leg input the itinerary was generated from, kept for regeneration.
	Legs datatypes.JSON `gorm:"type:jsonb;default:'[]'"`

	Days []TripDay
}

type TripDay struct {
	BaseModel
	TripID       uuid.UUID `gorm:"index"`
	Date         time.Time
	DayNumber    int
	LegRef       string
	IsTransition bool
	FromLegRef   string
	ToLegRef     string
	Note         string

	Items []TripItem
}

type TripItem struct {
	BaseModel
	TripDayID uuid.UUID `gorm:"index"`
	// Deterministic scheduler key ("exp-<id>", "transit-<a>-<b>", ...).
	ItemKey         string
	Kind            string
	Title           string
	StartTime       string // "HH:MM"
	EndTime         string // "HH:MM"
	DurationMinutes int
	Mode            string
	DistanceKm      float64
	FlightNumber    string
	Location        string
	Position        int
}
