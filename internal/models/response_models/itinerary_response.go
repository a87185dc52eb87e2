package response_models

const (
	ItemKindExperience = "experience"
	ItemKindTransit    = "transit"
	ItemKindFlight     = "flight"
	ItemKindHotel      = "hotel"
)

// ItineraryItem is one scheduled unit of time within a day.
// EndTime always equals StartTime plus DurationMinutes under the day's
// single assumed timezone.
type ItineraryItem struct {
	ID              string  `json:"id"`
	Kind            string  `json:"kind"`
	Title           string  `json:"title"`
	StartTime       string  `json:"start_time"` // "HH:MM"
	EndTime         string  `json:"end_time"`   // "HH:MM"
	DurationMinutes int     `json:"duration_minutes"`
	Mode            string  `json:"mode,omitempty"` // transit: "walk" | "drive"
	DistanceKm      float64 `json:"distance_km,omitempty"`
	FlightNumber    string  `json:"flight_number,omitempty"`
	Location        string  `json:"location,omitempty"`
	Tip             string  `json:"tip,omitempty"`
}

type ItineraryDay struct {
	Date         string          `json:"date"` // "2006-01-02"
	DayNumber    int             `json:"day_number"`
	LegID        string          `json:"leg_id,omitempty"`
	IsTransition bool            `json:"is_transition,omitempty"`
	FromLegID    string          `json:"from_leg_id,omitempty"`
	ToLegID      string          `json:"to_leg_id,omitempty"`
	Note         string          `json:"note,omitempty"`
	Items        []ItineraryItem `json:"items"`
}

type LegBreakdown struct {
	LegID       string `json:"leg_id"`
	Destination string `json:"destination"`
	Days        int    `json:"days"`
	Experiences int    `json:"experiences"`
}

type ItinerarySummary struct {
	TotalExperiences    int            `json:"total_experiences"`
	TotalTransitMinutes int            `json:"total_transit_minutes"`
	LegBreakdown        []LegBreakdown `json:"leg_breakdown"`
}

type ItineraryResponse struct {
	Days      []ItineraryDay   `json:"days"`
	TotalDays int              `json:"total_days"`
	Summary   ItinerarySummary `json:"summary"`
}

type MoveItemResponse struct {
	FromDay ItineraryDay `json:"from_day"`
	ToDay   ItineraryDay `json:"to_day"`
}
