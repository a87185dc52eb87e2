package response_models

type TripResponse struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Destinations []string `json:"destinations"`
	StartDate    string   `json:"start_date"`
	EndDate      string   `json:"end_date"`
	TotalDays    int      `json:"total_days"`
}

type TripDetailResponse struct {
	ID                  string         `json:"id"`
	Title               string         `json:"title"`
	Destinations        []string       `json:"destinations"`
	StartDate           string         `json:"start_date"`
	EndDate             string         `json:"end_date"`
	TotalDays           int            `json:"total_days"`
	TotalExperiences    int            `json:"total_experiences"`
	TotalTransitMinutes int            `json:"total_transit_minutes"`
	Days                []ItineraryDay `json:"days"`
}

type ExperienceResponse struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Destination     string   `json:"destination"`
	Category        string   `json:"category"`
	DurationMinutes int      `json:"duration_minutes"`
	Latitude        *float64 `json:"latitude,omitempty"`
	Longitude       *float64 `json:"longitude,omitempty"`
	Tip             string   `json:"tip,omitempty"`
	Tags            []string `json:"tags,omitempty"`
}
