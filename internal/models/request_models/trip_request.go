package request_models

type SaveTripRequest struct {
	Title     string         `json:"title" binding:"required"`
	Legs      []TripLegInput `json:"legs" binding:"required"`
	StartDate string         `json:"start_date"`
	StartHour int            `json:"start_hour"`
}

type CreateExperienceRequest struct {
	Name            string   `json:"name" binding:"required"`
	Destination     string   `json:"destination" binding:"required"`
	Category        string   `json:"category"`
	DurationMinutes int      `json:"duration_minutes"`
	Latitude        *float64 `json:"latitude"`
	Longitude       *float64 `json:"longitude"`
	Tip             string   `json:"tip"`
	Tags            []string `json:"tags"`
}
