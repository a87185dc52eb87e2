package db_models

import "github.com/lib/pq"

type Experience struct {
	BaseModel
	Name            string
	Destination     string `gorm:"index"`
	Category        string
	DurationMinutes int
	Latitude        *float64
	Longitude       *float64
	Tip             string
	Tags            pq.StringArray `gorm:"type:text[]"`
}
