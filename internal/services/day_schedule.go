package services

import (
	"fmt"
	"math"

	"tripweave/internal/models/request_models"
	"tripweave/internal/models/response_models"
	"tripweave/pkg/utils"
)

const (
	// DefaultStartHour is when the first activity of a content day begins.
	DefaultStartHour = 9
	// Idle minutes between consecutive activities, not emitted as an item.
	activityBufferMinutes = 15
)

// BuildDaySchedule lays out one day's experiences on a running clock starting
// at startHour. A transit item is inserted between consecutive experiences
// when both carry coordinates. Item IDs are derived from the experience IDs
// so the UI can re-key stably across regenerations.
//
// The clock wraps modulo 24 hours; an overlong day wraps its displayed times
// without advancing the calendar date.
func BuildDaySchedule(exps []request_models.ExperienceInput, startHour int) []response_models.ItineraryItem {
	if startHour <= 0 {
		startHour = DefaultStartHour
	}

	items := make([]response_models.ItineraryItem, 0, len(exps)*2)
	clock := startHour * 60

	for i, e := range exps {
		if i > 0 {
			prev := exps[i-1]
			if prev.Coordinates != nil && e.Coordinates != nil {
				distanceKm := Haversine(*prev.Coordinates, *e.Coordinates)
				transit := TransitMinutes(distanceKm)
				items = append(items, response_models.ItineraryItem{
					ID:              fmt.Sprintf("transit-%s-%s", prev.ID, e.ID),
					Kind:            response_models.ItemKindTransit,
					Title:           fmt.Sprintf("Travel to %s", e.Name),
					StartTime:       utils.FormatMinutesOfDay(clock),
					EndTime:         utils.FormatMinutesOfDay(clock + transit),
					DurationMinutes: transit,
					Mode:            TransitMode(distanceKm),
					DistanceKm:      math.Round(distanceKm*10) / 10,
				})
				clock += transit
			}
		}

		duration := ResolveDuration(e.Duration, e.Category)
		items = append(items, response_models.ItineraryItem{
			ID:              fmt.Sprintf("exp-%s", e.ID),
			Kind:            response_models.ItemKindExperience,
			Title:           e.Name,
			StartTime:       utils.FormatMinutesOfDay(clock),
			EndTime:         utils.FormatMinutesOfDay(clock + duration),
			DurationMinutes: duration,
			Tip:             e.Tip,
		})
		clock += duration + activityBufferMinutes
	}

	return items
}
