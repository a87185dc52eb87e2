package services

import (
	"time"

	"tripweave/internal/models/request_models"
	"tripweave/internal/models/response_models"
	"tripweave/pkg/utils"
)

// LegDayCount resolves how many days a leg spans: an explicit Days value
// wins, then the inclusive start/end date span, then a single day.
func LegDayCount(leg request_models.TripLegInput) int {
	if leg.Days > 0 {
		return leg.Days
	}
	start, end := utils.ParseDate(leg.StartDate), utils.ParseDate(leg.EndDate)
	if !start.IsZero() && !end.IsZero() && !end.Before(start) {
		return int(end.Sub(start).Hours()/24) + 1
	}
	return 1
}

// GenerateFullItinerary turns ordered trip legs into a flat, chronologically
// ordered day list: an arrival day for the first leg, content days per leg
// (one day of each leg is reserved for arrival or transition overhead), a
// transition day between consecutive legs, and a final departure day. Day
// numbers increase globally across leg boundaries.
//
// The function is pure: identical input yields identical output, and an empty
// leg list yields an empty itinerary with zero totals.
func GenerateFullItinerary(legs []request_models.TripLegInput, startDate time.Time, startHour int) response_models.ItineraryResponse {
	out := response_models.ItineraryResponse{
		Days: []response_models.ItineraryDay{},
		Summary: response_models.ItinerarySummary{
			LegBreakdown: []response_models.LegBreakdown{},
		},
	}
	if len(legs) == 0 {
		return out
	}

	cur := startDate
	dayNumber := 1

	appendDay := func(day response_models.ItineraryDay) {
		day.DayNumber = dayNumber
		out.Days = append(out.Days, day)
		dayNumber++
		cur = cur.AddDate(0, 0, 1)
	}

	for i, leg := range legs {
		if i == 0 {
			appendDay(BuildArrivalDay(cur, leg))
		}

		contentDays := LegDayCount(leg) - 1
		if contentDays < 0 {
			contentDays = 0
		}
		for _, dayExps := range DistributeAcrossDays(leg.Experiences, contentDays) {
			day := response_models.ItineraryDay{
				Date:  utils.FormatDate(cur),
				LegID: leg.ID,
				Items: BuildDaySchedule(dayExps, startHour),
			}
			if len(day.Items) == 0 {
				day.Note = "Free day"
			}
			appendDay(day)
		}

		if i < len(legs)-1 {
			appendDay(BuildTransitionDay(cur, leg, legs[i+1]))
		}
	}

	appendDay(BuildDepartureDay(cur, legs[len(legs)-1]))

	daysPerLeg := make(map[string]int, len(legs))
	for _, day := range out.Days {
		if day.LegID != "" {
			daysPerLeg[day.LegID]++
		}
		for _, item := range day.Items {
			if item.Kind == response_models.ItemKindTransit {
				out.Summary.TotalTransitMinutes += item.DurationMinutes
			}
		}
	}
	for _, leg := range legs {
		out.Summary.TotalExperiences += len(leg.Experiences)
		out.Summary.LegBreakdown = append(out.Summary.LegBreakdown, response_models.LegBreakdown{
			LegID:       leg.ID,
			Destination: leg.Destination,
			Days:        daysPerLeg[leg.ID],
			Experiences: len(leg.Experiences),
		})
	}
	out.TotalDays = len(out.Days)

	return out
}

// RegenerateDay rebuilds the full item schedule for one day from an ordered
// experience list, keeping the day's identity fields.
func RegenerateDay(day request_models.DayInput, exps []request_models.ExperienceInput) response_models.ItineraryDay {
	out := response_models.ItineraryDay{
		Date:      day.Date,
		DayNumber: day.DayNumber,
		LegID:     day.LegID,
		Items:     BuildDaySchedule(exps, day.StartHour),
	}
	if len(out.Items) == 0 {
		out.Note = "Free day"
	}
	return out
}
