package services

import (
	"reflect"
	"testing"
	"time"

	"tripweave/internal/models/request_models"
	"tripweave/internal/models/response_models"
)

func singleLegTrip() []request_models.TripLegInput {
	return []request_models.TripLegInput{
		{
			ID:          "bcn",
			Destination: "Barcelona",
			Days:        3,
			Hotel:       &request_models.HotelInput{Name: "Hotel Arts"},
			Experiences: []request_models.ExperienceInput{
				{ID: "beach", Name: "Bogatell beach", Category: "beach", Coordinates: coord(41.3920, 2.2070)},
				{ID: "picasso", Name: "Picasso museum", Category: "museum", Coordinates: coord(41.3851, 2.1810)},
				{ID: "miro", Name: "Miro foundation", Category: "museum", Coordinates: coord(41.3880, 2.1850)},
				{ID: "jazz", Name: "Jazz club", Category: "nightlife", Coordinates: coord(41.3900, 2.1740)},
			},
		},
	}
}

func TestGenerateFullItinerarySingleLeg(t *testing.T) {
	start := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	res := GenerateFullItinerary(singleLegTrip(), start, 9)

	// Arrival, two content days, departure.
	if res.TotalDays != 4 || len(res.Days) != 4 {
		t.Fatalf("expected 4 days, got %d", len(res.Days))
	}

	wantDates := []string{"2024-06-01", "2024-06-02", "2024-06-03", "2024-06-04"}
	for i, day := range res.Days {
		if day.Date != wantDates[i] {
			t.Fatalf("day %d date = %s, want %s", i, day.Date, wantDates[i])
		}
		if day.DayNumber != i+1 {
			t.Fatalf("day %d number = %d, want %d", i, day.DayNumber, i+1)
		}
	}

	if res.Days[0].Note != "Arrival day" {
		t.Fatalf("first day note = %q", res.Days[0].Note)
	}
	// No inbound flight on the leg, so the arrival day holds only check-in.
	if len(res.Days[0].Items) != 1 || res.Days[0].Items[0].Kind != response_models.ItemKindHotel {
		t.Fatalf("arrival items: %+v", res.Days[0].Items)
	}
	if res.Days[0].Items[0].Title != "Check in at Hotel Arts" {
		t.Fatalf("check-in title = %q", res.Days[0].Items[0].Title)
	}

	if res.Days[3].Note != "Departure day" {
		t.Fatalf("last day note = %q", res.Days[3].Note)
	}

	if res.Summary.TotalExperiences != 4 {
		t.Fatalf("total experiences = %d, want 4", res.Summary.TotalExperiences)
	}
	if len(res.Summary.LegBreakdown) != 1 || res.Summary.LegBreakdown[0].LegID != "bcn" {
		t.Fatalf("leg breakdown: %+v", res.Summary.LegBreakdown)
	}

	// Every requested experience appears exactly once across content days,
	// and the morning beach comes before the evening club.
	placed := make(map[string]int)
	beachDay, jazzDay := -1, -1
	for i, day := range res.Days {
		for _, item := range day.Items {
			if item.Kind != response_models.ItemKindExperience {
				continue
			}
			placed[item.ID]++
			switch item.ID {
			case "exp-beach":
				beachDay = i
			case "exp-jazz":
				jazzDay = i
			}
		}
	}
	if len(placed) != 4 {
		t.Fatalf("placed %d distinct experiences, want 4: %v", len(placed), placed)
	}
	for id, n := range placed {
		if n != 1 {
			t.Fatalf("experience %s scheduled %d times", id, n)
		}
	}
	if beachDay < 0 || jazzDay < 0 || beachDay > jazzDay {
		t.Fatalf("beach (day %d) should not come after jazz (day %d)", beachDay, jazzDay)
	}
}

func TestGenerateFullItineraryTransitionWithoutFlights(t *testing.T) {
	legs := []request_models.TripLegInput{
		{ID: "bcn", Destination: "Barcelona", Days: 2},
		{ID: "val", Destination: "Valencia", Days: 2},
	}

	start := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	res := GenerateFullItinerary(legs, start, 9)

	var transition *response_models.ItineraryDay
	for i := range res.Days {
		if res.Days[i].IsTransition {
			transition = &res.Days[i]
			break
		}
	}
	if transition == nil {
		t.Fatalf("no transition day between legs")
	}
	if transition.FromLegID != "bcn" || transition.ToLegID != "val" {
		t.Fatalf("transition legs: %s -> %s", transition.FromLegID, transition.ToLegID)
	}
	if len(transition.Items) != 3 {
		t.Fatalf("transition should have checkout, transit, check-in; got %d", len(transition.Items))
	}
	travel := transition.Items[1]
	if travel.Kind != response_models.ItemKindTransit || travel.Mode != TransitModeDrive {
		t.Fatalf("no flight data should fall back to a drive, got %+v", travel)
	}
	if travel.StartTime != "12:00" || travel.EndTime != "16:00" {
		t.Fatalf("drive window = %s-%s, want 12:00-16:00", travel.StartTime, travel.EndTime)
	}
}

func TestGenerateFullItineraryUsesFlightTimes(t *testing.T) {
	legs := []request_models.TripLegInput{
		{
			ID:            "bcn",
			Destination:   "Barcelona",
			Days:          2,
			InboundFlight: &request_models.FlightInput{FlightNumber: "VY1001", DepartureTime: "08:30", ArrivalTime: "11:45"},
		},
	}

	start := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	res := GenerateFullItinerary(legs, start, 9)

	arrival := res.Days[0].Items[0]
	if arrival.Kind != response_models.ItemKindFlight || arrival.FlightNumber != "VY1001" {
		t.Fatalf("arrival flight: %+v", arrival)
	}
	if arrival.StartTime != "08:30" || arrival.EndTime != "11:45" {
		t.Fatalf("flight window = %s-%s, want booked times", arrival.StartTime, arrival.EndTime)
	}
}

func TestGenerateFullItineraryDeterministic(t *testing.T) {
	start := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	first := GenerateFullItinerary(singleLegTrip(), start, 9)
	second := GenerateFullItinerary(singleLegTrip(), start, 9)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("identical input produced different itineraries")
	}
}

func TestGenerateFullItineraryEmpty(t *testing.T) {
	res := GenerateFullItinerary(nil, time.Now(), 9)
	if len(res.Days) != 0 || res.TotalDays != 0 {
		t.Fatalf("empty legs should yield an empty itinerary, got %+v", res)
	}
	if res.Summary.TotalExperiences != 0 || res.Summary.TotalTransitMinutes != 0 {
		t.Fatalf("empty legs should yield zero totals, got %+v", res.Summary)
	}
}

func TestLegDayCount(t *testing.T) {
	cases := []struct {
		leg  request_models.TripLegInput
		want int
	}{
		{request_models.TripLegInput{Days: 4}, 4},
		{request_models.TripLegInput{StartDate: "2024-06-01", EndDate: "2024-06-03"}, 3},
		{request_models.TripLegInput{StartDate: "2024-06-01", EndDate: "2024-06-01"}, 1},
		{request_models.TripLegInput{}, 1},
		{request_models.TripLegInput{StartDate: "garbage", EndDate: "2024-06-03"}, 1},
	}
	for i, c := range cases {
		if got := LegDayCount(c.leg); got != c.want {
			t.Fatalf("case %d: LegDayCount = %d, want %d", i, got, c.want)
		}
	}
}
