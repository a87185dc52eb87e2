package request_models

import (
	"encoding/json"
	"strconv"
	"strings"
)

type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// FlexDuration carries a duration as it arrives from the upstream providers:
// either a plain number of minutes or a string ("PT2H30M", "2 hours 15 min").
// Resolution to minutes happens once, in the scheduler's duration resolver.
type FlexDuration struct {
	minutes    int
	text       string
	hasMinutes bool
}

func DurationMinutes(m int) FlexDuration {
	return FlexDuration{minutes: m, hasMinutes: true}
}

func DurationText(s string) FlexDuration {
	return FlexDuration{text: s}
}

func (d FlexDuration) Minutes() (int, bool) {
	return d.minutes, d.hasMinutes
}

func (d FlexDuration) Text() string {
	return d.text
}

func (d FlexDuration) IsZero() bool {
	return !d.hasMinutes && d.text == ""
}

func (d *FlexDuration) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "null" || s == "" {
		*d = FlexDuration{}
		return nil
	}
	if s[0] == '"' {
		var text string
		if err := json.Unmarshal(b, &text); err != nil {
			return err
		}
		*d = FlexDuration{text: text}
		return nil
	}
	// Providers occasionally send fractional minutes; truncate.
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return err
	}
	*d = FlexDuration{minutes: int(f), hasMinutes: true}
	return nil
}

func (d FlexDuration) MarshalJSON() ([]byte, error) {
	if d.hasMinutes {
		return json.Marshal(d.minutes)
	}
	if d.text != "" {
		return json.Marshal(d.text)
	}
	return []byte("null"), nil
}

type ExperienceInput struct {
	ID          string       `json:"id" binding:"required"`
	Name        string       `json:"name"`
	Category    string       `json:"category"`
	Duration    FlexDuration `json:"duration"`
	Coordinates *Coordinates `json:"coordinates"`
	Tip         string       `json:"tip,omitempty"`
}

type FlightInput struct {
	FlightNumber string `json:"flight_number"`
	// Local wall-clock times, "HH:MM"; empty means unknown.
	DepartureTime string `json:"departure_time"`
	ArrivalTime   string `json:"arrival_time"`
}

type HotelInput struct {
	Name string `json:"name"`
}

type TripLegInput struct {
	ID          string       `json:"id" binding:"required"`
	Destination string       `json:"destination"`
	Coordinates *Coordinates `json:"coordinates"`
	// StartDate/EndDate are "2006-01-02"; Days wins when both are present.
	StartDate      string            `json:"start_date"`
	EndDate        string            `json:"end_date"`
	Days           int               `json:"days"`
	InboundFlight  *FlightInput      `json:"inbound_flight"`
	OutboundFlight *FlightInput      `json:"outbound_flight"`
	Hotel          *HotelInput       `json:"hotel"`
	Experiences    []ExperienceInput `json:"experiences"`
}

type GenerateItineraryRequest struct {
	Legs []TripLegInput `json:"legs" binding:"required"`
	// Trip start date, "2006-01-02". Falls back to the first leg's start date.
	StartDate string `json:"start_date"`
	// Hour the first activity of a content day starts at. Defaults to 9.
	StartHour int `json:"start_hour"`
}

type DayInput struct {
	Date        string            `json:"date"`
	DayNumber   int               `json:"day_number"`
	LegID       string            `json:"leg_id"`
	StartHour   int               `json:"start_hour"`
	Experiences []ExperienceInput `json:"experiences" binding:"required"`
}

type ReorderDayRequest struct {
	Day       DayInput `json:"day" binding:"required"`
	FromIndex int      `json:"from_index"`
	ToIndex   int      `json:"to_index"`
}

type MoveItemRequest struct {
	FromDay   DayInput `json:"from_day" binding:"required"`
	ToDay     DayInput `json:"to_day" binding:"required"`
	FromIndex int      `json:"from_index"`
	ToIndex   int      `json:"to_index"`
}
