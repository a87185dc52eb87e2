package services

import (
	"fmt"
	"time"

	"tripweave/internal/models/request_models"
	"tripweave/internal/models/response_models"
	"tripweave/pkg/utils"
)

// Fixed wall-clock windows for bookend items when real booking data is
// missing. The itinerary is never blocked on absent flight or hotel data.
const (
	arrivalFlightStart     = "10:00"
	arrivalFlightEnd       = "14:00"
	checkInStart           = "15:00"
	checkInEnd             = "16:00"
	checkOutStart          = "10:00"
	checkOutEnd            = "11:00"
	transitionFlightStart  = "14:00"
	transitionFlightEnd    = "16:00"
	transitionDriveStart   = "12:00"
	transitionDriveEnd     = "16:00"
	transitionCheckInStart = "17:00"
	transitionCheckInEnd   = "18:00"
	departureFlightStart   = "14:00"
	departureFlightEnd     = "20:00"
)

func clockItem(id, kind, title, start, end, location string) response_models.ItineraryItem {
	return response_models.ItineraryItem{
		ID:              id,
		Kind:            kind,
		Title:           title,
		StartTime:       start,
		EndTime:         end,
		DurationMinutes: utils.ClockSpanMinutes(start, end),
		Location:        location,
	}
}

func flightItem(id, title string, flight *request_models.FlightInput, fallbackStart, fallbackEnd, location string) response_models.ItineraryItem {
	start, end := fallbackStart, fallbackEnd
	if flight != nil && utils.ParseClock(flight.DepartureTime) >= 0 && utils.ParseClock(flight.ArrivalTime) >= 0 {
		start, end = flight.DepartureTime, flight.ArrivalTime
	}
	item := clockItem(id, response_models.ItemKindFlight, title, start, end, location)
	if flight != nil {
		item.FlightNumber = flight.FlightNumber
	}
	return item
}

func hotelTitle(action string, hotel *request_models.HotelInput) string {
	if hotel != nil && hotel.Name != "" {
		return fmt.Sprintf("%s at %s", action, hotel.Name)
	}
	return fmt.Sprintf("Hotel %s", action)
}

// BuildArrivalDay synthesizes the first day of the trip: the inbound flight
// when one is attached to the leg, then a fixed hotel check-in window.
func BuildArrivalDay(date time.Time, leg request_models.TripLegInput) response_models.ItineraryDay {
	items := make([]response_models.ItineraryItem, 0, 2)

	if leg.InboundFlight != nil {
		items = append(items, flightItem(
			fmt.Sprintf("flight-arrival-%s", leg.ID),
			fmt.Sprintf("Flight to %s", leg.Destination),
			leg.InboundFlight,
			arrivalFlightStart, arrivalFlightEnd,
			leg.Destination,
		))
	}

	items = append(items, clockItem(
		fmt.Sprintf("hotel-checkin-%s", leg.ID),
		response_models.ItemKindHotel,
		hotelTitle("Check in", leg.Hotel),
		checkInStart, checkInEnd,
		leg.Destination,
	))

	return response_models.ItineraryDay{
		Date:  utils.FormatDate(date),
		LegID: leg.ID,
		Note:  "Arrival day",
		Items: items,
	}
}

// BuildTransitionDay synthesizes the day spent moving between two legs:
// checkout, then the connecting flight — the departing leg's outbound is
// preferred over the arriving leg's inbound — or a generic four-hour drive
// when neither leg carries flight data, then check-in at the new hotel.
func BuildTransitionDay(date time.Time, from, to request_models.TripLegInput) response_models.ItineraryDay {
	items := make([]response_models.ItineraryItem, 0, 3)

	items = append(items, clockItem(
		fmt.Sprintf("hotel-checkout-%s", from.ID),
		response_models.ItemKindHotel,
		hotelTitle("Check out", from.Hotel),
		checkOutStart, checkOutEnd,
		from.Destination,
	))

	flight := from.OutboundFlight
	if flight == nil {
		flight = to.InboundFlight
	}
	if flight != nil {
		items = append(items, flightItem(
			fmt.Sprintf("flight-%s-%s", from.ID, to.ID),
			fmt.Sprintf("Flight to %s", to.Destination),
			flight,
			transitionFlightStart, transitionFlightEnd,
			to.Destination,
		))
	} else {
		transit := clockItem(
			fmt.Sprintf("transit-%s-%s", from.ID, to.ID),
			response_models.ItemKindTransit,
			fmt.Sprintf("Travel to %s", to.Destination),
			transitionDriveStart, transitionDriveEnd,
			to.Destination,
		)
		transit.Mode = TransitModeDrive
		items = append(items, transit)
	}

	items = append(items, clockItem(
		fmt.Sprintf("hotel-checkin-%s", to.ID),
		response_models.ItemKindHotel,
		hotelTitle("Check in", to.Hotel),
		transitionCheckInStart, transitionCheckInEnd,
		to.Destination,
	))

	return response_models.ItineraryDay{
		Date:         utils.FormatDate(date),
		IsTransition: true,
		FromLegID:    from.ID,
		ToLegID:      to.ID,
		Note:         "Transfer day",
		Items:        items,
	}
}

// BuildDepartureDay synthesizes the final day: checkout plus the outbound
// flight when one is attached to the last leg.
func BuildDepartureDay(date time.Time, leg request_models.TripLegInput) response_models.ItineraryDay {
	items := make([]response_models.ItineraryItem, 0, 2)

	items = append(items, clockItem(
		fmt.Sprintf("hotel-checkout-%s", leg.ID),
		response_models.ItemKindHotel,
		hotelTitle("Check out", leg.Hotel),
		checkOutStart, checkOutEnd,
		leg.Destination,
	))

	if leg.OutboundFlight != nil {
		items = append(items, flightItem(
			fmt.Sprintf("flight-departure-%s", leg.ID),
			fmt.Sprintf("Flight from %s", leg.Destination),
			leg.OutboundFlight,
			departureFlightStart, departureFlightEnd,
			leg.Destination,
		))
	}

	return response_models.ItineraryDay{
		Date:  utils.FormatDate(date),
		LegID: leg.ID,
		Note:  "Departure day",
		Items: items,
	}
}
