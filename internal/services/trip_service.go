package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"tripweave/internal/models/request_models"
	"tripweave/internal/models/response_models"
	"tripweave/internal/repositories"
	"tripweave/pkg/logger"
	"tripweave/pkg/utils"
)

type TripServiceInterface interface {
	SaveTrip(ctx context.Context, req request_models.SaveTripRequest) (uuid.UUID, error)
	GetTripById(ctx context.Context, tripId string) (*response_models.TripDetailResponse, error)
	ListTrips(ctx context.Context, page int, pageSize int) ([]response_models.TripResponse, error)
	DeleteTrip(ctx context.Context, tripId string) error
}

type TripService struct {
	tripRepo    repositories.TripRepository
	itineraries ItineraryServiceInterface
	logger      logger.Logger
}

func NewTripService(tripRepo repositories.TripRepository, itineraries ItineraryServiceInterface, log logger.Logger) TripServiceInterface {
	return &TripService{
		tripRepo:    tripRepo,
		itineraries: itineraries,
		logger:      log,
	}
}

// SaveTrip generates a fresh itinerary from the request legs and
// materializes it wholesale into trip/day/item rows.
func (s *TripService) SaveTrip(ctx context.Context, req request_models.SaveTripRequest) (uuid.UUID, error) {
	if req.Title == "" || len(req.Legs) == 0 {
		return uuid.Nil, utils.ErrInvalidInput
	}

	genReq := request_models.GenerateItineraryRequest{
		Legs:      req.Legs,
		StartDate: req.StartDate,
		StartHour: req.StartHour,
	}
	itinerary, err := s.itineraries.GenerateItinerary(ctx, genReq)
	if err != nil {
		return uuid.Nil, err
	}

	legsJSON, err := json.Marshal(req.Legs)
	if err != nil {
		return uuid.Nil, utils.ErrInvalidInput
	}

	destinations := make([]string, 0, len(req.Legs))
	for _, leg := range req.Legs {
		destinations = append(destinations, leg.Destination)
	}

	tripID, err := s.tripRepo.ReplaceMaterializedItinerary(ctx, nil, itinerary, &repositories.CreateTripInput{
		Title:        req.Title,
		StartDate:    resolveTripStart(genReq),
		Destinations: destinations,
		Legs:         legsJSON,
	})
	if err != nil {
		s.logger.Error("failed to persist trip", "error", err)
		return uuid.Nil, utils.ErrDatabaseError
	}

	s.logger.Info("trip saved", "trip_id", tripID.String(), "days", itinerary.TotalDays)
	return tripID, nil
}

func (s *TripService) GetTripById(ctx context.Context, tripId string) (*response_models.TripDetailResponse, error) {
	trip, err := s.tripRepo.GetTripById(ctx, tripId)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if trip == nil {
		return nil, utils.ErrTripNotFound
	}

	out := &response_models.TripDetailResponse{
		ID:                  trip.ID.String(),
		Title:               trip.Title,
		Destinations:        trip.Destinations,
		StartDate:           formatUnixDate(trip.StartDate),
		TotalDays:           trip.TotalDays,
		TotalExperiences:    trip.TotalExperiences,
		TotalTransitMinutes: trip.TotalTransitMinutes,
		Days:                make([]response_models.ItineraryDay, 0, len(trip.Days)),
	}
	if trip.EndDate != nil {
		out.EndDate = formatUnixDate(*trip.EndDate)
	}

	for _, d := range trip.Days {
		day := response_models.ItineraryDay{
			Date:         utils.FormatDate(d.Date),
			DayNumber:    d.DayNumber,
			LegID:        d.LegRef,
			IsTransition: d.IsTransition,
			FromLegID:    d.FromLegRef,
			ToLegID:      d.ToLegRef,
			Note:         d.Note,
			Items:        make([]response_models.ItineraryItem, 0, len(d.Items)),
		}
		for _, it := range d.Items {
			day.Items = append(day.Items, response_models.ItineraryItem{
				ID:              it.ItemKey,
				Kind:            it.Kind,
				Title:           it.Title,
				StartTime:       it.StartTime,
				EndTime:         it.EndTime,
				DurationMinutes: it.DurationMinutes,
				Mode:            it.Mode,
				DistanceKm:      it.DistanceKm,
				FlightNumber:    it.FlightNumber,
				Location:        it.Location,
			})
		}
		out.Days = append(out.Days, day)
	}

	return out, nil
}

func (s *TripService) ListTrips(ctx context.Context, page int, pageSize int) ([]response_models.TripResponse, error) {
	trips, err := s.tripRepo.ListTrips(ctx, page, pageSize)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.TripResponse, 0, len(trips))
	for _, trip := range trips {
		item := response_models.TripResponse{
			ID:           trip.ID.String(),
			Title:        trip.Title,
			Destinations: trip.Destinations,
			StartDate:    formatUnixDate(trip.StartDate),
			TotalDays:    trip.TotalDays,
		}
		if trip.EndDate != nil {
			item.EndDate = formatUnixDate(*trip.EndDate)
		}
		out = append(out, item)
	}
	return out, nil
}

func (s *TripService) DeleteTrip(ctx context.Context, tripId string) error {
	trip, err := s.tripRepo.GetTripById(ctx, tripId)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if trip == nil {
		return utils.ErrTripNotFound
	}
	if err := s.tripRepo.DeleteTrip(ctx, tripId); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func formatUnixDate(sec int64) string {
	if sec <= 0 {
		return ""
	}
	return utils.FormatDate(time.Unix(sec, 0).UTC())
}
