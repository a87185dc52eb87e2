package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	"tripweave/internal/models/request_models"
	"tripweave/internal/models/response_models"
	"tripweave/pkg/logger"
	"tripweave/pkg/metrics"
	"tripweave/pkg/utils"
)

const itineraryCacheTTL = 10 * time.Minute

type ItineraryServiceInterface interface {
	GenerateItinerary(ctx context.Context, req request_models.GenerateItineraryRequest) (*response_models.ItineraryResponse, error)
	ReorderDayItems(ctx context.Context, req request_models.ReorderDayRequest) (*response_models.ItineraryDay, error)
	MoveItemBetweenDays(ctx context.Context, req request_models.MoveItemRequest) (*response_models.MoveItemResponse, error)
}

type ItineraryService struct {
	cache   ItineraryCache
	logger  logger.Logger
	metrics *metrics.Metrics
}

func NewItineraryService(cache ItineraryCache, log logger.Logger, m *metrics.Metrics) ItineraryServiceInterface {
	return &ItineraryService{
		cache:   cache,
		logger:  log,
		metrics: m,
	}
}

func (s *ItineraryService) GenerateItinerary(ctx context.Context, req request_models.GenerateItineraryRequest) (*response_models.ItineraryResponse, error) {
	key := requestKey(req)
	if cached, ok := s.cache.Get(ctx, key); ok {
		return cached, nil
	}

	started := time.Now()
	itinerary := GenerateFullItinerary(req.Legs, resolveTripStart(req), req.StartHour)
	s.metrics.ItinerariesGenerated.Inc()
	s.metrics.GenerationTime.Observe(time.Since(started).Seconds())

	s.logger.Info("itinerary generated",
		"legs", len(req.Legs),
		"total_days", itinerary.TotalDays,
		"total_experiences", itinerary.Summary.TotalExperiences,
	)

	s.cache.Set(ctx, key, &itinerary, itineraryCacheTTL)
	return &itinerary, nil
}

func (s *ItineraryService) ReorderDayItems(ctx context.Context, req request_models.ReorderDayRequest) (*response_models.ItineraryDay, error) {
	exps := req.Day.Experiences
	if req.FromIndex < 0 || req.FromIndex >= len(exps) || req.ToIndex < 0 || req.ToIndex >= len(exps) {
		s.metrics.ErrorsCount.WithLabelValues("reorder_day").Inc()
		return nil, utils.ErrInvalidInput
	}

	reordered := make([]request_models.ExperienceInput, 0, len(exps))
	reordered = append(reordered, exps...)
	moved := reordered[req.FromIndex]
	reordered = append(reordered[:req.FromIndex], reordered[req.FromIndex+1:]...)
	reordered = append(reordered[:req.ToIndex], append([]request_models.ExperienceInput{moved}, reordered[req.ToIndex:]...)...)

	day := RegenerateDay(req.Day, reordered)
	s.metrics.DaysReordered.Inc()
	return &day, nil
}

// MoveItemBetweenDays relocates an experience and regenerates the full
// schedule of both affected days.
func (s *ItineraryService) MoveItemBetweenDays(ctx context.Context, req request_models.MoveItemRequest) (*response_models.MoveItemResponse, error) {
	fromExps := req.FromDay.Experiences
	toExps := req.ToDay.Experiences
	if req.FromIndex < 0 || req.FromIndex >= len(fromExps) || req.ToIndex < 0 || req.ToIndex > len(toExps) {
		s.metrics.ErrorsCount.WithLabelValues("move_item").Inc()
		return nil, utils.ErrInvalidInput
	}

	moved := fromExps[req.FromIndex]

	newFrom := make([]request_models.ExperienceInput, 0, len(fromExps)-1)
	newFrom = append(newFrom, fromExps[:req.FromIndex]...)
	newFrom = append(newFrom, fromExps[req.FromIndex+1:]...)

	newTo := make([]request_models.ExperienceInput, 0, len(toExps)+1)
	newTo = append(newTo, toExps[:req.ToIndex]...)
	newTo = append(newTo, moved)
	newTo = append(newTo, toExps[req.ToIndex:]...)

	return &response_models.MoveItemResponse{
		FromDay: RegenerateDay(req.FromDay, newFrom),
		ToDay:   RegenerateDay(req.ToDay, newTo),
	}, nil
}

func resolveTripStart(req request_models.GenerateItineraryRequest) time.Time {
	if t := utils.ParseDate(req.StartDate); !t.IsZero() {
		return t
	}
	if len(req.Legs) > 0 {
		if t := utils.ParseDate(req.Legs[0].StartDate); !t.IsZero() {
			return t
		}
	}
	return time.Now()
}

func requestKey(req request_models.GenerateItineraryRequest) string {
	raw, err := json.Marshal(req)
	if err != nil {
		return ""
	}
	sum := sha256.Sum256(raw)
	return hex.EncodeToString(sum[:])
}
