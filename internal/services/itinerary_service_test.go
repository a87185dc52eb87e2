package services

import (
	"context"
	"errors"
	"sync"
	"testing"

	"tripweave/internal/models/request_models"
	"tripweave/pkg/logger"
	"tripweave/pkg/metrics"
	"tripweave/pkg/utils"
)

type nopLogger struct{}

func (nopLogger) Debug(string, ...interface{}) {}
func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}
func (l nopLogger) With(...interface{}) logger.Logger {
	return l
}

var (
	testMetricsOnce sync.Once
	testMetrics     *metrics.Metrics
)

// promauto registers against the default registerer, so the test metrics
// are built once and shared.
func sharedMetrics() *metrics.Metrics {
	testMetricsOnce.Do(func() {
		testMetrics = metrics.NewMetrics("tripweave_test")
	})
	return testMetrics
}

func newTestItineraryService() ItineraryServiceInterface {
	return NewItineraryService(NewInMemoryItineraryCache(), nopLogger{}, sharedMetrics())
}

func TestGenerateItineraryCachesByRequest(t *testing.T) {
	svc := newTestItineraryService()
	req := request_models.GenerateItineraryRequest{
		Legs:      singleLegTrip(),
		StartDate: "2024-06-01",
		StartHour: 9,
	}

	first, err := svc.GenerateItinerary(context.Background(), req)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	second, err := svc.GenerateItinerary(context.Background(), req)
	if err != nil {
		t.Fatalf("generate again: %v", err)
	}
	if first != second {
		t.Fatalf("identical request should be served from cache")
	}
	if first.TotalDays != 4 {
		t.Fatalf("total days = %d, want 4", first.TotalDays)
	}
}

func TestReorderDayItems(t *testing.T) {
	svc := newTestItineraryService()
	req := request_models.ReorderDayRequest{
		Day: request_models.DayInput{
			Date:      "2024-06-02",
			DayNumber: 2,
			LegID:     "bcn",
			StartHour: 9,
			Experiences: []request_models.ExperienceInput{
				{ID: "a", Name: "Market", Duration: request_models.DurationMinutes(60)},
				{ID: "b", Name: "Cathedral", Duration: request_models.DurationMinutes(60)},
				{ID: "c", Name: "Park", Duration: request_models.DurationMinutes(60)},
			},
		},
		FromIndex: 0,
		ToIndex:   2,
	}

	day, err := svc.ReorderDayItems(context.Background(), req)
	if err != nil {
		t.Fatalf("reorder: %v", err)
	}
	if day.Date != "2024-06-02" || day.DayNumber != 2 || day.LegID != "bcn" {
		t.Fatalf("day identity lost: %+v", day)
	}
	if len(day.Items) != 3 {
		t.Fatalf("expected 3 items, got %d", len(day.Items))
	}
	wantOrder := []string{"exp-b", "exp-c", "exp-a"}
	for i, want := range wantOrder {
		if day.Items[i].ID != want {
			t.Fatalf("item %d = %s, want %s", i, day.Items[i].ID, want)
		}
	}
	// Times are rebuilt from the day's start hour, not preserved.
	if day.Items[0].StartTime != "09:00" {
		t.Fatalf("reordered day should restart at 09:00, got %s", day.Items[0].StartTime)
	}
}

func TestReorderDayItemsInvalidIndex(t *testing.T) {
	svc := newTestItineraryService()
	req := request_models.ReorderDayRequest{
		Day: request_models.DayInput{
			Experiences: []request_models.ExperienceInput{{ID: "a"}},
		},
		FromIndex: 0,
		ToIndex:   5,
	}
	if _, err := svc.ReorderDayItems(context.Background(), req); !errors.Is(err, utils.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestMoveItemBetweenDays(t *testing.T) {
	svc := newTestItineraryService()
	req := request_models.MoveItemRequest{
		FromDay: request_models.DayInput{
			Date:      "2024-06-02",
			DayNumber: 2,
			StartHour: 9,
			Experiences: []request_models.ExperienceInput{
				{ID: "a", Name: "Market", Duration: request_models.DurationMinutes(60)},
				{ID: "b", Name: "Cathedral", Duration: request_models.DurationMinutes(60)},
			},
		},
		ToDay: request_models.DayInput{
			Date:      "2024-06-03",
			DayNumber: 3,
			StartHour: 9,
			Experiences: []request_models.ExperienceInput{
				{ID: "c", Name: "Park", Duration: request_models.DurationMinutes(60)},
			},
		},
		FromIndex: 1,
		ToIndex:   0,
	}

	res, err := svc.MoveItemBetweenDays(context.Background(), req)
	if err != nil {
		t.Fatalf("move: %v", err)
	}
	if len(res.FromDay.Items) != 1 || res.FromDay.Items[0].ID != "exp-a" {
		t.Fatalf("source day items: %+v", res.FromDay.Items)
	}
	if len(res.ToDay.Items) != 2 || res.ToDay.Items[0].ID != "exp-b" || res.ToDay.Items[1].ID != "exp-c" {
		t.Fatalf("target day items: %+v", res.ToDay.Items)
	}
}

func TestMoveItemEmptiesSourceDay(t *testing.T) {
	svc := newTestItineraryService()
	req := request_models.MoveItemRequest{
		FromDay: request_models.DayInput{
			Date:      "2024-06-02",
			StartHour: 9,
			Experiences: []request_models.ExperienceInput{
				{ID: "a", Name: "Market", Duration: request_models.DurationMinutes(60)},
			},
		},
		ToDay: request_models.DayInput{
			Date:      "2024-06-03",
			StartHour: 9,
		},
		FromIndex: 0,
		ToIndex:   0,
	}

	res, err := svc.MoveItemBetweenDays(context.Background(), req)
	if err != nil {
		t.Fatalf("move: %v", err)
	}
	if len(res.FromDay.Items) != 0 || res.FromDay.Note != "Free day" {
		t.Fatalf("emptied day should become a free day: %+v", res.FromDay)
	}
	if len(res.ToDay.Items) != 1 {
		t.Fatalf("target day items: %+v", res.ToDay.Items)
	}
}

func TestMoveItemInvalidIndex(t *testing.T) {
	svc := newTestItineraryService()
	req := request_models.MoveItemRequest{
		FromDay:   request_models.DayInput{Experiences: []request_models.ExperienceInput{{ID: "a"}}},
		ToDay:     request_models.DayInput{},
		FromIndex: 3,
		ToIndex:   0,
	}
	if _, err := svc.MoveItemBetweenDays(context.Background(), req); !errors.Is(err, utils.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
