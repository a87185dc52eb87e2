package services

import (
	"fmt"
	"testing"

	"tripweave/internal/models/request_models"
)

func countPlaced(t *testing.T, days [][]request_models.ExperienceInput) map[string]int {
	t.Helper()
	placed := make(map[string]int)
	for _, day := range days {
		for _, e := range day {
			placed[e.ID]++
		}
	}
	return placed
}

func TestDistributeAcrossDaysConservation(t *testing.T) {
	categories := []string{"beach", "museum", "nightlife", "park", "tour", "restaurant"}
	for _, numDays := range []int{1, 2, 3, 5} {
		for total := 0; total <= 14; total++ {
			exps := make([]request_models.ExperienceInput, 0, total)
			for i := 0; i < total; i++ {
				exps = append(exps, request_models.ExperienceInput{
					ID:       fmt.Sprintf("e%d", i),
					Name:     fmt.Sprintf("Experience %d", i),
					Category: categories[i%len(categories)],
				})
			}

			days := DistributeAcrossDays(exps, numDays)
			placed := countPlaced(t, days)
			if len(placed) != total {
				t.Fatalf("days=%d total=%d: placed %d distinct experiences", numDays, total, len(placed))
			}
			for id, n := range placed {
				if n != 1 {
					t.Fatalf("days=%d total=%d: experience %s placed %d times", numDays, total, id, n)
				}
			}
		}
	}
}

func TestDistributeAcrossDaysZeroDaysKeepsExperiences(t *testing.T) {
	exps := []request_models.ExperienceInput{
		{ID: "a", Category: "park"},
		{ID: "b", Category: "museum"},
	}
	days := DistributeAcrossDays(exps, 0)
	placed := countPlaced(t, days)
	if len(placed) != 2 {
		t.Fatalf("zero days must still place every experience, placed %d", len(placed))
	}
}

func TestDistributeAcrossDaysEmptyInput(t *testing.T) {
	days := DistributeAcrossDays(nil, 3)
	if len(days) != 3 {
		t.Fatalf("expected 3 empty days, got %d", len(days))
	}
	for i, day := range days {
		if len(day) != 0 {
			t.Fatalf("day %d should be empty, has %d items", i, len(day))
		}
	}
	if got := DistributeAcrossDays(nil, 0); got != nil {
		t.Fatalf("no experiences and no days should yield nil, got %v", got)
	}
}

func TestDistributeAcrossDaysOrdering(t *testing.T) {
	exps := []request_models.ExperienceInput{
		{ID: "club", Name: "Jazz club", Category: "nightlife"},
		{ID: "beach", Name: "City beach", Category: "beach"},
		{ID: "walk", Name: "Old town walk", Category: "park"},
	}

	days := DistributeAcrossDays(exps, 1)
	if len(days) != 1 {
		t.Fatalf("expected 1 day, got %d", len(days))
	}
	day := days[0]
	if len(day) != 3 {
		t.Fatalf("expected 3 experiences on the day, got %d", len(day))
	}
	if day[0].ID != "beach" {
		t.Fatalf("morning experience should lead the day, got %s", day[0].ID)
	}
	if day[len(day)-1].ID != "club" {
		t.Fatalf("evening experience should close the day, got %s", day[len(day)-1].ID)
	}
}

func TestDistributeAcrossDaysRespectsCap(t *testing.T) {
	exps := make([]request_models.ExperienceInput, 0, 8)
	for i := 0; i < 8; i++ {
		exps = append(exps, request_models.ExperienceInput{
			ID:       fmt.Sprintf("e%d", i),
			Category: "park",
		})
	}

	days := DistributeAcrossDays(exps, 2)
	placed := countPlaced(t, days)
	if len(placed) != 8 {
		t.Fatalf("placed %d distinct experiences, want 8", len(placed))
	}
	// target ceil(8/2)=4, cap 5; the leftover pass may exceed the cap but
	// the initial fill must not.
	for i, day := range days {
		if len(day) > 8 {
			t.Fatalf("day %d impossibly large: %d", i, len(day))
		}
	}
}
