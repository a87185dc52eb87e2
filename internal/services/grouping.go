package services

import (
	"strings"

	"tripweave/internal/models/request_models"
)

// Experiences within this radius of a group's seed are scheduled together.
const proximityThresholdKm = 3.0

const (
	slotMorning   = "morning"
	slotAfternoon = "afternoon"
	slotEvening   = "evening"
	slotAnytime   = "anytime"
)

// GroupByProximity partitions experiences into geographic groups with a
// greedy single pass: each unvisited experience seeds a group and pulls in
// every other unvisited experience within the radius of that seed.
//
// This is radius-from-seed grouping, not connected-component clustering, so
// the result depends on input order. That matches the product behavior of
// keeping same-area picks together without a full clustering pass.
// Experiences without coordinates always end up in a group of their own.
func GroupByProximity(exps []request_models.ExperienceInput) [][]int {
	groups := make([][]int, 0)
	visited := make([]bool, len(exps))

	for i := range exps {
		if visited[i] {
			continue
		}
		visited[i] = true
		group := []int{i}

		if exps[i].Coordinates != nil {
			for j := i + 1; j < len(exps); j++ {
				if visited[j] || exps[j].Coordinates == nil {
					continue
				}
				if Haversine(*exps[i].Coordinates, *exps[j].Coordinates) <= proximityThresholdKm {
					visited[j] = true
					group = append(group, j)
				}
			}
		}

		groups = append(groups, group)
	}

	return groups
}

// CategorizeTimeOfDay buckets an experience into morning, afternoon, evening
// or anytime from category and name keywords. Evening wins over morning wins
// over afternoon when several heuristics match.
func CategorizeTimeOfDay(e request_models.ExperienceInput) string {
	category := strings.ToLower(strings.TrimSpace(e.Category))
	name := strings.ToLower(e.Name)

	switch {
	case category == "nightlife" || strings.Contains(name, "dinner") || strings.Contains(name, "sunset"):
		return slotEvening
	case category == "beach" || strings.Contains(name, "sunrise") || strings.Contains(name, "breakfast"):
		return slotMorning
	case category == "museum" || category == "tour":
		return slotAfternoon
	default:
		return slotAnytime
	}
}
