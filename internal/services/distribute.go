package services

import (
	"sort"

	"tripweave/internal/models/request_models"
)

// Hard ceiling on scheduled experiences per day.
const maxExperiencesPerDay = 5

// DistributeAcrossDays spreads a leg's experiences over numDays ordered
// sublists. Each day is seeded with a morning experience when one is left,
// filled with anytime/afternoon experiences up to the per-day cap preferring
// members of a proximity group already placed that day, and closed with an
// evening experience when room remains. Experiences that no day accepted are
// appended to the least-loaded day afterwards, so every input experience is
// placed exactly once.
func DistributeAcrossDays(exps []request_models.ExperienceInput, numDays int) [][]request_models.ExperienceInput {
	if len(exps) == 0 {
		if numDays <= 0 {
			return nil
		}
		return make([][]request_models.ExperienceInput, numDays)
	}
	if numDays <= 0 {
		// A leg with experiences but no room still schedules them somewhere.
		numDays = 1
	}

	targetPerDay := (len(exps) + numDays - 1) / numDays
	dayCap := targetPerDay + 1
	if dayCap > maxExperiencesPerDay {
		dayCap = maxExperiencesPerDay
	}

	groupOf := make([]int, len(exps))
	for gi, group := range GroupByProximity(exps) {
		for _, idx := range group {
			groupOf[idx] = gi
		}
	}

	slotOf := make([]string, len(exps))
	for i, e := range exps {
		slotOf[i] = CategorizeTimeOfDay(e)
	}

	used := make([]bool, len(exps))

	firstUnused := func(slots ...string) int {
		for i := range exps {
			if used[i] {
				continue
			}
			for _, s := range slots {
				if slotOf[i] == s {
					return i
				}
			}
		}
		return -1
	}

	days := make([][]int, numDays)
	for d := 0; d < numDays; d++ {
		var day []int
		take := func(idx int) {
			used[idx] = true
			day = append(day, idx)
		}

		if idx := firstUnused(slotMorning); idx >= 0 {
			take(idx)
		}

		for len(day) < dayCap {
			idx := -1
			for i := range exps {
				if used[i] || (slotOf[i] != slotAnytime && slotOf[i] != slotAfternoon) {
					continue
				}
				for _, placed := range day {
					if groupOf[i] == groupOf[placed] {
						idx = i
						break
					}
				}
				if idx >= 0 {
					break
				}
			}
			// The first two slots fill unconditionally to bootstrap a day;
			// past that only proximity-group mates are accepted.
			if idx < 0 && len(day) < 2 {
				idx = firstUnused(slotAnytime, slotAfternoon)
			}
			if idx < 0 {
				break
			}
			take(idx)
		}

		if len(day) < dayCap {
			if idx := firstUnused(slotEvening); idx >= 0 {
				take(idx)
			}
		}

		// Morning-flavored picks lead the day, evening ones close it.
		sort.SliceStable(day, func(a, b int) bool {
			return slotRank(slotOf[day[a]]) < slotRank(slotOf[day[b]])
		})

		days[d] = day
	}

	// Every day hit its cap: drop the remainder onto the lightest days.
	for i := range exps {
		if used[i] {
			continue
		}
		best := 0
		for d := 1; d < numDays; d++ {
			if len(days[d]) < len(days[best]) {
				best = d
			}
		}
		days[best] = append(days[best], i)
		used[i] = true
	}

	out := make([][]request_models.ExperienceInput, numDays)
	for d, idxs := range days {
		out[d] = make([]request_models.ExperienceInput, 0, len(idxs))
		for _, idx := range idxs {
			out[d] = append(out[d], exps[idx])
		}
	}
	return out
}

func slotRank(slot string) int {
	switch slot {
	case slotMorning:
		return 0
	case slotEvening:
		return 2
	default:
		return 1
	}
}
