package services

import (
	"regexp"
	"strconv"
	"strings"

	"tripweave/internal/models/request_models"
)

// DefaultDurationMinutes is assumed whenever no duration signal is available.
const DefaultDurationMinutes = 120

var categoryDefaultMinutes = map[string]int{
	"beach":        180,
	"museum":       120,
	"restaurant":   90,
	"tour":         240,
	"hiking":       300,
	"nightlife":    180,
	"shopping":     120,
	"landmark":     60,
	"park":         120,
	"show":         150,
	"spa":          180,
	"water-sports": 180,
}

var (
	isoDurationRe = regexp.MustCompile(`(?i)^PT(?:(\d+)H)?(?:(\d+)M)?$`)
	freeTextTokRe = regexp.MustCompile(`(\d+)\s*([a-zA-Z]+)`)
)

// ResolveDuration normalizes any duration shape to a non-negative number of
// minutes. Numeric input is trusted as-is, then ISO-8601 "PT#H#M", then
// free-text "<n> hours <n> min" tokens, then the per-category default table.
// It never fails; the absence of any signal yields 120 minutes.
func ResolveDuration(d request_models.FlexDuration, category string) int {
	if m, ok := d.Minutes(); ok {
		if m < 0 {
			return 0
		}
		return m
	}

	text := strings.TrimSpace(d.Text())
	if text != "" {
		if m, ok := parseISODuration(text); ok {
			return m
		}
		if m, ok := parseFreeTextDuration(text); ok {
			return m
		}
	}

	return categoryDefault(category)
}

func categoryDefault(category string) int {
	if m, ok := categoryDefaultMinutes[strings.ToLower(strings.TrimSpace(category))]; ok {
		return m
	}
	return DefaultDurationMinutes
}

func parseISODuration(s string) (int, bool) {
	m := isoDurationRe.FindStringSubmatch(s)
	if m == nil || (m[1] == "" && m[2] == "") {
		return 0, false
	}
	total := 0
	if m[1] != "" {
		h, _ := strconv.Atoi(m[1])
		total += h * 60
	}
	if m[2] != "" {
		mins, _ := strconv.Atoi(m[2])
		total += mins
	}
	return total, true
}

func parseFreeTextDuration(s string) (int, bool) {
	matches := freeTextTokRe.FindAllStringSubmatch(s, -1)
	total := 0
	found := false
	for _, m := range matches {
		n, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		unit := strings.ToLower(m[2])
		switch {
		case strings.HasPrefix(unit, "h"):
			total += n * 60
			found = true
		case strings.HasPrefix(unit, "m"):
			total += n
			found = true
		}
	}
	return total, found
}
