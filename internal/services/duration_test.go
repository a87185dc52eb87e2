package services

import (
	"testing"

	"tripweave/internal/models/request_models"
)

func TestResolveDurationNumeric(t *testing.T) {
	got := ResolveDuration(request_models.DurationMinutes(90), "museum")
	if got != 90 {
		t.Fatalf("minutes = %d, want 90", got)
	}
}

func TestResolveDurationISO(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"PT2H30M", 150},
		{"PT2H", 120},
		{"PT45M", 45},
		{"pt1h5m", 65},
	}
	for _, c := range cases {
		got := ResolveDuration(request_models.DurationText(c.in), "")
		if got != c.want {
			t.Fatalf("ResolveDuration(%q) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestResolveDurationFreeText(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"2 hours 15 min", 135},
		{"3 hours", 180},
		{"90 minutes", 90},
		{"1h 30m", 90},
	}
	for _, c := range cases {
		got := ResolveDuration(request_models.DurationText(c.in), "")
		if got != c.want {
			t.Fatalf("ResolveDuration(%q) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestResolveDurationCategoryFallback(t *testing.T) {
	cases := []struct {
		category string
		want     int
	}{
		{"museum", 120},
		{"beach", 180},
		{"tour", 240},
		{"hiking", 300},
		{"landmark", 60},
		{"something-unknown", 120},
		{"", 120},
	}
	for _, c := range cases {
		got := ResolveDuration(request_models.FlexDuration{}, c.category)
		if got != c.want {
			t.Fatalf("category %q default = %d, want %d", c.category, got, c.want)
		}
	}
}

func TestResolveDurationGarbageText(t *testing.T) {
	got := ResolveDuration(request_models.DurationText("all day long"), "spa")
	if got != 180 {
		t.Fatalf("garbage text should fall back to category default, got %d", got)
	}
}
