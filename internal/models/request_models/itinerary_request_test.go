package request_models

import (
	"encoding/json"
	"testing"
)

func TestFlexDurationUnmarshalNumber(t *testing.T) {
	var in struct {
		Duration FlexDuration `json:"duration"`
	}
	if err := json.Unmarshal([]byte(`{"duration": 90}`), &in); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	m, ok := in.Duration.Minutes()
	if !ok || m != 90 {
		t.Fatalf("minutes = %d, %v; want 90, true", m, ok)
	}
}

func TestFlexDurationUnmarshalFloatTruncates(t *testing.T) {
	var d FlexDuration
	if err := json.Unmarshal([]byte(`90.9`), &d); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if m, _ := d.Minutes(); m != 90 {
		t.Fatalf("minutes = %d, want 90", m)
	}
}

func TestFlexDurationUnmarshalString(t *testing.T) {
	var d FlexDuration
	if err := json.Unmarshal([]byte(`"PT2H30M"`), &d); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if _, ok := d.Minutes(); ok {
		t.Fatalf("string duration should not expose minutes")
	}
	if d.Text() != "PT2H30M" {
		t.Fatalf("text = %q", d.Text())
	}
}

func TestFlexDurationUnmarshalNull(t *testing.T) {
	var d FlexDuration
	if err := json.Unmarshal([]byte(`null`), &d); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !d.IsZero() {
		t.Fatalf("null duration should be zero")
	}
}

func TestFlexDurationMarshalRoundTrip(t *testing.T) {
	raw, err := json.Marshal(DurationMinutes(45))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(raw) != "45" {
		t.Fatalf("marshal minutes = %s, want 45", raw)
	}

	raw, err = json.Marshal(DurationText("2 hours"))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(raw) != `"2 hours"` {
		t.Fatalf("marshal text = %s", raw)
	}

	raw, err = json.Marshal(FlexDuration{})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(raw) != "null" {
		t.Fatalf("marshal zero = %s, want null", raw)
	}
}
