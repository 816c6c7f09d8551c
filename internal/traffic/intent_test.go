package traffic

import (
	"fmt"
	"testing"
)

func TestParseIntentBareHours(t *testing.T) {
	for h := 0; h < 24; h++ {
		intent, ok := ParseIntent(fmt.Sprintf("traffic at %d:00", h))
		if !ok {
			t.Fatalf("ParseIntent(%d:00) failed", h)
		}
		if intent.Hour != h {
			t.Errorf("ParseIntent(%d:00) = hour %d, expected %d", h, intent.Hour, h)
		}
	}
}

func TestParseIntent12HourEquivalence(t *testing.T) {
	tests := []struct {
		message  string
		expected int
	}{
		{"traffic at 2pm", 14},
		{"traffic at 2 pm", 14},
		{"traffic at 2PM", 14},
		{"traffic at 10am", 10},
		{"traffic at 12pm", 12}, // noon stays 12
		{"traffic at 12am", 0},  // midnight becomes 0
		{"traffic at 11pm", 23},
		{"traffic at 1am", 1},
	}

	for _, tt := range tests {
		intent, ok := ParseIntent(tt.message)
		if !ok {
			t.Errorf("ParseIntent(%q) failed", tt.message)
			continue
		}
		if intent.Hour != tt.expected {
			t.Errorf("ParseIntent(%q) = hour %d, expected %d", tt.message, intent.Hour, tt.expected)
		}
	}
}

func TestParseIntentOutOfRange(t *testing.T) {
	for _, message := range []string{"traffic at 25:00", "traffic at 99", "traffic at 24"} {
		if _, ok := ParseIntent(message); ok {
			t.Errorf("ParseIntent(%q) succeeded, expected failure", message)
		}
	}
}

func TestParseIntentNoHour(t *testing.T) {
	if _, ok := ParseIntent("hello there"); ok {
		t.Error("ParseIntent on a message without an hour should fail")
	}
}

func TestParseIntentWithDate(t *testing.T) {
	intent, ok := ParseIntent("traffic at 10am on 2015-07-24")
	if !ok {
		t.Fatal("ParseIntent failed")
	}
	if intent.Hour != 10 {
		t.Errorf("Expected hour 10, got %d", intent.Hour)
	}
	if intent.Date != "2015-07-24" {
		t.Errorf("Expected date 2015-07-24, got %q", intent.Date)
	}
}

func TestParseIntentCapturesUnvalidatedDate(t *testing.T) {
	intent, ok := ParseIntent("traffic at 10am on 2015-13-45")
	if !ok {
		t.Fatal("ParseIntent failed")
	}
	// Date validation happens at predict time, not parse time.
	if intent.Date != "2015-13-45" {
		t.Errorf("Expected raw date 2015-13-45, got %q", intent.Date)
	}
}

func TestParseIntent12HourBeatsBareNumber(t *testing.T) {
	intent, ok := ParseIntent("around 7 or maybe 9pm")
	if !ok {
		t.Fatal("ParseIntent failed")
	}
	if intent.Hour != 21 {
		t.Errorf("Expected the 12-hour mention to win (21), got %d", intent.Hour)
	}
}

// The bare-number rule takes the first standalone token in the message, even
// when a later token was the intended hour. This mirrors the documented
// first-match-wins heuristic.
func TestParseIntentFirstBareTokenWins(t *testing.T) {
	intent, ok := ParseIntent("we are 3 people driving at 18:00")
	if !ok {
		t.Fatal("ParseIntent failed")
	}
	if intent.Hour != 3 {
		t.Errorf("Expected first token 3 to win, got %d", intent.Hour)
	}
}
