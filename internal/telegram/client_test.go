package telegram

import (
	"strings"
	"testing"
)

func TestSummarize(t *testing.T) {
	short := "traffic at 10am"
	if got := summarize(short); got != short {
		t.Errorf("summarize(%q) = %q, expected unchanged", short, got)
	}

	long := strings.Repeat("a", 100)
	got := summarize(long)
	if len([]rune(got)) != 67 {
		t.Errorf("summarize of a long string should be 64 runes plus ellipsis, got %d", len([]rune(got)))
	}
	if !strings.HasSuffix(got, "...") {
		t.Errorf("summarize should end with an ellipsis: %q", got)
	}
}
