// Package traffic implements the query interpreter and aggregator: it turns a
// free-text question into a structured intent, averages the matching
// historical records over a 3-hour window, and renders a human-readable
// estimate with a qualitative severity band.
//
// Intent extraction is a best-effort textual heuristic, not a grammar. The
// rules run in a fixed precedence:
//
//  1. a YYYY-MM-DD substring anywhere in the message becomes the candidate
//     date (validated later, when the intent is executed)
//  2. a 12-hour clock mention ("10am", "5 PM") becomes the hour
//  3. otherwise the first standalone one- or two-digit token (optionally
//     "HH:MM") becomes the hour, accepted only in [0,23]
//
// Messages with several number-like tokens may therefore bind an unintended
// one; the first match wins.
package traffic

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/citypulse/trafficq/internal/models"
)

var (
	datePattern   = regexp.MustCompile(`(\d{4}-\d{2}-\d{2})`)
	hour12Pattern = regexp.MustCompile(`(?i)(\d{1,2})\s*(am|pm)`)
	hour24Pattern = regexp.MustCompile(`\b(\d{1,2})(?::\d{2})?\b`)
)

// ParseIntent extracts a query intent from a user message. The second return
// value is false when no actionable hour could be found.
func ParseIntent(message string) (models.QueryIntent, bool) {
	var intent models.QueryIntent

	if m := datePattern.FindStringSubmatch(message); m != nil {
		intent.Date = m[1]
	}

	if m := hour12Pattern.FindStringSubmatch(message); m != nil {
		hour, _ := strconv.Atoi(m[1])
		switch strings.ToLower(m[2]) {
		case "pm":
			if hour != 12 {
				hour += 12
			}
		case "am":
			if hour == 12 {
				hour = 0
			}
		}
		intent.Hour = hour
		return intent, true
	}

	if m := hour24Pattern.FindStringSubmatch(message); m != nil {
		hour, _ := strconv.Atoi(m[1])
		if hour >= 0 && hour <= 23 {
			intent.Hour = hour
			return intent, true
		}
	}

	return models.QueryIntent{}, false
}
