package models

import "errors"

// QueryIntent is the structured form of a user's question: the hour they
// asked about and, optionally, a calendar date. Intents are ephemeral and
// built fresh for every request.
//
// Date holds the raw "YYYY-MM-DD" substring captured from the message. It
// is intentionally unvalidated here: the aggregator validates it when the
// intent is executed, so a bad date still produces a user-facing reply
// rather than a parse failure.
type QueryIntent struct {
	Hour int    `json:"hour"`
	Date string `json:"date,omitempty"`
}

// HasDate reports whether the intent carries a calendar date.
func (q *QueryIntent) HasDate() bool {
	return q.Date != ""
}

// Validate checks that the intent hour is actionable.
func (q *QueryIntent) Validate() error {
	if q.Hour < 0 || q.Hour > 23 {
		return errors.New("intent hour must be between 0 and 23")
	}
	return nil
}

// HourWindow returns the 3-hour window {hour-1, hour, hour+1} (mod 24)
// used to smooth sparse historical samples.
func (q *QueryIntent) HourWindow() [3]int {
	return [3]int{(q.Hour + 23) % 24, q.Hour % 24, (q.Hour + 1) % 24}
}
