// Package models defines the core domain entities for the trafficq application.
// These models represent historical traffic observations, parsed query intents,
// and aggregated traffic estimates.
//
// Terminology:
//   - Record: one row of the historical dataset, a counted traffic volume at a
//     specific timestamp.
//   - Intent: the (hour, optional date) extracted from a free-text question.
//   - Estimate: the aggregation outcome for one intent, including the severity
//     band derived from the rounded average count.
package models

import (
	"errors"
	"time"
)

// TrafficRecord is a single historical observation from the dataset.
// Hour is derived from Timestamp at load time so hour lookups never
// re-parse the timestamp.
type TrafficRecord struct {
	Timestamp time.Time `json:"timestamp"`
	Hour      int       `json:"hour"`
	Count     float64   `json:"count"`
}

// Validate checks that a record satisfies the dataset invariants.
func (r *TrafficRecord) Validate() error {
	if r.Timestamp.IsZero() {
		return errors.New("record timestamp must not be zero")
	}
	if r.Hour < 0 || r.Hour > 23 {
		return errors.New("record hour must be between 0 and 23")
	}
	if r.Hour != r.Timestamp.Hour() {
		return errors.New("record hour must match the timestamp hour")
	}
	if r.Count < 0 {
		return errors.New("record count must not be negative")
	}
	return nil
}
