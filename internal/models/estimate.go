package models

import "math"

// Severity is the qualitative traffic-load classification derived from the
// rounded average count.
type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityModerate Severity = "moderate"
	SeverityHeavy    Severity = "heavy"
)

// SeverityFromAverage classifies an average count into a severity band.
// Thresholds are inclusive on the lower band edges: rounded average <= 100
// is low, <= 200 is moderate, anything above is heavy.
func SeverityFromAverage(avg float64) Severity {
	rounded := math.Round(avg)
	switch {
	case rounded <= 100:
		return SeverityLow
	case rounded <= 200:
		return SeverityModerate
	default:
		return SeverityHeavy
	}
}

// Outcome discriminates the possible results of executing a query intent.
type Outcome int

const (
	// OutcomeEstimate means records matched and an average was computed.
	OutcomeEstimate Outcome = iota
	// OutcomeNoData means no records matched an hour-only query.
	OutcomeNoData
	// OutcomeNoDataForDate means no records matched a date-qualified query.
	OutcomeNoDataForDate
	// OutcomeInvalidDate means the captured date string is not a real
	// calendar date.
	OutcomeInvalidDate
)

// Estimate is the aggregation result for one intent. Only OutcomeEstimate
// carries a meaningful AverageCount and Severity; the other outcomes exist
// so failure reasons stay structured until they are rendered to text at
// the boundary.
type Estimate struct {
	Intent       QueryIntent `json:"intent"`
	Outcome      Outcome     `json:"outcome"`
	AverageCount float64     `json:"average_count"`
	Matched      int         `json:"matched"`
	Severity     Severity    `json:"severity"`
}
