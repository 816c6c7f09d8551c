package traffic

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/citypulse/trafficq/internal/models"
)

// GuidancePrompt is returned whenever no actionable hour can be extracted
// from a message.
const GuidancePrompt = "Please mention a valid hour (e.g., 10am, 17:00) and optionally a date (e.g., 2015-07-24)."

// dateLayout is the calendar-date format accepted in questions.
const dateLayout = "2006-01-02"

// RecordSource abstracts the dataset lookups the predictor needs, so tests
// can substitute a fake store.
type RecordSource interface {
	ByHours(hours []int) []models.TrafficRecord
	ByDateAndHours(date time.Time, hours []int) []models.TrafficRecord
}

// Predictor answers traffic questions against a record source. It is
// stateless apart from its configuration and safe for concurrent use.
type Predictor struct {
	source  RecordSource
	rounded bool
}

// New creates a Predictor. When rounded is true (the usual mode) averages are
// displayed as whole numbers; otherwise as two-decimal fixed point. Severity
// classification always uses the rounded average either way.
func New(source RecordSource, rounded bool) *Predictor {
	return &Predictor{source: source, rounded: rounded}
}

// Predict executes an intent and returns a structured estimate. Failure
// reasons (invalid date, no matching records) come back as outcomes, never
// as errors: under the documented contract user-input problems degrade to
// text at render time.
func (p *Predictor) Predict(intent models.QueryIntent) models.Estimate {
	est := models.Estimate{Intent: intent}
	window := intent.HourWindow()

	var matched []models.TrafficRecord
	if intent.HasDate() {
		date, err := time.Parse(dateLayout, intent.Date)
		if err != nil {
			est.Outcome = models.OutcomeInvalidDate
			return est
		}
		matched = p.source.ByDateAndHours(date, window[:])
		if len(matched) == 0 {
			est.Outcome = models.OutcomeNoDataForDate
			return est
		}
	} else {
		matched = p.source.ByHours(window[:])
		if len(matched) == 0 {
			est.Outcome = models.OutcomeNoData
			return est
		}
	}

	sum := 0.0
	for _, r := range matched {
		sum += r.Count
	}

	est.Outcome = models.OutcomeEstimate
	est.Matched = len(matched)
	est.AverageCount = sum / float64(len(matched))
	est.Severity = models.SeverityFromAverage(est.AverageCount)
	return est
}

// severityPhrases are the fixed user-facing descriptions per band.
var severityPhrases = map[models.Severity]string{
	models.SeverityLow:      "low — you will likely reach your destination on time.",
	models.SeverityModerate: "moderate — consider leaving a bit early.",
	models.SeverityHeavy:    "heavy — expect delays and plan ahead.",
}

// Render turns an estimate into the final user-facing text.
func (p *Predictor) Render(est models.Estimate) string {
	switch est.Outcome {
	case models.OutcomeInvalidDate:
		return "Invalid date format. Please use YYYY-MM-DD."
	case models.OutcomeNoDataForDate:
		return fmt.Sprintf("No data found for %s at %d:00 or nearby hours.", est.Intent.Date, est.Intent.Hour)
	case models.OutcomeNoData:
		return "Sorry, I don't have enough data to predict traffic at that hour."
	}

	avg := p.displayAverage(est.AverageCount)
	phrase := severityPhrases[est.Severity]
	if est.Intent.HasDate() {
		return fmt.Sprintf("On %s, around %d:00, the average traffic is %s units. It's %s",
			est.Intent.Date, est.Intent.Hour, avg, phrase)
	}
	return fmt.Sprintf("Based on nearby hours, the average traffic around %d:00 is %s units. It's %s",
		est.Intent.Hour, avg, phrase)
}

// HandleUserQuery is the top-level entry: parse the message, execute the
// intent, render the reply. Always returns text, never an error.
func (p *Predictor) HandleUserQuery(message string) string {
	intent, ok := ParseIntent(message)
	if !ok {
		return GuidancePrompt
	}
	return p.Render(p.Predict(intent))
}

func (p *Predictor) displayAverage(avg float64) string {
	if p.rounded {
		return strconv.Itoa(int(math.Round(avg)))
	}
	return fmt.Sprintf("%.2f", avg)
}
