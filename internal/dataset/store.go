// Package dataset provides the in-memory store of historical traffic records.
// The store is loaded once from a CSV file at startup and is immutable
// afterwards, so it can be shared across request-handling goroutines without
// locking.
//
// Rows whose timestamp or count fail to parse are dropped during load and
// counted; a malformed row is never fatal. A missing or unreadable file is.
package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/citypulse/trafficq/internal/models"
)

// DatetimeLayout is the timestamp format of the dataset's Datetime column,
// day-first with a 24-hour clock.
const DatetimeLayout = "02-01-2006 15:04"

// Store holds the loaded dataset. Immutable after construction.
type Store struct {
	records []models.TrafficRecord
	dropped int
}

// Load reads the CSV file at path into a new Store. The file must carry at
// least the Datetime and Count columns; header names are matched after
// stripping surrounding whitespace. Rows that fail to parse are silently
// dropped and reported via Dropped.
func Load(path string) (*Store, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset header: %w", err)
	}

	datetimeCol, countCol := -1, -1
	for i, name := range header {
		switch strings.TrimSpace(name) {
		case "Datetime":
			datetimeCol = i
		case "Count":
			countCol = i
		}
	}
	if datetimeCol < 0 || countCol < 0 {
		return nil, fmt.Errorf("dataset is missing required columns (header: %v)", header)
	}

	store := &Store{}
	for {
		fields, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read dataset row: %w", err)
		}
		if datetimeCol >= len(fields) || countCol >= len(fields) {
			store.dropped++
			continue
		}

		ts, err := time.Parse(DatetimeLayout, strings.TrimSpace(fields[datetimeCol]))
		if err != nil {
			store.dropped++
			continue
		}
		count, err := strconv.ParseFloat(strings.TrimSpace(fields[countCol]), 64)
		if err != nil {
			store.dropped++
			continue
		}

		record := models.TrafficRecord{
			Timestamp: ts,
			Hour:      ts.Hour(),
			Count:     count,
		}
		if err := record.Validate(); err != nil {
			store.dropped++
			continue
		}
		store.records = append(store.records, record)
	}

	return store, nil
}

// NewFromRecords builds a Store from records already in memory. Records that
// fail validation are dropped, mirroring Load. Intended for tests and for
// callers that source data from somewhere other than a CSV file.
func NewFromRecords(records []models.TrafficRecord) *Store {
	store := &Store{}
	for _, r := range records {
		if err := r.Validate(); err != nil {
			store.dropped++
			continue
		}
		store.records = append(store.records, r)
	}
	return store
}

// Len returns the number of retained records.
func (s *Store) Len() int {
	return len(s.records)
}

// Dropped returns the number of rows excluded during load.
func (s *Store) Dropped() int {
	return s.dropped
}

// ByHours returns all records whose hour is in hours. The result carries no
// ordering guarantee and may be empty.
func (s *Store) ByHours(hours []int) []models.TrafficRecord {
	set := hourSet(hours)
	var matched []models.TrafficRecord
	for _, r := range s.records {
		if set[r.Hour] {
			matched = append(matched, r)
		}
	}
	return matched
}

// ByDateAndHours returns all records on the given calendar date whose hour
// is in hours.
func (s *Store) ByDateAndHours(date time.Time, hours []int) []models.TrafficRecord {
	set := hourSet(hours)
	y, m, d := date.Date()
	var matched []models.TrafficRecord
	for _, r := range s.records {
		ry, rm, rd := r.Timestamp.Date()
		if ry == y && rm == m && rd == d && set[r.Hour] {
			matched = append(matched, r)
		}
	}
	return matched
}

func hourSet(hours []int) map[int]bool {
	set := make(map[int]bool, len(hours))
	for _, h := range hours {
		set[h] = true
	}
	return set
}
