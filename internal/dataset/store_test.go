package dataset

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/citypulse/trafficq/internal/models"
)

func writeDataset(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "traffic.csv")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write dataset: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeDataset(t, `ID,Datetime,Count
1,24-07-2015 09:00,50
2,24-07-2015 10:00,150
3,24-07-2015 11:00,250
4,25-07-2015 10:00,100
`)

	store, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if store.Len() != 4 {
		t.Errorf("Expected 4 records, got %d", store.Len())
	}
	if store.Dropped() != 0 {
		t.Errorf("Expected 0 dropped rows, got %d", store.Dropped())
	}

	records := store.ByHours([]int{10})
	if len(records) != 2 {
		t.Fatalf("Expected 2 records at hour 10, got %d", len(records))
	}
	for _, r := range records {
		if r.Hour != 10 {
			t.Errorf("Expected hour 10, got %d", r.Hour)
		}
	}
}

func TestLoadDropsMalformedRows(t *testing.T) {
	path := writeDataset(t, `Datetime,Count
24-07-2015 09:00,50
not-a-date,60
24-07-2015 10:00,abc
2015-07-24 11:00,70
24-07-2015 11:00,80
`)

	store, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	// Only the day-first rows with numeric counts survive.
	if store.Len() != 2 {
		t.Errorf("Expected 2 records, got %d", store.Len())
	}
	if store.Dropped() != 3 {
		t.Errorf("Expected 3 dropped rows, got %d", store.Dropped())
	}
}

func TestLoadTrimsHeaderWhitespace(t *testing.T) {
	path := writeDataset(t, ` Datetime , Count
24-07-2015 09:00,50
`)

	store, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if store.Len() != 1 {
		t.Errorf("Expected 1 record, got %d", store.Len())
	}
}

func TestLoadMissingColumns(t *testing.T) {
	path := writeDataset(t, `Timestamp,Volume
24-07-2015 09:00,50
`)

	if _, err := Load(path); err == nil {
		t.Error("Expected error for missing columns, got nil")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.csv")); err == nil {
		t.Error("Expected error for missing file, got nil")
	}
}

func TestByDateAndHours(t *testing.T) {
	store := NewFromRecords([]models.TrafficRecord{
		{Timestamp: time.Date(2015, 7, 24, 9, 0, 0, 0, time.UTC), Hour: 9, Count: 50},
		{Timestamp: time.Date(2015, 7, 24, 10, 0, 0, 0, time.UTC), Hour: 10, Count: 150},
		{Timestamp: time.Date(2015, 7, 25, 10, 0, 0, 0, time.UTC), Hour: 10, Count: 500},
	})

	date := time.Date(2015, 7, 24, 0, 0, 0, 0, time.UTC)
	records := store.ByDateAndHours(date, []int{9, 10, 11})
	if len(records) != 2 {
		t.Fatalf("Expected 2 records on 2015-07-24, got %d", len(records))
	}

	empty := store.ByDateAndHours(time.Date(2016, 1, 1, 0, 0, 0, 0, time.UTC), []int{9, 10, 11})
	if len(empty) != 0 {
		t.Errorf("Expected no records on 2016-01-01, got %d", len(empty))
	}
}

func TestByHoursWrapsAroundMidnight(t *testing.T) {
	store := NewFromRecords([]models.TrafficRecord{
		{Timestamp: time.Date(2015, 7, 24, 23, 0, 0, 0, time.UTC), Hour: 23, Count: 10},
		{Timestamp: time.Date(2015, 7, 25, 0, 0, 0, 0, time.UTC), Hour: 0, Count: 20},
		{Timestamp: time.Date(2015, 7, 25, 1, 0, 0, 0, time.UTC), Hour: 1, Count: 30},
		{Timestamp: time.Date(2015, 7, 25, 12, 0, 0, 0, time.UTC), Hour: 12, Count: 999},
	})

	records := store.ByHours([]int{23, 0, 1})
	if len(records) != 3 {
		t.Errorf("Expected 3 records in midnight window, got %d", len(records))
	}
}

func TestNewFromRecordsDropsInvalid(t *testing.T) {
	store := NewFromRecords([]models.TrafficRecord{
		{Timestamp: time.Date(2015, 7, 24, 9, 0, 0, 0, time.UTC), Hour: 9, Count: 50},
		{Hour: 9, Count: 50},
	})

	if store.Len() != 1 {
		t.Errorf("Expected 1 record, got %d", store.Len())
	}
	if store.Dropped() != 1 {
		t.Errorf("Expected 1 dropped record, got %d", store.Dropped())
	}
}
