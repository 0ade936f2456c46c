package services

import (
	"fmt"
	"time"

	"github.com/molarhq/molarlog/internal/models"
)

// HoursBucket is one aggregation window of the progress charts: a single
// day in weekly/monthly mode, a 7-day span in full-progress mode.
type HoursBucket struct {
	Label     string  `json:"label"`
	DateKey   string  `json:"date"`
	Shadowing float64 `json:"shadowing"`
	Dental    float64 `json:"dental"`
	NonDental float64 `json:"non_dental"`
	Total     float64 `json:"total"`
}

type HoursTotals struct {
	Shadowing float64 `json:"shadowing"`
	Dental    float64 `json:"dental"`
	NonDental float64 `json:"non_dental"`
	Grand     float64 `json:"grand"`
}

// CategoryTotals sums durations per activity type. Durations are carried as
// given, no rounding, so the grand total is exactly the sum of the three
// category totals.
func CategoryTotals(logs []models.ActivityLog) HoursTotals {
	totals := HoursTotals{}
	for _, entry := range logs {
		switch entry.Type {
		case models.TypeShadowing:
			totals.Shadowing += entry.Duration
		case models.TypeDentalVolunteering:
			totals.Dental += entry.Duration
		case models.TypeNonDentalVolunteering:
			totals.NonDental += entry.Duration
		}
	}
	totals.Grand = totals.Shadowing + totals.Dental + totals.NonDental
	return totals
}

func (totals HoursTotals) ForType(activityType string) float64 {
	switch activityType {
	case models.TypeShadowing:
		return totals.Shadowing
	case models.TypeDentalVolunteering:
		return totals.Dental
	case models.TypeNonDentalVolunteering:
		return totals.NonDental
	default:
		return 0
	}
}

// WeeklyBuckets returns exactly 7 day buckets, one per calendar day, the
// last bucket anchored to the current day. Zero logs still yield the full
// skeleton with zero totals.
func WeeklyBuckets(logs []models.ActivityLog, now time.Time, location *time.Location) []HoursBucket {
	today := DateAtLocation(now, location)
	byDay := sumsByDayKey(logs, location)

	buckets := make([]HoursBucket, 0, 7)
	for offset := -6; offset <= 0; offset++ {
		day := today.AddDate(0, 0, offset)
		bucket := byDay[day.Format(dayKeyLayout)]
		bucket.Label = day.Format("Mon")
		bucket.DateKey = day.Format(dayKeyLayout)
		buckets = append(buckets, bucket)
	}
	return buckets
}

// MonthlyBuckets returns one bucket per elapsed day of the current month,
// day 1 through today inclusive, labelled with the bare day number.
func MonthlyBuckets(logs []models.ActivityLog, now time.Time, location *time.Location) []HoursBucket {
	today := DateAtLocation(now, location)
	firstOfMonth := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, today.Location())
	byDay := sumsByDayKey(logs, location)

	buckets := make([]HoursBucket, 0, today.Day())
	for day := firstOfMonth; !day.After(today); day = day.AddDate(0, 0, 1) {
		bucket := byDay[day.Format(dayKeyLayout)]
		bucket.Label = fmt.Sprintf("%d", day.Day())
		bucket.DateKey = day.Format(dayKeyLayout)
		buckets = append(buckets, bucket)
	}
	return buckets
}

// FullProgressBuckets groups all logs into consecutive 7-day windows
// starting at the earliest log's calendar day, labelled "W1", "W2", and so
// on through the window containing today. Membership is an inclusive
// date-key range test. With zero logs the series is empty.
func FullProgressBuckets(logs []models.ActivityLog, now time.Time, location *time.Location) []HoursBucket {
	if len(logs) == 0 {
		return []HoursBucket{}
	}

	earliest := DateAtLocation(logs[0].Date, location)
	for _, entry := range logs[1:] {
		day := DateAtLocation(entry.Date, location)
		if day.Before(earliest) {
			earliest = day
		}
	}

	// Windows advance by calendar arithmetic, not wall-clock durations, so a
	// DST transition inside the range never shifts the window boundaries.
	todayKey := DayKey(now, location)
	buckets := make([]HoursBucket, 0, 8)
	for windowStart := earliest; ; windowStart = windowStart.AddDate(0, 0, 7) {
		startKey := windowStart.Format(dayKeyLayout)
		if startKey > todayKey {
			break
		}
		endKey := windowStart.AddDate(0, 0, 6).Format(dayKeyLayout)

		bucket := HoursBucket{
			Label:   fmt.Sprintf("W%d", len(buckets)+1),
			DateKey: startKey,
		}
		for _, entry := range logs {
			dayKey := DayKey(entry.Date, location)
			if dayKey < startKey || dayKey > endKey {
				continue
			}
			addToBucket(&bucket, entry)
		}
		buckets = append(buckets, bucket)
	}
	return buckets
}

func sumsByDayKey(logs []models.ActivityLog, location *time.Location) map[string]HoursBucket {
	byDay := make(map[string]HoursBucket)
	for _, entry := range logs {
		key := DayKey(entry.Date, location)
		bucket := byDay[key]
		addToBucket(&bucket, entry)
		byDay[key] = bucket
	}
	return byDay
}

func addToBucket(bucket *HoursBucket, entry models.ActivityLog) {
	switch entry.Type {
	case models.TypeShadowing:
		bucket.Shadowing += entry.Duration
	case models.TypeDentalVolunteering:
		bucket.Dental += entry.Duration
	case models.TypeNonDentalVolunteering:
		bucket.NonDental += entry.Duration
	default:
		return
	}
	bucket.Total += entry.Duration
}
