package run

import (
	"math"
	"sort"
)

// Record is a single logged run. Date is the natural key.
type Record struct {
	Date     string  `json:"date"`
	Distance float64 `json:"distance"` // kilometers
	Time     float64 `json:"time"`     // minutes
	Type     string  `json:"type"`
	Notes    string  `json:"notes"`
}

// Pace returns minutes per kilometer rounded to 2 decimals, or 0 when the
// distance is not positive.
func (r Record) Pace() float64 {
	return PaceOf(r.Time, r.Distance)
}

// PaceOf returns minutes/distance rounded to 2 decimals, guarding against
// zero or negative distance.
func PaceOf(minutes, distance float64) float64 {
	if distance <= 0 {
		return 0
	}
	return Round(minutes/distance, 2)
}

// Round rounds v half away from zero to the given number of decimals.
func Round(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}

// SortByDate returns a copy of records sorted ascending by date. ISO dates
// sort chronologically as strings; ties keep their input order.
func SortByDate(records []Record) []Record {
	sorted := make([]Record, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date < sorted[j].Date
	})
	return sorted
}
