// Package grouping provides the sum-by-key and count-by-key primitives every
// report builder is composed from.
package grouping

import (
	"math"
	"sort"
)

type Entry struct {
	Key   string
	Value float64
}

type PercentEntry struct {
	Key        string
	Value      float64
	Percentage float64
}

// SumBy folds items into per-key sums, sorted descending by sum. Ties keep
// first-seen order.
func SumBy[T any](items []T, key func(T) string, value func(T) float64) []Entry {
	sums := make(map[string]float64, len(items))
	order := make([]string, 0, len(items))

	for _, item := range items {
		k := key(item)
		if _, seen := sums[k]; !seen {
			order = append(order, k)
		}
		sums[k] += value(item)
	}

	entries := make([]Entry, 0, len(order))
	for _, k := range order {
		entries = append(entries, Entry{Key: k, Value: sums[k]})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Value > entries[j].Value
	})

	return entries
}

// CountBy is SumBy with a unit value per item.
func CountBy[T any](items []T, key func(T) string) []Entry {
	return SumBy(items, key, func(T) float64 { return 1 })
}

// WithPercentages attaches percentage-of-total to each entry. A zero total
// yields zero percentages; callers never divide by zero.
func WithPercentages(entries []Entry, total float64) []PercentEntry {
	out := make([]PercentEntry, 0, len(entries))
	for _, e := range entries {
		pct := 0.0
		if total > 0 {
			pct = math.Round(e.Value/total*1000) / 10
		}
		out = append(out, PercentEntry{Key: e.Key, Value: e.Value, Percentage: pct})
	}
	return out
}

// Round1 rounds to one decimal, half away from zero. Applied at emission
// only; intermediate accumulation stays unrounded.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// Total sums entry values.
func Total(entries []Entry) float64 {
	var total float64
	for _, e := range entries {
		total += e.Value
	}
	return total
}
