package grouping

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type sample struct {
	key   string
	value float64
}

func sampleKey(s sample) string    { return s.key }
func sampleValue(s sample) float64 { return s.value }

func TestSumBy(t *testing.T) {
	t.Run("sums and sorts descending", func(t *testing.T) {
		items := []sample{
			{"Acme", 5},
			{"Globex", 2},
			{"Acme", 3},
		}

		entries := SumBy(items, sampleKey, sampleValue)

		assert.Equal(t, []Entry{
			{Key: "Acme", Value: 8},
			{Key: "Globex", Value: 2},
		}, entries)
	})

	t.Run("ties keep first-seen order", func(t *testing.T) {
		items := []sample{
			{"b", 4},
			{"a", 4},
			{"c", 4},
		}

		entries := SumBy(items, sampleKey, sampleValue)

		assert.Equal(t, []Entry{
			{Key: "b", Value: 4},
			{Key: "a", Value: 4},
			{Key: "c", Value: 4},
		}, entries)
	})

	t.Run("empty key is a normal bucket", func(t *testing.T) {
		entries := SumBy([]sample{{"", 1}}, sampleKey, sampleValue)
		assert.Equal(t, []Entry{{Key: "", Value: 1}}, entries)
	})

	t.Run("empty input yields empty output", func(t *testing.T) {
		entries := SumBy(nil, sampleKey, sampleValue)
		assert.Empty(t, entries)
	})
}

func TestCountBy(t *testing.T) {
	items := []sample{{"a", 10}, {"b", 20}, {"a", 30}}
	entries := CountBy(items, sampleKey)

	assert.Equal(t, []Entry{
		{Key: "a", Value: 2},
		{Key: "b", Value: 1},
	}, entries)
}

func TestWithPercentages(t *testing.T) {
	t.Run("percentages relative to total", func(t *testing.T) {
		entries := []Entry{{Key: "Acme", Value: 8}, {Key: "Globex", Value: 2}}
		out := WithPercentages(entries, 10)

		assert.Equal(t, []PercentEntry{
			{Key: "Acme", Value: 8, Percentage: 80.0},
			{Key: "Globex", Value: 2, Percentage: 20.0},
		}, out)
	})

	t.Run("zero total emits zero percentages", func(t *testing.T) {
		out := WithPercentages([]Entry{{Key: "a", Value: 0}}, 0)
		assert.Equal(t, 0.0, out[0].Percentage)
	})

	t.Run("percentages sum close to 100 over many buckets", func(t *testing.T) {
		entries := []Entry{
			{Key: "a", Value: 1}, {Key: "b", Value: 1}, {Key: "c", Value: 1},
			{Key: "d", Value: 1}, {Key: "e", Value: 1}, {Key: "f", Value: 1},
			{Key: "g", Value: 1},
		}

		var sum float64
		for _, e := range WithPercentages(entries, Total(entries)) {
			sum += e.Percentage
		}
		assert.InDelta(t, 100.0, sum, 0.2)
	})
}

func TestRound1(t *testing.T) {
	assert.Equal(t, 8.5, Round1(8.45))
	assert.Equal(t, -8.5, Round1(-8.45))
	assert.Equal(t, 3.0, Round1(2.999999))
}
