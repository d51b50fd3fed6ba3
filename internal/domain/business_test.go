package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIsOpenAt(t *testing.T) {
	b := &Business{
		Hours: map[string]DayHours{
			"monday": {Open: 900, Close: 1700},
		},
	}

	// 2026-01-05 is a Monday.
	monday := func(hour, minute int) time.Time {
		return time.Date(2026, 1, 5, hour, minute, 0, 0, time.UTC)
	}

	tests := []struct {
		name string
		at   time.Time
		want bool
	}{
		{"before opening", monday(8, 59), false},
		{"at opening", monday(9, 0), true},
		{"mid day", monday(12, 30), true},
		{"minute before close", monday(16, 59), true},
		{"exactly at close", monday(17, 0), false},
		{"after close", monday(18, 0), false},
		{"closed day", time.Date(2026, 1, 6, 12, 0, 0, 0, time.UTC), false}, // Tuesday, no entry
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, b.IsOpenAt(tt.at))
		})
	}
}

func TestAddTag(t *testing.T) {
	b := &Business{}

	assert.True(t, b.AddTag("coffee"))
	assert.False(t, b.AddTag("coffee"), "duplicate tag")
	assert.False(t, b.AddTag("  "), "blank tag")

	for i := range MaxTags {
		b.AddTag(string(rune('a' + i)))
	}
	assert.Len(t, b.Tags, MaxTags)
	assert.False(t, b.AddTag("overflow"))
}

func TestApplyRatings(t *testing.T) {
	b := &Business{AverageRating: 4.2, TotalReviews: 3}

	b.ApplyRatings([]float64{4.5, 3.0, 5.0})
	assert.Equal(t, 4.2, b.AverageRating) // mean 4.1666 rounds to 4.2
	assert.Equal(t, 3, b.TotalReviews)

	b.ApplyRatings(nil)
	assert.Zero(t, b.AverageRating)
	assert.Zero(t, b.TotalReviews)
}

func TestValidRating(t *testing.T) {
	for _, valid := range []float64{0.5, 3.0, 5} {
		assert.True(t, ValidRating(valid), "rating %v", valid)
	}
	for _, invalid := range []float64{0, 0.3, 5.5, -1, 4.75} {
		assert.False(t, ValidRating(invalid), "rating %v", invalid)
	}
}
