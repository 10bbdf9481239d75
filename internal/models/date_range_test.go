package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDateRange_BothBounds(t *testing.T) {
	t.Parallel()

	dateRange, err := ParseDateRange("2024-01-15", "2024-01-25")
	require.NoError(t, err)

	require.NotNil(t, dateRange.From)
	require.NotNil(t, dateRange.To)
	assert.Equal(t, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), *dateRange.From)
	assert.Equal(t, time.Date(2024, 1, 25, 23, 59, 59, 999000000, time.UTC), *dateRange.To)
}

func TestParseDateRange_Unbounded(t *testing.T) {
	t.Parallel()

	dateRange, err := ParseDateRange("", "")
	require.NoError(t, err)
	assert.Nil(t, dateRange.From)
	assert.Nil(t, dateRange.To)
	assert.True(t, dateRange.IsUnbounded())
}

func TestParseDateRange_OneSided(t *testing.T) {
	t.Parallel()

	fromOnly, err := ParseDateRange("2024-01-15", "")
	require.NoError(t, err)
	assert.NotNil(t, fromOnly.From)
	assert.Nil(t, fromOnly.To)

	toOnly, err := ParseDateRange("", "2024-01-25")
	require.NoError(t, err)
	assert.Nil(t, toOnly.From)
	assert.NotNil(t, toOnly.To)
}

func TestParseDateRange_MalformedInputRejected(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		from string
		to   string
	}{
		{name: "garbage from", from: "not-a-date", to: ""},
		{name: "garbage to", from: "", to: "not-a-date"},
		{name: "wrong layout", from: "15/01/2024", to: ""},
		{name: "datetime instead of date", from: "2024-01-15T12:00:00Z", to: ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := ParseDateRange(tt.from, tt.to)
			assert.Error(t, err)
		})
	}
}

func TestParseDateRange_FromAfterTo(t *testing.T) {
	t.Parallel()

	_, err := ParseDateRange("2024-02-01", "2024-01-01")
	assert.Error(t, err)
}

func TestDateRange_Contains_InclusiveBounds(t *testing.T) {
	t.Parallel()

	dateRange, err := ParseDateRange("2024-01-15", "2024-01-25")
	require.NoError(t, err)

	assert.True(t, dateRange.Contains(time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)), "start of from day is inside")
	assert.True(t, dateRange.Contains(time.Date(2024, 1, 20, 12, 0, 0, 0, time.UTC)))
	assert.True(t, dateRange.Contains(time.Date(2024, 1, 25, 23, 59, 59, 999000000, time.UTC)), "last instant of to day is inside")
	assert.False(t, dateRange.Contains(time.Date(2024, 1, 14, 23, 59, 59, 0, time.UTC)))
	assert.False(t, dateRange.Contains(time.Date(2024, 1, 26, 0, 0, 0, 0, time.UTC)))
}
