// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linuxfoundation/lfx-v2-event-recurrence/internal/domain"
	"github.com/linuxfoundation/lfx-v2-event-recurrence/internal/infrastructure/rrule"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func newOccurrenceService() *OccurrenceService {
	return NewOccurrenceService(rrule.NewEngine())
}

func TestOccurrenceService_Expand(t *testing.T) {
	service := newOccurrenceService()

	tests := []struct {
		name        string
		rule        string
		anchor      time.Time
		windowStart time.Time
		windowEnd   time.Time
		expected    []time.Time
	}{
		{
			name:        "monthly on the first tuesday",
			rule:        "FREQ=MONTHLY;BYDAY=1TU",
			anchor:      date(2024, 1, 2),
			windowStart: date(2024, 1, 1),
			windowEnd:   date(2024, 4, 30),
			expected: []time.Time{
				date(2024, 1, 2),
				date(2024, 2, 6),
				date(2024, 3, 5),
				date(2024, 4, 2),
			},
		},
		{
			name:        "monthly on the last tuesday",
			rule:        "FREQ=MONTHLY;BYDAY=-1TU",
			anchor:      date(2024, 1, 2),
			windowStart: date(2024, 1, 1),
			windowEnd:   date(2024, 4, 30),
			expected: []time.Time{
				date(2024, 1, 30),
				date(2024, 2, 27),
				date(2024, 3, 26),
				date(2024, 4, 30),
			},
		},
		{
			name:        "weekly count bounded inside a one year window",
			rule:        "FREQ=WEEKLY;BYDAY=TU;COUNT=10",
			anchor:      date(2024, 1, 2),
			windowStart: date(2024, 1, 1),
			windowEnd:   date(2024, 12, 31),
			expected: []time.Time{
				date(2024, 1, 2),
				date(2024, 1, 9),
				date(2024, 1, 16),
				date(2024, 1, 23),
				date(2024, 1, 30),
				date(2024, 2, 6),
				date(2024, 2, 13),
				date(2024, 2, 20),
				date(2024, 2, 27),
				date(2024, 3, 5),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dates, err := service.Expand(tt.rule, tt.anchor, tt.windowStart, tt.windowEnd)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, dates)
		})
	}
}

func TestOccurrenceService_Expand_CountSpacing(t *testing.T) {
	service := newOccurrenceService()

	dates, err := service.Expand("FREQ=WEEKLY;BYDAY=TU;COUNT=10", date(2024, 1, 2), date(2024, 1, 1), date(2024, 12, 31))
	require.NoError(t, err)
	require.Len(t, dates, 10)
	for i := 1; i < len(dates); i++ {
		assert.Equal(t, 7*24*time.Hour, dates[i].Sub(dates[i-1]))
	}
}

func TestOccurrenceService_Expand_Deterministic(t *testing.T) {
	service := newOccurrenceService()

	first, err := service.Expand("FREQ=WEEKLY;INTERVAL=2;BYDAY=TU", date(2024, 1, 2), date(2024, 1, 1), date(2024, 6, 30))
	require.NoError(t, err)
	second, err := service.Expand("FREQ=WEEKLY;INTERVAL=2;BYDAY=TU", date(2024, 1, 2), date(2024, 1, 1), date(2024, 6, 30))
	require.NoError(t, err)

	assert.Equal(t, first, second)
	for i := 1; i < len(first); i++ {
		assert.True(t, first[i].After(first[i-1]), "dates must be strictly ascending")
	}
}

func TestOccurrenceService_Expand_MalformedRule(t *testing.T) {
	service := newOccurrenceService()

	_, err := service.Expand("FREQ=SOMETIMES", date(2024, 1, 2), date(2024, 1, 1), date(2024, 12, 31))
	require.Error(t, err)
	assert.Equal(t, domain.ErrorTypeValidation, domain.GetErrorType(err))
}

func TestOccurrenceService_NextOccurrence(t *testing.T) {
	service := newOccurrenceService()

	t.Run("returns the occurrence strictly after the date", func(t *testing.T) {
		next, err := service.NextOccurrence("FREQ=WEEKLY;BYDAY=TU", date(2024, 1, 2), date(2024, 1, 2))
		require.NoError(t, err)
		require.NotNil(t, next)
		assert.Equal(t, date(2024, 1, 9), *next)
	})

	t.Run("returns nil once the series has ended", func(t *testing.T) {
		next, err := service.NextOccurrence("FREQ=WEEKLY;BYDAY=TU;COUNT=3", date(2024, 1, 2), date(2024, 1, 16))
		require.NoError(t, err)
		assert.Nil(t, next)
	})
}

func TestOccurrenceService_ComputeEndDate(t *testing.T) {
	service := newOccurrenceService()

	tests := []struct {
		name     string
		rule     string
		anchor   time.Time
		expected time.Time
	}{
		{
			name:     "until clause wins",
			rule:     "FREQ=WEEKLY;BYDAY=TU;UNTIL=20240305T235959Z",
			anchor:   date(2024, 1, 2),
			expected: date(2024, 3, 5),
		},
		{
			name:     "count clause resolves to the last occurrence",
			rule:     "FREQ=WEEKLY;BYDAY=TU;COUNT=10",
			anchor:   date(2024, 1, 2),
			expected: date(2024, 3, 5),
		},
		{
			name:     "open ended series capped at one year",
			rule:     "FREQ=WEEKLY;BYDAY=TU",
			anchor:   date(2024, 1, 2),
			expected: date(2025, 1, 2),
		},
		{
			name:     "malformed rule falls back to the one year cap",
			rule:     "garbage",
			anchor:   date(2024, 1, 2),
			expected: date(2025, 1, 2),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, service.ComputeEndDate(tt.rule, tt.anchor))
		})
	}
}

func TestOccurrenceService_ComputeEndDate_MatchesExpansion(t *testing.T) {
	service := newOccurrenceService()
	rule := "FREQ=MONTHLY;BYDAY=2TU;COUNT=5"
	anchor := date(2024, 1, 9)

	dates, err := service.Expand(rule, anchor, anchor, anchor.AddDate(5, 0, 0))
	require.NoError(t, err)
	require.Len(t, dates, 5)

	assert.Equal(t, dates[4], service.ComputeEndDate(rule, anchor))
}
