// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPresetService_Describe(t *testing.T) {
	service := newPresetService()
	ctx := context.Background()

	tests := []struct {
		name     string
		rule     string
		anchor   time.Time
		expected string
	}{
		{
			name:     "weekly",
			rule:     "FREQ=WEEKLY;BYDAY=TU",
			anchor:   date(2024, 1, 2),
			expected: "Weekly on Tuesday",
		},
		{
			name:     "weekly with count",
			rule:     "FREQ=WEEKLY;BYDAY=TU;COUNT=10",
			anchor:   date(2024, 1, 2),
			expected: "Weekly on Tuesday, 10 times",
		},
		{
			name:     "weekly with count of one",
			rule:     "FREQ=WEEKLY;BYDAY=TU;COUNT=1",
			anchor:   date(2024, 1, 2),
			expected: "Weekly on Tuesday, once",
		},
		{
			name:     "biweekly",
			rule:     "FREQ=WEEKLY;INTERVAL=2;BYDAY=FR",
			anchor:   date(2024, 1, 5),
			expected: "Every 2 weeks on Friday",
		},
		{
			name:     "monthly ordinal",
			rule:     "FREQ=MONTHLY;BYDAY=2TU",
			anchor:   date(2024, 1, 9),
			expected: "Monthly on the 2nd Tuesday",
		},
		{
			name:     "monthly last",
			rule:     "FREQ=MONTHLY;BYDAY=-1FR",
			anchor:   date(2024, 1, 26),
			expected: "Monthly on the last Friday",
		},
		{
			name:     "bimonthly with until",
			rule:     "FREQ=MONTHLY;INTERVAL=2;BYDAY=2TU;UNTIL=20250305T235959Z",
			anchor:   date(2024, 1, 9),
			expected: "Every 2 months on the 2nd Tuesday, until March 5, 2025",
		},
		{
			name:     "weekly multiple days",
			rule:     "FREQ=WEEKLY;BYDAY=MO,WE,FR",
			anchor:   date(2024, 1, 1),
			expected: "Weekly on Monday, Wednesday and Friday",
		},
		{
			name:     "weekly without day list falls back to the anchor weekday",
			rule:     "FREQ=WEEKLY",
			anchor:   date(2024, 1, 4),
			expected: "Weekly on Thursday",
		},
		{
			name:     "monthly without day list falls back to the anchor day",
			rule:     "FREQ=MONTHLY",
			anchor:   date(2024, 1, 15),
			expected: "Monthly on day 15",
		},
		{
			name:     "unparseable rule",
			rule:     "FREQ=EVERY-SO-OFTEN",
			anchor:   date(2024, 1, 2),
			expected: describeFallback,
		},
		{
			name:     "empty rule",
			rule:     "",
			anchor:   date(2024, 1, 2),
			expected: describeFallback,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, service.Describe(ctx, tt.rule, tt.anchor))
		})
	}
}

func TestSplitDayToken(t *testing.T) {
	tests := []struct {
		token   string
		ordinal int
		code    string
	}{
		{"TU", 0, "TU"},
		{"2TU", 2, "TU"},
		{"-1FR", -1, "FR"},
		{"5WE", 5, "WE"},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			ordinal, code := splitDayToken(tt.token)
			assert.Equal(t, tt.ordinal, ordinal)
			assert.Equal(t, tt.code, code)
		})
	}
}

func TestJoinNames(t *testing.T) {
	assert.Equal(t, "", joinNames(nil))
	assert.Equal(t, "Monday", joinNames([]string{"Monday"}))
	assert.Equal(t, "Monday and Friday", joinNames([]string{"Monday", "Friday"}))
	assert.Equal(t, "Monday, Wednesday and Friday", joinNames([]string{"Monday", "Wednesday", "Friday"}))
}
