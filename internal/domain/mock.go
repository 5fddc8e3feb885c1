// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package domain

import (
	"time"

	"github.com/stretchr/testify/mock"
)

// MockRecurrenceEngine implements RecurrenceEngine for testing
type MockRecurrenceEngine struct {
	mock.Mock
}

func (m *MockRecurrenceEngine) Parse(rule string) (*RuleFields, error) {
	args := m.Called(rule)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*RuleFields), args.Error(1)
}

func (m *MockRecurrenceEngine) OccurrencesBetween(rule string, anchor, windowStart, windowEnd time.Time) ([]time.Time, error) {
	args := m.Called(rule, anchor, windowStart, windowEnd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]time.Time), args.Error(1)
}

func (m *MockRecurrenceEngine) OccurrenceAfter(rule string, anchor, after time.Time) (*time.Time, error) {
	args := m.Called(rule, anchor, after)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*time.Time), args.Error(1)
}

func (m *MockRecurrenceEngine) Validate(rule string) error {
	args := m.Called(rule)
	return args.Error(0)
}
