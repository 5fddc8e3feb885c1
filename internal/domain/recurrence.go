// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package domain

import (
	"time"

	"github.com/linuxfoundation/lfx-v2-event-recurrence/internal/domain/models"
)

// RuleFields is the structural decomposition of a recurrence rule string.
// ByDay entries are two-letter day codes, each optionally prefixed with a
// signed ordinal for monthly rules (e.g. "2TU", "-1FR").
type RuleFields struct {
	Frequency models.Frequency
	Interval  int
	ByDay     []string
	Count     int
	Until     *time.Time
}

// RecurrenceEngine abstracts the recurrence-grammar parser and evaluator so
// that the grammar engine is swappable. Implementations never leak their
// native parser types through this interface.
//
// All dates crossing this interface are calendar dates (midnight UTC); the
// engine anchors its internal arithmetic at a fixed time of day and never
// reasons about wall-clock time zones.
type RecurrenceEngine interface {
	// Parse decomposes a rule string into its structural fields.
	// A string that does not conform to the persisted rule grammar is a
	// validation error.
	Parse(rule string) (*RuleFields, error)

	// OccurrencesBetween enumerates the occurrence dates of the rule anchored
	// at anchor that fall inside [windowStart, windowEnd], inclusive of both
	// bounds, in ascending order.
	OccurrencesBetween(rule string, anchor, windowStart, windowEnd time.Time) ([]time.Time, error)

	// OccurrenceAfter returns the first occurrence date strictly after the
	// given date, or nil if the series has ended.
	OccurrenceAfter(rule string, anchor, after time.Time) (*time.Time, error)

	// Validate reports whether the rule string parses under the persisted
	// grammar.
	Validate(rule string) error
}
