// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package service

import (
	"time"

	"github.com/linuxfoundation/lfx-v2-event-recurrence/internal/domain"
	"github.com/linuxfoundation/lfx-v2-event-recurrence/pkg/utils"
)

// OccurrenceService expands recurrence-rule strings into concrete occurrence
// dates. Expansion is deterministic: a fixed rule, anchor, and window always
// produce the same ascending duplicate-free date list.
type OccurrenceService struct {
	engine domain.RecurrenceEngine
}

// NewOccurrenceService creates a new OccurrenceService
func NewOccurrenceService(engine domain.RecurrenceEngine) *OccurrenceService {
	return &OccurrenceService{engine: engine}
}

// Expand returns the occurrence dates of the rule anchored at anchor that
// fall inside [windowStart, windowEnd], inclusive of both bounds. A
// malformed rule is a hard failure, never a silent empty result.
func (s *OccurrenceService) Expand(rule string, anchor, windowStart, windowEnd time.Time) ([]time.Time, error) {
	occurrences, err := s.engine.OccurrencesBetween(rule, anchor, windowStart, windowEnd)
	if err != nil {
		return nil, err
	}

	dates := make([]time.Time, 0, len(occurrences))
	var last time.Time
	for _, occurrence := range occurrences {
		if !last.IsZero() && !occurrence.After(last) {
			continue
		}
		dates = append(dates, occurrence)
		last = occurrence
	}
	return dates, nil
}

// NextOccurrence returns the first occurrence strictly after the given date,
// or nil when the series has ended.
func (s *OccurrenceService) NextOccurrence(rule string, anchor, after time.Time) (*time.Time, error) {
	return s.engine.OccurrenceAfter(rule, anchor, after)
}

// ComputeEndDate returns the concrete end date of a series: the UNTIL date
// when the rule carries one, the date of the last COUNT-bounded occurrence
// otherwise, and the policy cap of one year past the anchor for open-ended
// series. It is total: a malformed rule also gets the one-year cap.
func (s *OccurrenceService) ComputeEndDate(rule string, anchor time.Time) time.Time {
	fields, err := s.engine.Parse(rule)
	if err != nil {
		return openEndedCap(anchor)
	}

	if fields.Until != nil {
		return *fields.Until
	}

	if fields.Count > 0 {
		// Walk the generator forward; COUNT bounds the work.
		last := utils.DateOnly(anchor)
		cursor := last.AddDate(0, 0, -1)
		for i := 0; i < fields.Count; i++ {
			next, err := s.engine.OccurrenceAfter(rule, anchor, cursor)
			if err != nil || next == nil {
				break
			}
			last = *next
			cursor = *next
		}
		return last
	}

	return openEndedCap(anchor)
}

func openEndedCap(anchor time.Time) time.Time {
	return utils.DateOnly(anchor).AddDate(1, 0, 0)
}
