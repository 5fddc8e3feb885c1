// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

// Package rrule evaluates recurrence-rule strings with the teambition
// rrule-go library. It is the only package that touches the parser; its
// native types stay behind the domain.RecurrenceEngine interface.
package rrule

import (
	"strconv"
	"strings"
	"time"

	"github.com/teambition/rrule-go"

	"github.com/linuxfoundation/lfx-v2-event-recurrence/internal/domain"
	"github.com/linuxfoundation/lfx-v2-event-recurrence/internal/domain/models"
	"github.com/linuxfoundation/lfx-v2-event-recurrence/pkg/utils"
)

// rruleDayCodes is indexed by the library's weekday numbering (Monday = 0).
var rruleDayCodes = [...]string{"MO", "TU", "WE", "TH", "FR", "SA", "SU"}

// Engine implements the domain.RecurrenceEngine interface
type Engine struct{}

// NewEngine creates a new Engine
func NewEngine() *Engine {
	return &Engine{}
}

// Parse decomposes a rule string into its structural fields, rejecting any
// string outside the persisted grammar:
// FREQ=<WEEKLY|MONTHLY>[;INTERVAL=<n>][;BYDAY=<day-list>][;UNTIL=<ts>|;COUNT=<n>]
func (e *Engine) Parse(rule string) (*domain.RuleFields, error) {
	trimmed := strings.TrimSpace(rule)
	if trimmed == "" {
		return nil, domain.NewValidationError("empty recurrence rule")
	}

	opt, err := rrule.StrToROption(trimmed)
	if err != nil {
		return nil, domain.NewValidationError("malformed recurrence rule", err)
	}

	fields := &domain.RuleFields{
		Interval: opt.Interval,
		Count:    opt.Count,
	}
	if fields.Interval < 1 {
		fields.Interval = 1
	}

	switch opt.Freq {
	case rrule.WEEKLY:
		fields.Frequency = models.FrequencyWeekly
	case rrule.MONTHLY:
		fields.Frequency = models.FrequencyMonthly
	default:
		return nil, domain.NewValidationError("unsupported rule frequency")
	}

	// The stored grammar carries no other BY* components.
	if len(opt.Bymonthday) > 0 || len(opt.Bymonth) > 0 || len(opt.Bysetpos) > 0 ||
		len(opt.Byyearday) > 0 || len(opt.Byweekno) > 0 {
		return nil, domain.NewValidationError("unsupported rule component")
	}

	for _, wd := range opt.Byweekday {
		fields.ByDay = append(fields.ByDay, dayToken(wd))
	}

	if !opt.Until.IsZero() {
		until := utils.DateOnly(opt.Until)
		fields.Until = &until
	}

	return fields, nil
}

// OccurrencesBetween enumerates occurrence dates inside the window,
// inclusive of both bounds, ascending.
func (e *Engine) OccurrencesBetween(rule string, anchor, windowStart, windowEnd time.Time) ([]time.Time, error) {
	r, err := e.prepare(rule, anchor)
	if err != nil {
		return nil, err
	}

	occurrences := r.Between(utils.AtNoonUTC(windowStart), utils.AtNoonUTC(windowEnd), true)

	dates := make([]time.Time, 0, len(occurrences))
	for _, occ := range occurrences {
		dates = append(dates, utils.DateOnly(occ))
	}
	return dates, nil
}

// OccurrenceAfter returns the first occurrence date strictly after the given
// date, or nil when the series has ended.
func (e *Engine) OccurrenceAfter(rule string, anchor, after time.Time) (*time.Time, error) {
	r, err := e.prepare(rule, anchor)
	if err != nil {
		return nil, err
	}

	next := r.After(utils.AtNoonUTC(after), false)
	if next.IsZero() {
		return nil, nil
	}

	date := utils.DateOnly(next)
	return &date, nil
}

// Validate reports whether the rule string parses under the persisted grammar.
func (e *Engine) Validate(rule string) error {
	_, err := e.Parse(rule)
	return err
}

// prepare gates the rule through the grammar check and anchors it at noon
// UTC of the anchor date for evaluation.
func (e *Engine) prepare(rule string, anchor time.Time) (*rrule.RRule, error) {
	if _, err := e.Parse(rule); err != nil {
		return nil, err
	}

	opt, err := rrule.StrToROption(strings.TrimSpace(rule))
	if err != nil {
		return nil, domain.NewValidationError("malformed recurrence rule", err)
	}
	opt.Dtstart = utils.AtNoonUTC(anchor)

	r, err := rrule.NewRRule(*opt)
	if err != nil {
		return nil, domain.NewValidationError("malformed recurrence rule", err)
	}
	return r, nil
}

func dayToken(wd rrule.Weekday) string {
	code := rruleDayCodes[wd.Day()]
	if n := wd.N(); n != 0 {
		return strconv.Itoa(n) + code
	}
	return code
}

// Compile-time interface check
var _ domain.RecurrenceEngine = (*Engine)(nil)
