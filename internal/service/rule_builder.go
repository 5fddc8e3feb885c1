// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/linuxfoundation/lfx-v2-event-recurrence/internal/domain/models"
)

// BuildRule turns a chosen preset plus an end condition into the canonical
// recurrence-rule string that gets persisted verbatim. An unknown preset key
// returns the empty string; callers treat that as a validation failure. The
// custom preset also returns empty here because it needs explicit
// parameters; use BuildCustomRule for it.
func (s *PresetService) BuildRule(presetKey string, anchor time.Time, end models.EndOptions) string {
	day := dayCode(anchor)

	var rule string
	switch presetKey {
	case models.PresetWeekly:
		rule = "FREQ=WEEKLY;BYDAY=" + day
	case models.PresetBiweekly:
		rule = "FREQ=WEEKLY;INTERVAL=2;BYDAY=" + day
	case models.PresetMonthlySameWeek:
		rule = "FREQ=MONTHLY;BYDAY=" + monthlyPosToken(anchor)
	case models.PresetMonthlyLast:
		rule = "FREQ=MONTHLY;BYDAY=-1" + day
	case models.PresetBimonthly:
		rule = "FREQ=MONTHLY;INTERVAL=2;BYDAY=" + monthlyPosToken(anchor)
	default:
		return ""
	}

	return rule + endClause(end)
}

// BuildCustomRule builds a rule from explicit custom parameters. With no
// day list, weekly rules fall back to the anchor's weekday and monthly rules
// to the supplied monthly position token (or the anchor's own position when
// none was supplied). An unsupported frequency returns the empty string.
func (s *PresetService) BuildCustomRule(params models.CustomRuleParams, anchor time.Time, end models.EndOptions) string {
	interval := params.Interval
	if interval < 1 {
		interval = 1
	}

	days := params.Days
	var freq string
	switch params.Frequency {
	case models.FrequencyWeekly:
		freq = "FREQ=WEEKLY"
		if len(days) == 0 {
			days = []string{dayCode(anchor)}
		}
	case models.FrequencyMonthly:
		freq = "FREQ=MONTHLY"
		if len(days) == 0 {
			pos := params.MonthlyPos
			if pos == "" {
				pos = monthlyPosToken(anchor)
			}
			days = []string{pos}
		}
	default:
		return ""
	}

	rule := freq
	if interval > 1 {
		rule += fmt.Sprintf(";INTERVAL=%d", interval)
	}
	rule += ";BYDAY=" + strings.Join(days, ",")

	return rule + endClause(end)
}

// ValidateRule checks an authored rule string against the stored grammar.
// Hand-edited custom rules go through this before they are persisted.
func (s *PresetService) ValidateRule(rule string) error {
	return s.engine.Validate(rule)
}

// endClause appends at most one end condition to a rule.
func endClause(end models.EndOptions) string {
	switch end.Type {
	case models.EndTypeDate:
		if end.EndDate.IsZero() {
			return ""
		}
		return ";UNTIL=" + end.EndDate.Format("20060102") + "T235959Z"
	case models.EndTypeCount:
		if end.Count < 1 {
			return ""
		}
		return fmt.Sprintf(";COUNT=%d", end.Count)
	default:
		return ""
	}
}
