// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package service

import (
	"slices"
	"strings"
	"time"

	"github.com/linuxfoundation/lfx-v2-event-recurrence/internal/domain/models"
)

// DetectPreset identifies which catalog preset a stored rule matches,
// relative to its anchor date. The match is structural (frequency, interval,
// day list recomputed the same way the builder computes them), never plain
// string comparison, and end conditions do not affect it. Candidates are
// tried in fixed priority order; anything that matches none of them is
// "custom". Empty input returns the empty string.
func (s *PresetService) DetectPreset(rule string, anchor time.Time) string {
	if strings.TrimSpace(rule) == "" {
		return ""
	}

	fields, err := s.engine.Parse(rule)
	if err != nil {
		return models.PresetCustom
	}

	day := dayCode(anchor)
	pos := monthlyPosToken(anchor)

	candidates := []struct {
		key       string
		frequency models.Frequency
		interval  int
		byDay     []string
	}{
		{models.PresetWeekly, models.FrequencyWeekly, 1, []string{day}},
		{models.PresetBiweekly, models.FrequencyWeekly, 2, []string{day}},
		{models.PresetMonthlySameWeek, models.FrequencyMonthly, 1, []string{pos}},
		{models.PresetMonthlyLast, models.FrequencyMonthly, 1, []string{"-1" + day}},
		{models.PresetBimonthly, models.FrequencyMonthly, 2, []string{pos}},
	}

	for _, candidate := range candidates {
		if fields.Frequency == candidate.frequency &&
			fields.Interval == candidate.interval &&
			slices.Equal(fields.ByDay, candidate.byDay) {
			return candidate.key
		}
	}

	return models.PresetCustom
}
