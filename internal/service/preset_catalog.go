// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package service

import (
	"strconv"
	"time"

	"github.com/linuxfoundation/lfx-v2-event-recurrence/internal/domain"
	"github.com/linuxfoundation/lfx-v2-event-recurrence/internal/domain/models"
	"github.com/linuxfoundation/lfx-v2-event-recurrence/pkg/constants"
)

// PresetService implements the authoring side of the engine: the preset
// catalog, the rule builder, the preset detector, and the describer.
type PresetService struct {
	engine domain.RecurrenceEngine
}

// NewPresetService creates a new PresetService
func NewPresetService(engine domain.RecurrenceEngine) *PresetService {
	return &PresetService{engine: engine}
}

// ListPresets returns the ordered recurrence choices for the event form.
// Labels are computed relative to the anchor date's weekday and
// week-of-month position; with no anchor they degrade to generic text.
// All six presets are always returned.
func (s *PresetService) ListPresets(anchor *time.Time) []models.Preset {
	if anchor == nil {
		return []models.Preset{
			{Key: models.PresetWeekly, Label: "Weekly"},
			{Key: models.PresetBiweekly, Label: "Every 2 weeks"},
			{Key: models.PresetMonthlySameWeek, Label: "Monthly"},
			{Key: models.PresetMonthlyLast, Label: "Monthly (last weekday)"},
			{Key: models.PresetBimonthly, Label: "Every 2 months"},
			{Key: models.PresetCustom, Label: "Custom"},
		}
	}

	weekday := anchor.Weekday().String()
	ordinal := ordinalPhrase(weekOfMonth(*anchor))

	return []models.Preset{
		{Key: models.PresetWeekly, Label: "Weekly on " + weekday},
		{Key: models.PresetBiweekly, Label: "Every 2 weeks on " + weekday},
		{Key: models.PresetMonthlySameWeek, Label: "Monthly on the " + ordinal + " " + weekday},
		{Key: models.PresetMonthlyLast, Label: "Monthly on the last " + weekday},
		{Key: models.PresetBimonthly, Label: "Every 2 months on the " + ordinal + " " + weekday},
		{Key: models.PresetCustom, Label: "Custom"},
	}
}

// weekOfMonth returns the 1-based week-of-month position of a date
// (ceil(day / 7), so the 1st through 7th are week 1).
func weekOfMonth(date time.Time) int {
	return (date.Day()-1)/7 + 1
}

// dayCode returns the RFC5545 two-letter code for a date's weekday.
func dayCode(date time.Time) string {
	return constants.DayCodes[date.Weekday()]
}

// monthlyPosToken returns the ordinal BYDAY token anchored at a date,
// e.g. "2TU" for the second Tuesday of the month.
func monthlyPosToken(date time.Time) string {
	return strconv.Itoa(weekOfMonth(date)) + dayCode(date)
}

// ordinalPhrase renders a week-of-month position for display.
func ordinalPhrase(position int) string {
	if position == -1 {
		return "last"
	}
	if label, ok := constants.OrdinalLabels[position]; ok {
		return label
	}
	return strconv.Itoa(position) + "th"
}
