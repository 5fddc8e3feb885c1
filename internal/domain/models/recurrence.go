// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package models

import (
	"time"
)

// Frequency is the recurrence frequency of a rule. The persisted rule
// grammar supports weekly and monthly series only.
type Frequency string

// Recurrence frequencies
const (
	FrequencyWeekly  Frequency = "WEEKLY"
	FrequencyMonthly Frequency = "MONTHLY"
)

// Preset keys, in catalog order. The catalog always returns all six.
const (
	PresetWeekly          = "weekly"
	PresetBiweekly        = "biweekly"
	PresetMonthlySameWeek = "monthly_same_week"
	PresetMonthlyLast     = "monthly_last"
	PresetBimonthly       = "bimonthly"
	PresetCustom          = "custom"
)

// Preset is one human-readable recurrence choice offered on the event form.
type Preset struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

// EndType selects the end condition of a recurrence rule.
type EndType string

// Recurrence end conditions
const (
	EndTypeNever EndType = "never"
	EndTypeDate  EndType = "date"
	EndTypeCount EndType = "count"
)

// EndOptions is the end condition supplied when building a rule. EndDate is
// consulted only when Type is EndTypeDate, Count only when Type is
// EndTypeCount.
type EndOptions struct {
	Type    EndType   `json:"type"`
	EndDate time.Time `json:"end_date,omitempty"`
	Count   int       `json:"count,omitempty"`
}

// CustomRuleParams are the explicit parameters accepted for the custom
// preset. Days holds two-letter day codes, each optionally prefixed with a
// signed ordinal for monthly rules (e.g. "2TU", "-1FR"). When Days is empty,
// weekly rules default to the anchor's weekday and monthly rules to
// MonthlyPos (or, if that is also empty, to the anchor's week-of-month
// position).
type CustomRuleParams struct {
	Frequency  Frequency `json:"frequency"`
	Interval   int       `json:"interval,omitempty"`
	Days       []string  `json:"days,omitempty"`
	MonthlyPos string    `json:"monthly_pos,omitempty"`
}
