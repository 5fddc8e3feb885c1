// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package service

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/linuxfoundation/lfx-v2-event-recurrence/internal/domain"
	"github.com/linuxfoundation/lfx-v2-event-recurrence/internal/domain/models"
	"github.com/linuxfoundation/lfx-v2-event-recurrence/internal/logging"
	"github.com/linuxfoundation/lfx-v2-event-recurrence/pkg/constants"
)

// describeFallback is returned whenever a rule cannot be rendered as a
// sentence. The describer is display-only and must never block rendering.
const describeFallback = "Custom recurrence"

// Describe renders a stored rule as a capitalized human-readable sentence,
// e.g. "Weekly on Tuesday, 10 times" or "Monthly on the last Friday, until
// March 5, 2025". The anchor date fills in the day phrase for rules that
// carry no explicit day list.
func (s *PresetService) Describe(ctx context.Context, rule string, anchor time.Time) string {
	fields, err := s.engine.Parse(rule)
	if err != nil {
		slog.WarnContext(ctx, "describing unparseable recurrence rule",
			logging.ErrKey, err, "rule", rule)
		return describeFallback
	}

	var sentence strings.Builder
	sentence.WriteString(frequencyPhrase(fields))

	if days := dayPhrase(fields, anchor); days != "" {
		sentence.WriteString(" " + days)
	}

	sentence.WriteString(endPhrase(fields))
	return sentence.String()
}

func frequencyPhrase(fields *domain.RuleFields) string {
	switch fields.Frequency {
	case models.FrequencyWeekly:
		if fields.Interval == 1 {
			return "Weekly"
		}
		return fmt.Sprintf("Every %d weeks", fields.Interval)
	case models.FrequencyMonthly:
		if fields.Interval == 1 {
			return "Monthly"
		}
		return fmt.Sprintf("Every %d months", fields.Interval)
	}
	return describeFallback
}

func dayPhrase(fields *domain.RuleFields, anchor time.Time) string {
	if len(fields.ByDay) == 0 {
		// No explicit day list: weekly rules recur on the anchor's weekday,
		// monthly rules on the anchor's day of month.
		switch fields.Frequency {
		case models.FrequencyWeekly:
			return "on " + anchor.Weekday().String()
		case models.FrequencyMonthly:
			return fmt.Sprintf("on day %d", anchor.Day())
		}
		return ""
	}

	names := make([]string, 0, len(fields.ByDay))
	for _, token := range fields.ByDay {
		ordinal, code := splitDayToken(token)
		name, ok := constants.DayNames[code]
		if !ok {
			name = code
		}
		if ordinal != 0 {
			names = append(names, "the "+ordinalPhrase(ordinal)+" "+name)
		} else {
			names = append(names, name)
		}
	}
	return "on " + joinNames(names)
}

func endPhrase(fields *domain.RuleFields) string {
	switch {
	case fields.Count == 1:
		return ", once"
	case fields.Count > 1:
		return fmt.Sprintf(", %d times", fields.Count)
	case fields.Until != nil:
		return ", until " + fields.Until.Format("January 2, 2006")
	}
	return ""
}

// splitDayToken splits a BYDAY token like "-1FR" into its signed ordinal and
// two-letter day code. Tokens without an ordinal return 0.
func splitDayToken(token string) (int, string) {
	if len(token) <= 2 {
		return 0, token
	}
	ordinal, err := strconv.Atoi(token[:len(token)-2])
	if err != nil {
		return 0, token
	}
	return ordinal, token[len(token)-2:]
}

func joinNames(names []string) string {
	switch len(names) {
	case 0:
		return ""
	case 1:
		return names[0]
	case 2:
		return names[0] + " and " + names[1]
	default:
		return strings.Join(names[:len(names)-1], ", ") + " and " + names[len(names)-1]
	}
}
