// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

// Package ics renders resolved event instances as iCalendar feeds for the
// surrounding platform's calendar export.
package ics

import (
	"fmt"
	"strings"
	"time"

	"github.com/linuxfoundation/lfx-v2-event-recurrence/internal/domain/models"
)

// ICS constants for consistent values across all generated feeds
const (
	ICSProdID         = "-//Linux Foundation//LFX Event Recurrence//EN"
	ICALVersion       = "2.0"
	ICALScale         = "GREGORIAN"
	ICALMaxLineLength = 75 // this is arbitrarily set to 75 characters to avoid long lines
)

// UTF-8 byte masks for line folding safety
const (
	UTF8TwoBitMask         = 0xC0 // Mask to isolate first two bits (11000000)
	UTF8ContinuationPrefix = 0x80 // UTF-8 continuation byte prefix (10000000)
)

// wallClockLayout is the wall-clock encoding of event start/end times.
const wallClockLayout = "15:04"

// EventFeedGenerator is the interface for rendering events as ICS feeds
type EventFeedGenerator interface {
	GenerateInstancesICS(params InstancesFeedParams) (string, error)
	GenerateSeriesICS(params SeriesFeedParams) (string, error)
}

// FeedGenerator generates ICS (iCalendar) feeds from resolved instances
type FeedGenerator struct{}

// NewFeedGenerator creates a new feed generator
func NewFeedGenerator() *FeedGenerator {
	return &FeedGenerator{}
}

// Ensure [FeedGenerator] implements [EventFeedGenerator]
var _ EventFeedGenerator = (*FeedGenerator)(nil)

// InstancesFeedParams carries a resolved instance list to render, one VEVENT
// per instance. Instances are expected to come straight from the resolver,
// so overrides are already merged and cancelled dates already dropped.
type InstancesFeedParams struct {
	Instances []models.ExpandedInstance
}

// GenerateInstancesICS renders resolved instances as a calendar feed.
func (g *FeedGenerator) GenerateInstancesICS(params InstancesFeedParams) (string, error) {
	var ics strings.Builder

	dtstamp := time.Now().UTC().Format("20060102T150405Z")

	ics.WriteString("BEGIN:VCALENDAR\r\n")
	ics.WriteString(fmt.Sprintf("VERSION:%s\r\n", ICALVersion))
	ics.WriteString(fmt.Sprintf("PRODID:%s\r\n", ICSProdID))
	ics.WriteString(fmt.Sprintf("CALSCALE:%s\r\n", ICALScale))
	ics.WriteString("METHOD:PUBLISH\r\n")

	for _, instance := range params.Instances {
		if instance.EventUID == "" {
			return "", fmt.Errorf("instance dated %s has no event UID", instance.Date.Format(models.DateLayout))
		}

		ics.WriteString("BEGIN:VEVENT\r\n")
		ics.WriteString(fmt.Sprintf("UID:%s-%s\r\n", instance.EventUID, instance.Date.Format("20060102")))
		ics.WriteString(fmt.Sprintf("DTSTAMP:%s\r\n", dtstamp))
		writeInstanceTimes(&ics, instance.Date, instance.StartTime, instance.EndTime)
		ics.WriteString(fmt.Sprintf("SUMMARY:%s\r\n", escapeICSText(instance.Title)))

		if instance.Description != "" {
			ics.WriteString(fmt.Sprintf("DESCRIPTION:%s\r\n", escapeICSText(instance.Description)))
		}

		location := instanceLocation(instance)
		if location != "" {
			ics.WriteString(fmt.Sprintf("LOCATION:%s\r\n", escapeICSText(location)))
		}
		if instance.IsVirtual && instance.MeetingLink != "" {
			ics.WriteString(fmt.Sprintf("URL:%s\r\n", instance.MeetingLink))
		}

		ics.WriteString("STATUS:CONFIRMED\r\n")
		ics.WriteString("TRANSP:OPAQUE\r\n")
		ics.WriteString("END:VEVENT\r\n")
	}

	ics.WriteString("END:VCALENDAR\r\n")

	return ics.String(), nil
}

// SeriesFeedParams carries an authored event to render in its series form:
// a single VEVENT with the recurrence rule attached, plus EXDATE entries for
// cancelled occurrence dates.
type SeriesFeedParams struct {
	Event          *models.Event
	CancelledDates []time.Time
}

// GenerateSeriesICS renders an event series as a single rule-bearing VEVENT.
func (g *FeedGenerator) GenerateSeriesICS(params SeriesFeedParams) (string, error) {
	event := params.Event
	if event == nil {
		return "", fmt.Errorf("event is required")
	}
	if event.UID == "" {
		return "", fmt.Errorf("event has no UID")
	}

	dtstamp := time.Now().UTC().Format("20060102T150405Z")

	var ics strings.Builder
	ics.WriteString("BEGIN:VCALENDAR\r\n")
	ics.WriteString(fmt.Sprintf("VERSION:%s\r\n", ICALVersion))
	ics.WriteString(fmt.Sprintf("PRODID:%s\r\n", ICSProdID))
	ics.WriteString(fmt.Sprintf("CALSCALE:%s\r\n", ICALScale))
	ics.WriteString("METHOD:PUBLISH\r\n")

	ics.WriteString("BEGIN:VEVENT\r\n")
	ics.WriteString(fmt.Sprintf("UID:%s\r\n", event.UID))
	ics.WriteString(fmt.Sprintf("DTSTAMP:%s\r\n", dtstamp))
	writeInstanceTimes(&ics, event.StartDate, event.StartTime, event.EndTime)

	if event.IsRecurring() {
		ics.WriteString(fmt.Sprintf("RRULE:%s\r\n", event.Rule()))

		// Exclude cancelled occurrences from the series.
		if len(params.CancelledDates) > 0 {
			exdates := make([]string, 0, len(params.CancelledDates))
			for _, cancelled := range params.CancelledDates {
				exdates = append(exdates, cancelled.Format("20060102"))
			}
			ics.WriteString(fmt.Sprintf("EXDATE;VALUE=DATE:%s\r\n", strings.Join(exdates, ",")))
		}
	}

	ics.WriteString(fmt.Sprintf("SUMMARY:%s\r\n", escapeICSText(event.Title)))
	if event.Description != "" {
		ics.WriteString(fmt.Sprintf("DESCRIPTION:%s\r\n", escapeICSText(event.Description)))
	}

	location := event.Location
	if event.IsVirtual && event.MeetingLink != "" {
		location = event.MeetingLink
	}
	if location != "" {
		ics.WriteString(fmt.Sprintf("LOCATION:%s\r\n", escapeICSText(location)))
	}

	if event.Status == models.EventStatusCancelled {
		ics.WriteString("STATUS:CANCELLED\r\n")
	} else {
		ics.WriteString("STATUS:CONFIRMED\r\n")
	}
	ics.WriteString("TRANSP:OPAQUE\r\n")
	ics.WriteString("END:VEVENT\r\n")
	ics.WriteString("END:VCALENDAR\r\n")

	return ics.String(), nil
}

// writeInstanceTimes writes DTSTART/DTEND. Instances without a wall-clock
// start time render as all-day events.
func writeInstanceTimes(ics *strings.Builder, date time.Time, startTime, endTime *string) {
	start, okStart := combineWallClock(date, startTime)
	if !okStart {
		ics.WriteString(fmt.Sprintf("DTSTART;VALUE=DATE:%s\r\n", date.Format("20060102")))
		return
	}

	ics.WriteString(fmt.Sprintf("DTSTART:%s\r\n", start.Format("20060102T150405")))
	if end, okEnd := combineWallClock(date, endTime); okEnd {
		ics.WriteString(fmt.Sprintf("DTEND:%s\r\n", end.Format("20060102T150405")))
	}
}

// combineWallClock pins an "HH:MM" wall-clock time onto a calendar date. The
// result is floating time; the engine never converts between time zones.
func combineWallClock(date time.Time, wallClock *string) (time.Time, bool) {
	if wallClock == nil {
		return time.Time{}, false
	}
	parsed, err := time.Parse(wallClockLayout, *wallClock)
	if err != nil {
		return time.Time{}, false
	}
	return time.Date(date.Year(), date.Month(), date.Day(),
		parsed.Hour(), parsed.Minute(), 0, 0, time.UTC), true
}

func instanceLocation(instance models.ExpandedInstance) string {
	if instance.IsVirtual && instance.MeetingLink != "" {
		return instance.MeetingLink
	}
	if instance.Location != "" && instance.LocationAddress != "" {
		return instance.Location + ", " + instance.LocationAddress
	}
	if instance.Location != "" {
		return instance.Location
	}
	return instance.LocationAddress
}

// escapeICSText escapes special characters in ICS text fields
func escapeICSText(text string) string {
	// Escape special characters according to RFC5545
	text = strings.ReplaceAll(text, "\\", "\\\\")
	text = strings.ReplaceAll(text, "\n", "\\n")
	text = strings.ReplaceAll(text, ",", "\\,")
	text = strings.ReplaceAll(text, ";", "\\;")

	// Fold long lines (75 characters max per line, continued lines start with space)
	return foldICSLine(text, ICALMaxLineLength)
}

// foldICSLine folds long lines according to RFC5545 (75 octets max)
func foldICSLine(line string, maxLength int) string {
	if len(line) <= maxLength {
		return line
	}

	var folded strings.Builder
	remaining := line
	first := true

	for len(remaining) > 0 {
		cutLength := maxLength
		if !first {
			cutLength = maxLength - 1 // Account for leading space on continued lines
		}

		if len(remaining) <= cutLength {
			if !first {
				folded.WriteString("\r\n ")
			}
			folded.WriteString(remaining)
			break
		}

		// Find a safe place to break (not in the middle of a UTF-8 sequence)
		breakPoint := cutLength
		for breakPoint > 0 && remaining[breakPoint-1]&UTF8TwoBitMask == UTF8ContinuationPrefix {
			breakPoint--
		}

		if !first {
			folded.WriteString("\r\n ")
		}
		folded.WriteString(remaining[:breakPoint])
		remaining = remaining[breakPoint:]
		first = false
	}

	return folded.String()
}
