// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package service

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"github.com/linuxfoundation/lfx-v2-event-recurrence/internal/domain"
	"github.com/linuxfoundation/lfx-v2-event-recurrence/internal/domain/models"
	"github.com/linuxfoundation/lfx-v2-event-recurrence/pkg/concurrent"
	"github.com/linuxfoundation/lfx-v2-event-recurrence/pkg/utils"
)

// calendarWorkers bounds how many event series a calendar request resolves
// concurrently.
const calendarWorkers = 8

// InstanceService merges per-occurrence overrides onto generated occurrence
// dates to produce the final displayable instances.
type InstanceService struct {
	occurrenceService *OccurrenceService
	pool              *concurrent.WorkerPool
}

// NewInstanceService creates a new InstanceService
func NewInstanceService(occurrenceService *OccurrenceService) *InstanceService {
	return &InstanceService{
		occurrenceService: occurrenceService,
		pool:              concurrent.NewWorkerPool(calendarWorkers),
	}
}

// ResolveInstances expands the event over [windowStart, windowEnd] and
// applies its overrides. Cancelled occurrences are dropped from the result,
// not flagged. A non-recurring event resolves to exactly its anchor-date
// instance; overrides are recurrence exceptions and never apply to it.
// Overrides whose date the rule no longer generates are ignored.
func (s *InstanceService) ResolveInstances(ctx context.Context, event *models.Event, overrides []*models.EventInstanceOverride, windowStart, windowEnd time.Time) ([]models.ExpandedInstance, error) {
	if event == nil {
		return nil, domain.NewValidationError("event is required")
	}

	if !event.IsRecurring() {
		return []models.ExpandedInstance{instanceFromEvent(event, utils.DateOnly(event.StartDate), false)}, nil
	}

	dates, err := s.occurrenceService.Expand(event.Rule(), event.StartDate, windowStart, windowEnd)
	if err != nil {
		return nil, err
	}

	byDate := make(map[string]*models.EventInstanceOverride, len(overrides))
	for _, override := range overrides {
		if override == nil {
			continue
		}
		byDate[override.DateKey()] = override
	}

	instances := make([]models.ExpandedInstance, 0, len(dates))
	matched := 0
	for _, date := range dates {
		override, ok := byDate[date.Format(models.DateLayout)]
		if ok {
			matched++
			if override.IsCancelled {
				continue
			}
		}

		instance := instanceFromEvent(event, date, true)
		if ok {
			applyOverride(&instance, override)
		}
		instances = append(instances, instance)
	}

	// Overrides orphaned by a rule edit are tolerated, never surfaced.
	if dangling := len(byDate) - matched; dangling > 0 {
		slog.DebugContext(ctx, "ignoring overrides outside the generated occurrence set",
			"event_uid", event.UID, "dangling_count", dangling)
	}

	return instances, nil
}

// CalendarEntry pairs an event with its overrides for batch resolution.
type CalendarEntry struct {
	Event     *models.Event
	Overrides []*models.EventInstanceOverride
}

// ResolveCalendar resolves every entry over the same window and merges the
// results into one list ordered by date, then by event UID for instances
// that share a date. Entries are resolved concurrently; the first failure
// aborts the whole request.
func (s *InstanceService) ResolveCalendar(ctx context.Context, entries []CalendarEntry, windowStart, windowEnd time.Time) ([]models.ExpandedInstance, error) {
	resolved := make([][]models.ExpandedInstance, len(entries))

	functions := make([]func() error, len(entries))
	for i, entry := range entries {
		i, entry := i, entry
		functions[i] = func() error {
			instances, err := s.ResolveInstances(ctx, entry.Event, entry.Overrides, windowStart, windowEnd)
			if err != nil {
				return err
			}
			resolved[i] = instances
			return nil
		}
	}

	if err := s.pool.Run(ctx, functions...); err != nil {
		return nil, err
	}

	var merged []models.ExpandedInstance
	for _, instances := range resolved {
		for _, instance := range instances {
			// A single-instance event resolves to its anchor date even when
			// that date lies outside the window; calendars only show dates
			// inside it.
			if instance.Date.Before(utils.DateOnly(windowStart)) || instance.Date.After(utils.DateOnly(windowEnd)) {
				continue
			}
			merged = append(merged, instance)
		}
	}
	sort.SliceStable(merged, func(i, j int) bool {
		if !merged[i].Date.Equal(merged[j].Date) {
			return merged[i].Date.Before(merged[j].Date)
		}
		return merged[i].EventUID < merged[j].EventUID
	})
	return merged, nil
}

func instanceFromEvent(event *models.Event, date time.Time, recurring bool) models.ExpandedInstance {
	return models.ExpandedInstance{
		EventUID:        event.UID,
		Date:            date,
		StartTime:       event.StartTime,
		EndTime:         event.EndTime,
		Title:           event.Title,
		Description:     event.Description,
		Location:        event.Location,
		LocationAddress: event.LocationAddress,
		IsVirtual:       event.IsVirtual,
		MeetingLink:     event.MeetingLink,
		Capacity:        event.Capacity,
		RSVPDeadline:    event.RSVPDeadline,
		Status:          event.Status,
		IsRecurring:     recurring,
	}
}

// applyOverride resolves instance content field by field: the override value
// wins only when it is explicitly set.
func applyOverride(instance *models.ExpandedInstance, override *models.EventInstanceOverride) {
	instance.StartTime = utils.OverrideStringPtr(override.StartTime, instance.StartTime)
	instance.EndTime = utils.OverrideStringPtr(override.EndTime, instance.EndTime)
	instance.Title = utils.OverrideString(override.Title, instance.Title)
	instance.Description = utils.OverrideString(override.Description, instance.Description)
	instance.Location = utils.OverrideString(override.Location, instance.Location)
	instance.LocationAddress = utils.OverrideString(override.LocationAddress, instance.LocationAddress)
	instance.IsVirtual = utils.OverrideBool(override.IsVirtual, instance.IsVirtual)
	instance.MeetingLink = utils.OverrideString(override.MeetingLink, instance.MeetingLink)
	instance.Capacity = utils.OverrideInt(override.Capacity, instance.Capacity)
	instance.RSVPDeadline = utils.OverrideTimePtr(override.RSVPDeadline, instance.RSVPDeadline)
}
