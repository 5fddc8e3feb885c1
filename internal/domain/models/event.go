// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package models

import (
	"time"
)

// DateLayout is the calendar-date encoding used for instance keys.
const DateLayout = "2006-01-02"

// EventStatus is the lifecycle status of an authored event.
type EventStatus string

// Event lifecycle statuses
const (
	EventStatusDraft     EventStatus = "draft"
	EventStatusPublished EventStatus = "published"
	EventStatusCancelled EventStatus = "cancelled"
)

// Event is the authored series anchor for a recurring or single-instance
// event. The engine treats it as an immutable value for the duration of one
// expansion call; ownership stays with the calling system.
type Event struct {
	UID             string      `json:"uid"`
	StartDate       time.Time   `json:"start_date"`
	StartTime       *string     `json:"start_time,omitempty"`
	EndTime         *string     `json:"end_time,omitempty"`
	RecurrenceRule  *string     `json:"recurrence_rule,omitempty"`
	Title           string      `json:"title"`
	Description     string      `json:"description,omitempty"`
	Location        string      `json:"location,omitempty"`
	LocationAddress string      `json:"location_address,omitempty"`
	IsVirtual       bool        `json:"is_virtual"`
	MeetingLink     string      `json:"meeting_link,omitempty"`
	Capacity        int         `json:"capacity,omitempty"`
	RSVPDeadline    *time.Time  `json:"rsvp_deadline,omitempty"`
	Status          EventStatus `json:"status,omitempty"`
}

// IsRecurring reports whether the event carries a recurrence rule.
// A nil or empty rule means a single-instance event.
func (e *Event) IsRecurring() bool {
	return e != nil && e.RecurrenceRule != nil && *e.RecurrenceRule != ""
}

// Rule returns the recurrence rule string, or empty for a single-instance
// event.
func (e *Event) Rule() string {
	if e == nil || e.RecurrenceRule == nil {
		return ""
	}
	return *e.RecurrenceRule
}

// EventInstanceOverride is a sparse exception for one occurrence of a
// recurring event, keyed by (event UID, instance date). Nil fields inherit
// from the parent event; non-nil fields replace it for that one instance.
type EventInstanceOverride struct {
	EventUID        string     `json:"event_uid"`
	InstanceDate    time.Time  `json:"instance_date"`
	StartTime       *string    `json:"start_time,omitempty"`
	EndTime         *string    `json:"end_time,omitempty"`
	Title           *string    `json:"title,omitempty"`
	Description     *string    `json:"description,omitempty"`
	Location        *string    `json:"location,omitempty"`
	LocationAddress *string    `json:"location_address,omitempty"`
	IsVirtual       *bool      `json:"is_virtual,omitempty"`
	MeetingLink     *string    `json:"meeting_link,omitempty"`
	Capacity        *int       `json:"capacity,omitempty"`
	RSVPDeadline    *time.Time `json:"rsvp_deadline,omitempty"`
	IsCancelled     bool       `json:"is_cancelled"`
}

// DateKey returns the instance-date key used to match an override against a
// generated occurrence.
func (o *EventInstanceOverride) DateKey() string {
	return o.InstanceDate.Format(DateLayout)
}

// ExpandedInstance is one concrete, displayable occurrence of an event with
// all content fields resolved against any matching override. It is derived
// and ephemeral; it is never persisted.
type ExpandedInstance struct {
	EventUID        string      `json:"event_uid"`
	Date            time.Time   `json:"date"`
	StartTime       *string     `json:"start_time,omitempty"`
	EndTime         *string     `json:"end_time,omitempty"`
	Title           string      `json:"title"`
	Description     string      `json:"description,omitempty"`
	Location        string      `json:"location,omitempty"`
	LocationAddress string      `json:"location_address,omitempty"`
	IsVirtual       bool        `json:"is_virtual"`
	MeetingLink     string      `json:"meeting_link,omitempty"`
	Capacity        int         `json:"capacity,omitempty"`
	RSVPDeadline    *time.Time  `json:"rsvp_deadline,omitempty"`
	Status          EventStatus `json:"status,omitempty"`
	IsRecurring     bool        `json:"is_recurring"`
	IsCancelled     bool        `json:"is_cancelled"`
}
