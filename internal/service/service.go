// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

// Package service holds the expansion services: preset handling, occurrence
// generation, and instance resolution.
package service

import (
	"github.com/linuxfoundation/lfx-v2-event-recurrence/internal/domain"
)

// Services bundles the expansion services behind one constructor so the
// surrounding platform wires a single recurrence engine into all of them.
type Services struct {
	Presets     *PresetService
	Occurrences *OccurrenceService
	Instances   *InstanceService
}

// NewServices creates the full service set on top of one recurrence engine.
func NewServices(engine domain.RecurrenceEngine) *Services {
	occurrences := NewOccurrenceService(engine)
	return &Services{
		Presets:     NewPresetService(engine),
		Occurrences: occurrences,
		Instances:   NewInstanceService(occurrences),
	}
}
