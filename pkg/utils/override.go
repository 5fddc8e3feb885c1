// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package utils

import "time"

// Override helpers resolve one field of an event instance: the override
// value wins only when it is explicitly set (non-nil), otherwise the base
// value is inherited. An override holding the zero value ("" / false / 0)
// still wins, which is what distinguishes these from coalescing.

// OverrideString returns *override when set, otherwise base.
func OverrideString(override *string, base string) string {
	if override != nil {
		return *override
	}
	return base
}

// OverrideStringPtr returns override when set, otherwise base.
func OverrideStringPtr(override, base *string) *string {
	if override != nil {
		return override
	}
	return base
}

// OverrideBool returns *override when set, otherwise base.
func OverrideBool(override *bool, base bool) bool {
	if override != nil {
		return *override
	}
	return base
}

// OverrideInt returns *override when set, otherwise base.
func OverrideInt(override *int, base int) int {
	if override != nil {
		return *override
	}
	return base
}

// OverrideTimePtr returns override when set, otherwise base.
func OverrideTimePtr(override, base *time.Time) *time.Time {
	if override != nil {
		return override
	}
	return base
}
