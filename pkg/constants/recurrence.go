// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package constants

import "time"

// Recurrence-rule day tables. These are immutable lookup data shared by the
// preset catalog, rule builder, detector, and describer; never mutate them.

// DayCodes maps Go weekdays to RFC5545 two-letter day codes.
var DayCodes = map[time.Weekday]string{
	time.Sunday:    "SU",
	time.Monday:    "MO",
	time.Tuesday:   "TU",
	time.Wednesday: "WE",
	time.Thursday:  "TH",
	time.Friday:    "FR",
	time.Saturday:  "SA",
}

// DayNames maps RFC5545 day codes to full weekday names for display.
var DayNames = map[string]string{
	"SU": "Sunday",
	"MO": "Monday",
	"TU": "Tuesday",
	"WE": "Wednesday",
	"TH": "Thursday",
	"FR": "Friday",
	"SA": "Saturday",
}

// OrdinalLabels maps a week-of-month position (1-5) to its display label.
// Position -1 is rendered as "last" by the callers.
var OrdinalLabels = map[int]string{
	1: "1st",
	2: "2nd",
	3: "3rd",
	4: "4th",
	5: "5th",
}
