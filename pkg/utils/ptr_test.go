// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package utils

import (
	"testing"
	"time"
)

func TestStringPtrRoundTrip(t *testing.T) {
	tests := []string{
		"",
		"Union Hall",
		"special chars: !@#$%^&*()",
	}

	for _, test := range tests {
		t.Run(test, func(t *testing.T) {
			ptr := StringPtr(test)
			if ptr == nil {
				t.Fatal("expected non-nil pointer")
			}
			if got := StringValue(ptr); got != test {
				t.Errorf("round trip failed: expected %q, got %q", test, got)
			}
		})
	}
}

func TestBoolPtrRoundTrip(t *testing.T) {
	for _, value := range []bool{true, false} {
		ptr := BoolPtr(value)
		if ptr == nil {
			t.Fatal("expected non-nil pointer")
		}
		if got := BoolValue(ptr); got != value {
			t.Errorf("round trip failed: expected %t, got %t", value, got)
		}
	}
}

func TestIntPtrRoundTrip(t *testing.T) {
	for _, value := range []int{0, 1, -1, 40, 1000000} {
		ptr := IntPtr(value)
		if ptr == nil {
			t.Fatal("expected non-nil pointer")
		}
		if got := IntValue(ptr); got != value {
			t.Errorf("round trip failed: expected %d, got %d", value, got)
		}
	}
}

func TestTimePtrRoundTrip(t *testing.T) {
	value := time.Date(2024, time.January, 2, 0, 0, 0, 0, time.UTC)
	ptr := TimePtr(value)
	if ptr == nil {
		t.Fatal("expected non-nil pointer")
	}
	if got := TimeValue(ptr); !got.Equal(value) {
		t.Errorf("round trip failed: expected %v, got %v", value, got)
	}
}

func TestValueNilSafety(t *testing.T) {
	if got := StringValue(nil); got != "" {
		t.Errorf("StringValue(nil) should return empty string, got %q", got)
	}
	if got := BoolValue(nil); got != false {
		t.Errorf("BoolValue(nil) should return false, got %t", got)
	}
	if got := IntValue(nil); got != 0 {
		t.Errorf("IntValue(nil) should return 0, got %d", got)
	}
	if got := TimeValue(nil); !got.IsZero() {
		t.Errorf("TimeValue(nil) should return zero time, got %v", got)
	}
}

func TestPointerIndependence(t *testing.T) {
	original := "original"
	ptr1 := StringPtr(original)
	ptr2 := StringPtr(original)

	if ptr1 == ptr2 {
		t.Error("expected different pointer addresses")
	}

	*ptr1 = "modified"
	if *ptr2 == "modified" {
		t.Error("modifying one pointer affected the other")
	}
}
