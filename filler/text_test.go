package filler

import (
	"testing"

	"attendsheet/attendance"
	"attendsheet/config"
)

func TestReasonText_CommentOverridesCategories(t *testing.T) {
	t.Parallel()

	record := attendance.Record{
		Comment: "ลาไปราชการ",
		Leave:   map[attendance.LeaveCategory]float64{attendance.Sick: 1},
	}

	if got := reasonText(record, config.EmptyReasonAbsent); got != "ลาไปราชการ" {
		t.Fatalf("unexpected text: %q", got)
	}
}

func TestReasonText_BlankCommentFallsThrough(t *testing.T) {
	t.Parallel()

	record := attendance.Record{
		Comment: "  ",
		Leave:   map[attendance.LeaveCategory]float64{attendance.Sick: 1},
	}

	if got := reasonText(record, config.EmptyReasonAbsent); got != "ลาป่วย" {
		t.Fatalf("unexpected text: %q", got)
	}
}

func TestReasonText_CountsRenderInPriorityOrder(t *testing.T) {
	t.Parallel()

	record := attendance.Record{
		Leave: map[attendance.LeaveCategory]float64{
			attendance.Personal: 1,
			attendance.Sick:     2,
		},
	}

	if got := reasonText(record, config.EmptyReasonAbsent); got != "ลาป่วย(2) ลากิจ" {
		t.Fatalf("unexpected text: %q", got)
	}
}

func TestReasonText_ZeroCountsSkipped(t *testing.T) {
	t.Parallel()

	record := attendance.Record{
		Leave: map[attendance.LeaveCategory]float64{
			attendance.Absent:   0,
			attendance.Vacation: 0.5,
		},
	}

	if got := reasonText(record, config.EmptyReasonAbsent); got != "พักร้อน(0.5)" {
		t.Fatalf("unexpected text: %q", got)
	}
}

func TestReasonText_NearWholeCountRendersAsInteger(t *testing.T) {
	t.Parallel()

	record := attendance.Record{
		Leave: map[attendance.LeaveCategory]float64{attendance.Sick: 0.9999999},
	}

	// Within 1e-6 of 1 counts as a single occurrence, label only.
	if got := reasonText(record, config.EmptyReasonAbsent); got != "ลาป่วย" {
		t.Fatalf("unexpected text: %q", got)
	}
}

func TestReasonText_EmptyPolicyAbsent(t *testing.T) {
	t.Parallel()

	if got := reasonText(attendance.Record{}, config.EmptyReasonAbsent); got != "ขาดงาน" {
		t.Fatalf("unexpected text: %q", got)
	}
}

func TestReasonText_EmptyPolicyBlank(t *testing.T) {
	t.Parallel()

	if got := reasonText(attendance.Record{}, config.EmptyReasonBlank); got != "" {
		t.Fatalf("unexpected text: %q", got)
	}
}

func TestFormatCount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value float64
		want  string
	}{
		{name: "whole", value: 2, want: "2"},
		{name: "near whole", value: 2.0000001, want: "2"},
		{name: "half", value: 0.5, want: "0.5"},
		{name: "one and a half", value: 1.5, want: "1.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := formatCount(tt.value); got != tt.want {
				t.Fatalf("formatCount(%v) = %q, want %q", tt.value, got, tt.want)
			}
		})
	}
}
