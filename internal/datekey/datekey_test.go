package datekey

import (
	"testing"
	"time"
)

func TestFromTimeKeepsLiteralYear(t *testing.T) {
	t.Parallel()

	input := time.Date(2568, 11, 26, 0, 0, 0, 0, time.Local)
	if got := FromTime(input); got != Key("2568-11-26") {
		t.Fatalf("unexpected key: %s", got)
	}
}

func TestFromDayMonthYear(t *testing.T) {
	t.Parallel()

	if got := FromDayMonthYear(24, 12, 2568); got != Key("2568-12-24 00:00:00") {
		t.Fatalf("unexpected key: %s", got)
	}
}

func TestLiteralTrimsWhitespace(t *testing.T) {
	t.Parallel()

	if got := Literal("  2568-12-24 00:00:00 "); got != Key("2568-12-24 00:00:00") {
		t.Fatalf("unexpected key: %q", got)
	}
}

func TestIsZero(t *testing.T) {
	t.Parallel()

	if !Literal("   ").IsZero() {
		t.Fatalf("expected blank literal to be zero")
	}
	if FromDayMonthYear(1, 1, 2568).IsZero() {
		t.Fatalf("expected populated key to be non-zero")
	}
}
