package utils

import (
	"testing"
	"time"
)

func TestRemoveSpaces(t *testing.T) {
	got := RemoveSpaces("  Матанализ \n\t  а.101   Иванов ")
	if got != "Матанализ а.101 Иванов" {
		t.Errorf("unexpected result: %q", got)
	}
}

func TestMustAtoi(t *testing.T) {
	if MustAtoi("09") != 9 {
		t.Errorf("expected 9")
	}
	if MustAtoi("x") != 0 {
		t.Errorf("expected 0 for garbage")
	}
}

func TestParseAndFormatDate(t *testing.T) {
	d, err := ParseDate(" 05.03.2026 ", time.UTC)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Year() != 2026 || d.Month() != time.March || d.Day() != 5 {
		t.Errorf("unexpected date %v", d)
	}
	if FormatDate(d) != "05.03.2026" {
		t.Errorf("unexpected format %s", FormatDate(d))
	}

	if _, err := ParseDate("2026-03-05", time.UTC); err == nil {
		t.Errorf("expected error for ISO date")
	}
}

func TestAddTimeRangeToDate(t *testing.T) {
	date := time.Date(2026, time.October, 19, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		in, start, end string
	}{
		{"9.00-10.35", "09:00", "10:35"},
		{"08:00–09:30", "08:00", "09:30"},
		{"1 пара 14.10 - 15.45", "14:10", "15:45"},
	}
	for _, c := range cases {
		start, end, err := AddTimeRangeToDate(date, c.in)
		if err != nil {
			t.Fatalf("%q: unexpected error: %v", c.in, err)
		}
		if start.Format("15:04") != c.start || end.Format("15:04") != c.end {
			t.Errorf("%q: got %s-%s, want %s-%s", c.in, start.Format("15:04"), end.Format("15:04"), c.start, c.end)
		}
	}

	if _, _, err := AddTimeRangeToDate(date, "утро"); err == nil {
		t.Errorf("expected error for non-range")
	}
}
