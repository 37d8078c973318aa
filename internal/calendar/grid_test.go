package calendar

import (
	"testing"
	"time"
)

func TestBuildMonthGridNovember2023(t *testing.T) {
	// Nov 1, 2023 is a Wednesday: two leading blanks (Mon, Tue).
	ref := time.Date(2023, 11, 15, 0, 0, 0, 0, time.UTC)
	grid := BuildMonthGrid(ref)

	if grid.Blanks != 2 {
		t.Fatalf("expected 2 blanks, got %d", grid.Blanks)
	}
	if len(grid.Days) != 30 {
		t.Fatalf("expected 30 day cells, got %d", len(grid.Days))
	}
	if grid.Days[0].Key != "2023-11-01" {
		t.Fatalf("first cell key: got %q, want 2023-11-01", grid.Days[0].Key)
	}
	last := grid.Days[len(grid.Days)-1]
	if last.Key != "2023-11-30" {
		t.Fatalf("last cell key: got %q, want 2023-11-30", last.Key)
	}
	// Nov 30 is a Thursday: column index 3 of its row.
	col := (grid.Blanks + last.Date.Day() - 1) % 7
	if col != 3 {
		t.Fatalf("last cell column: got %d, want 3", col)
	}
}

func TestBuildMonthGridProperties(t *testing.T) {
	cases := []struct {
		name string
		ref  time.Time
		days int
	}{
		{"february leap", time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC), 29},
		{"february non-leap", time.Date(2023, 2, 1, 0, 0, 0, 0, time.UTC), 28},
		{"month starting monday", time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC), 31},
		{"month starting sunday", time.Date(2023, 10, 5, 0, 0, 0, 0, time.UTC), 31},
	}
	for _, tc := range cases {
		grid := BuildMonthGrid(tc.ref)
		if len(grid.Days) != tc.days {
			t.Fatalf("%s: expected %d days, got %d", tc.name, tc.days, len(grid.Days))
		}
		if grid.Blanks < 0 || grid.Blanks > 6 {
			t.Fatalf("%s: blanks out of range: %d", tc.name, grid.Blanks)
		}
		// Day 1 must land under its own weekday column, Monday-first.
		first := grid.Days[0].Date.Weekday()
		if mondayOffset(first) != grid.Blanks {
			t.Fatalf("%s: day 1 weekday %v misaligned with %d blanks", tc.name, first, grid.Blanks)
		}
	}
	// January 2024 starts on Monday: zero blanks.
	if got := BuildMonthGrid(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)).Blanks; got != 0 {
		t.Fatalf("january 2024 blanks: got %d, want 0", got)
	}
	// October 2023 starts on Sunday: six blanks.
	if got := BuildMonthGrid(time.Date(2023, 10, 1, 0, 0, 0, 0, time.UTC)).Blanks; got != 6 {
		t.Fatalf("october 2023 blanks: got %d, want 6", got)
	}
}

func TestFullWeekSpansMondayToSunday(t *testing.T) {
	// Saturday Nov 18, 2023: the week runs Mon Nov 13 .. Sun Nov 19.
	ref := time.Date(2023, 11, 18, 0, 0, 0, 0, time.UTC)
	week := FullWeek(ref)

	if len(week) != 7 {
		t.Fatalf("expected 7 days, got %d", len(week))
	}
	if week[0].Key != "2023-11-13" || week[0].Date.Weekday() != time.Monday {
		t.Fatalf("first day: got %q (%v), want 2023-11-13 Monday", week[0].Key, week[0].Date.Weekday())
	}
	if week[6].Key != "2023-11-19" || week[6].Date.Weekday() != time.Sunday {
		t.Fatalf("last day: got %q (%v), want 2023-11-19 Sunday", week[6].Key, week[6].Date.Weekday())
	}
	// The reference date's own weekday is never omitted.
	found := false
	for _, c := range week {
		if c.Key == "2023-11-18" {
			found = true
		}
	}
	if !found {
		t.Fatal("reference date missing from its own week")
	}
}

func TestFullWeekOnSundayAndMonday(t *testing.T) {
	// Sunday belongs to the week whose Monday is six days earlier.
	sunday := time.Date(2023, 11, 19, 0, 0, 0, 0, time.UTC)
	if week := FullWeek(sunday); week[0].Key != "2023-11-13" {
		t.Fatalf("sunday week monday: got %q, want 2023-11-13", week[0].Key)
	}
	// Monday anchors to itself.
	monday := time.Date(2023, 11, 13, 0, 0, 0, 0, time.UTC)
	if week := FullWeek(monday); week[0].Key != "2023-11-13" {
		t.Fatalf("monday week monday: got %q, want 2023-11-13", week[0].Key)
	}
}

func TestBuildWeekGridFiltersWorkingDays(t *testing.T) {
	ref := time.Date(2023, 11, 18, 0, 0, 0, 0, time.UTC) // Saturday
	working := DefaultWorkingDays()

	cells := BuildWeekGrid(ref, working)
	if len(cells) != 5 {
		t.Fatalf("expected 5 working-day cells, got %d", len(cells))
	}
	for _, c := range cells {
		wd := c.Date.Weekday()
		if wd == time.Saturday || wd == time.Sunday {
			t.Fatalf("weekend cell leaked through filter: %q", c.Key)
		}
	}
	if cells[0].Key != "2023-11-13" || cells[4].Key != "2023-11-17" {
		t.Fatalf("unexpected span: %q..%q", cells[0].Key, cells[4].Key)
	}
}

func TestWeekHeaderAlignsWithBody(t *testing.T) {
	working := WorkingDays{time.Monday: true, time.Wednesday: true, time.Saturday: true}
	ref := time.Date(2023, 11, 15, 0, 0, 0, 0, time.UTC)

	header := WeekHeader(working)
	body := BuildWeekGrid(ref, working)
	if len(header) != len(body) {
		t.Fatalf("header/body length mismatch: %d vs %d", len(header), len(body))
	}
	for i := range header {
		if body[i].Date.Weekday() != header[i] {
			t.Fatalf("column %d: header %v labels body %v", i, header[i], body[i].Date.Weekday())
		}
	}
}

func TestWorkingDaysToggleNeverEmpty(t *testing.T) {
	w := WorkingDays{time.Monday: true}
	if w.Toggle(time.Monday) {
		t.Fatal("removing the last working day must be a no-op")
	}
	if !w[time.Monday] {
		t.Fatal("working-day set became empty")
	}

	if !w.Toggle(time.Friday) {
		t.Fatal("adding a day should succeed")
	}
	if !w.Toggle(time.Monday) {
		t.Fatal("removing a non-last day should succeed")
	}
	if len(w) != 1 || !w[time.Friday] {
		t.Fatalf("unexpected set: %v", w)
	}
}
