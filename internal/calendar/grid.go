// Package calendar builds the month and week date grids and drives the
// calendar screen state: view mode, reference date, working days, popover
// and quick-add drafts.
package calendar

import (
	"time"

	"echub/internal/datekey"
)

// Cell is one day slot in a rendered grid. Cells are recomputed on every
// render pass and never mutated.
type Cell struct {
	Date time.Time
	Key  datekey.Key
}

// MonthGrid is a Monday-first month layout: Blanks leading filler cells,
// then one cell per day of the month, in a 7-column grid.
type MonthGrid struct {
	Blanks int
	Days   []Cell
}

// WorkingDays is the set of weekdays shown in week mode. It must never be
// empty; Toggle enforces that.
type WorkingDays map[time.Weekday]bool

// DefaultWorkingDays is Monday through Friday.
func DefaultWorkingDays() WorkingDays {
	return WorkingDays{
		time.Monday:    true,
		time.Tuesday:   true,
		time.Wednesday: true,
		time.Thursday:  true,
		time.Friday:    true,
	}
}

// Toggle adds or removes day. Removing the last remaining day is a no-op:
// the set never becomes empty. Reports whether the set changed.
func (w WorkingDays) Toggle(day time.Weekday) bool {
	if w[day] {
		if len(w) == 1 {
			return false
		}
		delete(w, day)
		return true
	}
	w[day] = true
	return true
}

func (w WorkingDays) Clone() WorkingDays {
	out := make(WorkingDays, len(w))
	for d := range w {
		out[d] = true
	}
	return out
}

// mondayFirst lists weekdays in grid column order.
var mondayFirst = []time.Weekday{
	time.Monday, time.Tuesday, time.Wednesday, time.Thursday,
	time.Friday, time.Saturday, time.Sunday,
}

// mondayOffset maps a weekday to its Monday-first column index.
func mondayOffset(d time.Weekday) int {
	if d == time.Sunday {
		return 6
	}
	return int(d) - 1
}

// BuildMonthGrid lays out the month containing ref. Blank cells precede all
// day cells and equal the Monday-first offset of day 1, so day 1 lands under
// its correct column.
func BuildMonthGrid(ref time.Time) MonthGrid {
	y, m, _ := ref.Date()
	loc := ref.Location()
	first := time.Date(y, m, 1, 0, 0, 0, 0, loc)
	daysInMonth := first.AddDate(0, 1, -1).Day()

	grid := MonthGrid{
		Blanks: mondayOffset(first.Weekday()),
		Days:   make([]Cell, 0, daysInMonth),
	}
	for day := 1; day <= daysInMonth; day++ {
		d := time.Date(y, m, day, 0, 0, 0, 0, loc)
		grid.Days = append(grid.Days, Cell{Date: d, Key: datekey.FromTime(d)})
	}
	return grid
}

// FullWeek returns the 7 days Monday..Sunday of the week containing ref.
func FullWeek(ref time.Time) []Cell {
	y, m, d := ref.Date()
	loc := ref.Location()
	day := time.Date(y, m, d, 0, 0, 0, 0, loc)
	monday := day.AddDate(0, 0, -mondayOffset(day.Weekday()))

	out := make([]Cell, 0, 7)
	for i := 0; i < 7; i++ {
		cell := monday.AddDate(0, 0, i)
		out = append(out, Cell{Date: cell, Key: datekey.FromTime(cell)})
	}
	return out
}

// BuildWeekGrid returns the week containing ref filtered to the working
// days, in Monday-first order. Column count equals len of the filtered set.
func BuildWeekGrid(ref time.Time, working WorkingDays) []Cell {
	week := FullWeek(ref)
	out := make([]Cell, 0, len(week))
	for _, cell := range week {
		if working[cell.Date.Weekday()] {
			out = append(out, cell)
		}
	}
	return out
}

// WeekHeader returns the weekday labels for the filtered week grid. The
// filter and ordering match BuildWeekGrid exactly, so header index i always
// labels body column i.
func WeekHeader(working WorkingDays) []time.Weekday {
	out := make([]time.Weekday, 0, len(mondayFirst))
	for _, d := range mondayFirst {
		if working[d] {
			out = append(out, d)
		}
	}
	return out
}
