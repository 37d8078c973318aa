package update

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"echub/internal/calendar"
	"echub/internal/datekey"
	"echub/internal/model"
)

func (m Model) handleCalendarKey(msg tea.KeyMsg) Model {
	if m.cal.OpenPopover != "" {
		return m.handlePopoverKey(msg)
	}

	switch msg.String() {
	case "m":
		m.cal.SetMode(calendar.ModeMonth)
		m.CalendarView.Cursor = 0
		m.Status = StatusBar{Text: "calendar mode: month", IsError: false}
	case "w":
		m.cal.SetMode(calendar.ModeWeek)
		m.CalendarView.Cursor = 0
		m.Status = StatusBar{Text: "calendar mode: week", IsError: false}
	case "h", "left":
		m.cal.Shift(-1)
		m.CalendarView.Cursor = 0
		m.Status = StatusBar{Text: fmt.Sprintf("calendar: %s", m.calendarTitle()), IsError: false}
	case "l", "right":
		m.cal.Shift(1)
		m.CalendarView.Cursor = 0
		m.Status = StatusBar{Text: fmt.Sprintf("calendar: %s", m.calendarTitle()), IsError: false}
	case "down", "j":
		if m.CalendarView.Cursor < len(m.cal.Grid())-1 {
			m.CalendarView.Cursor++
		}
	case "up", "k":
		if m.CalendarView.Cursor > 0 {
			m.CalendarView.Cursor--
		}
	case "g":
		m.cal.Reference = m.now().In(m.loc)
		m.CalendarView.Cursor = 0
		m.Status = StatusBar{Text: "calendar: jumped to today", IsError: false}
	case "T":
		// The working-day set is shared team configuration.
		if !m.currentUser.IsAdmin() {
			m.Status = StatusBar{Text: "only an admin can change working days", IsError: true}
			break
		}
		if cell, ok := m.currentCell(); ok {
			day := cell.Date.Weekday()
			if m.cal.ToggleWorkingDay(day) {
				m.CalendarView.Cursor = 0
				m.Status = StatusBar{Text: fmt.Sprintf("working day toggled: %s", day), IsError: false}
			} else {
				m.Status = StatusBar{Text: "cannot remove the last working day", IsError: true}
			}
		}
	case "enter", "o":
		if cell, ok := m.currentCell(); ok {
			m.cal.OpenDayPopover(cell.Key)
		}
	}
	return m
}

func (m Model) handlePopoverKey(msg tea.KeyMsg) Model {
	key := m.cal.OpenPopover
	switch msg.String() {
	case "esc":
		m.cal.ClosePopover()
	case "t":
		draft := m.cal.QuickAddTask(key)
		draft.AssigneeID = m.currentUser.ID
		m.openTaskForm(draft, true)
	case "a":
		draft := m.cal.QuickAddActivity(key)
		m.openActivityForm(draft)
	case "e":
		// Jump to the task editor through the bridge, the same entry point
		// other modules use.
		due := calendar.BucketTasks(m.data.Tasks)[key]
		if len(due) == 0 {
			m.Status = StatusBar{Text: "no tasks due on this day", IsError: true}
			return m
		}
		m.cal.ClosePopover()
		if m.bridge != nil {
			m.bridge.RequestEdit(due[0])
		}
	}
	return m
}

func (m Model) currentCell() (calendar.Cell, bool) {
	grid := m.cal.Grid()
	if len(grid) == 0 || m.CalendarView.Cursor < 0 || m.CalendarView.Cursor >= len(grid) {
		return calendar.Cell{}, false
	}
	return grid[m.CalendarView.Cursor], true
}

func (m Model) calendarTitle() string {
	if m.cal.Mode == calendar.ModeWeek {
		week := calendar.FullWeek(m.cal.Reference)
		return fmt.Sprintf("week of %s", week[0].Key)
	}
	return m.cal.Reference.Format("January 2006")
}

func (m Model) popoverTasks(key datekey.Key) []model.Task {
	return calendar.BucketTasks(m.data.Tasks)[key]
}

func (m Model) popoverActivities(key datekey.Key) []model.Activity {
	return calendar.BucketActivities(m.data.Activities)[key]
}
