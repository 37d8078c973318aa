package calendar

import (
	"time"

	"echub/internal/datekey"
	"echub/internal/model"
)

type Mode string

const (
	ModeMonth Mode = "month"
	ModeWeek  Mode = "week"
)

func (m Mode) IsValid() bool { return m == ModeMonth || m == ModeWeek }

// Controller holds the calendar screen state: the reference date, the view
// mode, the working-day set and the single popover slot. It never mutates
// the task or activity collections; quick-add produces drafts the owning
// store consumes.
type Controller struct {
	Reference   time.Time
	Mode        Mode
	Working     WorkingDays
	OpenPopover datekey.Key
}

func NewController(ref time.Time) *Controller {
	return &Controller{
		Reference: ref,
		Mode:      ModeMonth,
		Working:   DefaultWorkingDays(),
	}
}

// Shift moves the reference date by offset periods: whole months in month
// mode (normalized to day 1 so month-length rollover cannot skip a month),
// weeks in week mode.
func (c *Controller) Shift(offset int) {
	switch c.Mode {
	case ModeWeek:
		c.Reference = c.Reference.AddDate(0, 0, 7*offset)
	default:
		y, m, _ := c.Reference.Date()
		c.Reference = time.Date(y, m, 1, 0, 0, 0, 0, c.Reference.Location()).AddDate(0, offset, 0)
	}
}

// SetMode switches the grid builder; the reference date is kept.
func (c *Controller) SetMode(mode Mode) {
	if mode.IsValid() {
		c.Mode = mode
	}
}

// ToggleWorkingDay flips day in the working set; removing the last working
// day is rejected. Reports whether anything changed.
func (c *Controller) ToggleWorkingDay(day time.Weekday) bool {
	return c.Working.Toggle(day)
}

// Grid builds the cells for the current mode.
func (c *Controller) Grid() []Cell {
	if c.Mode == ModeWeek {
		return BuildWeekGrid(c.Reference, c.Working)
	}
	return BuildMonthGrid(c.Reference).Days
}

// OpenDayPopover opens the quick-add popover for key. At most one popover is
// open; opening a second closes the first.
func (c *Controller) OpenDayPopover(key datekey.Key) {
	c.OpenPopover = key
}

func (c *Controller) ClosePopover() {
	c.OpenPopover = ""
}

// QuickAddTask returns a draft task for the day: empty id, due on the given
// key, default status and priority. The open popover is closed.
func (c *Controller) QuickAddTask(key datekey.Key) model.Task {
	c.ClosePopover()
	return model.Task{
		DueDate:  key,
		Status:   model.StatusTodo,
		Priority: model.PriorityMedium,
	}
}

// QuickAddActivity returns a pre-filled activity draft for the create form:
// planned call on the given day. The popover is closed; the form stamps the
// id and created_at on submit.
func (c *Controller) QuickAddActivity(key datekey.Key) model.Activity {
	c.ClosePopover()
	return model.Activity{
		Type:   model.ActivityCall,
		Date:   key,
		Status: model.ActivityPlanned,
	}
}

// BucketTasks groups tasks by due-date key for grid rendering. Tasks without
// a due date are skipped.
func BucketTasks(tasks []model.Task) map[datekey.Key][]model.Task {
	out := make(map[datekey.Key][]model.Task)
	for _, t := range tasks {
		if t.DueDate == "" {
			continue
		}
		out[t.DueDate] = append(out[t.DueDate], t)
	}
	return out
}

// BucketActivities groups activities by date key for grid rendering.
func BucketActivities(acts []model.Activity) map[datekey.Key][]model.Activity {
	out := make(map[datekey.Key][]model.Activity)
	for _, a := range acts {
		out[a.Date] = append(out[a.Date], a)
	}
	return out
}
