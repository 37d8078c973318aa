package update

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"echub/internal/datekey"
	"echub/internal/model"
)

const (
	taskFieldTitle = iota
	taskFieldDue
	taskFieldProject
	taskFieldCount
)

const (
	activityFieldSubject = iota
	activityFieldDate
	activityFieldCount
)

func (m *Model) openTaskForm(draft model.Task, creating bool) {
	m.TaskForm = TaskFormState{
		Active:   true,
		Creating: creating,
		Draft:    draft,
		DueText:  string(draft.DueDate),
	}
}

func (m *Model) openActivityForm(draft model.Activity) {
	m.ActivityForm = ActivityFormState{
		Active:   true,
		Draft:    draft,
		DateText: string(draft.Date),
	}
}

func (m Model) handleTaskFormKey(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "esc":
		m.TaskForm = TaskFormState{}
		m.Status = StatusBar{Text: "task form cancelled", IsError: false}
	case "tab":
		m.TaskForm.Field = (m.TaskForm.Field + 1) % taskFieldCount
	case "shift+tab":
		m.TaskForm.Field = (m.TaskForm.Field + taskFieldCount - 1) % taskFieldCount
	case "ctrl+p":
		m.TaskForm.Draft.Priority = nextPriority(m.TaskForm.Draft.Priority)
	case "backspace":
		field := m.taskFormField()
		if len(*field) > 0 {
			runes := []rune(*field)
			*field = string(runes[:len(runes)-1])
		}
	case "enter":
		m = m.submitTaskForm()
	default:
		if msg.Type == tea.KeyRunes {
			field := m.taskFormField()
			*field += string(msg.Runes)
		} else if msg.String() == " " {
			field := m.taskFormField()
			*field += " "
		}
	}
	return m
}

func (m *Model) taskFormField() *string {
	switch m.TaskForm.Field {
	case taskFieldDue:
		return &m.TaskForm.DueText
	case taskFieldProject:
		return &m.TaskForm.Draft.Project
	default:
		return &m.TaskForm.Draft.Title
	}
}

// submitTaskForm validates and persists the draft. A bad due date or a
// failed validation keeps the form open with the error shown; nothing is
// written to the store until the draft is fully valid.
func (m Model) submitTaskForm() Model {
	draft := m.TaskForm.Draft
	due := strings.TrimSpace(m.TaskForm.DueText)
	if due == "" {
		draft.DueDate = ""
	} else {
		key, err := datekey.Parse(due)
		if err != nil {
			m.TaskForm.Err = err.Error()
			return m
		}
		draft.DueDate = key
	}
	if m.TaskForm.Creating && draft.ID == "" {
		draft.ID = model.NewID()
		draft.CreatedAt = m.now().In(m.loc)
	}
	if err := draft.Validate(); err != nil {
		m.TaskForm.Err = err.Error()
		return m
	}

	ctx := context.Background()
	var err error
	if m.TaskForm.Creating {
		err = m.store.AddTask(ctx, draft)
	} else {
		err = m.store.UpdateTask(ctx, draft)
	}
	if err != nil {
		m.TaskForm.Err = err.Error()
		return m
	}

	m.reloadData()
	verb := "updated"
	if m.TaskForm.Creating {
		verb = "created"
	}
	m.TaskForm = TaskFormState{}
	m.Status = StatusBar{Text: fmt.Sprintf("task %s: %s", verb, draft.Title), IsError: false}
	return m
}

func (m Model) handleActivityFormKey(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "esc":
		m.ActivityForm = ActivityFormState{}
		m.Status = StatusBar{Text: "activity form cancelled", IsError: false}
	case "tab":
		m.ActivityForm.Field = (m.ActivityForm.Field + 1) % activityFieldCount
	case "shift+tab":
		m.ActivityForm.Field = (m.ActivityForm.Field + activityFieldCount - 1) % activityFieldCount
	case "ctrl+t":
		m.ActivityForm.Draft.Type = nextActivityType(m.ActivityForm.Draft.Type)
	case "backspace":
		field := m.activityFormField()
		if len(*field) > 0 {
			runes := []rune(*field)
			*field = string(runes[:len(runes)-1])
		}
	case "enter":
		m = m.submitActivityForm()
	default:
		if msg.Type == tea.KeyRunes {
			field := m.activityFormField()
			*field += string(msg.Runes)
		} else if msg.String() == " " {
			field := m.activityFormField()
			*field += " "
		}
	}
	return m
}

func (m *Model) activityFormField() *string {
	if m.ActivityForm.Field == activityFieldDate {
		return &m.ActivityForm.DateText
	}
	return &m.ActivityForm.Draft.Subject
}

func (m Model) submitActivityForm() Model {
	draft := m.ActivityForm.Draft
	key, err := datekey.Parse(strings.TrimSpace(m.ActivityForm.DateText))
	if err != nil {
		m.ActivityForm.Err = err.Error()
		return m
	}
	draft.Date = key
	if draft.ID == "" {
		draft.ID = model.NewID()
		draft.CreatedAt = m.now().In(m.loc)
	}
	if err := draft.Validate(); err != nil {
		m.ActivityForm.Err = err.Error()
		return m
	}
	if err := m.store.AddActivity(context.Background(), draft); err != nil {
		m.ActivityForm.Err = err.Error()
		return m
	}

	m.reloadData()
	if m.agenda != nil {
		m.agenda.ScheduleActivities([]model.Activity{draft}, m.cfg.ReminderHour, m.loc)
	}
	m.ActivityForm = ActivityFormState{}
	m.Status = StatusBar{Text: fmt.Sprintf("activity logged: %s", draft.Subject), IsError: false}
	return m
}

func nextPriority(p model.Priority) model.Priority {
	switch p {
	case model.PriorityHigh:
		return model.PriorityMedium
	case model.PriorityMedium:
		return model.PriorityLow
	default:
		return model.PriorityHigh
	}
}

func nextActivityType(t model.ActivityType) model.ActivityType {
	switch t {
	case model.ActivityCall:
		return model.ActivityMeeting
	case model.ActivityMeeting:
		return model.ActivityEmail
	default:
		return model.ActivityCall
	}
}
