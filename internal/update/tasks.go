package update

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"echub/internal/model"
	"echub/internal/store"
	"echub/internal/tasks"
)

// taskRow is one visible line of the hierarchy projection: roots in order,
// then the children of each expanded root.
type taskRow struct {
	Task        model.Task
	Depth       int
	HasChildren bool
	Expanded    bool
}

func (m Model) taskRows() []taskRow {
	nodes := tasks.Project(m.data.Tasks, m.Tasks.Filter, m.Tasks.Expanded)
	rows := make([]taskRow, 0, len(nodes))
	for _, n := range nodes {
		rows = append(rows, taskRow{
			Task:        n.Task,
			HasChildren: n.HasChildren(),
			Expanded:    n.Expanded,
		})
		if !n.Expanded {
			continue
		}
		for _, child := range n.Children {
			rows = append(rows, taskRow{Task: child, Depth: 1})
		}
	}
	return rows
}

func (m Model) currentTaskRow() (taskRow, bool) {
	rows := m.taskRows()
	if len(rows) == 0 || m.Tasks.Cursor < 0 || m.Tasks.Cursor >= len(rows) {
		return taskRow{}, false
	}
	return rows[m.Tasks.Cursor], true
}

func (m Model) handleTasksKey(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "v":
		if m.Tasks.ViewMode == TaskViewList {
			m.Tasks.ViewMode = TaskViewKanban
			m.Status = StatusBar{Text: "tasks view: kanban", IsError: false}
		} else {
			m.Tasks.ViewMode = TaskViewList
			m.Status = StatusBar{Text: "tasks view: list", IsError: false}
		}
	case "down", "j":
		if m.Tasks.Cursor < len(m.taskRows())-1 {
			m.Tasks.Cursor++
		}
	case "up", "k":
		if m.Tasks.Cursor > 0 {
			m.Tasks.Cursor--
		}
	case "enter", "z":
		if row, ok := m.currentTaskRow(); ok && row.HasChildren {
			m.Tasks.Expanded.Toggle(row.Task.ID)
		}
	case "s":
		m.cycleTaskStatus()
	case "e":
		if row, ok := m.currentTaskRow(); ok {
			m.openTaskForm(row.Task, false)
		}
	case "n":
		draft := model.Task{
			Status:     model.StatusTodo,
			Priority:   model.PriorityMedium,
			AssigneeID: m.currentUser.ID,
		}
		m.openTaskForm(draft, true)
	case "x":
		m.deleteSelectedTask()
	case "m":
		if m.Tasks.Filter.AssigneeID == "" {
			m.Tasks.Filter.AssigneeID = m.currentUser.ID
			m.Status = StatusBar{Text: fmt.Sprintf("showing tasks assigned to %s", m.currentUser.Name), IsError: false}
		} else {
			m.Tasks.Filter.AssigneeID = ""
			m.Status = StatusBar{Text: "showing all assignees", IsError: false}
		}
		m.Tasks.Cursor = 0
	case "c":
		m.Tasks.Filter = tasks.Filter{}
		m.Status = StatusBar{Text: "task filter cleared", IsError: false}
	}
	m.clampTasksCursor()
	return m
}

func (m *Model) clampTasksCursor() {
	rows := m.taskRows()
	if m.Tasks.Cursor >= len(rows) {
		m.Tasks.Cursor = len(rows) - 1
	}
	if m.Tasks.Cursor < 0 {
		m.Tasks.Cursor = 0
	}
}

func (m *Model) cycleTaskStatus() {
	row, ok := m.currentTaskRow()
	if !ok {
		return
	}
	statuses := model.TaskStatuses()
	next := statuses[0]
	for i, s := range statuses {
		if s == row.Task.Status {
			next = statuses[(i+1)%len(statuses)]
			break
		}
	}
	if err := m.store.UpdateTaskStatus(context.Background(), row.Task.ID, next); err != nil {
		m.fail(err)
		return
	}
	m.reloadData()
	m.Status = StatusBar{Text: fmt.Sprintf("task %q -> %s", row.Task.Title, next), IsError: false}
}

func (m *Model) deleteSelectedTask() {
	row, ok := m.currentTaskRow()
	if !ok {
		return
	}
	err := m.store.DeleteTask(context.Background(), row.Task.ID, m.cfg.CascadeStrategy)
	if errors.Is(err, store.ErrHasChildren) {
		m.Status = StatusBar{Text: fmt.Sprintf("task %q has subtasks, delete them first", row.Task.Title), IsError: true}
		return
	}
	if err != nil {
		m.fail(err)
		return
	}
	m.reloadData()
	m.clampTasksCursor()
	m.Status = StatusBar{Text: fmt.Sprintf("task deleted: %s", row.Task.Title), IsError: false}
}

func (m Model) filterSummary() string {
	f := m.Tasks.Filter
	out := ""
	if f.Query != "" {
		out += "query=" + f.Query + " "
	}
	if f.Project != "" {
		out += "project=" + f.Project + " "
	}
	if f.AssigneeID != "" {
		out += "assignee=" + f.AssigneeID
	}
	return out
}
