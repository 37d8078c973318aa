package model

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"echub/internal/datekey"
)

var (
	ErrInvalidStatus   = errors.New("model: invalid task status")
	ErrInvalidPriority = errors.New("model: invalid task priority")
)

type TaskStatus string

const (
	StatusTodo       TaskStatus = "Todo"
	StatusInProgress TaskStatus = "InProgress"
	StatusReview     TaskStatus = "Review"
	StatusDone       TaskStatus = "Done"
)

func (s TaskStatus) IsValid() bool {
	switch s {
	case StatusTodo, StatusInProgress, StatusReview, StatusDone:
		return true
	default:
		return false
	}
}

// TaskStatuses lists the statuses in board-column order.
func TaskStatuses() []TaskStatus {
	return []TaskStatus{StatusTodo, StatusInProgress, StatusReview, StatusDone}
}

type Priority string

const (
	PriorityHigh   Priority = "High"
	PriorityMedium Priority = "Medium"
	PriorityLow    Priority = "Low"
)

func (p Priority) IsValid() bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	default:
		return false
	}
}

// Task is a unit of work in the tracker. A task with ParentID set is a
// subtask of exactly one parent.
type Task struct {
	ID          string
	Title       string
	Description string
	AssigneeID  string
	ObserverID  string
	DueDate     datekey.Key
	Status      TaskStatus
	Priority    Priority
	Project     string
	ParentID    string
	CreatedAt   time.Time
}

func (t Task) Validate() error {
	if strings.TrimSpace(t.ID) == "" {
		return errors.New("model: task id is required")
	}
	if strings.TrimSpace(t.Title) == "" {
		return errors.New("model: task title is required")
	}
	if !t.Status.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, t.Status)
	}
	if !t.Priority.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidPriority, t.Priority)
	}
	if t.DueDate != "" && !t.DueDate.IsValid() {
		return fmt.Errorf("%w: task due date %q", datekey.ErrInvalidKey, t.DueDate)
	}
	if t.ParentID == t.ID {
		return errors.New("model: task cannot be its own parent")
	}
	if t.CreatedAt.IsZero() {
		return errors.New("model: task created_at is required")
	}
	return nil
}

// IsRoot reports whether the task sits at the top of the hierarchy.
func (t Task) IsRoot() bool { return t.ParentID == "" }
