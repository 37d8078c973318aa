// Package store owns the entity collections. The rest of the application
// holds only derived state and mutates data exclusively through a Store.
package store

import (
	"context"
	"errors"

	"echub/internal/model"
)

var (
	ErrNotFound    = errors.New("store: not found")
	ErrHasChildren = errors.New("store: task has subtasks")
)

// CascadeStrategy controls what deleting a parent task does to its subtasks.
type CascadeStrategy string

const (
	// CascadeOne removes the task and its direct children only. Grandchildren
	// survive with a dangling ParentID. This mirrors the historical behavior
	// the rest of the tooling expects.
	CascadeOne CascadeStrategy = "one"
	// CascadeDeep removes the whole subtree.
	CascadeDeep CascadeStrategy = "deep"
	// RejectChildren refuses to delete a task that still has direct subtasks.
	RejectChildren CascadeStrategy = "reject"
)

func (s CascadeStrategy) IsValid() bool {
	switch s {
	case CascadeOne, CascadeDeep, RejectChildren:
		return true
	default:
		return false
	}
}

type Store interface {
	AddTask(ctx context.Context, t model.Task) error
	GetTask(ctx context.Context, id string) (model.Task, error)
	// UpdateTask replaces the task with the given id in place: identity is
	// preserved and no intermediate missing state is observable.
	UpdateTask(ctx context.Context, t model.Task) error
	UpdateTaskStatus(ctx context.Context, id string, status model.TaskStatus) error
	DeleteTask(ctx context.Context, id string, strategy CascadeStrategy) error
	ListTasks(ctx context.Context) ([]model.Task, error)

	AddActivity(ctx context.Context, a model.Activity) error
	ListActivities(ctx context.Context) ([]model.Activity, error)

	AddDeal(ctx context.Context, d model.Deal) error
	ListDeals(ctx context.Context) ([]model.Deal, error)
	ListCompanies(ctx context.Context) ([]model.Company, error)
	ListContacts(ctx context.Context) ([]model.Contact, error)

	AddDocument(ctx context.Context, d model.Document) error
	ListDocuments(ctx context.Context) ([]model.Document, error)

	AddArticle(ctx context.Context, a model.Article) error
	ListArticles(ctx context.Context) ([]model.Article, error)

	ListUsers(ctx context.Context) ([]model.User, error)
}
