package store

import (
	"context"
	"fmt"
	"sync"

	"echub/internal/model"
)

// MemoryStore keeps all collections in process memory behind one mutex. It
// is the single owner of application state while the TUI runs; every view
// recomputes its derived data from these snapshots.
type MemoryStore struct {
	mu         sync.Mutex
	tasks      []model.Task
	activities []model.Activity
	deals      []model.Deal
	companies  []model.Company
	contacts   []model.Contact
	documents  []model.Document
	articles   []model.Article
	users      []model.User
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// NewSeededMemoryStore loads the embedded fixture set.
func NewSeededMemoryStore() (*MemoryStore, error) {
	fx, err := LoadFixtures()
	if err != nil {
		return nil, err
	}
	s := NewMemoryStore()
	s.tasks = fx.Tasks
	s.activities = fx.Activities
	s.deals = fx.Deals
	s.companies = fx.Companies
	s.contacts = fx.Contacts
	s.documents = fx.Documents
	s.articles = fx.Articles
	s.users = fx.Users
	return s, nil
}

func (s *MemoryStore) AddTask(_ context.Context, t model.Task) error {
	if err := t.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.tasks {
		if existing.ID == t.ID {
			return fmt.Errorf("store: task %s already exists", t.ID)
		}
	}
	s.tasks = append(s.tasks, t)
	return nil
}

func (s *MemoryStore) GetTask(_ context.Context, id string) (model.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range s.tasks {
		if t.ID == id {
			return t, nil
		}
	}
	return model.Task{}, ErrNotFound
}

// UpdateTask swaps the stored task in its slice slot under the lock, so
// readers never observe the task missing mid-edit.
func (s *MemoryStore) UpdateTask(_ context.Context, t model.Task) error {
	if err := t.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.tasks {
		if s.tasks[i].ID == t.ID {
			s.tasks[i] = t
			return nil
		}
	}
	return ErrNotFound
}

func (s *MemoryStore) UpdateTaskStatus(_ context.Context, id string, status model.TaskStatus) error {
	if !status.IsValid() {
		return fmt.Errorf("%w: %q", model.ErrInvalidStatus, status)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			s.tasks[i].Status = status
			return nil
		}
	}
	return ErrNotFound
}

func (s *MemoryStore) DeleteTask(_ context.Context, id string, strategy CascadeStrategy) error {
	if !strategy.IsValid() {
		strategy = CascadeOne
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	found := false
	for _, t := range s.tasks {
		if t.ID == id {
			found = true
			break
		}
	}
	if !found {
		return ErrNotFound
	}

	doomed := map[string]bool{id: true}
	switch strategy {
	case RejectChildren:
		for _, t := range s.tasks {
			if t.ParentID == id {
				return fmt.Errorf("%w: %s", ErrHasChildren, id)
			}
		}
	case CascadeDeep:
		// Expand until no task points at a doomed parent.
		for changed := true; changed; {
			changed = false
			for _, t := range s.tasks {
				if !doomed[t.ID] && doomed[t.ParentID] {
					doomed[t.ID] = true
					changed = true
				}
			}
		}
	default:
		// One level only: direct children go, grandchildren keep their
		// now-dangling ParentID.
		for _, t := range s.tasks {
			if t.ParentID == id {
				doomed[t.ID] = true
			}
		}
	}

	kept := s.tasks[:0]
	for _, t := range s.tasks {
		if !doomed[t.ID] {
			kept = append(kept, t)
		}
	}
	s.tasks = kept
	return nil
}

func (s *MemoryStore) ListTasks(_ context.Context) ([]model.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return snapshot(s.tasks), nil
}

func (s *MemoryStore) AddActivity(_ context.Context, a model.Activity) error {
	if err := a.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.activities = append(s.activities, a)
	return nil
}

func (s *MemoryStore) ListActivities(_ context.Context) ([]model.Activity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return snapshot(s.activities), nil
}

func (s *MemoryStore) AddDeal(_ context.Context, d model.Deal) error {
	if err := d.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.deals = append(s.deals, d)
	return nil
}

func (s *MemoryStore) ListDeals(_ context.Context) ([]model.Deal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return snapshot(s.deals), nil
}

func (s *MemoryStore) ListCompanies(_ context.Context) ([]model.Company, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return snapshot(s.companies), nil
}

func (s *MemoryStore) ListContacts(_ context.Context) ([]model.Contact, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return snapshot(s.contacts), nil
}

func (s *MemoryStore) AddDocument(_ context.Context, d model.Document) error {
	if err := d.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.documents = append(s.documents, d)
	return nil
}

func (s *MemoryStore) ListDocuments(_ context.Context) ([]model.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return snapshot(s.documents), nil
}

func (s *MemoryStore) AddArticle(_ context.Context, a model.Article) error {
	if err := a.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.articles = append(s.articles, a)
	return nil
}

func (s *MemoryStore) ListArticles(_ context.Context) ([]model.Article, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return snapshot(s.articles), nil
}

func (s *MemoryStore) ListUsers(_ context.Context) ([]model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return snapshot(s.users), nil
}

func snapshot[T any](in []T) []T {
	out := make([]T, len(in))
	copy(out, in)
	return out
}
