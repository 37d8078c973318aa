package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"echub/internal/model"
)

func newTask(id, parent string) model.Task {
	return model.Task{
		ID:        id,
		Title:     "task " + id,
		Status:    model.StatusTodo,
		Priority:  model.PriorityMedium,
		ParentID:  parent,
		CreatedAt: time.Date(2023, 11, 1, 8, 0, 0, 0, time.UTC),
	}
}

func seedHierarchy(t *testing.T, s *MemoryStore) {
	t.Helper()
	ctx := context.Background()
	for _, task := range []model.Task{
		newTask("t1", ""),
		newTask("t1-1", "t1"),
		newTask("t1-1-1", "t1-1"),
		newTask("t2", ""),
	} {
		if err := s.AddTask(ctx, task); err != nil {
			t.Fatalf("seed %s: %v", task.ID, err)
		}
	}
}

func TestAddTaskRejectsDuplicateAndInvalid(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()
	if err := s.AddTask(ctx, newTask("t1", "")); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := s.AddTask(ctx, newTask("t1", "")); err == nil {
		t.Fatal("expected duplicate id error")
	}
	bad := newTask("t2", "")
	bad.Status = model.TaskStatus("Nope")
	if err := s.AddTask(ctx, bad); !errors.Is(err, model.ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
}

func TestUpdateTaskInPlacePreservesIdentityAndPosition(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()
	seedHierarchy(t, s)

	updated := newTask("t1", "")
	updated.Title = "renamed"
	updated.Priority = model.PriorityHigh
	if err := s.UpdateTask(ctx, updated); err != nil {
		t.Fatalf("update: %v", err)
	}

	tasks, _ := s.ListTasks(ctx)
	if tasks[0].ID != "t1" || tasks[0].Title != "renamed" {
		t.Fatalf("expected t1 updated in place, got %+v", tasks[0])
	}
	if len(tasks) != 4 {
		t.Fatalf("expected 4 tasks, got %d", len(tasks))
	}

	missing := newTask("ghost", "")
	if err := s.UpdateTask(ctx, missing); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUpdateTaskStatus(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()
	seedHierarchy(t, s)

	if err := s.UpdateTaskStatus(ctx, "t2", model.StatusDone); err != nil {
		t.Fatalf("update status: %v", err)
	}
	got, err := s.GetTask(ctx, "t2")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Status != model.StatusDone {
		t.Fatalf("status: got %q, want Done", got.Status)
	}
	if err := s.UpdateTaskStatus(ctx, "t2", model.TaskStatus("Nope")); !errors.Is(err, model.ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
}

func TestDeleteTaskCascadeOneLeavesGrandchildOrphaned(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()
	seedHierarchy(t, s)

	if err := s.DeleteTask(ctx, "t1", CascadeOne); err != nil {
		t.Fatalf("delete: %v", err)
	}

	if _, err := s.GetTask(ctx, "t1"); !errors.Is(err, ErrNotFound) {
		t.Fatal("t1 should be gone")
	}
	if _, err := s.GetTask(ctx, "t1-1"); !errors.Is(err, ErrNotFound) {
		t.Fatal("direct child t1-1 should be gone")
	}
	// The grandchild survives with a dangling parent reference.
	orphan, err := s.GetTask(ctx, "t1-1-1")
	if err != nil {
		t.Fatalf("grandchild should survive one-level cascade: %v", err)
	}
	if orphan.ParentID != "t1-1" {
		t.Fatalf("grandchild parent: got %q, want dangling t1-1", orphan.ParentID)
	}
}

func TestDeleteTaskCascadeDeepRemovesSubtree(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()
	seedHierarchy(t, s)

	if err := s.DeleteTask(ctx, "t1", CascadeDeep); err != nil {
		t.Fatalf("delete: %v", err)
	}
	tasks, _ := s.ListTasks(ctx)
	if len(tasks) != 1 || tasks[0].ID != "t2" {
		t.Fatalf("expected only t2 to survive, got %+v", tasks)
	}
}

func TestDeleteTaskRejectChildren(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()
	seedHierarchy(t, s)

	if err := s.DeleteTask(ctx, "t1", RejectChildren); !errors.Is(err, ErrHasChildren) {
		t.Fatalf("expected ErrHasChildren, got %v", err)
	}
	tasks, _ := s.ListTasks(ctx)
	if len(tasks) != 4 {
		t.Fatalf("reject must not delete anything, got %d tasks", len(tasks))
	}

	// Leaf deletion is fine under reject.
	if err := s.DeleteTask(ctx, "t1-1-1", RejectChildren); err != nil {
		t.Fatalf("leaf delete: %v", err)
	}
}

func TestDeleteTaskUnknownStrategyDefaultsToOneLevel(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()
	seedHierarchy(t, s)

	if err := s.DeleteTask(ctx, "t1", CascadeStrategy("bogus")); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := s.GetTask(ctx, "t1-1-1"); err != nil {
		t.Fatal("grandchild should survive the default one-level cascade")
	}
}

func TestListTasksReturnsSnapshot(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()
	seedHierarchy(t, s)

	tasks, _ := s.ListTasks(ctx)
	tasks[0].Title = "mutated"
	again, _ := s.ListTasks(ctx)
	if again[0].Title == "mutated" {
		t.Fatal("ListTasks must return a copy, not the backing slice")
	}
}

func TestSeededMemoryStoreLoadsFixtures(t *testing.T) {
	s, err := NewSeededMemoryStore()
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	ctx := context.Background()

	tasks, _ := s.ListTasks(ctx)
	if len(tasks) == 0 {
		t.Fatal("expected seeded tasks")
	}
	users, _ := s.ListUsers(ctx)
	if len(users) == 0 {
		t.Fatal("expected seeded users")
	}
	acts, _ := s.ListActivities(ctx)
	if len(acts) == 0 {
		t.Fatal("expected seeded activities")
	}
	// The fixture hierarchy includes a grandchild for cascade scenarios.
	foundGrandchild := false
	for _, task := range tasks {
		if task.ID == "t-legal-notes" && task.ParentID == "t-legal" {
			foundGrandchild = true
		}
	}
	if !foundGrandchild {
		t.Fatal("expected t-legal-notes fixture with parent t-legal")
	}
}
