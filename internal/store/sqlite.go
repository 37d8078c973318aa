package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"echub/internal/datekey"
	"echub/internal/model"
)

const sqliteTimeLayout = time.RFC3339Nano

// SQLiteStore implements Store on a SQLite database. It backs the seed
// command and can replace the in-memory store via configuration.
type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(db *sql.DB) (*SQLiteStore, error) {
	if db == nil {
		return nil, errors.New("store: nil db")
	}
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

func OpenSQLite(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	s, err := NewSQLiteStore(db)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// DB exposes the underlying handle, mainly for migrations.
func (s *SQLiteStore) DB() *sql.DB {
	return s.db
}

func (s *SQLiteStore) AddTask(ctx context.Context, t model.Task) error {
	if err := t.Validate(); err != nil {
		return err
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO tasks (id, title, description, assignee_id, observer_id, due_date, status, priority, project, parent_id, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		t.ID, t.Title, t.Description, t.AssigneeID, t.ObserverID, string(t.DueDate),
		string(t.Status), string(t.Priority), t.Project, t.ParentID, mustTime(t.CreatedAt),
	)
	return err
}

func (s *SQLiteStore) GetTask(ctx context.Context, id string) (model.Task, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, title, description, assignee_id, observer_id, due_date, status, priority, project, parent_id, created_at
		FROM tasks WHERE id = ?`, id)
	task, err := scanTask(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Task{}, ErrNotFound
		}
		return model.Task{}, err
	}
	return task, nil
}

func (s *SQLiteStore) UpdateTask(ctx context.Context, t model.Task) error {
	if err := t.Validate(); err != nil {
		return err
	}
	res, err := s.db.ExecContext(ctx, `
		UPDATE tasks
		SET title = ?, description = ?, assignee_id = ?, observer_id = ?, due_date = ?, status = ?, priority = ?, project = ?, parent_id = ?
		WHERE id = ?`,
		t.Title, t.Description, t.AssigneeID, t.ObserverID, string(t.DueDate),
		string(t.Status), string(t.Priority), t.Project, t.ParentID, t.ID,
	)
	if err != nil {
		return err
	}
	return checkRowsAffected(res)
}

func (s *SQLiteStore) UpdateTaskStatus(ctx context.Context, id string, status model.TaskStatus) error {
	if !status.IsValid() {
		return fmt.Errorf("%w: %q", model.ErrInvalidStatus, status)
	}
	res, err := s.db.ExecContext(ctx, `UPDATE tasks SET status = ? WHERE id = ?`, string(status), id)
	if err != nil {
		return err
	}
	return checkRowsAffected(res)
}

// DeleteTask applies the cascade strategy inside one transaction, so the
// parent and its children disappear atomically.
func (s *SQLiteStore) DeleteTask(ctx context.Context, id string, strategy CascadeStrategy) error {
	if !strategy.IsValid() {
		strategy = CascadeOne
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	var exists int
	if err := tx.QueryRowContext(ctx, `SELECT COUNT(1) FROM tasks WHERE id = ?`, id).Scan(&exists); err != nil {
		return err
	}
	if exists == 0 {
		return ErrNotFound
	}

	switch strategy {
	case RejectChildren:
		var children int
		if err := tx.QueryRowContext(ctx, `SELECT COUNT(1) FROM tasks WHERE parent_id = ?`, id).Scan(&children); err != nil {
			return err
		}
		if children > 0 {
			return fmt.Errorf("%w: %s", ErrHasChildren, id)
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id); err != nil {
			return err
		}
	case CascadeDeep:
		_, err = tx.ExecContext(ctx, `
			WITH RECURSIVE subtree(id) AS (
				SELECT id FROM tasks WHERE id = ?
				UNION ALL
				SELECT t.id FROM tasks t JOIN subtree s ON t.parent_id = s.id
			)
			DELETE FROM tasks WHERE id IN (SELECT id FROM subtree)`, id)
		if err != nil {
			return err
		}
	default:
		// One level: the grandchild rows keep their dangling parent_id.
		if _, err := tx.ExecContext(ctx, `DELETE FROM tasks WHERE id = ? OR parent_id = ?`, id, id); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func (s *SQLiteStore) ListTasks(ctx context.Context) ([]model.Task, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, title, description, assignee_id, observer_id, due_date, status, priority, project, parent_id, created_at
		FROM tasks ORDER BY created_at, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.Task, 0)
	for rows.Next() {
		task, scanErr := scanTask(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		out = append(out, task)
	}
	return out, rows.Err()
}

func (s *SQLiteStore) AddActivity(ctx context.Context, a model.Activity) error {
	if err := a.Validate(); err != nil {
		return err
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO activities (id, type, subject, date, status, related_entity_id, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		a.ID, string(a.Type), a.Subject, string(a.Date), string(a.Status), a.RelatedEntityID, mustTime(a.CreatedAt),
	)
	return err
}

func (s *SQLiteStore) ListActivities(ctx context.Context) ([]model.Activity, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, type, subject, date, status, related_entity_id, created_at
		FROM activities ORDER BY date, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.Activity, 0)
	for rows.Next() {
		var a model.Activity
		var typ, date, status, created string
		if err := rows.Scan(&a.ID, &typ, &a.Subject, &date, &status, &a.RelatedEntityID, &created); err != nil {
			return nil, err
		}
		createdAt, err := parseRequiredTime(created)
		if err != nil {
			return nil, err
		}
		a.Type = model.ActivityType(typ)
		a.Date = datekey.Key(date)
		a.Status = model.ActivityStatus(status)
		a.CreatedAt = createdAt
		out = append(out, a)
	}
	return out, rows.Err()
}

func (s *SQLiteStore) AddDeal(ctx context.Context, d model.Deal) error {
	if err := d.Validate(); err != nil {
		return err
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO deals (id, title, company_id, contact_id, amount, stage, owner_id, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		d.ID, d.Title, d.CompanyID, d.ContactID, d.Amount, string(d.Stage), d.OwnerID, mustTime(d.CreatedAt),
	)
	return err
}

func (s *SQLiteStore) ListDeals(ctx context.Context) ([]model.Deal, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, title, company_id, contact_id, amount, stage, owner_id, created_at
		FROM deals ORDER BY created_at, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.Deal, 0)
	for rows.Next() {
		var d model.Deal
		var stage, created string
		if err := rows.Scan(&d.ID, &d.Title, &d.CompanyID, &d.ContactID, &d.Amount, &stage, &d.OwnerID, &created); err != nil {
			return nil, err
		}
		createdAt, err := parseRequiredTime(created)
		if err != nil {
			return nil, err
		}
		d.Stage = model.DealStage(stage)
		d.CreatedAt = createdAt
		out = append(out, d)
	}
	return out, rows.Err()
}

func (s *SQLiteStore) AddCompany(ctx context.Context, c model.Company) error {
	if err := c.Validate(); err != nil {
		return err
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO companies (id, name, inn, segment) VALUES (?, ?, ?, ?)`,
		c.ID, c.Name, c.INN, c.Segment,
	)
	return err
}

func (s *SQLiteStore) ListCompanies(ctx context.Context) ([]model.Company, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, name, inn, segment FROM companies ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.Company, 0)
	for rows.Next() {
		var c model.Company
		if err := rows.Scan(&c.ID, &c.Name, &c.INN, &c.Segment); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (s *SQLiteStore) AddContact(ctx context.Context, c model.Contact) error {
	if err := c.Validate(); err != nil {
		return err
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO contacts (id, name, company_id, position, phone, email)
		VALUES (?, ?, ?, ?, ?, ?)`,
		c.ID, c.Name, c.CompanyID, c.Position, c.Phone, c.Email,
	)
	return err
}

func (s *SQLiteStore) ListContacts(ctx context.Context) ([]model.Contact, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, company_id, position, phone, email FROM contacts ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.Contact, 0)
	for rows.Next() {
		var c model.Contact
		if err := rows.Scan(&c.ID, &c.Name, &c.CompanyID, &c.Position, &c.Phone, &c.Email); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (s *SQLiteStore) AddDocument(ctx context.Context, d model.Document) error {
	if err := d.Validate(); err != nil {
		return err
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO documents (id, title, kind, deal_id, number, signed_on, status)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		d.ID, d.Title, string(d.Kind), d.DealID, d.Number, string(d.SignedOn), d.Status,
	)
	return err
}

func (s *SQLiteStore) ListDocuments(ctx context.Context) ([]model.Document, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, title, kind, deal_id, number, signed_on, status FROM documents ORDER BY number`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.Document, 0)
	for rows.Next() {
		var d model.Document
		var kind, signed string
		if err := rows.Scan(&d.ID, &d.Title, &kind, &d.DealID, &d.Number, &signed, &d.Status); err != nil {
			return nil, err
		}
		d.Kind = model.DocumentKind(kind)
		d.SignedOn = datekey.Key(signed)
		out = append(out, d)
	}
	return out, rows.Err()
}

func (s *SQLiteStore) AddArticle(ctx context.Context, a model.Article) error {
	if err := a.Validate(); err != nil {
		return err
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO articles (id, title, category, body, author_id, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		a.ID, a.Title, a.Category, a.Body, a.AuthorID, mustTime(a.UpdatedAt),
	)
	return err
}

func (s *SQLiteStore) ListArticles(ctx context.Context) ([]model.Article, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, title, category, body, author_id, updated_at FROM articles ORDER BY title`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.Article, 0)
	for rows.Next() {
		var a model.Article
		var updated string
		if err := rows.Scan(&a.ID, &a.Title, &a.Category, &a.Body, &a.AuthorID, &updated); err != nil {
			return nil, err
		}
		updatedAt, err := parseRequiredTime(updated)
		if err != nil {
			return nil, err
		}
		a.UpdatedAt = updatedAt
		out = append(out, a)
	}
	return out, rows.Err()
}

func (s *SQLiteStore) AddUser(ctx context.Context, u model.User) error {
	if err := u.Validate(); err != nil {
		return err
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO users (id, name, role, email) VALUES (?, ?, ?, ?)`,
		u.ID, u.Name, string(u.Role), u.Email,
	)
	return err
}

func (s *SQLiteStore) ListUsers(ctx context.Context) ([]model.User, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, name, role, email FROM users ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.User, 0)
	for rows.Next() {
		var u model.User
		var role string
		if err := rows.Scan(&u.ID, &u.Name, &role, &u.Email); err != nil {
			return nil, err
		}
		u.Role = model.Role(role)
		out = append(out, u)
	}
	return out, rows.Err()
}

// Seed loads a fixture set into the database.
func (s *SQLiteStore) Seed(ctx context.Context, fx FixtureSet) error {
	for _, u := range fx.Users {
		if err := s.AddUser(ctx, u); err != nil {
			return fmt.Errorf("seed user %s: %w", u.ID, err)
		}
	}
	for _, c := range fx.Companies {
		if err := s.AddCompany(ctx, c); err != nil {
			return fmt.Errorf("seed company %s: %w", c.ID, err)
		}
	}
	for _, c := range fx.Contacts {
		if err := s.AddContact(ctx, c); err != nil {
			return fmt.Errorf("seed contact %s: %w", c.ID, err)
		}
	}
	for _, d := range fx.Deals {
		if err := s.AddDeal(ctx, d); err != nil {
			return fmt.Errorf("seed deal %s: %w", d.ID, err)
		}
	}
	for _, t := range fx.Tasks {
		if err := s.AddTask(ctx, t); err != nil {
			return fmt.Errorf("seed task %s: %w", t.ID, err)
		}
	}
	for _, a := range fx.Activities {
		if err := s.AddActivity(ctx, a); err != nil {
			return fmt.Errorf("seed activity %s: %w", a.ID, err)
		}
	}
	for _, d := range fx.Documents {
		if err := s.AddDocument(ctx, d); err != nil {
			return fmt.Errorf("seed document %s: %w", d.ID, err)
		}
	}
	for _, a := range fx.Articles {
		if err := s.AddArticle(ctx, a); err != nil {
			return fmt.Errorf("seed article %s: %w", a.ID, err)
		}
	}
	return nil
}

func mustTime(v time.Time) string {
	return v.UTC().Format(sqliteTimeLayout)
}

func parseRequiredTime(v string) (time.Time, error) {
	return time.Parse(sqliteTimeLayout, v)
}

type scanner interface {
	Scan(dest ...any) error
}

func scanTask(s scanner) (model.Task, error) {
	var out model.Task
	var due, status, priority, created string
	if err := s.Scan(&out.ID, &out.Title, &out.Description, &out.AssigneeID, &out.ObserverID,
		&due, &status, &priority, &out.Project, &out.ParentID, &created); err != nil {
		return model.Task{}, err
	}
	createdAt, err := parseRequiredTime(created)
	if err != nil {
		return model.Task{}, err
	}
	out.DueDate = datekey.Key(due)
	out.Status = model.TaskStatus(status)
	out.Priority = model.Priority(priority)
	out.CreatedAt = createdAt
	return out, nil
}

func checkRowsAffected(res sql.Result) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
