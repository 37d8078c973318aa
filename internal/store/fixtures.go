package store

import (
	"embed"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"

	"echub/internal/datekey"
	"echub/internal/model"
)

//go:embed fixtures/*.yaml
var fixtureFiles embed.FS

// FixtureSet is the seed data the application starts from.
type FixtureSet struct {
	Users      []model.User
	Companies  []model.Company
	Contacts   []model.Contact
	Deals      []model.Deal
	Tasks      []model.Task
	Activities []model.Activity
	Documents  []model.Document
	Articles   []model.Article
}

type fixtureFile struct {
	Users []struct {
		ID    string `yaml:"id"`
		Name  string `yaml:"name"`
		Role  string `yaml:"role"`
		Email string `yaml:"email"`
	} `yaml:"users"`
	Companies []struct {
		ID      string `yaml:"id"`
		Name    string `yaml:"name"`
		INN     string `yaml:"inn"`
		Segment string `yaml:"segment"`
	} `yaml:"companies"`
	Contacts []struct {
		ID        string `yaml:"id"`
		Name      string `yaml:"name"`
		CompanyID string `yaml:"company_id"`
		Position  string `yaml:"position"`
		Phone     string `yaml:"phone"`
		Email     string `yaml:"email"`
	} `yaml:"contacts"`
	Deals []struct {
		ID        string `yaml:"id"`
		Title     string `yaml:"title"`
		CompanyID string `yaml:"company_id"`
		ContactID string `yaml:"contact_id"`
		Amount    int64  `yaml:"amount"`
		Stage     string `yaml:"stage"`
		OwnerID   string `yaml:"owner_id"`
	} `yaml:"deals"`
	Tasks []struct {
		ID          string `yaml:"id"`
		Title       string `yaml:"title"`
		Description string `yaml:"description"`
		AssigneeID  string `yaml:"assignee_id"`
		ObserverID  string `yaml:"observer_id"`
		DueDate     string `yaml:"due_date"`
		Status      string `yaml:"status"`
		Priority    string `yaml:"priority"`
		Project     string `yaml:"project"`
		ParentID    string `yaml:"parent_id"`
	} `yaml:"tasks"`
	Activities []struct {
		ID              string `yaml:"id"`
		Type            string `yaml:"type"`
		Subject         string `yaml:"subject"`
		Date            string `yaml:"date"`
		Status          string `yaml:"status"`
		RelatedEntityID string `yaml:"related_entity_id"`
	} `yaml:"activities"`
	Documents []struct {
		ID       string `yaml:"id"`
		Title    string `yaml:"title"`
		Kind     string `yaml:"kind"`
		DealID   string `yaml:"deal_id"`
		Number   string `yaml:"number"`
		SignedOn string `yaml:"signed_on"`
		Status   string `yaml:"status"`
	} `yaml:"documents"`
	Articles []struct {
		ID       string `yaml:"id"`
		Title    string `yaml:"title"`
		Category string `yaml:"category"`
		Body     string `yaml:"body"`
		AuthorID string `yaml:"author_id"`
	} `yaml:"articles"`
}

// LoadFixtures parses and validates the embedded seed set.
func LoadFixtures() (FixtureSet, error) {
	raw, err := fixtureFiles.ReadFile("fixtures/seed.yaml")
	if err != nil {
		return FixtureSet{}, fmt.Errorf("read fixtures: %w", err)
	}
	var file fixtureFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return FixtureSet{}, fmt.Errorf("parse fixtures: %w", err)
	}

	seededAt := time.Date(2023, 11, 1, 8, 0, 0, 0, time.UTC)
	var out FixtureSet

	for _, u := range file.Users {
		user := model.User{ID: u.ID, Name: u.Name, Role: model.Role(u.Role), Email: u.Email}
		if err := user.Validate(); err != nil {
			return FixtureSet{}, fmt.Errorf("fixture user %s: %w", u.ID, err)
		}
		out.Users = append(out.Users, user)
	}
	for _, c := range file.Companies {
		company := model.Company{ID: c.ID, Name: c.Name, INN: c.INN, Segment: c.Segment}
		if err := company.Validate(); err != nil {
			return FixtureSet{}, fmt.Errorf("fixture company %s: %w", c.ID, err)
		}
		out.Companies = append(out.Companies, company)
	}
	for _, c := range file.Contacts {
		contact := model.Contact{ID: c.ID, Name: c.Name, CompanyID: c.CompanyID, Position: c.Position, Phone: c.Phone, Email: c.Email}
		if err := contact.Validate(); err != nil {
			return FixtureSet{}, fmt.Errorf("fixture contact %s: %w", c.ID, err)
		}
		out.Contacts = append(out.Contacts, contact)
	}
	for _, d := range file.Deals {
		deal := model.Deal{
			ID: d.ID, Title: d.Title, CompanyID: d.CompanyID, ContactID: d.ContactID,
			Amount: d.Amount, Stage: model.DealStage(d.Stage), OwnerID: d.OwnerID, CreatedAt: seededAt,
		}
		if err := deal.Validate(); err != nil {
			return FixtureSet{}, fmt.Errorf("fixture deal %s: %w", d.ID, err)
		}
		out.Deals = append(out.Deals, deal)
	}
	for _, t := range file.Tasks {
		task := model.Task{
			ID: t.ID, Title: t.Title, Description: t.Description,
			AssigneeID: t.AssigneeID, ObserverID: t.ObserverID,
			DueDate: datekey.Key(t.DueDate), Status: model.TaskStatus(t.Status),
			Priority: model.Priority(t.Priority), Project: t.Project,
			ParentID: t.ParentID, CreatedAt: seededAt,
		}
		if err := task.Validate(); err != nil {
			return FixtureSet{}, fmt.Errorf("fixture task %s: %w", t.ID, err)
		}
		out.Tasks = append(out.Tasks, task)
	}
	for _, a := range file.Activities {
		act := model.Activity{
			ID: a.ID, Type: model.ActivityType(a.Type), Subject: a.Subject,
			Date: datekey.Key(a.Date), Status: model.ActivityStatus(a.Status),
			RelatedEntityID: a.RelatedEntityID, CreatedAt: seededAt,
		}
		if err := act.Validate(); err != nil {
			return FixtureSet{}, fmt.Errorf("fixture activity %s: %w", a.ID, err)
		}
		out.Activities = append(out.Activities, act)
	}
	for _, d := range file.Documents {
		doc := model.Document{
			ID: d.ID, Title: d.Title, Kind: model.DocumentKind(d.Kind),
			DealID: d.DealID, Number: d.Number, SignedOn: datekey.Key(d.SignedOn), Status: d.Status,
		}
		if err := doc.Validate(); err != nil {
			return FixtureSet{}, fmt.Errorf("fixture document %s: %w", d.ID, err)
		}
		out.Documents = append(out.Documents, doc)
	}
	for _, a := range file.Articles {
		article := model.Article{
			ID: a.ID, Title: a.Title, Category: a.Category,
			Body: a.Body, AuthorID: a.AuthorID, UpdatedAt: seededAt,
		}
		if err := article.Validate(); err != nil {
			return FixtureSet{}, fmt.Errorf("fixture article %s: %w", a.ID, err)
		}
		out.Articles = append(out.Articles, article)
	}
	return out, nil
}
