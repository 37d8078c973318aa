package update

import (
	"context"
	"fmt"
	"os/exec"
	"runtime"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"

	"echub/internal/agenda"
	"echub/internal/bridge"
	"echub/internal/calendar"
	"echub/internal/config"
	"echub/internal/listutil"
	"echub/internal/model"
	"echub/internal/store"
	"echub/internal/tasks"
)

type Module string

const (
	ModuleTasks     Module = "Tasks"
	ModuleCalendar  Module = "Calendar"
	ModuleDeals     Module = "Deals"
	ModuleContacts  Module = "Contacts"
	ModuleDocuments Module = "Documents"
	ModuleKnowledge Module = "Knowledge"
)

type StatusBar struct {
	Text    string
	IsError bool
}

type GlobalKeyMap struct {
	Tasks     string
	Calendar  string
	Deals     string
	Contacts  string
	Documents string
	Knowledge string
	Help      string
	Quit      string
}

// Snapshot is the in-memory copy of the store the screens render from. It is
// reloaded after every mutation.
type Snapshot struct {
	Tasks      []model.Task
	Activities []model.Activity
	Deals      []model.Deal
	Companies  []model.Company
	Contacts   []model.Contact
	Documents  []model.Document
	Articles   []model.Article
	Users      []model.User
}

type TaskViewMode string

const (
	TaskViewList   TaskViewMode = "list"
	TaskViewKanban TaskViewMode = "kanban"
)

type TasksState struct {
	ViewMode TaskViewMode
	Filter   tasks.Filter
	Expanded tasks.ExpandedSet
	Cursor   int
}

type CalendarScreenState struct {
	Cursor int
}

type DealsState struct {
	Cursor int
}

type ContactsState struct {
	Cursor int
}

type DocumentsState struct {
	Cursor int
}

type KnowledgeState struct {
	Cursor  int
	Reading bool
}

type CommandPaletteState struct {
	Active bool
	Input  string
}

// TaskFormState is the modal create/edit form. DueText is kept as raw input
// and parsed on save so a bad date is rejected with the form still open.
type TaskFormState struct {
	Active   bool
	Creating bool
	Draft    model.Task
	DueText  string
	Field    int
	Err      string
}

type ActivityFormState struct {
	Active   bool
	Draft    model.Activity
	DateText string
	Field    int
	Err      string
}

type Notification struct {
	Title string
	Body  string
	Level string
	At    time.Time
}

type DesktopNotifier interface {
	Send(Notification) error
}

type NoopDesktopNotifier struct{}

func (NoopDesktopNotifier) Send(Notification) error { return nil }

type ExecDesktopNotifier struct{}

func (ExecDesktopNotifier) Send(n Notification) error {
	switch runtime.GOOS {
	case "linux":
		return exec.Command("notify-send", n.Title, n.Body).Run()
	case "darwin":
		script := fmt.Sprintf(`display notification "%s" with title "%s"`, escapeAppleScript(n.Body), escapeAppleScript(n.Title))
		return exec.Command("osascript", "-e", script).Run()
	default:
		return nil
	}
}

type SwitchModuleMsg struct {
	Module Module
}

type SetStatusMsg struct {
	Text    string
	IsError bool
}

type ClearStatusMsg struct{}

type AppErrorMsg struct {
	Err error
}

// EditTaskRequestMsg arrives through the edit bridge when another module
// asks to open a task in the editor.
type EditTaskRequestMsg struct {
	Task model.Task
}

type AgendaEventMsg struct {
	Event agenda.Event
}

type Model struct {
	CurrentModule Module
	Status        StatusBar
	Keys          GlobalKeyMap
	HelpVisible   bool
	Quitting      bool
	LastError     error
	Notifications []Notification

	Tasks        TasksState
	CalendarView CalendarScreenState
	Deals        DealsState
	Contacts     ContactsState
	Documents    DocumentsState
	Knowledge    KnowledgeState
	Palette      CommandPaletteState
	TaskForm     TaskFormState
	ActivityForm ActivityFormState

	store       store.Store
	cal         *calendar.Controller
	bridge      *bridge.Bridge
	agenda      *agenda.Engine
	cfg         config.RuntimeConfig
	loc         *time.Location
	now         func() time.Time
	currentUser model.User
	data        Snapshot

	editRequests chan model.Task
	notifier     DesktopNotifier

	// Bubble components used for rich TUI controls
	commandInput    textinput.Model
	dealsTable      table.Model
	contactsTable   table.Model
	documentsTable  table.Model
	articleViewport viewport.Model
	helpModel       help.Model
}

// Deps wires the model to the rest of the application. Store is required;
// everything else has a working default.
type Deps struct {
	Store    store.Store
	Bridge   *bridge.Bridge
	Agenda   *agenda.Engine
	Config   config.RuntimeConfig
	Location *time.Location
	Now      func() time.Time
	Notifier DesktopNotifier
}

func NewModel(deps Deps) Model {
	cfg := deps.Config
	if !cfg.CalendarMode.IsValid() {
		cfg = config.DefaultRuntimeConfig()
	}
	loc := deps.Location
	if loc == nil {
		loc = time.Local
	}
	now := deps.Now
	if now == nil {
		now = time.Now
	}

	ctrl := calendar.NewController(now().In(loc))
	ctrl.SetMode(cfg.CalendarMode)
	if len(cfg.WorkingDays) > 0 {
		ctrl.Working = cfg.WorkingDays.Clone()
	}

	m := Model{
		CurrentModule: ModuleTasks,
		Tasks: TasksState{
			ViewMode: TaskViewList,
			Expanded: make(tasks.ExpandedSet),
		},
		Keys: GlobalKeyMap{
			Tasks:     "1",
			Calendar:  "2",
			Deals:     "3",
			Contacts:  "4",
			Documents: "5",
			Knowledge: "6",
			Help:      "?",
			Quit:      "q",
		},
		store:        deps.Store,
		cal:          ctrl,
		bridge:       deps.Bridge,
		agenda:       deps.Agenda,
		cfg:          cfg,
		loc:          loc,
		now:          now,
		editRequests: make(chan model.Task, 4),
		notifier:     NoopDesktopNotifier{},
	}
	if deps.Notifier != nil {
		m.notifier = deps.Notifier
	}
	if m.bridge != nil {
		// The bridge dispatches on its own goroutine; the channel pump hands
		// the request back to the update loop.
		ch := m.editRequests
		m.bridge.RegisterEditEntry(func(t model.Task) {
			select {
			case ch <- t:
			default:
			}
		})
	}
	m.initBubbleComponents()
	m.reloadData()
	m.resolveCurrentUser()
	m.syncBubbleData()
	return m
}

func (m *Model) resolveCurrentUser() {
	for _, u := range m.data.Users {
		if u.ID == m.cfg.CurrentUserID {
			m.currentUser = u
			return
		}
	}
	if len(m.data.Users) > 0 {
		m.currentUser = m.data.Users[0]
	}
}

func (m *Model) reloadData() {
	if m.store == nil {
		return
	}
	ctx := context.Background()
	var err error
	if m.data.Tasks, err = m.store.ListTasks(ctx); err != nil {
		m.fail(err)
		return
	}
	if m.data.Activities, err = m.store.ListActivities(ctx); err != nil {
		m.fail(err)
		return
	}
	if m.data.Deals, err = m.store.ListDeals(ctx); err != nil {
		m.fail(err)
		return
	}
	if m.data.Companies, err = m.store.ListCompanies(ctx); err != nil {
		m.fail(err)
		return
	}
	if m.data.Contacts, err = m.store.ListContacts(ctx); err != nil {
		m.fail(err)
		return
	}
	if m.data.Documents, err = m.store.ListDocuments(ctx); err != nil {
		m.fail(err)
		return
	}
	if m.data.Articles, err = m.store.ListArticles(ctx); err != nil {
		m.fail(err)
		return
	}
	if m.data.Users, err = m.store.ListUsers(ctx); err != nil {
		m.fail(err)
		return
	}
	m.sortData()
}

// Screen ordering: biggest deals first, contacts and articles alphabetical,
// freshest documents first. Stores return insertion order.
func (m *Model) sortData() {
	m.data.Deals = listutil.SortByKey(m.data.Deals, func(d model.Deal) string {
		return fmt.Sprintf("%012d", d.Amount)
	}, true)
	m.data.Contacts = listutil.SortByKey(m.data.Contacts, func(c model.Contact) string {
		return c.Name
	}, false)
	m.data.Documents = listutil.SortByKey(m.data.Documents, func(d model.Document) string {
		return string(d.SignedOn)
	}, true)
	m.data.Articles = listutil.SortByKey(m.data.Articles, func(a model.Article) string {
		return a.Title
	}, false)
}

func (m *Model) fail(err error) {
	m.LastError = err
	m.Status = StatusBar{Text: err.Error(), IsError: true}
	m.notify("Error", err.Error(), "error")
}

func (m *Model) notify(title, body, level string) {
	if body == "" {
		return
	}
	n := Notification{Title: title, Body: body, Level: level, At: m.now().In(m.loc)}
	m.Notifications = append(m.Notifications, n)
	if len(m.Notifications) > 40 {
		m.Notifications = m.Notifications[len(m.Notifications)-40:]
	}
	if m.cfg.DesktopNotifications && m.notifier != nil {
		_ = m.notifier.Send(n)
	}
}
