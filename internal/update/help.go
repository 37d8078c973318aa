package update

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"

	"echub/internal/views"
)

type KeyBinding struct {
	Key    string
	Action string
}

type helpKeyMap struct {
	short []key.Binding
	full  [][]key.Binding
}

func (k helpKeyMap) ShortHelp() []key.Binding  { return k.short }
func (k helpKeyMap) FullHelp() [][]key.Binding { return k.full }

func (m Model) renderHelpIfVisible() string {
	if !m.HelpVisible {
		return ""
	}
	return "\n" + m.renderHelpView()
}

func (m Model) renderHelpView() string {
	bindings := m.helpBindings()
	var plain []string
	for _, kb := range m.moduleBindings() {
		plain = append(plain, fmt.Sprintf("- %s: %s", kb.Key, kb.Action))
	}
	return views.RenderHelpPanel(views.HelpPanelData{
		CurrentModule: string(m.CurrentModule),
		Bindings:      plain,
		HelpView: m.helpModel.View(helpKeyMap{
			short: bindings,
			full:  [][]key.Binding{bindings},
		}),
	})
}

func (m Model) globalBindings() []KeyBinding {
	return []KeyBinding{
		{Key: m.Keys.Tasks, Action: "switch to Tasks"},
		{Key: m.Keys.Calendar, Action: "switch to Calendar"},
		{Key: m.Keys.Deals, Action: "switch to Deals"},
		{Key: m.Keys.Contacts, Action: "switch to Contacts"},
		{Key: m.Keys.Documents, Action: "switch to Documents"},
		{Key: m.Keys.Knowledge, Action: "switch to Knowledge"},
		{Key: "/", Action: "open command palette"},
		{Key: m.Keys.Help, Action: "toggle help panel"},
		{Key: m.Keys.Quit, Action: "quit app"},
	}
}

func (m Model) moduleBindings() []KeyBinding {
	switch m.CurrentModule {
	case ModuleTasks:
		return []KeyBinding{
			{Key: "j/k", Action: "move selection"},
			{Key: "enter", Action: "expand/collapse subtasks"},
			{Key: "s", Action: "cycle task status"},
			{Key: "e/n", Action: "edit / new task"},
			{Key: "x", Action: "delete task"},
			{Key: "v", Action: "toggle list/board"},
			{Key: "m", Action: "toggle my tasks"},
			{Key: "c", Action: "clear filter"},
		}
	case ModuleCalendar:
		return []KeyBinding{
			{Key: "m/w", Action: "month/week mode"},
			{Key: "h/l", Action: "previous/next period"},
			{Key: "j/k", Action: "move day cursor"},
			{Key: "enter", Action: "open day popover"},
			{Key: "T", Action: "toggle working day"},
			{Key: "g", Action: "jump to today"},
		}
	case ModuleDeals:
		return []KeyBinding{
			{Key: "j/k", Action: "move selection"},
			{Key: "a", Action: "log activity for deal"},
			{Key: "t", Action: "create follow-up task"},
		}
	case ModuleContacts:
		return []KeyBinding{
			{Key: "j/k", Action: "move selection"},
			{Key: "a", Action: "log activity for contact"},
		}
	case ModuleDocuments:
		return []KeyBinding{
			{Key: "j/k", Action: "move selection"},
		}
	case ModuleKnowledge:
		return []KeyBinding{
			{Key: "j/k", Action: "move / scroll"},
			{Key: "enter", Action: "read article"},
			{Key: "esc", Action: "back to list"},
		}
	default:
		return []KeyBinding{{Key: "-", Action: "no contextual bindings"}}
	}
}

func (m Model) helpBindings() []key.Binding {
	out := make([]key.Binding, 0, len(m.globalBindings())+len(m.moduleBindings()))
	for _, kb := range m.globalBindings() {
		out = append(out, key.NewBinding(key.WithKeys(kb.Key), key.WithHelp(kb.Key, kb.Action)))
	}
	for _, kb := range m.moduleBindings() {
		out = append(out, key.NewBinding(key.WithKeys(kb.Key), key.WithHelp(kb.Key, kb.Action)))
	}
	return out
}
