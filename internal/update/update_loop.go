package update

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"echub/internal/agenda"
	"echub/internal/model"
	"echub/internal/views"
)

func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{waitForEditRequestCmd(m.editRequests)}
	if m.agenda != nil {
		cmds = append(cmds, waitForAgendaEventCmd(m.agenda.C()))
	}
	return tea.Batch(cmds...)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.update(msg)
	next.syncBubbleData()
	return next, cmd
}

func (m Model) update(msg tea.Msg) (Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.KeyMsg:
		// The palette owns every key while open so queries can contain
		// characters that double as shortcuts, "?" included.
		if m.Palette.Active {
			return m.handlePaletteKey(typed), nil
		}
		if m.TaskForm.Active {
			return m.handleTaskFormKey(typed), nil
		}
		if m.ActivityForm.Active {
			return m.handleActivityFormKey(typed), nil
		}

		switch typed.String() {
		case "/":
			m.Palette.Active = true
			m.Palette.Input = ""
			m.commandInput.SetValue("")
			m.commandInput.Focus()
			m.Status = StatusBar{Text: "command palette active", IsError: false}
			return m, nil
		case m.Keys.Tasks:
			m.CurrentModule = ModuleTasks
			return m, nil
		case m.Keys.Calendar:
			m.CurrentModule = ModuleCalendar
			return m, nil
		case m.Keys.Deals:
			m.CurrentModule = ModuleDeals
			return m, nil
		case m.Keys.Contacts:
			m.CurrentModule = ModuleContacts
			return m, nil
		case m.Keys.Documents:
			m.CurrentModule = ModuleDocuments
			return m, nil
		case m.Keys.Knowledge:
			m.CurrentModule = ModuleKnowledge
			return m, nil
		case m.Keys.Help:
			m.HelpVisible = !m.HelpVisible
			return m, nil
		case "ctrl+c", m.Keys.Quit:
			m.Quitting = true
			return m, tea.Quit
		}

		switch m.CurrentModule {
		case ModuleTasks:
			return m.handleTasksKey(typed), nil
		case ModuleCalendar:
			return m.handleCalendarKey(typed), nil
		case ModuleDeals:
			return m.handleDealsKey(typed), nil
		case ModuleContacts:
			return m.handleContactsKey(typed), nil
		case ModuleDocuments:
			return m.handleDocumentsKey(typed), nil
		case ModuleKnowledge:
			return m.handleKnowledgeKey(typed), nil
		}
	case SwitchModuleMsg:
		if isKnownModule(typed.Module) {
			m.CurrentModule = typed.Module
		}
		return m, nil
	case SetStatusMsg:
		m.Status = StatusBar{Text: typed.Text, IsError: typed.IsError}
		return m, nil
	case ClearStatusMsg:
		m.Status = StatusBar{}
		return m, nil
	case AppErrorMsg:
		if typed.Err != nil {
			m.fail(typed.Err)
		}
		return m, nil
	case EditTaskRequestMsg:
		m.CurrentModule = ModuleTasks
		m.openTaskForm(typed.Task, false)
		m.Status = StatusBar{Text: fmt.Sprintf("editing task: %s", typed.Task.Title), IsError: false}
		return m, waitForEditRequestCmd(m.editRequests)
	case AgendaEventMsg:
		m.Status = StatusBar{Text: fmt.Sprintf("reminder: %s", typed.Event.Subject), IsError: false}
		m.notify("Reminder", typed.Event.Subject, "info")
		if m.agenda != nil {
			return m, waitForAgendaEventCmd(m.agenda.C())
		}
		return m, nil
	}

	return m, nil
}

func (m Model) View() string {
	status := ""
	if m.Status.Text != "" {
		status = fmt.Sprintf("status: %s", m.Status.Text)
		if m.Status.IsError {
			status = fmt.Sprintf("status: error: %s", m.Status.Text)
		}
	}

	leftPane := ""
	rightPane := ""
	switch m.CurrentModule {
	case ModuleTasks:
		leftPane = m.renderTasksView()
		rightPane = m.renderTaskDetailPane() + m.renderFormsIfActive() + m.renderHelpIfVisible()
	case ModuleCalendar:
		leftPane = m.renderCalendarView()
		rightPane = m.renderFormsIfActive() + m.renderHelpIfVisible()
	case ModuleDeals:
		leftPane = m.renderDealsView()
		rightPane = m.renderDealDetailPane() + m.renderFormsIfActive() + m.renderHelpIfVisible()
	case ModuleContacts:
		leftPane = m.renderContactsView()
		rightPane = m.renderContactDetailPane() + m.renderFormsIfActive() + m.renderHelpIfVisible()
	case ModuleDocuments:
		leftPane = m.renderDocumentsView()
		rightPane = m.renderDocumentDetailPane() + m.renderHelpIfVisible()
	case ModuleKnowledge:
		leftPane = m.renderKnowledgeView()
		rightPane = m.renderHelpIfVisible()
	}
	if m.Palette.Active {
		rightPane = m.renderCommandPalette() + "\n" + rightPane
	}

	notification := ""
	if len(m.Notifications) > 0 {
		last := m.Notifications[len(m.Notifications)-1]
		notification = views.RenderNotification(last.Level, last.Body)
	}

	return views.RenderApp(views.AppData{
		Title:        "ec hub",
		User:         m.currentUser.Name,
		Modules:      moduleNames(),
		ActiveModule: string(m.CurrentModule),
		LeftPane:     leftPane,
		RightPane:    rightPane,
		Status:       status,
		StatusError:  m.Status.IsError,
		Notification: notification,
		Footer: fmt.Sprintf("keys: %s tasks | %s cal | %s deals | %s contacts | %s docs | %s kb | / cmd | %s help | %s quit",
			m.Keys.Tasks, m.Keys.Calendar, m.Keys.Deals, m.Keys.Contacts, m.Keys.Documents, m.Keys.Knowledge, m.Keys.Help, m.Keys.Quit),
	})
}

func moduleNames() []string {
	return []string{
		string(ModuleTasks), string(ModuleCalendar), string(ModuleDeals),
		string(ModuleContacts), string(ModuleDocuments), string(ModuleKnowledge),
	}
}

func isKnownModule(mod Module) bool {
	switch mod {
	case ModuleTasks, ModuleCalendar, ModuleDeals, ModuleContacts, ModuleDocuments, ModuleKnowledge:
		return true
	default:
		return false
	}
}

func waitForEditRequestCmd(ch <-chan model.Task) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		t, ok := <-ch
		if !ok {
			return nil
		}
		return EditTaskRequestMsg{Task: t}
	}
}

func waitForAgendaEventCmd(ch <-chan agenda.Event) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		ev, ok := <-ch
		if !ok {
			return nil
		}
		return AgendaEventMsg{Event: ev}
	}
}
