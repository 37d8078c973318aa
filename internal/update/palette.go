package update

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"echub/internal/commands"
	"echub/internal/datekey"
	"echub/internal/model"
	"echub/internal/tasks"
)

func (m Model) handlePaletteKey(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "esc":
		m.Palette.Active = false
		m.Palette.Input = ""
		m.commandInput.SetValue("")
		m.commandInput.Blur()
		m.Status = StatusBar{Text: "command palette closed", IsError: false}
	case "enter":
		m.Palette.Input = m.commandInput.Value()
		m = m.executePaletteCommand()
	default:
		if msg.Type == tea.KeyRunes {
			m.commandInput.SetValue(m.commandInput.Value() + string(msg.Runes))
			m.Palette.Input = m.commandInput.Value()
			return m
		}
		var cmd tea.Cmd
		m.commandInput, cmd = m.commandInput.Update(msg)
		_ = cmd
		m.Palette.Input = m.commandInput.Value()
	}
	return m
}

func (m Model) executePaletteCommand() Model {
	raw := strings.TrimSpace(m.Palette.Input)
	cmd, err := commands.Parse(raw)
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		m.Palette.Active = false
		m.Palette.Input = ""
		return m
	}

	res, err := commands.Execute(cmd, commands.Handlers{
		Goto: func(a commands.GotoArgs) (commands.Result, error) {
			mod, ok := moduleByName(a.Module)
			if !ok {
				return commands.Result{}, &commands.CommandError{
					Code:    commands.ErrCodeInvalidArgument,
					Message: fmt.Sprintf("unknown module: %s", a.Module),
				}
			}
			m.CurrentModule = mod
			return commands.Result{Message: fmt.Sprintf("switched to %s", mod)}, nil
		},
		Add: func(a commands.AddArgs) (commands.Result, error) {
			m.CurrentModule = ModuleTasks
			m.openTaskForm(model.Task{
				Title:      a.Title,
				DueDate:    datekey.FromTime(m.now().In(m.loc)),
				Status:     model.StatusTodo,
				Priority:   model.PriorityMedium,
				AssigneeID: m.currentUser.ID,
			}, true)
			return commands.Result{Message: fmt.Sprintf("drafting task: %s", a.Title)}, nil
		},
		Find: func(a commands.FindArgs) (commands.Result, error) {
			m.CurrentModule = ModuleTasks
			m.Tasks.Filter.Query = a.Query
			m.Tasks.Cursor = 0
			return commands.Result{Message: fmt.Sprintf("filter query: %s", a.Query)}, nil
		},
		Project: func(a commands.ProjectArgs) (commands.Result, error) {
			m.CurrentModule = ModuleTasks
			m.Tasks.Cursor = 0
			if a.Name == "" {
				m.Tasks.Filter = tasks.Filter{Query: m.Tasks.Filter.Query, AssigneeID: m.Tasks.Filter.AssigneeID}
				return commands.Result{Message: "project filter cleared"}, nil
			}
			m.Tasks.Filter.Project = a.Name
			return commands.Result{Message: fmt.Sprintf("project filter: %s", a.Name)}, nil
		},
	})
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		m.notify("Command Failed", err.Error(), "error")
	} else {
		m.Status = StatusBar{Text: res.Message, IsError: false}
		m.notify("Command", res.Message, "info")
	}

	m.Palette.Active = false
	m.Palette.Input = ""
	m.commandInput.SetValue("")
	return m
}

func moduleByName(name string) (Module, bool) {
	switch strings.ToLower(name) {
	case "tasks":
		return ModuleTasks, true
	case "calendar":
		return ModuleCalendar, true
	case "deals", "crm":
		return ModuleDeals, true
	case "contacts":
		return ModuleContacts, true
	case "documents", "docs":
		return ModuleDocuments, true
	case "knowledge", "kb":
		return ModuleKnowledge, true
	default:
		return "", false
	}
}
