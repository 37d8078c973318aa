package update

import (
	tea "github.com/charmbracelet/bubbletea"

	"echub/internal/model"
)

func (m Model) handleDocumentsKey(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "down", "j":
		if m.Documents.Cursor < len(m.data.Documents)-1 {
			m.Documents.Cursor++
		}
	case "up", "k":
		if m.Documents.Cursor > 0 {
			m.Documents.Cursor--
		}
	}
	return m
}

func (m Model) currentDocument() (model.Document, bool) {
	if len(m.data.Documents) == 0 || m.Documents.Cursor < 0 || m.Documents.Cursor >= len(m.data.Documents) {
		return model.Document{}, false
	}
	return m.data.Documents[m.Documents.Cursor], true
}

func (m Model) handleKnowledgeKey(msg tea.KeyMsg) Model {
	if m.Knowledge.Reading {
		switch msg.String() {
		case "esc":
			m.Knowledge.Reading = false
		default:
			var cmd tea.Cmd
			m.articleViewport, cmd = m.articleViewport.Update(msg)
			_ = cmd
		}
		return m
	}

	switch msg.String() {
	case "down", "j":
		if m.Knowledge.Cursor < len(m.data.Articles)-1 {
			m.Knowledge.Cursor++
		}
	case "up", "k":
		if m.Knowledge.Cursor > 0 {
			m.Knowledge.Cursor--
		}
	case "enter":
		if a, ok := m.currentArticle(); ok {
			m.Knowledge.Reading = true
			m.articleViewport.GotoTop()
			m.Status = StatusBar{Text: "reading: " + a.Title, IsError: false}
		}
	}
	return m
}

func (m Model) currentArticle() (model.Article, bool) {
	if len(m.data.Articles) == 0 || m.Knowledge.Cursor < 0 || m.Knowledge.Cursor >= len(m.data.Articles) {
		return model.Article{}, false
	}
	return m.data.Articles[m.Knowledge.Cursor], true
}
