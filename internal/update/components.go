package update

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"

	"echub/internal/views"
)

func (m *Model) initBubbleComponents() {
	m.dealsTable = table.New(
		table.WithColumns([]table.Column{
			{Title: "Title", Width: 20},
			{Title: "Company", Width: 14},
			{Title: "Amount", Width: 10},
			{Title: "Stage", Width: 12},
		}),
		table.WithRows([]table.Row{}),
		table.WithFocused(true),
		table.WithHeight(10),
	)

	m.contactsTable = table.New(
		table.WithColumns([]table.Column{
			{Title: "Name", Width: 18},
			{Title: "Company", Width: 14},
			{Title: "Position", Width: 14},
			{Title: "Phone", Width: 14},
		}),
		table.WithRows([]table.Row{}),
		table.WithFocused(true),
		table.WithHeight(10),
	)

	m.documentsTable = table.New(
		table.WithColumns([]table.Column{
			{Title: "Title", Width: 20},
			{Title: "Kind", Width: 9},
			{Title: "Number", Width: 10},
			{Title: "Signed", Width: 11},
			{Title: "Status", Width: 8},
		}),
		table.WithRows([]table.Row{}),
		table.WithFocused(true),
		table.WithHeight(10),
	)

	m.commandInput = textinput.New()
	m.commandInput.Prompt = "/"
	m.commandInput.CharLimit = 256
	m.commandInput.Width = 48

	m.articleViewport = viewport.New(52, 14)
	m.helpModel = help.New()
}

func (m *Model) syncBubbleData() {
	dealRows := make([]table.Row, 0, len(m.data.Deals))
	for _, d := range m.data.Deals {
		dealRows = append(dealRows, table.Row{
			d.Title,
			m.companyName(d.CompanyID),
			fmt.Sprintf("%d", d.Amount),
			string(d.Stage),
		})
	}
	m.dealsTable.SetRows(dealRows)
	if len(dealRows) > 0 && m.Deals.Cursor < len(dealRows) {
		m.dealsTable.SetCursor(m.Deals.Cursor)
	}

	contactRows := make([]table.Row, 0, len(m.data.Contacts))
	for _, c := range m.data.Contacts {
		contactRows = append(contactRows, table.Row{
			c.Name,
			m.companyName(c.CompanyID),
			c.Position,
			c.Phone,
		})
	}
	m.contactsTable.SetRows(contactRows)
	if len(contactRows) > 0 && m.Contacts.Cursor < len(contactRows) {
		m.contactsTable.SetCursor(m.Contacts.Cursor)
	}

	docRows := make([]table.Row, 0, len(m.data.Documents))
	for _, d := range m.data.Documents {
		docRows = append(docRows, table.Row{
			d.Title,
			string(d.Kind),
			d.Number,
			string(d.SignedOn),
			d.Status,
		})
	}
	m.documentsTable.SetRows(docRows)
	if len(docRows) > 0 && m.Documents.Cursor < len(docRows) {
		m.documentsTable.SetCursor(m.Documents.Cursor)
	}

	m.commandInput.SetValue(m.Palette.Input)
	if m.Palette.Active {
		m.commandInput.Focus()
	}

	if m.Knowledge.Reading {
		if a, ok := m.currentArticle(); ok {
			m.articleViewport.SetContent(views.RenderMarkdown(a.Body))
		}
	}
}

func (m Model) companyName(id string) string {
	for _, c := range m.data.Companies {
		if c.ID == id {
			return c.Name
		}
	}
	return id
}
