package update

import (
	tea "github.com/charmbracelet/bubbletea"

	"echub/internal/datekey"
	"echub/internal/model"
)

func (m Model) handleDealsKey(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "down", "j":
		if m.Deals.Cursor < len(m.data.Deals)-1 {
			m.Deals.Cursor++
		}
	case "up", "k":
		if m.Deals.Cursor > 0 {
			m.Deals.Cursor--
		}
	case "a":
		if deal, ok := m.currentDeal(); ok {
			m.openActivityForm(model.Activity{
				Type:            model.ActivityCall,
				Date:            datekey.FromTime(m.now().In(m.loc)),
				Status:          model.ActivityPlanned,
				RelatedEntityID: deal.ID,
			})
		}
	case "t":
		if deal, ok := m.currentDeal(); ok {
			m.openTaskForm(model.Task{
				DueDate:    datekey.FromTime(m.now().In(m.loc)),
				Status:     model.StatusTodo,
				Priority:   model.PriorityMedium,
				Project:    deal.Title,
				AssigneeID: m.currentUser.ID,
			}, true)
		}
	}
	return m
}

func (m Model) currentDeal() (model.Deal, bool) {
	if len(m.data.Deals) == 0 || m.Deals.Cursor < 0 || m.Deals.Cursor >= len(m.data.Deals) {
		return model.Deal{}, false
	}
	return m.data.Deals[m.Deals.Cursor], true
}

func (m Model) handleContactsKey(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "down", "j":
		if m.Contacts.Cursor < len(m.data.Contacts)-1 {
			m.Contacts.Cursor++
		}
	case "up", "k":
		if m.Contacts.Cursor > 0 {
			m.Contacts.Cursor--
		}
	case "a":
		if contact, ok := m.currentContact(); ok {
			m.openActivityForm(model.Activity{
				Type:            model.ActivityCall,
				Date:            datekey.FromTime(m.now().In(m.loc)),
				Status:          model.ActivityPlanned,
				RelatedEntityID: contact.ID,
			})
		}
	}
	return m
}

func (m Model) currentContact() (model.Contact, bool) {
	if len(m.data.Contacts) == 0 || m.Contacts.Cursor < 0 || m.Contacts.Cursor >= len(m.data.Contacts) {
		return model.Contact{}, false
	}
	return m.data.Contacts[m.Contacts.Cursor], true
}
