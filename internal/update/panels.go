package update

import (
	"fmt"
	"time"

	"echub/internal/calendar"
	"echub/internal/datekey"
	"echub/internal/tasks"
	"echub/internal/views"
)

func (m Model) renderTasksView() string {
	if m.Tasks.ViewMode == TaskViewKanban {
		return m.renderKanbanView()
	}
	rows := m.taskRows()
	data := views.TasksPanelData{FilterSummary: m.filterSummary()}
	for i, row := range rows {
		data.Rows = append(data.Rows, views.TaskRowData{
			ID:          row.Task.ID,
			Title:       row.Task.Title,
			Status:      string(row.Task.Status),
			Priority:    string(row.Task.Priority),
			Due:         string(row.Task.DueDate),
			Depth:       row.Depth,
			HasChildren: row.HasChildren,
			Expanded:    row.Expanded,
			Selected:    i == m.Tasks.Cursor,
		})
	}
	return views.RenderTasksPanel(data)
}

func (m Model) renderKanbanView() string {
	selectedID := ""
	if row, ok := m.currentTaskRow(); ok {
		selectedID = row.Task.ID
	}
	board := tasks.Board(m.data.Tasks, m.Tasks.Filter, m.Tasks.Expanded, m.cfg.SplitSubtasks)
	data := views.KanbanPanelData{FilterSummary: m.filterSummary()}
	for _, col := range board {
		out := views.KanbanColumnData{Status: string(col.Status)}
		for _, node := range col.Nodes {
			card := views.KanbanCardData{
				Title:    node.Task.Title,
				Priority: string(node.Task.Priority),
				Selected: node.Task.ID == selectedID,
			}
			for _, sub := range node.Children {
				card.Subtasks = append(card.Subtasks, sub.Title)
			}
			out.Cards = append(out.Cards, card)
		}
		data.Columns = append(data.Columns, out)
	}
	return views.RenderKanbanPanel(data)
}

func (m Model) renderTaskDetailPane() string {
	row, ok := m.currentTaskRow()
	if !ok {
		return "task:\n(no selection)"
	}
	t := row.Task
	detail := fmt.Sprintf("task:\nid: %s\ntitle: %s\nstatus: %s\npriority: %s\nassignee: %s\nproject: %s\ndue: %s",
		t.ID, t.Title, t.Status, t.Priority, m.userName(t.AssigneeID), t.Project, t.DueDate)
	if t.Description != "" {
		detail += "\n\n" + t.Description
	}
	return detail
}

func (m Model) renderCalendarView() string {
	today := datekey.FromTime(m.now().In(m.loc))
	taskBuckets := calendar.BucketTasks(m.data.Tasks)
	activityBuckets := calendar.BucketActivities(m.data.Activities)

	data := views.CalendarPanelData{
		Mode:  string(m.cal.Mode),
		Title: m.calendarTitle(),
	}
	if m.cal.Mode == calendar.ModeWeek {
		for _, day := range calendar.WeekHeader(m.cal.Working) {
			data.Header = append(data.Header, weekdayAbbrev(day))
		}
	} else {
		grid := calendar.BuildMonthGrid(m.cal.Reference)
		data.Blanks = grid.Blanks
		for _, day := range []time.Weekday{
			time.Monday, time.Tuesday, time.Wednesday, time.Thursday,
			time.Friday, time.Saturday, time.Sunday,
		} {
			data.Header = append(data.Header, weekdayAbbrev(day))
		}
	}
	for i, cell := range m.cal.Grid() {
		data.Cells = append(data.Cells, views.DayCellData{
			Day:           cell.Date.Day(),
			Key:           string(cell.Key),
			TaskCount:     len(taskBuckets[cell.Key]),
			ActivityCount: len(activityBuckets[cell.Key]),
			Selected:      i == m.CalendarView.Cursor,
			Today:         cell.Key == today,
		})
	}

	if key := m.cal.OpenPopover; key != "" {
		popover := &views.PopoverData{Date: string(key)}
		for _, t := range m.popoverTasks(key) {
			popover.Tasks = append(popover.Tasks, fmt.Sprintf("%s [%s]", t.Title, t.Status))
		}
		for _, a := range m.popoverActivities(key) {
			popover.Activities = append(popover.Activities, fmt.Sprintf("%s (%s, %s)", a.Subject, a.Type, a.Status))
		}
		data.Popover = popover
	}
	return views.RenderCalendarPanel(data)
}

func weekdayAbbrev(d time.Weekday) string {
	return d.String()[:3]
}

func (m Model) renderDealsView() string {
	return views.RenderDealsPanel(views.DealsPanelData{TableView: m.dealsTable.View()})
}

func (m Model) renderDealDetailPane() string {
	deal, ok := m.currentDeal()
	if !ok {
		return "deal:\n(no selection)"
	}
	return views.RenderDealDetail(views.DealDetailData{
		ID:      deal.ID,
		Title:   deal.Title,
		Company: m.companyName(deal.CompanyID),
		Contact: m.contactName(deal.ContactID),
		Amount:  fmt.Sprintf("%d", deal.Amount),
		Stage:   string(deal.Stage),
		Owner:   m.userName(deal.OwnerID),
	})
}

func (m Model) renderContactsView() string {
	return views.RenderContactsPanel(views.ContactsPanelData{TableView: m.contactsTable.View()})
}

func (m Model) renderContactDetailPane() string {
	c, ok := m.currentContact()
	if !ok {
		return "contact:\n(no selection)"
	}
	return views.RenderContactDetail(views.ContactDetailData{
		ID:       c.ID,
		Name:     c.Name,
		Company:  m.companyName(c.CompanyID),
		Position: c.Position,
		Phone:    c.Phone,
		Email:    c.Email,
	})
}

func (m Model) renderDocumentsView() string {
	return views.RenderDocumentsPanel(views.DocumentsPanelData{TableView: m.documentsTable.View()})
}

func (m Model) renderDocumentDetailPane() string {
	d, ok := m.currentDocument()
	if !ok {
		return "document:\n(no selection)"
	}
	return views.RenderDocumentDetail(views.DocumentDetailData{
		ID:       d.ID,
		Title:    d.Title,
		Kind:     string(d.Kind),
		Number:   d.Number,
		SignedOn: string(d.SignedOn),
		Status:   d.Status,
	})
}

func (m Model) renderKnowledgeView() string {
	data := views.KnowledgePanelData{Reading: m.Knowledge.Reading}
	if m.Knowledge.Reading {
		data.BodyView = m.articleViewport.View()
		return views.RenderKnowledgePanel(data)
	}
	for i, a := range m.data.Articles {
		data.Rows = append(data.Rows, views.ArticleRowData{
			Title:    a.Title,
			Category: a.Category,
			Selected: i == m.Knowledge.Cursor,
		})
	}
	return views.RenderKnowledgePanel(data)
}

func (m Model) renderFormsIfActive() string {
	if m.TaskForm.Active {
		title := "edit task"
		if m.TaskForm.Creating {
			title = "new task"
		}
		return "\n" + views.RenderFormPanel(views.FormPanelData{
			Title: title,
			Fields: []views.FormFieldData{
				{Label: "title", Value: m.TaskForm.Draft.Title, Active: m.TaskForm.Field == taskFieldTitle},
				{Label: "due", Value: m.TaskForm.DueText, Active: m.TaskForm.Field == taskFieldDue},
				{Label: "project", Value: m.TaskForm.Draft.Project, Active: m.TaskForm.Field == taskFieldProject},
				{Label: "priority (ctrl+p)", Value: string(m.TaskForm.Draft.Priority)},
			},
			ErrorText: m.TaskForm.Err,
		})
	}
	if m.ActivityForm.Active {
		return "\n" + views.RenderFormPanel(views.FormPanelData{
			Title: "log activity",
			Fields: []views.FormFieldData{
				{Label: "subject", Value: m.ActivityForm.Draft.Subject, Active: m.ActivityForm.Field == activityFieldSubject},
				{Label: "date", Value: m.ActivityForm.DateText, Active: m.ActivityForm.Field == activityFieldDate},
				{Label: "type (ctrl+t)", Value: string(m.ActivityForm.Draft.Type)},
			},
			ErrorText: m.ActivityForm.Err,
		})
	}
	return ""
}

func (m Model) renderCommandPalette() string {
	return views.RenderCommandPalette(m.Palette.Active, m.Palette.Input)
}

func (m Model) userName(id string) string {
	for _, u := range m.data.Users {
		if u.ID == id {
			return u.Name
		}
	}
	return id
}

func (m Model) contactName(id string) string {
	for _, c := range m.data.Contacts {
		if c.ID == id {
			return c.Name
		}
	}
	return id
}
