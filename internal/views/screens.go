package views

import (
	"fmt"
	"strings"
)

const cellWidth = 7

// DayCellData is one day slot of the calendar grid, already counted and
// flagged by the caller.
type DayCellData struct {
	Day           int
	Key           string
	TaskCount     int
	ActivityCount int
	Selected      bool
	Today         bool
}

type PopoverData struct {
	Date       string
	Tasks      []string
	Activities []string
}

type CalendarPanelData struct {
	Mode    string
	Title   string
	Header  []string
	Blanks  int
	Cells   []DayCellData
	Popover *PopoverData
}

// RenderCalendarPanel draws the month grid or the filtered week row. Month
// mode pads the first row with blank cells so day 1 lands under its weekday;
// week mode has no blanks because the header is filtered the same way as the
// cells.
func RenderCalendarPanel(data CalendarPanelData) string {
	var b strings.Builder
	b.WriteString("calendar:\n")
	b.WriteString(fmt.Sprintf("mode: %s | %s\n", data.Mode, data.Title))
	b.WriteString("actions: [m/w]mode [h/l]period [j/k]day [enter]day-popover [T]working-day\n\n")

	for _, name := range data.Header {
		b.WriteString(pad(name))
	}
	b.WriteString("\n")

	col := 0
	for i := 0; i < data.Blanks; i++ {
		b.WriteString(pad(""))
		col++
	}
	for _, cell := range data.Cells {
		b.WriteString(pad(formatDayCell(cell)))
		col++
		if col == len(data.Header) {
			b.WriteString("\n")
			col = 0
		}
	}
	if col != 0 {
		b.WriteString("\n")
	}

	if data.Popover != nil {
		b.WriteString("\n" + renderPopover(*data.Popover))
	}
	return strings.TrimRight(b.String(), "\n")
}

func formatDayCell(cell DayCellData) string {
	cursor := " "
	if cell.Selected {
		cursor = ">"
	}
	marker := ""
	if n := cell.TaskCount + cell.ActivityCount; n > 0 {
		marker = fmt.Sprintf(":%d", n)
	}
	if cell.Today {
		marker += "*"
	}
	return fmt.Sprintf("%s%2d%s", cursor, cell.Day, marker)
}

func renderPopover(p PopoverData) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("day %s:\n", p.Date))
	b.WriteString("actions: [t]add-task [a]log-activity [e]edit-task [esc]close\n")
	if len(p.Tasks) == 0 && len(p.Activities) == 0 {
		b.WriteString("(nothing planned)\n")
	}
	for _, t := range p.Tasks {
		b.WriteString("task: " + t + "\n")
	}
	for _, a := range p.Activities {
		b.WriteString("activity: " + a + "\n")
	}
	return b.String()
}

func pad(s string) string {
	if len(s) >= cellWidth {
		return s[:cellWidth]
	}
	return s + strings.Repeat(" ", cellWidth-len(s))
}

type TaskRowData struct {
	ID          string
	Title       string
	Status      string
	Priority    string
	Due         string
	Depth       int
	HasChildren bool
	Expanded    bool
	Selected    bool
}

type TasksPanelData struct {
	FilterSummary string
	Rows          []TaskRowData
}

func RenderTasksPanel(data TasksPanelData) string {
	var b strings.Builder
	b.WriteString("tasks:\n")
	b.WriteString("actions: [j/k]move [enter]expand [s]status [e]edit [n]new [x]delete [v]board\n")
	if data.FilterSummary != "" {
		b.WriteString("filter: " + data.FilterSummary + "\n")
	}
	if len(data.Rows) == 0 {
		b.WriteString("(no tasks match)")
		return b.String()
	}
	for _, row := range data.Rows {
		b.WriteString(formatTaskRow(row) + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func formatTaskRow(row TaskRowData) string {
	cursor := " "
	if row.Selected {
		cursor = ">"
	}
	disclosure := "  "
	if row.HasChildren {
		disclosure = "+ "
		if row.Expanded {
			disclosure = "- "
		}
	}
	indent := strings.Repeat("  ", row.Depth)
	line := fmt.Sprintf("%s %s%s%s [%s/%s]", cursor, indent, disclosure, row.Title, row.Status, row.Priority)
	if row.Due != "" {
		line += " due:" + row.Due
	}
	return line
}

type KanbanCardData struct {
	Title    string
	Priority string
	Selected bool
	Subtasks []string
}

type KanbanColumnData struct {
	Status string
	Cards  []KanbanCardData
}

type KanbanPanelData struct {
	FilterSummary string
	Columns       []KanbanColumnData
}

func RenderKanbanPanel(data KanbanPanelData) string {
	var b strings.Builder
	b.WriteString("board:\n")
	b.WriteString("actions: [j/k]move [s]status [e]edit [x]delete [v]list\n")
	if data.FilterSummary != "" {
		b.WriteString("filter: " + data.FilterSummary + "\n")
	}
	for _, col := range data.Columns {
		b.WriteString(fmt.Sprintf("\n%s (%d):\n", col.Status, len(col.Cards)))
		if len(col.Cards) == 0 {
			b.WriteString("  (empty)\n")
			continue
		}
		for _, card := range col.Cards {
			cursor := " "
			if card.Selected {
				cursor = ">"
			}
			b.WriteString(fmt.Sprintf("%s [%s] %s\n", cursor, card.Priority, card.Title))
			for _, sub := range card.Subtasks {
				b.WriteString("    . " + sub + "\n")
			}
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

type DealDetailData struct {
	ID      string
	Title   string
	Company string
	Contact string
	Amount  string
	Stage   string
	Owner   string
}

type DealsPanelData struct {
	TableView string
	Selected  *DealDetailData
}

func RenderDealsPanel(data DealsPanelData) string {
	var b strings.Builder
	b.WriteString("deals:\n")
	b.WriteString("actions: [j/k]move [a]log-activity [t]follow-up-task\n")
	b.WriteString(data.TableView)
	return strings.TrimRight(b.String(), "\n")
}

// RenderDealDetail lists the deal's fields one per line. Each entity kind has
// its own detail renderer with the fields spelled out.
func RenderDealDetail(d DealDetailData) string {
	return strings.Join([]string{
		"deal:",
		"id: " + d.ID,
		"title: " + d.Title,
		"company: " + d.Company,
		"contact: " + d.Contact,
		"amount: " + d.Amount,
		"stage: " + d.Stage,
		"owner: " + d.Owner,
	}, "\n")
}

type ContactDetailData struct {
	ID       string
	Name     string
	Company  string
	Position string
	Phone    string
	Email    string
}

type ContactsPanelData struct {
	TableView string
	Selected  *ContactDetailData
}

func RenderContactsPanel(data ContactsPanelData) string {
	var b strings.Builder
	b.WriteString("contacts:\n")
	b.WriteString("actions: [j/k]move [a]log-activity\n")
	b.WriteString(data.TableView)
	return strings.TrimRight(b.String(), "\n")
}

func RenderContactDetail(c ContactDetailData) string {
	return strings.Join([]string{
		"contact:",
		"id: " + c.ID,
		"name: " + c.Name,
		"company: " + c.Company,
		"position: " + c.Position,
		"phone: " + c.Phone,
		"email: " + c.Email,
	}, "\n")
}

type DocumentDetailData struct {
	ID       string
	Title    string
	Kind     string
	Number   string
	SignedOn string
	Status   string
}

type DocumentsPanelData struct {
	TableView string
	Selected  *DocumentDetailData
}

func RenderDocumentsPanel(data DocumentsPanelData) string {
	var b strings.Builder
	b.WriteString("documents:\n")
	b.WriteString("actions: [j/k]move\n")
	b.WriteString(data.TableView)
	return strings.TrimRight(b.String(), "\n")
}

func RenderDocumentDetail(d DocumentDetailData) string {
	return strings.Join([]string{
		"document:",
		"id: " + d.ID,
		"title: " + d.Title,
		"kind: " + d.Kind,
		"number: " + d.Number,
		"signed: " + d.SignedOn,
		"status: " + d.Status,
	}, "\n")
}

type ArticleRowData struct {
	Title    string
	Category string
	Selected bool
}

type KnowledgePanelData struct {
	Rows    []ArticleRowData
	Reading bool
	// BodyView is the scrollable rendered markdown, shown while reading.
	BodyView string
}

func RenderKnowledgePanel(data KnowledgePanelData) string {
	var b strings.Builder
	b.WriteString("knowledge:\n")
	if data.Reading {
		b.WriteString("actions: [j/k]scroll [esc]back\n")
		b.WriteString(data.BodyView)
		return strings.TrimRight(b.String(), "\n")
	}
	b.WriteString("actions: [j/k]move [enter]read\n")
	if len(data.Rows) == 0 {
		b.WriteString("(no articles)")
		return b.String()
	}
	for _, row := range data.Rows {
		cursor := " "
		if row.Selected {
			cursor = ">"
		}
		b.WriteString(fmt.Sprintf("%s [%s] %s\n", cursor, row.Category, row.Title))
	}
	return strings.TrimRight(b.String(), "\n")
}

type FormFieldData struct {
	Label  string
	Value  string
	Active bool
}

type FormPanelData struct {
	Title     string
	Fields    []FormFieldData
	ErrorText string
}

func RenderFormPanel(data FormPanelData) string {
	var b strings.Builder
	b.WriteString(data.Title + ":\n")
	b.WriteString("keys: [tab]next-field [enter]save [esc]cancel\n")
	for _, f := range data.Fields {
		cursor := " "
		if f.Active {
			cursor = ">"
		}
		b.WriteString(fmt.Sprintf("%s %s: %s\n", cursor, f.Label, f.Value))
	}
	if data.ErrorText != "" {
		b.WriteString("error: " + data.ErrorText)
	}
	return strings.TrimRight(b.String(), "\n")
}

func RenderCommandPalette(active bool, input string) string {
	if !active {
		return ""
	}
	return fmt.Sprintf("command: /%s", input)
}

type HelpPanelData struct {
	CurrentModule string
	Bindings      []string
	HelpView      string
}

func RenderHelpPanel(data HelpPanelData) string {
	return fmt.Sprintf("help:\nglobal:\n%s module:\n%s\n%s",
		strings.ToLower(data.CurrentModule),
		strings.Join(data.Bindings, "\n"),
		data.HelpView,
	)
}

func RenderNotification(level string, body string) string {
	if strings.TrimSpace(body) == "" {
		return ""
	}
	return fmt.Sprintf("notification: [%s] %s", strings.ToUpper(level), body)
}
