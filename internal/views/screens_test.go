package views

import (
	"strings"
	"testing"
)

func TestRenderCalendarPanelMonthAlignment(t *testing.T) {
	// November 2023 starts on a Wednesday: two blank cells before day 1.
	data := CalendarPanelData{
		Mode:   "month",
		Title:  "November 2023",
		Header: []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"},
		Blanks: 2,
	}
	for d := 1; d <= 30; d++ {
		data.Cells = append(data.Cells, DayCellData{Day: d, Key: "2023-11"})
	}
	out := RenderCalendarPanel(data)

	lines := strings.Split(out, "\n")
	var headerLine, firstRow string
	for i, line := range lines {
		if strings.HasPrefix(line, "Mon") {
			headerLine = line
			firstRow = lines[i+1]
			break
		}
	}
	if headerLine == "" {
		t.Fatalf("no header line in output:\n%s", out)
	}
	// Day 1 must start at the same column as "Wed".
	wedCol := strings.Index(headerLine, "Wed")
	dayCol := strings.Index(firstRow, "1")
	if dayCol < wedCol || dayCol >= wedCol+cellWidth {
		t.Fatalf("day 1 at column %d, want within Wed cell starting at %d\n%s", dayCol, wedCol, out)
	}
}

func TestRenderCalendarPanelWeekHeaderMatchesCells(t *testing.T) {
	data := CalendarPanelData{
		Mode:   "week",
		Title:  "week of 2023-11-13",
		Header: []string{"Mon", "Tue", "Wed", "Thu", "Fri"},
		Cells: []DayCellData{
			{Day: 13}, {Day: 14}, {Day: 15, Selected: true}, {Day: 16}, {Day: 17},
		},
	}
	out := RenderCalendarPanel(data)
	if !strings.Contains(out, ">15") {
		t.Fatalf("expected selection marker on day 15:\n%s", out)
	}
	if strings.Contains(out, "Sat") || strings.Contains(out, "Sun") {
		t.Fatalf("weekend columns should not render:\n%s", out)
	}
}

func TestRenderCalendarPanelPopover(t *testing.T) {
	data := CalendarPanelData{
		Mode:   "month",
		Title:  "November 2023",
		Header: []string{"Mon"},
		Cells:  []DayCellData{{Day: 1}},
		Popover: &PopoverData{
			Date:       "2023-11-15",
			Tasks:      []string{"Prepare requisites"},
			Activities: []string{"Call Vektor"},
		},
	}
	out := RenderCalendarPanel(data)
	if !strings.Contains(out, "day 2023-11-15:") {
		t.Fatalf("expected popover heading:\n%s", out)
	}
	if !strings.Contains(out, "task: Prepare requisites") || !strings.Contains(out, "activity: Call Vektor") {
		t.Fatalf("expected popover entries:\n%s", out)
	}
}

func TestRenderTasksPanelDisclosure(t *testing.T) {
	out := RenderTasksPanel(TasksPanelData{
		Rows: []TaskRowData{
			{Title: "Contract", Status: "in_progress", Priority: "high", HasChildren: true, Expanded: true, Selected: true},
			{Title: "Requisites", Status: "todo", Priority: "medium", Depth: 1},
		},
	})
	if !strings.Contains(out, "> - Contract") {
		t.Fatalf("expected expanded root with cursor:\n%s", out)
	}
	if !strings.Contains(out, "    Requisites") {
		t.Fatalf("expected indented child row:\n%s", out)
	}
}

func TestRenderKanbanPanelNestedSubtasks(t *testing.T) {
	out := RenderKanbanPanel(KanbanPanelData{
		Columns: []KanbanColumnData{
			{Status: "todo", Cards: nil},
			{Status: "in_progress", Cards: []KanbanCardData{
				{Title: "Contract", Priority: "high", Subtasks: []string{"Requisites", "Legal check"}},
			}},
		},
	})
	if !strings.Contains(out, "in_progress (1)") {
		t.Fatalf("expected column count:\n%s", out)
	}
	if !strings.Contains(out, "    . Requisites") {
		t.Fatalf("expected nested subtask under parent card:\n%s", out)
	}
	if !strings.Contains(out, "todo (0)") || !strings.Contains(out, "(empty)") {
		t.Fatalf("expected empty column placeholder:\n%s", out)
	}
}

func TestRenderDetailPanels(t *testing.T) {
	deal := RenderDealDetail(DealDetailData{ID: "d-1", Title: "Pilot", Company: "Vektor", Amount: "250000", Stage: "negotiation"})
	for _, want := range []string{"id: d-1", "company: Vektor", "stage: negotiation"} {
		if !strings.Contains(deal, want) {
			t.Fatalf("deal detail missing %q:\n%s", want, deal)
		}
	}
	doc := RenderDocumentDetail(DocumentDetailData{ID: "doc-1", Kind: "invoice", Number: "INV-42"})
	if !strings.Contains(doc, "kind: invoice") || !strings.Contains(doc, "number: INV-42") {
		t.Fatalf("document detail incomplete:\n%s", doc)
	}
}

func TestRenderFormPanel(t *testing.T) {
	out := RenderFormPanel(FormPanelData{
		Title: "edit task",
		Fields: []FormFieldData{
			{Label: "title", Value: "Contract", Active: true},
			{Label: "due", Value: "2023-11-30"},
		},
		ErrorText: "datekey: invalid date key",
	})
	if !strings.Contains(out, "> title: Contract") {
		t.Fatalf("expected active field marker:\n%s", out)
	}
	if !strings.Contains(out, "  due: 2023-11-30") {
		t.Fatalf("expected inactive field:\n%s", out)
	}
	if !strings.Contains(out, "error: datekey: invalid date key") {
		t.Fatalf("expected error line:\n%s", out)
	}
}

func TestRenderMarkdownEmpty(t *testing.T) {
	if got := RenderMarkdown("   "); got != "" {
		t.Fatalf("expected empty render, got %q", got)
	}
}

func TestRenderAppFrame(t *testing.T) {
	out := RenderApp(AppData{
		Title:        "ec hub",
		User:         "Anna Petrova",
		Modules:      []string{"Tasks", "Calendar", "Deals"},
		ActiveModule: "Calendar",
		LeftPane:     "left content",
		RightPane:    "right content",
		Status:       "status: all good",
		Footer:       "keys: q quit",
		Notification: "Reminder: call Vektor",
	})
	for _, want := range []string{
		"ec hub", "Anna Petrova", "[Calendar]", "Tasks", "Deals",
		"left content", "right content", "status: all good",
		"Reminder: call Vektor", "keys: q quit",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("frame missing %q:\n%s", want, out)
		}
	}
	// Only the active module is bracketed.
	if strings.Contains(out, "[Tasks]") {
		t.Fatalf("inactive module rendered as active:\n%s", out)
	}
}
