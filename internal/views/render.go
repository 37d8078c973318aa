package views

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

// AppData is the full frame: title bar, module tab strip, the two content
// panes, and the status/notification/footer lines under them.
type AppData struct {
	Title        string
	User         string
	Modules      []string
	ActiveModule string
	LeftPane     string
	RightPane    string
	Status       string
	StatusError  bool
	Footer       string
	Notification string
}

var (
	titleStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("0")).Background(lipgloss.Color("12")).Padding(0, 1)
	userStyle      = lipgloss.NewStyle().Faint(true).PaddingLeft(1)
	tabStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Padding(0, 1)
	activeTabStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")).Padding(0, 1).Underline(true)
	mainPaneStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("12")).Padding(0, 1).Width(62)
	sidePaneStyle  = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("8")).Padding(0, 1).Width(54)
	okStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	errStyle       = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	noteStyle      = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), true, false).Faint(true)
	footerStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

func RenderApp(data AppData) string {
	header := titleStyle.Render(data.Title)
	if data.User != "" {
		header = lipgloss.JoinHorizontal(lipgloss.Center, header, userStyle.Render(data.User))
	}

	tabs := make([]string, 0, len(data.Modules))
	for _, mod := range data.Modules {
		if mod == data.ActiveModule {
			tabs = append(tabs, activeTabStyle.Render("["+mod+"]"))
			continue
		}
		tabs = append(tabs, tabStyle.Render(mod))
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		mainPaneStyle.Render(data.LeftPane),
		sidePaneStyle.Render(data.RightPane),
	)

	status := okStyle.Render(data.Status)
	if data.StatusError {
		status = errStyle.Render(data.Status)
	}

	lines := []string{
		header,
		lipgloss.JoinHorizontal(lipgloss.Center, tabs...),
		body,
		status,
	}
	if data.Notification != "" {
		lines = append(lines, noteStyle.Render(data.Notification))
	}
	if data.Footer != "" {
		lines = append(lines, footerStyle.Render(data.Footer))
	}
	return strings.Join(lines, "\n")
}

func RenderMarkdown(md string) string {
	if strings.TrimSpace(md) == "" {
		return ""
	}
	out, err := glamour.Render(md, "dark")
	if err != nil {
		return md
	}
	return strings.TrimSpace(out)
}
