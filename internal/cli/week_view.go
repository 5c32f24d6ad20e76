package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/aaronsmc/office-wishlist-agent/internal/schedule"
)

// weekModel is the interactive week viewer. Up and down move between days;
// the footer lists the selected day's ranges with their numbers, which
// "range remove" takes.
type weekModel struct {
	cal    schedule.Calendar
	title  string
	cursor int
}

func (m weekModel) Init() tea.Cmd {
	return nil
}

func (m weekModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "down", "j":
			if m.cursor < schedule.DaysPerWeek-1 {
				m.cursor++
			}
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "home", "g":
			m.cursor = 0
		case "end", "G":
			m.cursor = schedule.DaysPerWeek - 1
		}
	}
	return m, nil
}

func (m weekModel) View() string {
	var b strings.Builder
	b.WriteString(renderWeekTable(m.cal, m.title, m.cursor))
	b.WriteString("\n")

	d := schedule.AllDays()[m.cursor]
	ranges := m.cal.Ranges(d)
	b.WriteString(headerStyle.Render(d.Title()))
	b.WriteString("\n")
	if len(ranges) == 0 {
		b.WriteString(Silent("  unavailable"))
		b.WriteString("\n")
	}
	for i, r := range ranges {
		b.WriteString(fmt.Sprintf("  %d. %s\n", i+1, schedule.FormatRange(r)))
	}
	b.WriteString("\n")
	b.WriteString(footerStyle.Render("↑/↓ move  q quit"))
	b.WriteString("\n")
	return b.String()
}

// runWeekView starts the viewer, or prints the static table when out is not
// a terminal.
func runWeekView(cmd *cobra.Command, cal schedule.Calendar, title string) error {
	out := cmd.OutOrStdout()
	if f, ok := out.(*os.File); !ok || !isatty.IsTerminal(f.Fd()) {
		return printWeekTable(out, cal, title)
	}

	p := tea.NewProgram(weekModel{cal: cal, title: title}, tea.WithAltScreen(), tea.WithOutput(out))
	_, err := p.Run()
	return err
}

func printWeekTable(w io.Writer, cal schedule.Calendar, title string) error {
	_, err := fmt.Fprint(w, renderWeekTable(cal, title, -1))
	return err
}
