package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/aaronsmc/office-wishlist-agent/internal/schedule"
)

const (
	dayColWidth = 5
	// slotMinutes is the span of one grid character.
	slotMinutes = 30
)

var (
	headerStyle   = lipgloss.NewStyle().Bold(true)
	footerStyle   = lipgloss.NewStyle().Faint(true)
	freeStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#00C853"))
	busyStyle     = lipgloss.NewStyle().Faint(true)
	weekendStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#00CFCF"))
	selectedStyle = lipgloss.NewStyle().Reverse(true)
)

// dayGrid marks each half hour of d that lies inside a range.
func dayGrid(cal schedule.Calendar, d schedule.Day) string {
	var b strings.Builder
	ranges := cal.Ranges(d)
	for m := 0; m < schedule.MinutesPerDay; m += slotMinutes {
		free := false
		for _, r := range ranges {
			if r.Start.Minutes() <= m && m < r.End.Minutes() {
				free = true
				break
			}
		}
		if free {
			b.WriteString(freeStyle.Render("█"))
		} else {
			b.WriteString(busyStyle.Render("·"))
		}
	}
	return b.String()
}

// hourRuler labels every third hour above the grid.
func hourRuler() string {
	var b strings.Builder
	for h := 0; h < 24; h += 3 {
		b.WriteString(padRight(fmt.Sprintf("%d", h), 6))
	}
	return b.String()
}

// renderWeekTable draws one row per day: label, half-hour grid, ranges.
// cursor < 0 highlights nothing.
func renderWeekTable(cal schedule.Calendar, title string, cursor int) string {
	var b strings.Builder

	b.WriteString(headerStyle.Render(title))
	b.WriteString("\n")
	b.WriteString(strings.Repeat(" ", dayColWidth))
	b.WriteString(footerStyle.Render(hourRuler()))
	b.WriteString("\n")

	for i, d := range schedule.AllDays() {
		label := padRight(d.Short(), dayColWidth)
		switch {
		case i == cursor:
			label = selectedStyle.Render(label)
		case d == schedule.Saturday || d == schedule.Sunday:
			label = weekendStyle.Bold(true).Render(label)
		default:
			label = headerStyle.Render(label)
		}
		b.WriteString(label)
		b.WriteString(dayGrid(cal, d))
		b.WriteString("  ")
		b.WriteString(schedule.FormatRanges(cal.Ranges(d)))
		b.WriteString("\n")
	}
	return b.String()
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
