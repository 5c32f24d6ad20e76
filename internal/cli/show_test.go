package cli

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aaronsmc/office-wishlist-agent/internal/schedule"
)

func weekdaysCalendar() schedule.Calendar {
	return schedule.PresetCalendar(schedule.PresetWeekdays)
}

func TestShowList(t *testing.T) {
	svc := newTestService(t)
	_, err := svc.ApplyPreset(context.Background(), "", schedule.PresetWeekdays)
	require.NoError(t, err)

	out := bindOutput(showCmd, "")
	require.NoError(t, runShow(showCmd, svc, "", false, false))

	s := out.String()
	assert.Contains(t, s, "Availability for 'default':")
	assert.Contains(t, s, "Mon  9 am–5 pm")
	assert.Contains(t, s, "Sun  unavailable")
}

func TestShowEmpty(t *testing.T) {
	out := bindOutput(showCmd, "")
	require.NoError(t, runShow(showCmd, newTestService(t), "", false, false))
	assert.Contains(t, out.String(), "No availability set.")
}

func TestShowInteractiveFallsBackWithoutTerminal(t *testing.T) {
	out := bindOutput(showCmd, "")
	require.NoError(t, runShow(showCmd, newTestService(t), "", true, false))
	assert.Contains(t, out.String(), "Availability for default")
	assert.Contains(t, out.String(), "Mon  ")
}

func TestRenderWeekTable(t *testing.T) {
	table := renderWeekTable(weekdaysCalendar(), "Week", -1)
	lines := strings.Split(strings.TrimRight(table, "\n"), "\n")
	require.Len(t, lines, 2+schedule.DaysPerWeek)

	assert.Equal(t, "Week", lines[0])
	assert.True(t, strings.HasPrefix(lines[2], "Mon"))
	assert.Equal(t, 16, strings.Count(lines[2], "█"), "9 am to 5 pm is 16 half hours")
	assert.Equal(t, 48, strings.Count(lines[2], "█")+strings.Count(lines[2], "·"))
	assert.Contains(t, lines[2], "9 am–5 pm")
	assert.Equal(t, 0, strings.Count(lines[8], "█"))
	assert.Contains(t, lines[8], "unavailable")
}

func TestDayGridEndOfDay(t *testing.T) {
	cal, err := schedule.Calendar{}.Set(schedule.Friday, schedule.NewTimeRange(23*60, schedule.MinutesPerDay))
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(dayGrid(cal, schedule.Friday), "██"))
}

func TestWeekModelNavigation(t *testing.T) {
	m := weekModel{cal: weekdaysCalendar(), title: "Week"}

	press := func(m weekModel, key string) weekModel {
		var msg tea.KeyMsg
		switch key {
		case "down":
			msg = tea.KeyMsg{Type: tea.KeyDown}
		case "up":
			msg = tea.KeyMsg{Type: tea.KeyUp}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
		}
		updated, _ := m.Update(msg)
		return updated.(weekModel)
	}

	m = press(m, "up")
	assert.Equal(t, 0, m.cursor)
	m = press(m, "down")
	m = press(m, "j")
	assert.Equal(t, 2, m.cursor)
	m = press(m, "G")
	assert.Equal(t, 6, m.cursor)
	m = press(m, "down")
	assert.Equal(t, 6, m.cursor)
	assert.Contains(t, m.View(), "Sunday")
	assert.Contains(t, m.View(), "unavailable")

	m = press(m, "g")
	assert.Contains(t, m.View(), "1. 9 am–5 pm")

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}
