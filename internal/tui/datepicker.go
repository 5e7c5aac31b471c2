package tui

import (
	"fmt"
	"strings"
	"time"

	"cloud.google.com/go/civil"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// datePickedMsg is the picker's single result on confirmation.
type datePickedMsg struct {
	date civil.Date
}

// datePickerClosedMsg is sent when the picker is dismissed without a choice.
type datePickerClosedMsg struct{}

// datePicker is a month calendar overlay bounded to [first, last].
type datePicker struct {
	cursor civil.Date
	first  civil.Date
	last   civil.Date
}

func newDatePicker(initial, first, last civil.Date) (*datePicker, error) {
	if !first.IsValid() || !last.IsValid() || last.Before(first) {
		return nil, fmt.Errorf("tui: invalid calendar range %s..%s", first, last)
	}
	p := &datePicker{first: first, last: last}
	p.cursor = p.clamp(initial)
	return p, nil
}

func (p *datePicker) clamp(d civil.Date) civil.Date {
	if !d.IsValid() || d.Before(p.first) {
		return p.first
	}
	if d.After(p.last) {
		return p.last
	}
	return d
}

func (p *datePicker) Update(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "left", "h":
		p.cursor = p.clamp(p.cursor.AddDays(-1))
	case "right", "l":
		p.cursor = p.clamp(p.cursor.AddDays(1))
	case "up", "k":
		p.cursor = p.clamp(p.cursor.AddDays(-7))
	case "down", "j":
		p.cursor = p.clamp(p.cursor.AddDays(7))
	case "pgup", "[":
		p.cursor = p.clamp(addMonths(p.cursor, -1))
	case "pgdown", "]":
		p.cursor = p.clamp(addMonths(p.cursor, 1))
	case "<":
		p.cursor = p.clamp(addMonths(p.cursor, -12))
	case ">":
		p.cursor = p.clamp(addMonths(p.cursor, 12))
	case "home":
		p.cursor = p.first
	case "end":
		p.cursor = p.last
	case "enter":
		picked := p.cursor
		return func() tea.Msg { return datePickedMsg{date: picked} }
	case "esc":
		return func() tea.Msg { return datePickerClosedMsg{} }
	}
	return nil
}

func (p *datePicker) View() string {
	title := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#5B8DEF"))
	dim := lipgloss.NewStyle().Foreground(lipgloss.Color("#555555"))
	selected := lipgloss.NewStyle().Reverse(true).Bold(true)

	var b strings.Builder
	b.WriteString(title.Render("Select your date of birth"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s %d\n", p.cursor.Month, p.cursor.Year))
	b.WriteString("Mo Tu We Th Fr Sa Su\n")

	start := civil.Date{Year: p.cursor.Year, Month: p.cursor.Month, Day: 1}
	// Monday-first column of the 1st.
	offset := (int(start.In(time.UTC).Weekday()) + 6) % 7
	b.WriteString(strings.Repeat("   ", offset))
	days := daysIn(p.cursor.Year, p.cursor.Month)
	for day := 1; day <= days; day++ {
		d := civil.Date{Year: p.cursor.Year, Month: p.cursor.Month, Day: day}
		cell := fmt.Sprintf("%2d", day)
		switch {
		case d == p.cursor:
			cell = selected.Render(cell)
		case d.Before(p.first) || d.After(p.last):
			cell = dim.Render(cell)
		}
		b.WriteString(cell)
		if (offset+day)%7 == 0 {
			b.WriteString("\n")
		} else {
			b.WriteString(" ")
		}
	}
	b.WriteString("\n\n")
	b.WriteString(dim.Render("←↑↓→ day/week · [ ] month · < > year · enter OK · esc Cancel"))

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#5B8DEF")).
		Padding(0, 1).
		Render(b.String())
}

func addMonths(d civil.Date, n int) civil.Date {
	total := d.Year*12 + int(d.Month-1) + n
	year, month := total/12, time.Month(total%12+1)
	day := d.Day
	if limit := daysIn(year, month); day > limit {
		day = limit
	}
	return civil.Date{Year: year, Month: month, Day: day}
}

func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
