// internal/tui/app.go
//
// This is the terminal front end for profileflow.
// It uses bubbletea, which follows The Elm Architecture:
//
// 1. Model: the App below, wrapping the navigation controller
// 2. Update: turns key presses into navigation events
// 3. View: renders the current screen description to a string
//
// The flow is: Key -> navEventMsg -> nav.Controller.Dispatch -> Description -> View

package tui

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"cloud.google.com/go/civil"
	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/kingrea/profileflow/internal/config"
	"github.com/kingrea/profileflow/internal/logbook"
	"github.com/kingrea/profileflow/internal/nav"
	"github.com/kingrea/profileflow/internal/profile"
	"github.com/kingrea/profileflow/internal/route"
	"github.com/kingrea/profileflow/internal/screen"
	"github.com/kingrea/profileflow/internal/validate"
)

const calendarUnavailable = "Could not open calendar dialog."

// navEventMsg carries one UI event to the controller.
type navEventMsg struct {
	event nav.Event
}

type bannerLevel int

const (
	bannerNone bannerLevel = iota
	bannerError
	bannerWarn
)

// AppOption customizes App construction for tests and alternate runtimes.
type AppOption func(*App)

// WithLogbook overrides the journal opened from the config.
func WithLogbook(lb *logbook.Logbook) AppOption {
	return func(a *App) {
		if lb != nil {
			a.logbook = lb
		}
	}
}

// WithDateBounds overrides the calendar range from the config.
func WithDateBounds(first, last civil.Date) AppOption {
	return func(a *App) {
		a.firstDate, a.lastDate = first, last
	}
}

// WithClock fixes "today", which seeds the calendar when no date is entered.
func WithClock(today func() civil.Date) AppOption {
	return func(a *App) {
		if today != nil {
			a.today = today
		}
	}
}

// App is the main application model.
type App struct {
	config  *config.Config
	nav     *nav.Controller
	logbook *logbook.Logbook

	screen      screen.Description
	form        *formView
	fieldErrors map[string]string
	banner      string
	bannerLevel bannerLevel

	picker    *datePicker
	firstDate civil.Date
	lastDate  civil.Date
	today     func() civil.Date

	prompt     textinput.Model
	promptOpen bool

	keys keyMap
	help help.Model

	width  int
	height int
}

// NewApp creates the App for cfg. The journal is opened at cfg.JournalPath()
// unless WithLogbook supplies one.
func NewApp(cfg *config.Config, opts ...AppOption) (*App, error) {
	if cfg == nil {
		return nil, fmt.Errorf("tui: config is required")
	}
	first, last := cfg.DateBounds()
	prompt := textinput.New()
	prompt.Prompt = "route: "
	prompt.Placeholder = "/form"
	prompt.Cursor.SetMode(cursor.CursorStatic)

	a := &App{
		config:    cfg,
		firstDate: first,
		lastDate:  last,
		today:     func() civil.Date { return civil.DateOf(time.Now()) },
		prompt:    prompt,
		keys:      defaultKeyMap(),
		help:      help.New(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(a)
		}
	}
	if a.logbook == nil {
		lb, err := logbook.New(cfg.JournalPath())
		if err != nil {
			return nil, err
		}
		a.logbook = lb
	}
	a.logbook.Info("Session opened · logout policy: %s", cfg.LogoutPolicy())

	store := profile.NewStore(cfg.LogoutPolicy())
	a.nav = nav.New(store, nav.WithJournal(a.logbook), nav.WithStartPath(cfg.StartRoute()))
	a.show(a.nav.Resolve())
	return a, nil
}

// Init is called once when the program starts.
func (a *App) Init() tea.Cmd {
	return nil
}

// Update is called when a message is received.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.help.Width = msg.Width
		return a, nil

	case navEventMsg:
		a.dispatch(msg.event)
		return a, nil

	case datePickedMsg:
		a.picker = nil
		if c := a.form.control(validate.FieldDOB); c != nil {
			c.setValue(validate.FormatDate(msg.date))
		}
		delete(a.fieldErrors, validate.FieldDOB)
		return a, nil

	case datePickerClosedMsg:
		a.picker = nil
		return a, nil

	case tea.KeyMsg:
		if key.Matches(msg, a.keys.Quit) {
			a.logbook.Info("Session closed")
			return a, tea.Quit
		}
		if a.picker != nil {
			return a, a.picker.Update(msg)
		}
		if a.promptOpen {
			return a, a.updatePrompt(msg)
		}
		return a, a.handleKey(msg)
	}
	return a, nil
}

func (a *App) handleKey(msg tea.KeyMsg) tea.Cmd {
	focused := a.form.focusedControl()
	switch {
	case key.Matches(msg, a.keys.Route):
		a.promptOpen = true
		a.prompt.SetValue("")
		a.prompt.Focus()
		return nil
	case key.Matches(msg, a.keys.Back):
		if a.screen.Back != nil {
			return emit(nav.BackRequested{})
		}
		return nil
	case key.Matches(msg, a.keys.Logout):
		if a.screen.HasAction(screen.ActionLogout) {
			return emit(nav.LogoutRequested{})
		}
		return nil
	case key.Matches(msg, a.keys.Submit):
		return a.submitPrimary()
	case key.Matches(msg, a.keys.Next):
		a.form.next()
		return nil
	case key.Matches(msg, a.keys.Prev):
		a.form.prev()
		return nil
	}

	if focused == nil {
		if key.Matches(msg, a.keys.Activate) {
			if action, ok := a.form.focusedAction(); ok {
				return a.activate(action.ID)
			}
		}
		if key.Matches(msg, a.keys.Left) {
			a.form.prev()
		} else if key.Matches(msg, a.keys.Right) {
			a.form.next()
		}
		return nil
	}

	switch focused.field.Kind {
	case screen.FieldChoice:
		switch {
		case key.Matches(msg, a.keys.Left):
			focused.cycle(-1)
		case key.Matches(msg, a.keys.Right):
			focused.cycle(1)
		case key.Matches(msg, a.keys.Activate):
			a.form.next()
		}
		return nil
	case screen.FieldDate:
		switch {
		case key.Matches(msg, a.keys.Activate):
			a.openCalendar(focused)
		case key.Matches(msg, a.keys.Clear):
			focused.setValue("")
		}
		return nil
	case screen.FieldMultiline:
		return focused.update(msg)
	}

	if key.Matches(msg, a.keys.Activate) {
		a.form.next()
		return nil
	}
	return focused.update(msg)
}

// activate maps a button to the event it produces.
func (a *App) activate(id screen.ActionID) tea.Cmd {
	switch id {
	case screen.ActionLogin:
		return emit(nav.LoginSubmitted{
			Email:    a.form.value(validate.FieldEmail),
			Password: a.form.value(validate.FieldPassword),
		})
	case screen.ActionSubmit:
		return emit(nav.FormSubmitted{Input: a.form.formInput()})
	case screen.ActionBack:
		return emit(nav.BackRequested{})
	case screen.ActionLogout:
		return emit(nav.LogoutRequested{})
	}
	return nil
}

// submitPrimary presses the screen's first button.
func (a *App) submitPrimary() tea.Cmd {
	if len(a.screen.Actions) == 0 {
		return nil
	}
	return a.activate(a.screen.Actions[0].ID)
}

func (a *App) updatePrompt(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		a.closePrompt()
		return nil
	case "enter":
		path := strings.TrimSpace(a.prompt.Value())
		a.closePrompt()
		return emit(nav.RouteRequested{Path: path})
	}
	var cmd tea.Cmd
	a.prompt, cmd = a.prompt.Update(msg)
	return cmd
}

func (a *App) closePrompt() {
	a.promptOpen = false
	a.prompt.Blur()
}

func (a *App) openCalendar(c *control) {
	initial := a.today()
	if d, err := validate.ParseDate(strings.TrimSpace(c.value())); err == nil {
		initial = d
	}
	picker, err := newDatePicker(initial, a.firstDate, a.lastDate)
	if err != nil {
		a.logbook.Warn("Calendar unavailable: %v", err)
		a.banner = calendarUnavailable
		a.bannerLevel = bannerWarn
		return
	}
	a.picker = picker
}

// dispatch hands an event to the controller and applies the outcome.
func (a *App) dispatch(ev nav.Event) {
	out := a.nav.Dispatch(ev)
	if out.Rejected() {
		a.fieldErrors = validate.ByField(out.Errors)
		a.banner = out.Banner
		a.bannerLevel = bannerError
		a.form.focusKey(out.Errors[0].Field)
		return
	}
	a.show(out.Screen)
}

// show discards the current controls and builds new ones for desc.
func (a *App) show(desc screen.Description) {
	a.screen = desc
	a.form = newFormView(desc)
	a.fieldErrors = nil
	a.banner = ""
	a.bannerLevel = bannerNone
	a.picker = nil
}

func emit(ev nav.Event) tea.Cmd {
	return func() tea.Msg { return navEventMsg{event: ev} }
}

// View renders the current state to a string.
func (a *App) View() string {
	width := a.width
	if width <= 0 {
		width = 100
	}
	main := a.renderScreen()
	if a.picker != nil {
		main = lipgloss.JoinVertical(lipgloss.Left, main, "", a.picker.View())
	}
	if a.promptOpen {
		main = lipgloss.JoinVertical(lipgloss.Left, main, "", a.prompt.View())
	}

	body := main
	if logPanel := a.renderLogPanel(); logPanel != "" && width >= 90 {
		body = lipgloss.JoinHorizontal(lipgloss.Top,
			lipgloss.NewStyle().Width(width-44).Render(main),
			lipgloss.NewStyle().Width(42).Render(logPanel),
		)
	}

	footer := a.help.ShortHelpView(a.keys.shortHelp(
		len(a.screen.Fields) > 0,
		a.screen.Back != nil,
		a.screen.HasAction(screen.ActionLogout),
	))
	return lipgloss.JoinVertical(lipgloss.Left,
		styleHeader.Render("◆ PROFILEFLOW"),
		"",
		body,
		"",
		footer,
	)
}

func (a *App) renderScreen() string {
	title := a.screen.Title
	if a.screen.Back != nil {
		title = "← " + title
	}
	parts := []string{styleAppBar.Render(title), ""}
	if a.screen.Heading != "" {
		parts = append(parts, styleHeading.Render(a.screen.Heading))
	}
	if len(a.screen.Lines) > 0 {
		lines := strings.Join(a.screen.Lines, "\n")
		if a.screen.Route == route.Details {
			lines = styleCard.Render(lines)
		}
		parts = append(parts, lines, "")
	}
	parts = append(parts, a.form.view(a.fieldErrors))
	if a.banner != "" {
		style := styleError
		if a.bannerLevel == bannerWarn {
			style = styleWarn
		}
		parts = append(parts, "", style.Render(a.banner))
	}
	if a.screen.Hint != "" {
		parts = append(parts, "", styleDim.Render(a.screen.Hint))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (a *App) renderLogPanel() string {
	if a.logbook == nil {
		return ""
	}
	lines, total := a.logbook.Tail(8)
	if len(lines) == 0 {
		return ""
	}
	fileName := filepath.Base(a.logbook.Path())
	if fileName == "." || fileName == "" {
		fileName = "log"
	}
	head := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#5B8DEF")).
		Render(fmt.Sprintf("LOG · %s (%d)", fileName, total))
	body := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#AAAAAA")).
		Render(strings.Join(trimLogLines(lines), "\n"))
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#444444")).
		Padding(0, 1).
		Render(fmt.Sprintf("%s\n%s", head, body))
}

// trimLogLines drops the date and session columns; the panel only has room
// for the time of day and the message.
func trimLogLines(lines []string) []string {
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		fields := strings.SplitN(line, " ", 3)
		if len(fields) == 3 {
			stamp := fields[0]
			if idx := strings.IndexByte(stamp, 'T'); idx >= 0 {
				stamp = strings.TrimSuffix(stamp[idx+1:], "Z")
			}
			line = stamp + " " + fields[2]
		}
		out = append(out, line)
	}
	return out
}
