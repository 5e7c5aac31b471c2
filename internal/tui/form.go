package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/kingrea/profileflow/internal/screen"
	"github.com/kingrea/profileflow/internal/validate"
)

const inputWidth = 40

// control is the live widget behind one screen.Field.
type control struct {
	field  screen.Field
	input  textinput.Model
	area   textarea.Model
	choice int
}

func newControl(f screen.Field) *control {
	c := &control{field: f, choice: -1}
	switch f.Kind {
	case screen.FieldMultiline:
		area := textarea.New()
		area.ShowLineNumbers = false
		area.SetWidth(inputWidth + 10)
		area.SetHeight(3)
		area.Cursor.SetMode(cursor.CursorStatic)
		area.SetValue(f.Value)
		area.Blur()
		c.area = area
	case screen.FieldChoice:
		for i, opt := range f.Options {
			if opt == f.Value {
				c.choice = i
			}
		}
	default:
		in := textinput.New()
		in.Prompt = ""
		in.Width = inputWidth
		in.Cursor.SetMode(cursor.CursorStatic)
		switch f.Kind {
		case screen.FieldPassword:
			in.EchoMode = textinput.EchoPassword
			in.EchoCharacter = '•'
		case screen.FieldDate:
			in.Placeholder = "YYYY-MM-DD"
		}
		in.SetValue(f.Value)
		c.input = in
	}
	return c
}

func (c *control) value() string {
	switch c.field.Kind {
	case screen.FieldMultiline:
		return c.area.Value()
	case screen.FieldChoice:
		if c.choice < 0 || c.choice >= len(c.field.Options) {
			return ""
		}
		return c.field.Options[c.choice]
	default:
		return c.input.Value()
	}
}

func (c *control) setValue(v string) {
	switch c.field.Kind {
	case screen.FieldMultiline:
		c.area.SetValue(v)
	case screen.FieldChoice:
		c.choice = -1
		for i, opt := range c.field.Options {
			if opt == v {
				c.choice = i
			}
		}
	default:
		c.input.SetValue(v)
	}
}

func (c *control) focus() {
	switch c.field.Kind {
	case screen.FieldMultiline:
		c.area.Focus()
	case screen.FieldChoice:
	default:
		c.input.Focus()
	}
}

func (c *control) blur() {
	switch c.field.Kind {
	case screen.FieldMultiline:
		c.area.Blur()
	case screen.FieldChoice:
	default:
		c.input.Blur()
	}
}

// cycle moves a choice selection by delta, wrapping. An unset choice starts
// from the first option going right and the last going left.
func (c *control) cycle(delta int) {
	n := len(c.field.Options)
	if c.field.Kind != screen.FieldChoice || n == 0 {
		return
	}
	if c.choice < 0 {
		if delta > 0 {
			c.choice = 0
		} else {
			c.choice = n - 1
		}
		return
	}
	c.choice = ((c.choice+delta)%n + n) % n
}

// update forwards a key to editable widgets. Date fields are read-only and
// only change through the calendar or by being cleared.
func (c *control) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch c.field.Kind {
	case screen.FieldMultiline:
		c.area, cmd = c.area.Update(msg)
	case screen.FieldText, screen.FieldPassword:
		c.input, cmd = c.input.Update(msg)
	}
	return cmd
}

// formView is the focus ring over a screen's controls and buttons.
type formView struct {
	controls []*control
	actions  []screen.Action
	focus    int
}

func newFormView(desc screen.Description) *formView {
	fv := &formView{actions: desc.Actions}
	for _, f := range desc.Fields {
		fv.controls = append(fv.controls, newControl(f))
	}
	fv.setFocus(0)
	return fv
}

func (fv *formView) size() int {
	return len(fv.controls) + len(fv.actions)
}

func (fv *formView) setFocus(idx int) {
	n := fv.size()
	if n == 0 {
		return
	}
	if c := fv.focusedControl(); c != nil {
		c.blur()
	}
	fv.focus = ((idx % n) + n) % n
	if c := fv.focusedControl(); c != nil {
		c.focus()
	}
}

func (fv *formView) next() { fv.setFocus(fv.focus + 1) }
func (fv *formView) prev() { fv.setFocus(fv.focus - 1) }

func (fv *formView) focusedControl() *control {
	if fv.focus < len(fv.controls) {
		return fv.controls[fv.focus]
	}
	return nil
}

func (fv *formView) focusedAction() (screen.Action, bool) {
	idx := fv.focus - len(fv.controls)
	if idx < 0 || idx >= len(fv.actions) {
		return screen.Action{}, false
	}
	return fv.actions[idx], true
}

func (fv *formView) focusKey(key string) {
	for i, c := range fv.controls {
		if c.field.Key == key {
			fv.setFocus(i)
			return
		}
	}
}

func (fv *formView) control(key string) *control {
	for _, c := range fv.controls {
		if c.field.Key == key {
			return c
		}
	}
	return nil
}

func (fv *formView) value(key string) string {
	if c := fv.control(key); c != nil {
		return c.value()
	}
	return ""
}

func (fv *formView) formInput() validate.FormInput {
	return validate.FormInput{
		Name:    fv.value(validate.FieldName),
		DOB:     fv.value(validate.FieldDOB),
		Gender:  fv.value(validate.FieldGender),
		Address: fv.value(validate.FieldAddress),
		Country: fv.value(validate.FieldCountry),
	}
}

func (fv *formView) view(errs map[string]string) string {
	var b strings.Builder
	for i, c := range fv.controls {
		focused := i == fv.focus
		label := styleLabel.Render(c.field.Label)
		if focused {
			label = styleFocused.Render("› " + c.field.Label)
		}
		b.WriteString(label)
		b.WriteString("\n")
		switch c.field.Kind {
		case screen.FieldMultiline:
			b.WriteString(c.area.View())
		case screen.FieldChoice:
			b.WriteString(renderChoice(c))
		case screen.FieldDate:
			b.WriteString(c.input.View())
			b.WriteString("  ")
			b.WriteString(styleDim.Render("[enter: open calendar]"))
		default:
			b.WriteString(c.input.View())
		}
		b.WriteString("\n")
		if msg, ok := errs[c.field.Key]; ok {
			b.WriteString(styleError.Render(msg))
			b.WriteString("\n")
		}
	}
	if len(fv.controls) > 0 && len(fv.actions) > 0 {
		b.WriteString("\n")
	}
	buttons := make([]string, 0, len(fv.actions))
	for i, a := range fv.actions {
		style := styleButton
		if len(fv.controls)+i == fv.focus {
			style = styleButtonFocused
		}
		buttons = append(buttons, style.Render(a.Label))
	}
	b.WriteString(strings.Join(buttons, " "))
	return b.String()
}

func renderChoice(c *control) string {
	parts := make([]string, 0, len(c.field.Options))
	for i, opt := range c.field.Options {
		mark := "( )"
		if i == c.choice {
			mark = "(•)"
		}
		parts = append(parts, mark+" "+opt)
	}
	return strings.Join(parts, "   ")
}
