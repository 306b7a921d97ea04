package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/muurk/fieldbuilder/internal/field"
)

// Focus identifies the focused row of the form
type Focus int

const (
	FocusLabel Focus = iota
	FocusRequired
	FocusDefault
	FocusChoices
	FocusOrder
	FocusSave
	FocusCancel
	focusCount
)

// choicesHeight is the number of visible lines in the choices box
const choicesHeight = 6

// Model is the Bubble Tea model of the field editor form
type Model struct {
	editor *field.Editor
	ctx    context.Context

	LabelInput   textinput.Model
	DefaultInput textinput.Model
	ChoicesInput textarea.Model

	Focus Focus

	// Toast is a transient status line ("Field saved", "Form cleared")
	Toast string

	Width  int
	Height int

	keys keyMap
	help help.Model
}

// NewModel creates the form for editor. The editor's current draft (for
// example after Hydrate) is loaded into the inputs.
func NewModel(ctx context.Context, editor *field.Editor) Model {
	label := textinput.New()
	label.Placeholder = "Enter field label"
	label.Prompt = ""

	def := textinput.New()
	def.Placeholder = "Enter default value"
	def.Prompt = ""

	choices := textarea.New()
	choices.Placeholder = "Enter one choice per line"
	choices.ShowLineNumbers = false
	choices.CharLimit = 0
	choices.MaxHeight = 0
	choices.SetHeight(choicesHeight)

	m := Model{
		editor:       editor,
		ctx:          ctx,
		LabelInput:   label,
		DefaultInput: def,
		ChoicesInput: choices,
		keys:         newKeyMap(),
		help:         help.New(),
	}
	m.loadDraft()
	m.LabelInput.Focus()
	return m
}

// Editor returns the underlying editor
func (m Model) Editor() *field.Editor {
	return m.editor
}

// Init initializes the form
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles all messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.resize()
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Submit):
			return m.submit()
		case key.Matches(msg, m.keys.Cancel):
			return m.cancel()
		case key.Matches(msg, m.keys.Next):
			return m.moveFocus(1)
		case key.Matches(msg, m.keys.Prev):
			return m.moveFocus(-1)
		}
		return m.handleKey(msg)
	}

	return m.updateFocusedInput(msg)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.Focus {
	case FocusRequired:
		if key.Matches(msg, m.keys.Toggle) || msg.Type == tea.KeyEnter {
			m.editor.Draft.Required = !m.editor.Draft.Required
		}
		return m, nil

	case FocusOrder:
		if key.Matches(msg, m.keys.Toggle) || msg.Type == tea.KeyEnter {
			m.editor.Draft.Order = toggleOrder(m.editor.Draft.Order)
		}
		return m, nil

	case FocusSave:
		if msg.Type == tea.KeyEnter {
			return m.submit()
		}
		return m, nil

	case FocusCancel:
		if msg.Type == tea.KeyEnter {
			return m.cancel()
		}
		return m, nil

	case FocusLabel, FocusDefault:
		if msg.Type == tea.KeyEnter {
			return m.moveFocus(1)
		}
	}

	m.Toast = ""
	return m.updateFocusedInput(msg)
}

func (m Model) updateFocusedInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.Focus {
	case FocusLabel:
		m.LabelInput, cmd = m.LabelInput.Update(msg)
	case FocusDefault:
		m.DefaultInput, cmd = m.DefaultInput.Update(msg)
	case FocusChoices:
		m.ChoicesInput, cmd = m.ChoicesInput.Update(msg)
	}
	m.syncDraft()
	return m, cmd
}

func (m Model) moveFocus(delta int) (tea.Model, tea.Cmd) {
	m.LabelInput.Blur()
	m.DefaultInput.Blur()
	m.ChoicesInput.Blur()

	m.Focus = Focus((int(m.Focus) + delta + int(focusCount)) % int(focusCount))

	var cmd tea.Cmd
	switch m.Focus {
	case FocusLabel:
		cmd = m.LabelInput.Focus()
	case FocusDefault:
		cmd = m.DefaultInput.Focus()
	case FocusChoices:
		cmd = m.ChoicesInput.Focus()
	}
	return m, cmd
}

func (m Model) submit() (tea.Model, tea.Cmd) {
	m.syncDraft()
	if m.editor.Submit(m.ctx) {
		m.Toast = "Field saved"
	} else {
		m.Toast = ""
	}
	return m, nil
}

func (m Model) cancel() (tea.Model, tea.Cmd) {
	m.editor.Cancel()
	m.loadDraft()
	m.Toast = "Form cleared"
	m, cmd := m.focusOn(FocusLabel)
	return m, cmd
}

func (m Model) focusOn(f Focus) (Model, tea.Cmd) {
	m.Focus = (f - 1 + focusCount) % focusCount
	next, cmd := m.moveFocus(1)
	return next.(Model), cmd
}

// syncDraft copies the text inputs into the editor's draft
func (m *Model) syncDraft() {
	m.editor.Draft.Label = m.LabelInput.Value()
	m.editor.Draft.DefaultValue = m.DefaultInput.Value()
	m.editor.Draft.ChoicesText = m.ChoicesInput.Value()
}

// loadDraft copies the editor's draft into the text inputs
func (m *Model) loadDraft() {
	m.LabelInput.SetValue(m.editor.Draft.Label)
	m.DefaultInput.SetValue(m.editor.Draft.DefaultValue)
	m.ChoicesInput.SetValue(m.editor.Draft.ChoicesText)
}

func (m *Model) resize() {
	inputWidth := m.Width - 24
	if inputWidth < 20 {
		inputWidth = 20
	}
	m.LabelInput.Width = inputWidth
	m.DefaultInput.Width = inputWidth
	m.ChoicesInput.SetWidth(inputWidth)
	m.help.Width = m.Width
}

func toggleOrder(o field.Order) field.Order {
	if o == field.OrderCustom {
		return field.OrderAlphabetical
	}
	return field.OrderCustom
}

// Run starts the editor form and blocks until the user quits.
func Run(ctx context.Context, editor *field.Editor) error {
	p := tea.NewProgram(NewModel(ctx, editor), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}
