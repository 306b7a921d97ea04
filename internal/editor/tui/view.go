package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/fieldbuilder/internal/field"
	"github.com/muurk/fieldbuilder/internal/ui"
)

// View renders the form
func (m Model) View() string {
	width := m.Width
	if width < ui.MinTerminalWidth {
		width = ui.MinTerminalWidth
	}
	if width > ui.MaxContentWidth {
		width = ui.MaxContentWidth
	}

	var b strings.Builder

	b.WriteString(ui.FormTitleStyle.Width(width - 2).Render("Field Builder"))
	b.WriteString("\n\n")

	b.WriteString(m.row(FocusLabel, "Label", m.LabelInput.View()))
	b.WriteString("\n")
	b.WriteString(m.row(-1, "Type", ui.BadgeStyle.Render("Multi-select")))
	b.WriteString("\n")
	b.WriteString(m.row(FocusRequired, "", m.renderRequired()))
	b.WriteString("\n")
	b.WriteString(m.row(FocusDefault, "Default Value", m.DefaultInput.View()))
	b.WriteString("\n\n")
	b.WriteString(m.row(FocusChoices, "Choices", m.ChoicesInput.View()))
	b.WriteString("\n")

	if policy := m.editor.Policy(); policy != nil {
		b.WriteString(m.row(-1, "", ui.MutedStyle.Render(
			fmt.Sprintf("Banned words (%s): %s", policy.Flag, strings.Join(policy.Words(), ", ")))))
		b.WriteString("\n")
	}

	if preview := m.renderPreview(); preview != "" {
		b.WriteString(m.row(-1, "", preview))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.row(FocusOrder, "Order", m.renderOrder()))
	b.WriteString("\n\n")

	if m.editor.Error != "" {
		b.WriteString(ui.ErrorMessageStyle.Render(ui.FailureMarker + " " + m.editor.Error))
		b.WriteString("\n\n")
	} else if m.Toast != "" {
		b.WriteString(ui.SuccessMessageStyle.Render(ui.SuccessMarker + " " + m.Toast))
		b.WriteString("\n\n")
	}

	b.WriteString(m.renderButtons())
	b.WriteString("\n\n")
	b.WriteString(m.help.View(m.keys))

	return ui.FormBoxStyle(width).Render(b.String())
}

func (m Model) row(f Focus, label, content string) string {
	style := ui.FieldLabelStyle
	if f == m.Focus {
		style = ui.FocusedLabelStyle
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, style.Render(label), content)
}

func (m Model) renderRequired() string {
	box := "[ ]"
	if m.editor.Draft.Required {
		box = "[x]"
	}
	return box + " A value is required"
}

func (m Model) renderOrder() string {
	order := m.editor.Draft.Order
	if order == "" {
		order = field.OrderAlphabetical
	}
	return "< " + order.Description() + " >"
}

// renderPreview shows the raw choices with overflow highlighted, only when
// some line is too long.
func (m Model) renderPreview() string {
	for _, seg := range field.Highlight(m.ChoicesInput.Value()) {
		if seg.Overflows() {
			return ui.MutedStyle.Render(fmt.Sprintf("Characters past column %d are not allowed:", field.MaxChoiceLength)) +
				"\n" + ui.RenderChoicesPreview(m.ChoicesInput.Value())
		}
	}
	return ""
}

func (m Model) renderButtons() string {
	save := ui.SaveButtonStyle.Render("Save changes")
	if m.Focus == FocusSave {
		save = ui.SaveButtonStyle.Underline(true).Render("> Save changes")
	}
	cancel := ui.CancelButtonStyle.Render("Cancel")
	if m.Focus == FocusCancel {
		cancel = ui.CancelButtonStyle.Render("> Cancel")
	}
	return save + ui.MutedStyle.Render("  Or  ") + cancel
}
