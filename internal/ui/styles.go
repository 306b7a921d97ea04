package ui

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Color palette
var (
	PrimaryColor = lipgloss.Color("#1E3A8A") // Blue - headers, borders, focus
	HeaderBG     = lipgloss.Color("#DBEAFE") // Light blue - form title bar
	SuccessColor = lipgloss.Color("#16A34A") // Green - save button, success
	ErrorColor   = lipgloss.Color("#DC2626") // Red - errors, overflow
	WarningColor = lipgloss.Color("#FFA500") // Orange - warnings
	MutedColor   = lipgloss.Color("#6B7280") // Gray - secondary info
	TextColor    = lipgloss.Color("#FFFFFF") // White - main content
)

// Layout constants
const (
	MinTerminalWidth = 60  // Minimum supported terminal width
	MaxContentWidth  = 100 // Maximum content width before capping
	LabelWidth       = 16  // Width of the form's label column
)

// Shared styles
var (
	// FormTitleStyle is the "Field Builder" title bar
	FormTitleStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor).
			Background(HeaderBG).
			Bold(true).
			Padding(0, 1)

	// FieldLabelStyle is the left-hand label of a form row
	FieldLabelStyle = lipgloss.NewStyle().
			Bold(true).
			Width(LabelWidth)

	// FocusedLabelStyle is the label of the focused row
	FocusedLabelStyle = FieldLabelStyle.
				Foreground(PrimaryColor).
				Underline(true)

	// BadgeStyle renders the fixed "Multi-select" type badge
	BadgeStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, true).
			BorderForeground(MutedColor).
			Padding(0, 1)

	// OverflowStyle marks the part of a choice beyond the length limit
	OverflowStyle = lipgloss.NewStyle().
			Foreground(ErrorColor)

	// SaveButtonStyle is the "Save changes" button
	SaveButtonStyle = lipgloss.NewStyle().
			Foreground(TextColor).
			Background(SuccessColor).
			Bold(true).
			Padding(0, 2)

	// CancelButtonStyle is the "Cancel" link
	CancelButtonStyle = lipgloss.NewStyle().
				Foreground(ErrorColor).
				Bold(true).
				Underline(true)

	// ErrorMessageStyle is for error message text
	ErrorMessageStyle = lipgloss.NewStyle().
				Foreground(ErrorColor)

	// SuccessMessageStyle is for success toasts
	SuccessMessageStyle = lipgloss.NewStyle().
				Foreground(SuccessColor)

	// MutedStyle is for hints and secondary text
	MutedStyle = lipgloss.NewStyle().
			Foreground(MutedColor)

	// ResultKeyStyle is for result detail keys
	ResultKeyStyle = lipgloss.NewStyle().
			Foreground(MutedColor).
			Width(12)

	// SuccessTitleStyle is for the success result title
	SuccessTitleStyle = lipgloss.NewStyle().
				Foreground(SuccessColor).
				Bold(true)

	// ErrorTitleStyle is for the error result title
	ErrorTitleStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)

	// WarningTitleStyle is for warnings and confirmations
	WarningTitleStyle = lipgloss.NewStyle().
				Foreground(WarningColor).
				Bold(true)
)

// Result markers
const (
	SuccessMarker = "✓"
	FailureMarker = "✗"
	WarningMarker = "⚠"
)

// GetTerminalWidth returns the current terminal width, with fallback
func GetTerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width < MinTerminalWidth {
		return MinTerminalWidth
	}
	if width > MaxContentWidth {
		return MaxContentWidth
	}
	return width
}

// FormBoxStyle returns the rounded border around the editor form
func FormBoxStyle(width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(MutedColor).
		Width(width - 2)
}

// SuccessBoxStyle returns the border style for success result boxes
func SuccessBoxStyle(width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(SuccessColor).
		Width(width-2).
		Padding(0, 2)
}

// ErrorBoxStyle returns the border style for error result boxes
func ErrorBoxStyle(width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(ErrorColor).
		Width(width-2).
		Padding(0, 2)
}

// WarningBoxStyle returns the border style for warning boxes
func WarningBoxStyle(width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(WarningColor).
		Width(width-2).
		Padding(0, 2)
}

// RenderHorizontalDivider creates a horizontal line of the specified width
func RenderHorizontalDivider(width int, char string) string {
	if width < 0 {
		width = 0
	}
	return lipgloss.NewStyle().
		Foreground(MutedColor).
		Render(strings.Repeat(char, width))
}
