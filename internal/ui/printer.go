package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/muurk/fieldbuilder/internal/field"
)

// Detail is one key/value line in a result box
type Detail struct {
	Key   string
	Value string
}

// Printer provides methods for printing UI components to a writer.
// Non-interactive commands use it for their styled output.
type Printer struct {
	out   io.Writer
	width int
}

// NewPrinter creates a new Printer that writes to the given writer.
// If w is nil, os.Stdout is used.
func NewPrinter(w io.Writer) *Printer {
	if w == nil {
		w = os.Stdout
	}
	return &Printer{
		out:   w,
		width: GetTerminalWidth(),
	}
}

// Width returns the current terminal width used by this printer
func (p *Printer) Width() int {
	return p.width
}

// Print writes content to the output
func (p *Printer) Print(content string) {
	_, _ = fmt.Fprint(p.out, content)
}

// Println writes content with a newline
func (p *Printer) Println(content string) {
	_, _ = fmt.Fprintln(p.out, content)
}

// PrintSuccess prints a success result box
func (p *Printer) PrintSuccess(title string, details []Detail) {
	p.Println(RenderSuccessBox(title, details, p.width))
}

// PrintError prints an error result box with optional hints
func (p *Printer) PrintError(title string, err error, hints []string) {
	p.Println(RenderErrorBox(title, err, hints, p.width))
}

// PrintChoicesPreview prints the choices text with overflow highlighted
func (p *Printer) PrintChoicesPreview(text string) {
	p.Println(RenderChoicesPreview(text))
}

// RenderSuccessBox renders a success result box
func RenderSuccessBox(title string, details []Detail, width int) string {
	lines := []string{
		"",
		SuccessTitleStyle.Render(SuccessMarker + "  " + title),
		"",
	}
	for _, d := range details {
		lines = append(lines, ResultKeyStyle.Render(d.Key+":")+" "+d.Value)
	}
	if len(details) > 0 {
		lines = append(lines, "")
	}
	return SuccessBoxStyle(width).Render(strings.Join(lines, "\n"))
}

// RenderErrorBox renders an error result box
func RenderErrorBox(title string, err error, hints []string, width int) string {
	lines := []string{
		"",
		ErrorTitleStyle.Render(FailureMarker + "  " + title),
		"",
	}
	if err != nil {
		lines = append(lines, ErrorMessageStyle.Render(err.Error()), "")
	}
	for _, hint := range hints {
		lines = append(lines, MutedStyle.Render("• "+hint))
	}
	if len(hints) > 0 {
		lines = append(lines, "")
	}
	return ErrorBoxStyle(width).Render(strings.Join(lines, "\n"))
}

// RenderChoicesPreview renders each line of the raw choices text, colouring
// whatever lies beyond the choice length limit.
func RenderChoicesPreview(text string) string {
	segments := field.Highlight(text)
	lines := make([]string, len(segments))
	for i, seg := range segments {
		if seg.Overflows() {
			lines[i] = seg.Text + OverflowStyle.Render(seg.Overflow)
		} else {
			lines[i] = seg.Text
		}
	}
	return strings.Join(lines, "\n")
}
