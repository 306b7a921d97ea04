package ui

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestRenderChoicesPreview(t *testing.T) {
	long := strings.Repeat("a", 40) + "overflow"
	text := "Red\n" + long

	out := RenderChoicesPreview(text)
	plain := stripANSI(out)

	if plain != text {
		t.Errorf("preview text = %q, want %q", plain, text)
	}
	if !strings.Contains(out, OverflowStyle.Render("overflow")) {
		t.Error("overflow part should be rendered with OverflowStyle")
	}
}

func TestRenderChoicesPreview_NoOverflow(t *testing.T) {
	text := "Red\nBlue"
	if got := RenderChoicesPreview(text); got != text {
		t.Errorf("RenderChoicesPreview() = %q, want %q", got, text)
	}
}

func TestRenderBoxes(t *testing.T) {
	success := stripANSI(RenderSuccessBox("Field saved", []Detail{{Key: "Field", Value: "Color"}}, 60))
	if !strings.Contains(success, "Field saved") || !strings.Contains(success, "Color") {
		t.Errorf("success box missing content:\n%s", success)
	}

	failure := stripANSI(RenderErrorBox("Field not saved", errors.New("Label is required!"), []string{"Add a label"}, 60))
	for _, want := range []string{"Field not saved", "Label is required!", "Add a label"} {
		if !strings.Contains(failure, want) {
			t.Errorf("error box missing %q:\n%s", want, failure)
		}
	}
}

func TestPrinter(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	if p.Width() < MinTerminalWidth || p.Width() > MaxContentWidth {
		t.Errorf("Width() = %d out of range", p.Width())
	}

	p.Println("hello")
	p.PrintChoicesPreview("Red")
	if got := buf.String(); got != "hello\nRed\n" {
		t.Errorf("output = %q", got)
	}
}

func TestRenderHorizontalDivider(t *testing.T) {
	if got := stripANSI(RenderHorizontalDivider(5, "-")); got != "-----" {
		t.Errorf("divider = %q", got)
	}
	if got := stripANSI(RenderHorizontalDivider(-1, "-")); got != "" {
		t.Errorf("negative width divider = %q", got)
	}
}

// stripANSI removes styling so assertions see the plain text
func stripANSI(s string) string {
	var b strings.Builder
	inEscape := false
	for _, r := range s {
		switch {
		case r == '\x1b':
			inEscape = true
		case inEscape:
			if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
				inEscape = false
			}
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

