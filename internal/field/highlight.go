package field

import "strings"

// LineSegment is one line of the raw choices text split at MaxChoiceLength.
// Overflow is empty for lines that fit.
type LineSegment struct {
	Text     string
	Overflow string
}

// Overflows reports whether the line exceeds MaxChoiceLength
func (s LineSegment) Overflows() bool {
	return s.Overflow != ""
}

// Highlight splits every line of text at column MaxChoiceLength. Lines are
// not trimmed: the preview mirrors exactly what the user typed.
func Highlight(text string) []LineSegment {
	lines := strings.Split(text, "\n")
	segments := make([]LineSegment, len(lines))
	for i, line := range lines {
		runes := []rune(line)
		if len(runes) <= MaxChoiceLength {
			segments[i] = LineSegment{Text: line}
			continue
		}
		segments[i] = LineSegment{
			Text:     string(runes[:MaxChoiceLength]),
			Overflow: string(runes[MaxChoiceLength:]),
		}
	}
	return segments
}
