// Package ui holds the terminal styling shared by the field builder's
// commands: the lipgloss palette, result boxes, confirmation prompts and the
// choices preview that highlights characters past the length limit.
//
// Interactive editing lives in package editor/tui; this package only renders.
//
//	p := ui.NewPrinter(os.Stdout)
//	p.PrintSuccess("Field saved", []ui.Detail{{Key: "Label", Value: "Color"}})
package ui
