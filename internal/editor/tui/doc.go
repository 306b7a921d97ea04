// Package tui is the interactive terminal front end for the field editor.
//
// It renders the multi-select field form with Bubble Tea, keeps the text
// inputs in step with a field.Editor draft, and calls Submit and Cancel on
// the editor. Saving goes through whatever field.Store the editor was built
// with.
package tui
