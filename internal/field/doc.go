// Package field models a multi-select field definition and the editor that
// produces one.
//
// A Definition is the normalized, accepted form: trimmed label, required
// flag, a de-duplicated choice list, display order and an optional default.
// A Draft is what the user is typing; it may be invalid at any time.
//
// # Validation
//
// Validate turns a Draft into a Definition by running a fixed sequence of
// rules and stopping at the first failure. Each rule maps to exactly one
// user-facing message:
//
//	Label is required!
//	Duplicate choices are not allowed!
//	You cannot have more than 50 choices!
//	One or more choices exceed 40 characters!
//	Adding the default value made the list exceed 50 choices!
//	You cannot use bad words. One or more of your choices contain hateful speech.
//
// The last rule only runs when a BannedWordPolicy is configured.
//
// # Editor
//
// Editor holds a Draft plus the single current error message and talks to a
// Store (see package store) for hydration, saving and clearing:
//
//	ed := field.NewEditor(gateway, field.WithPolicy(policy))
//	ed.Hydrate()
//	ed.Draft.Label = "Size"
//	ed.Draft.ChoicesText = "S\nM\nL"
//	if !ed.Submit(ctx) {
//	    fmt.Println(ed.Error)
//	}
//
// # Highlight
//
// Highlight splits each line of the raw choices text at MaxChoiceLength so a
// front end can colour the overflowing part. It is cosmetic only and does
// not participate in validation.
package field
