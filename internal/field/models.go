package field

import (
	"encoding/json"
	"fmt"
	"strings"
)

const (
	// MaxChoices is the maximum number of choices a definition may carry
	MaxChoices = 50

	// MaxChoiceLength is the maximum length of a single choice, in characters
	MaxChoiceLength = 40
)

// Order controls how a front end displays the choices.
type Order string

const (
	// OrderAlphabetical displays choices sorted alphabetically (the default)
	OrderAlphabetical Order = "alpha"

	// OrderCustom displays choices in the order they were entered
	OrderCustom Order = "custom"
)

// ParseOrder parses the wire value of an order. "alphabetical" is accepted
// as an alias for "alpha".
func ParseOrder(s string) (Order, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "alpha", "alphabetical":
		return OrderAlphabetical, nil
	case "custom":
		return OrderCustom, nil
	default:
		return "", fmt.Errorf("unknown order %q (expected alpha or custom)", s)
	}
}

// Description returns the human-readable label used by the editor.
func (o Order) Description() string {
	if o == OrderCustom {
		return "Custom order"
	}
	return "Display choices in Alphabetical order"
}

// Definition is an accepted multi-select field definition.
// This matches the JSON object stored locally and posted to the record server.
type Definition struct {
	Label    string   `json:"label"`
	Required bool     `json:"required"`
	Choices  []string `json:"choices"`
	Order    Order    `json:"order"`

	// Default is nil when the field has no default value. It is encoded as
	// JSON null in that case, never omitted.
	Default *string `json:"default"`
}

// DefaultValue returns the default value or "" when there is none.
func (d *Definition) DefaultValue() string {
	if d.Default == nil {
		return ""
	}
	return *d.Default
}

// HasChoice reports whether choice is present (case-sensitive).
func (d *Definition) HasChoice(choice string) bool {
	for _, c := range d.Choices {
		if c == choice {
			return true
		}
	}
	return false
}

// MarshalJSON keeps "choices" an array even when it is empty.
func (d Definition) MarshalJSON() ([]byte, error) {
	type wire Definition
	w := wire(d)
	if w.Choices == nil {
		w.Choices = []string{}
	}
	if w.Order == "" {
		w.Order = OrderAlphabetical
	}
	return json.Marshal(w)
}

// Draft is the editor's in-progress, possibly invalid field state.
type Draft struct {
	Label        string
	Required     bool
	DefaultValue string
	ChoicesText  string // One choice per line
	Order        Order
}

// NewDraft returns an empty draft with default values.
func NewDraft() Draft {
	return Draft{Order: OrderAlphabetical}
}

// DraftFromDefinition hydrates a draft from a saved definition.
// If the definition has a default that is missing from its choices, the
// default is appended to the choices text.
func DraftFromDefinition(def *Definition) Draft {
	choices := append([]string(nil), def.Choices...)
	if dv := def.DefaultValue(); dv != "" && !def.HasChoice(dv) {
		choices = append(choices, dv)
	}

	order := def.Order
	if order == "" {
		order = OrderAlphabetical
	}

	return Draft{
		Label:        def.Label,
		Required:     def.Required,
		DefaultValue: def.DefaultValue(),
		ChoicesText:  strings.Join(choices, "\n"),
		Order:        order,
	}
}
