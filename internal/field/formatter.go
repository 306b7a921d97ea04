package field

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Summary returns a one-line summary of the definition
func (d *Definition) Summary() string {
	return fmt.Sprintf("%s (multi-select, %d choices, %s)", d.Label, len(d.Choices), d.Order)
}

// FormatDetailed returns a multi-section, human-readable rendering
func (d *Definition) FormatDetailed() string {
	var b strings.Builder

	b.WriteString("=== Field ===\n")
	b.WriteString(fmt.Sprintf("Label:    %s\n", d.Label))
	b.WriteString("Type:     Multi-select\n")
	b.WriteString(fmt.Sprintf("Required: %v\n", d.Required))
	if dv := d.DefaultValue(); dv != "" {
		b.WriteString(fmt.Sprintf("Default:  %s\n", dv))
	} else {
		b.WriteString("Default:  (none)\n")
	}
	b.WriteString(fmt.Sprintf("Order:    %s\n", d.Order.Description()))
	b.WriteString("\n")

	b.WriteString(fmt.Sprintf("=== Choices (%d/%d) ===\n", len(d.Choices), MaxChoices))
	if len(d.Choices) == 0 {
		b.WriteString("(none)\n")
	}
	for i, c := range d.Choices {
		marker := " "
		if c == d.DefaultValue() {
			marker = "*"
		}
		b.WriteString(fmt.Sprintf("%s %2d. %s\n", marker, i+1, c))
	}

	return b.String()
}

// FormatCompact returns a short multi-line rendering
func (d *Definition) FormatCompact() string {
	var b strings.Builder

	required := "optional"
	if d.Required {
		required = "required"
	}
	b.WriteString(fmt.Sprintf("Field:   %s (%s)\n", d.Label, required))
	b.WriteString(fmt.Sprintf("Choices: %s\n", strings.Join(d.Choices, ", ")))
	b.WriteString(fmt.Sprintf("Default: %s\n", orNone(d.DefaultValue())))
	b.WriteString(fmt.Sprintf("Order:   %s\n", d.Order))

	return b.String()
}

// FormatJSON returns the indented wire representation
func (d *Definition) FormatJSON() (string, error) {
	data, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode definition: %w", err)
	}
	return string(data), nil
}

// Format renders the definition in the named format (detailed, compact, json)
func (d *Definition) Format(format string) (string, error) {
	switch format {
	case "", "detailed":
		return d.FormatDetailed(), nil
	case "compact":
		return d.FormatCompact(), nil
	case "json":
		return d.FormatJSON()
	default:
		return "", fmt.Errorf("unknown format %q (expected detailed, compact or json)", format)
	}
}

func orNone(s string) string {
	if s == "" {
		return "(none)"
	}
	return s
}
