package field

import (
	"strings"
	"testing"
)

func TestDefinition_Format(t *testing.T) {
	def := &Definition{
		Label:    "Size",
		Required: true,
		Choices:  []string{"S", "M", "L"},
		Order:    OrderCustom,
		Default:  strPtr("M"),
	}

	detailed, err := def.Format("detailed")
	if err != nil {
		t.Fatalf("Format(detailed) error: %v", err)
	}
	for _, want := range []string{"Label:    Size", "Required: true", "Default:  M", "Custom order", "Choices (3/50)", "*  2. M"} {
		if !strings.Contains(detailed, want) {
			t.Errorf("detailed output missing %q:\n%s", want, detailed)
		}
	}

	compact, err := def.Format("compact")
	if err != nil {
		t.Fatalf("Format(compact) error: %v", err)
	}
	if !strings.Contains(compact, "Choices: S, M, L") || !strings.Contains(compact, "(required)") {
		t.Errorf("unexpected compact output:\n%s", compact)
	}

	js, err := def.Format("json")
	if err != nil {
		t.Fatalf("Format(json) error: %v", err)
	}
	if !strings.Contains(js, `"default": "M"`) {
		t.Errorf("unexpected json output:\n%s", js)
	}

	if _, err := def.Format("xml"); err == nil {
		t.Error("Format(xml) should fail")
	}
}

func TestDefinition_FormatNoDefault(t *testing.T) {
	def := &Definition{Label: "Tags", Order: OrderAlphabetical}

	if got := def.FormatCompact(); !strings.Contains(got, "Default: (none)") {
		t.Errorf("FormatCompact() = %q", got)
	}
	if got := def.FormatDetailed(); !strings.Contains(got, "Default:  (none)") {
		t.Errorf("FormatDetailed() = %q", got)
	}
	if got := def.Summary(); got != "Tags (multi-select, 0 choices, alpha)" {
		t.Errorf("Summary() = %q", got)
	}
}
