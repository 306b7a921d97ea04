package field

import (
	"strings"
	"unicode/utf8"
)

// SplitChoices splits raw choices text on newlines, trims every line and
// drops the empty ones.
func SplitChoices(text string) []string {
	lines := strings.Split(text, "\n")
	choices := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line != "" {
			choices = append(choices, line)
		}
	}
	return choices
}

// ChoiceLength returns the length of a choice in characters (code points).
func ChoiceLength(choice string) int {
	return utf8.RuneCountInString(choice)
}

// Validate runs the validation rules against a draft in their fixed order
// and returns the normalized definition. The first failing rule wins and is
// returned as a *ValidationError; later rules are not evaluated.
//
// The default value is trimmed before it is compared with the choices.
// policy may be nil, in which case the banned-word rule is skipped.
func Validate(draft Draft, policy *BannedWordPolicy) (*Definition, error) {
	choices := SplitChoices(draft.ChoicesText)

	label := strings.TrimSpace(draft.Label)
	if label == "" {
		return nil, newValidationError(RuleLabelRequired)
	}

	if hasDuplicates(choices) {
		return nil, newValidationError(RuleDuplicateChoices)
	}

	if len(choices) > MaxChoices {
		return nil, newValidationError(RuleTooManyChoices)
	}

	defaultValue := strings.TrimSpace(draft.DefaultValue)
	appendDefault := defaultValue != "" && !contains(choices, defaultValue)

	if anyTooLong(choices) {
		return nil, newValidationError(RuleChoiceTooLong)
	}

	if appendDefault {
		choices = append(choices, defaultValue)
	}

	if len(choices) > MaxChoices {
		return nil, newValidationError(RuleDefaultOverflow)
	}

	// An appended default is held to the same length limit as the choices.
	if appendDefault && ChoiceLength(defaultValue) > MaxChoiceLength {
		return nil, newValidationError(RuleChoiceTooLong)
	}

	if policy != nil {
		for _, c := range choices {
			if policy.Contains(c) {
				return nil, newValidationError(RuleBannedWord)
			}
		}
	}

	order := draft.Order
	if order == "" {
		order = OrderAlphabetical
	}

	def := &Definition{
		Label:    label,
		Required: draft.Required,
		Choices:  choices,
		Order:    order,
	}
	if defaultValue != "" {
		def.Default = &defaultValue
	}
	return def, nil
}

func hasDuplicates(choices []string) bool {
	seen := make(map[string]struct{}, len(choices))
	for _, c := range choices {
		seen[c] = struct{}{}
	}
	return len(seen) != len(choices)
}

func anyTooLong(choices []string) bool {
	for _, c := range choices {
		if ChoiceLength(c) > MaxChoiceLength {
			return true
		}
	}
	return false
}

func contains(choices []string, value string) bool {
	for _, c := range choices {
		if c == value {
			return true
		}
	}
	return false
}
