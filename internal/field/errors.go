package field

import (
	"errors"
	"fmt"
)

// Rule identifies which validation rule rejected a draft
type Rule int

const (
	// RuleLabelRequired rejects an empty (or whitespace-only) label
	RuleLabelRequired Rule = iota + 1
	// RuleDuplicateChoices rejects repeated choices (case-sensitive)
	RuleDuplicateChoices
	// RuleTooManyChoices rejects more than MaxChoices entered choices
	RuleTooManyChoices
	// RuleChoiceTooLong rejects choices longer than MaxChoiceLength
	RuleChoiceTooLong
	// RuleDefaultOverflow rejects a list pushed past MaxChoices by the default value
	RuleDefaultOverflow
	// RuleBannedWord rejects choices matching the configured banned-word set
	RuleBannedWord
)

// User-facing messages, one per rule.
const (
	MsgLabelRequired    = "Label is required!"
	MsgDuplicateChoices = "Duplicate choices are not allowed!"
	MsgTooManyChoices   = "You cannot have more than 50 choices!"
	MsgChoiceTooLong    = "One or more choices exceed 40 characters!"
	MsgDefaultOverflow  = "Adding the default value made the list exceed 50 choices!"
	MsgBannedWord       = "You cannot use bad words. One or more of your choices contain hateful speech."
)

// String returns the rule's short name
func (r Rule) String() string {
	switch r {
	case RuleLabelRequired:
		return "label_required"
	case RuleDuplicateChoices:
		return "duplicate_choices"
	case RuleTooManyChoices:
		return "too_many_choices"
	case RuleChoiceTooLong:
		return "choice_too_long"
	case RuleDefaultOverflow:
		return "default_overflow"
	case RuleBannedWord:
		return "banned_word"
	default:
		return fmt.Sprintf("Rule(%d)", int(r))
	}
}

// Message returns the fixed user-facing message for the rule
func (r Rule) Message() string {
	switch r {
	case RuleLabelRequired:
		return MsgLabelRequired
	case RuleDuplicateChoices:
		return MsgDuplicateChoices
	case RuleTooManyChoices:
		return MsgTooManyChoices
	case RuleChoiceTooLong:
		return MsgChoiceTooLong
	case RuleDefaultOverflow:
		return MsgDefaultOverflow
	case RuleBannedWord:
		return MsgBannedWord
	default:
		return ""
	}
}

// ValidationError is returned by Validate when a draft is rejected.
// Message is always the rule's fixed user-facing string.
type ValidationError struct {
	Rule    Rule
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return e.Message
}

func newValidationError(rule Rule) *ValidationError {
	return &ValidationError{Rule: rule, Message: rule.Message()}
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	var vErr *ValidationError
	return errors.As(err, &vErr)
}

// RuleOf returns the rule that produced err, or 0 if err is not a validation error
func RuleOf(err error) Rule {
	var vErr *ValidationError
	if errors.As(err, &vErr) {
		return vErr.Rule
	}
	return 0
}
