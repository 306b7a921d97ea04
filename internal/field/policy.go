package field

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/cases"
)

// HateSpeechFlag is the feature flag of the built-in banned-word policy
const HateSpeechFlag = "hate-speech"

// BannedWordPolicy rejects choices that, after Unicode case folding, equal
// one of its words.
type BannedWordPolicy struct {
	Flag  string
	words map[string]struct{}
}

// NewBannedWordPolicy creates a policy for the given flag and words.
// Words are trimmed and case-folded; empty words are ignored.
func NewBannedWordPolicy(flag string, words ...string) *BannedWordPolicy {
	p := &BannedWordPolicy{
		Flag:  flag,
		words: make(map[string]struct{}, len(words)),
	}
	fold := cases.Fold()
	for _, w := range words {
		w = strings.TrimSpace(w)
		if w == "" {
			continue
		}
		p.words[fold.String(w)] = struct{}{}
	}
	return p
}

// Contains reports whether choice matches a banned word case-insensitively.
func (p *BannedWordPolicy) Contains(choice string) bool {
	if p == nil || len(p.words) == 0 {
		return false
	}
	_, banned := p.words[cases.Fold().String(choice)]
	return banned
}

// Words returns the folded banned words in sorted order.
func (p *BannedWordPolicy) Words() []string {
	if p == nil {
		return nil
	}
	words := make([]string, 0, len(p.words))
	for w := range p.words {
		words = append(words, w)
	}
	sort.Strings(words)
	return words
}

// DefaultPolicies maps feature flags to their banned-word sets.
var DefaultPolicies = map[string][]string{
	HateSpeechFlag: {"testing", "bad", "word"},
}

// LookupPolicy resolves a feature flag to a policy. Custom sets take
// precedence over DefaultPolicies. An empty flag disables the policy and
// returns nil.
func LookupPolicy(flag string, custom map[string][]string) (*BannedWordPolicy, error) {
	flag = strings.TrimSpace(flag)
	if flag == "" {
		return nil, nil
	}
	if words, ok := custom[flag]; ok {
		return NewBannedWordPolicy(flag, words...), nil
	}
	if words, ok := DefaultPolicies[flag]; ok {
		return NewBannedWordPolicy(flag, words...), nil
	}
	return nil, fmt.Errorf("unknown banned-word policy %q", flag)
}
