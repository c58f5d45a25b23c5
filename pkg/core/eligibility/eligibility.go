// Package eligibility decides which clubs may compete for a given award.
//
// Award names are matched against an ordered table of rules; the first rule
// whose pattern appears in the lowercased award name wins. Each rule is a
// set of parameters (keyword lists, a category, thresholds, overrides)
// evaluated by a single interpreter, so new award types can be added by
// extending the table rather than writing new code.
package eligibility

import (
	"strings"
	"time"

	"github.com/campuslife/club-awards/pkg/core/model"
)

// Rule describes one eligibility rule. A club is eligible when its name
// contains any entry of NameOverrides (force-accept), or when ANY of the
// configured checks matches:
//   - NameKeywords: substrings of the lowercased club name
//   - DescriptionKeywords: substrings of the lowercased description
//   - ProfileKeywords: substrings of the lowercased description plus
//     achievements text
//   - Category: exact category match (when non-empty)
//   - MinMembers: member count at or above the threshold (when positive)
//   - FoundedWithinYears: founded in the last N calendar years relative to
//     the reference time (when positive)
//
// All keyword checks are raw substring matches, so short keywords like
// "ai" or "ml" match inside longer words.
type Rule struct {
	// Name identifies the rule in logs and tests
	Name string

	// AwardPatterns are lowercased substrings of the award name that
	// select this rule. The table is evaluated in order; first match wins.
	AwardPatterns []string

	NameKeywords        []string
	DescriptionKeywords []string
	ProfileKeywords     []string
	Category            string
	MinMembers          int
	FoundedWithinYears  int

	// NameOverrides force-accept clubs whose lowercased name contains any
	// entry, regardless of the other checks.
	NameOverrides []string
}

// Resolver resolves award names to eligibility rules and evaluates them.
// The reference time is injected so founded-year thresholds are
// deterministic under test.
type Resolver struct {
	rules []Rule
	now   time.Time
}

// NewResolver creates a resolver over the given ordered rule table
func NewResolver(rules []Rule, now time.Time) *Resolver {
	return &Resolver{rules: rules, now: now}
}

// NewDefaultResolver creates a resolver over the built-in rule table
func NewDefaultResolver(now time.Time) *Resolver {
	return NewResolver(DefaultRules(), now)
}

// RuleFor returns the first rule whose pattern appears in the award name,
// or nil if no rule matches (meaning every club is eligible).
func (r *Resolver) RuleFor(awardName string) *Rule {
	name := strings.ToLower(awardName)
	for i := range r.rules {
		for _, pattern := range r.rules[i].AwardPatterns {
			if strings.Contains(name, pattern) {
				return &r.rules[i]
			}
		}
	}
	return nil
}

// Eligible reports whether the club may compete for the named award
func (r *Resolver) Eligible(awardName string, club model.Club) bool {
	rule := r.RuleFor(awardName)
	if rule == nil {
		return true
	}
	return r.evaluate(rule, club)
}

// EligibleClubs filters clubs to those eligible for the named award,
// preserving the input order.
func (r *Resolver) EligibleClubs(awardName string, clubs []model.Club) []model.Club {
	rule := r.RuleFor(awardName)
	if rule == nil {
		return clubs
	}
	eligible := make([]model.Club, 0, len(clubs))
	for _, club := range clubs {
		if r.evaluate(rule, club) {
			eligible = append(eligible, club)
		}
	}
	return eligible
}

// evaluate applies a single rule to a club. It is a pure function of the
// club's current field values and the resolver's reference time.
func (r *Resolver) evaluate(rule *Rule, club model.Club) bool {
	name := strings.ToLower(club.Name)
	description := strings.ToLower(club.Description)
	profile := description + " " + strings.ToLower(club.Achievements)

	for _, override := range rule.NameOverrides {
		if strings.Contains(name, override) {
			return true
		}
	}

	if containsAny(name, rule.NameKeywords) {
		return true
	}
	if containsAny(description, rule.DescriptionKeywords) {
		return true
	}
	if containsAny(profile, rule.ProfileKeywords) {
		return true
	}
	if rule.Category != "" && club.Category == rule.Category {
		return true
	}
	if rule.MinMembers > 0 && club.MemberCount >= rule.MinMembers {
		return true
	}
	if rule.FoundedWithinYears > 0 && club.FoundedYear >= r.now.Year()-rule.FoundedWithinYears {
		return true
	}

	return false
}

func containsAny(text string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(text, keyword) {
			return true
		}
	}
	return false
}
