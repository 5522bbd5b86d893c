// Package scoring assigns a 0-100 dashboard priority to incident records
// based on static keyword tables plus recency and status bonuses.
package scoring

import (
	"strings"
	"time"
)

// Scorer evaluates incident text against priority-tiered keyword tables.
// Matching is case-insensitive substring containment; the first matching
// tier wins (critical > high > medium, else baseline).
type Scorer struct {
	CriticalTerms []string
	HighTerms     []string
	MediumTerms   []string

	CriticalScore int
	HighScore     int
	MediumScore   int
	Baseline      int

	OpenBonus     int
	RecencyBonus  int
	RecencyWindow time.Duration
}

// DefaultScorer returns a Scorer preloaded with the crime-priority tables.
func DefaultScorer() Scorer {
	return Scorer{
		CriticalTerms: []string{
			"homicide", "murder", "shooting", "shots fired", "armed robbery",
			"kidnapping", "explosion", "officer down", "hostage",
		},
		HighTerms: []string{
			"assault", "battery", "robbery", "burglary", "weapon",
			"carjacking", "arson", "stabbing",
		},
		MediumTerms: []string{
			"theft", "vandalism", "narcotics", "criminal damage",
			"trespass", "dui", "suspicious",
		},
		CriticalScore: 95,
		HighScore:     80,
		MediumScore:   65,
		Baseline:      50,
		OpenBonus:     5,
		RecencyBonus:  10,
		RecencyWindow: time.Hour,
	}
}

// Score produces the priority for an incident from its category/description
// text, status, and occurrence time, clamped to [0,100]. Missing text is
// treated as empty and yields exactly the baseline.
func (s Scorer) Score(category, description, status string, occurredAt, now time.Time) int {
	score := s.base(category + " " + description)

	if strings.EqualFold(strings.TrimSpace(status), "open") {
		score += s.OpenBonus
	}
	if !occurredAt.IsZero() && now.Sub(occurredAt) >= 0 && now.Sub(occurredAt) < s.RecencyWindow {
		score += s.RecencyBonus
	}

	return clamp(score)
}

// base returns the tier score for the combined free text.
func (s Scorer) base(text string) int {
	text = strings.ToLower(text)
	if containsAny(text, s.CriticalTerms) {
		return s.CriticalScore
	}
	if containsAny(text, s.HighTerms) {
		return s.HighScore
	}
	if containsAny(text, s.MediumTerms) {
		return s.MediumScore
	}
	return s.Baseline
}

func containsAny(text string, terms []string) bool {
	for _, term := range terms {
		if strings.Contains(text, term) {
			return true
		}
	}
	return false
}

func clamp(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
