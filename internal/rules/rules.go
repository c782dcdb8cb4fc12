// Package rules implements the style-compatibility predicates that outfit
// assembly and substitution validation are built from: color clash,
// formality distance, occasion suitability, and the pattern-mixing limit.
//
// All predicates are pure functions of their arguments plus the Tables the
// Engine was constructed with. The tables are configuration, not code: the
// defaults below can be overridden from settings.yaml without touching the
// algorithm.
package rules

import (
	"sort"
	"strings"

	"attire/internal/wardrobe"
)

// DefaultTolerance is the maximum formality-rank distance two items may
// have and still be considered compatible.
const DefaultTolerance = 1

// Tables holds the rule data injected into an Engine.
type Tables struct {
	// Clash maps a color to the colors it clashes with. The table need not
	// be symmetric; the clash check tests both directions.
	Clash map[string][]string `yaml:"clash"`
	// Neutrals are colors that never clash with anything.
	Neutrals []string `yaml:"neutrals"`
	// FormalityRanks orders formality labels; unknown labels rank 0.
	FormalityRanks map[string]int `yaml:"formality_ranks"`
	// OccasionLevels maps an occasion label to a target formality.
	// Level 0 means unconstrained.
	OccasionLevels map[string]int `yaml:"occasion_levels"`
}

// DefaultTables returns the built-in rule tables. All keys are lower case;
// lookups case-fold their inputs.
func DefaultTables() Tables {
	return Tables{
		Clash: map[string][]string{
			"red":    {"orange", "pink", "green"},
			"orange": {"red", "purple", "blue"},
			"yellow": {"purple", "brown"},
			"green":  {"red", "purple", "brown"},
			"blue":   {"orange"},
			"purple": {"yellow", "green", "orange"},
			"pink":   {"red", "brown"},
			"brown":  {"yellow", "green", "pink"},
		},
		Neutrals: []string{"black", "white", "grey", "beige", "navy"},
		FormalityRanks: map[string]int{
			"casual":       1,
			"smart casual": 2,
			"semi-formal":  3,
			"formal":       4,
		},
		OccasionLevels: map[string]int{
			"Any":            0,
			"Casual Day Out": 1,
			"Work/Office":    2,
			"Date Night":     2,
			"Party":          3,
			"Formal Event":   4,
		},
	}
}

// Engine evaluates compatibility predicates against a fixed set of tables.
// Tolerance is the formality distance allowed between two items; it
// defaults to DefaultTolerance.
type Engine struct {
	tables  Tables
	neutral map[string]bool

	Tolerance int
}

// NewEngine builds an Engine from the given tables.
func NewEngine(tables Tables) *Engine {
	neutral := make(map[string]bool, len(tables.Neutrals))
	for _, c := range tables.Neutrals {
		neutral[strings.ToLower(c)] = true
	}
	return &Engine{tables: tables, neutral: neutral, Tolerance: DefaultTolerance}
}

// Occasions returns the known occasion labels, unconstrained first, then by
// ascending level.
func (e *Engine) Occasions() []string {
	labels := make([]string, 0, len(e.tables.OccasionLevels))
	for label := range e.tables.OccasionLevels {
		labels = append(labels, label)
	}
	sort.Slice(labels, func(i, j int) bool {
		li, lj := e.tables.OccasionLevels[labels[i]], e.tables.OccasionLevels[labels[j]]
		if li != lj {
			return li < lj
		}
		return labels[i] < labels[j]
	})
	return labels
}

// OccasionLevel resolves an occasion label to its target formality.
// Unrecognized labels resolve to 0 (unconstrained).
func (e *Engine) OccasionLevel(label string) int {
	return e.tables.OccasionLevels[label]
}

// rank returns the formality rank of a label; unknown labels rank 0.
func (e *Engine) rank(formality string) int {
	return e.tables.FormalityRanks[strings.ToLower(formality)]
}

// ColorsClash reports whether two colors are flagged as discordant.
// Empty and neutral colors never clash. The adjacency table is checked in
// both directions, so the result is symmetric even if the table is not.
func (e *Engine) ColorsClash(c1, c2 string) bool {
	if c1 == "" || c2 == "" {
		return false
	}
	c1 = strings.ToLower(c1)
	c2 = strings.ToLower(c2)
	if e.neutral[c1] || e.neutral[c2] {
		return false
	}
	for _, c := range e.tables.Clash[c1] {
		if c == c2 {
			return true
		}
	}
	for _, c := range e.tables.Clash[c2] {
		if c == c1 {
			return true
		}
	}
	return false
}

// FormalitiesMatch reports whether two items are within the engine's
// formality tolerance of each other. A nil item matches anything.
func (e *Engine) FormalitiesMatch(a, b *wardrobe.Item) bool {
	if a == nil || b == nil {
		return true
	}
	return abs(e.rank(a.Formality)-e.rank(b.Formality)) <= e.Tolerance
}

// SuitableForOccasion reports whether an item's formality fits the occasion
// target level. Level 0 accepts everything. This filters items against the
// occasion independently; it says nothing about item-to-item consistency.
func (e *Engine) SuitableForOccasion(item *wardrobe.Item, level int) bool {
	if level == 0 {
		return true
	}
	return abs(e.rank(item.Formality)-level) <= 1
}

// PatternsOK reports whether at most one item in the set carries a
// non-solid pattern. Nil items are ignored.
func (e *Engine) PatternsOK(items []*wardrobe.Item) bool {
	patterned := 0
	for _, it := range items {
		if it != nil && strings.ToLower(it.Pattern) != "solid" {
			patterned++
		}
	}
	return patterned <= 1
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
