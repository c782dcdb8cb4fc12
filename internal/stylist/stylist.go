// Package stylist assembles outfits from a catalog by bounded randomized
// search, and re-validates single-slot substitutions against the same
// compatibility rules.
//
// The search is rejection sampling, not a constraint solver: pairwise rules
// are checked locally as each slot is drawn, the global pattern-mixing rule
// only once a full candidate outfit exists. With typical wardrobe sizes
// (tens of items) the attempt budget makes failure strongly imply genuine
// infeasibility rather than search starvation.
package stylist

import (
	"errors"
	"math/rand"

	"attire/internal/rules"
	"attire/internal/wardrobe"
)

// DefaultMaxAttempts bounds the generation retry loop.
const DefaultMaxAttempts = 1000

// dressChance is the probability of anchoring on a dress when suitable
// tops also exist.
const dressChance = 0.3

var (
	// ErrEmptyCatalog means there were no items to draw from at all.
	ErrEmptyCatalog = errors.New("wardrobe is empty")
	// ErrNoSuitableOutfit means the attempt budget was exhausted without
	// finding a combination that satisfies the rules.
	ErrNoSuitableOutfit = errors.New("no suitable outfit found")
)

// Stylist generates and validates outfits. The random source is injected so
// tests can seed it; callers own it exclusively for the duration of a call.
type Stylist struct {
	engine      *rules.Engine
	rng         *rand.Rand
	maxAttempts int
}

// New builds a Stylist around a rule engine and a random source.
func New(engine *rules.Engine, rng *rand.Rand) *Stylist {
	return &Stylist{engine: engine, rng: rng, maxAttempts: DefaultMaxAttempts}
}

// SetMaxAttempts overrides the generation attempt budget. Values below 1
// are ignored.
func (s *Stylist) SetMaxAttempts(n int) {
	if n >= 1 {
		s.maxAttempts = n
	}
}

// Engine exposes the rule engine the stylist was built with.
func (s *Stylist) Engine() *rules.Engine {
	return s.engine
}

// pick draws one item uniformly at random, or nil from an empty pool.
func (s *Stylist) pick(pool []*wardrobe.Item) *wardrobe.Item {
	if len(pool) == 0 {
		return nil
	}
	return pool[s.rng.Intn(len(pool))]
}

// suitable filters a category pool through the occasion check.
func (s *Stylist) suitable(cat *wardrobe.Catalog, c wardrobe.Category, level int) []*wardrobe.Item {
	var out []*wardrobe.Item
	for _, it := range cat.ItemsOf(c) {
		if s.engine.SuitableForOccasion(it, level) {
			out = append(out, it)
		}
	}
	return out
}

// accepts reports whether a candidate is compatible with the base item:
// formalities within tolerance and colors not clashing. A nil base rejects.
func (s *Stylist) accepts(base, candidate *wardrobe.Item) bool {
	return base != nil &&
		s.engine.FormalitiesMatch(base, candidate) &&
		!s.engine.ColorsClash(base.Color, candidate.Color)
}

// Suggest assembles one outfit suited to the occasion, or reports a
// distinguishable no-result outcome. The same inputs may yield different
// outfits across calls, and may fail even when a valid combination exists,
// because the search is randomized and bounded.
func (s *Stylist) Suggest(cat *wardrobe.Catalog, occasion string) (*wardrobe.Outfit, error) {
	if cat.Len() == 0 {
		return nil, ErrEmptyCatalog
	}
	level := s.engine.OccasionLevel(occasion)

	tops := s.suitable(cat, wardrobe.Top, level)
	bottoms := s.suitable(cat, wardrobe.Bottom, level)
	dresses := s.suitable(cat, wardrobe.Dress, level)
	outerwear := s.suitable(cat, wardrobe.Outerwear, level)
	shoes := s.suitable(cat, wardrobe.Shoes, level)
	accessories := s.suitable(cat, wardrobe.Accessory, level)

	for attempt := 0; attempt < s.maxAttempts; attempt++ {
		outfit := &wardrobe.Outfit{}

		// Torso decision: dress, or top+bottom pair.
		if len(dresses) > 0 && (len(tops) == 0 || s.rng.Float64() < dressChance) {
			outfit.Dress = s.pick(dresses)
		} else {
			outfit.Top = s.pick(tops)
			outfit.Bottom = s.pick(bottoms)
			if outfit.Top == nil {
				// Reaching here means both the top and dress pools are
				// empty, so no attempt can ever produce an anchor.
				return nil, ErrNoSuitableOutfit
			}
			if outfit.Bottom == nil {
				// Pair not formed; a later attempt may take the dress branch.
				continue
			}
			if !s.engine.FormalitiesMatch(outfit.Top, outfit.Bottom) ||
				s.engine.ColorsClash(outfit.Top.Color, outfit.Bottom.Color) {
				continue
			}
		}

		anchor := outfit.Anchor()

		// Optional slots are additive: a rejected candidate is simply
		// omitted, never redrawn, never fails the attempt.
		if cand := s.pick(outerwear); cand != nil && s.accepts(anchor, cand) {
			outfit.Outerwear = cand
		}

		shoeBase := outfit.Dress
		if shoeBase == nil {
			shoeBase = outfit.Bottom
		}
		if shoeBase == nil {
			shoeBase = outfit.Top
		}
		if cand := s.pick(shoes); cand != nil && s.accepts(shoeBase, cand) {
			outfit.Shoes = cand
		}

		if len(accessories) > 0 {
			n := s.rng.Intn(min(len(accessories), 3) + 1)
			chosen := make(map[int64]bool, n)
			for i := 0; i < n; i++ {
				cand := s.pick(accessories)
				if cand == nil || chosen[cand.ID] {
					continue
				}
				if s.accepts(anchor, cand) {
					outfit.Accessories = append(outfit.Accessories, cand)
					chosen[cand.ID] = true
				}
			}
		}

		// The pattern-mixing limit is global, so it can only be judged once
		// every slot is tentatively filled.
		if s.engine.PatternsOK(outfit.Items()) {
			return outfit, nil
		}
	}
	return nil, ErrNoSuitableOutfit
}
