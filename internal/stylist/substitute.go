package stylist

import (
	"attire/internal/wardrobe"
)

// hypothetical flattens the outfit with the named slot's items swapped for
// the single candidate, leaving every other slot in place. Torso exclusivity
// is deliberately not restored here: a dress stays in the set while a top
// candidate is judged, and vice versa, so the pairwise scan sees the full
// current outfit. Clearing the displaced slot is Replace's job.
func hypothetical(outfit *wardrobe.Outfit, slot wardrobe.Slot, candidate *wardrobe.Item) []*wardrobe.Item {
	items := make([]*wardrobe.Item, 0, len(outfit.Accessories)+6)
	keep := func(s wardrobe.Slot, it *wardrobe.Item) {
		if s == slot {
			it = candidate
		}
		if it != nil {
			items = append(items, it)
		}
	}
	keep(wardrobe.SlotTop, outfit.Top)
	keep(wardrobe.SlotBottom, outfit.Bottom)
	keep(wardrobe.SlotDress, outfit.Dress)
	keep(wardrobe.SlotOuterwear, outfit.Outerwear)
	keep(wardrobe.SlotShoes, outfit.Shoes)
	if slot == wardrobe.SlotAccessories {
		items = append(items, candidate)
	} else {
		for _, it := range outfit.Accessories {
			if it != nil {
				items = append(items, it)
			}
		}
	}
	return items
}

// ValidateReplacement reports whether candidate may replace the named slot
// in an already-assembled outfit. For SlotAccessories the entire accessory
// list is hypothetically replaced by the single candidate.
//
// The check is deliberately stricter than generation-time pruning: every
// unordered pair in the hypothetical outfit must be compatible, not just
// pairs involving the anchor, so a late swap cannot reintroduce a clash the
// original assembly avoided by construction.
func (s *Stylist) ValidateReplacement(outfit *wardrobe.Outfit, slot wardrobe.Slot, candidate *wardrobe.Item, occasion string) bool {
	if outfit == nil || candidate == nil {
		return false
	}
	if !s.engine.SuitableForOccasion(candidate, s.engine.OccasionLevel(occasion)) {
		return false
	}

	items := hypothetical(outfit, slot, candidate)

	for i := 0; i < len(items); i++ {
		for j := i + 1; j < len(items); j++ {
			if s.engine.ColorsClash(items[i].Color, items[j].Color) {
				return false
			}
			if !s.engine.FormalitiesMatch(items[i], items[j]) {
				return false
			}
		}
	}
	return s.engine.PatternsOK(items)
}

// CompatibleReplacements returns the catalog items of the slot's category
// that ValidateReplacement accepts for the current outfit, in catalog order.
func (s *Stylist) CompatibleReplacements(cat *wardrobe.Catalog, outfit *wardrobe.Outfit, slot wardrobe.Slot, occasion string) []*wardrobe.Item {
	var out []*wardrobe.Item
	for _, it := range cat.ItemsOf(wardrobe.SlotCategory(slot)) {
		if s.ValidateReplacement(outfit, slot, it, occasion) {
			out = append(out, it)
		}
	}
	return out
}

// Replace applies one accepted candidate to the outfit. The write goes
// through Outfit.SetSlot so torso exclusivity is restored on every swap.
func (s *Stylist) Replace(outfit *wardrobe.Outfit, slot wardrobe.Slot, candidate *wardrobe.Item) {
	outfit.SetSlot(slot, candidate)
}
