package stylist_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"attire/internal/rules"
	"attire/internal/stylist"
	"attire/internal/wardrobe"
)

// baseOutfit returns a plain all-solid, all-casual top/bottom outfit with
// ids distinct from any test candidate.
func baseOutfit() *wardrobe.Outfit {
	return &wardrobe.Outfit{
		Top:    &wardrobe.Item{ID: 101, Category: wardrobe.Top, Color: "red", Pattern: "Solid", Formality: "Casual"},
		Bottom: &wardrobe.Item{ID: 102, Category: wardrobe.Bottom, Color: "black", Pattern: "Solid", Formality: "Casual"},
	}
}

// TestValidateReplacement_ClashingAccessory: an accessory that clashes
// with the current top is rejected; recoloring it neutral makes it pass.
func TestValidateReplacement_ClashingAccessory(t *testing.T) {
	s := stylist.New(rules.NewEngine(rules.DefaultTables()), rand.New(rand.NewSource(1)))
	outfit := baseOutfit()

	clashing := &wardrobe.Item{ID: 201, Category: wardrobe.Accessory, Color: "green", Pattern: "Solid", Formality: "Casual"}
	assert.False(t, s.ValidateReplacement(outfit, wardrobe.SlotAccessories, clashing, "Any"),
		"green accessory clashes with the red top")

	neutral := &wardrobe.Item{ID: 202, Category: wardrobe.Accessory, Color: "grey", Pattern: "Solid", Formality: "Casual"}
	assert.True(t, s.ValidateReplacement(outfit, wardrobe.SlotAccessories, neutral, "Any"))
}

// TestValidateReplacement_WholeSetCheck: the validator is O(N²) over the
// full hypothetical outfit, so a candidate compatible with the anchor can
// still be rejected for clashing with a non-anchor slot.
func TestValidateReplacement_WholeSetCheck(t *testing.T) {
	s := stylist.New(rules.NewEngine(rules.DefaultTables()), rand.New(rand.NewSource(1)))
	outfit := &wardrobe.Outfit{
		Top:    &wardrobe.Item{ID: 101, Category: wardrobe.Top, Color: "black", Pattern: "Solid", Formality: "Casual"},
		Bottom: &wardrobe.Item{ID: 102, Category: wardrobe.Bottom, Color: "black", Pattern: "Solid", Formality: "Casual"},
		Shoes:  &wardrobe.Item{ID: 103, Category: wardrobe.Shoes, Color: "brown", Pattern: "Solid", Formality: "Casual"},
	}
	// Pink clashes with brown shoes, not with the black anchor.
	pink := &wardrobe.Item{ID: 201, Category: wardrobe.Accessory, Color: "pink", Pattern: "Solid", Formality: "Casual"}
	assert.False(t, s.ValidateReplacement(outfit, wardrobe.SlotAccessories, pink, "Any"))
}

// TestValidateReplacement_OccasionFilter: the candidate itself must suit
// the selected occasion.
func TestValidateReplacement_OccasionFilter(t *testing.T) {
	s := stylist.New(rules.NewEngine(rules.DefaultTables()), rand.New(rand.NewSource(1)))
	outfit := &wardrobe.Outfit{
		Dress: &wardrobe.Item{ID: 101, Category: wardrobe.Dress, Color: "black", Pattern: "Solid", Formality: "Formal"},
	}
	casual := &wardrobe.Item{ID: 201, Category: wardrobe.Shoes, Color: "white", Pattern: "Solid", Formality: "Casual"}
	assert.False(t, s.ValidateReplacement(outfit, wardrobe.SlotShoes, casual, "Formal Event"))
	assert.False(t, s.ValidateReplacement(outfit, wardrobe.SlotShoes, casual, "Any"),
		"casual shoes still fail the pairwise formality check against the formal dress")

	semiFormal := &wardrobe.Item{ID: 202, Category: wardrobe.Shoes, Color: "white", Pattern: "Solid", Formality: "Semi-Formal"}
	assert.True(t, s.ValidateReplacement(outfit, wardrobe.SlotShoes, semiFormal, "Formal Event"))
}

// TestValidateReplacement_PatternLimit: a patterned candidate is rejected
// when the outfit already carries a patterned item.
func TestValidateReplacement_PatternLimit(t *testing.T) {
	s := stylist.New(rules.NewEngine(rules.DefaultTables()), rand.New(rand.NewSource(1)))
	outfit := baseOutfit()
	outfit.Top.Pattern = "Striped"

	floral := &wardrobe.Item{ID: 201, Category: wardrobe.Accessory, Color: "grey", Pattern: "Floral", Formality: "Casual"}
	assert.False(t, s.ValidateReplacement(outfit, wardrobe.SlotAccessories, floral, "Any"))

	solid := &wardrobe.Item{ID: 202, Category: wardrobe.Accessory, Color: "grey", Pattern: "Solid", Formality: "Casual"}
	assert.True(t, s.ValidateReplacement(outfit, wardrobe.SlotAccessories, solid, "Any"))
}

// TestValidateReplacement_AccessorySetReplaced: validating the accessories
// slot judges the hypothetical set with the old list fully replaced, so an
// existing patterned accessory cannot block the swap.
func TestValidateReplacement_AccessorySetReplaced(t *testing.T) {
	s := stylist.New(rules.NewEngine(rules.DefaultTables()), rand.New(rand.NewSource(1)))
	outfit := baseOutfit()
	outfit.Accessories = []*wardrobe.Item{
		{ID: 301, Category: wardrobe.Accessory, Color: "navy", Pattern: "Polka Dot", Formality: "Casual"},
	}
	outfit.Top.Pattern = "Striped"

	solid := &wardrobe.Item{ID: 201, Category: wardrobe.Accessory, Color: "grey", Pattern: "Solid", Formality: "Casual"}
	assert.True(t, s.ValidateReplacement(outfit, wardrobe.SlotAccessories, solid, "Any"),
		"the polka-dot accessory is replaced, leaving only the striped top patterned")
}

// TestValidateReplacement_CrossTorsoKeepsDisplacedItems: validating a
// torso candidate judges it against the items it would displace. The dress
// (or top/bottom pair) stays in the hypothetical set; it is only cleared
// when the swap is applied.
func TestValidateReplacement_CrossTorsoKeepsDisplacedItems(t *testing.T) {
	s := stylist.New(rules.NewEngine(rules.DefaultTables()), rand.New(rand.NewSource(1)))

	dressed := &wardrobe.Outfit{
		Dress: &wardrobe.Item{ID: 101, Category: wardrobe.Dress, Color: "red", Pattern: "Solid", Formality: "Casual"},
	}
	green := &wardrobe.Item{ID: 201, Category: wardrobe.Top, Color: "green", Pattern: "Solid", Formality: "Casual"}
	assert.False(t, s.ValidateReplacement(dressed, wardrobe.SlotTop, green, "Any"),
		"a green top must be checked against the red dress it would displace")

	grey := &wardrobe.Item{ID: 202, Category: wardrobe.Top, Color: "grey", Pattern: "Solid", Formality: "Casual"}
	assert.True(t, s.ValidateReplacement(dressed, wardrobe.SlotTop, grey, "Any"))

	paired := baseOutfit() // red top, black bottom
	clashing := &wardrobe.Item{ID: 203, Category: wardrobe.Dress, Color: "green", Pattern: "Solid", Formality: "Casual"}
	assert.False(t, s.ValidateReplacement(paired, wardrobe.SlotDress, clashing, "Any"),
		"a green dress must be checked against the red top it would displace")

	navy := &wardrobe.Item{ID: 204, Category: wardrobe.Dress, Color: "navy", Pattern: "Solid", Formality: "Casual"}
	assert.True(t, s.ValidateReplacement(paired, wardrobe.SlotDress, navy, "Any"))
}

// TestValidateReplacement_Nil rejects missing inputs outright.
func TestValidateReplacement_Nil(t *testing.T) {
	s := stylist.New(rules.NewEngine(rules.DefaultTables()), rand.New(rand.NewSource(1)))
	assert.False(t, s.ValidateReplacement(nil, wardrobe.SlotTop, &wardrobe.Item{}, "Any"))
	assert.False(t, s.ValidateReplacement(baseOutfit(), wardrobe.SlotTop, nil, "Any"))
}

// TestValidateReplacement_DoesNotMutate: validation builds a hypothetical
// set; the caller's outfit must be untouched either way.
func TestValidateReplacement_DoesNotMutate(t *testing.T) {
	s := stylist.New(rules.NewEngine(rules.DefaultTables()), rand.New(rand.NewSource(1)))
	outfit := baseOutfit()
	dress := &wardrobe.Item{ID: 201, Category: wardrobe.Dress, Color: "black", Pattern: "Solid", Formality: "Casual"}

	require.True(t, s.ValidateReplacement(outfit, wardrobe.SlotDress, dress, "Any"))
	assert.NotNil(t, outfit.Top, "validation must not write through to the outfit")
	assert.NotNil(t, outfit.Bottom)
	assert.Nil(t, outfit.Dress)
}

// TestReplace_TorsoInvariant: applying a swap re-establishes dress vs
// top/bottom exclusivity in both directions.
func TestReplace_TorsoInvariant(t *testing.T) {
	s := stylist.New(rules.NewEngine(rules.DefaultTables()), rand.New(rand.NewSource(1)))

	outfit := baseOutfit()
	dress := &wardrobe.Item{ID: 201, Category: wardrobe.Dress, Color: "black", Pattern: "Solid", Formality: "Casual"}
	s.Replace(outfit, wardrobe.SlotDress, dress)
	assert.Nil(t, outfit.Top, "swapping in a dress clears the top")
	assert.Nil(t, outfit.Bottom, "swapping in a dress clears the bottom")
	assert.Equal(t, dress, outfit.Dress)

	top := &wardrobe.Item{ID: 202, Category: wardrobe.Top, Color: "white", Pattern: "Solid", Formality: "Casual"}
	s.Replace(outfit, wardrobe.SlotTop, top)
	assert.Nil(t, outfit.Dress, "swapping in a top clears the dress")
	assert.Equal(t, top, outfit.Top)
}

// TestCompatibleReplacements filters a category pool down to the accepted
// candidates, in catalog order.
func TestCompatibleReplacements(t *testing.T) {
	s := stylist.New(rules.NewEngine(rules.DefaultTables()), rand.New(rand.NewSource(1)))
	cat := wardrobe.NewCatalog([]wardrobe.Item{
		{ID: 1, Category: wardrobe.Top, Color: "red", Pattern: "Solid", Formality: "Casual"},
		{ID: 2, Category: wardrobe.Bottom, Color: "black", Pattern: "Solid", Formality: "Casual"},
		{ID: 3, Category: wardrobe.Accessory, Color: "green", Pattern: "Solid", Formality: "Casual"},
		{ID: 4, Category: wardrobe.Accessory, Color: "grey", Pattern: "Solid", Formality: "Casual"},
		{ID: 5, Category: wardrobe.Accessory, Color: "white", Pattern: "Solid", Formality: "Formal"},
	})
	outfit := &wardrobe.Outfit{Top: cat.Lookup(1), Bottom: cat.Lookup(2)}

	got := s.CompatibleReplacements(cat, outfit, wardrobe.SlotAccessories, "Any")
	require.Len(t, got, 1, "green clashes with the red top, formal is too far from casual")
	assert.Equal(t, int64(4), got[0].ID)
}
