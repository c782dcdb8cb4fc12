package wardrobe

import "fmt"

// Slot names one replaceable role in an outfit. SlotAccessories stands for
// the whole accessory set, which is swapped as a single unit.
type Slot string

const (
	SlotTop         Slot = "top"
	SlotBottom      Slot = "bottom"
	SlotDress       Slot = "dress"
	SlotOuterwear   Slot = "outerwear"
	SlotShoes       Slot = "shoes"
	SlotAccessories Slot = "accessories"
)

// Slots returns every slot in display order.
func Slots() []Slot {
	return []Slot{SlotTop, SlotBottom, SlotDress, SlotOuterwear, SlotShoes, SlotAccessories}
}

// ParseSlot maps a user-entered string to a Slot.
func ParseSlot(s string) (Slot, error) {
	for _, sl := range Slots() {
		if string(sl) == s {
			return sl, nil
		}
	}
	return "", fmt.Errorf("unknown slot %q", s)
}

// SlotCategory returns the item category that may occupy a slot.
func SlotCategory(s Slot) Category {
	switch s {
	case SlotTop:
		return Top
	case SlotBottom:
		return Bottom
	case SlotDress:
		return Dress
	case SlotOuterwear:
		return Outerwear
	case SlotShoes:
		return Shoes
	case SlotAccessories:
		return Accessory
	}
	return ""
}

// Outfit is one assembled combination. A dress is mutually exclusive with
// the top/bottom pair: SetSlot is the only write path and restores that
// invariant on every call.
type Outfit struct {
	Top         *Item
	Bottom      *Item
	Dress       *Item
	Outerwear   *Item
	Shoes       *Item
	Accessories []*Item
}

// SetSlot assigns item to the named slot. Setting the dress clears top and
// bottom; setting a top or bottom clears the dress. For SlotAccessories the
// entire accessory list is replaced by the single given item.
func (o *Outfit) SetSlot(slot Slot, item *Item) {
	switch slot {
	case SlotTop:
		o.Top = item
		if item != nil {
			o.Dress = nil
		}
	case SlotBottom:
		o.Bottom = item
		if item != nil {
			o.Dress = nil
		}
	case SlotDress:
		o.Dress = item
		if item != nil {
			o.Top = nil
			o.Bottom = nil
		}
	case SlotOuterwear:
		o.Outerwear = item
	case SlotShoes:
		o.Shoes = item
	case SlotAccessories:
		if item == nil {
			o.Accessories = nil
		} else {
			o.Accessories = []*Item{item}
		}
	}
}

// Items flattens every assigned item into one slice, accessories last.
func (o *Outfit) Items() []*Item {
	var items []*Item
	for _, it := range []*Item{o.Top, o.Bottom, o.Dress, o.Outerwear, o.Shoes} {
		if it != nil {
			items = append(items, it)
		}
	}
	items = append(items, o.Accessories...)
	return items
}

// Anchor returns the item other slots are checked against during assembly:
// the dress if present, otherwise the top.
func (o *Outfit) Anchor() *Item {
	if o.Dress != nil {
		return o.Dress
	}
	return o.Top
}

// Clone returns a shallow copy with its own accessory slice. Item pointers
// still reference the shared catalog.
func (o *Outfit) Clone() *Outfit {
	dup := *o
	dup.Accessories = append([]*Item(nil), o.Accessories...)
	return &dup
}
