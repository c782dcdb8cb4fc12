package wardrobe

// Catalog is an in-memory per-category view over the current item list.
// It is built once from a storage snapshot and rebuilt whenever the
// underlying wardrobe changes; it is never mutated in place.
type Catalog struct {
	items      []Item
	byCategory map[Category][]*Item
}

// NewCatalog partitions items by category, preserving insertion order
// within each category. The catalog takes ownership of its own copy of the
// slice, so later changes to items do not leak in.
func NewCatalog(items []Item) *Catalog {
	c := &Catalog{
		items:      append([]Item(nil), items...),
		byCategory: make(map[Category][]*Item, len(Categories())),
	}
	for i := range c.items {
		it := &c.items[i]
		c.byCategory[it.Category] = append(c.byCategory[it.Category], it)
	}
	return c
}

// Len returns the total number of items in the catalog.
func (c *Catalog) Len() int {
	return len(c.items)
}

// ItemsOf returns the items of one category in insertion order. The
// returned slice is shared; callers must not modify it.
func (c *Catalog) ItemsOf(cat Category) []*Item {
	return c.byCategory[cat]
}

// Lookup finds an item by id, or nil if the id is not in the catalog.
func (c *Catalog) Lookup(id int64) *Item {
	for i := range c.items {
		if c.items[i].ID == id {
			return &c.items[i]
		}
	}
	return nil
}
