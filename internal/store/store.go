// Package store persists the wardrobe and saved outfits in SQLite.
//
// The core generation and validation logic never touches storage; it reads
// a catalog snapshot built from ListItems. Saved outfits record item ids
// per slot and are re-resolved against the current catalog on load, so a
// deleted item surfaces as a load failure instead of being silently
// repaired.
package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"attire/internal/wardrobe"
)

// ErrDanglingItem means a saved outfit references an item id that is no
// longer present in the wardrobe.
var ErrDanglingItem = errors.New("saved outfit references a missing item")

// Store wraps the SQLite database holding items and saved outfits.
type Store struct {
	db *sql.DB
}

// Open opens (creating if necessary) the database at path and initializes
// the schema. WAL mode keeps the single-writer case snappy.
func Open(path string) (*Store, error) {
	dsn := fmt.Sprintf("file:%s?_busy_timeout=10000&_journal_mode=WAL&_synchronous=NORMAL", path)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	s := &Store{db: db}
	if err := s.initSchema(); err != nil {
		return nil, fmt.Errorf("initialize schema: %w", err)
	}
	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS clothing_items (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		category TEXT NOT NULL,
		color TEXT NOT NULL,
		pattern TEXT NOT NULL,
		formality TEXT NOT NULL,
		photo_path TEXT NOT NULL UNIQUE
	);

	CREATE TABLE IF NOT EXISTS saved_outfits (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL UNIQUE,
		occasion TEXT NOT NULL DEFAULT 'Any',
		selection TEXT NOT NULL,
		created_at DATETIME NOT NULL
	);
	`
	_, err := s.db.Exec(schema)
	return err
}

// AddItem inserts a new clothing item and returns its id.
func (s *Store) AddItem(item wardrobe.Item) (int64, error) {
	res, err := s.db.Exec(
		`INSERT INTO clothing_items (category, color, pattern, formality, photo_path)
		 VALUES (?, ?, ?, ?, ?)`,
		string(item.Category), item.Color, item.Pattern, item.Formality, item.PhotoPath,
	)
	if err != nil {
		return 0, fmt.Errorf("add item: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("add item: %w", err)
	}
	return id, nil
}

// ListItems returns every clothing item ordered by id, which is insertion
// order.
func (s *Store) ListItems() ([]wardrobe.Item, error) {
	rows, err := s.db.Query(
		`SELECT id, category, color, pattern, formality, photo_path
		 FROM clothing_items ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()

	var items []wardrobe.Item
	for rows.Next() {
		var it wardrobe.Item
		var category string
		if err := rows.Scan(&it.ID, &category, &it.Color, &it.Pattern, &it.Formality, &it.PhotoPath); err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		it.Category = wardrobe.Category(category)
		items = append(items, it)
	}
	return items, rows.Err()
}

// DeleteItem removes an item and returns its photo path so the caller can
// remove the file. Errors if the id does not exist.
func (s *Store) DeleteItem(id int64) (photoPath string, err error) {
	err = s.db.QueryRow(`SELECT photo_path FROM clothing_items WHERE id = ?`, id).Scan(&photoPath)
	if err == sql.ErrNoRows {
		return "", fmt.Errorf("item %d not found", id)
	}
	if err != nil {
		return "", fmt.Errorf("delete item: %w", err)
	}
	if _, err := s.db.Exec(`DELETE FROM clothing_items WHERE id = ?`, id); err != nil {
		return "", fmt.Errorf("delete item: %w", err)
	}
	return photoPath, nil
}

// Selection records the item ids occupying each outfit slot. It is the
// serialized form of a wardrobe.Outfit.
type Selection struct {
	Top         *int64  `json:"top,omitempty"`
	Bottom      *int64  `json:"bottom,omitempty"`
	Dress       *int64  `json:"dress,omitempty"`
	Outerwear   *int64  `json:"outerwear,omitempty"`
	Shoes       *int64  `json:"shoes,omitempty"`
	Accessories []int64 `json:"accessories,omitempty"`
}

// NewSelection captures the item ids of an assembled outfit.
func NewSelection(o *wardrobe.Outfit) Selection {
	idOf := func(it *wardrobe.Item) *int64 {
		if it == nil {
			return nil
		}
		id := it.ID
		return &id
	}
	sel := Selection{
		Top:       idOf(o.Top),
		Bottom:    idOf(o.Bottom),
		Dress:     idOf(o.Dress),
		Outerwear: idOf(o.Outerwear),
		Shoes:     idOf(o.Shoes),
	}
	for _, a := range o.Accessories {
		sel.Accessories = append(sel.Accessories, a.ID)
	}
	return sel
}

// Resolve rebuilds an outfit from a selection against the current catalog.
// A referenced id absent from the catalog yields ErrDanglingItem; the
// outfit is not partially repaired.
func (sel Selection) Resolve(cat *wardrobe.Catalog) (*wardrobe.Outfit, error) {
	lookup := func(id *int64) (*wardrobe.Item, error) {
		if id == nil {
			return nil, nil
		}
		it := cat.Lookup(*id)
		if it == nil {
			return nil, fmt.Errorf("%w: item %d", ErrDanglingItem, *id)
		}
		return it, nil
	}

	var o wardrobe.Outfit
	var err error
	if o.Top, err = lookup(sel.Top); err != nil {
		return nil, err
	}
	if o.Bottom, err = lookup(sel.Bottom); err != nil {
		return nil, err
	}
	if o.Dress, err = lookup(sel.Dress); err != nil {
		return nil, err
	}
	if o.Outerwear, err = lookup(sel.Outerwear); err != nil {
		return nil, err
	}
	if o.Shoes, err = lookup(sel.Shoes); err != nil {
		return nil, err
	}
	for _, id := range sel.Accessories {
		it := cat.Lookup(id)
		if it == nil {
			return nil, fmt.Errorf("%w: item %d", ErrDanglingItem, id)
		}
		o.Accessories = append(o.Accessories, it)
	}
	return &o, nil
}

// SavedOutfit is one stored outfit row.
type SavedOutfit struct {
	ID        int64
	Name      string
	Occasion  string
	Selection Selection
	CreatedAt time.Time
}

// SaveOutfit stores a named outfit selection. Names are unique; reusing
// one is an error.
func (s *Store) SaveOutfit(name, occasion string, sel Selection) (int64, error) {
	data, err := json.Marshal(sel)
	if err != nil {
		return 0, fmt.Errorf("marshal selection: %w", err)
	}
	res, err := s.db.Exec(
		`INSERT INTO saved_outfits (name, occasion, selection, created_at) VALUES (?, ?, ?, ?)`,
		name, occasion, string(data), time.Now().UTC(),
	)
	if err != nil {
		return 0, fmt.Errorf("save outfit %q: %w", name, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("save outfit %q: %w", name, err)
	}
	return id, nil
}

// ListOutfits returns saved outfits, newest first.
func (s *Store) ListOutfits() ([]SavedOutfit, error) {
	rows, err := s.db.Query(
		`SELECT id, name, occasion, selection, created_at
		 FROM saved_outfits ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("list outfits: %w", err)
	}
	defer rows.Close()

	var outfits []SavedOutfit
	for rows.Next() {
		var so SavedOutfit
		var data string
		if err := rows.Scan(&so.ID, &so.Name, &so.Occasion, &data, &so.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan outfit: %w", err)
		}
		if err := json.Unmarshal([]byte(data), &so.Selection); err != nil {
			return nil, fmt.Errorf("unmarshal outfit %q: %w", so.Name, err)
		}
		outfits = append(outfits, so)
	}
	return outfits, rows.Err()
}

// GetOutfit retrieves one saved outfit by name.
func (s *Store) GetOutfit(name string) (*SavedOutfit, error) {
	var so SavedOutfit
	var data string
	err := s.db.QueryRow(
		`SELECT id, name, occasion, selection, created_at FROM saved_outfits WHERE name = ?`,
		name,
	).Scan(&so.ID, &so.Name, &so.Occasion, &data, &so.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("outfit %q not found", name)
	}
	if err != nil {
		return nil, fmt.Errorf("get outfit %q: %w", name, err)
	}
	if err := json.Unmarshal([]byte(data), &so.Selection); err != nil {
		return nil, fmt.Errorf("unmarshal outfit %q: %w", name, err)
	}
	return &so, nil
}

// UpdateOutfit replaces the selection of an existing saved outfit.
func (s *Store) UpdateOutfit(name string, sel Selection) error {
	data, err := json.Marshal(sel)
	if err != nil {
		return fmt.Errorf("marshal selection: %w", err)
	}
	res, err := s.db.Exec(`UPDATE saved_outfits SET selection = ? WHERE name = ?`, string(data), name)
	if err != nil {
		return fmt.Errorf("update outfit %q: %w", name, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update outfit %q: %w", name, err)
	}
	if n == 0 {
		return fmt.Errorf("outfit %q not found", name)
	}
	return nil
}

// DeleteOutfit removes a saved outfit by name. Errors if absent.
func (s *Store) DeleteOutfit(name string) error {
	res, err := s.db.Exec(`DELETE FROM saved_outfits WHERE name = ?`, name)
	if err != nil {
		return fmt.Errorf("delete outfit %q: %w", name, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete outfit %q: %w", name, err)
	}
	if n == 0 {
		return fmt.Errorf("outfit %q not found", name)
	}
	return nil
}
