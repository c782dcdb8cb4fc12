package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"time"

	"attire/internal/closet"
	"attire/internal/rules"
	"attire/internal/settings"
	"attire/internal/store"
	"attire/internal/stylist"
	"attire/internal/wardrobe"
)

// command describes a CLI subcommand.
type command struct {
	name  string
	short string
	usage string
	long  string
	run   func(args []string) error
}

var commands = []command{
	{
		name:  "add",
		short: "Add a clothing item to the wardrobe",
		usage: "attire add",
		long: `Add a new clothing item.

Prompts for a photo path, category, color, pattern, and formality.
The photo is copied into ~/.attire/photos/ and the item is stored in
the wardrobe database.
`,
		run: runAdd,
	},
	{
		name:  "list",
		short: "List wardrobe items",
		usage: "attire list",
		long: `Print every wardrobe item with its id, category, color,
pattern, and formality.
`,
		run: runList,
	},
	{
		name:  "remove",
		short: "Remove a wardrobe item",
		usage: "attire remove <id>",
		long: `Remove an item by id. Its imported photo is deleted as well.

Saved outfits that reference the item are kept; wearing one later
reports the missing item instead of silently repairing the outfit.
`,
		run: runRemove,
	},
	{
		name:  "suggest",
		short: "Suggest an outfit for an occasion",
		usage: "attire suggest [occasion]",
		long: `Assemble an outfit from the wardrobe that satisfies the style
rules for the given occasion (default "Any"), then offer to save it
under a name.

Run 'attire occasions' to see the known occasion labels.
`,
		run: runSuggest,
	},
	{
		name:  "occasions",
		short: "List known occasions",
		usage: "attire occasions",
		long: `Print the occasion labels the suggest command understands,
from least to most formal.
`,
		run: runOccasions,
	},
	{
		name:  "save",
		short: "Save a suggested outfit under a name",
		usage: "attire save <name> [occasion]",
		long: `Suggest an outfit for the occasion (default "Any") and save it
immediately under the given name.
`,
		run: runSave,
	},
	{
		name:  "outfits",
		short: "List saved outfits",
		usage: "attire outfits",
		long: `Print the saved outfits, newest first.
`,
		run: runOutfits,
	},
	{
		name:  "wear",
		short: "Show a saved outfit",
		usage: "attire wear <name>",
		long: `Resolve a saved outfit against the current wardrobe and print
it. Fails if any referenced item has since been removed.
`,
		run: runWear,
	},
	{
		name:  "swap",
		short: "Replace one slot of a saved outfit",
		usage: "attire swap <name> <slot>",
		long: `Replace a single slot (top, bottom, dress, outerwear, shoes, or
accessories) in a saved outfit. Lists the wardrobe items that stay
compatible with the rest of the outfit and prompts for a choice.

Swapping in a dress clears the top and bottom, and vice versa.
`,
		run: runSwap,
	},
	{
		name:  "unsave",
		short: "Delete a saved outfit",
		usage: "attire unsave <name>",
		long: `Delete a saved outfit by name. Wardrobe items are untouched.
`,
		run: runUnsave,
	},
}

func printUsage(w io.Writer) {
	fmt.Fprintf(w, "attire — wardrobe catalog and outfit suggestions\n\n")
	fmt.Fprintf(w, "Usage:\n  attire <command> [arguments]\n\n")
	fmt.Fprintf(w, "Commands:\n")
	for _, cmd := range commands {
		fmt.Fprintf(w, "  %-10s %s\n", cmd.name, cmd.short)
	}
	fmt.Fprintf(w, "\nRun 'attire help <command>' for details on a specific command.\n")
}

func printCommandHelp(w io.Writer, name string) {
	for _, cmd := range commands {
		if cmd.name == name {
			fmt.Fprintf(w, "Usage: %s\n\n%s", cmd.usage, cmd.long)
			return
		}
	}
	fmt.Fprintf(w, "attire: unknown command %q\n\nRun 'attire help' for usage.\n", name)
}

func dispatch(args []string) error {
	if len(args) == 0 || args[0] == "--help" || args[0] == "-h" {
		printUsage(os.Stdout)
		return nil
	}
	if args[0] == "help" {
		if len(args) >= 2 {
			printCommandHelp(os.Stdout, args[1])
		} else {
			printUsage(os.Stdout)
		}
		return nil
	}
	for _, cmd := range commands {
		if cmd.name == args[0] {
			return cmd.run(args[1:])
		}
	}
	return fmt.Errorf("unknown command %q\n\nRun 'attire help' for usage.", args[0])
}

// ---------------------------------------------------------------------------
// Shared setup
// ---------------------------------------------------------------------------

// env bundles the opened closet, database, catalog snapshot, and stylist
// that most commands need.
type env struct {
	closet  *closet.Closet
	store   *store.Store
	catalog *wardrobe.Catalog
	stylist *stylist.Stylist
}

func openEnv() (*env, error) {
	c, err := closet.Open()
	if err != nil {
		return nil, err
	}
	st, err := store.Open(c.DBPath())
	if err != nil {
		return nil, err
	}
	items, err := st.ListItems()
	if err != nil {
		st.Close()
		return nil, err
	}
	cfg, err := settings.Load(c.SettingsPath())
	if err != nil {
		st.Close()
		return nil, err
	}
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	sty := stylist.New(rules.NewEngine(cfg.Tables()), rng)
	sty.SetMaxAttempts(cfg.Attempts())
	return &env{
		closet:  c,
		store:   st,
		catalog: wardrobe.NewCatalog(items),
		stylist: sty,
	}, nil
}

func (e *env) close() {
	e.store.Close()
}

// ---------------------------------------------------------------------------
// add
// ---------------------------------------------------------------------------

// addQuestions builds the add flow. Category and formality are validated at
// input time so a typo is caught before the photo gets imported.
func addQuestions() []question {
	return []question{
		{key: "photo", prompt: "Photo path", validate: required("photo path")},
		{key: "category", prompt: "Category (Top, Bottom, Dress, Outerwear, Accessory, Shoes)", validate: validCategory},
		{key: "color", prompt: "Main color", validate: required("color")},
		{key: "pattern", prompt: "Pattern (Solid, Striped, Floral, Plaid, Polka Dot, Geometric, Other)", validate: required("pattern")},
		{key: "formality", prompt: "Formality (Casual, Smart Casual, Semi-Formal, Formal)", validate: validFormality},
	}
}

func required(field string) func(string) error {
	return func(s string) error {
		if s == "" {
			return fmt.Errorf("%s must not be empty", field)
		}
		return nil
	}
}

func validCategory(s string) error {
	_, err := wardrobe.ParseCategory(s)
	return err
}

func validFormality(s string) error {
	for label := range rules.DefaultTables().FormalityRanks {
		if strings.EqualFold(s, label) {
			return nil
		}
	}
	return fmt.Errorf("unknown formality %q", s)
}

func runAdd(args []string) error {
	e, err := openEnv()
	if err != nil {
		return err
	}
	defer e.close()

	answers, err := promptQuestions(addQuestions())
	if err != nil {
		return fmt.Errorf("prompt: %w", err)
	}

	cat, err := wardrobe.ParseCategory(strings.TrimSpace(answers["category"]))
	if err != nil {
		return err
	}
	photo, err := e.closet.ImportPhoto(strings.TrimSpace(answers["photo"]), string(cat))
	if err != nil {
		return err
	}
	item := wardrobe.Item{
		Category:  cat,
		Color:     strings.TrimSpace(answers["color"]),
		Pattern:   strings.TrimSpace(answers["pattern"]),
		Formality: strings.TrimSpace(answers["formality"]),
		PhotoPath: photo,
	}
	id, err := e.store.AddItem(item)
	if err != nil {
		// Do not leave an orphaned photo behind a failed insert.
		if rmErr := e.closet.RemovePhoto(photo); rmErr != nil {
			log.Printf("remove photo %s: %v", photo, rmErr)
		}
		return err
	}
	fmt.Printf("added %s (id %d)\n", describeItem(&item), id)
	return nil
}

// ---------------------------------------------------------------------------
// list
// ---------------------------------------------------------------------------

func runList(args []string) error {
	e, err := openEnv()
	if err != nil {
		return err
	}
	defer e.close()

	if e.catalog.Len() == 0 {
		fmt.Println("wardrobe is empty — run 'attire add' first")
		return nil
	}
	fmt.Print(renderCatalog(e.catalog))
	return nil
}

// ---------------------------------------------------------------------------
// remove
// ---------------------------------------------------------------------------

func runRemove(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: attire remove <id>")
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid item id %q", args[0])
	}

	e, err := openEnv()
	if err != nil {
		return err
	}
	defer e.close()

	photo, err := e.store.DeleteItem(id)
	if err != nil {
		return err
	}
	if err := e.closet.RemovePhoto(photo); err != nil {
		return err
	}
	fmt.Printf("removed item %d\n", id)
	return nil
}

// ---------------------------------------------------------------------------
// suggest / save
// ---------------------------------------------------------------------------

func occasionArg(args []string) string {
	if len(args) > 0 {
		return strings.Join(args, " ")
	}
	return "Any"
}

func runSuggest(args []string) error {
	e, err := openEnv()
	if err != nil {
		return err
	}
	defer e.close()

	occasion := occasionArg(args)
	outfit, err := e.stylist.Suggest(e.catalog, occasion)
	if err != nil {
		return suggestionError(err, occasion)
	}
	fmt.Print(renderOutfit(outfit, occasion))

	answers, err := promptQuestions([]question{
		{key: "name", prompt: "Save as (leave blank to skip)"},
	})
	if err != nil {
		return fmt.Errorf("prompt: %w", err)
	}
	name := strings.TrimSpace(answers["name"])
	if name == "" {
		return nil
	}
	if _, err := e.store.SaveOutfit(name, occasion, store.NewSelection(outfit)); err != nil {
		return err
	}
	fmt.Printf("saved outfit %q\n", name)
	return nil
}

func runSave(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: attire save <name> [occasion]")
	}
	name := args[0]

	e, err := openEnv()
	if err != nil {
		return err
	}
	defer e.close()

	occasion := occasionArg(args[1:])
	outfit, err := e.stylist.Suggest(e.catalog, occasion)
	if err != nil {
		return suggestionError(err, occasion)
	}
	fmt.Print(renderOutfit(outfit, occasion))
	if _, err := e.store.SaveOutfit(name, occasion, store.NewSelection(outfit)); err != nil {
		return err
	}
	fmt.Printf("saved outfit %q\n", name)
	return nil
}

// suggestionError turns the stylist's no-result outcomes into actionable
// CLI messages.
func suggestionError(err error, occasion string) error {
	switch {
	case errors.Is(err, stylist.ErrEmptyCatalog):
		return fmt.Errorf("wardrobe is empty — run 'attire add' first")
	case errors.Is(err, stylist.ErrNoSuitableOutfit):
		return fmt.Errorf("no suitable outfit found for %q — try adding items or a less strict occasion", occasion)
	default:
		return err
	}
}

func runOccasions(args []string) error {
	e, err := openEnv()
	if err != nil {
		return err
	}
	defer e.close()

	for _, label := range e.stylist.Engine().Occasions() {
		fmt.Println(label)
	}
	return nil
}

// ---------------------------------------------------------------------------
// outfits / wear / unsave
// ---------------------------------------------------------------------------

func runOutfits(args []string) error {
	e, err := openEnv()
	if err != nil {
		return err
	}
	defer e.close()

	outfits, err := e.store.ListOutfits()
	if err != nil {
		return err
	}
	if len(outfits) == 0 {
		fmt.Println("no saved outfits")
		return nil
	}
	for _, so := range outfits {
		fmt.Printf("%-20s %-16s %s\n", so.Name, so.Occasion, so.CreatedAt.Local().Format("2006-01-02 15:04"))
	}
	return nil
}

func runWear(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: attire wear <name>")
	}

	e, err := openEnv()
	if err != nil {
		return err
	}
	defer e.close()

	so, err := e.store.GetOutfit(args[0])
	if err != nil {
		return err
	}
	outfit, err := so.Selection.Resolve(e.catalog)
	if err != nil {
		if errors.Is(err, store.ErrDanglingItem) {
			return fmt.Errorf("outfit %q is no longer complete: %w", so.Name, err)
		}
		return err
	}
	fmt.Print(renderOutfit(outfit, so.Occasion))
	return nil
}

func runUnsave(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: attire unsave <name>")
	}

	e, err := openEnv()
	if err != nil {
		return err
	}
	defer e.close()

	if err := e.store.DeleteOutfit(args[0]); err != nil {
		return err
	}
	fmt.Printf("deleted outfit %q\n", args[0])
	return nil
}

// ---------------------------------------------------------------------------
// swap
// ---------------------------------------------------------------------------

func runSwap(args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: attire swap <name> <slot>")
	}
	name := args[0]
	slot, err := wardrobe.ParseSlot(args[1])
	if err != nil {
		return err
	}

	e, err := openEnv()
	if err != nil {
		return err
	}
	defer e.close()

	so, err := e.store.GetOutfit(name)
	if err != nil {
		return err
	}
	outfit, err := so.Selection.Resolve(e.catalog)
	if err != nil {
		return err
	}

	candidates := e.stylist.CompatibleReplacements(e.catalog, outfit, slot, so.Occasion)
	if len(candidates) == 0 {
		return fmt.Errorf("no compatible %s in the wardrobe for outfit %q", slot, name)
	}

	fmt.Printf("compatible choices for %s:\n", slot)
	for i, it := range candidates {
		fmt.Printf("  %d. %s\n", i+1, describeItem(it))
	}
	answers, err := promptQuestions([]question{
		{key: "choice", prompt: fmt.Sprintf("Choice (1-%d)", len(candidates))},
	})
	if err != nil {
		return fmt.Errorf("prompt: %w", err)
	}
	n, err := strconv.Atoi(strings.TrimSpace(answers["choice"]))
	if err != nil || n < 1 || n > len(candidates) {
		return fmt.Errorf("invalid choice %q", answers["choice"])
	}
	pick := candidates[n-1]

	// Candidates were pre-validated, but the swap is gated on the full
	// whole-outfit check all the same.
	if !e.stylist.ValidateReplacement(outfit, slot, pick, so.Occasion) {
		return fmt.Errorf("%s is not compatible with outfit %q", describeItem(pick), name)
	}
	e.stylist.Replace(outfit, slot, pick)

	if err := e.store.UpdateOutfit(name, store.NewSelection(outfit)); err != nil {
		return err
	}
	fmt.Print(renderOutfit(outfit, so.Occasion))
	fmt.Printf("updated outfit %q\n", name)
	return nil
}

func main() {
	if err := dispatch(os.Args[1:]); err != nil {
		log.Fatal(err)
	}
}
