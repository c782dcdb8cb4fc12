package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"attire/internal/wardrobe"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("135"))
	slotStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("243")).Width(12)
	emptyStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Italic(true)
	errStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	boxStyle   = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("135")).
			Padding(0, 1)
)

// describeItem renders one item as a single line.
func describeItem(it *wardrobe.Item) string {
	return fmt.Sprintf("%s %s %s (%s)",
		titleCase(it.Color), it.Pattern, it.Category, it.Formality)
}

// titleCase upper-cases the first letter of an ASCII word.
func titleCase(s string) string {
	if s == "" {
		return s
	}
	s = strings.ToLower(s)
	return strings.ToUpper(s[:1]) + s[1:]
}

// renderOutfit renders an assembled outfit as a bordered panel.
func renderOutfit(o *wardrobe.Outfit, occasion string) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("Outfit — %s", occasion)))
	b.WriteString("\n")

	line := func(label string, it *wardrobe.Item) {
		b.WriteString(slotStyle.Render(label))
		if it == nil {
			b.WriteString(emptyStyle.Render("—"))
		} else {
			b.WriteString(describeItem(it))
		}
		b.WriteString("\n")
	}

	if o.Dress != nil {
		line("dress", o.Dress)
	} else {
		line("top", o.Top)
		line("bottom", o.Bottom)
	}
	line("outerwear", o.Outerwear)
	line("shoes", o.Shoes)

	b.WriteString(slotStyle.Render("accessories"))
	if len(o.Accessories) == 0 {
		b.WriteString(emptyStyle.Render("—"))
	} else {
		descs := make([]string, len(o.Accessories))
		for i, a := range o.Accessories {
			descs[i] = describeItem(a)
		}
		b.WriteString(strings.Join(descs, ", "))
	}
	b.WriteString("\n")

	return boxStyle.Render(strings.TrimRight(b.String(), "\n")) + "\n"
}

// renderCatalog renders the wardrobe grouped by category.
func renderCatalog(cat *wardrobe.Catalog) string {
	var b strings.Builder
	for _, c := range wardrobe.Categories() {
		items := cat.ItemsOf(c)
		if len(items) == 0 {
			continue
		}
		b.WriteString(titleStyle.Render(string(c)))
		b.WriteString("\n")
		for _, it := range items {
			b.WriteString(fmt.Sprintf("  %4d  %s\n", it.ID, describeItem(it)))
		}
	}
	return b.String()
}
