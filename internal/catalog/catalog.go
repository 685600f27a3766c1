package catalog

import (
	"strings"

	"github.com/sahilm/fuzzy"
)

// Entry is one selectable style or CSS framework. IDs are 1-based and are
// what the user types at the prompt.
type Entry struct {
	ID          int
	Name        string
	Description string
}

var styles = []Entry{
	{ID: 1, Name: "Material Design", Description: "Modern, clean design following Google's Material principles"},
	{ID: 2, Name: "Minimalist", Description: "Minimal design focused on simplicity and function"},
	{ID: 3, Name: "Neomorphism", Description: "Soft, modern look with subtle shadow effects"},
	{ID: 4, Name: "Retro/Vintage", Description: "Retro design reminiscent of 80s-90s interfaces"},
	{ID: 5, Name: "Organic Design", Description: "Fluid design with organic, natural shapes"},
	{ID: 6, Name: "Glassmorphism", Description: "Frosted glass effect with background blur"},
	{ID: 7, Name: "Brutalist", Description: "Raw, bold design with strong contrasts"},
	{ID: 8, Name: "Cyberpunk", Description: "Futuristic style with neon and high-tech effects"},
}

var frameworks = []Entry{
	{ID: 1, Name: "Tailwind CSS", Description: "Utility-first framework for fast development"},
	{ID: 2, Name: "Bootstrap 5", Description: "The most popular CSS framework with ready-made components"},
	{ID: 3, Name: "Bulma", Description: "Modern Flexbox-based framework without JavaScript"},
	{ID: 4, Name: "Foundation", Description: "Professional framework with an advanced responsive grid"},
	{ID: 5, Name: "Custom CSS", Description: "Hand-written CSS for full control over the design"},
	{ID: 6, Name: "Sass/SCSS", Description: "CSS preprocessor for better code organization"},
	{ID: 7, Name: "CSS Modules", Description: "Component-scoped styles to avoid conflicts"},
	{ID: 8, Name: "Styled Components", Description: "CSS-in-JS for dynamic styles in React"},
}

// Styles returns the visual styles in ID order. The slice is a copy.
func Styles() []Entry {
	return append([]Entry(nil), styles...)
}

// Frameworks returns the CSS frameworks in ID order. The slice is a copy.
func Frameworks() []Entry {
	return append([]Entry(nil), frameworks...)
}

func Style(id int) (Entry, bool)     { return lookup(styles, id) }
func Framework(id int) (Entry, bool) { return lookup(frameworks, id) }

func lookup(entries []Entry, id int) (Entry, bool) {
	if id < 1 || id > len(entries) {
		return Entry{}, false
	}
	return entries[id-1], true
}

type source []Entry

func (s source) String(i int) string {
	return strings.ToLower(s[i].Name + " " + s[i].Description)
}

func (s source) Len() int { return len(s) }

// Search fuzzy-matches query against entry names and descriptions, best match
// first. An empty query returns entries unchanged.
func Search(entries []Entry, query string) []Entry {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return entries
	}

	matches := fuzzy.FindFrom(query, source(entries))
	results := make([]Entry, 0, len(matches))
	for _, m := range matches {
		results = append(results, entries[m.Index])
	}
	return results
}
