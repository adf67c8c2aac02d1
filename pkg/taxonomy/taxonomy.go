package taxonomy

import (
	"sort"
	"strings"
)

// Category is a named set of negative terms. Terms are stored lowercase.
type Category struct {
	Name  string
	terms map[string]bool
}

// NewCategory creates a category from a term list
func NewCategory(name string, terms []string) Category {
	set := make(map[string]bool, len(terms))
	for _, t := range terms {
		set[strings.ToLower(t)] = true
	}
	return Category{Name: name, terms: set}
}

// Contains reports whether the category holds the given lowercase term
func (c Category) Contains(term string) bool {
	return c.terms[term]
}

// Taxonomy holds negative-term categories in a fixed declared order.
// Match results are deterministic: categories are tried in order and the
// lexicographically smallest intersecting term wins within a category.
type Taxonomy struct {
	categories []Category
}

// New creates a taxonomy from an ordered category list
func New(categories []Category) *Taxonomy {
	return &Taxonomy{categories: categories}
}

// Default returns a taxonomy with the built-in negative categories
func Default() *Taxonomy {
	return New(DefaultCategories())
}

// Match describes a negative-term hit for a keyword
type Match struct {
	Term     string `json:"term"`
	Category string `json:"category"`
}

// Check tokenizes text to a lowercase word set and returns the first
// category with a non-empty intersection. The matched term is the
// lexicographically smallest term in that intersection. Empty text never
// matches.
func (t *Taxonomy) Check(text string) (bool, Match) {
	words := strings.Fields(strings.ToLower(text))
	if len(words) == 0 {
		return false, Match{}
	}

	for _, cat := range t.categories {
		var hits []string
		seen := make(map[string]bool)
		for _, w := range words {
			if cat.Contains(w) && !seen[w] {
				hits = append(hits, w)
				seen[w] = true
			}
		}
		if len(hits) > 0 {
			sort.Strings(hits)
			return true, Match{Term: hits[0], Category: cat.Name}
		}
	}
	return false, Match{}
}

// Categories returns the category names in declared order
func (t *Taxonomy) Categories() []string {
	names := make([]string, 0, len(t.categories))
	for _, c := range t.categories {
		names = append(names, c.Name)
	}
	return names
}
