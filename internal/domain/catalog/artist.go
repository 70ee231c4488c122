package catalog

import (
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

type Artist struct {
	ID         string   `json:"id" yaml:"id"`
	Name       string   `json:"name" yaml:"name"`
	Category   []string `json:"category" yaml:"category"`
	Bio        string   `json:"bio" yaml:"bio"`
	PriceRange string   `json:"priceRange" yaml:"priceRange"`
	Location   string   `json:"location" yaml:"location"`
	Languages  []string `json:"languages" yaml:"languages"`
	Image      string   `json:"image" yaml:"image"`
	Rating     float64  `json:"rating" yaml:"rating"`
}

// HasCategory reports whether the artist is tagged with category.
func (a Artist) HasCategory(category string) bool {
	for _, tag := range a.Category {
		if tag == category {
			return true
		}
	}
	return false
}

// Category is a taxonomy record used by the landing surface to deep-link into browse.
type Category struct {
	ID          string `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Icon        string `json:"icon" yaml:"icon"`
	Description string `json:"description" yaml:"description"`
}

// FacetSet holds the distinct filterable values of a catalog in first-seen order.
type FacetSet struct {
	Categories  []string `json:"categories"`
	Locations   []string `json:"locations"`
	PriceRanges []string `json:"priceRanges"`
}

// Sorted returns a copy ordered for display. Price tiers keep catalog order since
// their labels do not sort meaningfully as text.
func (f FacetSet) Sorted() FacetSet {
	col := collate.New(language.English, collate.IgnoreCase)
	out := FacetSet{
		Categories:  append([]string{}, f.Categories...),
		Locations:   append([]string{}, f.Locations...),
		PriceRanges: append([]string{}, f.PriceRanges...),
	}
	col.SortStrings(out.Categories)
	col.SortStrings(out.Locations)
	return out
}
