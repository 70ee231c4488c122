package app

import "artistly/internal/domain/catalog"

// ApplyFilters returns the artists matching selection in catalog order. The result
// is always a fresh slice, also when the selection is empty.
func ApplyFilters(artists []catalog.Artist, selection catalog.Selection) []catalog.Artist {
	matches := make([]catalog.Artist, 0, len(artists))
	for _, artist := range artists {
		if Matches(artist, selection) {
			matches = append(matches, artist)
		}
	}
	return matches
}

// Matches ANDs the three facets; selected categories are ORed.
func Matches(artist catalog.Artist, selection catalog.Selection) bool {
	return categoryMatch(artist, selection.Categories) &&
		(selection.Location == "" || artist.Location == selection.Location) &&
		(selection.PriceRange == "" || artist.PriceRange == selection.PriceRange)
}

func categoryMatch(artist catalog.Artist, selected []string) bool {
	if len(selected) == 0 {
		return true
	}
	for _, category := range selected {
		if artist.HasCategory(category) {
			return true
		}
	}
	return false
}
