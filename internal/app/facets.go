package app

import "artistly/internal/domain/catalog"

// ExtractFacets derives the distinct category tags, locations and price tiers of
// the catalog, each value listed once in first-seen order.
func ExtractFacets(artists []catalog.Artist) catalog.FacetSet {
	facets := catalog.FacetSet{
		Categories:  []string{},
		Locations:   []string{},
		PriceRanges: []string{},
	}
	seenCategories := make(map[string]struct{})
	seenLocations := make(map[string]struct{})
	seenPrices := make(map[string]struct{})
	for _, artist := range artists {
		for _, tag := range artist.Category {
			facets.Categories = appendDistinct(facets.Categories, seenCategories, tag)
		}
		facets.Locations = appendDistinct(facets.Locations, seenLocations, artist.Location)
		facets.PriceRanges = appendDistinct(facets.PriceRanges, seenPrices, artist.PriceRange)
	}
	return facets
}

func appendDistinct(values []string, seen map[string]struct{}, value string) []string {
	if _, ok := seen[value]; ok {
		return values
	}
	seen[value] = struct{}{}
	return append(values, value)
}
