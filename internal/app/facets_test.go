package app

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"

	"artistly/internal/domain/catalog"
)

func TestExtractFacetsFirstSeenOrder(t *testing.T) {
	artists := []catalog.Artist{
		{ID: "1", Category: []string{"singers", "dancers"}, Location: "Mumbai", PriceRange: "₹50,000-1,00,000"},
		{ID: "2", Category: []string{"dancers"}, Location: "Delhi", PriceRange: "₹1,00,000-2,50,000"},
		{ID: "3", Category: []string{"djs", "singers"}, Location: "Mumbai", PriceRange: "₹50,000-1,00,000"},
	}

	facets := ExtractFacets(artists)

	assert.Equal(t, []string{"singers", "dancers", "djs"}, facets.Categories)
	assert.Equal(t, []string{"Mumbai", "Delhi"}, facets.Locations)
	assert.Equal(t, []string{"₹50,000-1,00,000", "₹1,00,000-2,50,000"}, facets.PriceRanges)
}

func TestExtractFacetsEmptyCatalog(t *testing.T) {
	facets := ExtractFacets(nil)

	assert.NotNil(t, facets.Categories)
	assert.Empty(t, facets.Categories)
	assert.Empty(t, facets.Locations)
	assert.Empty(t, facets.PriceRanges)
}

func TestFacetSetSortedKeepsPriceOrder(t *testing.T) {
	facets := catalog.FacetSet{
		Categories:  []string{"speakers", "Djs", "dancers"},
		Locations:   []string{"Pune", "delhi", "Mumbai"},
		PriceRanges: []string{"₹10,00,000+", "₹50,000-1,00,000"},
	}

	sorted := facets.Sorted()

	assert.Equal(t, []string{"dancers", "Djs", "speakers"}, sorted.Categories)
	assert.Equal(t, []string{"delhi", "Mumbai", "Pune"}, sorted.Locations)
	assert.Equal(t, facets.PriceRanges, sorted.PriceRanges)
	assert.Equal(t, []string{"speakers", "Djs", "dancers"}, facets.Categories, "input must not be reordered")
}

func TestExtractFacetsDistinctProperty(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("each distinct value appears exactly once", prop.ForAll(
		func(seeds []int) bool {
			artists := catalogFromSeeds(seeds)
			facets := ExtractFacets(artists)

			wantCategories := map[string]struct{}{}
			wantLocations := map[string]struct{}{}
			wantPrices := map[string]struct{}{}
			for _, artist := range artists {
				for _, category := range artist.Category {
					wantCategories[category] = struct{}{}
				}
				wantLocations[artist.Location] = struct{}{}
				wantPrices[artist.PriceRange] = struct{}{}
			}
			return sameSet(facets.Categories, wantCategories) &&
				sameSet(facets.Locations, wantLocations) &&
				sameSet(facets.PriceRanges, wantPrices)
		},
		gen.SliceOf(gen.IntRange(0, 255)),
	))

	properties.Property("duplicating and reversing the catalog yields the same value sets", prop.ForAll(
		func(seeds []int) bool {
			artists := catalogFromSeeds(seeds)
			doubled := append(append([]catalog.Artist{}, artists...), artists...)
			for i, j := 0, len(doubled)-1; i < j; i, j = i+1, j-1 {
				doubled[i], doubled[j] = doubled[j], doubled[i]
			}
			a := ExtractFacets(artists)
			b := ExtractFacets(doubled)
			return assert.ElementsMatch(t, a.Categories, b.Categories) &&
				assert.ElementsMatch(t, a.Locations, b.Locations) &&
				assert.ElementsMatch(t, a.PriceRanges, b.PriceRanges)
		},
		gen.SliceOf(gen.IntRange(0, 255)),
	))

	properties.TestingRun(t)
}

func sameSet(values []string, want map[string]struct{}) bool {
	if len(values) != len(want) {
		return false
	}
	seen := map[string]struct{}{}
	for _, value := range values {
		if _, ok := want[value]; !ok {
			return false
		}
		if _, dup := seen[value]; dup {
			return false
		}
		seen[value] = struct{}{}
	}
	return true
}
