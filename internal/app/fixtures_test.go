package app

import (
	"fmt"
	"sync"

	"artistly/internal/domain/application"
	"artistly/internal/domain/catalog"
)

var (
	testCategories = []string{"singers", "dancers", "speakers", "djs"}
	testLocations  = []string{"Mumbai", "Delhi", "Pune"}
	testPrices     = []string{"₹50,000-1,00,000", "₹1,00,000-2,50,000", "₹2,50,000-5,00,000"}
)

// artistFromSeed builds an artist whose facets are drawn from small pools, so
// generated catalogs share values and filters actually match something.
func artistFromSeed(index, seed int) catalog.Artist {
	var categories []string
	for bit, category := range testCategories {
		if seed&(1<<bit) != 0 {
			categories = append(categories, category)
		}
	}
	return catalog.Artist{
		ID:         fmt.Sprintf("a%d", index),
		Name:       fmt.Sprintf("Artist %d", index),
		Category:   categories,
		Location:   testLocations[(seed>>4)%len(testLocations)],
		PriceRange: testPrices[(seed>>6)%len(testPrices)],
	}
}

func catalogFromSeeds(seeds []int) []catalog.Artist {
	artists := make([]catalog.Artist, 0, len(seeds))
	for i, seed := range seeds {
		artists = append(artists, artistFromSeed(i, seed))
	}
	return artists
}

// selectionFromSeed decodes a selection; location and price stay unset for the
// out-of-range index.
func selectionFromSeed(seed int) catalog.Selection {
	var selection catalog.Selection
	for bit, category := range testCategories {
		if seed&(1<<bit) != 0 {
			selection.Categories = append(selection.Categories, category)
		}
	}
	if idx := (seed >> 4) % (len(testLocations) + 1); idx < len(testLocations) {
		selection.Location = testLocations[idx]
	}
	if idx := (seed >> 6) % (len(testPrices) + 1); idx < len(testPrices) {
		selection.PriceRange = testPrices[idx]
	}
	return selection
}

type fakeRecorder struct {
	mu          sync.Mutex
	filters     []string
	submissions []application.State
	reviews     []application.ReviewStatus
}

func (r *fakeRecorder) FilterApplied(facets string, matches int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.filters = append(r.filters, fmt.Sprintf("%s=%d", facets, matches))
}

func (r *fakeRecorder) SubmissionFinished(state application.State) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.submissions = append(r.submissions, state)
}

func (r *fakeRecorder) ReviewDecided(status application.ReviewStatus) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reviews = append(r.reviews, status)
}

func validFields() application.Fields {
	return application.Fields{
		Name:       "Jordan Lee",
		Bio:        "Singer and composer performing live across India!!",
		Categories: []string{"singers"},
		Languages:  []string{"Hindi"},
		FeeRange:   "₹50,000-1,00,000",
		Location:   "Pune, Maharashtra",
	}
}
