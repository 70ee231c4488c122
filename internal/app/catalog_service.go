package app

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"artistly/internal/common"
	"artistly/internal/domain/catalog"
)

// CatalogService serves the current catalog snapshot and its cached facets.
type CatalogService struct {
	mu         sync.RWMutex
	artists    []catalog.Artist
	categories []catalog.Category
	facets     catalog.FacetSet
	recorder   Recorder
	logger     *slog.Logger
}

func NewCatalogService(artists []catalog.Artist, categories []catalog.Category, recorder Recorder, logger *slog.Logger) *CatalogService {
	if logger == nil {
		logger = slog.Default()
	}
	s := &CatalogService{recorder: recorderOrNoop(recorder), logger: logger}
	s.categories = append([]catalog.Category(nil), categories...)
	s.Replace(artists)
	return s
}

// LoadCatalogService builds the service from a catalog source.
func LoadCatalogService(ctx context.Context, source catalog.Source, recorder Recorder, logger *slog.Logger) (*CatalogService, error) {
	artists, err := source.Artists(ctx)
	if err != nil {
		return nil, fmt.Errorf("load artists: %w", err)
	}
	categories, err := source.Categories(ctx)
	if err != nil {
		return nil, fmt.Errorf("load categories: %w", err)
	}
	return NewCatalogService(artists, categories, recorder, logger), nil
}

// Replace swaps the catalog and recomputes its facets.
func (s *CatalogService) Replace(artists []catalog.Artist) {
	snapshot := append([]catalog.Artist(nil), artists...)
	facets := ExtractFacets(snapshot)
	s.mu.Lock()
	s.artists = snapshot
	s.facets = facets
	s.mu.Unlock()
	s.logger.Info("catalog loaded",
		slog.Int("artists", len(snapshot)),
		slog.Int("categories", len(facets.Categories)),
		slog.Int("locations", len(facets.Locations)),
		slog.Int("price_ranges", len(facets.PriceRanges)))
}

func (s *CatalogService) Artists() []catalog.Artist {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]catalog.Artist(nil), s.artists...)
}

func (s *CatalogService) Categories() []catalog.Category {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]catalog.Category(nil), s.categories...)
}

func (s *CatalogService) Facets() catalog.FacetSet {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return catalog.FacetSet{
		Categories:  append([]string{}, s.facets.Categories...),
		Locations:   append([]string{}, s.facets.Locations...),
		PriceRanges: append([]string{}, s.facets.PriceRanges...),
	}
}

func (s *CatalogService) Get(id string) (*catalog.Artist, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, artist := range s.artists {
		if artist.ID == id {
			found := artist
			return &found, nil
		}
	}
	return nil, common.NewError(common.CodeNotFound, "artist not found", nil)
}

// Filter applies a normalized selection to the current snapshot.
func (s *CatalogService) Filter(selection catalog.Selection) []catalog.Artist {
	selection = selection.Normalize()
	s.mu.RLock()
	matches := ApplyFilters(s.artists, selection)
	s.mu.RUnlock()
	s.recorder.FilterApplied(activeFacets(selection), len(matches))
	return matches
}

// activeFacets names the facets a selection constrains, for low-cardinality labels.
func activeFacets(selection catalog.Selection) string {
	parts := make([]string, 0, 3)
	if len(selection.Categories) > 0 {
		parts = append(parts, "category")
	}
	if selection.Location != "" {
		parts = append(parts, "location")
	}
	if selection.PriceRange != "" {
		parts = append(parts, "price")
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, "+")
}
