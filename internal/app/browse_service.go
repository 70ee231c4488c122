package app

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"artistly/internal/common"
	"artistly/internal/domain/browse"
	"artistly/internal/domain/catalog"
)

// BrowseView is what the presentation layer renders for a session.
type BrowseView struct {
	SessionID        common.UUID       `json:"sessionId"`
	Selection        catalog.Selection `json:"selection"`
	HasActiveFilters bool              `json:"hasActiveFilters"`
	Facets           catalog.FacetSet  `json:"facets"`
	Artists          []catalog.Artist  `json:"artists"`
	Count            int               `json:"count"`
}

type BrowseService struct {
	sessions browse.Repository
	catalog  *CatalogService
	ttl      time.Duration
	clock    func() time.Time
	logger   *slog.Logger
}

func NewBrowseService(sessions browse.Repository, catalogService *CatalogService, ttl time.Duration, logger *slog.Logger) *BrowseService {
	if logger == nil {
		logger = slog.Default()
	}
	return &BrowseService{sessions: sessions, catalog: catalogService, ttl: ttl, clock: time.Now, logger: logger}
}

// Open starts a session and seeds it from the deep-link signal, if any.
func (s *BrowseService) Open(ctx context.Context, signal string) (*BrowseView, error) {
	now := s.clock().UTC()
	if s.ttl > 0 {
		removed, err := s.sessions.DeleteIdle(ctx, now.Add(-s.ttl))
		if err != nil {
			return nil, err
		}
		if removed > 0 {
			s.logger.Debug("idle browse sessions purged", slog.Int("count", removed))
		}
	}
	signal = normalizeSignal(signal)
	selection, _ := SyncFromExternalSignal(catalog.Selection{}, signal)
	created, err := s.sessions.Create(ctx, browse.Session{Selection: selection, Signal: signal, LastSeen: now})
	if err != nil {
		return nil, err
	}
	return s.view(created), nil
}

func (s *BrowseService) View(ctx context.Context, id common.UUID) (*BrowseView, error) {
	session, err := s.sessions.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.sessions.Touch(ctx, id, s.clock().UTC()); err != nil {
		return nil, err
	}
	return s.view(session), nil
}

// Sync applies a deep-link signal once per change of the signal. Re-sending the
// signal already applied leaves later user edits alone.
func (s *BrowseService) Sync(ctx context.Context, id common.UUID, signal string) (*BrowseView, error) {
	signal = normalizeSignal(signal)
	return s.update(ctx, id, func(session *browse.Session) {
		if signal == session.Signal {
			return
		}
		session.Signal = signal
		if next, changed := SyncFromExternalSignal(session.Selection, signal); changed {
			session.Selection = next
		}
	})
}

// Select replaces the whole selection of a session.
func (s *BrowseService) Select(ctx context.Context, id common.UUID, selection catalog.Selection) (*BrowseView, error) {
	selection = selection.Normalize()
	return s.update(ctx, id, func(session *browse.Session) {
		session.Selection = selection
	})
}

func (s *BrowseService) ToggleCategory(ctx context.Context, id common.UUID, category string) (*BrowseView, error) {
	category = strings.TrimSpace(category)
	if category == "" || category == catalog.AllValues {
		return nil, common.NewValidationError("invalid category", map[string]string{"category": "category is required"})
	}
	return s.update(ctx, id, func(session *browse.Session) {
		session.Selection = session.Selection.Toggle(category)
	})
}

// Clear resets every facet to "match all".
func (s *BrowseService) Clear(ctx context.Context, id common.UUID) (*BrowseView, error) {
	return s.update(ctx, id, func(session *browse.Session) {
		session.Selection = catalog.Selection{}
	})
}

// update runs mutate under the store lock so concurrent edits of one session
// never overwrite each other.
func (s *BrowseService) update(ctx context.Context, id common.UUID, mutate func(*browse.Session)) (*BrowseView, error) {
	now := s.clock().UTC()
	updated, err := s.sessions.Update(ctx, id, func(session *browse.Session) error {
		mutate(session)
		session.LastSeen = now
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.view(updated), nil
}

// normalizeSignal maps the "all" category link to no signal.
func normalizeSignal(signal string) string {
	signal = strings.TrimSpace(signal)
	if signal == catalog.AllValues {
		return ""
	}
	return signal
}

func (s *BrowseService) view(session *browse.Session) *BrowseView {
	artists := s.catalog.Filter(session.Selection)
	selection := session.Selection.Clone()
	if selection.Categories == nil {
		selection.Categories = []string{}
	}
	return &BrowseView{
		SessionID:        session.ID,
		Selection:        selection,
		HasActiveFilters: !session.Selection.IsEmpty(),
		Facets:           s.catalog.Facets().Sorted(),
		Artists:          artists,
		Count:            len(artists),
	}
}
