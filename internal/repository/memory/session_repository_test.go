package memory

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"artistly/internal/common"
	"artistly/internal/domain/browse"
	"artistly/internal/domain/catalog"
)

func TestSessionRepositoryIsolatesCallers(t *testing.T) {
	repo := NewSessionRepository()
	ctx := context.Background()
	created, err := repo.Create(ctx, browse.Session{Selection: catalog.Selection{Categories: []string{"singers"}}})
	require.NoError(t, err)

	created.Selection.Categories[0] = "mutated"
	stored, err := repo.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"singers"}, stored.Selection.Categories)

	updated, err := repo.Update(ctx, created.ID, func(s *browse.Session) error {
		s.Selection.Location = "Pune"
		return nil
	})
	require.NoError(t, err)
	updated.Selection.Categories[0] = "mutated"
	again, err := repo.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Pune", again.Selection.Location)
	assert.Equal(t, []string{"singers"}, again.Selection.Categories)
}

func TestSessionRepositoryUpdateErrorKeepsSession(t *testing.T) {
	repo := NewSessionRepository()
	ctx := context.Background()
	created, err := repo.Create(ctx, browse.Session{Signal: "singers"})
	require.NoError(t, err)
	boom := errors.New("boom")

	_, err = repo.Update(ctx, created.ID, func(s *browse.Session) error {
		s.Signal = "djs"
		return boom
	})

	assert.ErrorIs(t, err, boom)
	stored, err := repo.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "singers", stored.Signal)
}

func TestSessionRepositoryUpdateUnknown(t *testing.T) {
	repo := NewSessionRepository()

	_, err := repo.Update(context.Background(), common.NewUUID(), func(*browse.Session) error { return nil })

	assert.True(t, common.Is(err, common.CodeNotFound))
}

func TestSessionRepositoryConcurrentUpdates(t *testing.T) {
	repo := NewSessionRepository()
	ctx := context.Background()
	created, err := repo.Create(ctx, browse.Session{})
	require.NoError(t, err)
	categories := []string{"singers", "dancers", "speakers", "djs", "bands", "comedians", "magicians", "poets"}

	var wg sync.WaitGroup
	for _, category := range categories {
		wg.Add(1)
		go func(category string) {
			defer wg.Done()
			_, err := repo.Update(ctx, created.ID, func(s *browse.Session) error {
				s.Selection = s.Selection.Toggle(category)
				return nil
			})
			assert.NoError(t, err)
		}(category)
	}
	wg.Wait()

	stored, err := repo.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.ElementsMatch(t, categories, stored.Selection.Categories)
}

func TestSessionRepositoryDeleteIdle(t *testing.T) {
	repo := NewSessionRepository()
	ctx := context.Background()
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	old, err := repo.Create(ctx, browse.Session{LastSeen: base})
	require.NoError(t, err)
	fresh, err := repo.Create(ctx, browse.Session{LastSeen: base})
	require.NoError(t, err)
	require.NoError(t, repo.Touch(ctx, fresh.ID, base.Add(time.Hour)))

	removed, err := repo.DeleteIdle(ctx, base.Add(time.Minute))

	require.NoError(t, err)
	assert.Equal(t, 1, removed)
	_, err = repo.Get(ctx, old.ID)
	assert.True(t, common.Is(err, common.CodeNotFound))
	_, err = repo.Get(ctx, fresh.ID)
	assert.NoError(t, err)
}
