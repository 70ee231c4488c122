package dataset

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"artistly/internal/domain/catalog"
)

func TestWatcherReloadsOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "artists.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`[{id: "1", name: First}]`), 0o600))

	var mu sync.Mutex
	var loaded [][]catalog.Artist
	watcher := NewWatcher(path, 20*time.Millisecond, func(artists []catalog.Artist) {
		mu.Lock()
		defer mu.Unlock()
		loaded = append(loaded, artists)
	}, nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- watcher.Run(ctx) }()
	// Give the watcher time to register before writing.
	time.Sleep(100 * time.Millisecond)

	require.NoError(t, os.WriteFile(path, []byte(`[{id: "1", name: First}, {id: "2", name: Second}]`), 0o600))

	assert.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(loaded) > 0 && len(loaded[len(loaded)-1]) == 2
	}, 5*time.Second, 20*time.Millisecond)

	cancel()
	require.NoError(t, <-done)
}

func TestWatcherKeepsCatalogOnBadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "artists.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`[{id: "1", name: First}]`), 0o600))

	calls := make(chan struct{}, 10)
	watcher := NewWatcher(path, 20*time.Millisecond, func([]catalog.Artist) { calls <- struct{}{} }, nil)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = watcher.Run(ctx) }()
	time.Sleep(100 * time.Millisecond)

	require.NoError(t, os.WriteFile(path, []byte(`[{id: "1"}]`), 0o600))

	select {
	case <-calls:
		t.Fatal("invalid catalog must not be handed over")
	case <-time.After(300 * time.Millisecond):
	}
}
