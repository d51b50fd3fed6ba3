package watcher

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brightsideapp/brightside-server/internal/store"
)

func writeSeedFile(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "seed.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const minimalSeed = `{
	"businesses": [
		{"id": "biz-0001", "name": "Test Cafe", "category": "food"}
	],
	"reviews": [],
	"deals": []
}`

func TestNew_MissingFile(t *testing.T) {
	_, err := New("/nonexistent/seed.json", 0, slog.New(slog.DiscardHandler))
	assert.Error(t, err)
}

func TestWatcher_EmitsAfterSettle(t *testing.T) {
	dir := t.TempDir()
	path := writeSeedFile(t, dir, minimalSeed)

	w, err := New(path, 50*time.Millisecond, slog.New(slog.DiscardHandler))
	require.NoError(t, err)
	defer w.Stop() //nolint:errcheck // Test cleanup

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Start(ctx) //nolint:errcheck // Test goroutine

	// Give the watch loop a moment to start before writing.
	time.Sleep(50 * time.Millisecond)
	require.NoError(t, os.WriteFile(path, []byte(minimalSeed), 0o644))

	select {
	case event := <-w.Events():
		assert.Equal(t, path, event.Path)
		assert.Equal(t, int64(len(minimalSeed)), event.Size)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for settle event")
	}
}

func TestWatcher_IgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := writeSeedFile(t, dir, minimalSeed)

	w, err := New(path, 50*time.Millisecond, slog.New(slog.DiscardHandler))
	require.NoError(t, err)
	defer w.Stop() //nolint:errcheck // Test cleanup

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Start(ctx) //nolint:errcheck // Test goroutine

	time.Sleep(50 * time.Millisecond)
	other := filepath.Join(dir, "other.txt")
	require.NoError(t, os.WriteFile(other, []byte("noise"), 0o644))

	select {
	case event := <-w.Events():
		t.Fatalf("unexpected event for %s", event.Path)
	case <-time.After(300 * time.Millisecond):
	}
}

func TestLoadSeedFile(t *testing.T) {
	dir := t.TempDir()
	path := writeSeedFile(t, dir, minimalSeed)

	data, err := LoadSeedFile(path)
	require.NoError(t, err)
	require.Len(t, data.Businesses, 1)
	assert.Equal(t, "biz-0001", data.Businesses[0].ID)
}

func TestLoadSeedFile_Invalid(t *testing.T) {
	dir := t.TempDir()

	t.Run("malformed JSON", func(t *testing.T) {
		path := writeSeedFile(t, dir, "{not json")
		_, err := LoadSeedFile(path)
		assert.Error(t, err)
	})

	t.Run("no businesses", func(t *testing.T) {
		path := writeSeedFile(t, dir, `{"businesses": [], "reviews": [], "deals": []}`)
		_, err := LoadSeedFile(path)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "no businesses")
	})
}

type fakeSeedStore struct {
	loaded chan store.SeedData
}

func (f *fakeSeedStore) LoadSeedData(_ context.Context, data store.SeedData) error {
	f.loaded <- data
	return nil
}

func TestReloader_ReloadsOnChange(t *testing.T) {
	dir := t.TempDir()
	path := writeSeedFile(t, dir, minimalSeed)

	w, err := New(path, 50*time.Millisecond, slog.New(slog.DiscardHandler))
	require.NoError(t, err)
	defer w.Stop() //nolint:errcheck // Test cleanup

	fake := &fakeSeedStore{loaded: make(chan store.SeedData, 1)}
	reloader := NewReloader(w, fake, slog.New(slog.DiscardHandler))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go reloader.Run(ctx) //nolint:errcheck // Test goroutine

	time.Sleep(50 * time.Millisecond)
	updated := `{
		"businesses": [
			{"id": "biz-0002", "name": "New Spot", "category": "food"}
		],
		"reviews": [],
		"deals": []
	}`
	require.NoError(t, os.WriteFile(path, []byte(updated), 0o644))

	select {
	case data := <-fake.loaded:
		require.Len(t, data.Businesses, 1)
		assert.Equal(t, "biz-0002", data.Businesses[0].ID)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for reload")
	}
}
