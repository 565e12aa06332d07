package watch

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestNew_RequiresHandler(t *testing.T) {
	_, err := New("input.txt", time.Millisecond, nil)
	assert.Error(t, err)
}

func TestInputWatcher_RunsHandlerOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test_account.txt")
	require.NoError(t, os.WriteFile(path, []byte("first"), 0644))

	calls := make(chan string, 8)
	w, err := New(path, 20*time.Millisecond, func(ctx context.Context, p string) error {
		calls <- p
		return nil
	})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, w.Start(ctx))
	defer w.Stop()
	assert.True(t, w.IsWatching())

	// Unrelated files in the same directory are ignored.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.txt"), []byte("x"), 0644))
	require.NoError(t, os.WriteFile(path, []byte("second"), 0644))

	select {
	case p := <-calls:
		assert.Equal(t, path, p)
	case <-time.After(5 * time.Second):
		t.Fatal("handler was not called")
	}

	stats := w.GetStats()
	assert.GreaterOrEqual(t, stats.Events, 1)
	assert.GreaterOrEqual(t, stats.Runs, 1)
	assert.Zero(t, stats.Errors)
}

func TestInputWatcher_TriggerCountsErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "in.txt")
	w, err := New(path, time.Millisecond, func(context.Context, string) error {
		return errors.New("boom")
	})
	require.NoError(t, err)
	defer w.Stop()

	w.Trigger(context.Background())
	stats := w.GetStats()
	assert.Equal(t, 1, stats.Runs)
	assert.Equal(t, 1, stats.Errors)
	assert.False(t, w.IsWatching())
}

func TestInputWatcher_StopsOnContextCancel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "in.txt")
	w, err := New(path, time.Millisecond, func(context.Context, string) error { return nil })
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, w.Start(ctx))
	require.NoError(t, w.Start(ctx), "second start is a no-op")
	cancel()

	select {
	case <-w.Done():
	case <-time.After(5 * time.Second):
		t.Fatal("event loop did not exit")
	}
	w.Stop()
}

func TestInputWatcher_MissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "in.txt")
	w, err := New(path, time.Millisecond, func(context.Context, string) error { return nil })
	require.NoError(t, err)
	defer w.Stop()

	assert.Error(t, w.Start(context.Background()))
	assert.False(t, w.IsWatching())
}
