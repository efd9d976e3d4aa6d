//go:build unit

package watcher_test

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/buildsrcversions/internal/infrastructure/repositories/watcher"
)

func TestWatchRepository_Watch(t *testing.T) {
	t.Parallel()

	t.Run("should call back after the watched file changes", func(t *testing.T) {
		t.Parallel()

		// given
		dir := t.TempDir()
		report := filepath.Join(dir, "report.json")
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		var calls atomic.Int32
		done := make(chan error, 1)
		go func() {
			done <- watcher.NewWatchRepositoryWithDebounce(10*time.Millisecond).Watch(ctx, report, func() {
				calls.Add(1)
			})
		}()

		// when
		assert.Eventually(t, func() bool {
			_ = os.WriteFile(report, []byte(`{"current": {}}`), 0o600)
			return calls.Load() > 0
		}, 5*time.Second, 50*time.Millisecond)
		cancel()

		// then
		select {
		case err := <-done:
			require.NoError(t, err)
		case <-time.After(5 * time.Second):
			t.Fatal("watch did not stop after cancellation")
		}
	})

	t.Run("should ignore other files in the directory", func(t *testing.T) {
		t.Parallel()

		// given
		dir := t.TempDir()
		ctx, cancel := context.WithTimeout(context.Background(), 300*time.Millisecond)
		defer cancel()

		var calls atomic.Int32
		go func() {
			for ctx.Err() == nil {
				_ = os.WriteFile(filepath.Join(dir, "other.json"), []byte("{}"), 0o600)
				time.Sleep(20 * time.Millisecond)
			}
		}()

		// when
		err := watcher.NewWatchRepositoryWithDebounce(10*time.Millisecond).Watch(
			ctx, filepath.Join(dir, "report.json"), func() { calls.Add(1) },
		)

		// then
		require.NoError(t, err)
		assert.Zero(t, calls.Load())
	})

	t.Run("should fail when the parent directory does not exist", func(t *testing.T) {
		t.Parallel()

		// given
		missing := filepath.Join(t.TempDir(), "missing", "report.json")

		// when
		err := watcher.NewWatchRepository().Watch(context.Background(), missing, func() {})

		// then
		assert.Error(t, err)
	})
}
