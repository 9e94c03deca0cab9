package watcher

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRequiresExistingFile(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "absent.toml"), time.Millisecond)
	assert.ErrorContains(t, err, "watch target")
}

func TestWatcherReportsSettledChange(t *testing.T) {
	path := filepath.Join(t.TempDir(), "interceptd.toml")
	require.NoError(t, os.WriteFile(path, []byte("a = 1\n"), 0o644))

	w, err := New(path, 20*time.Millisecond)
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(path, []byte("a = 2\n"), 0o644))

	select {
	case <-w.Events():
	case <-time.After(5 * time.Second):
		t.Fatal("no change event after write")
	}
}

func TestWatcherIgnoresSiblingFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "interceptd.toml")
	require.NoError(t, os.WriteFile(path, []byte("a = 1\n"), 0o644))

	w, err := New(path, 10*time.Millisecond)
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.txt"), []byte("x"), 0o644))

	select {
	case <-w.Events():
		t.Fatal("sibling file write must not signal")
	case <-time.After(200 * time.Millisecond):
	}
}

func TestCloseIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "interceptd.toml")
	require.NoError(t, os.WriteFile(path, []byte("a = 1\n"), 0o644))

	w, err := New(path, time.Millisecond)
	require.NoError(t, err)

	require.NoError(t, w.Close())
	assert.NotPanics(t, func() { w.Close() })
}
