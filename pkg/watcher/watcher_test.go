package watcher

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileWatcherNotifiesOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "slider.yaml")
	other := filepath.Join(dir, "other.yaml")
	require.NoError(t, os.WriteFile(path, []byte("slider: {}\n"), 0o644))

	fw, err := NewFileWatcher(20*time.Millisecond, logrus.New())
	require.NoError(t, err)
	defer fw.Close()

	changed := make(chan string, 4)
	require.NoError(t, fw.Watch([]string{path}, func(p string) { changed <- p }))
	fw.Start()

	require.NoError(t, os.WriteFile(other, []byte("x: 1\n"), 0o644))
	require.NoError(t, os.WriteFile(path, []byte("slider:\n  max: 10\n"), 0o644))

	select {
	case p := <-changed:
		abs, err := filepath.Abs(path)
		require.NoError(t, err)
		assert.Equal(t, abs, p)
	case <-time.After(5 * time.Second):
		t.Fatal("no change notification")
	}
}

func TestFileWatcherRemoveAll(t *testing.T) {
	path := filepath.Join(t.TempDir(), "slider.yaml")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	fw, err := NewFileWatcher(time.Millisecond, nil)
	require.NoError(t, err)
	defer fw.Close()

	require.NoError(t, fw.Watch([]string{path}, func(string) {}))
	require.NoError(t, fw.RemoveAll())
	assert.Empty(t, fw.callbacks)
}

func TestFileWatcherCloseTwice(t *testing.T) {
	path := filepath.Join(t.TempDir(), "slider.yaml")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	fw, err := NewFileWatcher(time.Millisecond, nil)
	require.NoError(t, err)
	require.NoError(t, fw.Watch([]string{path}, func(string) {}))
	fw.Start()

	require.NoError(t, fw.Close())
	assert.NotPanics(t, func() {
		assert.NoError(t, fw.Close())
	})
}
