package watcher

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kfenner/tidy/pkg/tidy/logging"
)

func TestWatch_TriggersRunAfterQuietPeriod(t *testing.T) {
	dir := t.TempDir()

	ran := make(chan string, 1)
	w, err := New(50*time.Millisecond, func(root string) error {
		select {
		case ran <- root:
		default:
		}
		return nil
	})
	require.NoError(t, err)
	defer w.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- w.Watch(ctx, dir) }()

	// Give the watch a moment to attach before producing activity.
	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "new.png"), []byte("x"), 0o644))

	select {
	case root := <-ran:
		assert.Equal(t, dir, root)
	case <-time.After(3 * time.Second):
		t.Fatal("run was not triggered after filesystem activity")
	}

	cancel()
	require.NoError(t, <-done)
}

func TestWatch_DebouncesBursts(t *testing.T) {
	dir := t.TempDir()

	var runs int64
	w, err := New(150*time.Millisecond, func(string) error {
		atomic.AddInt64(&runs, 1)
		return nil
	})
	require.NoError(t, err)
	defer w.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = w.Watch(ctx, dir) }()

	time.Sleep(100 * time.Millisecond)
	for i := 0; i < 5; i++ {
		name := filepath.Join(dir, "burst"+string(rune('a'+i))+".txt")
		require.NoError(t, os.WriteFile(name, []byte("x"), 0o644))
		time.Sleep(20 * time.Millisecond)
	}

	// Wait out the quiet period plus slack.
	time.Sleep(600 * time.Millisecond)
	assert.Equal(t, int64(1), atomic.LoadInt64(&runs), "a burst of events should collapse into one run")
}

func TestWatch_NotADirectory(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "f.txt")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))

	w, err := New(time.Second, func(string) error { return nil })
	require.NoError(t, err)
	defer w.Close()

	err = w.Watch(context.Background(), file)
	require.Error(t, err)
}

func TestWatch_MissingPath(t *testing.T) {
	w, err := New(time.Second, func(string) error { return nil })
	require.NoError(t, err)
	defer w.Close()

	err = w.Watch(context.Background(), filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
}

func TestRelevant_IgnoresLogArtifact(t *testing.T) {
	w, err := New(time.Second, func(string) error { return nil })
	require.NoError(t, err)
	defer w.Close()

	tests := []struct {
		name string
		ev   fsnotify.Event
		want bool
	}{
		{
			name: "create counts",
			ev:   fsnotify.Event{Name: "/d/new.png", Op: fsnotify.Create},
			want: true,
		},
		{
			name: "write counts",
			ev:   fsnotify.Event{Name: "/d/new.png", Op: fsnotify.Write},
			want: true,
		},
		{
			name: "chmod ignored",
			ev:   fsnotify.Event{Name: "/d/new.png", Op: fsnotify.Chmod},
			want: false,
		},
		{
			name: "remove ignored",
			ev:   fsnotify.Event{Name: "/d/gone.png", Op: fsnotify.Remove},
			want: false,
		},
		{
			name: "log artifact ignored",
			ev:   fsnotify.Event{Name: "/d/" + logging.FileName, Op: fsnotify.Write},
			want: false,
		},
		{
			name: "log-artifact-like suffix still counts",
			ev:   fsnotify.Event{Name: "/d/old_" + logging.FileName, Op: fsnotify.Create},
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, w.relevant(tt.ev))
		})
	}
}
