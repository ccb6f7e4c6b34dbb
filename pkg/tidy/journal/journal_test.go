package journal

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJournal(t *testing.T) *Journal {
	t.Helper()
	j, err := New(filepath.Join(t.TempDir(), "journal"))
	require.NoError(t, err)
	require.NoError(t, j.EnsureDir())
	return j
}

func TestNew_EmptyDir(t *testing.T) {
	_, err := New("")
	require.Error(t, err)
}

func TestRecord_WritesEntry(t *testing.T) {
	j := newTestJournal(t)

	files := []MoveRecord{
		{Source: "/d/a.png", Dest: "/d/IMAGES/a.png", Category: "IMAGES", Size: 100, Outcome: "moved"},
		{Source: "/d/b.xyz", Dest: "/d/OTHER/b.xyz", Category: "OTHER", Size: 50, Outcome: "moved"},
		{Source: "/d/c.txt", Category: "DOCUMENTS", Outcome: "skipped-error", Error: "permission denied"},
	}

	entry, err := j.Record("commit", "/d", files)
	require.NoError(t, err)

	assert.NotEmpty(t, entry.ID)
	assert.Equal(t, "commit", entry.Mode)
	assert.Equal(t, "/d", entry.Target)
	assert.Equal(t, int64(2), entry.Summary.TotalFiles)
	assert.Equal(t, int64(150), entry.Summary.TotalBytes)
	assert.Equal(t, int64(1), entry.Summary.Skipped)

	// Exactly one JSON file on disk, no leftover temp file.
	dirEntries, err := os.ReadDir(j.dir)
	require.NoError(t, err)
	require.Len(t, dirEntries, 1)
	assert.Contains(t, dirEntries[0].Name(), ".json")
}

func TestList_NewestFirst(t *testing.T) {
	j := newTestJournal(t)

	base := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)
	times := []time.Time{base, base.Add(time.Hour), base.Add(2 * time.Hour)}
	idx := 0
	j.now = func() time.Time {
		ts := times[idx]
		idx++
		return ts
	}

	for range times {
		_, err := j.Record("preview", "/d", nil)
		require.NoError(t, err)
	}

	entries, err := j.List()
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.True(t, entries[0].Timestamp.After(entries[1].Timestamp))
	assert.True(t, entries[1].Timestamp.After(entries[2].Timestamp))
}

func TestList_MissingDir(t *testing.T) {
	j, err := New(filepath.Join(t.TempDir(), "never-created"))
	require.NoError(t, err)

	entries, err := j.List()
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestPrune_RemovesOldEntries(t *testing.T) {
	j := newTestJournal(t)

	old := time.Now().UTC().Add(-72 * time.Hour)
	j.now = func() time.Time { return old }
	_, err := j.Record("commit", "/d", nil)
	require.NoError(t, err)

	j.now = time.Now
	_, err = j.Record("commit", "/d", nil)
	require.NoError(t, err)

	removed, err := j.Prune(24 * time.Hour)
	require.NoError(t, err)
	assert.Equal(t, 1, removed)

	entries, err := j.List()
	require.NoError(t, err)
	require.Len(t, entries, 1)
}

func TestList_SkipsCorruptEntries(t *testing.T) {
	j := newTestJournal(t)

	_, err := j.Record("commit", "/d", nil)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(j.dir, "garbage.json"), []byte("{not json"), 0o644))

	entries, err := j.List()
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}
