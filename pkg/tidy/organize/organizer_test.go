package organize

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kfenner/tidy/pkg/tidy/category"
	"github.com/kfenner/tidy/pkg/tidy/logging"
)

func writeFile(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte("content of "+name), 0o644))
	return path
}

func listNames(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names
}

func quietOrganizer(opts ...Option) *Organizer {
	return New(append([]Option{WithConsole(io.Discard)}, opts...)...)
}

func TestRun_CommitRoutesByCategory(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.png")
	writeFile(t, dir, "b.docx")
	writeFile(t, dir, "c.xyz")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0o755))
	writeFile(t, filepath.Join(dir, "sub"), "inside.png")

	report, err := quietOrganizer().Run(dir, Commit)
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(dir, "IMAGES", "a.png"))
	assert.FileExists(t, filepath.Join(dir, "DOCUMENTS", "b.docx"))
	assert.FileExists(t, filepath.Join(dir, "OTHER", "c.xyz"))

	// Subdirectory contents are untouched.
	assert.FileExists(t, filepath.Join(dir, "sub", "inside.png"))

	assert.Equal(t, int64(3), report.Stats.Processed)
	assert.Equal(t, int64(1), report.Stats.Counts["IMAGES"])
	assert.Equal(t, int64(1), report.Stats.Counts["DOCUMENTS"])
	assert.Equal(t, int64(1), report.Stats.Counts["OTHER"])
	assert.Equal(t, int64(0), report.Stats.Skipped)
}

func TestRun_CommitCaseInsensitiveExtension(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "PHOTO.PNG")

	_, err := quietOrganizer().Run(dir, Commit)
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(dir, "IMAGES", "PHOTO.PNG"))
}

func TestRun_PreviewMutatesNothing(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.png")
	writeFile(t, dir, "b.docx")

	var console bytes.Buffer
	report, err := New(WithConsole(&console)).Run(dir, Preview)
	require.NoError(t, err)

	// No category directories, no moved files. Only the log artifact
	// is added to the target directory.
	assert.NoDirExists(t, filepath.Join(dir, "IMAGES"))
	assert.NoDirExists(t, filepath.Join(dir, "DOCUMENTS"))
	assert.Equal(t, []string{"a.png", "b.docx", logging.FileName}, listNames(t, dir))

	assert.Equal(t, int64(2), report.Stats.Processed)
	for _, res := range report.Results {
		assert.Equal(t, WouldMove, res.Outcome)
	}

	assert.Contains(t, console.String(), "Would move: a.png -> IMAGES")
	assert.Contains(t, console.String(), "Would move: b.docx -> DOCUMENTS")
}

// Preview does not probe destinations for collisions: even when the
// category directory already holds a file with the same name, the reported
// destination is the unstamped candidate path.
func TestRun_PreviewSkipsConflictResolution(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "IMAGES"), 0o755))
	writeFile(t, filepath.Join(dir, "IMAGES"), "a.png")
	writeFile(t, dir, "a.png")

	report, err := quietOrganizer().Run(dir, Preview)
	require.NoError(t, err)

	require.Len(t, report.Results, 1)
	assert.Equal(t, filepath.Join(dir, "IMAGES", "a.png"), report.Results[0].Dest)
}

func TestRun_CommitRenamesOnCollision(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "DOCUMENTS"), 0o755))
	writeFile(t, filepath.Join(dir, "DOCUMENTS"), "foo.txt")
	writeFile(t, dir, "foo.txt")

	now, err := time.Parse(time.RFC3339, "2026-03-15T10:30:45Z")
	require.NoError(t, err)

	report, runErr := quietOrganizer(WithClock(func() time.Time { return now })).Run(dir, Commit)
	require.NoError(t, runErr)

	assert.FileExists(t, filepath.Join(dir, "DOCUMENTS", "foo.txt"))
	assert.FileExists(t, filepath.Join(dir, "DOCUMENTS", "foo_20260315_103045.txt"))
	assert.NoFileExists(t, filepath.Join(dir, "foo.txt"))
	assert.Equal(t, int64(1), report.Stats.Counts["DOCUMENTS"])
}

func TestRun_SecondCommitIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.png")
	writeFile(t, dir, "b.docx")

	org := quietOrganizer()
	first, err := org.Run(dir, Commit)
	require.NoError(t, err)
	require.Equal(t, int64(2), first.Stats.Processed)

	// Moved files are now one level deeper and excluded by non-recursion.
	second, err := org.Run(dir, Commit)
	require.NoError(t, err)
	assert.Equal(t, int64(0), second.Stats.Processed)

	assert.FileExists(t, filepath.Join(dir, "IMAGES", "a.png"))
	assert.FileExists(t, filepath.Join(dir, "DOCUMENTS", "b.docx"))
}

func TestRun_SkipsLogArtifact(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, logging.FileName)
	writeFile(t, dir, "a.png")

	report, err := quietOrganizer().Run(dir, Commit)
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(dir, logging.FileName))
	assert.Equal(t, int64(1), report.Stats.Processed)
}

func TestRun_PerEntryErrorIsIsolated(t *testing.T) {
	dir := t.TempDir()

	// A file named exactly like its own category directory: MkdirAll
	// fails because the path is occupied by the file itself.
	writeFile(t, dir, "OTHER")

	var console bytes.Buffer
	report, err := New(WithConsole(&console)).Run(dir, Commit)
	require.NoError(t, err, "per-entry failures must not abort the run")

	require.Len(t, report.Results, 1)
	assert.Equal(t, SkippedError, report.Results[0].Outcome)
	assert.Error(t, report.Results[0].Err)

	// Skipped entries are excluded from statistics.
	assert.Equal(t, int64(0), report.Stats.Processed)
	assert.Equal(t, int64(0), report.Stats.Counts["OTHER"])
	assert.Equal(t, int64(1), report.Stats.Skipped)

	assert.Contains(t, console.String(), "Error moving OTHER")
	assert.FileExists(t, filepath.Join(dir, "OTHER"))
}

func TestRun_InvalidPath(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "does", "not", "exist")

	_, err := quietOrganizer().Run(missing, Preview)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidPath), "want ErrInvalidPath, got %v", err)
}

func TestRun_NotADirectory(t *testing.T) {
	dir := t.TempDir()
	file := writeFile(t, dir, "plain.txt")

	_, err := quietOrganizer().Run(file, Commit)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotADirectory), "want ErrNotADirectory, got %v", err)

	// Validation failures abort before log setup: no artifact anywhere.
	assert.NoFileExists(t, filepath.Join(dir, logging.FileName))
}

func TestRun_WritesLogArtifact(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "track.mp3")

	report, err := quietOrganizer().Run(dir, Commit)
	require.NoError(t, err)

	require.Equal(t, filepath.Join(dir, logging.FileName), report.LogPath)
	data, err := os.ReadFile(report.LogPath)
	require.NoError(t, err)

	log := string(data)
	assert.Contains(t, log, "Starting cleanup (ACTUAL RUN)")
	assert.Contains(t, log, "MOVED: track.mp3 -> AUDIO")
	assert.Contains(t, log, "Total files processed: 1")
	assert.Contains(t, log, "Cleanup Finished")
}

func TestRun_OtherRoutedEntriesLogAtWarning(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "blob.xyz")

	report, err := quietOrganizer().Run(dir, Commit)
	require.NoError(t, err)

	data, err := os.ReadFile(report.LogPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "WARNING - UNKNOWN: blob.xyz -> OTHER")
}

func TestRun_FreshStatisticsPerPass(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.png")

	org := quietOrganizer()
	preview, err := org.Run(dir, Preview)
	require.NoError(t, err)
	commit, err := org.Run(dir, Commit)
	require.NoError(t, err)

	assert.Equal(t, int64(1), preview.Stats.Processed)
	assert.Equal(t, int64(1), commit.Stats.Processed, "commit pass must start from fresh statistics")
}

func TestStatistics_SumMatchesProcessed(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.png")
	writeFile(t, dir, "b.png")
	writeFile(t, dir, "c.pdf")
	writeFile(t, dir, "d")

	report, err := quietOrganizer().Run(dir, Commit)
	require.NoError(t, err)

	var sum int64
	for _, label := range category.All() {
		sum += report.Stats.Counts[label]
	}
	assert.Equal(t, report.Stats.Processed, sum)
	assert.Equal(t, int64(4), sum)
}

func TestStatistics_TracksBytes(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "a.png")
	info, err := os.Stat(path)
	require.NoError(t, err)

	report, runErr := quietOrganizer().Run(dir, Commit)
	require.NoError(t, runErr)

	assert.Equal(t, info.Size(), report.Stats.Bytes["IMAGES"])
	assert.Equal(t, info.Size(), report.Stats.TotalBytes())
}

func TestRunMode_Strings(t *testing.T) {
	assert.Equal(t, "preview", Preview.String())
	assert.Equal(t, "commit", Commit.String())
	assert.Equal(t, "DRY RUN", Preview.Banner())
	assert.Equal(t, "ACTUAL RUN", Commit.Banner())
}

func TestOutcome_Strings(t *testing.T) {
	assert.Equal(t, "moved", Moved.String())
	assert.Equal(t, "would-move", WouldMove.String())
	assert.Equal(t, "skipped-error", SkippedError.String())
}
