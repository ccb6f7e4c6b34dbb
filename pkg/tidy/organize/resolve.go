package organize

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// timestampLayout is the second-precision token appended to renamed files.
const timestampLayout = "20060102_150405"

// resolvePath returns a collision-free destination for name inside destDir.
// If destDir/name is free it is returned unchanged. Otherwise a timestamp
// token is inserted between stem and extension. The resolved candidate is
// not re-checked: two collisions within the same second produce the same
// name, matching the established on-disk behavior of this tool.
func resolvePath(destDir, name string, now time.Time) (string, bool) {
	dest := filepath.Join(destDir, name)
	if _, err := os.Stat(dest); err != nil {
		return dest, false
	}

	ext := filepath.Ext(name)
	stem := strings.TrimSuffix(name, ext)
	stamped := fmt.Sprintf("%s_%s%s", stem, now.Format(timestampLayout), ext)
	return filepath.Join(destDir, stamped), true
}
