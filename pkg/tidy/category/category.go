// Package category provides the fixed extension-to-category mapping used
// to route files into subdirectories. The table is built once at package
// initialization and never mutated afterwards.
package category

import (
	"path/filepath"
	"strings"
)

// Other is the fallback category for files whose extension matches no table entry.
const Other = "OTHER"

// Category labels in table declaration order.
const (
	HTML      = "HTML"
	Images    = "IMAGES"
	Videos    = "VIDEOS"
	Documents = "DOCUMENTS"
	Archives  = "ARCHIVES"
	Audio     = "AUDIO"
)

// entry pairs a category label with its extension set.
type entry struct {
	name string
	exts map[string]struct{}
}

// table holds the categories in declaration order. Classification walks it
// in order and the first match wins; extension sets are assumed disjoint.
var table []entry

func init() {
	defs := []struct {
		name string
		exts []string
	}{
		{HTML, []string{".html5", ".html", ".htm", ".xhtml"}},
		{Images, []string{".jpeg", ".jpg", ".tiff", ".gif", ".bmp", ".png", ".bpg", ".svg", ".heif", ".psd"}},
		{Videos, []string{".avi", ".flv", ".wmv", ".mov", ".mp4", ".webm", ".vob", ".mng", ".qt", ".mpg", ".mpeg", ".m4v"}},
		{Documents, []string{".oxps", ".epub", ".pages", ".docx", ".doc", ".fdf", ".ods", ".odt", ".pwi", ".xsn", ".xltx", ".xlsb", ".xlsx", ".csv", ".pdf", ".txt"}},
		{Archives, []string{".a", ".ar", ".cpio", ".iso", ".tar", ".gz", ".rz", ".7z", ".dmg", ".rar", ".xar", ".zip"}},
		{Audio, []string{".aac", ".aa", ".dvf", ".m4a", ".m4b", ".m4p", ".mp3", ".msv", ".ogg", ".oga", ".raw", ".vox", ".wav", ".wma"}},
	}

	table = make([]entry, 0, len(defs))
	for _, d := range defs {
		exts := make(map[string]struct{}, len(d.exts))
		for _, ext := range d.exts {
			exts[ext] = struct{}{}
		}
		table = append(table, entry{name: d.name, exts: exts})
	}
}

// Classify returns the category label for the given file extension.
// The extension is compared case-insensitively and must include the leading
// dot (as returned by filepath.Ext). Unrecognized or empty extensions map
// to Other. Classify never fails.
func Classify(ext string) string {
	ext = strings.ToLower(ext)
	for _, e := range table {
		if _, ok := e.exts[ext]; ok {
			return e.name
		}
	}
	return Other
}

// ClassifyName returns the category label for a filename, using its extension.
func ClassifyName(name string) string {
	return Classify(filepath.Ext(name))
}

// Names returns the category labels in declaration order, excluding Other.
func Names() []string {
	names := make([]string, 0, len(table))
	for _, e := range table {
		names = append(names, e.name)
	}
	return names
}

// All returns every label a file can be routed to: the declared categories
// in order, then Other last.
func All() []string {
	return append(Names(), Other)
}

// Extensions returns a copy of the extension set for the given category
// label, or nil if the label is unknown. Intended for documentation and
// test fixtures, not classification.
func Extensions(name string) []string {
	for _, e := range table {
		if e.name != name {
			continue
		}
		exts := make([]string, 0, len(e.exts))
		for ext := range e.exts {
			exts = append(exts, ext)
		}
		return exts
	}
	return nil
}
