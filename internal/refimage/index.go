package refimage

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// Index maps pose names to reference files in a directory tree. A file's
// name without extension is the pose name; when several formats share a
// name the lossless one wins (PNG, then WebP, TGA, JPEG).
type Index struct {
	entries map[string]string
}

var rank = map[string]int{".png": 0, ".webp": 1, ".tga": 2, ".jpg": 3, ".jpeg": 3}

// Scan walks dir for reference images.
func Scan(dir string) (*Index, error) {
	idx := &Index{entries: make(map[string]string)}
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		ext := strings.ToLower(filepath.Ext(path))
		r, ok := rank[ext]
		if !ok {
			return nil
		}
		stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		if !utf8.ValidString(stem) {
			return nil
		}
		// macOS stores decomposed file names.
		stem = norm.NFC.String(stem)

		if existing, ok := idx.entries[stem]; ok && rank[strings.ToLower(filepath.Ext(existing))] <= r {
			return nil
		}
		idx.entries[stem] = path
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("refimage: scan %s: %w", dir, err)
	}
	return idx, nil
}

// ScanOrFile indexes a directory, or wraps a single file under its stem.
func ScanOrFile(path string) (*Index, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("refimage: stat %s: %w", path, err)
	}
	if info.IsDir() {
		return Scan(path)
	}
	return Single(strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)), path), nil
}

// Single indexes one file under an explicit pose name.
func Single(name, path string) *Index {
	return &Index{entries: map[string]string{norm.NFC.String(name): path}}
}

// Resolve returns the reference file for a pose name.
func (idx *Index) Resolve(name string) (string, bool) {
	path, ok := idx.entries[norm.NFC.String(name)]
	return path, ok
}

// Names returns the indexed pose names, sorted.
func (idx *Index) Names() []string {
	names := make([]string, 0, len(idx.entries))
	for n := range idx.entries {
		names = append(names, n)
	}
	slices.Sort(names)
	return names
}

// Len returns the number of indexed references.
func (idx *Index) Len() int {
	return len(idx.entries)
}
