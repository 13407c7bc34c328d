package scan

import (
	"io/fs"
	"iter"
	"path/filepath"
	"strings"
)

// Walker enumerates candidate files under a root directory, applying the
// exclusion rules. Exclusion sets are injected so tests can use arbitrary
// roots and rules.
type Walker struct {
	root       string
	exclude    map[string]bool
	scriptExts map[string]bool
}

// NewWalker creates a Walker rooted at root. excludeDirs are path segments
// that exclude an entry; scriptExts are extensions skipped in symbols mode.
func NewWalker(root string, excludeDirs, scriptExts []string) *Walker {
	w := &Walker{
		root:       root,
		exclude:    make(map[string]bool, len(excludeDirs)),
		scriptExts: make(map[string]bool, len(scriptExts)),
	}
	for _, d := range excludeDirs {
		w.exclude[d] = true
	}
	for _, ext := range scriptExts {
		w.scriptExts[strings.ToLower(ext)] = true
	}
	return w
}

// Files yields every candidate file for the given mode, in walk order.
// Only regular files are yielded; excluded and hidden entries are pruned,
// and unreadable subtrees are skipped silently.
func (w *Walker) Files(mode Mode) iter.Seq[string] {
	return func(yield func(string) bool) {
		_ = filepath.WalkDir(w.root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				// Unreadable entries and vanished files are not an error
				// for the scan; skip and keep walking.
				return nil
			}
			if path == w.root {
				return nil
			}

			name := d.Name()
			if d.IsDir() {
				if w.exclude[name] || strings.HasPrefix(name, ".") {
					return fs.SkipDir
				}
				return nil
			}

			if w.exclude[name] || strings.HasPrefix(name, ".") {
				return nil
			}
			// Symlinks and special files are skipped.
			if !d.Type().IsRegular() {
				return nil
			}
			if mode == ModeSymbols && w.scriptExts[strings.ToLower(filepath.Ext(name))] {
				return nil
			}

			if !yield(path) {
				return fs.SkipAll
			}
			return nil
		})
	}
}
