package input

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
)

// DefaultPattern is the file name glob used in directory mode.
const DefaultPattern = "*.yml"

// FindFiles recursively searches root for files whose base name matches the
// glob pattern. Paths are returned sorted.
func FindFiles(root string, pattern string) ([]string, error) {
	if pattern == "" {
		panic("pattern must not be empty")
	}
	if _, err := filepath.Match(pattern, ""); err != nil {
		return nil, fmt.Errorf("invalid pattern %q: %w", pattern, err)
	}

	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		// Pattern was validated above, so Match cannot fail here.
		if ok, _ := filepath.Match(pattern, d.Name()); ok {
			files = append(files, path)
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	sort.Strings(files)
	return files, nil
}
