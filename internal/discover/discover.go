package discover

import (
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
)

// Headers walks every root directory recursively and returns the paths of
// all files whose extension matches exts, deduplicated and sorted. Sorting
// fixes the section order of the generated files across runs; the
// generator consumes the result as-is.
func Headers(roots []string, exts []string) ([]string, error) {
	seen := make(map[string]bool)
	var found []string
	for _, root := range roots {
		err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() || !matchesExt(path, exts) {
				return nil
			}
			if !seen[path] {
				seen[path] = true
				found = append(found, path)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	sort.Strings(found)
	return found, nil
}

func matchesExt(path string, exts []string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range exts {
		if ext == strings.ToLower(e) {
			return true
		}
	}
	return false
}
