// Package scan discovers the Terraform configuration files a run will
// consider for module reference updates.
package scan

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
)

const configFileExt = ".tf"

// skipDirs are directory names whose contents never hold user-authored
// configuration: version control metadata and Terraform's local cache.
var skipDirs = map[string]bool{
	".git":       true,
	".terraform": true,
}

// FindConfigFiles recursively enumerates the regular *.tf files under
// root, excluding anything inside a skipped directory. The result is
// sorted so runs process files in a deterministic order.
func FindConfigFiles(root string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if skipDirs[d.Name()] && path != root {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}
		if filepath.Ext(path) == configFileExt {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", root, err)
	}

	sort.Strings(files)
	return files, nil
}
