// Package fsutil provides file system utility functions.
package fsutil

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// FindFilesByExtension recursively searches the given root path for all files ending
// with one of the specified extensions. It returns a slice of their full paths.
func FindFilesByExtension(rootPath string, extensions ...string) ([]string, error) {
	if len(extensions) == 0 {
		panic("at least one extension must be given")
	}

	var files []string
	err := filepath.WalkDir(rootPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && hasExtension(d.Name(), extensions) {
			files = append(files, path)
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	return files, nil
}

// CollectFiles resolves each path to the matching files beneath it. A path may
// name a single file or a directory; paths that do not exist are skipped. The
// result is de-duplicated and sorted.
func CollectFiles(paths []string, extensions ...string) ([]string, error) {
	seen := make(map[string]struct{})
	var all []string

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, err
		}

		var found []string
		if info.IsDir() {
			found, err = FindFilesByExtension(path, extensions...)
			if err != nil {
				return nil, err
			}
		} else if hasExtension(path, extensions) {
			found = []string{path}
		}

		for _, f := range found {
			if _, ok := seen[f]; !ok {
				seen[f] = struct{}{}
				all = append(all, f)
			}
		}
	}

	sort.Strings(all)
	return all, nil
}

func hasExtension(name string, extensions []string) bool {
	for _, ext := range extensions {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}
	return false
}
