package scan

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// DefaultExtensions are the C-family source suffixes scanned when none are
// configured.
func DefaultExtensions() []string {
	return []string{"h", "h++", "hpp", "hh", "hxx", "c", "c++", "cpp", "cc", "cxx"}
}

// Discover expands paths into the source files to scan. Files are kept when
// their extension is in exts, compared case-insensitively; an empty exts
// selects DefaultExtensions. Directories are walked only when recursive.
// Paths that cannot be used are reported as errors and skipped. The result
// keeps argument order, walk order inside directories, and no duplicates.
func Discover(paths []string, recursive bool, exts []string) ([]string, []error) {
	if len(exts) == 0 {
		exts = DefaultExtensions()
	}
	allowed := make(map[string]bool, len(exts))
	for _, ext := range exts {
		allowed[strings.ToLower(strings.TrimPrefix(ext, "."))] = true
	}

	var files []string
	var errs []error
	seen := make(map[string]bool)
	keep := func(path string) {
		if !allowed[extension(path)] || seen[path] {
			return
		}
		seen[path] = true
		files = append(files, path)
	}

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			errs = append(errs, fmt.Errorf("cannot scan %s: %w", path, err))
			continue
		}
		if !info.IsDir() {
			keep(path)
			continue
		}
		if !recursive {
			errs = append(errs, fmt.Errorf("%s is a directory (use --recursive)", path))
			continue
		}
		walkErr := filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				errs = append(errs, fmt.Errorf("error while accessing %s: %w", p, err))
				if d != nil && d.IsDir() {
					return fs.SkipDir
				}
				return nil
			}
			if d.Type().IsRegular() {
				keep(p)
			}
			return nil
		})
		if walkErr != nil {
			errs = append(errs, walkErr)
		}
	}
	return files, errs
}

// extension returns the lowercased text after the last dot of the base name.
func extension(path string) string {
	base := filepath.Base(path)
	idx := strings.LastIndexByte(base, '.')
	if idx < 0 {
		return ""
	}
	return strings.ToLower(base[idx+1:])
}
