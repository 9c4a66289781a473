// Package adapter contains filesystem and persistence adapters for the mend CLI.
package adapter

import (
	"crypto/sha256"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	m "github.com/mole-works/mend/internal/model"
)

// cSourceExts are the extensions treated as C input. Headers are included:
// un-preprocessed analysis reads them as standalone units.
var cSourceExts = []string{".c", ".h"}

// SourceFSAdapter abstracts the filesystem operations the domain layer
// relies on when scanning user projects, so workflow logic can be tested
// without touching the disk.
type SourceFSAdapter interface {
	// Get collects C source files under the provided roots. A root ending
	// in /... is scanned recursively; exclude entries are regexps matched
	// against the full path.
	Get(roots []m.Path, exclude []string) ([]m.Source, error)

	// ReadFile loads a file from disk and returns its contents.
	ReadFile(path m.Path) ([]byte, error)

	// HashFile returns a stable fingerprint (SHA-256) for the file at path.
	HashFile(path m.Path) (string, error)

	// FileInfo returns metadata for a path so the domain can check existence.
	FileInfo(path m.Path) (os.FileInfo, error)
}

// LocalSourceFSAdapter implements SourceFSAdapter against the local disk.
type LocalSourceFSAdapter struct{}

// NewLocalSourceFSAdapter constructs a LocalSourceFSAdapter.
func NewLocalSourceFSAdapter() *LocalSourceFSAdapter {
	return &LocalSourceFSAdapter{}
}

// Get collects C source files for the provided roots.
func (a *LocalSourceFSAdapter) Get(roots []m.Path, exclude []string) ([]m.Source, error) {
	excludeRes, err := compileExcludes(exclude)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})

	var sources []m.Source

	for _, root := range roots {
		rootPath, recursive := parseRootPath(string(root))

		info, err := a.FileInfo(m.Path(rootPath))
		if err != nil {
			return nil, fmt.Errorf("root path error: %w", err)
		}

		if !info.IsDir() {
			source, ok, err := a.collect(rootPath, excludeRes)
			if err != nil {
				return nil, err
			}

			if ok {
				if _, dup := seen[rootPath]; !dup {
					seen[rootPath] = struct{}{}
					sources = append(sources, source)
				}
			}

			continue
		}

		err = filepath.WalkDir(rootPath, func(path string, entry fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			if entry.IsDir() {
				if !recursive && path != rootPath {
					return fs.SkipDir
				}

				return nil
			}

			source, ok, err := a.collect(path, excludeRes)
			if err != nil {
				return err
			}

			if ok {
				if _, dup := seen[path]; !dup {
					seen[path] = struct{}{}
					sources = append(sources, source)
				}
			}

			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	return sources, nil
}

func (a *LocalSourceFSAdapter) collect(path string, exclude []*regexp.Regexp) (m.Source, bool, error) {
	if !isCSource(path) {
		return m.Source{}, false, nil
	}

	for _, re := range exclude {
		if re.MatchString(path) {
			return m.Source{}, false, nil
		}
	}

	hash, err := a.HashFile(m.Path(path))
	if err != nil {
		return m.Source{}, false, fmt.Errorf("hash error for %s: %w", path, err)
	}

	return m.Source{Hash: hash, Origin: m.Path(path)}, true, nil
}

// ReadFile loads a file from disk.
func (a *LocalSourceFSAdapter) ReadFile(path m.Path) ([]byte, error) {
	content, err := os.ReadFile(string(path))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	return content, nil
}

// HashFile returns the SHA-256 fingerprint of the file at path.
func (a *LocalSourceFSAdapter) HashFile(path m.Path) (string, error) {
	file, err := os.Open(string(path))
	if err != nil {
		return "", fmt.Errorf("open %s: %w", path, err)
	}
	defer file.Close()

	hasher := sha256.New()
	if _, err := io.Copy(hasher, file); err != nil {
		return "", fmt.Errorf("hash %s: %w", path, err)
	}

	return fmt.Sprintf("%x", hasher.Sum(nil)), nil
}

// FileInfo returns metadata for a path.
func (a *LocalSourceFSAdapter) FileInfo(path m.Path) (os.FileInfo, error) {
	return os.Stat(string(path))
}

// parseRootPath extracts the root path and recursive flag from a path string.
func parseRootPath(root string) (path string, recursive bool) {
	if strings.HasSuffix(root, "/...") {
		return strings.TrimSuffix(root, "/..."), true
	}

	return root, false
}

func isCSource(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))

	for _, want := range cSourceExts {
		if ext == want {
			return true
		}
	}

	return false
}

func compileExcludes(patterns []string) ([]*regexp.Regexp, error) {
	res := make([]*regexp.Regexp, 0, len(patterns))

	for _, pattern := range patterns {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid exclude pattern %q: %w", pattern, err)
		}

		res = append(res, re)
	}

	return res, nil
}
