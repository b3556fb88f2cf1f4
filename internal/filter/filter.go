// Package filter selects which compiled classes take part in coverage
// analysis. Matching class files are staged into a separate directory whose
// layout mirrors the original roots, and that directory is analyzed instead.
package filter

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
)

// Stage copies every .class file under roots whose slash-separated relative
// path matches at least one include pattern and no exclude pattern into dest.
// An empty include list matches everything. It returns the number of staged
// class files.
func Stage(roots, includes, excludes []string, dest string) (int, error) {
	staged := 0
	for _, root := range roots {
		err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() || filepath.Ext(path) != ".class" {
				return nil
			}
			rel, err := filepath.Rel(root, path)
			if err != nil {
				return err
			}
			rel = filepath.ToSlash(rel)
			if !Matches(rel, includes, excludes) {
				return nil
			}
			target := filepath.Join(dest, filepath.FromSlash(rel))
			if err := copyFile(path, target); err != nil {
				return err
			}
			staged++
			return nil
		})
		if err != nil {
			return staged, fmt.Errorf("failed to stage classes from %s: %w", root, err)
		}
	}
	return staged, nil
}

// Matches reports whether the slash-separated relative path passes the
// include/exclude patterns.
func Matches(rel string, includes, excludes []string) bool {
	included := len(includes) == 0
	for _, pattern := range includes {
		if ok, err := doublestar.Match(pattern, rel); err == nil && ok {
			included = true
			break
		}
	}
	if !included {
		return false
	}
	for _, pattern := range excludes {
		if ok, err := doublestar.Match(pattern, rel); err == nil && ok {
			return false
		}
	}
	return true
}

func copyFile(src, dest string) error {
	if err := os.MkdirAll(filepath.Dir(dest), 0755); err != nil {
		return err
	}
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()
	out, err := os.Create(dest)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		os.Remove(dest)
		return err
	}
	return out.Close()
}
