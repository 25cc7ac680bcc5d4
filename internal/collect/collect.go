package collect

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"syscall"
)

// Result partitions the source files of two trees by relative path.
// Paths use forward slashes and are sorted lexicographically.
type Result struct {
	Common  []string // present under both roots
	Missing []string // under A only
	Added   []string // under B only
}

// IsSource reports whether name ends in ".c" or ".h". Case-sensitive.
func IsSource(name string) bool {
	return strings.HasSuffix(name, ".c") || strings.HasSuffix(name, ".h")
}

// Collect walks rootA and rootB and sorts their source files into common,
// missing and added paths. Each root is enumerated on its own; nothing from the
// first pass is reused for the second.
func Collect(rootA, rootB string) (Result, error) {
	var res Result

	filesA, err := Sources(rootA)
	if err != nil {
		return res, err
	}
	for _, rel := range filesA {
		ok, err := isFile(filepath.Join(rootB, filepath.FromSlash(rel)))
		if err != nil {
			return res, err
		}
		if ok {
			res.Common = append(res.Common, rel)
		} else {
			res.Missing = append(res.Missing, rel)
		}
	}

	filesB, err := Sources(rootB)
	if err != nil {
		return res, err
	}
	for _, rel := range filesB {
		ok, err := isFile(filepath.Join(rootA, filepath.FromSlash(rel)))
		if err != nil {
			return res, err
		}
		if !ok {
			res.Added = append(res.Added, rel)
		}
	}

	sort.Strings(res.Common)
	sort.Strings(res.Missing)
	sort.Strings(res.Added)
	return res, nil
}

// Sources returns the relative, slash-separated paths of every source file under
// root. Hidden directories are included. Symlinks to regular files are listed;
// symlinked directories are not descended into.
func Sources(root string) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, &fs.PathError{Op: "walk", Path: root, Err: errors.New("not a directory")}
	}

	var out []string
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !IsSource(d.Name()) {
			return nil
		}
		if d.Type()&fs.ModeSymlink != 0 {
			// Follow the link only far enough to see what it points at.
			t, err := os.Stat(path)
			if err != nil {
				return err
			}
			if !t.Mode().IsRegular() {
				return nil
			}
		} else if !d.Type().IsRegular() {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		out = append(out, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(out)
	return out, nil
}

func isFile(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		// A file standing where B has a directory (or vice versa) surfaces as ENOTDIR.
		if errors.Is(err, fs.ErrNotExist) || errors.Is(err, syscall.ENOTDIR) {
			return false, nil
		}
		return false, err
	}
	return info.Mode().IsRegular(), nil
}
