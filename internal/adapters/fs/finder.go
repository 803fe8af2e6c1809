// Package fs provides file system adapters for enumerating, mutating and hashing files.
package fs

import (
	iofs "io/fs"
	"iter"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/optic/internal/core/domain"
	"go.trai.ch/optic/internal/core/ports"
)

var _ ports.Finder = (*Finder)(nil)

// vcsDirs are never descended into.
var vcsDirs = map[string]struct{}{
	".git":   {},
	".jj":    {},
	".svn":   {},
	".hg":    {},
	".bzr":   {},
	"CVS":    {},
	"_darcs": {},
}

// Finder enumerates the entries of overlay roots.
type Finder struct{}

// NewFinder creates a new Finder.
func NewFinder() *Finder {
	return &Finder{}
}

// Find yields the entries matching query beneath every root, root by root and in
// lexical order inside each directory. Rel is always relative to the root that
// served the entry.
func (f *Finder) Find(roots []string, query domain.FindQuery) iter.Seq[domain.Match] {
	return func(yield func(domain.Match) bool) {
		for _, root := range roots {
			if !f.findRoot(root, query, yield) {
				return
			}
		}
	}
}

func (f *Finder) findRoot(root string, query domain.FindQuery, yield func(domain.Match) bool) bool {
	info, err := os.Stat(root)
	if err != nil || !info.IsDir() {
		return true
	}

	// ancestors holds the resolved directories on the current descent path.
	ancestors := make(map[string]struct{})
	if real, err := filepath.EvalSymlinks(root); err == nil {
		ancestors[real] = struct{}{}
	}

	return f.walk(root, "", 0, query, ancestors, yield)
}

//nolint:cyclop // directory walk with symlink handling
func (f *Finder) walk(
	root, rel string,
	depth int,
	query domain.FindQuery,
	ancestors map[string]struct{},
	yield func(domain.Match) bool,
) bool {
	entries, err := os.ReadDir(filepath.Join(root, rel))
	if err != nil {
		return true
	}

	for _, entry := range entries {
		childRel := filepath.Join(rel, entry.Name())
		full := filepath.Join(root, childRel)

		isDir, isLink, ok := f.classify(entry, full)
		if !ok {
			continue
		}
		if isDir {
			if _, skip := vcsDirs[entry.Name()]; skip {
				continue
			}
		}

		if f.matches(entry.Name(), isDir, query) {
			if !yield(domain.Match{Root: root, Rel: childRel}) {
				return false
			}
		}

		if !isDir || (isLink && !query.FollowLinks) ||
			(query.MaxDepth != domain.Unlimited && depth >= query.MaxDepth) {
			continue
		}

		real, err := filepath.EvalSymlinks(full)
		if err != nil {
			continue
		}
		if _, cycle := ancestors[real]; cycle {
			continue
		}
		ancestors[real] = struct{}{}
		cont := f.walk(root, childRel, depth+1, query, ancestors, yield)
		delete(ancestors, real)
		if !cont {
			return false
		}
	}

	return true
}

// classify reports whether the entry is a directory, whether it is a symlink and
// whether it should be considered at all. Symlinks are classified by their target;
// dangling links are skipped.
func (f *Finder) classify(entry iofs.DirEntry, full string) (isDir, isLink, ok bool) {
	mode := entry.Type()
	if mode&iofs.ModeSymlink != 0 {
		info, err := os.Stat(full)
		if err != nil {
			return false, true, false
		}
		return info.IsDir(), true, info.IsDir() || info.Mode().IsRegular()
	}
	return entry.IsDir(), false, entry.IsDir() || mode.IsRegular()
}

func (f *Finder) matches(name string, isDir bool, query domain.FindQuery) bool {
	if isDir != (query.Type == domain.EntryDir) {
		return false
	}
	if query.Suffix == "" {
		return true
	}
	stem := strings.TrimSuffix(name, filepath.Ext(name))
	return strings.HasSuffix(stem, query.Suffix)
}
