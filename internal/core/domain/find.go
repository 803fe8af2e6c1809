package domain

import "path/filepath"

// EntryType selects what a Finder yields.
type EntryType int

const (
	// EntryFile yields regular files.
	EntryFile EntryType = iota
	// EntryDir yields directories.
	EntryDir
)

// Unlimited disables the depth limit of a FindQuery.
const Unlimited = -1

// FindQuery describes one enumeration over a set of roots.
type FindQuery struct {
	Type EntryType
	// MaxDepth limits recursion; 0 lists immediate children only.
	MaxDepth int
	// FollowLinks descends into symlinked directories. Symlinked entries are
	// listed either way.
	FollowLinks bool
	// Suffix, when set, keeps only entries whose stem ends with it.
	Suffix string
}

// Match is one entry found under a root. Rel is relative to Root.
type Match struct {
	Root string
	Rel  string
}

// Path returns the full path of the match.
func (m Match) Path() string {
	if m.Rel == "" {
		return m.Root
	}
	return filepath.Join(m.Root, m.Rel)
}
