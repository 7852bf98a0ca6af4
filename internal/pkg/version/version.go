package version

import (
	_ "embed"
	"strings"
)

//go:generate sh -c "printf %s $(git rev-parse HEAD) > commit.txt"
//go:generate sh -c "printf %s $(git rev-parse --abbrev-ref HEAD) > branch.txt"
//go:generate sh -c "printf %s $(git describe --tags --abbrev=0 2>/dev/null || echo none) > tag.txt"
//go:generate sh -c "git diff-index --quiet HEAD -- || echo dirty > dirty.txt; [ -f dirty.txt ] || echo clean > dirty.txt"

//go:embed commit.txt
var commit string

//go:embed branch.txt
var branch string

//go:embed tag.txt
var tag string

//go:embed dirty.txt
var dirty string

// GitInfo is the build metadata embedded at generate time.
type GitInfo struct {
	Commit string
	Branch string
	Tag    string
	Dirty  bool
}

var info = GitInfo{
	Commit: strings.TrimSpace(commit),
	Branch: strings.TrimSpace(branch),
	Tag:    strings.TrimSpace(tag),
	Dirty:  strings.TrimSpace(dirty) == "dirty",
}

// GetGitInfo returns a copy of the embedded git metadata.
func GetGitInfo() GitInfo {
	return info
}

// String renders the metadata on one line for log fields and banners.
func (g GitInfo) String() string {
	s := g.Tag + " (" + g.Branch + "@" + g.Commit
	if g.Dirty {
		s += ", dirty"
	}
	return s + ")"
}
