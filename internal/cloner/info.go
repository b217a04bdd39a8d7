package cloner

import (
	"fmt"

	git2go "github.com/libgit2/git2go/v34"
)

// LibraryInfo describes the linked libgit2 build
type LibraryInfo struct {
	Version string
	HTTPS   bool
	SSH     bool
	Threads bool
}

// Library reports the libgit2 version and compiled-in features
func Library() LibraryInfo {
	major, minor, rev := git2go.Version()
	features := git2go.Features()
	return LibraryInfo{
		Version: fmt.Sprintf("%d.%d.%d", major, minor, rev),
		HTTPS:   features&git2go.FeatureHTTPS != 0,
		SSH:     features&git2go.FeatureSSH != 0,
		Threads: features&git2go.FeatureThreads != 0,
	}
}
