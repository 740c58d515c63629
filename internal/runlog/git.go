package runlog

import (
	gogit "github.com/go-git/go-git/v5"
)

// Git holds repository metadata captured at run time.
type Git struct {
	Commit string `json:"commit"`
	Branch string `json:"branch,omitempty"`
}

// DetectGit looks for a repository at or above dir and reads HEAD.
// Returns nil on any failure to keep behavior lenient.
func DetectGit(dir string) *Git {
	repo, err := gogit.PlainOpenWithOptions(dir, &gogit.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil
	}
	head, err := repo.Head()
	if err != nil {
		return nil
	}
	g := &Git{Commit: head.Hash().String()}
	if head.Name().IsBranch() {
		g.Branch = head.Name().Short()
	}
	return g
}
