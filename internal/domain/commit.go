package domain

import "strings"

// SaveOutcome is the terminal state of a commit attempt
type SaveOutcome string

const (
	OutcomeCommitted          SaveOutcome = "committed"
	OutcomePartiallyCommitted SaveOutcome = "partially_committed"
	OutcomeAborted            SaveOutcome = "aborted"
)

// CommitRequest is the input of a bookmark commit
type CommitRequest struct {
	Items               []TabRecord
	DestinationFolderID string
	// NewFolderName creates a subfolder when non-blank
	NewFolderName string
}

// CreatesFolder reports whether the request needs a new folder
func (r CommitRequest) CreatesFolder() bool {
	return strings.TrimSpace(r.NewFolderName) != ""
}

// CommitResult is the outcome of a bookmark commit
type CommitResult struct {
	Success    bool
	Count      int
	Attempted  int
	FolderID   string
	FolderName string
	Message    string
}

// Outcome classifies the result
func (r CommitResult) Outcome() SaveOutcome {
	switch {
	case !r.Success:
		return OutcomeAborted
	case r.Count < r.Attempted:
		return OutcomePartiallyCommitted
	default:
		return OutcomeCommitted
	}
}
