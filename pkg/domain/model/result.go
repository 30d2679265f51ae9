package model

import "fmt"

// RestoreResult is the tally of one restore run. A failed upsert or a
// malformed record counts as a failure without halting the batch.
type RestoreResult struct {
	Attempted int
	Succeeded int
	Failed    int
}

// Summary returns the terminal status line for the run.
func (r RestoreResult) Summary() string {
	return fmt.Sprintf("restored %d of %d documents", r.Succeeded, r.Attempted)
}

// ValidationReport describes the shape of a backup file without touching the
// remote database.
type ValidationReport struct {
	Records        int
	MissingDocID   []int
	TopLevelFields int
}

// OK reports whether every record carries a docId.
func (r ValidationReport) OK() bool {
	return len(r.MissingDocID) == 0
}
