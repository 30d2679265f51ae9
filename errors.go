package firebackup

import "fmt"

// BackupError represents an error that occurred during a collection backup
type BackupError struct {
	Collection string
	Cause      error
}

func (e *BackupError) Error() string {
	return fmt.Sprintf("backup of collection %s failed: %v", e.Collection, e.Cause)
}

func (e *BackupError) Unwrap() error {
	return e.Cause
}

// RestoreError represents an error that aborted a collection restore before
// any documents could be written. Per-document upsert failures are not
// errors; they are counted in the RestoreResult.
type RestoreError struct {
	Collection string
	Cause      error
}

func (e *RestoreError) Error() string {
	return fmt.Sprintf("restore of collection %s failed: %v", e.Collection, e.Cause)
}

func (e *RestoreError) Unwrap() error {
	return e.Cause
}
