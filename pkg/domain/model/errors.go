package model

import "fmt"

// maxErrorBody caps the response body carried in error messages.
const maxErrorBody = 512

// RemoteError represents a non-success HTTP response from the Firestore REST
// API. For page fetches it is fatal to the export; for upserts it is counted
// and the batch continues.
type RemoteError struct {
	Operation  string
	StatusCode int
	Body       string
}

func (e *RemoteError) Error() string {
	body := e.Body
	if len(body) > maxErrorBody {
		body = body[:maxErrorBody] + "..."
	}
	return fmt.Sprintf("firestore %s failed with status %d: %s", e.Operation, e.StatusCode, body)
}

// MalformedRecordError represents a backup record that cannot be restored
// because it lacks a docId. Restore skips the record and counts it as a
// failure.
type MalformedRecordError struct {
	Index int
}

func (e *MalformedRecordError) Error() string {
	return fmt.Sprintf("record %d has no %s field", e.Index, DocIDField)
}
