package interfaces

import (
	"context"

	"github.com/AndresMoros/firestore-backup-manager/pkg/domain/model"
)

// DocumentClient is the interface for Firestore REST document operations
type DocumentClient interface {
	// FetchPage reads one page of a collection. An empty pageToken requests
	// the first page; a page without a NextPageToken is the final one.
	FetchPage(ctx context.Context, collection string, pageToken string) (*model.CollectionPage, error)

	// Upsert writes one document with PATCH semantics, creating it if absent
	// and overwriting its fields if present.
	Upsert(ctx context.Context, collection string, docID string, fields map[string]model.Value) error
}

// BackupStore is the interface for durable backup file storage
type BackupStore interface {
	Save(ctx context.Context, name string, data []byte) error
	Load(ctx context.Context, name string) ([]byte, error)

	// Latest returns the name of the most recent backup file for a
	// collection, or an error when none exists.
	Latest(ctx context.Context, collection string) (string, error)
}
