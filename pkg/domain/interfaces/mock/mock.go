package mock

import (
	"context"

	"github.com/AndresMoros/firestore-backup-manager/pkg/domain/model"
)

// DocumentClientMock is a func-field mock of interfaces.DocumentClient
type DocumentClientMock struct {
	FetchPageFunc func(ctx context.Context, collection string, pageToken string) (*model.CollectionPage, error)
	UpsertFunc    func(ctx context.Context, collection string, docID string, fields map[string]model.Value) error
}

func (m *DocumentClientMock) FetchPage(ctx context.Context, collection string, pageToken string) (*model.CollectionPage, error) {
	return m.FetchPageFunc(ctx, collection, pageToken)
}

func (m *DocumentClientMock) Upsert(ctx context.Context, collection string, docID string, fields map[string]model.Value) error {
	return m.UpsertFunc(ctx, collection, docID, fields)
}

// BackupStoreMock is a func-field mock of interfaces.BackupStore
type BackupStoreMock struct {
	SaveFunc   func(ctx context.Context, name string, data []byte) error
	LoadFunc   func(ctx context.Context, name string) ([]byte, error)
	LatestFunc func(ctx context.Context, collection string) (string, error)
}

func (m *BackupStoreMock) Save(ctx context.Context, name string, data []byte) error {
	return m.SaveFunc(ctx, name, data)
}

func (m *BackupStoreMock) Load(ctx context.Context, name string) ([]byte, error) {
	return m.LoadFunc(ctx, name)
}

func (m *BackupStoreMock) Latest(ctx context.Context, collection string) (string, error) {
	return m.LatestFunc(ctx, collection)
}
