package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/AndresMoros/firestore-backup-manager/pkg/codec"
	"github.com/AndresMoros/firestore-backup-manager/pkg/domain/interfaces"
	"github.com/AndresMoros/firestore-backup-manager/pkg/domain/model"
)

// Export handles one full paginated read of a collection into a backup file
type Export struct {
	client interfaces.DocumentClient
	store  interfaces.BackupStore
	codec  *codec.Codec
	logger *slog.Logger
	now    func() time.Time
}

// NewExport creates a new Export use case
func NewExport(client interfaces.DocumentClient, store interfaces.BackupStore, logger *slog.Logger) *Export {
	return &Export{
		client: client,
		store:  store,
		codec:  codec.New(logger),
		logger: logger,
		now:    time.Now,
	}
}

// ExportResult describes one completed export
type ExportResult struct {
	File      string
	Documents int
	Pages     int
}

// Execute reads every page of the collection, decodes each document, and
// persists the backup set. Any page failure is fatal and nothing is
// persisted.
func (e *Export) Execute(ctx context.Context, collection string) (*ExportResult, error) {
	e.logger.Info("Starting export", slog.String("collection", collection))

	backup := model.BackupSet{}
	pageToken := ""
	pages := 0

	// Always at least one fetch; a response without a token ends the loop,
	// which also covers an empty collection.
	for {
		page, err := e.client.FetchPage(ctx, collection, pageToken)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to fetch collection page",
				goerr.V("collection", collection), goerr.V("page", pages+1))
		}
		pages++

		for _, doc := range page.Documents {
			fields := e.codec.DecodeFields(doc.Fields)
			fields[model.DocIDField] = doc.ID()
			backup = append(backup, fields)
		}

		e.logger.Debug("Fetched page",
			slog.Int("page", pages),
			slog.Int("documents", len(page.Documents)),
			slog.Bool("last", page.NextPageToken == ""))

		if page.NextPageToken == "" {
			break
		}
		pageToken = page.NextPageToken
	}

	data, err := backup.Marshal()
	if err != nil {
		return nil, err
	}

	name := model.BackupFileName(collection, e.now())
	if err := e.store.Save(ctx, name, data); err != nil {
		return nil, goerr.Wrap(err, "failed to persist backup", goerr.V("file", name))
	}

	e.logger.Info("Export completed",
		slog.String("collection", collection),
		slog.String("file", name),
		slog.Int("documents", len(backup)),
		slog.Int("pages", pages))

	return &ExportResult{File: name, Documents: len(backup), Pages: pages}, nil
}
