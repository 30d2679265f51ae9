package usecase

import (
	"context"
	"log/slog"
	"sync"

	"github.com/m-mizutani/goerr/v2"
	"golang.org/x/sync/errgroup"

	"github.com/AndresMoros/firestore-backup-manager/pkg/codec"
	"github.com/AndresMoros/firestore-backup-manager/pkg/domain/interfaces"
	"github.com/AndresMoros/firestore-backup-manager/pkg/domain/model"
)

// Restore handles a best-effort batched write of a backup file back into a
// collection. A failed document does not halt the batch.
type Restore struct {
	client   interfaces.DocumentClient
	store    interfaces.BackupStore
	codec    *codec.Codec
	logger   *slog.Logger
	parallel int
}

// NewRestore creates a new Restore use case. parallel <= 1 means sequential
// upserts.
func NewRestore(client interfaces.DocumentClient, store interfaces.BackupStore, logger *slog.Logger, parallel int) *Restore {
	if parallel < 1 {
		parallel = 1
	}
	return &Restore{
		client:   client,
		store:    store,
		codec:    codec.New(logger),
		logger:   logger,
		parallel: parallel,
	}
}

// Execute loads the named backup file (or the newest one when file is empty)
// and upserts every record. The returned tally is the terminal status of the
// run; only load/parse failures are fatal.
func (r *Restore) Execute(ctx context.Context, collection string, file string) (*model.RestoreResult, error) {
	if file == "" {
		latest, err := r.store.Latest(ctx, collection)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to locate latest backup", goerr.V("collection", collection))
		}
		file = latest
	}

	r.logger.Info("Starting restore",
		slog.String("collection", collection),
		slog.String("file", file))

	data, err := r.store.Load(ctx, file)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to load backup", goerr.V("file", file))
	}

	backup, err := model.ParseBackup(data)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to parse backup", goerr.V("file", file))
	}

	result := &model.RestoreResult{Attempted: len(backup)}
	if r.parallel > 1 {
		r.restoreParallel(ctx, collection, backup, result)
	} else {
		for i, doc := range backup {
			r.record(result, r.restoreDocument(ctx, collection, i, doc))
		}
	}

	r.logger.Info("Restore completed",
		slog.String("collection", collection),
		slog.Int("attempted", result.Attempted),
		slog.Int("succeeded", result.Succeeded),
		slog.Int("failed", result.Failed))

	return result, nil
}

// restoreParallel issues upserts through a bounded worker group. Failures are
// still per-document: the group never cancels.
func (r *Restore) restoreParallel(ctx context.Context, collection string, backup model.BackupSet, result *model.RestoreResult) {
	var mu sync.Mutex
	var eg errgroup.Group
	eg.SetLimit(r.parallel)

	for i, doc := range backup {
		eg.Go(func() error {
			err := r.restoreDocument(ctx, collection, i, doc)
			mu.Lock()
			r.record(result, err)
			mu.Unlock()
			return nil
		})
	}

	_ = eg.Wait()
}

// restoreDocument upserts one record. A record without a docId is a
// per-record failure, not a batch abort.
func (r *Restore) restoreDocument(ctx context.Context, collection string, index int, doc model.Document) error {
	docID := doc.DocID()
	if docID == "" {
		return &model.MalformedRecordError{Index: index}
	}

	fields := r.codec.EncodeFields(doc.DataFields())
	return r.client.Upsert(ctx, collection, docID, fields)
}

func (r *Restore) record(result *model.RestoreResult, err error) {
	if err != nil {
		result.Failed++
		r.logger.Warn("Failed to restore document", slog.Any("error", err))
		return
	}
	result.Succeeded++
}
