package firebackup

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"

	"github.com/AndresMoros/firestore-backup-manager/pkg/adapter/firestore"
	"github.com/AndresMoros/firestore-backup-manager/pkg/adapter/localdir"
	"github.com/AndresMoros/firestore-backup-manager/pkg/domain/interfaces"
	"github.com/AndresMoros/firestore-backup-manager/pkg/domain/model"
	"github.com/AndresMoros/firestore-backup-manager/pkg/usecase"
)

// RestoreResult is the per-run tally of a restore: attempted, succeeded and
// failed document counts.
type RestoreResult = model.RestoreResult

// Client is the main client for backup and restore operations
type Client struct {
	projectID string
	client    interfaces.DocumentClient
	store     interfaces.BackupStore
	options   *options
	logger    *slog.Logger
}

// New creates a new firebackup client
func New(ctx context.Context, projectID, databaseID string, opts ...Option) (*Client, error) {
	options := applyOptions(opts)

	// Validate required parameters
	if projectID == "" {
		return nil, goerr.New("project ID is required")
	}
	if databaseID == "" {
		return nil, goerr.New("database ID is required")
	}

	client, err := firestore.NewClient(ctx, firestore.Config{
		ProjectID:   projectID,
		DatabaseID:  databaseID,
		Credentials: options.CredentialsFile,
		HTTPClient:  options.HTTPClient,
		PageSize:    options.PageSize,
	})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create Firestore client")
	}

	store := options.Store
	if store == nil {
		store, err = localdir.NewStore(options.StorageDir)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to open backup directory")
		}
	}

	return &Client{
		projectID: projectID,
		client:    client,
		store:     store,
		options:   options,
		logger:    options.Logger,
	}, nil
}

// Backup exports one collection and returns the name of the written backup
// file.
func (c *Client) Backup(ctx context.Context, collection string) (string, error) {
	export := usecase.NewExport(c.client, c.store, c.logger)

	result, err := export.Execute(ctx, collection)
	if err != nil {
		return "", &BackupError{Collection: collection, Cause: err}
	}

	return result.File, nil
}

// Restore writes a backup file back into a collection. An empty file name
// picks the newest backup. Per-document failures do not abort the run; they
// are counted in the result.
func (c *Client) Restore(ctx context.Context, collection, file string) (*RestoreResult, error) {
	restore := usecase.NewRestore(c.client, c.store, c.logger, c.options.Parallel)

	result, err := restore.Execute(ctx, collection, file)
	if err != nil {
		return nil, &RestoreError{Collection: collection, Cause: err}
	}

	return result, nil
}
