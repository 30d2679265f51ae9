package cli

import (
	"context"
	"log/slog"
	"os"

	"github.com/m-mizutani/clog"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/AndresMoros/firestore-backup-manager/pkg/adapter/auth"
	"github.com/AndresMoros/firestore-backup-manager/pkg/adapter/drive"
	"github.com/AndresMoros/firestore-backup-manager/pkg/adapter/firestore"
	"github.com/AndresMoros/firestore-backup-manager/pkg/adapter/localdir"
	"github.com/AndresMoros/firestore-backup-manager/pkg/domain/interfaces"
	"github.com/AndresMoros/firestore-backup-manager/pkg/domain/model"
)

// getLogger gets or creates a logger from context
func getLogger(ctx context.Context) *slog.Logger {
	if logger := ctxlog.From(ctx); logger != nil {
		return logger
	}
	return slog.New(clog.New(
		clog.WithWriter(os.Stderr),
		clog.WithLevel(slog.LevelInfo),
	))
}

// newDocumentClient builds the Firestore REST client from global flags.
func newDocumentClient(ctx context.Context, c *cli.Command, pageSize int) (interfaces.DocumentClient, error) {
	if c.String("project") == "" {
		return nil, goerr.New("project flag is required")
	}

	client, err := firestore.NewClient(ctx, firestore.Config{
		ProjectID:   c.String("project"),
		DatabaseID:  c.String("database"),
		Credentials: c.String("credentials"),
		PageSize:    pageSize,
	})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create Firestore client")
	}

	return client, nil
}

// newBackupStore picks Drive when a folder is configured, a local directory
// otherwise. Flags win over the run configuration file.
func newBackupStore(ctx context.Context, c *cli.Command, storage model.StorageConfig) (interfaces.BackupStore, error) {
	folder := c.String("drive-folder")
	if folder == "" {
		folder = storage.DriveFolder
	}

	if folder != "" {
		ts, err := auth.TokenSource(ctx, c.String("credentials"), drive.Scope)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to create Drive token source")
		}
		store, err := drive.NewStore(ctx, drive.Config{
			Folder:      folder,
			TokenSource: ts,
			Logger:      getLogger(ctx),
		})
		if err != nil {
			return nil, goerr.Wrap(err, "failed to open Drive backup folder")
		}
		return store, nil
	}

	dir := c.String("output")
	if dir == "" {
		dir = storage.OutputDir
	}

	store, err := localdir.NewStore(dir)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to open backup directory")
	}
	return store, nil
}
