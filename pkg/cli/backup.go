package cli

import (
	"context"
	"fmt"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/AndresMoros/firestore-backup-manager/pkg/domain/model"
	"github.com/AndresMoros/firestore-backup-manager/pkg/usecase"
)

// NewBackupCommand creates the backup command
func NewBackupCommand() *cli.Command {
	return &cli.Command{
		Name:      "backup",
		Usage:     "Back up Firestore collections to JSON files",
		ArgsUsage: "[collection...]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Run configuration file path",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Local directory for backup files",
				Value:   ".",
			},
			&cli.StringFlag{
				Name:  "drive-folder",
				Usage: "Google Drive folder name (overrides --output)",
			},
			&cli.IntFlag{
				Name:  "page-size",
				Usage: "Documents per page request",
				Value: 300,
			},
		},
		Action: runBackup,
	}
}

func runBackup(ctx context.Context, c *cli.Command) error {
	logger := getLogger(ctx)

	collections := c.Args().Slice()
	storage := model.StorageConfig{}
	pageSize := int(c.Int("page-size"))

	// Run configuration fills in whatever the command line leaves out.
	if path := c.String("config"); path != "" {
		config, err := model.LoadRunConfig(path)
		if err != nil {
			return goerr.Wrap(err, "failed to load run configuration")
		}
		if err := config.Validate(); err != nil {
			return goerr.Wrap(err, "invalid run configuration", goerr.V("path", path))
		}
		if len(collections) == 0 {
			collections = config.CollectionNames()
		}
		if config.PageSize > 0 {
			pageSize = config.PageSize
		}
		storage = config.Storage
		if c.String("project") == "" && config.Project != "" {
			if err := c.Set("project", config.Project); err != nil {
				return goerr.Wrap(err, "failed to apply project from run configuration")
			}
		}
		if config.Database != "" {
			if err := c.Set("database", config.Database); err != nil {
				return goerr.Wrap(err, "failed to apply database from run configuration")
			}
		}
	}

	if len(collections) == 0 {
		return goerr.New("no collections to back up; pass collection names or a run configuration")
	}

	client, err := newDocumentClient(ctx, c, pageSize)
	if err != nil {
		return err
	}

	store, err := newBackupStore(ctx, c, storage)
	if err != nil {
		return err
	}

	export := usecase.NewExport(client, store, logger)

	for _, collection := range collections {
		result, err := export.Execute(ctx, collection)
		if err != nil {
			return goerr.Wrap(err, "backup failed", goerr.V("collection", collection))
		}
		fmt.Printf("✓ Backed up %d documents from %q to %s\n",
			result.Documents, collection, result.File)
	}

	return nil
}
