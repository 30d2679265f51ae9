package cli

import (
	"context"
	"fmt"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/AndresMoros/firestore-backup-manager/pkg/domain/model"
	"github.com/AndresMoros/firestore-backup-manager/pkg/usecase"
)

// NewRestoreCommand creates the restore command
func NewRestoreCommand() *cli.Command {
	return &cli.Command{
		Name:      "restore",
		Usage:     "Restore a collection from a backup file (latest by default)",
		ArgsUsage: "<collection>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "file",
				Aliases: []string{"f"},
				Usage:   "Backup file name (default: newest backup of the collection)",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Local directory holding backup files",
				Value:   ".",
			},
			&cli.StringFlag{
				Name:  "drive-folder",
				Usage: "Google Drive folder name (overrides --output)",
			},
			&cli.IntFlag{
				Name:  "parallel",
				Usage: "Concurrent upserts (1 = sequential)",
				Value: 1,
			},
		},
		Action: runRestore,
	}
}

func runRestore(ctx context.Context, c *cli.Command) error {
	logger := getLogger(ctx)

	if c.Args().Len() != 1 {
		return goerr.New("exactly one collection is required")
	}
	collection := c.Args().First()

	client, err := newDocumentClient(ctx, c, 0)
	if err != nil {
		return err
	}

	store, err := newBackupStore(ctx, c, model.StorageConfig{})
	if err != nil {
		return err
	}

	restore := usecase.NewRestore(client, store, logger, int(c.Int("parallel")))

	result, err := restore.Execute(ctx, collection, c.String("file"))
	if err != nil {
		return goerr.Wrap(err, "restore failed", goerr.V("collection", collection))
	}

	fmt.Printf("✓ %s\n", result.Summary())
	if result.Failed > 0 {
		fmt.Printf("  %d documents failed; see the log and re-run, upserts are idempotent\n", result.Failed)
	}

	return nil
}
