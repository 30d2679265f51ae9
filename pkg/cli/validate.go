package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/AndresMoros/firestore-backup-manager/pkg/usecase"
)

// NewValidateCommand creates the validate command
func NewValidateCommand() *cli.Command {
	return &cli.Command{
		Name:      "validate",
		Usage:     "Validate a backup file",
		ArgsUsage: "<file>",
		Action:    runValidate,
	}
}

func runValidate(ctx context.Context, c *cli.Command) error {
	logger := getLogger(ctx)

	if c.Args().Len() != 1 {
		return goerr.New("exactly one backup file is required")
	}
	path := c.Args().First()

	data, err := os.ReadFile(path)
	if err != nil {
		return goerr.Wrap(err, "failed to read backup file", goerr.V("path", path))
	}

	report, err := usecase.NewValidate(logger).Execute(data)
	if err != nil {
		return goerr.Wrap(err, "validation failed", goerr.V("path", path))
	}

	fmt.Printf("✓ Backup file is well-formed\n")
	fmt.Printf("  Records: %d\n", report.Records)
	fmt.Printf("  Distinct top-level fields: %d\n", report.TopLevelFields)

	if !report.OK() {
		return goerr.New("records missing docId cannot be restored",
			goerr.V("indices", report.MissingDocID))
	}

	return nil
}
