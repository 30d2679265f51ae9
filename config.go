package firebackup

import "github.com/AndresMoros/firestore-backup-manager/pkg/domain/model"

// RunConfig is the YAML run configuration accepted by the CLI and usable by
// library callers for the same purpose.
type RunConfig = model.RunConfig

// LoadRunConfig loads a run configuration from a YAML file
func LoadRunConfig(path string) (*RunConfig, error) {
	return model.LoadRunConfig(path)
}
