package model

import (
	"os"

	"github.com/goccy/go-yaml"
	"github.com/m-mizutani/goerr/v2"
)

// RunConfig represents the YAML run configuration
type RunConfig struct {
	Project     string             `yaml:"project"`
	Database    string             `yaml:"database,omitempty"`
	PageSize    int                `yaml:"pageSize,omitempty"`
	Collections []CollectionConfig `yaml:"collections"`
	Storage     StorageConfig      `yaml:"storage,omitempty"`
}

// CollectionConfig names one collection to back up or restore
type CollectionConfig struct {
	Name string `yaml:"name"`
}

// StorageConfig selects where backup files live. DriveFolder takes precedence
// over OutputDir when both are set.
type StorageConfig struct {
	OutputDir   string `yaml:"outputDir,omitempty"`
	DriveFolder string `yaml:"driveFolder,omitempty"`
}

// Validate validates the run configuration
func (c *RunConfig) Validate() error {
	if len(c.Collections) == 0 {
		return goerr.New("at least one collection is required")
	}
	for _, col := range c.Collections {
		if col.Name == "" {
			return goerr.New("collection name is required")
		}
	}
	return nil
}

// CollectionNames returns the configured collection names in declaration order
func (c *RunConfig) CollectionNames() []string {
	names := make([]string, 0, len(c.Collections))
	for _, col := range c.Collections {
		names = append(names, col.Name)
	}
	return names
}

// LoadRunConfig loads a run configuration from a YAML file
func LoadRunConfig(path string) (*RunConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read run configuration", goerr.V("path", path))
	}

	var config RunConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, goerr.Wrap(err, "failed to parse run configuration", goerr.V("path", path))
	}

	return &config, nil
}
