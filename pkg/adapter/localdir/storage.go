// Package localdir stores backup files in a local directory.
package localdir

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/m-mizutani/goerr/v2"

	"github.com/AndresMoros/firestore-backup-manager/pkg/domain/model"
)

// Store implements interfaces.BackupStore on a directory
type Store struct {
	dir string
}

// NewStore creates the directory when absent.
func NewStore(dir string) (*Store, error) {
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, goerr.Wrap(err, "failed to create backup directory", goerr.V("dir", dir))
	}
	return &Store{dir: dir}, nil
}

func (s *Store) Save(_ context.Context, name string, data []byte) error {
	path := filepath.Join(s.dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return goerr.Wrap(err, "failed to write backup file", goerr.V("path", path))
	}
	return nil
}

func (s *Store) Load(_ context.Context, name string) ([]byte, error) {
	path := filepath.Join(s.dir, name)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read backup file", goerr.V("path", path))
	}
	if len(data) == 0 {
		return nil, goerr.New("backup file is empty", goerr.V("path", path))
	}
	return data, nil
}

// Latest picks the newest backup by name; the timestamp stamp in the file
// name sorts lexicographically.
func (s *Store) Latest(_ context.Context, collection string) (string, error) {
	prefix := model.BackupFilePrefix(collection)

	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return "", goerr.Wrap(err, "failed to list backup directory", goerr.V("dir", s.dir))
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if strings.HasPrefix(name, prefix) && strings.HasSuffix(name, ".json") {
			names = append(names, name)
		}
	}
	if len(names) == 0 {
		return "", goerr.New("no backup file found", goerr.V("collection", collection), goerr.V("dir", s.dir))
	}

	sort.Strings(names)
	return names[len(names)-1], nil
}
