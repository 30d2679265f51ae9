// Package drive stores backup files in a Google Drive folder.
package drive

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"golang.org/x/oauth2"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"

	"github.com/AndresMoros/firestore-backup-manager/pkg/domain/model"
)

const (
	folderMimeType = "application/vnd.google-apps.folder"
	jsonMimeType   = "application/json"
)

// Scope is the Drive scope the token source must carry. drive.file only
// reaches files this tool created, which is all it needs.
const Scope = drive.DriveFileScope

// Config represents Drive storage configuration
type Config struct {
	// Folder is the backup folder name. Looked up by name and created when
	// absent.
	Folder string

	TokenSource oauth2.TokenSource

	Logger *slog.Logger

	// HTTPClient and Endpoint override the authenticated service, mainly
	// for tests.
	HTTPClient *http.Client
	Endpoint   string
}

// Store implements interfaces.BackupStore on a Google Drive folder
type Store struct {
	svc      *drive.Service
	folderID string
	logger   *slog.Logger
}

// NewStore creates the Drive service and ensures the backup folder exists.
func NewStore(ctx context.Context, config Config) (*Store, error) {
	if config.Folder == "" {
		return nil, goerr.New("backup folder name is required")
	}
	logger := config.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	opts := []option.ClientOption{option.WithTokenSource(config.TokenSource)}
	if config.HTTPClient != nil {
		opts = []option.ClientOption{option.WithHTTPClient(config.HTTPClient)}
	}
	if config.Endpoint != "" {
		opts = append(opts, option.WithEndpoint(config.Endpoint))
	}

	svc, err := drive.NewService(ctx, opts...)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create Drive service")
	}

	folderID, err := ensureFolder(ctx, svc, config.Folder)
	if err != nil {
		return nil, err
	}

	logger.Debug("Using Drive backup folder", "name", config.Folder, "id", folderID)

	return &Store{svc: svc, folderID: folderID, logger: logger}, nil
}

// ensureFolder finds the named folder or creates it.
func ensureFolder(ctx context.Context, svc *drive.Service, name string) (string, error) {
	q := fmt.Sprintf("mimeType='%s' and name='%s' and trashed=false",
		folderMimeType, escapeQuery(name))

	list, err := svc.Files.List().Q(q).Fields("files(id, name)").PageSize(1).Context(ctx).Do()
	if err != nil {
		return "", goerr.Wrap(err, "failed to look up backup folder", goerr.V("folder", name))
	}
	if len(list.Files) > 0 {
		return list.Files[0].Id, nil
	}

	created, err := svc.Files.Create(&drive.File{
		Name:     name,
		MimeType: folderMimeType,
	}).Fields("id").Context(ctx).Do()
	if err != nil {
		return "", goerr.Wrap(err, "failed to create backup folder", goerr.V("folder", name))
	}

	return created.Id, nil
}

// Save uploads one backup file into the folder.
func (s *Store) Save(ctx context.Context, name string, data []byte) error {
	_, err := s.svc.Files.Create(&drive.File{
		Name:     name,
		MimeType: jsonMimeType,
		Parents:  []string{s.folderID},
	}).Media(bytes.NewReader(data)).Fields("id").Context(ctx).Do()
	if err != nil {
		return goerr.Wrap(err, "failed to upload backup file", goerr.V("name", name))
	}

	s.logger.Info("Uploaded backup file", "name", name, "bytes", len(data))
	return nil
}

// Load downloads one backup file by name.
func (s *Store) Load(ctx context.Context, name string) ([]byte, error) {
	id, err := s.findByName(ctx, name)
	if err != nil {
		return nil, err
	}

	resp, err := s.svc.Files.Get(id).Context(ctx).Download()
	if err != nil {
		return nil, goerr.Wrap(err, "failed to download backup file", goerr.V("name", name))
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read backup file", goerr.V("name", name))
	}
	if len(data) == 0 {
		return nil, goerr.New("backup file is empty", goerr.V("name", name))
	}

	return data, nil
}

// Latest returns the name of the newest backup for a collection.
func (s *Store) Latest(ctx context.Context, collection string) (string, error) {
	prefix := model.BackupFilePrefix(collection)
	q := fmt.Sprintf("'%s' in parents and name contains '%s' and trashed=false",
		s.folderID, escapeQuery(prefix))

	list, err := s.svc.Files.List().Q(q).
		OrderBy("createdTime desc").
		Fields("files(id, name)").
		PageSize(10).
		Context(ctx).Do()
	if err != nil {
		return "", goerr.Wrap(err, "failed to list backup files", goerr.V("collection", collection))
	}

	// "contains" matches anywhere in the name; keep only real prefix hits.
	for _, f := range list.Files {
		if strings.HasPrefix(f.Name, prefix) {
			return f.Name, nil
		}
	}

	return "", goerr.New("no backup file found", goerr.V("collection", collection))
}

func (s *Store) findByName(ctx context.Context, name string) (string, error) {
	q := fmt.Sprintf("'%s' in parents and name='%s' and trashed=false",
		s.folderID, escapeQuery(name))

	list, err := s.svc.Files.List().Q(q).Fields("files(id, name)").PageSize(1).Context(ctx).Do()
	if err != nil {
		return "", goerr.Wrap(err, "failed to look up backup file", goerr.V("name", name))
	}
	if len(list.Files) == 0 {
		return "", goerr.New("backup file not found", goerr.V("name", name))
	}

	return list.Files[0].Id, nil
}

// escapeQuery escapes single quotes and backslashes for a Drive query string.
func escapeQuery(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return strings.ReplaceAll(s, `'`, `\'`)
}
