package firebackup

import (
	"log/slog"
	"net/http"

	"github.com/AndresMoros/firestore-backup-manager/pkg/domain/interfaces"
)

// options represents client options
type options struct {
	// Logger for logging operations
	Logger *slog.Logger

	// CredentialsFile specifies the service account key file path
	CredentialsFile string

	// HTTPClient overrides the token-exchanging HTTP client (mainly for tests)
	HTTPClient *http.Client

	// PageSize is the number of documents per page request
	PageSize int

	// Parallel is the number of concurrent upserts during restore
	Parallel int

	// Store overrides the backup storage backend
	Store interfaces.BackupStore

	// StorageDir is the local backup directory used when no Store is set
	StorageDir string
}

// Option is a function that configures options
type Option func(*options)

// WithLogger sets the logger
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.Logger = logger
	}
}

// WithCredentialsFile sets the service account key file path
func WithCredentialsFile(path string) Option {
	return func(o *options) {
		o.CredentialsFile = path
	}
}

// WithHTTPClient sets a pre-authorized HTTP client
func WithHTTPClient(client *http.Client) Option {
	return func(o *options) {
		o.HTTPClient = client
	}
}

// WithPageSize sets the page size for collection reads
func WithPageSize(n int) Option {
	return func(o *options) {
		o.PageSize = n
	}
}

// WithParallel sets the number of concurrent upserts during restore
func WithParallel(n int) Option {
	return func(o *options) {
		o.Parallel = n
	}
}

// WithStore sets the backup storage backend
func WithStore(store interfaces.BackupStore) Option {
	return func(o *options) {
		o.Store = store
	}
}

// WithStorageDir sets the local backup directory
func WithStorageDir(dir string) Option {
	return func(o *options) {
		o.StorageDir = dir
	}
}

// applyOptions applies option functions to options
func applyOptions(opts []Option) *options {
	o := &options{
		Logger:     slog.New(slog.DiscardHandler),
		Parallel:   1,
		StorageDir: ".",
	}

	for _, opt := range opts {
		opt(o)
	}

	return o
}
