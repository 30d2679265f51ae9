package firestore

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"golang.org/x/time/rate"

	"github.com/AndresMoros/firestore-backup-manager/pkg/adapter/auth"
	"github.com/AndresMoros/firestore-backup-manager/pkg/domain/interfaces"
	"github.com/AndresMoros/firestore-backup-manager/pkg/domain/model"
)

const (
	defaultBaseURL  = "https://firestore.googleapis.com/v1"
	defaultPageSize = 300

	// Conservative defaults well below Firestore quota, one token per
	// request.
	requestsPerSecond = 8.0
	requestBurst      = 10
)

// Config represents client configuration
type Config struct {
	ProjectID  string
	DatabaseID string

	// Credentials is a service account key file path. Ignored when
	// HTTPClient is set.
	Credentials string

	// HTTPClient overrides the token-exchanging client, mainly for tests.
	HTTPClient *http.Client

	// BaseURL overrides the Firestore endpoint, mainly for tests.
	BaseURL string

	PageSize int
}

// Client talks to the Firestore REST document API
type Client struct {
	httpClient *http.Client
	baseURL    string
	projectID  string
	databaseID string
	pageSize   int
	limiter    *rate.Limiter
}

// NewClient creates a new Firestore REST client. When no HTTP client is
// supplied, a service account JWT exchange provides the bearer token.
func NewClient(ctx context.Context, config Config) (interfaces.DocumentClient, error) {
	if config.ProjectID == "" {
		return nil, goerr.New("project ID is required")
	}
	if config.DatabaseID == "" {
		config.DatabaseID = "(default)"
	}
	if config.BaseURL == "" {
		config.BaseURL = defaultBaseURL
	}
	if config.PageSize <= 0 {
		config.PageSize = defaultPageSize
	}

	httpClient := config.HTTPClient
	if httpClient == nil {
		ts, err := auth.TokenSource(ctx, config.Credentials, auth.DatastoreScope)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to create Firestore token source")
		}
		httpClient = auth.HTTPClient(ctx, ts)
	}

	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimSuffix(config.BaseURL, "/"),
		projectID:  config.ProjectID,
		databaseID: config.DatabaseID,
		pageSize:   config.PageSize,
		limiter:    rate.NewLimiter(rate.Limit(requestsPerSecond), requestBurst),
	}, nil
}

// documentsURL builds .../projects/{p}/databases/{db}/documents/{path}
func (c *Client) documentsURL(path string) string {
	return fmt.Sprintf("%s/projects/%s/databases/%s/documents/%s",
		c.baseURL, c.projectID, c.databaseID, path)
}

// FetchPage reads one page of a collection. A response with an empty body is
// the final page with nothing to return.
func (c *Client) FetchPage(ctx context.Context, collection string, pageToken string) (*model.CollectionPage, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, goerr.Wrap(err, "rate limiter interrupted")
	}

	u := fmt.Sprintf("%s?pageSize=%d", c.documentsURL(collection), c.pageSize)
	if pageToken != "" {
		u += "&pageToken=" + url.QueryEscape(pageToken)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to build page request")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, goerr.Wrap(err, "page request failed", goerr.V("collection", collection))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read page response")
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &model.RemoteError{
			Operation:  "page fetch",
			StatusCode: resp.StatusCode,
			Body:       string(body),
		}
	}

	if len(bytes.TrimSpace(body)) == 0 {
		return &model.CollectionPage{}, nil
	}

	var page model.CollectionPage
	if err := json.Unmarshal(body, &page); err != nil {
		return nil, goerr.Wrap(err, "failed to parse page response", goerr.V("collection", collection))
	}

	return &page, nil
}

// Upsert writes one document via PATCH, creating or overwriting it.
func (c *Client) Upsert(ctx context.Context, collection string, docID string, fields map[string]model.Value) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return goerr.Wrap(err, "rate limiter interrupted")
	}

	payload, err := json.Marshal(map[string]any{"fields": fields})
	if err != nil {
		return goerr.Wrap(err, "failed to serialize document", goerr.V("docId", docID))
	}

	u := c.documentsURL(collection + "/" + url.PathEscape(docID))
	req, err := http.NewRequestWithContext(ctx, http.MethodPatch, u, bytes.NewReader(payload))
	if err != nil {
		return goerr.Wrap(err, "failed to build upsert request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return goerr.Wrap(err, "upsert request failed", goerr.V("docId", docID))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return &model.RemoteError{
			Operation:  "upsert",
			StatusCode: resp.StatusCode,
			Body:       string(body),
		}
	}

	// Drain so the connection can be reused.
	_, _ = io.Copy(io.Discard, resp.Body)

	return nil
}
