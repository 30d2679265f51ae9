package firestore_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/AndresMoros/firestore-backup-manager/pkg/adapter/firestore"
	"github.com/AndresMoros/firestore-backup-manager/pkg/domain/model"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*httptest.Server, *firestore.Client) {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := firestore.NewClient(context.Background(), firestore.Config{
		ProjectID:  "test-project",
		DatabaseID: "(default)",
		HTTPClient: srv.Client(),
		BaseURL:    srv.URL,
		PageSize:   2,
	})
	gt.NoError(t, err)

	return srv, client.(*firestore.Client)
}

func TestFetchPage(t *testing.T) {
	ctx := context.Background()

	t.Run("parses documents and continuation token", func(t *testing.T) {
		_, client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			gt.Equal(t, r.Method, http.MethodGet)
			gt.Equal(t, r.URL.Path, "/projects/test-project/databases/(default)/documents/users")
			gt.Equal(t, r.URL.Query().Get("pageSize"), "2")
			gt.Equal(t, r.URL.Query().Get("pageToken"), "")

			_, _ = io.WriteString(w, `{
				"documents": [
					{"name": "projects/test-project/databases/(default)/documents/users/a", "fields": {"n": {"integerValue": "1"}}},
					{"name": "projects/test-project/databases/(default)/documents/users/b", "fields": {"n": {"integerValue": "2"}}}
				],
				"nextPageToken": "tok-1"
			}`)
		})

		page, err := client.FetchPage(ctx, "users", "")
		gt.NoError(t, err)
		gt.Equal(t, len(page.Documents), 2)
		gt.Equal(t, page.Documents[0].ID(), "a")
		gt.Equal(t, *page.Documents[1].Fields["n"].IntegerValue, "2")
		gt.Equal(t, page.NextPageToken, "tok-1")
	})

	t.Run("passes the continuation token through", func(t *testing.T) {
		_, client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			gt.Equal(t, r.URL.Query().Get("pageToken"), "tok-1")
			_, _ = io.WriteString(w, `{}`)
		})

		page, err := client.FetchPage(ctx, "users", "tok-1")
		gt.NoError(t, err)
		gt.Equal(t, len(page.Documents), 0)
		gt.Equal(t, page.NextPageToken, "")
	})

	t.Run("empty body is the final empty page", func(t *testing.T) {
		_, client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		})

		page, err := client.FetchPage(ctx, "users", "")
		gt.NoError(t, err)
		gt.Equal(t, len(page.Documents), 0)
		gt.Equal(t, page.NextPageToken, "")
	})

	t.Run("non-200 maps to RemoteError", func(t *testing.T) {
		_, client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
			_, _ = io.WriteString(w, "permission denied")
		})

		_, err := client.FetchPage(ctx, "users", "")
		gt.Error(t, err)

		var remoteErr *model.RemoteError
		gt.Equal(t, errors.As(err, &remoteErr), true)
		gt.Equal(t, remoteErr.StatusCode, http.StatusForbidden)
		gt.Equal(t, remoteErr.Body, "permission denied")
	})
}

func TestUpsert(t *testing.T) {
	ctx := context.Background()

	t.Run("sends PATCH with the encoded field map", func(t *testing.T) {
		_, client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			gt.Equal(t, r.Method, http.MethodPatch)
			gt.Equal(t, r.URL.Path, "/projects/test-project/databases/(default)/documents/users/alice")

			body, err := io.ReadAll(r.Body)
			gt.NoError(t, err)

			var payload struct {
				Fields map[string]model.Value `json:"fields"`
			}
			gt.NoError(t, json.Unmarshal(body, &payload))
			gt.Equal(t, *payload.Fields["name"].StringValue, "Ada")

			_, _ = io.WriteString(w, `{}`)
		})

		err := client.Upsert(ctx, "users", "alice", map[string]model.Value{
			"name": model.StringValueOf("Ada"),
		})
		gt.NoError(t, err)
	})

	t.Run("non-200 maps to RemoteError without aborting the caller", func(t *testing.T) {
		_, client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusConflict)
			_, _ = io.WriteString(w, "conflict")
		})

		err := client.Upsert(ctx, "users", "alice", nil)
		gt.Error(t, err)

		var remoteErr *model.RemoteError
		gt.Equal(t, errors.As(err, &remoteErr), true)
		gt.Equal(t, remoteErr.StatusCode, http.StatusConflict)
	})
}

func TestNewClient(t *testing.T) {
	t.Run("project ID is required", func(t *testing.T) {
		_, err := firestore.NewClient(context.Background(), firestore.Config{})
		gt.Error(t, err)
	})

	t.Run("missing credentials fail before any request", func(t *testing.T) {
		_, err := firestore.NewClient(context.Background(), firestore.Config{
			ProjectID: "test-project",
		})
		gt.Error(t, err)
	})
}
