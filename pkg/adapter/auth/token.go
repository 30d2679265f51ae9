// Package auth builds OAuth2 token sources from service account keys. The
// token exchange itself (signed JWT assertion for a short-lived bearer token)
// is handled by golang.org/x/oauth2; one token source serves a whole run.
package auth

import (
	"context"
	"net/http"
	"os"

	"github.com/m-mizutani/goerr/v2"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

// DatastoreScope grants access to the Firestore document API.
const DatastoreScope = "https://www.googleapis.com/auth/datastore"

// TokenSource reads a service account key file and returns a token source for
// the given scopes. Invalid credentials surface here, before any backup or
// restore work starts.
func TokenSource(ctx context.Context, credentialsFile string, scopes ...string) (oauth2.TokenSource, error) {
	if credentialsFile == "" {
		return nil, goerr.New("service account key file is required")
	}

	data, err := os.ReadFile(credentialsFile)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read service account key", goerr.V("path", credentialsFile))
	}

	conf, err := google.JWTConfigFromJSON(data, scopes...)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to parse service account key", goerr.V("path", credentialsFile))
	}

	return conf.TokenSource(ctx), nil
}

// HTTPClient wraps a token source in an HTTP client that attaches bearer
// tokens to every request.
func HTTPClient(ctx context.Context, ts oauth2.TokenSource) *http.Client {
	return oauth2.NewClient(ctx, ts)
}
