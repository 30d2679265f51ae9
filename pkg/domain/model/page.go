package model

import "strings"

// RemoteDocument is one document as returned by the Firestore REST list
// endpoint: a fully-qualified resource name plus its typed field map.
type RemoteDocument struct {
	Name   string           `json:"name"`
	Fields map[string]Value `json:"fields"`
}

// ID returns the collection-relative document identifier, the last segment of
// the resource name (projects/{p}/databases/{db}/documents/{collection}/{id}).
func (d RemoteDocument) ID() string {
	idx := strings.LastIndex(d.Name, "/")
	if idx < 0 {
		return d.Name
	}
	return d.Name[idx+1:]
}

// CollectionPage is the result of one paginated read. A page without a
// NextPageToken is the final page.
type CollectionPage struct {
	Documents     []RemoteDocument `json:"documents"`
	NextPageToken string           `json:"nextPageToken"`
}
