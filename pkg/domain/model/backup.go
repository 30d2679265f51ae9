package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/m-mizutani/goerr/v2"
)

// DocIDField is the reserved field carrying the collection-relative document
// identifier in a backup record. It is injected after decoding and stripped
// before encoding; it is never written to Firestore as a data field.
const DocIDField = "docId"

// Document is one decoded Firestore document as plain values. Values are
// nil, bool, int64, float64, json.Number, string, []any or nested
// map[string]any.
type Document map[string]any

// DocID returns the document identifier, or "" if the record does not carry
// one.
func (d Document) DocID() string {
	id, _ := d[DocIDField].(string)
	return id
}

// DataFields returns a copy of the document without the reserved docId field.
func (d Document) DataFields() map[string]any {
	fields := make(map[string]any, len(d))
	for k, v := range d {
		if k == DocIDField {
			continue
		}
		fields[k] = v
	}
	return fields
}

// BackupSet is the full ordered document list produced by one collection
// export. It is never mutated after the export loop completes.
type BackupSet []Document

// Marshal serializes the backup set as a pretty-printed JSON array. An empty
// set serializes as "[]" rather than "null" so an empty collection still
// produces a well-formed backup file.
func (b BackupSet) Marshal() ([]byte, error) {
	if b == nil {
		b = BackupSet{}
	}
	data, err := json.MarshalIndent(b, "", "  ")
	if err != nil {
		return nil, goerr.Wrap(err, "failed to serialize backup set")
	}
	return data, nil
}

// ParseBackup deserializes a backup file. Numbers are kept as json.Number so
// integer fields survive the file round trip without float conversion.
func ParseBackup(data []byte) (BackupSet, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var backup BackupSet
	if err := dec.Decode(&backup); err != nil {
		return nil, goerr.Wrap(err, "failed to parse backup file")
	}
	return backup, nil
}

// backupTimeLayout matches the yyyyMMdd_HHmmss stamp used in backup file
// names.
const backupTimeLayout = "20060102_150405"

// BackupFileName builds the backup file name for a collection at the given
// local time: {collection}_backup_{yyyyMMdd_HHmmss}.json.
func BackupFileName(collection string, t time.Time) string {
	return fmt.Sprintf("%s_backup_%s.json", collection, t.Format(backupTimeLayout))
}

// BackupFilePrefix is the prefix shared by all backups of a collection, used
// by storage adapters to locate the most recent one.
func BackupFilePrefix(collection string) string {
	return collection + "_backup_"
}
