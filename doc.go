// Package firebackup backs up Firestore document collections to JSON files
// and restores them, working directly against the Firestore REST API.
//
// A backup is one JSON array per collection: every document becomes a plain
// JSON object with its typed Firestore field values decoded, plus a reserved
// "docId" field holding the document identifier. Restore reverses the
// conversion and PATCHes each document back, so re-running a restore is
// idempotent.
//
// # Basic Usage
//
// Create a client and back up a collection:
//
//	ctx := context.Background()
//
//	client, err := firebackup.New(ctx, "my-project", "(default)",
//	    firebackup.WithCredentialsFile("service-account.json"),
//	    firebackup.WithStorageDir("backups"),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	file, err := client.Backup(ctx, "users")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	log.Printf("wrote %s", file)
//
// # Restoring
//
// Restore the newest backup of a collection:
//
//	result, err := client.Restore(ctx, "users", "")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	log.Println(result.Summary())
//
// Restore is best-effort: a document that fails to write is logged and
// counted in the result, and the rest of the batch still runs. Page fetch
// failures during Backup are fatal instead; a partial export is never
// persisted.
//
// # Value Conversion
//
// Firestore's typed wire values (stringValue, integerValue, mapValue, ...)
// are converted to plain JSON both ways. Two conversions are lossy:
//
//   - Integers ride through the backup file as JSON numbers; values beyond
//     53-bit precision may lose digits if the file is edited by tools that
//     read numbers as floats. The tool itself parses them as arbitrary
//     precision decimals.
//
//   - A string matching the timestamp shape YYYY-MM-DDTHH:MM:SS.sssZ is
//     re-encoded as a timestamp on restore. The backup file carries no type
//     tags, so a plain string of that shape is indistinguishable from a
//     timestamp.
//
// Wire value tags the tool does not handle (referenceValue, geoPointValue,
// bytesValue) decode to null with a logged warning rather than failing the
// backup.
//
// # Error Handling
//
// The package defines structured error types that can be inspected using
// errors.As:
//
//   - [BackupError]: returned by Backup when an export fails
//
//   - [RestoreError]: returned by Restore when the run cannot start
//
//     var bkErr *firebackup.BackupError
//     if errors.As(err, &bkErr) {
//     fmt.Printf("backing up %q failed: %v\n", bkErr.Collection, bkErr.Cause)
//     }
package firebackup
