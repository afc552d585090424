// Package objectstore provides handle-based access to an S3-compatible
// object storage service.
//
// The package follows a strictly linear handle chain:
//
//	Client --> Bucket --> Blob
//
// Each handle is a thin reference object holding identifiers plus metadata
// cached from the most recent remote call. No authoritative state lives on
// this side of the wire: bucket names are globally unique on the service,
// blob names are unique within their bucket, and concurrent writers racing
// on the same names are resolved by the service (last write wins).
//
// # Handles
//
//   - Client: entry point, scoped to a project identifier. Issues
//     bucket-level operations (create, list, get).
//   - Bucket: named reference to a remote container. Issues blob-level
//     operations (list, get, delete) and constructs Blob handles.
//   - Blob: named reference to a remote object. Supports upload, download,
//     metadata read, and delete.
//
// Every operation is a single synchronous round trip that blocks until the
// service responds. There is no retry, no local recovery, and no ordering
// guarantee relative to other clients.
//
// # Errors
//
// Service failures are mapped onto package sentinels (ErrNotFound,
// ErrNameConflict, ErrPermissionDenied, ErrBucketNotEmpty) so callers can
// branch with errors.Is. Anything without a sentinel equivalent passes
// through unchanged.
//
// # Usage
//
//	client := objectstore.New("my-project", "", store)
//	bucket, err := client.CreateBucket(ctx, "backups")
//	err = bucket.Blob("dump.tar").UploadFromFile(ctx, "/tmp/dump.tar")
package objectstore
