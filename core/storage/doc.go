// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client to provide a simplified interface for common
// operations like creating buckets, uploading objects, and listing contents.
// This abstraction supports both AWS S3 and self-hosted MinIO instances.
//
// # Client Interface
//
// The Client interface abstracts the underlying storage provider, making it
// easier to mock storage interactions for unit testing (as seen in
// core/storage/mocks). The higher-level handle chain in core/objectstore is
// built entirely on this interface.
//
// # Operations
//
//   - BucketExists / MakeBucket / RemoveBucket / ListBuckets: bucket lifecycle.
//   - StatObject: Fetches object metadata without the body.
//   - PutObject: Uploads content (with size and options).
//   - GetObject: Retrieves content as a stream.
//   - ListObjects: Lists objects in a bucket (supports prefix/recursive).
//   - RemoveObject: Deletes a single object.
//
// # Usage
//
//	client, err := storage.NewClient(config)
//	exists, err := client.BucketExists(ctx, "backups")
package storage
