package objectstore

import (
	"context"
	"fmt"
	"time"

	"github.com/minio/minio-go/v7"
)

// Bucket is a named reference to a remote container. The creation time is
// cached metadata from the most recent fetch; the name string is the only
// thing used to address the remote resource.
type Bucket struct {
	client  *Client
	name    string
	created time.Time
}

// Name returns the bucket name.
func (b *Bucket) Name() string {
	return b.name
}

// Created returns the bucket creation time as of the last fetch. It is zero
// on handles obtained from CreateBucket; GetBucket populates it.
func (b *Bucket) Created() time.Time {
	return b.created
}

// Exists reports whether the bucket currently exists on the service.
func (b *Bucket) Exists(ctx context.Context) (bool, error) {
	exists, err := b.client.store.BucketExists(ctx, b.name)
	if err != nil {
		return false, fmt.Errorf("failed to check bucket %q: %w", b.name, translate(err))
	}
	return exists, nil
}

// Blob constructs a handle for the named blob. No remote call is made; the
// blob may or may not exist.
func (b *Bucket) Blob(name string) *Blob {
	return &Blob{bucket: b, name: name}
}

// ListBlobs returns handles with populated metadata for every blob in the
// bucket. The listing is finite and restartable by re-invoking.
func (b *Bucket) ListBlobs(ctx context.Context) ([]*Blob, error) {
	var blobs []*Blob
	for info := range b.client.store.ListObjects(ctx, b.name, minio.ListObjectsOptions{Recursive: true}) {
		if info.Err != nil {
			return nil, fmt.Errorf("failed to list blobs in %q: %w", b.name, translate(info.Err))
		}
		blobs = append(blobs, &Blob{
			bucket:  b,
			name:    info.Key,
			id:      info.ETag,
			size:    info.Size,
			updated: info.LastModified,
		})
	}
	return blobs, nil
}

// GetBlob returns a handle with populated metadata for the named blob, or
// ErrNotFound if no such blob exists.
func (b *Bucket) GetBlob(ctx context.Context, name string) (*Blob, error) {
	info, err := b.client.store.StatObject(ctx, b.name, name, minio.StatObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to get blob %q/%q: %w", b.name, name, translate(err))
	}
	return &Blob{
		bucket:  b,
		name:    name,
		id:      info.ETag,
		size:    info.Size,
		updated: info.LastModified,
	}, nil
}

// Delete removes the bucket. It fails with ErrBucketNotEmpty if the bucket
// still holds blobs and ErrNotFound if the bucket does not exist.
func (b *Bucket) Delete(ctx context.Context) error {
	if err := b.client.store.RemoveBucket(ctx, b.name); err != nil {
		return fmt.Errorf("failed to delete bucket %q: %w", b.name, translate(err))
	}
	return nil
}
