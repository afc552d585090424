package objectstore

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/minio/minio-go/v7"
)

// Blob is a named reference to a remote object within a bucket. The id,
// size, and updated fields reflect the last-fetched server state; no
// coherence guarantee exists beyond the most recent explicit fetch.
type Blob struct {
	bucket *Bucket
	name   string

	id      string
	size    int64
	updated time.Time
}

// Name returns the blob name, unique within its bucket.
func (b *Blob) Name() string {
	return b.name
}

// ID returns the server-assigned object identifier (ETag) as of the last
// fetch or upload.
func (b *Blob) ID() string {
	return b.id
}

// Size returns the object size in bytes as of the last fetch or upload.
func (b *Blob) Size() int64 {
	return b.size
}

// Updated returns the last-modified time as of the last fetch or upload.
func (b *Blob) Updated() time.Time {
	return b.updated
}

// Upload transmits size bytes from r as the object body, replacing any
// previous content under the same name. Cached metadata is refreshed from
// the upload result.
func (b *Blob) Upload(ctx context.Context, r io.Reader, size int64) error {
	info, err := b.bucket.client.store.PutObject(ctx, b.bucket.name, b.name, r, size, minio.PutObjectOptions{
		ContentType: "application/octet-stream",
	})
	if err != nil {
		return fmt.Errorf("failed to upload blob %q/%q: %w", b.bucket.name, b.name, translate(err))
	}

	b.id = info.ETag
	b.size = info.Size
	b.updated = info.LastModified
	return nil
}

// UploadFromFile reads the local file at path in full and transmits it as
// the object body. Local read failures surface as *os.PathError; transfer
// failures as mapped service errors.
func (b *Blob) UploadFromFile(ctx context.Context, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	stat, err := f.Stat()
	if err != nil {
		return err
	}

	return b.Upload(ctx, f, stat.Size())
}

// Download returns a reader over the full object content. It fails with
// ErrNotFound if the blob is absent. Cached metadata is refreshed as a side
// effect. The caller owns closing the reader.
func (b *Blob) Download(ctx context.Context) (io.ReadCloser, error) {
	// GetObject opens lazily and would only report a missing key on the
	// first read, so stat up front to surface ErrNotFound here.
	info, err := b.bucket.client.store.StatObject(ctx, b.bucket.name, b.name, minio.StatObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to download blob %q/%q: %w", b.bucket.name, b.name, translate(err))
	}

	rc, err := b.bucket.client.store.GetObject(ctx, b.bucket.name, b.name, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to download blob %q/%q: %w", b.bucket.name, b.name, translate(err))
	}

	b.id = info.ETag
	b.size = info.Size
	b.updated = info.LastModified
	return rc, nil
}

// DownloadToFile fetches the full remote content and writes it to the local
// path, truncating any existing file. It fails with ErrNotFound if the blob
// is absent.
func (b *Blob) DownloadToFile(ctx context.Context, path string) error {
	rc, err := b.Download(ctx)
	if err != nil {
		return err
	}
	defer rc.Close()

	f, err := os.Create(path)
	if err != nil {
		return err
	}

	if _, err := io.Copy(f, rc); err != nil {
		f.Close()
		return fmt.Errorf("failed to write blob %q/%q to %s: %w", b.bucket.name, b.name, path, err)
	}
	return f.Close()
}

// Delete removes the remote object. It fails with ErrNotFound if the blob
// is absent.
func (b *Blob) Delete(ctx context.Context) error {
	// The service deletes missing keys silently, so stat first to report
	// ErrNotFound on absent blobs.
	if _, err := b.bucket.client.store.StatObject(ctx, b.bucket.name, b.name, minio.StatObjectOptions{}); err != nil {
		return fmt.Errorf("failed to delete blob %q/%q: %w", b.bucket.name, b.name, translate(err))
	}

	if err := b.bucket.client.store.RemoveObject(ctx, b.bucket.name, b.name, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("failed to delete blob %q/%q: %w", b.bucket.name, b.name, translate(err))
	}
	return nil
}
