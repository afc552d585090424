package objectstore

import (
	"context"
	"fmt"

	"blob-manager/core/storage"

	"github.com/minio/minio-go/v7"
)

// Client is the entry point of the handle chain. It carries the project
// identifier and the storage transport; it holds no other state.
type Client struct {
	project string
	region  string
	store   storage.Client
}

// New creates a client scoped to the given project. The region is used when
// creating buckets and may be empty for the provider default.
func New(project, region string, store storage.Client) *Client {
	return &Client{
		project: project,
		region:  region,
		store:   store,
	}
}

// Project returns the project identifier the client was constructed with.
func (c *Client) Project() string {
	return c.project
}

// Bucket constructs a handle for the named bucket. No remote call is made;
// the bucket may or may not exist.
func (c *Client) Bucket(name string) *Bucket {
	return &Bucket{client: c, name: name}
}

// CreateBucket creates a new bucket and returns a handle to it. It fails
// with ErrNameConflict if the name is taken anywhere on the service and
// ErrPermissionDenied if the credentials cannot create buckets.
//
// The returned handle carries no creation time; GetBucket fetches it.
func (c *Client) CreateBucket(ctx context.Context, name string) (*Bucket, error) {
	err := c.store.MakeBucket(ctx, name, minio.MakeBucketOptions{Region: c.region})
	if err != nil {
		return nil, fmt.Errorf("failed to create bucket %q: %w", name, translate(err))
	}
	return &Bucket{client: c, name: name}, nil
}

// ListBuckets returns handles for every bucket visible to the credentials.
// The listing is a single remote fetch; re-invoke to restart it.
func (c *Client) ListBuckets(ctx context.Context) ([]*Bucket, error) {
	infos, err := c.store.ListBuckets(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list buckets: %w", translate(err))
	}

	buckets := make([]*Bucket, 0, len(infos))
	for _, info := range infos {
		buckets = append(buckets, &Bucket{
			client:  c,
			name:    info.Name,
			created: info.CreationDate,
		})
	}
	return buckets, nil
}

// GetBucket returns a handle with populated metadata for the named bucket,
// or ErrNotFound if it does not exist.
func (c *Client) GetBucket(ctx context.Context, name string) (*Bucket, error) {
	infos, err := c.store.ListBuckets(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get bucket %q: %w", name, translate(err))
	}

	for _, info := range infos {
		if info.Name == name {
			return &Bucket{
				client:  c,
				name:    name,
				created: info.CreationDate,
			}, nil
		}
	}
	return nil, fmt.Errorf("bucket %q: %w", name, ErrNotFound)
}
