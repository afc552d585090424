package buckets

import (
	"time"

	"blob-manager/core/objectstore"
)

// BucketView is the JSON shape of a bucket handle.
type BucketView struct {
	Name    string    `json:"name"`
	Project string    `json:"project"`
	Created time.Time `json:"created,omitempty"`
}

// BlobView is the JSON shape of a blob handle with fetched metadata.
type BlobView struct {
	Bucket  string    `json:"bucket"`
	Name    string    `json:"name"`
	ID      string    `json:"id,omitempty"`
	Size    int64     `json:"size"`
	Updated time.Time `json:"updated,omitempty"`
}

func bucketView(project string, b *objectstore.Bucket) BucketView {
	return BucketView{
		Name:    b.Name(),
		Project: project,
		Created: b.Created(),
	}
}

func blobView(bucket string, b *objectstore.Blob) BlobView {
	return BlobView{
		Bucket:  bucket,
		Name:    b.Name(),
		ID:      b.ID(),
		Size:    b.Size(),
		Updated: b.Updated(),
	}
}
