package buckets

import (
	"context"
	"io"

	"blob-manager/core/journal"
	"blob-manager/core/objectstore"

	"go.uber.org/zap"
)

// Service handles bucket and blob operations for the gateway.
type Service struct {
	client  *objectstore.Client
	journal *journal.Journal
	logger  *zap.Logger
}

// NewService creates a new buckets service. jrnl may be nil when journaling
// is disabled.
func NewService(client *objectstore.Client, jrnl *journal.Journal, logger *zap.Logger) *Service {
	return &Service{
		client:  client,
		journal: jrnl,
		logger:  logger,
	}
}

// ListBuckets returns every bucket visible to the configured credentials.
func (s *Service) ListBuckets(ctx context.Context) ([]BucketView, error) {
	bkts, err := s.client.ListBuckets(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]BucketView, 0, len(bkts))
	for _, b := range bkts {
		views = append(views, bucketView(s.client.Project(), b))
	}
	return views, nil
}

// CreateBucket creates a bucket and returns its view.
func (s *Service) CreateBucket(ctx context.Context, name string) (BucketView, error) {
	b, err := s.client.CreateBucket(ctx, name)
	if err != nil {
		return BucketView{}, err
	}
	s.record(ctx, "mkbucket", name, "", 0)
	return bucketView(s.client.Project(), b), nil
}

// GetBucket returns the view of an existing bucket.
func (s *Service) GetBucket(ctx context.Context, name string) (BucketView, error) {
	b, err := s.client.GetBucket(ctx, name)
	if err != nil {
		return BucketView{}, err
	}
	return bucketView(s.client.Project(), b), nil
}

// DeleteBucket removes an empty bucket.
func (s *Service) DeleteBucket(ctx context.Context, name string) error {
	b, err := s.client.GetBucket(ctx, name)
	if err != nil {
		return err
	}
	if err := b.Delete(ctx); err != nil {
		return err
	}
	s.record(ctx, "rmbucket", name, "", 0)
	return nil
}

// ListBlobs returns views for every blob in the bucket.
func (s *Service) ListBlobs(ctx context.Context, bucket string) ([]BlobView, error) {
	items, err := s.client.Bucket(bucket).ListBlobs(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]BlobView, 0, len(items))
	for _, b := range items {
		views = append(views, blobView(bucket, b))
	}
	return views, nil
}

// GetBlob returns the view of a single blob with fetched metadata.
func (s *Service) GetBlob(ctx context.Context, bucket, name string) (BlobView, error) {
	blob, err := s.client.Bucket(bucket).GetBlob(ctx, name)
	if err != nil {
		return BlobView{}, err
	}
	return blobView(bucket, blob), nil
}

// UploadBlob streams size bytes from r into the named blob.
func (s *Service) UploadBlob(ctx context.Context, bucket, name string, r io.Reader, size int64) (BlobView, error) {
	blob := s.client.Bucket(bucket).Blob(name)
	if err := blob.Upload(ctx, r, size); err != nil {
		return BlobView{}, err
	}
	s.record(ctx, "upload", bucket, name, blob.Size())
	return blobView(bucket, blob), nil
}

// DownloadBlob opens a stream over the blob content. The caller owns
// closing the reader.
func (s *Service) DownloadBlob(ctx context.Context, bucket, name string) (io.ReadCloser, BlobView, error) {
	blob := s.client.Bucket(bucket).Blob(name)
	rc, err := blob.Download(ctx)
	if err != nil {
		return nil, BlobView{}, err
	}
	s.record(ctx, "download", bucket, name, blob.Size())
	return rc, blobView(bucket, blob), nil
}

// DeleteBlob removes the named blob.
func (s *Service) DeleteBlob(ctx context.Context, bucket, name string) error {
	if err := s.client.Bucket(bucket).Blob(name).Delete(ctx); err != nil {
		return err
	}
	s.record(ctx, "delete", bucket, name, 0)
	return nil
}

// record journals an operation. Journal failures never fail the request.
func (s *Service) record(ctx context.Context, op, bucket, blob string, size int64) {
	err := s.journal.Record(ctx, journal.Entry{
		Op:     op,
		Bucket: bucket,
		Blob:   blob,
		Size:   size,
	})
	if err != nil {
		s.logger.Warn("Journal write failed",
			zap.String("op", op),
			zap.String("bucket", bucket),
			zap.Error(err),
		)
	}
}
