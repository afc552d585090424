package buckets_test

import (
	"bytes"
	"context"
	"io"
	"testing"
	"time"

	"blob-manager/core/journal"
	"blob-manager/core/objectstore"
	"blob-manager/core/storage/mocks"
	"blob-manager/feature/buckets"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newService(t *testing.T, store *mocks.Client) (*buckets.Service, *journal.Journal) {
	t.Helper()

	jrnl, err := journal.Connect(journal.Config{Driver: "sqlite", Name: ":memory:"})
	require.NoError(t, err)

	client := objectstore.New("test-project", "", store)
	return buckets.NewService(client, jrnl, zap.NewNop()), jrnl
}

func TestUploadBlobRecordsJournal(t *testing.T) {
	payload := []byte("journaled upload")

	store := new(mocks.Client)
	store.On("PutObject", mock.Anything, "backups", "dump.tar", mock.Anything, int64(len(payload)), mock.Anything).
		Return(minio.UploadInfo{ETag: "etag", Size: int64(len(payload)), LastModified: time.Now()}, nil)

	svc, jrnl := newService(t, store)

	view, err := svc.UploadBlob(context.Background(), "backups", "dump.tar",
		bytes.NewReader(payload), int64(len(payload)))
	require.NoError(t, err)
	assert.Equal(t, int64(len(payload)), view.Size)

	entries, err := jrnl.Recent(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "upload", entries[0].Op)
	assert.Equal(t, "backups", entries[0].Bucket)
	assert.Equal(t, "dump.tar", entries[0].Blob)
	assert.Equal(t, int64(len(payload)), entries[0].Size)
}

func TestDownloadBlobStreamsContent(t *testing.T) {
	payload := []byte("stream me")

	store := new(mocks.Client)
	store.On("StatObject", mock.Anything, "backups", "dump.tar", mock.Anything).
		Return(minio.ObjectInfo{Key: "dump.tar", Size: int64(len(payload))}, nil)
	store.On("GetObject", mock.Anything, "backups", "dump.tar", mock.Anything).
		Return(io.NopCloser(bytes.NewReader(payload)), nil)

	svc, jrnl := newService(t, store)

	rc, view, err := svc.DownloadBlob(context.Background(), "backups", "dump.tar")
	require.NoError(t, err)
	defer rc.Close()

	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, payload, data)
	assert.Equal(t, int64(len(payload)), view.Size)

	entries, err := jrnl.Recent(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "download", entries[0].Op)
}

func TestDeleteBlobFailureSkipsJournal(t *testing.T) {
	store := new(mocks.Client)
	store.On("StatObject", mock.Anything, "backups", "ghost.tar", mock.Anything).
		Return(minio.ObjectInfo{}, minio.ErrorResponse{Code: "NoSuchKey", Message: "missing"})

	svc, jrnl := newService(t, store)

	err := svc.DeleteBlob(context.Background(), "backups", "ghost.tar")
	assert.ErrorIs(t, err, objectstore.ErrNotFound)

	entries, err := jrnl.Recent(context.Background(), 10)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestListBlobs(t *testing.T) {
	store := new(mocks.Client)
	store.On("ListObjects", mock.Anything, "backups", mock.Anything).
		Return(func(ctx context.Context, bucketName string, opts minio.ListObjectsOptions) <-chan minio.ObjectInfo {
			ch := make(chan minio.ObjectInfo, 2)
			ch <- minio.ObjectInfo{Key: "a.txt", Size: 1}
			ch <- minio.ObjectInfo{Key: "b.txt", Size: 2}
			close(ch)
			return ch
		})

	svc, _ := newService(t, store)

	views, err := svc.ListBlobs(context.Background(), "backups")
	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, "a.txt", views[0].Name)
	assert.Equal(t, "backups", views[0].Bucket)
}
