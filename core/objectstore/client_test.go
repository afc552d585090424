package objectstore_test

import (
	"context"
	"testing"
	"time"

	"blob-manager/core/objectstore"
	"blob-manager/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateBucket(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		store := new(mocks.Client)
		store.On("MakeBucket", mock.Anything, "backups", minio.MakeBucketOptions{Region: "us-east-1"}).
			Return(nil)

		client := objectstore.New("demo-project", "us-east-1", store)
		bucket, err := client.CreateBucket(context.Background(), "backups")

		require.NoError(t, err)
		assert.Equal(t, "backups", bucket.Name())
		store.AssertExpectations(t)
	})

	t.Run("NameConflict", func(t *testing.T) {
		store := new(mocks.Client)
		store.On("MakeBucket", mock.Anything, "taken", mock.Anything).
			Return(minio.ErrorResponse{Code: "BucketAlreadyExists", Message: "bucket name taken"})

		client := objectstore.New("demo-project", "", store)
		bucket, err := client.CreateBucket(context.Background(), "taken")

		assert.Nil(t, bucket)
		assert.ErrorIs(t, err, objectstore.ErrNameConflict)
	})

	t.Run("PermissionDenied", func(t *testing.T) {
		store := new(mocks.Client)
		store.On("MakeBucket", mock.Anything, "forbidden", mock.Anything).
			Return(minio.ErrorResponse{Code: "AccessDenied", Message: "access denied"})

		client := objectstore.New("demo-project", "", store)
		_, err := client.CreateBucket(context.Background(), "forbidden")

		assert.ErrorIs(t, err, objectstore.ErrPermissionDenied)
	})
}

func TestGetBucket(t *testing.T) {
	created := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

	t.Run("Found", func(t *testing.T) {
		store := new(mocks.Client)
		store.On("ListBuckets", mock.Anything).Return([]minio.BucketInfo{
			{Name: "alpha", CreationDate: created},
			{Name: "beta", CreationDate: created.Add(time.Hour)},
		}, nil)

		client := objectstore.New("demo-project", "", store)
		bucket, err := client.GetBucket(context.Background(), "beta")

		require.NoError(t, err)
		assert.Equal(t, "beta", bucket.Name())
		assert.Equal(t, created.Add(time.Hour), bucket.Created())
	})

	t.Run("NotFound", func(t *testing.T) {
		store := new(mocks.Client)
		store.On("ListBuckets", mock.Anything).Return([]minio.BucketInfo{}, nil)

		client := objectstore.New("demo-project", "", store)
		bucket, err := client.GetBucket(context.Background(), "ghost")

		assert.Nil(t, bucket)
		assert.ErrorIs(t, err, objectstore.ErrNotFound)
	})
}

// Creating a bucket and fetching it back must yield a handle with the same
// name.
func TestCreateThenGetBucket(t *testing.T) {
	store := new(mocks.Client)
	store.On("MakeBucket", mock.Anything, "fresh", mock.Anything).Return(nil)
	store.On("ListBuckets", mock.Anything).Return([]minio.BucketInfo{
		{Name: "fresh", CreationDate: time.Now()},
	}, nil)

	client := objectstore.New("demo-project", "", store)

	created, err := client.CreateBucket(context.Background(), "fresh")
	require.NoError(t, err)

	fetched, err := client.GetBucket(context.Background(), "fresh")
	require.NoError(t, err)
	assert.Equal(t, created.Name(), fetched.Name())
	assert.False(t, fetched.Created().IsZero())
}

func TestListBuckets(t *testing.T) {
	store := new(mocks.Client)
	store.On("ListBuckets", mock.Anything).Return([]minio.BucketInfo{
		{Name: "one"},
		{Name: "two"},
		{Name: "three"},
	}, nil)

	client := objectstore.New("demo-project", "", store)
	buckets, err := client.ListBuckets(context.Background())

	require.NoError(t, err)
	require.Len(t, buckets, 3)

	names := make([]string, 0, len(buckets))
	for _, b := range buckets {
		names = append(names, b.Name())
	}
	assert.Equal(t, []string{"one", "two", "three"}, names)
}

func TestClientProject(t *testing.T) {
	client := objectstore.New("demo-project", "", new(mocks.Client))
	assert.Equal(t, "demo-project", client.Project())
}
