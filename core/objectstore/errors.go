package objectstore

import (
	"errors"
	"fmt"

	"github.com/minio/minio-go/v7"
)

// Sentinel errors returned by handle operations. The service reports
// failures as S3 error codes; translate maps them onto these so callers
// can use errors.Is instead of inspecting provider types.
var (
	// ErrNotFound indicates the addressed bucket or blob does not exist.
	ErrNotFound = errors.New("not found")
	// ErrNameConflict indicates a bucket name is already taken. Bucket
	// names are globally unique across the service, so the owner may be
	// anyone.
	ErrNameConflict = errors.New("name already in use")
	// ErrPermissionDenied indicates the credentials lack access to the
	// addressed resource.
	ErrPermissionDenied = errors.New("permission denied")
	// ErrBucketNotEmpty indicates a bucket delete was rejected because
	// the bucket still holds objects.
	ErrBucketNotEmpty = errors.New("bucket not empty")
)

// translate maps a service error onto the package sentinels. Errors with no
// sentinel equivalent are returned unchanged.
func translate(err error) error {
	if err == nil {
		return nil
	}
	switch minio.ToErrorResponse(err).Code {
	case "NoSuchBucket", "NoSuchKey":
		return fmt.Errorf("%w: %v", ErrNotFound, err)
	case "BucketAlreadyExists", "BucketAlreadyOwnedByYou":
		return fmt.Errorf("%w: %v", ErrNameConflict, err)
	case "AccessDenied":
		return fmt.Errorf("%w: %v", ErrPermissionDenied, err)
	case "BucketNotEmpty":
		return fmt.Errorf("%w: %v", ErrBucketNotEmpty, err)
	}
	return err
}
