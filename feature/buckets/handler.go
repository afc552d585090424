package buckets

import (
	"bytes"
	"errors"

	"blob-manager/core/logger"
	"blob-manager/core/objectstore"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for buckets and blobs.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the bucket and blob routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/buckets")
	group.Get("/", h.HandleListBuckets)
	group.Post("/", h.HandleCreateBucket)
	group.Get("/:bucket", h.HandleGetBucket)
	group.Delete("/:bucket", h.HandleDeleteBucket)
	group.Get("/:bucket/blobs", h.HandleListBlobs)
	group.Put("/:bucket/blobs/*", h.HandleUploadBlob)
	group.Get("/:bucket/blobs/*", h.HandleGetBlob)
	group.Delete("/:bucket/blobs/*", h.HandleDeleteBlob)
}

// contentLength narrows a blob size to int for SendStream. The second
// return is false when the value does not fit, which can happen for blobs
// past 2 GiB on 32-bit platforms.
func contentLength(size int64) (int, bool) {
	if size < 0 || int64(int(size)) != size {
		return 0, false
	}
	return int(size), true
}

// statusFromError maps the objectstore error taxonomy onto HTTP status codes.
func statusFromError(err error) int {
	switch {
	case errors.Is(err, objectstore.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, objectstore.ErrNameConflict),
		errors.Is(err, objectstore.ErrBucketNotEmpty):
		return fiber.StatusConflict
	case errors.Is(err, objectstore.ErrPermissionDenied):
		return fiber.StatusForbidden
	default:
		return fiber.StatusInternalServerError
	}
}

func (h *Handler) fail(c *fiber.Ctx, msg string, err error) error {
	l := logger.WithRayID(h.service.logger, c)
	l.Error(msg, zap.Error(err))
	return c.Status(statusFromError(err)).JSON(fiber.Map{
		"error": err.Error(),
	})
}

// HandleListBuckets returns every visible bucket.
func (h *Handler) HandleListBuckets(c *fiber.Ctx) error {
	views, err := h.service.ListBuckets(c.Context())
	if err != nil {
		return h.fail(c, "Bucket listing failed", err)
	}
	return c.JSON(views)
}

type createBucketRequest struct {
	Name string `json:"name"`
}

// HandleCreateBucket creates a new bucket from a JSON body {"name": ...}.
func (h *Handler) HandleCreateBucket(c *fiber.Ctx) error {
	var req createBucketRequest
	if err := c.BodyParser(&req); err != nil || req.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "bucket name is required",
		})
	}

	view, err := h.service.CreateBucket(c.Context(), req.Name)
	if err != nil {
		return h.fail(c, "Bucket create failed", err)
	}
	return c.Status(fiber.StatusCreated).JSON(view)
}

// HandleGetBucket returns one bucket with populated metadata.
func (h *Handler) HandleGetBucket(c *fiber.Ctx) error {
	view, err := h.service.GetBucket(c.Context(), c.Params("bucket"))
	if err != nil {
		return h.fail(c, "Bucket fetch failed", err)
	}
	return c.JSON(view)
}

// HandleDeleteBucket removes an empty bucket.
func (h *Handler) HandleDeleteBucket(c *fiber.Ctx) error {
	if err := h.service.DeleteBucket(c.Context(), c.Params("bucket")); err != nil {
		return h.fail(c, "Bucket delete failed", err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// HandleListBlobs returns the blobs of a bucket.
func (h *Handler) HandleListBlobs(c *fiber.Ctx) error {
	views, err := h.service.ListBlobs(c.Context(), c.Params("bucket"))
	if err != nil {
		return h.fail(c, "Blob listing failed", err)
	}
	return c.JSON(views)
}

// HandleUploadBlob stores the raw request body as the blob content.
func (h *Handler) HandleUploadBlob(c *fiber.Ctx) error {
	body := c.Body()
	view, err := h.service.UploadBlob(c.Context(), c.Params("bucket"), c.Params("*"),
		bytes.NewReader(body), int64(len(body)))
	if err != nil {
		return h.fail(c, "Blob upload failed", err)
	}
	return c.Status(fiber.StatusCreated).JSON(view)
}

// HandleGetBlob returns blob metadata, or the content itself when the
// request carries ?alt=media.
func (h *Handler) HandleGetBlob(c *fiber.Ctx) error {
	bucket := c.Params("bucket")
	name := c.Params("*")

	if c.Query("alt") == "media" {
		rc, view, err := h.service.DownloadBlob(c.Context(), bucket, name)
		if err != nil {
			return h.fail(c, "Blob download failed", err)
		}
		c.Set(fiber.HeaderContentType, fiber.MIMEOctetStream)
		if n, ok := contentLength(view.Size); ok {
			return c.SendStream(rc, n)
		}
		// Size overflows int on this platform; stream chunked instead.
		return c.SendStream(rc)
	}

	view, err := h.service.GetBlob(c.Context(), bucket, name)
	if err != nil {
		return h.fail(c, "Blob fetch failed", err)
	}
	return c.JSON(view)
}

// HandleDeleteBlob removes a blob.
func (h *Handler) HandleDeleteBlob(c *fiber.Ctx) error {
	if err := h.service.DeleteBlob(c.Context(), c.Params("bucket"), c.Params("*")); err != nil {
		return h.fail(c, "Blob delete failed", err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
