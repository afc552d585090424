package cmd

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"blob-manager/core/objectstore"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// tourCmd walks the full handle chain once against the configured service:
// create a bucket, upload, list, stat, download, verify, and clean up.
var tourCmd = &cobra.Command{
	Use:   "tour",
	Short: "Run a guided round trip against the storage service",
	Long: `Walks through every operation once: creates a uniquely named bucket,
uploads a sample file, lists and stats the blob, downloads it back, verifies
the content, then deletes the blob and the bucket.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		runTour(cmd.Context())
	},
}

func init() {
	RootCmd.AddCommand(tourCmd)
}

func runTour(ctx context.Context) {
	e := setup()

	// Bucket names are globally unique on the service, so suffix with a uuid.
	bucketName := "blob-manager-tour-" + uuid.NewString()[:8]
	payload := []byte("Hello from the blob-manager tour!\n")

	workDir, err := os.MkdirTemp("", "blob-manager-tour")
	if err != nil {
		e.logger.Fatal("Failed to create scratch directory", zap.Error(err))
	}
	defer os.RemoveAll(workDir)

	srcPath := filepath.Join(workDir, "sample.txt")
	dstPath := filepath.Join(workDir, "sample-downloaded.txt")
	if err := os.WriteFile(srcPath, payload, 0o644); err != nil {
		e.logger.Fatal("Failed to write sample file", zap.Error(err))
	}

	fmt.Printf("Project: %s\n\n", e.client.Project())

	// 1. Create bucket
	bucket, err := e.client.CreateBucket(ctx, bucketName)
	if err != nil {
		e.logger.Fatal("Bucket create failed", zap.Error(err))
	}
	fmt.Printf("Bucket %s created.\n", bucket.Name())

	// 2. Fetch it back with metadata
	exists, err := bucket.Exists(ctx)
	if err != nil {
		e.logger.Fatal("Bucket existence check failed", zap.Error(err))
	}
	if !exists {
		e.logger.Fatal("Bucket missing right after create")
	}
	bucket, err = e.client.GetBucket(ctx, bucketName)
	if err != nil {
		e.logger.Fatal("Bucket fetch failed", zap.Error(err))
	}
	fmt.Printf("Bucket %s exists since %s.\n", bucket.Name(), bucket.Created().Format("2006-01-02 15:04:05"))

	// 3. Upload the sample file
	blob := bucket.Blob("sample.txt")
	if err := blob.UploadFromFile(ctx, srcPath); err != nil {
		e.logger.Fatal("Blob upload failed", zap.Error(err))
	}
	fmt.Printf("File %s uploaded as %s (%d bytes).\n", srcPath, blob.Name(), blob.Size())

	// 4. List blobs
	blobs, err := bucket.ListBlobs(ctx)
	if err != nil {
		e.logger.Fatal("Blob listing failed", zap.Error(err))
	}
	fmt.Printf("Bucket now holds %d blob(s):\n", len(blobs))
	for _, b := range blobs {
		fmt.Printf("  %s (%d bytes)\n", b.Name(), b.Size())
	}

	// 5. Stat the blob
	fetched, err := bucket.GetBlob(ctx, "sample.txt")
	if err != nil {
		e.logger.Fatal("Blob fetch failed", zap.Error(err))
	}
	fmt.Printf("Blob %s: id=%s size=%d updated=%s\n",
		fetched.Name(), fetched.ID(), fetched.Size(), fetched.Updated().Format("2006-01-02 15:04:05"))

	// 6. Download and verify
	if err := fetched.DownloadToFile(ctx, dstPath); err != nil {
		e.logger.Fatal("Blob download failed", zap.Error(err))
	}
	downloaded, err := os.ReadFile(dstPath)
	if err != nil {
		e.logger.Fatal("Failed to read downloaded file", zap.Error(err))
	}
	if !bytes.Equal(payload, downloaded) {
		e.logger.Fatal("Downloaded content does not match the uploaded file")
	}
	fmt.Printf("Blob downloaded to %s, content verified.\n", dstPath)

	// 7. Delete the blob
	if err := fetched.Delete(ctx); err != nil {
		e.logger.Fatal("Blob delete failed", zap.Error(err))
	}
	if _, err := bucket.GetBlob(ctx, "sample.txt"); !errors.Is(err, objectstore.ErrNotFound) {
		e.logger.Fatal("Blob still present after delete", zap.Error(err))
	}
	fmt.Println("Blob deleted.")

	// 8. Delete the now-empty bucket
	if err := bucket.Delete(ctx); err != nil {
		e.logger.Fatal("Bucket delete failed", zap.Error(err))
	}
	if exists, err := bucket.Exists(ctx); err != nil {
		e.logger.Fatal("Bucket existence check failed", zap.Error(err))
	} else if exists {
		e.logger.Fatal("Bucket still present after delete")
	}
	fmt.Printf("Bucket %s deleted.\n\nTour complete.\n", bucketName)
}
