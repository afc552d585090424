package cmd

import (
	"context"
	"fmt"
	"path/filepath"

	"blob-manager/core/journal"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// blobCmd groups blob-level operations.
var blobCmd = &cobra.Command{
	Use:   "blob",
	Short: "Manage blobs within a bucket",
}

var blobPutCmd = &cobra.Command{
	Use:   "put [bucket] [file] [name]",
	Short: "Upload a local file as a blob",
	Long: `Uploads the local file as the blob body. The blob name defaults to the
base name of the file when not given.`,
	Args: cobra.RangeArgs(2, 3),
	Run: func(cmd *cobra.Command, args []string) {
		name := ""
		if len(args) == 3 {
			name = args[2]
		}
		runBlobPut(cmd.Context(), args[0], args[1], name)
	},
}

var blobGetCmd = &cobra.Command{
	Use:   "get [bucket] [name] [dest]",
	Short: "Download a blob to a local file",
	Args:  cobra.ExactArgs(3),
	Run: func(cmd *cobra.Command, args []string) {
		runBlobGet(cmd.Context(), args[0], args[1], args[2])
	},
}

var blobLsCmd = &cobra.Command{
	Use:   "ls [bucket]",
	Short: "List blobs in a bucket",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runBlobLs(cmd.Context(), args[0])
	},
}

var blobStatCmd = &cobra.Command{
	Use:   "stat [bucket] [name]",
	Short: "Show blob metadata",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		runBlobStat(cmd.Context(), args[0], args[1])
	},
}

var blobRmCmd = &cobra.Command{
	Use:   "rm [bucket] [name]",
	Short: "Delete a blob",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		runBlobRm(cmd.Context(), args[0], args[1])
	},
}

func init() {
	blobCmd.AddCommand(blobPutCmd)
	blobCmd.AddCommand(blobGetCmd)
	blobCmd.AddCommand(blobLsCmd)
	blobCmd.AddCommand(blobStatCmd)
	blobCmd.AddCommand(blobRmCmd)
	RootCmd.AddCommand(blobCmd)
}

func runBlobPut(ctx context.Context, bucket, file, name string) {
	e := setup()

	if name == "" {
		name = filepath.Base(file)
	}

	blob := e.client.Bucket(bucket).Blob(name)
	if err := blob.UploadFromFile(ctx, file); err != nil {
		e.logger.Fatal("Blob upload failed", zap.Error(err))
	}

	e.record(ctx, journal.Entry{Op: "upload", Bucket: bucket, Blob: name, Size: blob.Size()})
	fmt.Printf("File %s uploaded to %s/%s (%d bytes).\n", file, bucket, name, blob.Size())
}

func runBlobGet(ctx context.Context, bucket, name, dest string) {
	e := setup()

	blob := e.client.Bucket(bucket).Blob(name)
	if err := blob.DownloadToFile(ctx, dest); err != nil {
		e.logger.Fatal("Blob download failed", zap.Error(err))
	}

	e.record(ctx, journal.Entry{Op: "download", Bucket: bucket, Blob: name, Size: blob.Size()})
	fmt.Printf("Blob %s/%s downloaded to %s (%d bytes).\n", bucket, name, dest, blob.Size())
}

func runBlobLs(ctx context.Context, bucket string) {
	e := setup()

	blobs, err := e.client.Bucket(bucket).ListBlobs(ctx)
	if err != nil {
		e.logger.Fatal("Blob listing failed", zap.Error(err))
	}

	for _, b := range blobs {
		fmt.Printf("%s\t%10d\t%s\n", b.Updated().Format("2006-01-02 15:04:05"), b.Size(), b.Name())
	}
	fmt.Printf("%d blob(s) in bucket %s\n", len(blobs), bucket)
}

func runBlobStat(ctx context.Context, bucket, name string) {
	e := setup()

	blob, err := e.client.Bucket(bucket).GetBlob(ctx, name)
	if err != nil {
		e.logger.Fatal("Blob fetch failed", zap.Error(err))
	}

	fmt.Println("\n--- Blob ---")
	fmt.Printf("Bucket:    %s\n", bucket)
	fmt.Printf("Name:      %s\n", blob.Name())
	fmt.Printf("ID:        %s\n", blob.ID())
	fmt.Printf("Size:      %d bytes\n", blob.Size())
	fmt.Printf("Updated:   %s\n", blob.Updated().Format("2006-01-02 15:04:05 MST"))
	fmt.Println("------------")
}

func runBlobRm(ctx context.Context, bucket, name string) {
	e := setup()

	if err := e.client.Bucket(bucket).Blob(name).Delete(ctx); err != nil {
		e.logger.Fatal("Blob delete failed", zap.Error(err))
	}

	e.record(ctx, journal.Entry{Op: "delete", Bucket: bucket, Blob: name})
	fmt.Printf("Blob %s/%s deleted.\n", bucket, name)
}
