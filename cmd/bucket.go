package cmd

import (
	"context"
	"fmt"

	"blob-manager/core/journal"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// bucketCmd groups bucket-level operations.
var bucketCmd = &cobra.Command{
	Use:   "bucket",
	Short: "Manage buckets",
}

var bucketCreateCmd = &cobra.Command{
	Use:   "create [name]",
	Short: "Create a new bucket",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runBucketCreate(cmd.Context(), args[0])
	},
}

var bucketLsCmd = &cobra.Command{
	Use:   "ls",
	Short: "List all buckets",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		runBucketLs(cmd.Context())
	},
}

var bucketStatCmd = &cobra.Command{
	Use:   "stat [name]",
	Short: "Show bucket metadata",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runBucketStat(cmd.Context(), args[0])
	},
}

var bucketRmCmd = &cobra.Command{
	Use:   "rm [name]",
	Short: "Delete an empty bucket",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runBucketRm(cmd.Context(), args[0])
	},
}

func init() {
	bucketCmd.AddCommand(bucketCreateCmd)
	bucketCmd.AddCommand(bucketLsCmd)
	bucketCmd.AddCommand(bucketStatCmd)
	bucketCmd.AddCommand(bucketRmCmd)
	RootCmd.AddCommand(bucketCmd)
}

func runBucketCreate(ctx context.Context, name string) {
	e := setup()

	bucket, err := e.client.CreateBucket(ctx, name)
	if err != nil {
		e.logger.Fatal("Bucket create failed", zap.Error(err))
	}

	e.record(ctx, journal.Entry{Op: "mkbucket", Bucket: name})
	fmt.Printf("Bucket %s created.\n", bucket.Name())
}

func runBucketLs(ctx context.Context) {
	e := setup()

	buckets, err := e.client.ListBuckets(ctx)
	if err != nil {
		e.logger.Fatal("Bucket listing failed", zap.Error(err))
	}

	for _, b := range buckets {
		fmt.Printf("%s\t%s\n", b.Created().Format("2006-01-02 15:04:05"), b.Name())
	}
	fmt.Printf("%d bucket(s) in project %s\n", len(buckets), e.client.Project())
}

func runBucketStat(ctx context.Context, name string) {
	e := setup()

	bucket, err := e.client.GetBucket(ctx, name)
	if err != nil {
		e.logger.Fatal("Bucket fetch failed", zap.Error(err))
	}

	fmt.Println("\n--- Bucket ---")
	fmt.Printf("Name:      %s\n", bucket.Name())
	fmt.Printf("Project:   %s\n", e.client.Project())
	fmt.Printf("Created:   %s\n", bucket.Created().Format("2006-01-02 15:04:05 MST"))
	fmt.Println("--------------")
}

func runBucketRm(ctx context.Context, name string) {
	e := setup()

	if err := e.client.Bucket(name).Delete(ctx); err != nil {
		e.logger.Fatal("Bucket delete failed", zap.Error(err))
	}

	e.record(ctx, journal.Entry{Op: "rmbucket", Bucket: name})
	fmt.Printf("Bucket %s deleted.\n", name)
}
