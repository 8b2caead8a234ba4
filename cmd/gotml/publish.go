package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/spf13/cobra"

	"github.com/gotml-dev/gotml/pkg/publish"
)

func publishCmd() *cobra.Command {
	var (
		bucket       string
		prefix       string
		region       string
		cacheControl string
	)

	cmd := &cobra.Command{
		Use:   "publish",
		Short: "Render and upload documents to an S3 bucket",
		Long: `Render the demo document and upload the HTML to S3.

Credentials are read from the AWS_ACCESS_KEY_ID and
AWS_SECRET_ACCESS_KEY environment variables.

Examples:
  gotml publish --bucket=my-site
  gotml publish --bucket=my-site --prefix=v2 --region=eu-west-1`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPublish(bucket, prefix, region, cacheControl)
		},
	}

	cmd.Flags().StringVarP(&bucket, "bucket", "b", "", "Target S3 bucket (required)")
	cmd.Flags().StringVar(&prefix, "prefix", "", "Key prefix for uploaded objects")
	cmd.Flags().StringVar(&region, "region", "us-east-1", "AWS region")
	cmd.Flags().StringVar(&cacheControl, "cache-control", "", "Cache-Control header for uploaded objects")
	cmd.MarkFlagRequired("bucket")

	return cmd
}

func runPublish(bucket, prefix, region, cacheControl string) error {
	accessKey := os.Getenv("AWS_ACCESS_KEY_ID")
	secretKey := os.Getenv("AWS_SECRET_ACCESS_KEY")
	if accessKey == "" || secretKey == "" {
		errorMsg("AWS credentials not found in environment")
		info("Set AWS_ACCESS_KEY_ID and AWS_SECRET_ACCESS_KEY")
		return fmt.Errorf("missing AWS credentials")
	}

	client := s3.NewFromConfig(aws.Config{
		Region: region,
		Credentials: aws.CredentialsProviderFunc(func(ctx context.Context) (aws.Credentials, error) {
			return aws.Credentials{
				AccessKeyID:     accessKey,
				SecretAccessKey: secretKey,
				SessionToken:    os.Getenv("AWS_SESSION_TOKEN"),
			}, nil
		}),
	})

	pub := publish.NewPublisher(client, bucket, prefix)
	if cacheControl != "" {
		pub = pub.WithCacheControl(cacheControl)
	}

	pages := []publish.Page{
		{Key: "index.html", Doc: demoDocument()},
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	start := time.Now()
	if err := pub.Publish(ctx, pages); err != nil {
		return err
	}

	success("Published %d page(s) to s3://%s/%s in %s", len(pages), bucket, prefix, time.Since(start).Round(time.Millisecond))
	return nil
}
