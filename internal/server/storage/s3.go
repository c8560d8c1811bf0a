// Package storage issues presigned S3 URLs for profile documents. The
// backend never proxies file bytes; clients PUT directly against object
// storage and reference the returned key in their profile.
package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/vincenttwizere/Refuture-sub002/internal/server/config"
)

const presignExpiry = 15 * time.Minute

// test seams for the AWS SDK constructors.
var (
	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return s3.NewFromConfig(cfg, optFns...)
	}
	newS3PresignClient = func(c *s3.Client) *s3.PresignClient {
		return s3.NewPresignClient(c)
	}
)

// Documents hands out presigned upload/download slots in the configured
// bucket.
type Documents struct {
	config *config.Config
}

func NewDocuments(cfg *config.Config) *Documents {
	return &Documents{config: cfg}
}

func (d *Documents) presignClient(ctx context.Context) (*s3.PresignClient, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(d.config.S3Region),
		awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(d.config.S3AccessKey, d.config.S3SecretKey, "")),
	)
	if err != nil {
		return nil, fmt.Errorf("loading s3 config: %w", err)
	}

	client := newS3ClientFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(d.config.S3BaseEndpoint)
		o.UsePathStyle = true
	})
	return newS3PresignClient(client), nil
}

// PresignUpload returns a fresh object key and a presigned PUT URL for it.
// The key namespaces documents per user.
func (d *Documents) PresignUpload(ctx context.Context, userID, filename string) (string, string, error) {
	pc, err := d.presignClient(ctx)
	if err != nil {
		return "", "", err
	}

	key := fmt.Sprintf("documents/%s/%s-%s", userID, uuid.NewString(), filename)
	req, err := pc.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(d.config.S3Bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(presignExpiry))
	if err != nil {
		return "", "", fmt.Errorf("presigning upload: %w", err)
	}

	return key, req.URL, nil
}

// PresignDownload returns a presigned GET URL for an existing object key.
func (d *Documents) PresignDownload(ctx context.Context, key string) (string, error) {
	pc, err := d.presignClient(ctx)
	if err != nil {
		return "", err
	}

	req, err := pc.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(d.config.S3Bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(presignExpiry))
	if err != nil {
		return "", fmt.Errorf("presigning download: %w", err)
	}
	return req.URL, nil
}
