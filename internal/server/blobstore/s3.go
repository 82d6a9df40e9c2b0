// Package blobstore wraps the S3-compatible object storage used for profile
// images. The service treats it as "put object, get URI"; bucket, region, and
// credentials come from configuration.
package blobstore

import (
	"context"
	"fmt"
	"io"
	"strings"

	sc "github.com/carlosdaniiel07/identity-service/internal/server/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Seams for tests.
var (
	loadDefaultAWSConfig = config.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return s3.NewFromConfig(cfg, optFns...)
	}

	putObject = func(c *s3.Client, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
		return c.PutObject(ctx, in, optFns...)
	}
)

// ObjectStore is the contract the account service uploads through.
type ObjectStore interface {
	// Upload stores body under key and returns the object's resolvable URI.
	Upload(ctx context.Context, key string, contentType string, body io.Reader) (string, error)
}

// S3Store implements ObjectStore over an S3-compatible backend (AWS S3, MinIO).
type S3Store struct {
	config *sc.Config
}

func NewS3Store(cfg *sc.Config) *S3Store {
	return &S3Store{config: cfg}
}

func (s *S3Store) getClient(ctx context.Context) (*s3.Client, error) {
	cfg, err := loadDefaultAWSConfig(ctx,
		config.WithRegion(s.config.S3Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			s.config.S3AccessKeyID,
			s.config.S3SecretAccessKey,
			"",
		)))
	if err != nil {
		return nil, err
	}

	client := newS3ClientFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(s.config.S3BaseEndpoint)
		o.UsePathStyle = true
	})

	return client, nil
}

// Upload puts the object and returns its URI under the configured endpoint.
// Failures are fatal to the request; there is no retry at this layer.
func (s *S3Store) Upload(ctx context.Context, key string, contentType string, body io.Reader) (string, error) {
	client, err := s.getClient(ctx)
	if err != nil {
		return "", err
	}

	bucket := s.config.S3Bucket

	_, err = putObject(client, ctx, &s3.PutObjectInput{
		Bucket:      &bucket,
		Key:         &key,
		Body:        body,
		ContentType: &contentType,
	})
	if err != nil {
		return "", fmt.Errorf("error uploading object: %w", err)
	}

	return s.ObjectURI(key), nil
}

// ObjectURI builds the resolvable URI for a stored object.
func (s *S3Store) ObjectURI(key string) string {
	base := strings.TrimRight(s.config.S3BaseEndpoint, "/")
	return fmt.Sprintf("%s/%s/%s", base, s.config.S3Bucket, key)
}
