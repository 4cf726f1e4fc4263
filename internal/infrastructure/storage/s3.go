package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"go.uber.org/zap"

	"realty-office-api/config"
)

// UploadError is fatal to the file it belongs to: the orchestrator must never
// persist a reference to an object that was not written.
type UploadError struct {
	Key string
	Err error
}

func (e *UploadError) Error() string {
	return fmt.Sprintf("upload %q: %v", e.Key, e.Err)
}

func (e *UploadError) Unwrap() error { return e.Err }

// Client is the gateway to the key-addressed blob store holding listing
// images and board attachments. Works against AWS S3 or any S3-compatible
// endpoint (Supabase storage, MinIO) via path-style addressing.
type Client struct {
	cfg     config.S3
	s3      *s3.Client
	presign *s3.PresignClient
	logger  *zap.Logger
}

func New(ctx context.Context, logger *zap.Logger, cfg config.S3) (*Client, error) {
	if cfg.Region == "" || cfg.Bucket == "" {
		return nil, errors.New("s3 region and bucket are required")
	}

	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
	}
	if cfg.AccessKeyID != "" && cfg.SecretAccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, err
	}

	s3Client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	logger.Info("object storage client ready",
		zap.String("bucket", cfg.Bucket), zap.String("endpoint", cfg.Endpoint))

	return &Client{
		cfg:     cfg,
		s3:      s3Client,
		presign: s3.NewPresignClient(s3Client),
		logger:  logger,
	}, nil
}

// Upload writes data under key. Keys are collision-free by construction, so
// the default is fail-on-conflict; fixed-name site assets pass overwrite.
func (c *Client) Upload(ctx context.Context, key string, data []byte, contentType string, overwrite bool) error {
	input := &s3.PutObjectInput{
		Bucket:      aws.String(c.cfg.Bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	}
	if !overwrite {
		input.IfNoneMatch = aws.String("*")
	}

	if _, err := c.s3.PutObject(ctx, input); err != nil {
		return &UploadError{Key: key, Err: err}
	}

	return nil
}

// PublicURL derives the permanent retrieval URL for a key. Pure string
// composition, no network call.
func (c *Client) PublicURL(key string) string {
	base := c.cfg.PublicBaseURL
	if base == "" {
		base = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", c.cfg.Bucket, c.cfg.Region)
	}
	return strings.TrimSuffix(base, "/") + "/" + key
}

// SignedURL creates a time-boxed retrieval URL. downloadName, when set, is
// carried in the content disposition so the browser saves the file under its
// original name instead of the opaque storage key.
func (c *Client) SignedURL(ctx context.Context, key string, ttl time.Duration, downloadName string) (string, error) {
	if ttl <= 0 {
		ttl = c.cfg.SignedURLTTL
	}

	input := &s3.GetObjectInput{
		Bucket: aws.String(c.cfg.Bucket),
		Key:    aws.String(key),
	}
	if downloadName != "" {
		input.ResponseContentDisposition = aws.String(
			fmt.Sprintf("attachment; filename*=UTF-8''%s", url.PathEscape(downloadName)),
		)
	}

	presigned, err := c.presign.PresignGetObject(ctx, input, s3.WithPresignExpires(ttl))
	if err != nil {
		return "", err
	}

	return presigned.URL, nil
}

// Remove deletes the given keys best-effort. A failed delete leaks an object
// but never blocks the record update that already dereferenced it.
func (c *Client) Remove(ctx context.Context, keys []string) int {
	if len(keys) == 0 {
		return 0
	}

	objects := make([]types.ObjectIdentifier, 0, len(keys))
	for _, k := range keys {
		if k == "" {
			continue
		}
		objects = append(objects, types.ObjectIdentifier{Key: aws.String(k)})
	}
	if len(objects) == 0 {
		return 0
	}

	out, err := c.s3.DeleteObjects(ctx, &s3.DeleteObjectsInput{
		Bucket: aws.String(c.cfg.Bucket),
		Delete: &types.Delete{Objects: objects, Quiet: aws.Bool(true)},
	})
	if err != nil {
		c.logger.Warn("bulk delete failed, objects orphaned",
			zap.Int("count", len(objects)), zap.Error(err))
		return 0
	}

	removed := len(objects) - len(out.Errors)
	for _, e := range out.Errors {
		c.logger.Warn("delete failed, object orphaned",
			zap.String("key", aws.ToString(e.Key)),
			zap.String("message", aws.ToString(e.Message)))
	}

	return removed
}
