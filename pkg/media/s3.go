package media

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

type S3Config struct {
	Endpoint      string
	Region        string
	Bucket        string
	AccessKey     string
	SecretKey     string
	PublicBaseURL string
	Folder        string
}

type objectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

// S3Host talks to any S3-compatible store (AWS, MinIO, R2).
type S3Host struct {
	client  objectAPI
	bucket  string
	baseURL string
	folder  string
}

func NewS3Host(ctx context.Context, cfg S3Config) (*S3Host, error) {
	awsCfg, err := config.LoadDefaultConfig(ctx,
		config.WithRegion(cfg.Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKey,
			cfg.SecretKey,
			"",
		)))
	if err != nil {
		return nil, fmt.Errorf("load s3 config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	baseURL := cfg.PublicBaseURL
	if baseURL == "" {
		baseURL = joinURL(cfg.Endpoint, cfg.Bucket)
	}

	return newS3Host(client, cfg.Bucket, baseURL, cfg.Folder), nil
}

func newS3Host(client objectAPI, bucket, baseURL, folder string) *S3Host {
	if folder == "" {
		folder = ProjectFolder
	}
	return &S3Host{
		client:  client,
		bucket:  bucket,
		baseURL: baseURL,
		folder:  folder,
	}
}

func (h *S3Host) Upload(ctx context.Context, in UploadInput) (*Asset, error) {
	key := newKey(h.folder, in.Filename)

	input := &s3.PutObjectInput{
		Bucket:      aws.String(h.bucket),
		Key:         aws.String(key),
		Body:        in.Body,
		ContentType: aws.String(in.ContentType),
	}
	if in.Size > 0 {
		input.ContentLength = aws.Int64(in.Size)
	}

	if _, err := h.client.PutObject(ctx, input); err != nil {
		return nil, fmt.Errorf("put object %s: %w", key, err)
	}

	return &Asset{PublicId: key, URL: joinURL(h.baseURL, key)}, nil
}

func (h *S3Host) Delete(ctx context.Context, publicId string) error {
	_, err := h.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(h.bucket),
		Key:    aws.String(publicId),
	})
	if err != nil {
		return fmt.Errorf("delete object %s: %w", publicId, err)
	}
	return nil
}
