package imagestore

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awscreds "github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

// Store uploads and deletes blog media on an external provider. Upload returns
// the public URL and the opaque key used to delete the object later.
type Store interface {
	Upload(ctx context.Context, folder, originalName string, payload []byte, contentType string) (url, key string, err error)
	Delete(ctx context.Context, key string) error
}

// Options configures the S3-compatible backend.
type Options struct {
	Endpoint        string `yaml:"endpoint"`
	Region          string `yaml:"region"`
	Bucket          string `yaml:"bucket"`
	AccessKeyID     string `yaml:"access_key_id"`
	SecretAccessKey string `yaml:"secret_access_key"`
	CustomDomain    string `yaml:"custom_domain"`
	PathStyle       bool   `yaml:"path_style"`
}

// Enabled reports whether enough config is present to build a client.
func (o Options) Enabled() bool {
	return o.Bucket != "" && o.AccessKeyID != "" && o.SecretAccessKey != ""
}

type s3Store struct {
	client       *s3.Client
	bucket       string
	region       string
	endpoint     string
	customDomain string
	pathStyle    bool
}

// New builds an S3-backed store.
func New(opts Options) (Store, error) {
	bucket := strings.TrimSpace(opts.Bucket)
	region := strings.TrimSpace(opts.Region)
	if bucket == "" || opts.AccessKeyID == "" || opts.SecretAccessKey == "" {
		return nil, fmt.Errorf("incomplete image storage config: bucket/access_key_id/secret_access_key are required")
	}
	if region == "" {
		region = "us-east-1"
	}

	endpoint := strings.TrimSpace(opts.Endpoint)
	pathStyle := opts.PathStyle
	if endpoint != "" {
		if !strings.HasPrefix(endpoint, "http://") && !strings.HasPrefix(endpoint, "https://") {
			endpoint = "https://" + endpoint
		}
		endpoint = strings.TrimSuffix(endpoint, "/")
		// Non-AWS endpoints generally only speak path-style.
		pathStyle = true
	}

	clientOpts := s3.Options{
		Region:      region,
		Credentials: aws.NewCredentialsCache(awscreds.NewStaticCredentialsProvider(opts.AccessKeyID, opts.SecretAccessKey, "")),
	}
	if endpoint != "" {
		clientOpts.BaseEndpoint = aws.String(endpoint)
		clientOpts.UsePathStyle = pathStyle
	}

	return &s3Store{
		client:       s3.New(clientOpts),
		bucket:       bucket,
		region:       region,
		endpoint:     endpoint,
		customDomain: strings.TrimRight(strings.TrimSpace(opts.CustomDomain), "/"),
		pathStyle:    pathStyle,
	}, nil
}

func (s *s3Store) Upload(ctx context.Context, folder, originalName string, payload []byte, contentType string) (string, string, error) {
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	key := buildObjectKey(folder, originalName)

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(payload),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", "", fmt.Errorf("upload %s: %w", key, err)
	}
	return s.publicURL(key), key, nil
}

func (s *s3Store) Delete(ctx context.Context, key string) error {
	key = strings.TrimPrefix(strings.TrimSpace(key), "/")
	if key == "" {
		return nil
	}
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("delete %s: %w", key, err)
	}
	return nil
}

func (s *s3Store) publicURL(key string) string {
	if s.customDomain != "" {
		return s.customDomain + "/" + key
	}
	if s.endpoint != "" {
		if s.pathStyle {
			return s.endpoint + "/" + s.bucket + "/" + key
		}
		return s.endpoint + "/" + key
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, key)
}

// buildObjectKey generates a collision-resistant object key under folder,
// preserving the original file extension.
func buildObjectKey(folder, originalName string) string {
	ext := strings.ToLower(filepath.Ext(strings.TrimSpace(originalName)))
	if ext == "" || len(ext) > 10 {
		ext = ".dat"
	}
	name := strings.ReplaceAll(uuid.NewString(), "-", "")[:18] + ext
	folder = strings.Trim(strings.TrimSpace(folder), "/")
	if folder == "" {
		return name
	}
	return folder + "/" + name
}
