package attachments

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Storage persists an attachment under key and returns the path or URL
// clients use to fetch it.
type Storage interface {
	Put(ctx context.Context, key string, body []byte, contentType string) (string, error)
}

// ------------------------------------------------------------
// local disk
// ------------------------------------------------------------

// Local stores files under dir and serves them from urlPrefix.
type Local struct {
	dir       string
	urlPrefix string
}

func NewLocal(dir, urlPrefix string) *Local {
	return &Local{dir: dir, urlPrefix: strings.TrimRight(urlPrefix, "/")}
}

func (l *Local) Dir() string {
	return l.dir
}

func (l *Local) Put(_ context.Context, key string, body []byte, _ string) (string, error) {
	dst := filepath.Join(l.dir, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}
	if err := os.WriteFile(dst, body, 0o644); err != nil {
		return "", fmt.Errorf("write upload: %w", err)
	}
	return l.urlPrefix + "/" + key, nil
}

// ------------------------------------------------------------
// S3
// ------------------------------------------------------------

type S3Options struct {
	Bucket          string
	Region          string
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
	PublicURL       string
}

// S3 stores files in a bucket. Path-style addressing keeps it usable
// against MinIO and other S3-compatible endpoints.
type S3 struct {
	client    *s3.Client
	bucket    string
	publicURL string
}

func NewS3(opts S3Options) *S3 {
	s3Opts := s3.Options{
		Region:       opts.Region,
		UsePathStyle: true,
	}
	if opts.Endpoint != "" {
		s3Opts.BaseEndpoint = aws.String(opts.Endpoint)
	}
	if opts.AccessKeyID != "" {
		s3Opts.Credentials = credentials.NewStaticCredentialsProvider(opts.AccessKeyID, opts.SecretAccessKey, "")
	}

	publicURL := opts.PublicURL
	if publicURL == "" {
		if opts.Endpoint != "" {
			publicURL = strings.TrimRight(opts.Endpoint, "/") + "/" + opts.Bucket
		} else {
			publicURL = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", opts.Bucket, opts.Region)
		}
	}

	return &S3{
		client:    s3.New(s3Opts),
		bucket:    opts.Bucket,
		publicURL: strings.TrimRight(publicURL, "/"),
	}
}

func (s *S3) Put(ctx context.Context, key string, body []byte, contentType string) (string, error) {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("put object %s: %w", key, err)
	}
	return s.publicURL + "/" + path.Clean(key), nil
}
