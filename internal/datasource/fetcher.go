package datasource

import (
	"context"
	"io"
	"net/url"
	"os"
	"path/filepath"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/hashicorp/go-retryablehttp"

	"github.com/braintap/kpi-engine/internal/config"
	ierr "github.com/braintap/kpi-engine/internal/errors"
	"github.com/braintap/kpi-engine/internal/logger"
)

// Fetcher retrieves one raw export object by key.
type Fetcher interface {
	Fetch(ctx context.Context, key string) ([]byte, error)
}

// NewFetcher builds the fetcher selected by the datasource configuration.
func NewFetcher(cfg *config.Configuration, log *logger.Logger) (Fetcher, error) {
	switch cfg.Datasource.Provider {
	case "s3":
		return NewS3Fetcher(cfg.Datasource.S3)
	case "http":
		return NewHTTPFetcher(cfg.Datasource.HTTP, log), nil
	case "local":
		return NewLocalFetcher(cfg.Datasource.Local), nil
	default:
		return nil, ierr.NewErrorf("unsupported datasource provider: %s", cfg.Datasource.Provider).
			WithHint("Datasource provider must be one of s3, http, local").
			Mark(ierr.ErrValidation)
	}
}

// S3Fetcher pulls objects from the export bucket.
type S3Fetcher struct {
	client *s3.Client
	bucket string
}

// NewS3Fetcher builds an S3 fetcher. Static credentials are optional; the
// default AWS credential chain applies when they are not configured.
func NewS3Fetcher(cfg config.S3Config) (*S3Fetcher, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
	}
	if cfg.AccessKeyID != "" && cfg.SecretAccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(), opts...)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to load AWS configuration").
			Mark(ierr.ErrInternal)
	}

	return &S3Fetcher{
		client: s3.NewFromConfig(awsCfg),
		bucket: cfg.Bucket,
	}, nil
}

func (f *S3Fetcher) Fetch(ctx context.Context, key string) ([]byte, error) {
	out, err := f.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(f.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to fetch export object from S3").
			WithReportableDetails(map[string]interface{}{
				"bucket": f.bucket,
				"key":    key,
			}).
			Mark(ierr.ErrInternal)
	}
	defer out.Body.Close()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to read export object body").
			WithReportableDetails(map[string]interface{}{
				"bucket": f.bucket,
				"key":    key,
			}).
			Mark(ierr.ErrInternal)
	}
	return data, nil
}

// HTTPFetcher pulls objects from an HTTP base URL with retries.
type HTTPFetcher struct {
	client  *retryablehttp.Client
	baseURL string
}

// NewHTTPFetcher builds an HTTP fetcher.
func NewHTTPFetcher(cfg config.HTTPSourceConfig, log *logger.Logger) *HTTPFetcher {
	client := retryablehttp.NewClient()
	client.RetryMax = 3
	client.Logger = log.GetRetryableHTTPLogger()

	return &HTTPFetcher{
		client:  client,
		baseURL: cfg.BaseURL,
	}
}

func (f *HTTPFetcher) Fetch(ctx context.Context, key string) ([]byte, error) {
	u, err := url.JoinPath(f.baseURL, key)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Invalid datasource base URL or object key").
			Mark(ierr.ErrValidation)
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, "GET", u, nil)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to build export request").
			Mark(ierr.ErrInternal)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to fetch export object over HTTP").
			WithReportableDetails(map[string]interface{}{
				"url": u,
			}).
			Mark(ierr.ErrInternal)
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		return nil, ierr.NewErrorf("unexpected status %d fetching %s", resp.StatusCode, key).
			WithHint("Export object is not available at the configured URL").
			WithReportableDetails(map[string]interface{}{
				"url":    u,
				"status": resp.StatusCode,
			}).
			Mark(ierr.ErrInternal)
	}

	return io.ReadAll(resp.Body)
}

// LocalFetcher reads objects from a local directory, mainly for development
// and tests.
type LocalFetcher struct {
	dir string
}

// NewLocalFetcher builds a local directory fetcher.
func NewLocalFetcher(cfg config.LocalSourceConfig) *LocalFetcher {
	return &LocalFetcher{dir: cfg.Dir}
}

func (f *LocalFetcher) Fetch(_ context.Context, key string) ([]byte, error) {
	data, err := os.ReadFile(filepath.Join(f.dir, key))
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to read export file").
			WithReportableDetails(map[string]interface{}{
				"dir": f.dir,
				"key": key,
			}).
			Mark(ierr.ErrInternal)
	}
	return data, nil
}
