package config

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3Config holds S3 client and bucket info
type S3Config struct {
	Client     *s3.Client
	BucketName string
}

// NewS3Config initializes the S3 client for the configured bucket. It returns nil, nil when no
// bucket is configured so callers can keep images inline.
func NewS3Config(ctx context.Context, cfg *Config) (*S3Config, error) {
	if cfg.S3BucketName == "" {
		return nil, nil
	}

	var opts []func(*config.LoadOptions) error
	if cfg.AWSRegion != "" {
		opts = append(opts, config.WithRegion(cfg.AWSRegion))
	}

	// Load AWS config from environment or shared config
	awsCfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, err
	}

	return &S3Config{
		Client:     s3.NewFromConfig(awsCfg),
		BucketName: cfg.S3BucketName,
	}, nil
}
