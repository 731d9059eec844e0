package output

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/joho/godotenv"
)

const uploadTimeout = 10 * time.Second

// UploadConfig holds S3-compatible storage settings
type UploadConfig struct {
	AccessKey string
	SecretKey string
	Endpoint  string
	Region    string
	Bucket    string
}

// LoadUploadConfig reads upload settings from the environment, loading a
// .env file first if one is present.
func LoadUploadConfig() UploadConfig {
	_ = godotenv.Load()

	return UploadConfig{
		AccessKey: os.Getenv("S3_ACCESS_KEY"),
		SecretKey: os.Getenv("S3_SECRET_KEY"),
		Endpoint:  os.Getenv("S3_ENDPOINT"),
		Region:    os.Getenv("S3_REGION"),
		Bucket:    os.Getenv("S3_BUCKET"),
	}
}

// Uploader pushes rendered frames to an S3-compatible bucket
type Uploader struct {
	client *s3.S3
	bucket string
}

// NewUploader creates an uploader from the given config
func NewUploader(cfg UploadConfig) (*Uploader, error) {
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("upload config: bucket must be set")
	}

	s3Config := &aws.Config{
		Credentials:      credentials.NewStaticCredentials(cfg.AccessKey, cfg.SecretKey, ""),
		Endpoint:         aws.String(cfg.Endpoint),
		Region:           aws.String(cfg.Region),
		S3ForcePathStyle: aws.Bool(true),
	}
	sess, err := session.NewSession(s3Config)
	if err != nil {
		return nil, fmt.Errorf("failed to create S3 session: %w", err)
	}

	return &Uploader{client: s3.New(sess), bucket: cfg.Bucket}, nil
}

// UploadPNG stores PNG bytes under the given key
func (u *Uploader) UploadPNG(ctx context.Context, data []byte, key string) error {
	ctx, cancel := context.WithTimeout(ctx, uploadTimeout)
	defer cancel()

	_, err := u.client.PutObjectWithContext(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(u.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentLength: aws.Int64(int64(len(data))),
		ContentType:   aws.String("image/png"),
	})
	if err != nil {
		return fmt.Errorf("failed to upload %s: %w", key, err)
	}
	return nil
}
