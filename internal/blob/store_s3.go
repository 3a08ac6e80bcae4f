package blob

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// S3Config holds settings for an S3-compatible backend. Endpoint is
// optional; set it for MinIO and friends.
type S3Config struct {
	Region       string
	Endpoint     string
	AccessKey    string
	SecretKey    string
	UsersBucket  string
	OrdersBucket string
}

// S3Store keeps one object per key in one bucket per collection.
type S3Store struct {
	client  *s3.Client
	buckets map[Collection]string
}

func NewS3Store(ctx context.Context, cfg S3Config) (*S3Store, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKey,
			cfg.SecretKey,
			"",
		)))
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	return &S3Store{
		client: client,
		buckets: map[Collection]string{
			Users:  cfg.UsersBucket,
			Orders: cfg.OrdersBucket,
		},
	}, nil
}

func (s *S3Store) bucket(c Collection) (string, error) {
	b, ok := s.buckets[c]
	if !ok || b == "" {
		return "", fmt.Errorf("no bucket configured for collection %q", c)
	}
	return b, nil
}

func (s *S3Store) Exists(ctx context.Context, c Collection, key string) (bool, error) {
	b, err := s.bucket(c)
	if err != nil {
		return false, err
	}

	_, err = s.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(b),
		Key:    aws.String(key),
	})
	if err != nil {
		var nf *types.NotFound
		if errors.As(err, &nf) {
			return false, nil
		}
		return false, fmt.Errorf("head %s/%s: %w", b, key, err)
	}
	return true, nil
}

func (s *S3Store) Read(ctx context.Context, c Collection, key string) ([]byte, error) {
	b, err := s.bucket(c)
	if err != nil {
		return nil, err
	}

	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(b),
		Key:    aws.String(key),
	})
	if err != nil {
		var nsk *types.NoSuchKey
		if errors.As(err, &nsk) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get %s/%s: %w", b, key, err)
	}
	defer out.Body.Close()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, fmt.Errorf("read %s/%s: %w", b, key, err)
	}
	return data, nil
}

func (s *S3Store) Write(ctx context.Context, c Collection, key string, data []byte) error {
	b, err := s.bucket(c)
	if err != nil {
		return err
	}

	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(b),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return fmt.Errorf("put %s/%s: %w", b, key, err)
	}
	return nil
}

func (s *S3Store) Remove(ctx context.Context, c Collection, key string) error {
	b, err := s.bucket(c)
	if err != nil {
		return err
	}

	// DeleteObject succeeds on missing keys, so probe first to keep the
	// NotFound contract.
	ok, err := s.Exists(ctx, c, key)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotFound
	}

	_, err = s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(b),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("delete %s/%s: %w", b, key, err)
	}
	return nil
}
