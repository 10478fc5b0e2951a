package s3

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

type Config struct {
	Bucket    string `yaml:"bucket" envconfig:"AWS_BUCKET_NAME"`
	Region    string `yaml:"region" envconfig:"AWS_REGION_NAME"`
	AccessKey string `envconfig:"AWS_ACCESS_KEY"`
	SecretKey string `envconfig:"AWS_SECRET_ACCESS_KEY"`
}

func (c Config) Enabled() bool {
	return c.Bucket != ""
}

const uploadURLExpiry = time.Minute

// Bucket issues short-lived presigned upload URLs for profile pictures.
type Bucket struct {
	presign *s3.PresignClient
	bucket  string
}

func NewBucket(ctx context.Context, cfg Config) (*Bucket, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, "")),
	)
	if err != nil {
		return nil, err
	}
	return &Bucket{
		presign: s3.NewPresignClient(s3.NewFromConfig(awsCfg)),
		bucket:  cfg.Bucket,
	}, nil
}

// SignedUploadURL returns a PUT URL under a random 128-bit hex key,
// valid for one minute.
func (b *Bucket) SignedUploadURL(ctx context.Context) (string, error) {
	key, err := hexKey()
	if err != nil {
		return "", err
	}
	req, err := b.presign.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(b.bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(uploadURLExpiry))
	if err != nil {
		return "", err
	}
	return req.URL, nil
}

func hexKey() (string, error) {
	var raw [16]byte
	if _, err := rand.Read(raw[:]); err != nil {
		return "", err
	}
	return hex.EncodeToString(raw[:]), nil
}
