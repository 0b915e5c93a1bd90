package utils

import (
	"context"
	"fmt"
	"io"
	"mime"
	"os"
	"path"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

// Evidence files (photos, receipts, documents) live in an S3-compatible
// bucket (Cloudflare R2). Objects are keyed by task so a resubmission never
// clobbers an earlier attempt.

func r2Config() (aws.Config, error) {
	accountID := os.Getenv("R2_ACCOUNT_ID")
	accessKey := os.Getenv("R2_ACCESS_KEY_ID")
	secretKey := os.Getenv("R2_SECRET_ACCESS_KEY")
	if accountID == "" || accessKey == "" || secretKey == "" {
		return aws.Config{}, fmt.Errorf("R2_ACCOUNT_ID, R2_ACCESS_KEY_ID or R2_SECRET_ACCESS_KEY not set")
	}
	cfg, err := config.LoadDefaultConfig(context.TODO(),
		config.WithRegion("auto"),
		config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(accessKey, secretKey, ""),
		),
	)
	if err != nil {
		return aws.Config{}, fmt.Errorf("failed to load R2 config: %w", err)
	}
	return cfg, nil
}

func r2Client() (*s3.Client, error) {
	accountID := os.Getenv("R2_ACCOUNT_ID")
	if accountID == "" {
		return nil, fmt.Errorf("R2_ACCOUNT_ID not set")
	}
	cfg, err := r2Config()
	if err != nil {
		return nil, err
	}
	endpoint := fmt.Sprintf("https://%s.r2.cloudflarestorage.com", accountID)
	return s3.NewFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(endpoint)
	}), nil
}

func r2Bucket() (string, error) {
	bucket := os.Getenv("R2_BUCKET_NAME")
	if bucket == "" {
		return "", fmt.Errorf("R2_BUCKET_NAME not set")
	}
	return bucket, nil
}

// EvidenceObjectKey builds a unique object key for one uploaded evidence file.
func EvidenceObjectKey(taskID uint, filename string) string {
	return fmt.Sprintf("evidence/task-%d/%s%s", taskID, uuid.NewString(), path.Ext(filename))
}

// UploadEvidence stores an evidence file and returns a presigned GET URL.
func UploadEvidence(objectKey string, file io.Reader, expirySeconds int64) (string, error) {
	bucket, err := r2Bucket()
	if err != nil {
		return "", err
	}
	client, err := r2Client()
	if err != nil {
		return "", err
	}

	contentType := mime.TypeByExtension(path.Ext(objectKey))
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	_, err = client.PutObject(context.TODO(), &s3.PutObjectInput{
		Bucket:      aws.String(bucket),
		Key:         aws.String(objectKey),
		Body:        file,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("evidence upload failed: %w", err)
	}

	return PresignEvidenceURL(objectKey, expirySeconds)
}

// PresignEvidenceURL returns a presigned GET URL for an evidence object.
func PresignEvidenceURL(objectKey string, expirySeconds int64) (string, error) {
	bucket, err := r2Bucket()
	if err != nil {
		return "", err
	}
	client, err := r2Client()
	if err != nil {
		return "", err
	}
	presigner := s3.NewPresignClient(client)
	presigned, err := presigner.PresignGetObject(context.TODO(),
		&s3.GetObjectInput{
			Bucket: aws.String(bucket),
			Key:    aws.String(objectKey),
		},
		func(po *s3.PresignOptions) {
			po.Expires = time.Duration(expirySeconds) * time.Second
		},
	)
	if err != nil {
		return "", fmt.Errorf("failed to presign evidence URL: %w", err)
	}
	return presigned.URL, nil
}

// DeleteEvidence removes an evidence object, used by property cascade cleanup.
func DeleteEvidence(objectKey string) error {
	bucket, err := r2Bucket()
	if err != nil {
		return err
	}
	client, err := r2Client()
	if err != nil {
		return err
	}
	_, err = client.DeleteObject(context.TODO(), &s3.DeleteObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(objectKey),
	})
	if err != nil {
		return fmt.Errorf("evidence delete failed: %w", err)
	}
	return nil
}
