package persistent

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/Sa-pphire/qr-code-gen/internal/entity"
	"github.com/Sa-pphire/qr-code-gen/pkg/s3client"
	"github.com/Sa-pphire/qr-code-gen/pkg/types/errs"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

type S3AssetRepo struct {
	*s3client.S3Client
	bucket        string
	publicBaseURL string
}

// NewS3AssetRepo returns a store whose references are publicBaseURL + "/" + key.
func NewS3AssetRepo(s3c *s3client.S3Client, bucket, publicBaseURL string) *S3AssetRepo {
	return &S3AssetRepo{
		S3Client:      s3c,
		bucket:        bucket,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
	}
}

func (r *S3AssetRepo) Store(ctx context.Context, data []byte, category entity.AssetCategory) (string, error) {
	name, contentType := assetObject(data, category)
	key := path.Join(category.Folder(), name)

	_, err := r.Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(r.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(int64(len(data))),
	})
	if err != nil {
		return "", fmt.Errorf("S3AssetRepo - Store - r.Client.PutObject: %w: %w", errs.ErrStorageFailure, err)
	}

	return r.publicBaseURL + "/" + key, nil
}

func (r *S3AssetRepo) Delete(ctx context.Context, reference string) error {
	key, ok := strings.CutPrefix(reference, r.publicBaseURL+"/")
	if !ok || key == "" {
		return fmt.Errorf("S3AssetRepo - Delete - unknown reference %q: %w", reference, errs.ErrStorageFailure)
	}

	_, err := r.Client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(r.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("S3AssetRepo - Delete - r.Client.DeleteObject: %w: %w", errs.ErrStorageFailure, err)
	}

	return nil
}
