package minio

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"recipebook/images"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

var ErrObjectExists = errors.New("object already exists")

type Config struct {
	Endpoint        string
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	Secure          bool
}

// Operator 以 MinIO 客戶端實作圖片的物件儲存
type Operator struct {
	Client *minio.Client
	Bucket string
}

func NewOperator(cfg Config, bucket string) (*Operator, error) {
	const op = "minio.NewOperator"

	if cfg.Endpoint == "" {
		return nil, fmt.Errorf("%s: endpoint is required", op)
	}
	if bucket == "" {
		return nil, fmt.Errorf("%s: bucket is required", op)
	}

	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Secure: cfg.Secure,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: failed to create client: %w", op, err)
	}

	return &Operator{Client: client, Bucket: bucket}, nil
}

// Upload 寫入物件，錯誤訊息維持 MinIO 回傳的原文
func (o *Operator) Upload(ctx context.Context, key string, body []byte, opts images.UploadOptions) (string, error) {
	if !opts.Overwrite {
		exists, err := o.exists(ctx, key)
		if err != nil {
			return "", err
		}
		if exists {
			return "", ErrObjectExists
		}
	}

	_, err := o.Client.PutObject(ctx, o.Bucket, key, bytes.NewReader(body), int64(len(body)), minio.PutObjectOptions{
		ContentType: opts.ContentType,
	})
	if err != nil {
		return "", err
	}
	return key, nil
}

func (o *Operator) SignedURL(ctx context.Context, key string, expiry time.Duration) (string, error) {
	const op = "minio.Operator.SignedURL"

	if _, err := o.Client.StatObject(ctx, o.Bucket, key, minio.StatObjectOptions{}); err != nil {
		return "", fmt.Errorf("%s: failed to stat object %q: %w", op, key, err)
	}

	u, err := o.Client.PresignedGetObject(ctx, o.Bucket, key, expiry, nil)
	if err != nil {
		return "", fmt.Errorf("%s: failed to presign object %q: %w", op, key, err)
	}
	return u.String(), nil
}

func (o *Operator) List(ctx context.Context, prefix string) ([]string, error) {
	const op = "minio.Operator.List"

	var keys []string
	for object := range o.Client.ListObjects(ctx, o.Bucket, minio.ListObjectsOptions{
		Prefix:    prefix,
		Recursive: true,
	}) {
		if object.Err != nil {
			return nil, fmt.Errorf("%s: failed to list objects: %w", op, object.Err)
		}
		keys = append(keys, object.Key)
	}
	return keys, nil
}

// Remove 透過 RemoveObjects 批次刪除，MinIO 客戶端會自行分批送出
func (o *Operator) Remove(ctx context.Context, keys []string) error {
	const op = "minio.Operator.Remove"

	objectsCh := make(chan minio.ObjectInfo)
	go func() {
		defer close(objectsCh)
		for _, key := range keys {
			select {
			case objectsCh <- minio.ObjectInfo{Key: key}:
			case <-ctx.Done():
				return
			}
		}
	}()

	var errs []error
	for removeErr := range o.Client.RemoveObjects(ctx, o.Bucket, objectsCh, minio.RemoveObjectsOptions{}) {
		errs = append(errs, fmt.Errorf("%q: %w", removeErr.ObjectName, removeErr.Err))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%s: failed to remove %d object(s): %w", op, len(errs), errors.Join(errs...))
	}
	return ctx.Err()
}

func (o *Operator) exists(ctx context.Context, key string) (bool, error) {
	_, err := o.Client.StatObject(ctx, o.Bucket, key, minio.StatObjectOptions{})
	if err == nil {
		return true, nil
	}
	if minio.ToErrorResponse(err).Code == "NoSuchKey" {
		return false, nil
	}
	return false, err
}
