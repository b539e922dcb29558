package s3

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"recipebook/images"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
	"github.com/samber/lo"
)

// MaxDeleteObjects 是 DeleteObjects 單次請求可刪除的物件數量上限
const MaxDeleteObjects = 1000

type S3Operator struct {
	// Client 是 S3 客戶端
	Client *s3.Client
	// Presign 用來產生簽章網址
	Presign *s3.PresignClient
	// Bucket 是存放圖片的存儲桶名稱
	Bucket string
}

func NewS3Operator(client *s3.Client, bucket string) (*S3Operator, error) {
	const op = "NewS3Operator"
	if bucket == "" {
		return nil, fmt.Errorf("[%s] Fail to create operator, err=bucket is required", op)
	}
	return &S3Operator{
		Client:  client,
		Presign: s3.NewPresignClient(client),
		Bucket:  bucket,
	}, nil
}

// Upload 上傳物件，opts.Overwrite 為 false 時以 If-None-Match 避免覆寫
func (s *S3Operator) Upload(ctx context.Context, key string, body []byte, opts images.UploadOptions) (string, error) {
	input := &s3.PutObjectInput{
		Bucket:      aws.String(s.Bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String(opts.ContentType),
	}
	if !opts.Overwrite {
		input.IfNoneMatch = aws.String("*")
	}

	if _, err := s.Client.PutObject(ctx, input); err != nil {
		return "", storageError(err)
	}
	return key, nil
}

// SignedURL 確認物件存在後產生有時效的 GET 網址
func (s *S3Operator) SignedURL(ctx context.Context, key string, expiry time.Duration) (string, error) {
	const op = "s3.S3Operator.SignedURL"

	if _, err := s.Client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(s.Bucket),
		Key:    aws.String(key),
	}); err != nil {
		return "", fmt.Errorf("%s: failed to head object %q: %w", op, key, err)
	}

	req, err := s.Presign.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.Bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(expiry))
	if err != nil {
		return "", fmt.Errorf("%s: failed to presign object %q: %w", op, key, err)
	}
	return req.URL, nil
}

func (s *S3Operator) List(ctx context.Context, prefix string) ([]string, error) {
	const op = "s3.S3Operator.List"

	var keys []string
	paginator := s3.NewListObjectsV2Paginator(s.Client, &s3.ListObjectsV2Input{
		Bucket: aws.String(s.Bucket),
		Prefix: aws.String(prefix),
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("%s: failed to list objects: %w", op, err)
		}
		for _, object := range page.Contents {
			keys = append(keys, aws.ToString(object.Key))
		}
	}
	return keys, nil
}

// Remove 以每批 MaxDeleteObjects 個 key 呼叫 DeleteObjects
// 任一物件刪除失敗即回傳錯誤
func (s *S3Operator) Remove(ctx context.Context, keys []string) error {
	const op = "s3.S3Operator.Remove"

	for _, chunk := range lo.Chunk(keys, MaxDeleteObjects) {
		output, err := s.Client.DeleteObjects(ctx, &s3.DeleteObjectsInput{
			Bucket: aws.String(s.Bucket),
			Delete: &types.Delete{
				Objects: lo.Map(chunk, func(key string, _ int) types.ObjectIdentifier {
					return types.ObjectIdentifier{Key: aws.String(key)}
				}),
				Quiet: aws.Bool(true),
			},
		})
		if err != nil {
			return fmt.Errorf("%s: failed to delete objects: %w", op, err)
		}
		if len(output.Errors) > 0 {
			first := output.Errors[0]
			return fmt.Errorf("%s: failed to delete %d object(s), first %q: %s",
				op, len(output.Errors), aws.ToString(first.Key), aws.ToString(first.Message))
		}
	}
	return nil
}

// storageError 保留服務端回傳的錯誤訊息，讓上傳失敗的原因能原樣呈現
func storageError(err error) error {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) && apiErr.ErrorMessage() != "" {
		return &StorageError{Code: apiErr.ErrorCode(), Message: apiErr.ErrorMessage(), Err: err}
	}
	return err
}

type StorageError struct {
	Code    string
	Message string
	Err     error
}

func (e *StorageError) Error() string {
	return e.Message
}

func (e *StorageError) Unwrap() error {
	return e.Err
}
