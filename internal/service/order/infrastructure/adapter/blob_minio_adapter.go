// internal/service/order/infrastructure/adapter/blob_minio_adapter.go
package adapter

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"time"

	"barista/internal/service/order/domain"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"golang.org/x/sync/errgroup"
)

// BlobMinioAdapter 是 port.BlobStore 的 MinIO 实现，兼容任何 S3 协议的对象存储。
// 所有失败都包装成 *domain.StorageError 再往上抛。
type BlobMinioAdapter struct {
	client *minio.Client
	bucket string
}

// NewBlobMinioAdapter 创建适配器并确保目标 bucket 存在。
func NewBlobMinioAdapter(endpoint, accessKey, secretKey, bucket string, useSSL bool) (*BlobMinioAdapter, error) {
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, &domain.StorageError{Op: "blob.connect", Err: err}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return nil, &domain.StorageError{Op: "blob.bucket_check", Err: err}
	}
	if !exists {
		if err := client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, &domain.StorageError{Op: "blob.bucket_create", Err: err}
		}
	}

	return &BlobMinioAdapter{client: client, bucket: bucket}, nil
}

// Upload 上传数据并返回对象 Key。
// Key 用 UUID 前缀加原始文件名，同名文件互不覆盖。
func (a *BlobMinioAdapter) Upload(ctx context.Context, data []byte, contentType, filename string) (string, error) {
	key := uuid.New().String()
	if filename != "" {
		key = key + "_" + filename
	}

	_, err := a.client.PutObject(ctx, a.bucket, key, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", &domain.StorageError{Op: "blob.upload", Err: err}
	}
	return key, nil
}

// PresignedURL 生成限时访问的预签名 URL，过期后自动失效。
func (a *BlobMinioAdapter) PresignedURL(ctx context.Context, key string, expiry time.Duration) (string, error) {
	u, err := a.client.PresignedGetObject(ctx, a.bucket, key, expiry, nil)
	if err != nil {
		return "", &domain.StorageError{Op: "blob.presign", Err: err}
	}
	return u.String(), nil
}

// Download 下载对象内容
func (a *BlobMinioAdapter) Download(ctx context.Context, key string) ([]byte, error) {
	obj, err := a.client.GetObject(ctx, a.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, &domain.StorageError{Op: "blob.download", Err: err}
	}
	defer obj.Close()

	data, err := io.ReadAll(obj)
	if err != nil {
		return nil, &domain.StorageError{Op: "blob.download", Err: err}
	}
	return data, nil
}

// Delete 删除一个对象
func (a *BlobMinioAdapter) Delete(ctx context.Context, key string) error {
	if err := a.client.RemoveObject(ctx, a.bucket, key, minio.RemoveObjectOptions{}); err != nil {
		return &domain.StorageError{Op: "blob.delete", Err: err}
	}
	return nil
}

// DeleteMany 并发删除一批对象，任何一个失败就整体报错。
func (a *BlobMinioAdapter) DeleteMany(ctx context.Context, keys []string) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(8)
	for _, key := range keys {
		key := key
		g.Go(func() error {
			return a.Delete(ctx, key)
		})
	}
	return g.Wait()
}

// Exists 判断对象是否存在，404 视为不存在而不是错误。
func (a *BlobMinioAdapter) Exists(ctx context.Context, key string) (bool, error) {
	_, err := a.client.StatObject(ctx, a.bucket, key, minio.StatObjectOptions{})
	if err != nil {
		if resp := minio.ToErrorResponse(err); resp.StatusCode == http.StatusNotFound {
			return false, nil
		}
		return false, &domain.StorageError{Op: "blob.stat", Err: err}
	}
	return true, nil
}
