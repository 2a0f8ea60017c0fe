// internal/service/order/domain/port/blob.go
package port

import (
	"context"
	"time"
)

// BlobStore 是对象存储的出站端口，与订单数据正交。
// 上传失败会让当前请求失败，但不允许污染订单状态。
type BlobStore interface {
	// Upload 上传一段数据，返回对象 Key。
	Upload(ctx context.Context, data []byte, contentType, filename string) (string, error)

	// PresignedURL 生成一个限时访问的预签名 URL。
	PresignedURL(ctx context.Context, key string, expiry time.Duration) (string, error)

	// Download 下载对象内容。
	Download(ctx context.Context, key string) ([]byte, error)

	// Delete 删除一个对象。
	Delete(ctx context.Context, key string) error

	// DeleteMany 并发删除一批对象，任意一个失败即返回错误。
	DeleteMany(ctx context.Context, keys []string) error

	// Exists 判断对象是否存在。
	Exists(ctx context.Context, key string) (bool, error)
}
