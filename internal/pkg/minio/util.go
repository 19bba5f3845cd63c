package minio

import (
	"InterVue/internal/api/config"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/minio/minio-go/v7"
)

// Store 以全局客户端实现 service 层的对象存储接口
type Store struct{}

func NewStore() *Store {
	return &Store{}
}

// Upload 上传后返回外部可访问地址
func (s *Store) Upload(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) (string, error) {
	if Client == nil {
		return "", fmt.Errorf("minio client is not initialized")
	}
	info, err := Client.PutObject(ctx, Bucket, objectName, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload file: %w", err)
	}
	return GetPublicURL(info.Key), nil
}

// GetPublicURL 拼接外部访问地址
func GetPublicURL(objectName string) string {
	endpoint := strings.TrimRight(config.Cfg.MinIO.ExternalEndpoint, "/")
	if !strings.HasPrefix(endpoint, "http://") && !strings.HasPrefix(endpoint, "https://") {
		endpoint = "https://" + endpoint
	}
	return fmt.Sprintf("%s/%s/%s", endpoint, Bucket, objectName)
}
