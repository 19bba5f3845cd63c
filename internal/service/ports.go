package service

import (
	"InterVue/internal/pkg/kafka"
	"context"
	"io"
	"time"
)

// Cache 键值缓存，未命中返回空串
type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string, ttl time.Duration) error
	Exists(ctx context.Context, key string) (bool, error)
	Delete(ctx context.Context, key string) error
}

// EventPublisher 奖励事件出口，Kafka 或直接写通知
type EventPublisher interface {
	Publish(ctx context.Context, messages ...*kafka.RewardMessage) error
}

// ObjectStore 对象存储，返回外部访问地址
type ObjectStore interface {
	Upload(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) (string, error)
}
