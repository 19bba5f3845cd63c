package redis

import (
	"context"
	"time"
)

// Store 以全局客户端实现 service 层的缓存接口
type Store struct{}

func NewStore() *Store {
	return &Store{}
}

func (s *Store) Get(ctx context.Context, key string) (string, error) {
	return GetValue(ctx, key)
}

func (s *Store) Set(ctx context.Context, key string, value string, ttl time.Duration) error {
	return SetWithExpiration(ctx, key, value, ttl)
}

func (s *Store) Exists(ctx context.Context, key string) (bool, error) {
	return Exists(ctx, key)
}

func (s *Store) Delete(ctx context.Context, key string) error {
	return DeleteKey(ctx, key)
}

// Lock 单次尝试获取分布式锁
func (s *Store) Lock(ctx context.Context, key string, owner string, ttl time.Duration) (bool, error) {
	return TryLock(ctx, key, owner, ttl, 1)
}

func (s *Store) Unlock(ctx context.Context, key string, owner string) {
	UnLock(ctx, key, owner)
}
