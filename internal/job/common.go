package job

import (
	"context"
	"time"
)

// Locker 多实例部署时保证同一任务只有一个实例执行
type Locker interface {
	Lock(ctx context.Context, key string, owner string, ttl time.Duration) (bool, error)
	Unlock(ctx context.Context, key string, owner string)
}
