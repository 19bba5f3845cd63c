package kafka

import (
	"InterVue/internal/pkg/mongo"
	"context"
)

// InlinePublisher Kafka 关闭时直接写通知
type InlinePublisher struct {
	repo mongo.NotificationRepo
}

func NewInlinePublisher(repo mongo.NotificationRepo) *InlinePublisher {
	return &InlinePublisher{repo: repo}
}

func (s *InlinePublisher) Publish(ctx context.Context, messages ...*RewardMessage) error {
	list := make([]*mongo.NotificationModel, 0, len(messages))
	for _, m := range messages {
		list = append(list, m.ToNotification())
	}
	return s.repo.CreateNotifications(ctx, list)
}
