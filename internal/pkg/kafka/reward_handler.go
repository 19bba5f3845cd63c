package kafka

import (
	"InterVue/internal/pkg/mongo"
	"context"
	log "log/slog"

	"github.com/IBM/sarama"
	"github.com/goccy/go-json"
)

// RewardNotificationHandler 消费奖励事件并写入通知
type RewardNotificationHandler struct {
	repo mongo.NotificationRepo
}

func NewRewardNotificationHandler(repo mongo.NotificationRepo) *RewardNotificationHandler {
	return &RewardNotificationHandler{repo: repo}
}

func (s *RewardNotificationHandler) Setup(sarama.ConsumerGroupSession) error {
	log.Info("reward notification consumer setup")
	return nil
}

func (s *RewardNotificationHandler) Cleanup(sarama.ConsumerGroupSession) error {
	log.Info("reward notification consumer cleanup")
	return nil
}

func (s *RewardNotificationHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	return pullMessageBatch(session, claim, s.handle)
}

func (s *RewardNotificationHandler) handle(ctx context.Context, msg *sarama.ConsumerMessage) error {
	var reward RewardMessage
	if err := json.Unmarshal(msg.Value, &reward); err != nil {
		// 无法解析的消息重试也没有意义，直接跳过
		log.Error("unmarshal reward message error", "err", err, "offset", msg.Offset)
		return nil
	}
	if reward.UserID == "" {
		return nil
	}
	return s.repo.CreateNotifications(ctx, []*mongo.NotificationModel{reward.ToNotification()})
}
