package kafka

import (
	"InterVue/internal/api/config"
	"InterVue/internal/pkg/mongo"
	"context"
	log "log/slog"

	"github.com/IBM/sarama"
	"github.com/pkg/errors"
)

// ConsumerManager 管理所有 Kafka 消费者
type ConsumerManager struct {
	topic          string
	rewardConsumer sarama.ConsumerGroup
	rewardHandler  sarama.ConsumerGroupHandler
}

func NewConsumerManager(cfg config.KafkaConfig, notificationRepo mongo.NotificationRepo) (*ConsumerManager, error) {
	rewardConsumer, err := sarama.NewConsumerGroup(cfg.Brokers, cfg.Reward.GroupID, newSaramaConfig(cfg))
	if err != nil {
		return nil, errors.Wrap(err, "create reward consumer group")
	}
	return &ConsumerManager{
		topic:          cfg.Reward.Topic,
		rewardConsumer: rewardConsumer,
		rewardHandler:  NewRewardNotificationHandler(notificationRepo),
	}, nil
}

// Start 阻塞运行直到 ctx 取消
func (m *ConsumerManager) Start(ctx context.Context) error {
	go func() {
		for err := range m.rewardConsumer.Errors() {
			log.Error("reward consumer error", "err", err)
		}
	}()

	go func() {
		log.Info("Reward notification consumer started", "topic", m.topic)
		for {
			if err := m.rewardConsumer.Consume(ctx, []string{m.topic}, m.rewardHandler); err != nil {
				log.Error("Error from consumer", "err", err)
			}
			if ctx.Err() != nil {
				return
			}
		}
	}()

	<-ctx.Done()
	log.Info("Kafka Manager shutting down...")

	if err := m.rewardConsumer.Close(); err != nil {
		log.Error("Failed to close reward consumer", "err", err)
	}
	return nil
}
