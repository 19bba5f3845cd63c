package kafka

import (
	"InterVue/internal/api/config"
	"context"
	log "log/slog"

	"github.com/IBM/sarama"
	"github.com/goccy/go-json"
	"github.com/pkg/errors"
)

// Producer 把奖励事件写入 Kafka，由通知消费者组落库
type Producer struct {
	producer sarama.SyncProducer
	topic    string
}

func NewProducer(cfg config.KafkaConfig) (*Producer, error) {
	p, err := sarama.NewSyncProducer(cfg.Brokers, newSaramaConfig(cfg))
	if err != nil {
		return nil, errors.Wrap(err, "create kafka producer")
	}
	return &Producer{producer: p, topic: cfg.Reward.Topic}, nil
}

func (s *Producer) Publish(ctx context.Context, messages ...*RewardMessage) error {
	if len(messages) == 0 {
		return nil
	}
	batch := make([]*sarama.ProducerMessage, 0, len(messages))
	for _, m := range messages {
		value, err := json.Marshal(m)
		if err != nil {
			return errors.Wrap(err, "marshal reward message")
		}
		batch = append(batch, &sarama.ProducerMessage{
			Topic: s.topic,
			Key:   sarama.StringEncoder(m.UserID),
			Value: sarama.ByteEncoder(value),
		})
	}
	if err := s.producer.SendMessages(batch); err != nil {
		return errors.Wrap(err, "send reward messages")
	}
	log.DebugContext(ctx, "reward messages published", "count", len(batch), "topic", s.topic)
	return nil
}

func (s *Producer) Close() error {
	return s.producer.Close()
}
