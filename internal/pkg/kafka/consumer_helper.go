package kafka

import (
	"context"
	log "log/slog"
	"sync"
	"time"

	"github.com/IBM/sarama"
)

const (
	batchSize     = 32
	batchTimeout  = 1 * time.Second
	maxAttempts   = 5
	maxRetryDelay = 5 * time.Second
)

type LogicFunc func(ctx context.Context, msg *sarama.ConsumerMessage) error

// pullMessageBatch 攒批消费，满批或超时都会触发处理
func pullMessageBatch(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim, logic LogicFunc) error {
	batch := make([]*sarama.ConsumerMessage, 0, batchSize)
	ticker := time.NewTicker(batchTimeout)
	defer ticker.Stop()

	flush := func() {
		if len(batch) == 0 {
			return
		}
		processBatch(session, batch, logic)
		batch = make([]*sarama.ConsumerMessage, 0, batchSize)
	}

	for {
		select {
		case msg, ok := <-claim.Messages():
			if !ok {
				flush()
				return nil
			}
			batch = append(batch, msg)
			if len(batch) >= batchSize {
				flush()
				ticker.Reset(batchTimeout)
			}
		case <-ticker.C:
			flush()
		case <-session.Context().Done():
			return nil
		}
	}
}

// processBatch 并发处理一批消息，全部结束后提交最后一条的位点
func processBatch(session sarama.ConsumerGroupSession, messages []*sarama.ConsumerMessage, logic LogicFunc) {
	var wg sync.WaitGroup
	for _, msg := range messages {
		wg.Add(1)
		go func(m *sarama.ConsumerMessage) {
			defer wg.Done()
			processWithRetry(session.Context(), m, logic)
		}(msg)
	}
	wg.Wait()

	session.MarkMessage(messages[len(messages)-1], "")
	session.Commit()
}

// processWithRetry 指数退避重试，超过次数后丢弃并记录
func processWithRetry(ctx context.Context, msg *sarama.ConsumerMessage, logic LogicFunc) {
	delay := 100 * time.Millisecond
	for attempt := 1; ; attempt++ {
		err := logic(ctx, msg)
		if err == nil {
			return
		}
		if attempt >= maxAttempts {
			log.Error("drop message after retries",
				"topic", msg.Topic, "partition", msg.Partition, "offset", msg.Offset, "err", err)
			return
		}
		log.Warn("process message error", "attempt", attempt, "err", err)

		select {
		case <-ctx.Done():
			return
		case <-time.After(delay):
		}
		delay = min(delay*2, maxRetryDelay)
	}
}
