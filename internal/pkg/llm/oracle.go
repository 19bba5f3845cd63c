package llm

import (
	"InterVue/internal/api/config"
	"context"
	log "log/slog"

	"github.com/pkg/errors"
	"github.com/tmc/langchaingo/llms"
	"golang.org/x/sync/semaphore"
)

var ErrEmptyReply = errors.New("llm reply is empty")

// Oracle 文本补全服务，输入系统提示词与用户提示词，返回模型原始文本
type Oracle interface {
	Complete(ctx context.Context, systemPrompt string, userPrompt string, temp float64) (string, error)
}

// chatOracle 基于 langchaingo 的 OpenAI 兼容实现
type chatOracle struct {
	model     llms.Model
	textModel string
	sem       *semaphore.Weighted
}

func (s *chatOracle) Complete(ctx context.Context, systemPrompt string, userPrompt string, temp float64) (string, error) {
	if err := s.sem.Acquire(ctx, 1); err != nil {
		return "", err
	}
	defer s.sem.Release(1)

	messages := []llms.MessageContent{
		llms.TextParts(llms.ChatMessageTypeSystem, systemPrompt),
		llms.TextParts(llms.ChatMessageTypeHuman, userPrompt),
	}
	log.InfoContext(ctx, "正在请求AI大模型", "model", s.textModel)
	resp, err := s.model.GenerateContent(ctx, messages,
		llms.WithModel(s.textModel),
		llms.WithTemperature(temp),
	)
	if err != nil {
		return "", errors.Wrap(err, "generate content")
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Content == "" {
		return "", ErrEmptyReply
	}
	return resp.Choices[0].Content, nil
}

func newTextSem(cfg config.LLMConfig) *semaphore.Weighted {
	n := cfg.MaxConcurrency
	if n <= 0 {
		n = 5
	}
	return semaphore.NewWeighted(n)
}
