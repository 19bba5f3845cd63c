package llm

import (
	"InterVue/internal/api/config"
	log "log/slog"

	"github.com/pkg/errors"
	"github.com/tmc/langchaingo/llms/openai"
)

var (
	interviewPrompt string
	feedbackPrompt  string
	quizPrompt      string
)

// NewOracle 按 provider 创建补全客户端并加载提示词
func NewOracle(cfg config.LLMConfig) (Oracle, error) {
	interviewPrompt = readPrompt(cfg.PromptsPath.Interview)
	feedbackPrompt = readPrompt(cfg.PromptsPath.Feedback)
	quizPrompt = readPrompt(cfg.PromptsPath.Quiz)

	sem := newTextSem(cfg)
	switch cfg.Provider {
	case config.LLMProviderGemini:
		log.Info("LLM provider initialized", "provider", cfg.Provider, "model", cfg.TextModel)
		return newGeminiOracle(cfg.URL, cfg.ApiKey, cfg.TextModel, sem), nil
	case config.LLMProviderOpenAI, "":
		model, err := openai.New(
			openai.WithModel(cfg.TextModel),
			openai.WithToken(cfg.ApiKey),
			openai.WithBaseURL(cfg.URL),
		)
		if err != nil {
			log.Error("AI大模型初始化失败", "err", err)
			return nil, err
		}
		log.Info("LLM provider initialized", "provider", config.LLMProviderOpenAI, "model", cfg.TextModel)
		return &chatOracle{model: model, textModel: cfg.TextModel, sem: sem}, nil
	default:
		return nil, errors.Errorf("unknown llm provider %q", cfg.Provider)
	}
}
