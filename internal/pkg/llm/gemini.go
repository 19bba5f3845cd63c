package llm

import (
	"context"
	"fmt"
	log "log/slog"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
	"golang.org/x/sync/semaphore"
)

const geminiDefaultURL = "https://generativelanguage.googleapis.com"

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type geminiGenerationConfig struct {
	Temperature float64 `json:"temperature"`
}

type geminiRequest struct {
	SystemInstruction *geminiContent         `json:"systemInstruction,omitempty"`
	Contents          []geminiContent        `json:"contents"`
	GenerationConfig  geminiGenerationConfig `json:"generationConfig"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
}

// geminiOracle 直接调用 Gemini generateContent REST 接口
type geminiOracle struct {
	client *resty.Client
	model  string
	sem    *semaphore.Weighted
}

func newGeminiOracle(baseURL, apiKey, model string, sem *semaphore.Weighted) *geminiOracle {
	if baseURL == "" {
		baseURL = geminiDefaultURL
	}
	client := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetTimeout(60*time.Second).
		SetHeader("Content-Type", "application/json").
		SetHeader("X-goog-api-key", apiKey)
	return &geminiOracle{client: client, model: model, sem: sem}
}

func (s *geminiOracle) Complete(ctx context.Context, systemPrompt string, userPrompt string, temp float64) (string, error) {
	if err := s.sem.Acquire(ctx, 1); err != nil {
		return "", err
	}
	defer s.sem.Release(1)

	body := geminiRequest{
		Contents:         []geminiContent{{Role: "user", Parts: []geminiPart{{Text: userPrompt}}}},
		GenerationConfig: geminiGenerationConfig{Temperature: temp},
	}
	if systemPrompt != "" {
		body.SystemInstruction = &geminiContent{Parts: []geminiPart{{Text: systemPrompt}}}
	}

	var result geminiResponse
	log.InfoContext(ctx, "正在请求AI大模型", "model", s.model)
	resp, err := s.client.R().
		SetContext(ctx).
		SetBody(body).
		SetResult(&result).
		Post(fmt.Sprintf("/v1beta/models/%s:generateContent", s.model))
	if err != nil {
		return "", errors.Wrap(err, "gemini request")
	}
	if resp.IsError() {
		return "", errors.Errorf("gemini status %d: %s", resp.StatusCode(), truncate(resp.String(), 512))
	}
	return result.text()
}

func (r *geminiResponse) text() (string, error) {
	if len(r.Candidates) == 0 {
		return "", ErrEmptyReply
	}
	parts := make([]string, 0, len(r.Candidates[0].Content.Parts))
	for _, p := range r.Candidates[0].Content.Parts {
		parts = append(parts, p.Text)
	}
	text := strings.Join(parts, "\n")
	if strings.TrimSpace(text) == "" {
		return "", ErrEmptyReply
	}
	return text, nil
}
