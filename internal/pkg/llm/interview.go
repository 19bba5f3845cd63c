package llm

import (
	"context"
	"fmt"
	log "log/slog"
	"strings"

	"github.com/goccy/go-json"
)

type InterviewRequest struct {
	Role      string
	Level     string
	Type      string
	Techstack []string
	Amount    int
}

func (r InterviewRequest) prompt() string {
	return fmt.Sprintf("Generate %d interview questions for a %s position.\nExperience level: %s\nTech stack: %s\nFocus: %s\n",
		r.Amount, r.Role, r.Level, strings.Join(r.Techstack, ", "), r.Type)
}

// GenerateQuestions 模型失败或返回无法解析时使用固定问题，不返回错误
func GenerateQuestions(ctx context.Context, oracle Oracle, req InterviewRequest) []string {
	raw, err := oracle.Complete(ctx, interviewPrompt, req.prompt(), 0.7)
	if err != nil {
		log.WarnContext(ctx, "interview generation failed, using fallback", "err", err)
		return FallbackQuestions(req.Role, req.Amount)
	}

	questions := ParseQuestions(raw)
	if len(questions) == 0 {
		log.WarnContext(ctx, "failed to parse AI response, using fallback questions", "raw", truncate(raw, 512))
		return FallbackQuestions(req.Role, req.Amount)
	}
	if len(questions) > req.Amount {
		questions = questions[:req.Amount]
	}
	return questions
}

// ParseQuestions 解析回复中的 JSON 字符串数组，丢弃空白项
func ParseQuestions(raw string) []string {
	block := extractJSONArray(strings.TrimSpace(raw))
	if block == "" {
		return nil
	}
	var items []any
	if err := json.Unmarshal([]byte(block), &items); err != nil {
		return nil
	}
	questions := make([]string, 0, len(items))
	for _, item := range items {
		q, ok := item.(string)
		if !ok || strings.TrimSpace(q) == "" {
			continue
		}
		questions = append(questions, strings.TrimSpace(q))
	}
	return questions
}

func FallbackQuestions(role string, amount int) []string {
	questions := []string{
		fmt.Sprintf("Tell me about your experience with %s development", role),
		fmt.Sprintf("How do you approach problem-solving in %s projects?", role),
		fmt.Sprintf("Describe a challenging %s project you've worked on recently", role),
		fmt.Sprintf("What interests you most about %s development?", role),
		fmt.Sprintf("How do you stay updated with the latest %s technologies?", role),
	}
	if amount > 0 && amount < len(questions) {
		return questions[:amount]
	}
	return questions
}
