package llm

import (
	"context"
	"strings"

	"github.com/goccy/go-json"
	"github.com/pkg/errors"
)

// FeedbackCategories 评分维度，顺序即输出顺序
var FeedbackCategories = []string{
	"Communication Skills",
	"Technical Knowledge",
	"Problem-Solving",
	"Cultural & Role Fit",
	"Confidence & Clarity",
}

var ErrInvalidFeedback = errors.New("llm feedback reply is not valid json")

type TranscriptLine struct {
	Role    string
	Content string
}

type CategoryScore struct {
	Name    string `json:"name"`
	Score   int    `json:"score"`
	Comment string `json:"comment"`
}

type FeedbackResult struct {
	TotalScore          int             `json:"totalScore"`
	CategoryScores      []CategoryScore `json:"categoryScores"`
	Strengths           []string        `json:"strengths"`
	AreasForImprovement []string        `json:"areasForImprovement"`
	FinalAssessment     string          `json:"finalAssessment"`
}

func FormatTranscript(lines []TranscriptLine) string {
	var b strings.Builder
	for _, line := range lines {
		b.WriteString("- ")
		b.WriteString(line.Role)
		b.WriteString(": ")
		b.WriteString(line.Content)
		b.WriteString("\n")
	}
	return b.String()
}

// ScoreTranscript 评分失败直接返回错误，由调用方展示给用户
func ScoreTranscript(ctx context.Context, oracle Oracle, lines []TranscriptLine) (*FeedbackResult, error) {
	raw, err := oracle.Complete(ctx, feedbackPrompt, "Transcript:\n"+FormatTranscript(lines), 0.2)
	if err != nil {
		return nil, err
	}
	return ParseFeedback(raw)
}

// ParseFeedback 只保留固定维度，分数截断到 0..100，总分缺失时取平均
func ParseFeedback(raw string) (*FeedbackResult, error) {
	var result FeedbackResult
	if err := json.Unmarshal([]byte(stripCodeFence(raw)), &result); err != nil {
		return nil, errors.Wrap(ErrInvalidFeedback, err.Error())
	}

	byName := make(map[string]CategoryScore, len(result.CategoryScores))
	for _, c := range result.CategoryScores {
		byName[strings.ToLower(strings.TrimSpace(c.Name))] = c
	}

	scores := make([]CategoryScore, 0, len(FeedbackCategories))
	sum := 0
	for _, name := range FeedbackCategories {
		c, ok := byName[strings.ToLower(name)]
		if !ok {
			continue
		}
		c.Name = name
		c.Score = clampScore(c.Score)
		sum += c.Score
		scores = append(scores, c)
	}
	if len(scores) == 0 {
		return nil, ErrInvalidFeedback
	}
	result.CategoryScores = scores

	if result.TotalScore <= 0 {
		result.TotalScore = sum / len(scores)
	}
	result.TotalScore = clampScore(result.TotalScore)
	if result.Strengths == nil {
		result.Strengths = []string{}
	}
	if result.AreasForImprovement == nil {
		result.AreasForImprovement = []string{}
	}
	return &result, nil
}

func clampScore(v int) int {
	return max(0, min(100, v))
}
