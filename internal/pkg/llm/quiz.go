package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/goccy/go-json"
)

type QuizQuestion struct {
	ID           string   `json:"id"`
	Question     string   `json:"question"`
	Options      []string `json:"options"`
	CorrectIndex int      `json:"correctIndex"`
	Explanation  string   `json:"explanation"`
}

type quizReply struct {
	Questions []QuizQuestion `json:"questions"`
}

// GenerateQuiz 模型不可用或一题都解析不出时返回错误，回复格式不对时退化为判断题
func GenerateQuiz(ctx context.Context, oracle Oracle, topic string, num int, difficulty string) ([]QuizQuestion, error) {
	userPrompt := fmt.Sprintf("Generate %d multiple-choice questions on the topic: %q. Difficulty: %s.", num, topic, difficulty)
	raw, err := oracle.Complete(ctx, quizPrompt, userPrompt, 0.7)
	if err != nil {
		return nil, err
	}
	questions := ParseQuiz(raw, num)
	if len(questions) == 0 {
		return nil, ErrEmptyReply
	}
	return questions, nil
}

// ParseQuiz 最多保留 num 题，题号统一重写为 q_N
func ParseQuiz(raw string, num int) []QuizQuestion {
	var reply quizReply
	if err := json.Unmarshal([]byte(stripCodeFence(raw)), &reply); err == nil && len(reply.Questions) > 0 {
		if num > 0 && len(reply.Questions) > num {
			reply.Questions = reply.Questions[:num]
		}
		questions := make([]QuizQuestion, 0, len(reply.Questions))
		for i, q := range reply.Questions {
			q.ID = fmt.Sprintf("q_%d", i+1)
			if q.Options == nil {
				q.Options = []string{}
			}
			questions = append(questions, q)
		}
		return questions
	}
	return parseLooseQuestions(raw, num)
}

func parseLooseQuestions(raw string, num int) []QuizQuestion {
	questions := make([]QuizQuestion, 0, num)
	for _, line := range strings.Split(raw, "\n") {
		if len(questions) >= num {
			break
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		questions = append(questions, QuizQuestion{
			ID:           fmt.Sprintf("q_%d", len(questions)+1),
			Question:     line,
			Options:      []string{"True", "False", "Option C", "Option D"},
			CorrectIndex: 0,
		})
	}
	return questions
}
