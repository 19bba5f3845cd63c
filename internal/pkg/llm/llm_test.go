package llm

import (
	"context"
	"errors"
	"strings"
	"testing"
)

type stubOracle struct {
	reply string
	err   error
}

func (s *stubOracle) Complete(context.Context, string, string, float64) (string, error) {
	return s.reply, s.err
}

func TestParseQuestions(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{"plain array", `["A", "B"]`, []string{"A", "B"}},
		{"surrounded by text", "Sure!\n```json\n[\"A\", \"  \", 3, \"B\"]\n```", []string{"A", "B"}},
		{"no array", "I cannot help with that", nil},
		{"broken json", `["A", `, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseQuestions(tt.raw)
			if strings.Join(got, "|") != strings.Join(tt.want, "|") {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGenerateQuestionsFallback(t *testing.T) {
	ctx := context.Background()
	req := InterviewRequest{Role: "Backend", Amount: 3}

	got := GenerateQuestions(ctx, &stubOracle{err: errors.New("boom")}, req)
	if len(got) != 3 || !strings.Contains(got[0], "Backend") {
		t.Fatalf("unexpected fallback: %v", got)
	}

	got = GenerateQuestions(ctx, &stubOracle{reply: "nothing useful"}, InterviewRequest{Role: "Go", Amount: 10})
	if len(got) != 5 {
		t.Fatalf("fallback should cap at 5 canned questions, got %d", len(got))
	}

	got = GenerateQuestions(ctx, &stubOracle{reply: `["1","2","3","4"]`}, InterviewRequest{Role: "Go", Amount: 2})
	if len(got) != 2 || got[1] != "2" {
		t.Fatalf("expected first two questions, got %v", got)
	}
}

func TestParseFeedback(t *testing.T) {
	raw := "```json\n" + `{
		"totalScore": 0,
		"categoryScores": [
			{"name": "communication skills", "score": 80, "comment": "clear"},
			{"name": "Technical Knowledge", "score": 120, "comment": "strong"},
			{"name": "Humor", "score": 10, "comment": "n/a"}
		],
		"finalAssessment": "good"
	}` + "\n```"

	got, err := ParseFeedback(raw)
	if err != nil {
		t.Fatalf("ParseFeedback: %v", err)
	}
	if len(got.CategoryScores) != 2 {
		t.Fatalf("unknown categories should be dropped, got %+v", got.CategoryScores)
	}
	if got.CategoryScores[0].Name != "Communication Skills" || got.CategoryScores[1].Score != 100 {
		t.Fatalf("unexpected categories %+v", got.CategoryScores)
	}
	if got.TotalScore != 90 {
		t.Fatalf("total score = %d, want 90", got.TotalScore)
	}
	if got.Strengths == nil || got.AreasForImprovement == nil {
		t.Fatal("lists should never be nil")
	}

	if _, err = ParseFeedback("not json"); !errors.Is(err, ErrInvalidFeedback) {
		t.Fatalf("expected ErrInvalidFeedback, got %v", err)
	}
}

func TestParseQuiz(t *testing.T) {
	raw := "```json\n{\"questions\":[{\"id\":\"x\",\"question\":\"Q?\",\"options\":[\"a\",\"b\",\"c\",\"d\"],\"correctIndex\":2}]}\n```"
	got := ParseQuiz(raw, 5)
	if len(got) != 1 || got[0].ID != "q_1" || got[0].CorrectIndex != 2 {
		t.Fatalf("unexpected quiz %+v", got)
	}

	loose := ParseQuiz("Go has generics\n\nGo has exceptions\nThird line", 2)
	if len(loose) != 2 {
		t.Fatalf("loose fallback should cap at num, got %d", len(loose))
	}
	if loose[1].ID != "q_2" || loose[1].Question != "Go has exceptions" || loose[1].Options[0] != "True" {
		t.Fatalf("unexpected loose question %+v", loose[1])
	}
}

func TestGenerateQuizOracleError(t *testing.T) {
	_, err := GenerateQuiz(context.Background(), &stubOracle{err: ErrEmptyReply}, "go", 3, "easy")
	if !errors.Is(err, ErrEmptyReply) {
		t.Fatalf("expected oracle error, got %v", err)
	}

	for _, reply := range []string{"", "  \n\t\n"} {
		if _, err = GenerateQuiz(context.Background(), &stubOracle{reply: reply}, "go", 3, "easy"); !errors.Is(err, ErrEmptyReply) {
			t.Errorf("reply %q: expected ErrEmptyReply, got %v", reply, err)
		}
	}
}

func TestParseQuizCapsJSONQuestions(t *testing.T) {
	raw := `{"questions":[{"question":"A?"},{"question":"B?"},{"question":"C?"}]}`
	got := ParseQuiz(raw, 2)
	if len(got) != 2 || got[1].ID != "q_2" || got[1].Question != "B?" {
		t.Fatalf("unexpected quiz %+v", got)
	}
	if got[0].Options == nil {
		t.Error("options should default to an empty list")
	}
}

func TestGeminiResponseText(t *testing.T) {
	var r geminiResponse
	if _, err := r.text(); !errors.Is(err, ErrEmptyReply) {
		t.Fatalf("expected ErrEmptyReply, got %v", err)
	}
	r.Candidates = append(r.Candidates, struct {
		Content geminiContent `json:"content"`
	}{Content: geminiContent{Parts: []geminiPart{{Text: "a"}, {Text: "b"}}}})
	got, err := r.text()
	if err != nil || got != "a\nb" {
		t.Fatalf("got %q, %v", got, err)
	}
}
