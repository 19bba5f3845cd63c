package service

import (
	"InterVue/internal/api/dto"
	"InterVue/internal/model"
	"InterVue/internal/pkg/consts"
	"InterVue/internal/pkg/llm"
	"context"
	log "log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

const (
	defaultQuizQuestions = 5
	maxQuizQuestions     = 20
	quizTTL              = 24 * time.Hour
)

type QuizService interface {
	Generate(ctx context.Context, req *dto.GenerateQuizDTO) (*dto.QuizDTO, error)
	Complete(ctx context.Context, userID string, quizID string) (*dto.RewardResultDTO, error)
}

type quizServiceImpl struct {
	oracle        llm.Oracle
	cache         Cache
	rewardService RewardService
}

func NewQuizService(oracle llm.Oracle, cache Cache, rewardService RewardService) QuizService {
	return &quizServiceImpl{oracle: oracle, cache: cache, rewardService: rewardService}
}

// Generate 模型不可用返回 502，格式不对时退化为判断题
func (s *quizServiceImpl) Generate(ctx context.Context, req *dto.GenerateQuizDTO) (*dto.QuizDTO, error) {
	topic := strings.TrimSpace(req.Topic)
	if topic == "" {
		return nil, ErrMissingTopic
	}
	num := req.NumQuestions
	if num <= 0 {
		num = defaultQuizQuestions
	}
	num = min(num, maxQuizQuestions)
	difficulty := req.Difficulty
	if difficulty == "" {
		difficulty = "easy"
	}

	questions, err := llm.GenerateQuiz(ctx, s.oracle, topic, num, difficulty)
	if err != nil {
		log.ErrorContext(ctx, "generate quiz failed", "topic", topic, "err", err)
		return nil, ErrOracleUnavailable
	}

	quiz := &dto.QuizDTO{QuizID: uuid.NewString(), Questions: make([]*dto.QuizQuestionDTO, 0, len(questions))}
	for _, q := range questions {
		d := &dto.QuizQuestionDTO{}
		_ = copier.Copy(d, &q)
		quiz.Questions = append(quiz.Questions, d)
	}

	if err = s.cache.Set(ctx, consts.QuizKey+quiz.QuizID, topic, quizTTL); err != nil {
		log.WarnContext(ctx, "remember quiz failed", "quiz_id", quiz.QuizID, "err", err)
	}
	return quiz, nil
}

// Complete 只有本服务签发过的测验才能领取奖励
func (s *quizServiceImpl) Complete(ctx context.Context, userID string, quizID string) (*dto.RewardResultDTO, error) {
	quizID = strings.TrimSpace(quizID)
	if quizID == "" {
		return nil, ErrMissingSourceID
	}
	issued, err := s.cache.Exists(ctx, consts.QuizKey+quizID)
	if err != nil {
		return nil, err
	}
	if !issued {
		return nil, ErrQuizNotFound
	}
	return s.rewardService.Trigger(ctx, userID, quizID, model.RewardTypeQuizCompletion)
}
