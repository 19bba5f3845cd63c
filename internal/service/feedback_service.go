package service

import (
	"InterVue/internal/api/dto"
	"InterVue/internal/model"
	"InterVue/internal/pkg/llm"
	"InterVue/internal/pkg/mongo"
	"InterVue/internal/repository"
	"context"
	"errors"
	log "log/slog"
	"time"

	"github.com/jinzhu/copier"
	"gorm.io/gorm"
)

type FeedbackService interface {
	CreateFeedback(ctx context.Context, interviewID string, userID string, req *dto.CreateFeedbackDTO) (string, error)
	GetFeedback(ctx context.Context, interviewID string, userID string) (*dto.FeedbackDTO, error)
}

type feedbackServiceImpl struct {
	interviewRepo  repository.InterviewRepo
	feedbackRepo   repository.FeedbackRepo
	transcriptRepo mongo.TranscriptRepo
	rewardService  RewardService
	oracle         llm.Oracle
}

func NewFeedbackService(
	interviewRepo repository.InterviewRepo,
	feedbackRepo repository.FeedbackRepo,
	transcriptRepo mongo.TranscriptRepo,
	rewardService RewardService,
	oracle llm.Oracle,
) FeedbackService {
	return &feedbackServiceImpl{
		interviewRepo:  interviewRepo,
		feedbackRepo:   feedbackRepo,
		transcriptRepo: transcriptRepo,
		rewardService:  rewardService,
		oracle:         oracle,
	}
}

// CreateFeedback 评分入库后触发奖励，奖励失败不影响反馈结果
func (s *feedbackServiceImpl) CreateFeedback(ctx context.Context, interviewID string, userID string, req *dto.CreateFeedbackDTO) (string, error) {
	if len(req.Transcript) == 0 {
		return "", ErrEmptyTranscript
	}
	interview, err := s.interviewRepo.GetInterviewByID(ctx, interviewID)
	if err != nil {
		return "", err
	}
	if interview == nil {
		return "", ErrInterviewNotFound
	}

	lines := make([]llm.TranscriptLine, 0, len(req.Transcript))
	docLines := make([]mongo.TranscriptLine, 0, len(req.Transcript))
	for _, t := range req.Transcript {
		lines = append(lines, llm.TranscriptLine{Role: t.Role, Content: t.Content})
		docLines = append(docLines, mongo.TranscriptLine{Role: t.Role, Content: t.Content})
	}
	err = s.transcriptRepo.SaveTranscript(ctx, &mongo.TranscriptModel{
		InterviewID: interviewID,
		UserID:      userID,
		Lines:       docLines,
		CreatedAt:   time.Now(),
	})
	if err != nil {
		log.WarnContext(ctx, "save transcript failed", "interview_id", interviewID, "err", err)
	}

	result, err := llm.ScoreTranscript(ctx, s.oracle, lines)
	if err != nil {
		log.ErrorContext(ctx, "score transcript failed", "interview_id", interviewID, "err", err)
		return "", ErrOracleUnavailable
	}

	feedback := &model.Feedback{
		ID:                  req.FeedbackID,
		InterviewID:         interviewID,
		UserID:              userID,
		TotalScore:          result.TotalScore,
		Strengths:           result.Strengths,
		AreasForImprovement: result.AreasForImprovement,
		FinalAssessment:     result.FinalAssessment,
	}
	for _, c := range result.CategoryScores {
		feedback.CategoryScores = append(feedback.CategoryScores, model.CategoryScore{
			Name:    c.Name,
			Score:   c.Score,
			Comment: c.Comment,
		})
	}

	if req.FeedbackID != "" {
		err = s.feedbackRepo.UpdateFeedback(ctx, feedback)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrFeedbackNotFound
		}
	} else {
		err = s.feedbackRepo.SaveFeedback(ctx, feedback)
	}
	if err != nil {
		return "", err
	}

	if _, err = s.rewardService.Trigger(ctx, userID, interviewID, model.RewardTypeInterviewFeedback); err != nil {
		log.ErrorContext(ctx, "reward trigger failed", "interview_id", interviewID, "err", err)
	}
	return feedback.ID, nil
}

func (s *feedbackServiceImpl) GetFeedback(ctx context.Context, interviewID string, userID string) (*dto.FeedbackDTO, error) {
	feedback, err := s.feedbackRepo.GetFeedback(ctx, interviewID, userID)
	if err != nil {
		return nil, err
	}
	if feedback == nil {
		return nil, ErrFeedbackNotFound
	}
	d := &dto.FeedbackDTO{}
	if err = copier.Copy(d, feedback); err != nil {
		return nil, err
	}
	return d, nil
}
