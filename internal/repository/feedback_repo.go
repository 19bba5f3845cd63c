package repository

import (
	"InterVue/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type FeedbackRepo interface {
	SaveFeedback(ctx context.Context, feedback *model.Feedback) error
	UpdateFeedback(ctx context.Context, feedback *model.Feedback) error
	GetFeedback(ctx context.Context, interviewID string, userID string) (*model.Feedback, error)
}

type feedbackRepoImpl struct {
	db *gorm.DB
}

func NewFeedbackRepo(db *gorm.DB) FeedbackRepo {
	return &feedbackRepoImpl{db: db}
}

var feedbackColumns = []string{
	"total_score", "category_scores", "strengths", "areas_for_improvement", "final_assessment", "updated_at",
}

// SaveFeedback 同一 (interview_id, user_id) 只保留一份反馈
func (s *feedbackRepoImpl) SaveFeedback(ctx context.Context, feedback *model.Feedback) error {
	db := s.db.WithContext(ctx)
	err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "interview_id"}, {Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns(feedbackColumns),
	}).Create(feedback).Error
	if err != nil {
		return err
	}
	// 冲突更新时 feedback.ID 是新生成的，需要读回真实 ID
	return db.Model(&model.Feedback{}).
		Select("id").
		Where("interview_id = ? AND user_id = ?", feedback.InterviewID, feedback.UserID).
		Scan(&feedback.ID).Error
}

func (s *feedbackRepoImpl) UpdateFeedback(ctx context.Context, feedback *model.Feedback) error {
	result := s.db.WithContext(ctx).
		Model(&model.Feedback{}).
		Where("id = ? AND user_id = ?", feedback.ID, feedback.UserID).
		Select(feedbackColumns).
		Updates(feedback)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (s *feedbackRepoImpl) GetFeedback(ctx context.Context, interviewID string, userID string) (*model.Feedback, error) {
	feedback := &model.Feedback{}
	err := s.db.WithContext(ctx).
		Where("interview_id = ? AND user_id = ?", interviewID, userID).
		First(feedback).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return feedback, nil
}
