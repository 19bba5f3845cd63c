package repository

import (
	"InterVue/internal/model"
	"context"

	"gorm.io/gorm"
)

type PeerInterviewRepo interface {
	CreateSession(ctx context.Context, session *model.PeerInterviewSession) error
	GetSessionsByUserID(ctx context.Context, userID string) ([]*model.PeerInterviewSession, error)
	CreateQuestion(ctx context.Context, question *model.PeerInterviewQuestion) error
	GetQuestionsBySessionID(ctx context.Context, sessionID string) ([]*model.PeerInterviewQuestion, error)
	CreateFeedback(ctx context.Context, feedback *model.PeerInterviewFeedback) error
	GetFeedbacksBySessionID(ctx context.Context, sessionID string) ([]*model.PeerInterviewFeedback, error)
}

type peerInterviewRepoImpl struct {
	db *gorm.DB
}

func NewPeerInterviewRepo(db *gorm.DB) PeerInterviewRepo {
	return &peerInterviewRepoImpl{db: db}
}

func (s *peerInterviewRepoImpl) CreateSession(ctx context.Context, session *model.PeerInterviewSession) error {
	return s.db.WithContext(ctx).Create(session).Error
}

func (s *peerInterviewRepoImpl) GetSessionsByUserID(ctx context.Context, userID string) ([]*model.PeerInterviewSession, error) {
	list := make([]*model.PeerInterviewSession, 0)
	err := s.db.WithContext(ctx).
		Where("participant_a = ? OR participant_b = ?", userID, userID).
		Order("created_at DESC").
		Find(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (s *peerInterviewRepoImpl) CreateQuestion(ctx context.Context, question *model.PeerInterviewQuestion) error {
	return s.db.WithContext(ctx).Create(question).Error
}

func (s *peerInterviewRepoImpl) GetQuestionsBySessionID(ctx context.Context, sessionID string) ([]*model.PeerInterviewQuestion, error) {
	list := make([]*model.PeerInterviewQuestion, 0)
	err := s.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Order("created_at ASC").
		Order("id ASC").
		Find(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (s *peerInterviewRepoImpl) CreateFeedback(ctx context.Context, feedback *model.PeerInterviewFeedback) error {
	return s.db.WithContext(ctx).Create(feedback).Error
}

func (s *peerInterviewRepoImpl) GetFeedbacksBySessionID(ctx context.Context, sessionID string) ([]*model.PeerInterviewFeedback, error) {
	list := make([]*model.PeerInterviewFeedback, 0)
	err := s.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Order("created_at ASC").
		Order("id ASC").
		Find(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}
