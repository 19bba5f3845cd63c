package service

import (
	"InterVue/internal/api/dto"
	"InterVue/internal/model"
	"InterVue/internal/pkg/consts"
	"InterVue/internal/repository"
	"context"
	"html"
	"strings"
	"time"

	"github.com/jinzhu/copier"
	"github.com/microcosm-cc/bluemonday"
)

type PeerInterviewService interface {
	CreateSession(ctx context.Context) *dto.PeerSessionDTO
	ListSessions(ctx context.Context, userID string) ([]*dto.PeerSessionDTO, error)
	AddQuestion(ctx context.Context, req *dto.PeerQuestionCreateDTO) (*dto.PeerQuestionDTO, error)
	ListQuestions(ctx context.Context, sessionID string) ([]*dto.PeerQuestionDTO, error)
	AddFeedback(ctx context.Context, req *dto.PeerFeedbackCreateDTO) (*dto.PeerFeedbackDTO, error)
	ListFeedbacks(ctx context.Context, sessionID string) ([]*dto.PeerFeedbackDTO, error)
}

type peerInterviewServiceImpl struct {
	peerRepo repository.PeerInterviewRepo
	policy   *bluemonday.Policy
}

func NewPeerInterviewService(peerRepo repository.PeerInterviewRepo) PeerInterviewService {
	return &peerInterviewServiceImpl{
		peerRepo: peerRepo,
		policy:   bluemonday.StrictPolicy(),
	}
}

// CreateSession 演示用会话，不落库
func (s *peerInterviewServiceImpl) CreateSession(context.Context) *dto.PeerSessionDTO {
	now := time.Now()
	return &dto.PeerSessionDTO{
		ID:           consts.DemoPeerSessionID,
		ParticipantA: "demo-user-a",
		Status:       model.PeerSessionStatusPending,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func (s *peerInterviewServiceImpl) ListSessions(ctx context.Context, userID string) ([]*dto.PeerSessionDTO, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, ErrMissingUserID
	}
	list, err := s.peerRepo.GetSessionsByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	res := make([]*dto.PeerSessionDTO, 0, len(list))
	for _, m := range list {
		d := &dto.PeerSessionDTO{}
		_ = copier.Copy(d, m)
		res = append(res, d)
	}
	return res, nil
}

func (s *peerInterviewServiceImpl) AddQuestion(ctx context.Context, req *dto.PeerQuestionCreateDTO) (*dto.PeerQuestionDTO, error) {
	if strings.TrimSpace(req.SessionID) == "" {
		return nil, ErrMissingSessionID
	}
	question := s.cleanText(req.Question)
	if question == "" {
		return nil, ErrParamInvalid
	}
	m := &model.PeerInterviewQuestion{
		SessionID: req.SessionID,
		Question:  question,
		AskedBy:   req.AskedBy,
	}
	if err := s.peerRepo.CreateQuestion(ctx, m); err != nil {
		return nil, err
	}
	d := &dto.PeerQuestionDTO{}
	_ = copier.Copy(d, m)
	return d, nil
}

func (s *peerInterviewServiceImpl) ListQuestions(ctx context.Context, sessionID string) ([]*dto.PeerQuestionDTO, error) {
	if strings.TrimSpace(sessionID) == "" {
		return nil, ErrMissingSessionID
	}
	list, err := s.peerRepo.GetQuestionsBySessionID(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	res := make([]*dto.PeerQuestionDTO, 0, len(list))
	for _, m := range list {
		d := &dto.PeerQuestionDTO{}
		_ = copier.Copy(d, m)
		res = append(res, d)
	}
	return res, nil
}

func (s *peerInterviewServiceImpl) AddFeedback(ctx context.Context, req *dto.PeerFeedbackCreateDTO) (*dto.PeerFeedbackDTO, error) {
	if strings.TrimSpace(req.SessionID) == "" {
		return nil, ErrMissingSessionID
	}
	m := &model.PeerInterviewFeedback{
		SessionID:  req.SessionID,
		ReviewerID: req.ReviewerID,
		RevieweeID: req.RevieweeID,
		Score:      req.Score,
		Comments:   s.cleanText(req.Comments),
	}
	if err := s.peerRepo.CreateFeedback(ctx, m); err != nil {
		return nil, err
	}
	d := &dto.PeerFeedbackDTO{}
	_ = copier.Copy(d, m)
	return d, nil
}

func (s *peerInterviewServiceImpl) ListFeedbacks(ctx context.Context, sessionID string) ([]*dto.PeerFeedbackDTO, error) {
	if strings.TrimSpace(sessionID) == "" {
		return nil, ErrMissingSessionID
	}
	list, err := s.peerRepo.GetFeedbacksBySessionID(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	res := make([]*dto.PeerFeedbackDTO, 0, len(list))
	for _, m := range list {
		d := &dto.PeerFeedbackDTO{}
		_ = copier.Copy(d, m)
		res = append(res, d)
	}
	return res, nil
}

// cleanText 去掉标签后还原实体，JSON 输出本身不会被当作 HTML 解析
func (s *peerInterviewServiceImpl) cleanText(raw string) string {
	return strings.TrimSpace(html.UnescapeString(s.policy.Sanitize(raw)))
}
