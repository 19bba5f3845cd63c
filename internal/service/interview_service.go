package service

import (
	"InterVue/internal/api/dto"
	"InterVue/internal/model"
	"InterVue/internal/pkg/consts"
	"InterVue/internal/pkg/llm"
	"InterVue/internal/pkg/util"
	"InterVue/internal/repository"
	"context"
	log "log/slog"
	"strings"

	"github.com/jinzhu/copier"
)

const (
	maxQuestionAmount  = 20
	defaultLatestLimit = 20
	maxLatestLimit     = 100
)

type InterviewService interface {
	Generate(ctx context.Context, req *dto.GenerateInterviewDTO) (*dto.InterviewDTO, error)
	GetInterview(ctx context.Context, id string) (*dto.InterviewDTO, error)
	ListByUser(ctx context.Context, userID string) ([]*dto.InterviewDTO, error)
	ListLatest(ctx context.Context, userID string, limit int) ([]*dto.InterviewDTO, error)
}

type interviewServiceImpl struct {
	interviewRepo repository.InterviewRepo
	oracle        llm.Oracle
}

func NewInterviewService(interviewRepo repository.InterviewRepo, oracle llm.Oracle) InterviewService {
	return &interviewServiceImpl{interviewRepo: interviewRepo, oracle: oracle}
}

// Generate 模型不可用时使用固定问题，面试总能创建成功
func (s *interviewServiceImpl) Generate(ctx context.Context, req *dto.GenerateInterviewDTO) (*dto.InterviewDTO, error) {
	role := strings.TrimSpace(req.Role)
	level := strings.TrimSpace(req.Level)
	typ := strings.TrimSpace(req.Type)
	userID := strings.TrimSpace(req.UserID)
	techstack := util.SplitTechstack(req.Techstack)
	if role == "" || level == "" || typ == "" || userID == "" || len(techstack) == 0 || len(req.Amount) == 0 {
		return nil, ErrMissingFields
	}
	amount, ok := util.ParseFlexibleInt(req.Amount)
	if !ok || amount <= 0 || amount > maxQuestionAmount {
		return nil, ErrInvalidQuestionCount
	}

	questions := llm.GenerateQuestions(ctx, s.oracle, llm.InterviewRequest{
		Role:      role,
		Level:     level,
		Type:      typ,
		Techstack: techstack,
		Amount:    amount,
	})

	interview := &model.Interview{
		UserID:     userID,
		Role:       role,
		Level:      level,
		Type:       typ,
		Techstack:  techstack,
		Questions:  questions,
		Finalized:  true,
		CoverImage: util.PickOne(consts.CoverImages),
	}
	if err := s.interviewRepo.CreateInterview(ctx, interview); err != nil {
		return nil, err
	}
	log.InfoContext(ctx, "Interview created", "interview_id", interview.ID, "questions", len(questions))
	return toInterviewDTO(interview), nil
}

func (s *interviewServiceImpl) GetInterview(ctx context.Context, id string) (*dto.InterviewDTO, error) {
	interview, err := s.interviewRepo.GetInterviewByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if interview == nil {
		return nil, ErrInterviewNotFound
	}
	return toInterviewDTO(interview), nil
}

func (s *interviewServiceImpl) ListByUser(ctx context.Context, userID string) ([]*dto.InterviewDTO, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, ErrMissingUserID
	}
	list, err := s.interviewRepo.GetInterviewsByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return toInterviewDTOs(list), nil
}

// ListLatest 其他用户已完成的面试
func (s *interviewServiceImpl) ListLatest(ctx context.Context, userID string, limit int) ([]*dto.InterviewDTO, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, ErrMissingUserID
	}
	if limit <= 0 {
		limit = defaultLatestLimit
	}
	limit = min(limit, maxLatestLimit)
	list, err := s.interviewRepo.GetLatestInterviews(ctx, userID, limit)
	if err != nil {
		return nil, err
	}
	return toInterviewDTOs(list), nil
}

func toInterviewDTO(m *model.Interview) *dto.InterviewDTO {
	d := &dto.InterviewDTO{}
	_ = copier.Copy(d, m)
	if d.Techstack == nil {
		d.Techstack = []string{}
	}
	if d.Questions == nil {
		d.Questions = []string{}
	}
	return d
}

func toInterviewDTOs(list []*model.Interview) []*dto.InterviewDTO {
	res := make([]*dto.InterviewDTO, 0, len(list))
	for _, m := range list {
		res = append(res, toInterviewDTO(m))
	}
	return res
}
