package handler

import (
	"InterVue/internal/api/dto"
	"InterVue/internal/pkg/response"
	"InterVue/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
)

type InterviewHandler struct {
	interviewSvc service.InterviewService
	feedbackSvc  service.FeedbackService
}

func NewInterviewHandler(interviewSvc service.InterviewService, feedbackSvc service.FeedbackService) *InterviewHandler {
	return &InterviewHandler{
		interviewSvc: interviewSvc,
		feedbackSvc:  feedbackSvc,
	}
}

func (h *InterviewHandler) GenerateHealth(c *gin.Context) {
	response.SuccessWith(c, gin.H{"data": "Interview generation API is working"})
}

// Generate techstack 与 amount 类型不固定，直接按原始字节解析
func (h *InterviewHandler) Generate(c *gin.Context) {
	raw, err := c.GetRawData()
	if err != nil {
		response.ErrorWith(c, service.ErrParamInvalid)
		return
	}
	var req dto.GenerateInterviewDTO
	if err = json.Unmarshal(raw, &req); err != nil {
		response.ErrorWith(c, err)
		return
	}
	interview, err := h.interviewSvc.Generate(c.Request.Context(), &req)
	if err != nil {
		response.ErrorWith(c, err)
		return
	}
	response.SuccessWith(c, gin.H{
		"interviewId": interview.ID,
		"message":     "Interview generated successfully",
		"status":      "completed",
	})
}

func (h *InterviewHandler) GetInterview(c *gin.Context) {
	interview, err := h.interviewSvc.GetInterview(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, interview)
}

func (h *InterviewHandler) ListByUser(c *gin.Context) {
	list, err := h.interviewSvc.ListByUser(c.Request.Context(), c.Query("userId"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, list)
}

func (h *InterviewHandler) ListLatest(c *gin.Context) {
	list, err := h.interviewSvc.ListLatest(c.Request.Context(), c.Query("userId"), queryInt(c, "limit", 0))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, list)
}

// CreateFeedback 评分完成后触发面试奖励
func (h *InterviewHandler) CreateFeedback(c *gin.Context) {
	var req dto.CreateFeedbackDTO
	if err := bindJSON(c, &req); err != nil {
		response.ErrorWith(c, err)
		return
	}
	feedbackID, err := h.feedbackSvc.CreateFeedback(c.Request.Context(), c.Param("id"), currentUserID(c), &req)
	if err != nil {
		response.ErrorWith(c, err)
		return
	}
	response.SuccessWith(c, gin.H{"feedbackId": feedbackID})
}

func (h *InterviewHandler) GetFeedback(c *gin.Context) {
	feedback, err := h.feedbackSvc.GetFeedback(c.Request.Context(), c.Param("id"), currentUserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, feedback)
}
