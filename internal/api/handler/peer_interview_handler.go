package handler

import (
	"InterVue/internal/api/dto"
	"InterVue/internal/pkg/response"
	"InterVue/internal/service"
	"net/http"

	"github.com/gin-gonic/gin"
)

// PeerInterviewHandler 所有响应都带 success 字段
type PeerInterviewHandler struct {
	peerSvc service.PeerInterviewService
}

func NewPeerInterviewHandler(peerSvc service.PeerInterviewService) *PeerInterviewHandler {
	return &PeerInterviewHandler{peerSvc: peerSvc}
}

// CreateSession 演示会话，参与者信息为占位数据
func (h *PeerInterviewHandler) CreateSession(c *gin.Context) {
	session := h.peerSvc.CreateSession(c.Request.Context())
	response.SuccessWith(c, gin.H{"session": gin.H{
		"id":           session.ID,
		"participantA": session.ParticipantA,
		"participantB": session.ParticipantB,
		"status":       session.Status,
		"createdAt":    session.CreatedAt,
		"updatedAt":    session.UpdatedAt,
		"feedbacks":    []any{},
		"questions":    []any{},
		"userA":        gin.H{"id": session.ParticipantA, "name": "Demo User A"},
		"userB":        nil,
	}})
}

func (h *PeerInterviewHandler) ListSessions(c *gin.Context) {
	userID := c.Query("userId")
	if userID == "" {
		response.FailWith(c, http.StatusBadRequest, "Missing userId")
		return
	}
	list, err := h.peerSvc.ListSessions(c.Request.Context(), userID)
	if err != nil {
		response.ErrorWith(c, err)
		return
	}
	response.SuccessWith(c, gin.H{"sessions": list})
}

func (h *PeerInterviewHandler) AddQuestion(c *gin.Context) {
	var req dto.PeerQuestionCreateDTO
	if err := bindJSON(c, &req); err != nil {
		response.ErrorWith(c, err)
		return
	}
	question, err := h.peerSvc.AddQuestion(c.Request.Context(), &req)
	if err != nil {
		response.ErrorWith(c, err)
		return
	}
	response.SuccessWith(c, gin.H{"question": question})
}

func (h *PeerInterviewHandler) ListQuestions(c *gin.Context) {
	list, err := h.peerSvc.ListQuestions(c.Request.Context(), c.Query("sessionId"))
	if err != nil {
		response.ErrorWith(c, err)
		return
	}
	response.SuccessWith(c, gin.H{"questions": list})
}

func (h *PeerInterviewHandler) AddFeedback(c *gin.Context) {
	var req dto.PeerFeedbackCreateDTO
	if err := bindJSON(c, &req); err != nil {
		response.ErrorWith(c, err)
		return
	}
	feedback, err := h.peerSvc.AddFeedback(c.Request.Context(), &req)
	if err != nil {
		response.ErrorWith(c, err)
		return
	}
	response.SuccessWith(c, gin.H{"feedback": feedback})
}

func (h *PeerInterviewHandler) ListFeedbacks(c *gin.Context) {
	list, err := h.peerSvc.ListFeedbacks(c.Request.Context(), c.Query("sessionId"))
	if err != nil {
		response.ErrorWith(c, err)
		return
	}
	response.SuccessWith(c, gin.H{"feedbacks": list})
}
