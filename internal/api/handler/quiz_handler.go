package handler

import (
	"InterVue/internal/api/dto"
	"InterVue/internal/pkg/response"
	"InterVue/internal/service"

	"github.com/gin-gonic/gin"
)

type QuizHandler struct {
	quizSvc service.QuizService
}

func NewQuizHandler(quizSvc service.QuizService) *QuizHandler {
	return &QuizHandler{quizSvc: quizSvc}
}

func (h *QuizHandler) Generate(c *gin.Context) {
	var req dto.GenerateQuizDTO
	if err := bindJSON(c, &req); err != nil {
		response.Error(c, err)
		return
	}
	quiz, err := h.quizSvc.Generate(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, quiz)
}

// Complete 只接受本服务生成过的 quizId
func (h *QuizHandler) Complete(c *gin.Context) {
	var req dto.CompleteQuizDTO
	if err := bindJSON(c, &req); err != nil {
		response.Error(c, err)
		return
	}
	res, err := h.quizSvc.Complete(c.Request.Context(), currentUserID(c), req.QuizID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, res)
}
