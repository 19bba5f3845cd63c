package handler

import (
	"InterVue/internal/pkg/response"
	"InterVue/internal/service"

	"github.com/gin-gonic/gin"
)

type NotificationHandler struct {
	notificationSvc service.NotificationService
}

func NewNotificationHandler(s service.NotificationService) *NotificationHandler {
	return &NotificationHandler{
		notificationSvc: s,
	}
}

// GetNotificationList 获取通知列表
func (h *NotificationHandler) GetNotificationList(c *gin.Context) {
	page := queryInt(c, "page", 1)
	pageSize := queryInt(c, "page_size", 10)

	list, err := h.notificationSvc.GetNotificationList(c.Request.Context(), currentUserID(c), page, pageSize)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, list)
}

// GetUnreadCount 获取未读数
func (h *NotificationHandler) GetUnreadCount(c *gin.Context) {
	unread, err := h.notificationSvc.GetUnreadCount(c.Request.Context(), currentUserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, unread)
}

// MarkRead 标记单条已读
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	var req struct {
		ID string `json:"id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	if err := h.notificationSvc.MarkRead(c.Request.Context(), currentUserID(c), req.ID); err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessWith(c, nil)
}

// MarkAllRead 一键已读
func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	if err := h.notificationSvc.MarkAllRead(c.Request.Context(), currentUserID(c)); err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessWith(c, nil)
}
