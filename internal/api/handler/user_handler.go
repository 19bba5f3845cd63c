package handler

import (
	"InterVue/internal/pkg/response"
	"InterVue/internal/service"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userSvc  service.UserService
	mediaSvc service.MediaService
}

func NewUserHandler(userSvc service.UserService, mediaSvc service.MediaService) *UserHandler {
	return &UserHandler{
		userSvc:  userSvc,
		mediaSvc: mediaSvc,
	}
}

// GetProfile 用户信息连同余额、连续天数与徽章
func (s *UserHandler) GetProfile(c *gin.Context) {
	profile, err := s.userSvc.GetProfile(c.Request.Context(), currentUserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, profile)
}

func (s *UserHandler) UploadAvatar(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	url, err := s.mediaSvc.UploadAvatar(c.Request.Context(), currentUserID(c), file)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"url": url})
}

func (s *UserHandler) UploadResume(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	url, err := s.mediaSvc.UploadResume(c.Request.Context(), currentUserID(c), file)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"url": url})
}
