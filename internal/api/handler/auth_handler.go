package handler

import (
	"InterVue/internal/api/config"
	"InterVue/internal/api/dto"
	"InterVue/internal/api/middleware"
	"InterVue/internal/pkg/response"
	"InterVue/internal/service"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	userSvc service.UserService
	cookie  config.JWTConfig
}

func NewAuthHandler(userSvc service.UserService, cookie config.JWTConfig) *AuthHandler {
	return &AuthHandler{userSvc: userSvc, cookie: cookie}
}

func (h *AuthHandler) SignUp(c *gin.Context) {
	var req dto.SignUpDTO
	if err := bindJSON(c, &req); err != nil {
		response.ErrorWith(c, err)
		return
	}
	if err := h.userSvc.SignUp(c.Request.Context(), &req); err != nil {
		response.ErrorWith(c, err)
		return
	}
	response.SuccessWith(c, gin.H{"message": "Account created successfully. Please sign in."})
}

// SignIn 同时写入 httpOnly cookie 并在响应体返回 token
func (h *AuthHandler) SignIn(c *gin.Context) {
	var req dto.SignInDTO
	if err := bindJSON(c, &req); err != nil {
		response.ErrorWith(c, err)
		return
	}
	token, expiresAt, err := h.userSvc.SignIn(c.Request.Context(), &req)
	if err != nil {
		response.ErrorWith(c, err)
		return
	}
	h.setCookie(c, token, int(time.Until(expiresAt).Seconds()))
	response.SuccessWith(c, gin.H{"message": "Signed in successfully.", "token": token})
}

func (h *AuthHandler) SignOut(c *gin.Context) {
	token := middleware.BearerToken(c, h.cookie.CookieName)
	if err := h.userSvc.SignOut(c.Request.Context(), token); err != nil {
		response.ErrorWith(c, err)
		return
	}
	h.setCookie(c, "", -1)
	response.SuccessWith(c, gin.H{"message": "Signed out."})
}

// Me 未登录由中间件返回 401
func (h *AuthHandler) Me(c *gin.Context) {
	response.Success(c, gin.H{"userId": currentUserID(c)})
}

func (h *AuthHandler) setCookie(c *gin.Context, value string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cookie.CookieName, value, maxAge, "/", "", h.cookie.Secure, true)
}
