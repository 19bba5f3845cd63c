package handler

import (
	"InterVue/internal/pkg/logger"
	"InterVue/internal/pkg/util"
	"InterVue/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

// bindJSON 解析请求体并校验 validate 标签
func bindJSON(c *gin.Context, obj any) error {
	if err := c.ShouldBindJSON(obj); err != nil {
		return service.ErrParamInvalid
	}
	if err := util.ValidateDTO(obj); err != nil {
		return service.InvalidParam(err.Error())
	}
	return nil
}

// currentUserID 由 AuthMiddleware 写入
func currentUserID(c *gin.Context) string {
	return c.GetString(logger.UserIDKey)
}

func queryInt(c *gin.Context, key string, def int) int {
	v, err := strconv.Atoi(c.Query(key))
	if err != nil {
		return def
	}
	return v
}
