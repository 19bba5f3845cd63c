package response

import (
	"InterVue/internal/service"
	"errors"
	log "log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
)

// Success 直接输出数据本身
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// SuccessWith 输出 {success: true, ...} 格式
func SuccessWith(c *gin.Context, fields gin.H) {
	body := gin.H{"success": true}
	for k, v := range fields {
		body[k] = v
	}
	c.JSON(http.StatusOK, body)
}

// Fail 失败返回 {error}
func Fail(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, gin.H{"error": message})
}

// FailWith 失败返回 {success: false, error}
func FailWith(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, gin.H{"success": false, "error": message})
}

// Error 处理错误
func Error(c *gin.Context, err error) {
	status, message := resolve(c, err)
	Fail(c, status, message)
}

// ErrorWith 处理错误，{success: false} 格式
func ErrorWith(c *gin.Context, err error) {
	status, message := resolve(c, err)
	FailWith(c, status, message)
}

func resolve(c *gin.Context, err error) (int, string) {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		return http.StatusBadRequest, "invalid parameters"
	}

	var unmarshalTypeError *json.UnmarshalTypeError
	var syntaxError *json.SyntaxError
	if errors.As(err, &unmarshalTypeError) || errors.As(err, &syntaxError) {
		return http.StatusBadRequest, "invalid JSON body"
	}

	status, sentinel := service.StatusOf(err)
	if sentinel == nil {
		log.ErrorContext(c.Request.Context(), "Error", "err", err)
		return status, service.UnExpectedError.Error()
	}
	if errors.Is(sentinel, service.ErrParamInvalid) {
		return status, err.Error()
	}
	return status, sentinel.Error()
}
