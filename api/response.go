package api

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"expenses/service"

	"github.com/gin-gonic/gin"
)

// ErrorResponse 错误响应，errors 逐条列出原因
type ErrorResponse struct {
	Errors []string `json:"errors" example:"Category must exist"`
}

// Error 错误响应
func Error(c *gin.Context, code int, messages ...string) {
	c.JSON(code, ErrorResponse{Errors: messages})
}

// BadRequest 400 错误响应
func BadRequest(c *gin.Context, messages ...string) {
	Error(c, http.StatusBadRequest, messages...)
}

// NotFound 404 错误响应
func NotFound(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, message)
}

// Unprocessable 422 错误响应
func Unprocessable(c *gin.Context, messages []string) {
	Error(c, http.StatusUnprocessableEntity, messages...)
}

// InternalError 500 错误响应，记录原始错误，客户端只在非 release 模式下看到详情
func InternalError(c *gin.Context, err error, fallback string) {
	slog.ErrorContext(c.Request.Context(), fallback,
		"error", err,
		"method", c.Request.Method,
		"path", c.FullPath(),
		"request_id", c.GetString("request_id"),
	)
	Error(c, http.StatusInternalServerError, SafeErrorMessage(err, fallback))
}

// respondError 将 service 层错误映射为 HTTP 状态
func respondError(c *gin.Context, err error, notFound, fallback string) {
	var verr *service.ValidationError
	switch {
	case errors.As(err, &verr):
		Unprocessable(c, verr.Messages)
	case errors.Is(err, service.ErrNotFound):
		NotFound(c, notFound)
	case errors.Is(err, service.ErrInvalidQuery):
		BadRequest(c, err.Error())
	default:
		InternalError(c, err, fallback)
	}
}

// parseID 解析路径中的 id，无效时视为不存在
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}
