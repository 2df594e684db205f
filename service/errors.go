package service

import (
	"errors"
	"strings"
)

var (
	// ErrNotFound 记录不存在
	ErrNotFound = errors.New("record not found")
	// ErrInvalidQuery 查询参数无效
	ErrInvalidQuery = errors.New("invalid query")
	// ErrEmailDisabled 邮件服务未启用
	ErrEmailDisabled = errors.New("email service is disabled")
)

// ValidationError 字段校验失败，Messages 逐条列出原因
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Messages, ", ")
}

func (e *ValidationError) add(msg string) {
	e.Messages = append(e.Messages, msg)
}

func (e *ValidationError) orNil() error {
	if len(e.Messages) == 0 {
		return nil
	}
	return e
}
