// Package logger 构建应用使用的 slog 日志器
package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"expenses/config"
)

// New 根据配置创建日志器，输出到 w（为空时使用 stdout）
func New(cfg config.LogConfig, w io.Writer) *slog.Logger {
	if w == nil {
		w = os.Stdout
	}
	opts := &slog.HandlerOptions{Level: ParseLevel(cfg.Level)}

	var handler slog.Handler
	if strings.EqualFold(cfg.Format, "json") {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	return slog.New(handler)
}

// Init 创建日志器并设为默认
func Init(cfg config.LogConfig) *slog.Logger {
	l := New(cfg, nil)
	slog.SetDefault(l)
	return l
}

// ParseLevel 解析日志级别，未知值按 info 处理
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
