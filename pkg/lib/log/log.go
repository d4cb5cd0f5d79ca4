// Package log 提供 go-shm 统一日志接口
//
// 基于 Go 标准库 log/slog 封装，每个组件通过 Logger(component) 获取
// 懒加载 logger，运行时切换输出目标或级别后立即生效。
package log

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync/atomic"
)

// 日志级别常量（从 slog 导出，方便使用）
const (
	LevelDebug = slog.LevelDebug
	LevelInfo  = slog.LevelInfo
	LevelWarn  = slog.LevelWarn
	LevelError = slog.LevelError
)

// level 本包日志级别，只作用于 go-shm 自身的组件 logger
var level = new(slog.LevelVar)

// defaultLogger 本包私有 logger，为 nil 时跟随宿主的 slog.Default()
var defaultLogger atomic.Pointer[slog.Logger]

// SetDefault 设置本包使用的 logger
//
// 不修改宿主的 slog.Default()。传入 nil 恢复跟随 slog.Default()。
func SetDefault(l *slog.Logger) {
	defaultLogger.Store(l)
}

// Default 返回本包当前使用的 logger
func Default() *slog.Logger {
	if l := defaultLogger.Load(); l != nil {
		return l
	}
	return slog.Default()
}

// New 创建文本格式的 logger
func New(w io.Writer, opts *slog.HandlerOptions) *slog.Logger {
	if opts == nil {
		opts = &slog.HandlerOptions{}
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// SetOutput 设置日志输出目标，级别沿用 SetLevel 的设置
func SetOutput(w io.Writer) {
	SetDefault(New(w, &slog.HandlerOptions{Level: level}))
}

// SetOutputWithLevel 同时设置日志输出目标和级别
func SetOutputWithLevel(w io.Writer, lvl slog.Level) {
	level.Set(lvl)
	SetOutput(w)
}

// SetLevel 设置本包日志级别
func SetLevel(lvl slog.Level) {
	level.Set(lvl)
}

// GetLevel 返回本包日志级别
func GetLevel() slog.Level {
	return level.Level()
}

// ParseLevel 解析日志级别名称
//
// 支持 debug / info / warn(warning) / error，大小写不敏感。
func ParseLevel(name string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", name)
	}
}

// ============================================================================
//                              LazyLogger
// ============================================================================

// LazyLogger 懒加载 logger
//
// 每次日志调用时都从 Default() 获取最新的 handler，并先按本包级别过滤。
//
// 使用方式：
//
//	var logger = log.Logger("core/negotiate")
//	logger.Debug("discover", "candidates", n)
type LazyLogger struct {
	component string
}

// Logger 返回带组件名的 LazyLogger
func Logger(component string) *LazyLogger {
	return &LazyLogger{component: component}
}

func (l *LazyLogger) base() *slog.Logger {
	return Default().With("component", l.component)
}

func (l *LazyLogger) log(ctx context.Context, lvl slog.Level, msg string, args ...any) {
	if lvl < level.Level() {
		return
	}
	l.base().Log(ctx, lvl, msg, args...)
}

// Debug 输出 Debug 级别日志
func (l *LazyLogger) Debug(msg string, args ...any) {
	l.log(context.Background(), slog.LevelDebug, msg, args...)
}

// Info 输出 Info 级别日志
func (l *LazyLogger) Info(msg string, args ...any) {
	l.log(context.Background(), slog.LevelInfo, msg, args...)
}

// Warn 输出 Warn 级别日志
func (l *LazyLogger) Warn(msg string, args ...any) {
	l.log(context.Background(), slog.LevelWarn, msg, args...)
}

// Error 输出 Error 级别日志
func (l *LazyLogger) Error(msg string, args ...any) {
	l.log(context.Background(), slog.LevelError, msg, args...)
}

// InfoContext 带 context 的 Info 日志
func (l *LazyLogger) InfoContext(ctx context.Context, msg string, args ...any) {
	l.log(ctx, slog.LevelInfo, msg, args...)
}

// With 添加额外的属性
func (l *LazyLogger) With(args ...any) *slog.Logger {
	return l.base().With(args...)
}
