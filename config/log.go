package config

import (
	"github.com/dep2p/go-shm/pkg/lib/log"
)

// LogConfig 日志配置
type LogConfig struct {
	// Level 日志级别: debug / info / warn / error
	// 环境变量: FI_SHM_LOG_LEVEL
	Level string `json:"level"`

	// FxEvents 输出依赖注入容器事件
	// 环境变量: FI_SHM_LOG_FX_EVENTS
	FxEvents bool `json:"fx_events"`
}

// DefaultLogConfig 默认日志配置
func DefaultLogConfig() LogConfig {
	return LogConfig{
		Level: "info",
	}
}

// Validate 验证日志配置
func (c LogConfig) Validate() error {
	_, err := log.ParseLevel(c.Level)
	return err
}
