// Package config 提供统一的配置管理
//
// 主 Config 结构体嵌入所有子配置，每个子配置在独立文件中定义：
//   - shm.go: 共享内存 provider 参数（disable_cma 等）
//   - log.go: 日志参数
//
// 配置来源按优先级从低到高：
//
//	默认值 → JSON 文件 → 环境变量（FI_SHM_*）
//
// 使用示例：
//
//	cfg := config.NewConfig()
//	config.ApplyEnv(cfg)
//	if err := cfg.Validate(); err != nil {
//	    return err
//	}
package config

import (
	"fmt"
)

// Config 是 go-shm 的完整配置结构
type Config struct {
	// Shm 共享内存 provider 配置
	Shm ShmConfig `json:"shm"`

	// Log 日志配置
	Log LogConfig `json:"log"`
}

// NewConfig 创建默认配置
func NewConfig() *Config {
	return &Config{
		Shm: DefaultShmConfig(),
		Log: DefaultLogConfig(),
	}
}

// Validate 验证配置的有效性
func (c *Config) Validate() error {
	if err := c.Shm.Validate(); err != nil {
		return fmt.Errorf("shm: %w", err)
	}
	if err := c.Log.Validate(); err != nil {
		return fmt.Errorf("log: %w", err)
	}
	return nil
}
