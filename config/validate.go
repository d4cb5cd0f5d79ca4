package config

import (
	"errors"
	"fmt"
)

// ValidateAll 验证整个配置的有效性
//
// 这是 Config.Validate() 的别名，nil 配置视为无效。
func ValidateAll(c *Config) error {
	if c == nil {
		return errors.New("config is nil")
	}
	return c.Validate()
}

// ValidateAndFix 验证配置并尝试自动修复常见问题
//
// 可修复的问题：
//   - 空的策略文件路径 -> 使用默认值
//   - 空的共享内存目录 -> 使用默认值
//   - 非正的登记表容量 -> 使用默认值
//   - 空的日志级别 -> info
func ValidateAndFix(c *Config) (*Config, error) {
	if c == nil {
		return NewConfig(), nil
	}

	if c.Shm.PolicyFile == "" {
		c.Shm.PolicyFile = DefaultPolicyFile
	}
	if c.Shm.ShmDir == "" {
		c.Shm.ShmDir = DefaultShmDir
	}
	if c.Shm.MaxRegions <= 0 {
		c.Shm.MaxRegions = DefaultMaxRegions
	}
	if c.Log.Level == "" {
		c.Log.Level = DefaultLogConfig().Level
	}

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validation failed after fixes: %w", err)
	}
	return c, nil
}

// MustValidate 验证配置，如果失败则 panic
//
// 仅用于初始化阶段或测试代码。
func MustValidate(c *Config) {
	if err := c.Validate(); err != nil {
		panic(fmt.Sprintf("config validation failed: %v", err))
	}
}
