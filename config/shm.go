package config

import (
	"errors"
	"fmt"
	"strings"
)

// 默认值
const (
	// DefaultPolicyFile Yama ptrace 策略文件
	DefaultPolicyFile = "/proc/sys/kernel/yama/ptrace_scope"

	// DefaultShmDir 共享内存文件所在的 tmpfs 目录
	DefaultShmDir = "/dev/shm"

	// DefaultMaxRegions 共享内存区域登记表容量
	DefaultMaxRegions = 256
)

// ShmConfig 共享内存 provider 配置
type ShmConfig struct {
	// DisableCMA 禁用跨进程内存直接拷贝（Cross Memory Attach）
	// 默认值: false
	// 环境变量: FI_SHM_DISABLE_CMA
	DisableCMA bool `json:"disable_cma"`

	// PolicyFile 内核 ptrace 策略文件路径
	// 环境变量: FI_SHM_POLICY_FILE
	PolicyFile string `json:"policy_file"`

	// ShmDir 共享内存文件目录
	// 环境变量: FI_SHM_SHM_DIR
	ShmDir string `json:"shm_dir"`

	// Signals 异常退出时触发清理的信号
	// 默认值: SIGBUS, SIGSEGV, SIGTERM, SIGINT
	// 环境变量: FI_SHM_SIGNALS（逗号分隔）
	Signals []string `json:"signals"`

	// MaxRegions 登记表容量，超出后 Create 失败
	// 环境变量: FI_SHM_MAX_REGIONS
	MaxRegions int `json:"max_regions"`
}

// DefaultSignals 默认注册的信号
func DefaultSignals() []string {
	return []string{"SIGBUS", "SIGSEGV", "SIGTERM", "SIGINT"}
}

// DefaultShmConfig 返回默认的共享内存配置
func DefaultShmConfig() ShmConfig {
	return ShmConfig{
		DisableCMA: false,
		PolicyFile: DefaultPolicyFile,
		ShmDir:     DefaultShmDir,
		Signals:    DefaultSignals(),
		MaxRegions: DefaultMaxRegions,
	}
}

// Validate 验证共享内存配置
func (c ShmConfig) Validate() error {
	if c.PolicyFile == "" {
		return errors.New("policy_file must not be empty")
	}
	if c.ShmDir == "" {
		return errors.New("shm_dir must not be empty")
	}
	if c.MaxRegions <= 0 {
		return fmt.Errorf("max_regions must be positive, got %d", c.MaxRegions)
	}
	return ValidateSignals(c.Signals)
}

// ValidateSignals 检查信号名格式与重复
func ValidateSignals(signals []string) error {
	seen := make(map[string]struct{}, len(signals))
	for _, s := range signals {
		name := strings.ToUpper(strings.TrimSpace(s))
		if !strings.HasPrefix(name, "SIG") {
			return fmt.Errorf("invalid signal name %q", s)
		}
		if _, dup := seen[name]; dup {
			return fmt.Errorf("duplicate signal %q", s)
		}
		seen[name] = struct{}{}
	}
	return nil
}
