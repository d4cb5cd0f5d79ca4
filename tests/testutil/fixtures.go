// Package testutil 提供测试辅助工具
package testutil

import (
	"io"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/dep2p/go-shm/config"
	"github.com/dep2p/go-shm/pkg/types"
)

// 测试数据固件
//
// 提供测试中常用的常量值，确保测试一致性。

const (
	// DefaultSignalBase 模拟信号表大小（glibc 的 SIGRTMIN）
	DefaultSignalBase = 34

	// ScopeAllowed ptrace_scope 允许 CMA
	ScopeAllowed = "0\n"

	// ScopeRestricted ptrace_scope 限制 CMA
	ScopeRestricted = "1\n"
)

// APIVersion 测试使用的接口版本
var APIVersion = types.MakeVersion(1, 21)

// Config 返回共享内存目录位于临时目录的配置
func Config(t *testing.T) *config.Config {
	t.Helper()
	cfg := config.NewConfig()
	cfg.Shm.ShmDir = t.TempDir()
	return cfg
}

// ScopeOpener 返回固定 ptrace_scope 内容的打开函数
//
// opens 非 nil 时记录打开次数。
func ScopeOpener(scope string, opens *atomic.Int32) func(string) (io.ReadCloser, error) {
	return func(string) (io.ReadCloser, error) {
		if opens != nil {
			opens.Add(1)
		}
		return io.NopCloser(strings.NewReader(scope)), nil
	}
}
