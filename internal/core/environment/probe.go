package environment

import (
	"fmt"
	"io"
	"os"
)

// Opener 打开策略文件
type Opener func(path string) (io.ReadCloser, error)

// OSOpener 使用 os.Open 打开文件
func OSOpener(path string) (io.ReadCloser, error) {
	return os.Open(path)
}

// Prober 读取内核 ptrace 策略
type Prober struct {
	path string
	open Opener
}

// NewProber 创建策略探测器
//
// open 为 nil 时使用 OSOpener。
func NewProber(path string, open Opener) *Prober {
	if open == nil {
		open = OSOpener
	}
	return &Prober{path: path, open: open}
}

// Path 策略文件路径
func (p *Prober) Path() string {
	return p.path
}

// Read 读取一次策略文件，返回是否应禁用 CMA
//
// 0 表示允许直接拷贝，非 0 表示受限。任何失败都返回 true。
func (p *Prober) Read() bool {
	f, err := p.open(p.path)
	if err != nil {
		logger.Warn("无法打开 ptrace 策略文件，禁用 CMA", "path", p.path, "error", err)
		return true
	}

	scope, scanErr := parseScope(f)
	closeErr := f.Close()

	if scanErr != nil {
		logger.Warn("读取 ptrace_scope 失败，禁用 CMA", "path", p.path, "error", scanErr)
		return true
	}
	if closeErr != nil {
		logger.Warn("关闭 ptrace_scope 文件失败，禁用 CMA", "path", p.path, "error", closeErr)
		return true
	}

	logger.Debug("读取 ptrace_scope", "path", p.path, "scope", scope)
	return scope != 0
}

// parseScope 解析首个整数
func parseScope(r io.Reader) (int, error) {
	var scope int
	if _, err := fmt.Fscan(io.LimitReader(r, 64), &scope); err != nil {
		return 0, fmt.Errorf("parse scope: %w", err)
	}
	return scope, nil
}
