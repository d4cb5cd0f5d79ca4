package environment

import (
	"errors"
	"io"
	"os"
	"strings"
	"sync/atomic"
)

// countingOpener 记录打开次数的测试用 Opener
type countingOpener struct {
	content  string
	missing  bool
	closeErr error
	opens    atomic.Int32
}

func (c *countingOpener) open(string) (io.ReadCloser, error) {
	c.opens.Add(1)
	if c.missing {
		return nil, os.ErrNotExist
	}
	return &stubFile{Reader: strings.NewReader(c.content), closeErr: c.closeErr}, nil
}

// stubFile 可注入关闭错误的文件
type stubFile struct {
	*strings.Reader
	closeErr error
}

func (f *stubFile) Close() error {
	return f.closeErr
}

var errClose = errors.New("close failed")
