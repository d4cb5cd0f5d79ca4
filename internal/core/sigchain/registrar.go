package sigchain

import (
	"fmt"
	"os"
	"strings"
	"syscall"
)

// signum 返回信号号，非 syscall.Signal 返回 -1
func signum(sig os.Signal) int {
	s, ok := sig.(syscall.Signal)
	if !ok {
		return -1
	}
	return int(s)
}

// ParseSignals 把信号名列表转换为 os.Signal
//
// 名称大小写不敏感，需带 SIG 前缀。
func ParseSignals(names []string) ([]os.Signal, error) {
	sigs := make([]os.Signal, 0, len(names))
	for _, name := range names {
		sig := lookupSignal(strings.ToUpper(strings.TrimSpace(name)))
		if sig == 0 {
			return nil, fmt.Errorf("%w: %q", ErrUnknownSignal, name)
		}
		sigs = append(sigs, sig)
	}
	return sigs, nil
}
