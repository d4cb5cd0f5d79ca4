package sigchain

import (
	"os"
)

// Kind 原处理器类型
type Kind int

const (
	// KindDefault 默认处置
	KindDefault Kind = iota
	// KindIgnore 忽略
	KindIgnore
	// KindCustom 自定义回调
	KindCustom
)

// String 返回类型名
func (k Kind) String() string {
	switch k {
	case KindDefault:
		return "default"
	case KindIgnore:
		return "ignore"
	case KindCustom:
		return "custom"
	default:
		return "unknown"
	}
}

// ChainedHandler 宿主提供的自定义信号回调
type ChainedHandler func(os.Signal)

// Previous 信号的原处理器
//
// 只有 KindCustom 携带 Handler。
type Previous struct {
	Kind    Kind
	Handler func(os.Signal)
}

// DefaultAction 默认处置
func DefaultAction() Previous {
	return Previous{Kind: KindDefault}
}

// IgnoreAction 忽略
func IgnoreAction() Previous {
	return Previous{Kind: KindIgnore}
}

// CustomAction 自定义回调，fn 为 nil 时退化为默认处置
func CustomAction(fn func(os.Signal)) Previous {
	if fn == nil {
		return DefaultAction()
	}
	return Previous{Kind: KindCustom, Handler: fn}
}
