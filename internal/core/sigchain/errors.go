package sigchain

import "errors"

var (
	// ErrTableAlloc 信号表分配失败
	ErrTableAlloc = errors.New("sigchain: signal table allocation failed")

	// ErrSignalOutOfRange 信号号超出信号表范围
	ErrSignalOutOfRange = errors.New("sigchain: signal out of table range")

	// ErrUnknownSignal 无法识别的信号名
	ErrUnknownSignal = errors.New("sigchain: unknown signal")

	// ErrSlotTaken 信号槽已写入
	ErrSlotTaken = errors.New("sigchain: slot already registered")

	// ErrTableReleased 信号表已释放
	ErrTableReleased = errors.New("sigchain: table released")

	// ErrAlreadyStarted Guard 已启动
	ErrAlreadyStarted = errors.New("sigchain: guard already started")

	// ErrRaiseUnsupported 当前平台不支持重新投递
	ErrRaiseUnsupported = errors.New("sigchain: raise not supported on this platform")
)
