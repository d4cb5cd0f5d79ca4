package address

import "strings"

// 地址前缀
const (
	// PrefixLocal 本地（进程身份）地址前缀
	PrefixLocal = "fi_shm://"

	// PrefixNamed 具名（node/service）地址前缀
	PrefixNamed = "fi_ns://"

	schemeSep = "://"
)

// MaxNameLen 平台文件名长度上限（NAME_MAX）
const MaxNameLen = 255

// Family 地址族
type Family int

const (
	// FamilyUnknown 无法识别的前缀
	FamilyUnknown Family = iota
	// FamilyLocal 本地进程身份地址
	FamilyLocal
	// FamilyNamed 具名地址
	FamilyNamed
)

// String 返回地址族名称
func (f Family) String() string {
	switch f {
	case FamilyLocal:
		return "local"
	case FamilyNamed:
		return "named"
	default:
		return "unknown"
	}
}

// FamilyOf 根据前缀判断地址族
func FamilyOf(addr string) Family {
	switch {
	case strings.HasPrefix(addr, PrefixNamed):
		return FamilyNamed
	case strings.HasPrefix(addr, PrefixLocal):
		return FamilyLocal
	default:
		return FamilyUnknown
	}
}

// IsNamed 是否为具名地址
func IsNamed(addr string) bool {
	return FamilyOf(addr) == FamilyNamed
}

// NoPrefix 去掉 scheme 前缀
//
// 没有 "://" 时原样返回。
func NoPrefix(addr string) string {
	if i := strings.Index(addr, schemeSep); i >= 0 {
		return addr[i+len(schemeSep):]
	}
	return addr
}
