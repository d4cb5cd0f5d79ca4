package types

import "fmt"

// Version 接口版本号，高 16 位为主版本，低 16 位为次版本
type Version uint32

// MakeVersion 构造版本号
func MakeVersion(major, minor uint16) Version {
	return Version(uint32(major)<<16 | uint32(minor))
}

// Major 主版本
func (v Version) Major() uint16 {
	return uint16(v >> 16)
}

// Minor 次版本
func (v Version) Minor() uint16 {
	return uint16(v)
}

// AtLeast 检查版本是否不低于 major.minor
func (v Version) AtLeast(major, minor uint16) bool {
	return v >= MakeVersion(major, minor)
}

// String 返回 "major.minor" 形式
func (v Version) String() string {
	return fmt.Sprintf("%d.%d", v.Major(), v.Minor())
}
