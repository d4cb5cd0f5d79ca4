// Package shmfs 管理本进程拥有的共享内存区域
//
// 区域以 <shm_dir>/<名称> 的文件形式存在，名称取自地址去掉 scheme 前缀后的部分。
// 登记表在创建时把路径预编码为以 NUL 结尾的字节串并放入固定容量的槽位，
// 因此信号路径上的清理无需分配内存，也无需加锁：
//
//	Cleanup()            关闭路径，逐个 unlink 并聚合错误
//	CleanupSignalSafe()  信号路径，原子取出槽位后直接 unlinkat，忽略错误
package shmfs

import (
	"github.com/dep2p/go-shm/pkg/lib/log"
)

var logger = log.Logger("core/shmfs")
