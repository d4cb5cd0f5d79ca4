package shmfs

import (
	"sync"
)

// Region 一段已映射的共享内存区域
type Region struct {
	addr  string
	path  string
	owner *Registry
	slot  int
	gen   uint64

	mu   sync.Mutex
	fd   int
	data []byte
}

// Addr 区域地址
func (r *Region) Addr() string {
	return r.addr
}

// Path 区域文件路径
func (r *Region) Path() string {
	return r.path
}

// Owned 是否由本进程创建并登记
func (r *Region) Owned() bool {
	return r.owner != nil
}

// Size 映射大小
func (r *Region) Size() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.data)
}

// Bytes 返回映射内存，关闭后为 nil
func (r *Region) Bytes() []byte {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.data
}

// Close 解除映射并关闭文件，不删除区域文件
func (r *Region) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.data == nil {
		return ErrRegionClosed
	}
	err := unmap(r.fd, r.data)
	r.data = nil
	r.fd = -1
	return err
}

// Unlink 通过所属登记表删除区域文件
func (r *Region) Unlink() error {
	if r.owner == nil {
		return ErrNotOwned
	}
	return r.owner.Unlink(r)
}
