package shmfs

import (
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"

	"go.uber.org/multierr"

	"github.com/dep2p/go-shm/internal/core/address"
	"github.com/dep2p/go-shm/internal/core/metrics"
)

// Registry 共享内存区域登记表
type Registry struct {
	dir     string
	metrics *metrics.Metrics

	// slots 预编码路径，nil 表示空闲；信号路径只做原子读写
	slots []atomic.Pointer[byte]

	mu    sync.Mutex
	paths []string
	gens  []uint64
	count int

	// afterCreate 区域文件创建且槽位发布后调用，仅用于测试
	afterCreate func()
}

// New 创建登记表
func New(dir string, capacity int, m *metrics.Metrics) *Registry {
	if capacity <= 0 {
		capacity = 1
	}
	return &Registry{
		dir:     dir,
		metrics: m,
		slots:   make([]atomic.Pointer[byte], capacity),
		paths:   make([]string, capacity),
		gens:    make([]uint64, capacity),
	}
}

// Dir 区域所在目录
func (r *Registry) Dir() string {
	return r.dir
}

// Cap 登记表容量
func (r *Registry) Cap() int {
	return len(r.slots)
}

// Len 当前登记的区域数
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.count
}

// PathOf 返回地址对应的区域文件路径
func (r *Registry) PathOf(addr string) (string, error) {
	name := address.NoPrefix(addr)
	if name == "" || name == "." || name == ".." || strings.ContainsAny(name, "/\x00") {
		return "", fmt.Errorf("%w: %q", ErrBadName, addr)
	}
	return filepath.Join(r.dir, name), nil
}

// Create 创建并映射本进程拥有的区域
//
// 区域文件以 O_EXCL 创建，已存在时返回的错误满足 errors.Is(err, fs.ErrExist)。
func (r *Registry) Create(addr string, size int) (*Region, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadSize, size)
	}
	path, err := r.PathOf(addr)
	if err != nil {
		return nil, err
	}
	encoded, err := encodePath(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadName, err)
	}

	slot, gen, err := r.reserve(path)
	if err != nil {
		return nil, err
	}

	// O_EXCL 打开成功后立即发布槽位，之后的信号都能删除该文件
	region, err := createRegion(path, size, func() {
		r.slots[slot].Store(encoded)
		if r.afterCreate != nil {
			r.afterCreate()
		}
	})
	if err != nil {
		r.slots[slot].Store(nil)
		r.release(slot, gen)
		return nil, err
	}
	region.addr = addr
	region.owner = r
	region.slot = slot
	region.gen = gen

	logger.Debug("区域已创建", "path", path, "size", size)
	return region, nil
}

// Open 映射他人拥有的已有区域，不登记
func (r *Registry) Open(addr string, size int) (*Region, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadSize, size)
	}
	path, err := r.PathOf(addr)
	if err != nil {
		return nil, err
	}
	region, err := openRegion(path, size)
	if err != nil {
		return nil, err
	}
	region.addr = addr
	region.slot = -1
	return region, nil
}

// Unlink 删除本进程拥有的区域文件并注销
//
// 映射保持有效直到 Region.Close。
func (r *Registry) Unlink(region *Region) error {
	if region == nil || region.owner != r || region.slot < 0 {
		return ErrNotOwned
	}

	r.mu.Lock()
	if r.paths[region.slot] != region.path || r.gens[region.slot] != region.gen {
		// 槽位已被清理或重新占用
		r.mu.Unlock()
		return ErrNotOwned
	}
	r.mu.Unlock()

	if p := r.slots[region.slot].Swap(nil); p == nil {
		// 已被信号路径清理
		r.release(region.slot, region.gen)
		return nil
	}
	err := unlinkPath(region.path)
	r.release(region.slot, region.gen)
	return err
}

// Cleanup 删除所有登记的区域文件
//
// 不存在的文件视为已删除，其余失败聚合后返回。
func (r *Registry) Cleanup() error {
	var errs error
	for i := range r.slots {
		if r.slots[i].Swap(nil) == nil {
			continue
		}
		r.mu.Lock()
		path, gen := r.paths[i], r.gens[i]
		r.mu.Unlock()

		errs = multierr.Append(errs, unlinkPath(path))
		r.release(i, gen)
	}
	logger.Info("共享内存区域已清理", "dir", r.dir)
	return errs
}

// CleanupSignalSafe 信号路径上删除所有登记的区域文件
//
// 不分配内存、不加锁，错误被忽略。
func (r *Registry) CleanupSignalSafe() {
	for i := range r.slots {
		if p := r.slots[i].Swap(nil); p != nil {
			unlinkSignalSafe(p)
		}
	}
}

// reserve 占用一个空闲槽位，返回槽位与本次占用的代数
func (r *Registry) reserve(path string) (int, uint64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, p := range r.paths {
		if p == "" {
			r.paths[i] = path
			r.gens[i]++
			r.count++
			r.metrics.SetRegions(r.count)
			return i, r.gens[i], nil
		}
	}
	return -1, 0, fmt.Errorf("%w: capacity %d", ErrRegistryFull, len(r.slots))
}

// release 释放第 gen 代占用的槽位
func (r *Registry) release(slot int, gen uint64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.paths[slot] == "" || r.gens[slot] != gen {
		return
	}
	r.paths[slot] = ""
	r.count--
	r.metrics.SetRegions(r.count)
}
