package shmfs

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dep2p/go-shm/internal/core/metrics"
)

func TestRegistry_CreateMapsRegion(t *testing.T) {
	dir := t.TempDir()
	r := New(dir, 4, nil)

	region, err := r.Create("fi_shm://4242", 4096)
	require.NoError(t, err)
	defer region.Close()

	assert.Equal(t, filepath.Join(dir, "4242"), region.Path())
	assert.Equal(t, "fi_shm://4242", region.Addr())
	assert.True(t, region.Owned())
	assert.Equal(t, 4096, region.Size())
	assert.Equal(t, 1, r.Len())

	info, err := os.Stat(region.Path())
	require.NoError(t, err)
	assert.Equal(t, int64(4096), info.Size())

	// 写入映射后从另一映射读出
	copy(region.Bytes(), "hello")
	peer, err := r.Open("fi_shm://4242", 4096)
	require.NoError(t, err)
	defer peer.Close()
	assert.False(t, peer.Owned())
	assert.Equal(t, "hello", string(peer.Bytes()[:5]))

	t.Log("✅ 区域创建、映射并可被对端读取")
}

func TestRegistry_CreateExclusive(t *testing.T) {
	r := New(t.TempDir(), 4, nil)

	region, err := r.Create("fi_ns://svc", 64)
	require.NoError(t, err)
	defer region.Close()

	_, err = r.Create("fi_ns://svc", 64)
	assert.ErrorIs(t, err, fs.ErrExist)
	assert.Equal(t, 1, r.Len(), "失败的创建不占用槽位")
}

func TestRegistry_Full(t *testing.T) {
	r := New(t.TempDir(), 2, nil)

	for _, addr := range []string{"fi_shm://a", "fi_shm://b"} {
		region, err := r.Create(addr, 64)
		require.NoError(t, err)
		defer region.Close()
	}

	_, err := r.Create("fi_shm://c", 64)
	assert.ErrorIs(t, err, ErrRegistryFull)
}

func TestRegistry_UnlinkFreesSlot(t *testing.T) {
	r := New(t.TempDir(), 1, nil)

	region, err := r.Create("fi_shm://a", 64)
	require.NoError(t, err)
	defer region.Close()

	require.NoError(t, region.Unlink())
	assert.NoFileExists(t, region.Path())
	assert.Zero(t, r.Len())

	other, err := r.Create("fi_shm://b", 64)
	require.NoError(t, err)
	defer other.Close()
}

func TestRegistry_CleanupRemovesFiles(t *testing.T) {
	m := metrics.New(prometheus.NewRegistry())
	r := New(t.TempDir(), 4, m)

	var paths []string
	for _, addr := range []string{"fi_shm://a", "fi_shm://b", "fi_ns://c"} {
		region, err := r.Create(addr, 128)
		require.NoError(t, err)
		defer region.Close()
		paths = append(paths, region.Path())
	}
	assert.Equal(t, 3.0, testutil.ToFloat64(m.RegionsTracked))

	// 已被外部删除的文件不算失败
	require.NoError(t, os.Remove(paths[0]))

	require.NoError(t, r.Cleanup())
	for _, p := range paths {
		assert.NoFileExists(t, p)
	}
	assert.Zero(t, r.Len())
	assert.Zero(t, testutil.ToFloat64(m.RegionsTracked))
	assert.NoError(t, r.Cleanup(), "重复清理")
}

func TestRegistry_CleanupSignalSafe(t *testing.T) {
	r := New(t.TempDir(), 4, nil)

	a, err := r.Create("fi_shm://a", 64)
	require.NoError(t, err)
	defer a.Close()
	b, err := r.Create("fi_ns://b", 64)
	require.NoError(t, err)
	defer b.Close()

	r.CleanupSignalSafe()

	assert.NoFileExists(t, a.Path())
	assert.NoFileExists(t, b.Path())
	assert.Len(t, a.Bytes(), 64, "映射仍然有效")

	// 信号路径之后的关闭清理不再重复删除
	assert.NoError(t, r.Cleanup())
	assert.NoError(t, a.Unlink())

	t.Log("✅ 信号路径删除所有区域文件")
}

func TestRegion_CloseTwice(t *testing.T) {
	r := New(t.TempDir(), 4, nil)

	region, err := r.Create("fi_shm://x", 64)
	require.NoError(t, err)

	require.NoError(t, region.Close())
	assert.ErrorIs(t, region.Close(), ErrRegionClosed)
	assert.Nil(t, region.Bytes())
	assert.FileExists(t, region.Path(), "关闭不删除文件")
	require.NoError(t, r.Cleanup())
}

func TestRegistry_OpenMissing(t *testing.T) {
	r := New(t.TempDir(), 4, nil)
	_, err := r.Open("fi_shm://missing", 64)
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestRegistry_SignalDuringCreate(t *testing.T) {
	r := New(t.TempDir(), 4, nil)

	var existed bool
	r.afterCreate = func() {
		existed = fileExists(filepath.Join(r.Dir(), "early"))
		r.CleanupSignalSafe()
	}

	region, err := r.Create("fi_shm://early", 64)
	require.NoError(t, err)
	defer region.Close()

	assert.True(t, existed, "槽位发布时文件已创建")
	assert.NoFileExists(t, region.Path(), "创建过程中收到信号也会删除文件")
	assert.NoError(t, region.Unlink())
	assert.Zero(t, r.Len())

	t.Log("✅ 创建后立即可被信号路径清理")
}

func TestRegistry_FailedCreateFreesSlot(t *testing.T) {
	r := New(t.TempDir(), 1, nil)

	_, err := r.Create("fi_shm://huge", 1<<62)
	require.Error(t, err)
	assert.NoFileExists(t, filepath.Join(r.Dir(), "huge"))
	assert.Zero(t, r.Len())

	region, err := r.Create("fi_shm://small", 64)
	require.NoError(t, err)
	defer region.Close()

	r.CleanupSignalSafe()
	assert.NoFileExists(t, region.Path())
}

func TestRegistry_StaleUnlinkAfterReuse(t *testing.T) {
	r := New(t.TempDir(), 1, nil)

	old, err := r.Create("fi_shm://same", 64)
	require.NoError(t, err)
	require.NoError(t, old.Close())

	require.NoError(t, r.Cleanup())

	fresh, err := r.Create("fi_shm://same", 64)
	require.NoError(t, err)
	defer fresh.Close()
	require.Equal(t, old.Path(), fresh.Path())

	assert.ErrorIs(t, old.Unlink(), ErrNotOwned)
	assert.FileExists(t, fresh.Path(), "旧句柄不能删除新区域")
	assert.Equal(t, 1, r.Len())

	require.NoError(t, fresh.Unlink())
	assert.NoFileExists(t, fresh.Path())
	assert.Zero(t, r.Len())

	t.Log("✅ 槽位复用后旧句柄失效")
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
