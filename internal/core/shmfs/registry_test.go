package shmfs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"

	"github.com/dep2p/go-shm/config"
	pkgif "github.com/dep2p/go-shm/pkg/interfaces"
)

func TestRegistry_PathOf(t *testing.T) {
	r := New("/dev/shm", 4, nil)

	path, err := r.PathOf("fi_shm://1234")
	require.NoError(t, err)
	assert.Equal(t, "/dev/shm/1234", path)

	path, err = r.PathOf("fi_ns://host:5000")
	require.NoError(t, err)
	assert.Equal(t, "/dev/shm/host:5000", path)

	for _, bad := range []string{"", "fi_shm://", "fi_shm://a/b", "fi_ns://..", "fi_shm://."} {
		_, err := r.PathOf(bad)
		assert.ErrorIs(t, err, ErrBadName, bad)
	}
}

func TestRegistry_CleanupEmpty(t *testing.T) {
	r := New(t.TempDir(), 4, nil)
	assert.NoError(t, r.Cleanup())
	r.CleanupSignalSafe()
	assert.Zero(t, r.Len())
}

func TestRegistry_BadSize(t *testing.T) {
	r := New(t.TempDir(), 4, nil)
	_, err := r.Create("fi_shm://x", 0)
	assert.ErrorIs(t, err, ErrBadSize)
	_, err = r.Open("fi_shm://x", -1)
	assert.ErrorIs(t, err, ErrBadSize)
}

func TestRegistry_UnlinkNotOwned(t *testing.T) {
	r := New(t.TempDir(), 4, nil)
	assert.ErrorIs(t, r.Unlink(nil), ErrNotOwned)
	assert.ErrorIs(t, r.Unlink(&Region{slot: -1}), ErrNotOwned)
	assert.ErrorIs(t, (&Region{}).Unlink(), ErrNotOwned)
}

func TestNew_MinimumCapacity(t *testing.T) {
	assert.Equal(t, 1, New("/tmp", 0, nil).Cap())
	assert.Equal(t, 8, New("/tmp", 8, nil).Cap())
}

func TestConfigFromUnified(t *testing.T) {
	assert.Equal(t, NewConfig(), ConfigFromUnified(nil))

	cfg := config.NewConfig()
	cfg.Shm.ShmDir = "/run/shm"
	cfg.Shm.MaxRegions = 3
	got := ConfigFromUnified(cfg)
	assert.Equal(t, "/run/shm", got.Dir)
	assert.Equal(t, 3, got.MaxRegions)
}

func TestModule_ProvidesRegistryAndCleaner(t *testing.T) {
	cfg := config.NewConfig()
	cfg.Shm.ShmDir = t.TempDir()

	var (
		r       *Registry
		cleaner pkgif.SharedCleaner
	)
	app := fxtest.New(t,
		fx.Supply(cfg),
		Module(),
		fx.Populate(&r, &cleaner),
	)
	defer app.RequireStart().RequireStop()

	require.NotNil(t, r)
	assert.Same(t, r, cleaner.(*Registry))
	assert.Equal(t, cfg.Shm.ShmDir, r.Dir())
	assert.Equal(t, cfg.Shm.MaxRegions, r.Cap())

	t.Log("✅ Module 以 SharedCleaner 提供登记表")
}
