package shm

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync/atomic"
	"syscall"
	"testing"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	promtestutil "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dep2p/go-shm/config"
	"github.com/dep2p/go-shm/internal/core/environment"
	"github.com/dep2p/go-shm/internal/core/fabricinfo"
	"github.com/dep2p/go-shm/pkg/lib/log"
	"github.com/dep2p/go-shm/pkg/types"
	"github.com/dep2p/go-shm/tests/mocks"
	"github.com/dep2p/go-shm/tests/testutil"
)

var v121 = testutil.APIVersion

// scopeOpener 返回给定 ptrace_scope 内容并记录打开次数
func scopeOpener(scope string, opens *atomic.Int32) environment.Opener {
	return testutil.ScopeOpener(scope, opens)
}

// loadTest 以测试协作者加载 provider
func loadTest(t *testing.T, reg *mocks.MockSignalRegistrar, opts ...Option) *Provider {
	t.Helper()
	base := []Option{
		WithoutEnv(),
		WithConfig(testutil.Config(t)),
		WithSignalRegistrar(reg),
		WithPolicyOpener(scopeOpener("0", nil)),
	}
	p, err := Load(append(base, opts...)...)
	require.NoError(t, err)
	require.NotNil(t, p)
	t.Cleanup(func() { _ = p.Teardown() })
	return p
}

func TestLoad_DiscoverTeardown(t *testing.T) {
	reg := mocks.NewMockSignalRegistrar(testutil.DefaultSignalBase)
	p := loadTest(t, reg)

	assert.Equal(t, 4, reg.Registered(), "默认登记四个信号")

	infos, err := p.Discover(v121, "", "5000", 0, nil)
	require.NoError(t, err)
	require.Len(t, infos, 1)

	info := infos[0]
	assert.Equal(t, "fi_ns://5000", info.DestAddr)
	assert.Equal(t, len("fi_ns://5000")+1, info.DestAddrLen)
	assert.True(t, strings.HasPrefix(info.SrcAddr, "fi_shm://"))
	assert.Equal(t, "shm", info.FabricAttr.ProvName)

	require.NoError(t, p.Teardown())
	assert.True(t, p.Closed())
	assert.Zero(t, reg.Registered(), "关闭后不再接收信号")

	_, err = p.Discover(v121, "", "", 0, nil)
	assert.ErrorIs(t, err, ErrProviderClosed)

	assert.NoError(t, p.Teardown(), "重复关闭")

	t.Log("✅ 加载、发现、关闭流程正确")
}

func TestTeardown_NilProvider(t *testing.T) {
	var p *Provider
	assert.NoError(t, p.Teardown())

	_, err := p.Discover(v121, "", "", 0, nil)
	assert.ErrorIs(t, err, ErrProviderClosed)
}

func TestLoad_TableAllocFailure(t *testing.T) {
	reg := mocks.NewMockSignalRegistrar(0)

	p, err := Load(
		WithoutEnv(),
		WithConfig(testutil.Config(t)),
		WithSignalRegistrar(reg),
		WithPolicyOpener(scopeOpener("0", nil)),
	)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "allocation failed")
	assert.Nil(t, p)
	assert.Zero(t, reg.Registered(), "失败时不安装任何处理器")

	// 失败后关闭是安全的
	assert.NoError(t, p.Teardown())
}

func TestLoad_InvalidConfig(t *testing.T) {
	cfg := testutil.Config(t)
	cfg.Shm.MaxRegions = 0

	p, err := Load(WithoutEnv(), WithConfig(cfg), WithSignalRegistrar(mocks.NewMockSignalRegistrar(testutil.DefaultSignalBase)))
	assert.Error(t, err)
	assert.Nil(t, p)
}

func TestLoad_OptionError(t *testing.T) {
	p, err := Load(WithConfig(nil))
	assert.Error(t, err)
	assert.Nil(t, p)

	p, err = Load(WithInfoBuilder(nil))
	assert.Error(t, err)
	assert.Nil(t, p)

	p, err = Load(WithConfigFile("/nonexistent/shm.json"))
	assert.Error(t, err)
	assert.Nil(t, p)
}

func TestLoad_BadSignalName(t *testing.T) {
	cfg := testutil.Config(t)
	cfg.Shm.Signals = []string{"SIGNOPE"}

	reg := mocks.NewMockSignalRegistrar(testutil.DefaultSignalBase)
	p, err := Load(WithoutEnv(), WithConfig(cfg), WithSignalRegistrar(reg))
	assert.Error(t, err)
	assert.Nil(t, p)
	assert.Zero(t, reg.Registered())
}

func TestDiscover_DisableCMAOption(t *testing.T) {
	var opens atomic.Int32
	p := loadTest(t, mocks.NewMockSignalRegistrar(testutil.DefaultSignalBase),
		WithDisableCMA(true),
		WithPolicyOpener(scopeOpener("0", &opens)),
	)

	infos, err := p.Discover(v121, "", "", 0, nil)
	require.NoError(t, err)
	assert.Equal(t, uint64(fabricinfo.InjectSize), infos[0].EPAttr.MaxMsgSize)
	assert.True(t, p.CMADisabled())
	assert.Zero(t, opens.Load(), "配置禁用时不读取策略文件")
}

func TestDiscover_PolicyReadOnce(t *testing.T) {
	var opens atomic.Int32
	p := loadTest(t, mocks.NewMockSignalRegistrar(testutil.DefaultSignalBase), WithPolicyOpener(scopeOpener("1", &opens)))

	for i := 0; i < 3; i++ {
		infos, err := p.Discover(v121, "", "", 0, nil)
		require.NoError(t, err)
		assert.Equal(t, uint64(fabricinfo.InjectSize), infos[0].EPAttr.MaxMsgSize)
	}
	assert.True(t, p.CMADisabled())
	assert.Equal(t, int32(1), opens.Load())
}

func TestDiscover_MissingPolicyFileDisablesCMA(t *testing.T) {
	missing := func(string) (io.ReadCloser, error) { return nil, os.ErrNotExist }
	p := loadTest(t, mocks.NewMockSignalRegistrar(testutil.DefaultSignalBase), WithPolicyOpener(missing))

	assert.True(t, p.CMADisabled())
}

func TestDiscover_EnvDisablesCMA(t *testing.T) {
	t.Setenv("FI_SHM_DISABLE_CMA", "1")

	var opens atomic.Int32
	p, err := Load(
		WithConfig(testutil.Config(t)),
		WithSignalRegistrar(mocks.NewMockSignalRegistrar(testutil.DefaultSignalBase)),
		WithPolicyOpener(scopeOpener("0", &opens)),
	)
	require.NoError(t, err)
	defer p.Teardown()

	assert.True(t, p.Config().Shm.DisableCMA)
	assert.True(t, p.CMADisabled())
	assert.Zero(t, opens.Load())

	t.Log("✅ FI_SHM_DISABLE_CMA 生效")
}

func TestLoad_HostEnvironmentIgnored(t *testing.T) {
	t.Setenv("LOG_LEVEL", "trace")
	t.Setenv("SIGNALS", "SIGUSR1")
	t.Setenv("MAX_REGIONS", "0")

	reg := mocks.NewMockSignalRegistrar(testutil.DefaultSignalBase)
	p, err := Load(
		WithConfig(testutil.Config(t)),
		WithSignalRegistrar(reg),
		WithPolicyOpener(scopeOpener("0", nil)),
	)
	require.NoError(t, err)
	require.NotNil(t, p)
	defer p.Teardown()

	cfg := p.Config()
	assert.Equal(t, config.DefaultSignals(), cfg.Shm.Signals)
	assert.Equal(t, config.DefaultMaxRegions, cfg.Shm.MaxRegions)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, 4, reg.Registered())

	t.Log("✅ 无前缀的宿主环境变量不影响加载")
}

func TestLoad_InvalidEnvValueNotFatal(t *testing.T) {
	t.Setenv("FI_SHM_LOG_LEVEL", "trace")
	t.Setenv("FI_SHM_MAX_REGIONS", "lots")
	t.Setenv("FI_SHM_DISABLE_CMA", "1")

	p, err := Load(
		WithConfig(testutil.Config(t)),
		WithSignalRegistrar(mocks.NewMockSignalRegistrar(testutil.DefaultSignalBase)),
		WithPolicyOpener(scopeOpener("0", nil)),
	)
	require.NoError(t, err)
	defer p.Teardown()

	assert.True(t, p.CMADisabled(), "有效变量仍然生效")
	assert.Equal(t, config.DefaultMaxRegions, p.Config().Shm.MaxRegions)

	t.Log("✅ 无效的 FI_SHM_* 变量只回退自身字段")
}

func TestLoad_KeepsHostLogger(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() {
		slog.SetDefault(prev)
		log.SetLevel(slog.LevelInfo)
	})

	var buf bytes.Buffer
	host := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	slog.SetDefault(host)

	loadTest(t, mocks.NewMockSignalRegistrar(testutil.DefaultSignalBase))

	assert.Same(t, host, slog.Default())
	assert.True(t, slog.Default().Enabled(context.Background(), slog.LevelDebug))

	t.Log("✅ 加载不替换宿主 logger")
}

func TestLoad_LogLevelOption(t *testing.T) {
	t.Cleanup(func() { log.SetLevel(slog.LevelInfo) })

	p := loadTest(t, mocks.NewMockSignalRegistrar(testutil.DefaultSignalBase), WithLogLevel("debug"))

	assert.Equal(t, "debug", p.Config().Log.Level)
	assert.Equal(t, slog.LevelDebug, log.GetLevel())

	_, err := Load(WithLogLevel("verbose"))
	assert.Error(t, err)

	t.Log("✅ WithLogLevel 设置本库日志级别")
}

func TestDiscover_BuilderErrorVerbatim(t *testing.T) {
	errBuild := errors.New("no match")
	builder := mocks.NewMockInfoBuilder()
	builder.GetInfoFunc = func(types.Version, string, string, types.Flags, *types.Info) ([]*types.Info, error) {
		return nil, errBuild
	}

	p := loadTest(t, mocks.NewMockSignalRegistrar(testutil.DefaultSignalBase), WithInfoBuilder(builder))

	infos, err := p.Discover(v121, "", "", 0, nil)
	assert.Same(t, errBuild, err)
	assert.Nil(t, infos)
}

func TestDiscover_DefaultBuilderNoData(t *testing.T) {
	p := loadTest(t, mocks.NewMockSignalRegistrar(testutil.DefaultSignalBase))

	hints := &types.Info{FabricAttr: &types.FabricAttr{ProvName: "tcp"}}
	_, err := p.Discover(v121, "", "", 0, hints)
	assert.ErrorIs(t, err, ErrNoData)

	_, err = p.Discover(types.MakeVersion(1, 4), "", "", 0, nil)
	assert.ErrorIs(t, err, ErrBadVersion)
}

func TestDiscover_FastRMAPolicyOption(t *testing.T) {
	p := loadTest(t, mocks.NewMockSignalRegistrar(testutil.DefaultSignalBase),
		WithFastRMAPolicy(func(types.MRMode, types.MsgOrder) bool { return false }),
	)

	infos, err := p.Discover(v121, "", "", 0, nil)
	require.NoError(t, err)
	assert.Equal(t, fabricinfo.ProviderOrder, infos[0].TxAttr.MsgOrder, "判定为 false 时保持构建器的顺序")
	assert.Equal(t, types.MRVirtAddr, infos[0].DomainAttr.MRMode)
	assert.True(t, infos[0].HasSrcAddr())
	assert.True(t, infos[0].HasDestAddr())
}

func TestDiscover_PIDOption(t *testing.T) {
	p := loadTest(t, mocks.NewMockSignalRegistrar(testutil.DefaultSignalBase), WithPID(func() int { return 77 }))

	infos, err := p.Discover(v121, "", "", 0, nil)
	require.NoError(t, err)
	assert.Equal(t, "fi_shm://77", infos[0].SrcAddr)
	assert.Equal(t, "fi_shm://77", infos[0].DestAddr)

	infos, err = p.Discover(v121, "node", "", types.FlagSource, nil)
	require.NoError(t, err)
	assert.Equal(t, "fi_shm://node", infos[0].SrcAddr)
	assert.False(t, infos[0].HasDestAddr())
}

func TestBuildFabric(t *testing.T) {
	p := loadTest(t, mocks.NewMockSignalRegistrar(testutil.DefaultSignalBase))
	_, err := p.BuildFabric(&types.FabricAttr{Name: "shm"})
	assert.ErrorIs(t, err, ErrFabricUnavailable)

	opener := &mocks.MockFabricOpener{}
	p = loadTest(t, mocks.NewMockSignalRegistrar(testutil.DefaultSignalBase), WithFabricOpener(opener))

	fabric, err := p.BuildFabric(&types.FabricAttr{Name: "shm"})
	require.NoError(t, err)
	assert.Equal(t, "shm", fabric.Name())
	require.Len(t, opener.Attrs, 1)

	require.NoError(t, p.Teardown())
	_, err = p.BuildFabric(nil)
	assert.ErrorIs(t, err, ErrProviderClosed)
}

func TestProvider_Identity(t *testing.T) {
	p := loadTest(t, mocks.NewMockSignalRegistrar(testutil.DefaultSignalBase))

	assert.Equal(t, "shm", p.Name())
	assert.Equal(t, fabricinfo.ProviderVersion, p.Version())

	_, err := uuid.Parse(p.ID())
	assert.NoError(t, err)

	other := loadTest(t, mocks.NewMockSignalRegistrar(testutil.DefaultSignalBase))
	assert.NotEqual(t, p.ID(), other.ID())
}

func TestProvider_Metrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	p := loadTest(t, mocks.NewMockSignalRegistrar(testutil.DefaultSignalBase), WithRegisterer(reg))

	_, err := p.Discover(v121, "", "", 0, nil)
	require.NoError(t, err)

	m := p.Metrics()
	require.NotNil(t, m)
	assert.Equal(t, 1.0, promtestutil.ToFloat64(m.DiscoverTotal.WithLabelValues("ok")))
	assert.Equal(t, 4.0, promtestutil.ToFloat64(m.SignalHandlers))

	count, err := promtestutil.GatherAndCount(reg, "shm_discover_total")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestProvider_ChainedHandler(t *testing.T) {
	reg := mocks.NewMockSignalRegistrar(testutil.DefaultSignalBase)
	got := make(chan os.Signal, 1)
	p := loadTest(t, reg, WithChainedHandler(func(sig os.Signal) { got <- sig }))

	reg.Deliver(syscall.SIGTERM)
	assert.Equal(t, syscall.SIGTERM, <-got)
	assert.Empty(t, reg.Raised())
	assert.False(t, p.Closed())
}
