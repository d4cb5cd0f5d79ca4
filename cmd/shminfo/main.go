// Package main 提供 shminfo 命令行入口
//
// 加载共享内存 provider，执行一次发现并打印得到的传输描述。
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	shm "github.com/dep2p/go-shm"
	"github.com/dep2p/go-shm/internal/core/fabricinfo"
	"github.com/dep2p/go-shm/pkg/lib/log"
	"github.com/dep2p/go-shm/pkg/types"
)

var logger = log.Logger("shm/cmd")

var (
	// ─────────────────────────────────────────────────────────────────────
	// 发现参数
	// ─────────────────────────────────────────────────────────────────────
	node       = flag.String("node", "", "节点名（空表示未设置）")
	service    = flag.String("service", "", "服务名（空表示未设置）")
	source     = flag.Bool("source", false, "node/service 描述本端地址（FI_SOURCE）")
	apiVersion = flag.String("api", "1.21", "请求的接口版本 major.minor")

	// ─────────────────────────────────────────────────────────────────────
	// 配置参数
	// ─────────────────────────────────────────────────────────────────────
	configFile = flag.String("config", "", "配置文件路径")
	disableCMA = flag.Bool("disable-cma", false, "强制禁用 CMA")
	logLevel   = flag.String("log-level", "", "日志级别 (debug/info/warn/error)")

	// ─────────────────────────────────────────────────────────────────────
	// 输出
	// ─────────────────────────────────────────────────────────────────────
	jsonOut     = flag.Bool("json", false, "以 JSON 输出")
	showVersion = flag.Bool("version", false, "显示版本信息")
)

func main() {
	if err := run(os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "错误: %v\n", err)
		os.Exit(1)
	}
}

func run(w io.Writer) error {
	flag.Parse()

	if *showVersion {
		fmt.Fprintf(w, "%s %s (api %s)\n", fabricinfo.ProviderName, fabricinfo.ProviderVersion, fabricinfo.APIVersion)
		return nil
	}

	version, err := parseVersion(*apiVersion)
	if err != nil {
		return err
	}

	p, err := shm.Load(buildOptions()...)
	if err != nil {
		return fmt.Errorf("加载失败: %w", err)
	}
	defer func() {
		if err := p.Teardown(); err != nil {
			logger.Warn("关闭 provider 失败", "error", err)
		}
	}()

	var flags types.Flags
	if *source {
		flags |= types.FlagSource
	}

	infos, err := p.Discover(version, *node, *service, flags, nil)
	if err != nil {
		return fmt.Errorf("发现失败: %w", err)
	}
	logger.Debug("发现完成", "candidates", len(infos), "cmaDisabled", p.CMADisabled())

	if *jsonOut {
		return writeJSON(w, infos)
	}
	for i, info := range infos {
		writeInfo(w, i, info)
	}
	return nil
}

// buildOptions 构建选项
//
// 配置优先级：命令行参数 > 环境变量（FI_SHM_*）> 配置文件 > 默认值。
func buildOptions() []shm.Option {
	var opts []shm.Option

	if *configFile != "" {
		opts = append(opts, shm.WithConfigFile(*configFile))
	}
	if isFlagSet("disable-cma") {
		opts = append(opts, shm.WithDisableCMA(*disableCMA))
	}
	if *logLevel != "" {
		if _, err := log.ParseLevel(*logLevel); err == nil {
			opts = append(opts, shm.WithLogLevel(*logLevel))
		} else {
			logger.Warn("忽略无效的日志级别", "level", *logLevel)
		}
	}
	return opts
}

// parseVersion 解析 major.minor
func parseVersion(s string) (types.Version, error) {
	var major, minor int
	if _, err := fmt.Sscanf(strings.TrimSpace(s), "%d.%d", &major, &minor); err != nil {
		return 0, fmt.Errorf("无效的接口版本 %q: %w", s, err)
	}
	if major < 0 || minor < 0 || major > 0xffff || minor > 0xffff {
		return 0, fmt.Errorf("无效的接口版本 %q", s)
	}
	return types.MakeVersion(uint16(major), uint16(minor)), nil
}

// writeInfo 以文本输出一条描述
func writeInfo(w io.Writer, i int, info *types.Info) {
	fmt.Fprintf(w, "provider: %s\n", info.FabricAttr.ProvName)
	fmt.Fprintf(w, "    index: %d\n", i)
	fmt.Fprintf(w, "    fabric: %s\n", info.FabricAttr.Name)
	fmt.Fprintf(w, "    version: %s\n", info.FabricAttr.ProvVersion)
	fmt.Fprintf(w, "    caps: %#x\n", uint64(info.Caps))
	fmt.Fprintf(w, "    src_addr: %s (%d)\n", info.SrcAddr, info.SrcAddrLen)
	fmt.Fprintf(w, "    dest_addr: %s (%d)\n", info.DestAddr, info.DestAddrLen)
	if info.DomainAttr != nil {
		fmt.Fprintf(w, "    mr_mode: %s\n", info.DomainAttr.MRMode)
	}
	if info.TxAttr != nil {
		fmt.Fprintf(w, "    msg_order: %s\n", info.TxAttr.MsgOrder)
		fmt.Fprintf(w, "    inject_size: %d\n", info.TxAttr.InjectSize)
	}
	if info.EPAttr != nil {
		fmt.Fprintf(w, "    ep_type: %s\n", info.EPAttr.Type)
		fmt.Fprintf(w, "    max_msg_size: %d\n", info.EPAttr.MaxMsgSize)
	}
}

// writeJSON 以 JSON 输出全部描述
func writeJSON(w io.Writer, infos []*types.Info) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(infos)
}

// isFlagSet 检查命令行参数是否被显式设置
func isFlagSet(name string) bool {
	found := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}
