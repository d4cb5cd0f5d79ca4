package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/kelseyhightower/envconfig"

	"github.com/dep2p/go-shm/pkg/lib/log"
)

var logger = log.Logger("config")

// EnvPrefix 环境变量前缀
const EnvPrefix = "FI_SHM"

// 环境变量名
const (
	EnvDisableCMA  = EnvPrefix + "_DISABLE_CMA"
	EnvPolicyFile  = EnvPrefix + "_POLICY_FILE"
	EnvShmDir      = EnvPrefix + "_SHM_DIR"
	EnvSignals     = EnvPrefix + "_SIGNALS"
	EnvMaxRegions  = EnvPrefix + "_MAX_REGIONS"
	EnvLogLevel    = EnvPrefix + "_LOG_LEVEL"
	EnvLogFxEvents = EnvPrefix + "_LOG_FX_EVENTS"
)

// ApplyEnv 用 FI_SHM_* 环境变量覆盖配置
//
// 只读取带完整前缀的变量，逐个解析。变量为空时视为未设置；
// 解析或校验失败时记录警告并保留该字段原值，其他字段不受影响。
func ApplyEnv(c *Config) {
	if c == nil {
		return
	}

	var disableCMA struct {
		V bool `envconfig:"FI_SHM_DISABLE_CMA"`
	}
	applyEnv(EnvDisableCMA, &disableCMA, func() error {
		c.Shm.DisableCMA = disableCMA.V
		return nil
	})

	var policyFile struct {
		V string `envconfig:"FI_SHM_POLICY_FILE"`
	}
	applyEnv(EnvPolicyFile, &policyFile, func() error {
		c.Shm.PolicyFile = strings.TrimSpace(policyFile.V)
		return nil
	})

	var shmDir struct {
		V string `envconfig:"FI_SHM_SHM_DIR"`
	}
	applyEnv(EnvShmDir, &shmDir, func() error {
		c.Shm.ShmDir = strings.TrimSpace(shmDir.V)
		return nil
	})

	var signals struct {
		V []string `envconfig:"FI_SHM_SIGNALS"`
	}
	applyEnv(EnvSignals, &signals, func() error {
		names := make([]string, 0, len(signals.V))
		for _, s := range signals.V {
			if s = strings.TrimSpace(s); s != "" {
				names = append(names, s)
			}
		}
		if err := ValidateSignals(names); err != nil {
			return err
		}
		c.Shm.Signals = names
		return nil
	})

	var maxRegions struct {
		V int `envconfig:"FI_SHM_MAX_REGIONS"`
	}
	applyEnv(EnvMaxRegions, &maxRegions, func() error {
		if maxRegions.V <= 0 {
			return fmt.Errorf("max_regions must be positive, got %d", maxRegions.V)
		}
		c.Shm.MaxRegions = maxRegions.V
		return nil
	})

	var logLevel struct {
		V string `envconfig:"FI_SHM_LOG_LEVEL"`
	}
	applyEnv(EnvLogLevel, &logLevel, func() error {
		if _, err := log.ParseLevel(logLevel.V); err != nil {
			return err
		}
		c.Log.Level = strings.TrimSpace(logLevel.V)
		return nil
	})

	var fxEvents struct {
		V bool `envconfig:"FI_SHM_LOG_FX_EVENTS"`
	}
	applyEnv(EnvLogFxEvents, &fxEvents, func() error {
		c.Log.FxEvents = fxEvents.V
		return nil
	})
}

// applyEnv 解析单个环境变量并应用到配置
//
// spec 只含一个以完整变量名为 tag 的字段，envconfig 不会回退到无前缀的变量名。
func applyEnv(key string, spec any, apply func() error) {
	if v, ok := os.LookupEnv(key); !ok || strings.TrimSpace(v) == "" {
		return
	}
	if err := envconfig.Process("", spec); err != nil {
		logger.Warn("忽略无法解析的环境变量", "key", key, "error", err)
		return
	}
	if err := apply(); err != nil {
		logger.Warn("忽略无效的环境变量", "key", key, "error", err)
	}
}
