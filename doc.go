// Package shm 提供基于共享内存的本机传输 provider
//
// provider 运行在同一台主机的进程之间，地址分为两族：
//
//   - fi_ns://<node>:<service>  具名地址，由 node/service 描述
//   - fi_shm://<pid>            本地地址，由进程身份描述
//
// # 快速开始
//
//	p, err := shm.Load()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer p.Teardown()
//
//	infos, err := p.Discover(types.MakeVersion(1, 21), "", "5000", 0, nil)
//
// # 生命周期
//
// Load 读取配置（含 FI_SHM_* 环境变量）、分配信号表并安装崩溃安全清理处理器，
// 任何一步失败都返回 nil provider，不留下已安装的处理器。
// Teardown 同步清理本进程拥有的共享内存文件并释放信号表，可重复调用。
//
// # 能力协商
//
// Discover 委托描述构建器枚举候选，然后补全地址、按快速 RMA 判定强制严格顺序，
// 并在 CMA 不可用（配置禁用或 ptrace_scope 非 0）时把最大消息大小限制为注入上限。
// ptrace 策略在进程生命周期内只读取一次。
package shm
