// ipcalc 是 ipkit 的命令行计算器：地址解析与换算、子网推导与切分、
// 过渡隧道编解码、URL 提取、清单批量校验、规划文档检查。
//
// 用法:
//
//	ipcalc [全局选项] <命令> [命令参数]
//
// 全局选项:
//
//	--verbose      输出调试日志（到 stderr）
//
// 命令:
//
//	info <address>                查看地址的全部表示与属性
//	subnet <addr[/cidr]>          子网推导（--mask/--hosts 指定掩码来源）
//	split <addr/cidr> <new-cidr>  切分为等宽子网
//	hosts <version> <count>       按主机数反查掩码
//	tunnel encode|decode          过渡隧道地址编解码（mapped/6to4/teredo）
//	arpa <addr|ip6.arpa>          地址与 ip6.arpa 反向名互转
//	url <url>                     从 URL 文本提取地址要素
//	check [file ...|-]            逐行校验地址/子网清单
//	plan check <file>             加载并校验子网规划文档
//
// 退出码:
//
//	0: 执行成功
//	1: 执行失败（解析错误、清单中存在不合法行等）
//	2: 参数错误（未知命令、非法 flag、缺少必需参数）
//
// 示例:
//
//	ipcalc info 192.168.1.25
//	ipcalc subnet 192.168.1.25/24
//	ipcalc subnet 10.0.0.0 --hosts 300
//	ipcalc split 192.168.0.0/24 26
//	ipcalc tunnel encode --mode 6to4 192.168.1.25
//	ipcalc tunnel decode --mode teredo 2001:0:4136:e378:8000:63bf:3fff:fdd2
//	ipcalc check addrs.txt subnets.txt
//	cat addrs.txt | ipcalc check -
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/urfave/cli/v3"
)

// 版本信息（可通过 -ldflags 注入，例如:
//
//	go build -ldflags "-X main.Version=1.0.0 -X main.GitCommit=$(git rev-parse --short HEAD) -X main.BuildTime=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
//
// ）。
var (
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildTime = "unknown"
)

func main() {
	os.Exit(run())
}

// createApp 创建 CLI 应用。
func createApp() *cli.Command {
	return &cli.Command{
		Name:    "ipcalc",
		Usage:   "IP 地址与子网计算工具",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", Version, GitCommit, BuildTime),
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "输出调试日志",
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			if cmd.Bool("verbose") {
				log.SetLevel(log.DebugLevel)
			} else {
				log.SetLevel(log.WarnLevel)
			}
			return ctx, nil
		},
		Commands:       createCommands(),
		DefaultCommand: "help",
		Authors: []any{
			"ipkit Team",
		},
		// 设计决策: 禁止 urfave/cli 直接调用 os.Exit，
		// 由 run() 统一处理退出码映射，确保与文档退出码契约一致。
		ExitErrHandler: func(_ context.Context, _ *cli.Command, err error) {
			// ExitCoder 错误（如未知命令）的消息需在此输出，
			// 替代 HandleExitCoder 的默认 os.Exit 行为。
			if _, ok := err.(cli.ExitCoder); ok {
				fmt.Fprintln(os.Stderr, err)
			}
		},
		Description: `ipcalc 是纯计算的地址工具，不做任何网络探测。

换算命令:
  info <address>          地址的全部表示（含整数、十六进制、二进制）
  arpa <addr|name>        地址与 ip6.arpa 反向名互转
  url <url>               从 URL 文本提取 scheme/地址/端口/路径

子网命令:
  subnet <addr[/cidr]>    网络地址、广播地址、主机范围与容量
    --mask                显式掩码（点分、CIDR 数字或冒号十六进制）
    --hosts               按主机数反推掩码
  split <subnet> <cidr>   切分为等宽子网
  hosts <version> <n>     按主机数反查掩码

隧道命令:
  tunnel encode --mode mapped|6to4|teredo <v4>
  tunnel decode --mode mapped|6to4|teredo <v6>

批量命令:
  check [file ...|-]      逐行校验清单，输出逐行判定
  plan check <file|->     加载并校验 YAML/JSON 子网规划文档`,
	}
}

func run() int {
	app := createApp()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// 设置信号处理
	setupSignalHandler(cancel)

	if err := app.Run(ctx, os.Args); err != nil {
		var exitErr *exitError
		if errors.As(err, &exitErr) {
			return exitErr.code
		}
		var usageErr *usageError
		if errors.As(err, &usageErr) {
			fmt.Fprintf(os.Stderr, "参数错误: %v\n", usageErr)
			return 2
		}
		// CLI 框架产生的参数错误（未知 flag、未知命令）同样映射为退出码 2。
		if isCLIUsageError(err) {
			return 2
		}
		fmt.Fprintf(os.Stderr, "错误: %v\n", err)
		return 1
	}

	return 0
}
