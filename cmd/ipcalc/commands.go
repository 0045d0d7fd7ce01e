package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"text/tabwriter"

	"github.com/charmbracelet/log"
	"github.com/urfave/cli/v3"

	"github.com/omeyang/ipkit/pkg/ip/xaddr"
	"github.com/omeyang/ipkit/pkg/ip/xmask"
	"github.com/omeyang/ipkit/pkg/ip/xsubnet"
	"github.com/omeyang/ipkit/pkg/ip/xurladdr"
)

// createCommands 创建所有 CLI 命令。
func createCommands() []*cli.Command {
	return []*cli.Command{
		createInfoCommand(),
		createSubnetCommand(),
		createSplitCommand(),
		createHostsCommand(),
		createTunnelCommand(),
		createArpaCommand(),
		createURLCommand(),
		createCheckCommand(),
		createPlanCommand(),
	}
}

// createInfoCommand 创建 info 命令。
func createInfoCommand() *cli.Command {
	return &cli.Command{
		Name:      "info",
		Usage:     "查看地址的全部表示与属性",
		ArgsUsage: "<address>",
		Description: "解析一个 V4 或 V6 地址，输出规范形式、完整形式、数值表示\n" +
			"（整数、十六进制、二进制）、分类与属性标志。\n" +
			"接受点分十进制、冒号十六进制、映射形式与 ip6.arpa 反向名。",
		Action: func(_ context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() != 1 {
				return &usageError{msg: "info 需要且仅需要一个地址参数"}
			}
			return cmdInfo(os.Stdout, cmd.Args().First())
		},
	}
}

// cmdInfo 解析地址并输出全部表示。
func cmdInfo(w io.Writer, arg string) error {
	addr, err := xaddr.Parse(arg)
	if err != nil {
		return err
	}
	log.Debug("已解析地址", "input", arg, "version", addr.Version())

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "地址:\t%s\n", addr.StringWithZone())
	fmt.Fprintf(tw, "版本:\t%s\n", addr.Version())
	fmt.Fprintf(tw, "完整形式:\t%s\n", addr.Expanded())
	if c, ok := addr.Class(); ok {
		fmt.Fprintf(tw, "网络类别:\t%s\n", c)
	}
	if t, ok := addr.Type(); ok {
		fmt.Fprintf(tw, "地址归类:\t%s\n", t)
	}
	fmt.Fprintf(tw, "属性:\t%s\n", addrFlags(addr))
	if v, err := addr.ToUint32(); err == nil {
		fmt.Fprintf(tw, "整数:\t%d\n", v)
	} else {
		fmt.Fprintf(tw, "整数:\t%s\n", addr.ToBigInt())
	}
	fmt.Fprintf(tw, "十六进制:\t%s\n", addr.HexString())
	fmt.Fprintf(tw, "二进制:\t%s\n", addr.BinaryString())
	if arpa, err := addr.ToIP6Arpa(); err == nil {
		fmt.Fprintf(tw, "反向名:\t%s\n", arpa)
	}
	return tw.Flush()
}

// addrFlags 汇总地址命中的属性谓词，无命中时返回 "-"。
func addrFlags(a xaddr.Addr) string {
	var flags []string
	for _, p := range []struct {
		name string
		hit  bool
	}{
		{"private", a.IsPrivate()},
		{"multicast", a.IsMulticast()},
		{"loopback", a.IsLoopback()},
		{"link-local", a.IsLinkLocal()},
		{"unique-local", a.IsUniqueLocal()},
		{"unicast", a.IsUnicast()},
		{"reserved", a.IsReserved()},
	} {
		if p.hit {
			flags = append(flags, p.name)
		}
	}
	if len(flags) == 0 {
		return "-"
	}
	return strings.Join(flags, ", ")
}

// createSubnetCommand 创建 subnet 命令。
func createSubnetCommand() *cli.Command {
	return &cli.Command{
		Name:      "subnet",
		Usage:     "子网推导",
		ArgsUsage: "<addr[/cidr]>",
		Description: "推导子网的网络地址、末地址、广播地址、主机范围与容量。\n" +
			"不带 /cidr 的裸 V4 地址按传统类别取默认掩码；\n" +
			"--mask 与 --hosts 可显式指定掩码来源，两者互斥。",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "mask",
				Usage: "掩码文本（点分、CIDR 数字或冒号十六进制）",
			},
			&cli.Uint64Flag{
				Name:  "hosts",
				Usage: "期望可用主机数，反推最小掩码",
			},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() != 1 {
				return &usageError{msg: "subnet 需要且仅需要一个地址参数"}
			}
			if cmd.IsSet("mask") && cmd.IsSet("hosts") {
				return &usageError{msg: "--mask 与 --hosts 互斥，只能指定其一"}
			}
			return cmdSubnet(os.Stdout, cmd.Args().First(), cmd.String("mask"), cmd.Uint64("hosts"), cmd.IsSet("hosts"))
		},
	}
}

// cmdSubnet 按参数来源构造子网并输出推导结果。
func cmdSubnet(w io.Writer, arg, maskText string, hosts uint64, hostsSet bool) error {
	var (
		sn  *xsubnet.Subnet
		err error
	)
	switch {
	case maskText != "":
		sn, err = xsubnet.ParseWithMask(arg, maskText)
	case hostsSet:
		sn, err = xsubnet.WithHosts(arg, hosts)
	default:
		sn, err = xsubnet.Parse(arg)
	}
	if err != nil {
		return err
	}
	return printSubnet(w, sn)
}

// printSubnet 输出子网的推导字段。
func printSubnet(w io.Writer, sn *xsubnet.Subnet) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "子网:\t%s\n", sn)
	fmt.Fprintf(tw, "掩码:\t%s\n", sn.Mask())
	fmt.Fprintf(tw, "反掩码:\t%s\n", sn.Mask().Wildcard())
	fmt.Fprintf(tw, "网络地址:\t%s\n", sn.Network())
	fmt.Fprintf(tw, "末地址:\t%s\n", sn.LastAddress())
	if bc, ok := sn.Broadcast(); ok {
		fmt.Fprintf(tw, "广播地址:\t%s\n", bc)
	}
	fmt.Fprintf(tw, "首主机:\t%s\n", sn.FirstHost())
	fmt.Fprintf(tw, "末主机:\t%s\n", sn.LastHost())
	fmt.Fprintf(tw, "地址总数:\t%s\n", sn.Size())
	fmt.Fprintf(tw, "可用主机:\t%s\n", sn.Hosts())
	if c, ok := sn.Class(); ok {
		fmt.Fprintf(tw, "网络类别:\t%s\n", c)
	}
	return tw.Flush()
}

// createSplitCommand 创建 split 命令。
func createSplitCommand() *cli.Command {
	return &cli.Command{
		Name:      "split",
		Usage:     "切分为等宽子网",
		ArgsUsage: "<addr/cidr> <new-cidr>",
		Description: "把子网切分为 new-cidr 宽度的等宽子网，逐行输出。\n" +
			"new-cidr 必须大于原前缀长度，且切分数量不超过 16384。",
		Action: func(_ context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() != 2 {
				return &usageError{msg: "split 需要子网与新前缀长度两个参数"}
			}
			return cmdSplit(os.Stdout, cmd.Args().Get(0), cmd.Args().Get(1))
		},
	}
}

// cmdSplit 切分子网并逐行输出。
func cmdSplit(w io.Writer, subnetText, cidrText string) error {
	newCIDR, err := strconv.Atoi(cidrText)
	if err != nil {
		return &usageError{msg: fmt.Sprintf("非法的前缀长度 %q", cidrText)}
	}
	sn, err := xsubnet.Parse(subnetText)
	if err != nil {
		return err
	}
	children, err := sn.Split(newCIDR)
	if err != nil {
		return err
	}
	log.Debug("切分完成", "parent", sn.String(), "children", len(children))
	for _, child := range children {
		fmt.Fprintln(w, child)
	}
	return nil
}

// createHostsCommand 创建 hosts 命令。
func createHostsCommand() *cli.Command {
	return &cli.Command{
		Name:      "hosts",
		Usage:     "按主机数反查掩码",
		ArgsUsage: "<version> <count>",
		Description: "返回至少容纳 count 个可用主机的最长掩码。\n" +
			"version 取 4 或 6（也接受 v4/ipv4 等写法）。",
		Action: func(_ context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() != 2 {
				return &usageError{msg: "hosts 需要版本与主机数两个参数"}
			}
			return cmdHosts(os.Stdout, cmd.Args().Get(0), cmd.Args().Get(1))
		},
	}
}

// cmdHosts 按主机数反查掩码并输出掩码属性。
func cmdHosts(w io.Writer, verText, countText string) error {
	ver, err := parseVersionArg(verText)
	if err != nil {
		return err
	}
	count, err := strconv.ParseUint(countText, 10, 64)
	if err != nil {
		return &usageError{msg: fmt.Sprintf("非法的主机数 %q", countText)}
	}
	m, err := xmask.FromHosts(ver, count)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "掩码:\t%s\n", m)
	fmt.Fprintf(tw, "前缀长度:\t/%d\n", m.CIDR())
	fmt.Fprintf(tw, "地址总数:\t%s\n", m.Size())
	fmt.Fprintf(tw, "可用主机:\t%s\n", m.Hosts())
	return tw.Flush()
}

// parseVersionArg 解析命令行的版本参数。
func parseVersionArg(s string) (xaddr.Version, error) {
	switch strings.ToLower(s) {
	case "4", "v4", "ipv4":
		return xaddr.V4, nil
	case "6", "v6", "ipv6":
		return xaddr.V6, nil
	default:
		return xaddr.V0, &usageError{msg: fmt.Sprintf("非法的版本 %q，取 4 或 6", s)}
	}
}

// createArpaCommand 创建 arpa 命令。
func createArpaCommand() *cli.Command {
	return &cli.Command{
		Name:      "arpa",
		Usage:     "地址与 ip6.arpa 反向名互转",
		ArgsUsage: "<addr | name.ip6.arpa>",
		Description: "输入 V6 地址时输出其 ip6.arpa 反向名；\n" +
			"输入以 .ip6.arpa 结尾的反向名时输出还原出的地址。",
		Action: func(_ context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() != 1 {
				return &usageError{msg: "arpa 需要且仅需要一个参数"}
			}
			return cmdArpa(os.Stdout, cmd.Args().First())
		},
	}
}

// cmdArpa 按输入方向做地址与反向名互转。
func cmdArpa(w io.Writer, arg string) error {
	if strings.HasSuffix(strings.ToLower(arg), ".ip6.arpa") {
		addr, err := xaddr.FromIP6Arpa(arg)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, addr)
		return nil
	}
	addr, err := xaddr.Parse(arg)
	if err != nil {
		return err
	}
	name, err := addr.ToIP6Arpa()
	if err != nil {
		return err
	}
	fmt.Fprintln(w, name)
	return nil
}

// createURLCommand 创建 url 命令。
func createURLCommand() *cli.Command {
	return &cli.Command{
		Name:      "url",
		Usage:     "从 URL 文本提取地址要素",
		ArgsUsage: "<url>",
		Description: "提取 URL 中的协议、主机地址、端口与路径。\n" +
			"V6 主机必须写在方括号内；主机名（域名）不在处理范围。",
		Action: func(_ context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() != 1 {
				return &usageError{msg: "url 需要且仅需要一个参数"}
			}
			return cmdURL(os.Stdout, cmd.Args().First())
		},
	}
}

// cmdURL 提取并输出 URL 要素。
func cmdURL(w io.Writer, arg string) error {
	ua, err := xurladdr.Extract(arg)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	if ua.Scheme != "" {
		fmt.Fprintf(tw, "协议:\t%s\n", ua.Scheme)
	}
	fmt.Fprintf(tw, "地址:\t%s\n", ua.Addr.StringWithZone())
	fmt.Fprintf(tw, "版本:\t%s\n", ua.Addr.Version())
	if ua.Port >= 0 {
		fmt.Fprintf(tw, "端口:\t%d\n", ua.Port)
	}
	if ua.Path != "" {
		fmt.Fprintf(tw, "路径:\t%s\n", ua.Path)
	}
	return tw.Flush()
}

// setupSignalHandler 安装信号处理。首个 SIGINT/SIGTERM 触发取消，
// 再次收到信号时直接退出。
func setupSignalHandler(cancel context.CancelFunc) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigCh
		log.Warn("收到退出信号，正在取消")
		cancel()
		<-sigCh
		os.Exit(130)
	}()
}

// exitError 表示需要非零退出码但已完成输出的场景。
// 命令内部已完成所有输出，run 只需设置退出码。
type exitError struct {
	code int
}

func (e *exitError) Error() string {
	return fmt.Sprintf("exit status %d", e.code)
}

// usageError 表示命令参数用法错误，由 run() 映射为退出码 2。
type usageError struct {
	msg string
}

func (e *usageError) Error() string {
	return e.msg
}

// isCLIUsageError 识别 urfave/cli 框架自身产生的用法错误。
func isCLIUsageError(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "flag provided but not defined") ||
		strings.Contains(msg, "No help topic for")
}
