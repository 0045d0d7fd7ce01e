package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/urfave/cli/v3"

	"github.com/omeyang/ipkit/pkg/ip/xaddr"
	"github.com/omeyang/ipkit/pkg/ip/xtunnel"
)

// createTunnelCommand 创建 tunnel 命令及其子命令。
func createTunnelCommand() *cli.Command {
	return &cli.Command{
		Name:  "tunnel",
		Usage: "过渡隧道地址编解码",
		Commands: []*cli.Command{
			createTunnelEncodeCommand(),
			createTunnelDecodeCommand(),
		},
	}
}

// createTunnelEncodeCommand 创建 tunnel encode 子命令。
func createTunnelEncodeCommand() *cli.Command {
	return &cli.Command{
		Name:      "encode",
		Usage:     "把 V4 地址编码为隧道 V6 地址",
		ArgsUsage: "<v4-address>",
		Description: "按 --mode 指定的布局编码：mapped（::ffff:a.b.c.d）、\n" +
			"6to4（2002::/16）或 teredo（2001::/32）。\n" +
			"teredo 模式必须提供 --server，可选 --flags 与 --port。",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "mode",
				Usage:    "隧道模式: mapped/6to4/teredo",
				Required: true,
			},
			&cli.StringFlag{
				Name:  "server",
				Usage: "teredo 服务器 V4 地址",
			},
			&cli.IntFlag{
				Name:  "flags",
				Usage: "teredo 标志字，[0, 65535]",
			},
			&cli.IntFlag{
				Name:  "port",
				Usage: "teredo 客户端端口（真实值，编码时混淆）",
			},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() != 1 {
				return &usageError{msg: "tunnel encode 需要且仅需要一个 V4 地址参数"}
			}
			return cmdTunnelEncode(os.Stdout, cmd.Args().First(),
				cmd.String("mode"), cmd.String("server"), cmd.Int("flags"), cmd.Int("port"))
		},
	}
}

// cmdTunnelEncode 执行隧道编码并输出压缩与完整两种形式。
func cmdTunnelEncode(w io.Writer, arg, modeText, serverText string, flags, port int) error {
	mode, err := xtunnel.ParseMode(modeText)
	if err != nil {
		return err
	}
	v4, err := xaddr.ParseV4(arg)
	if err != nil {
		return err
	}

	var v6 xaddr.Addr
	if mode == xtunnel.Teredo {
		if serverText == "" {
			return &usageError{msg: "teredo 模式必须提供 --server"}
		}
		server, err := xaddr.ParseV4(serverText)
		if err != nil {
			return err
		}
		params, err := xtunnel.NewTeredoParams(server, flags, port)
		if err != nil {
			return err
		}
		v6, err = xtunnel.ToIPv6(v4, mode, params)
		if err != nil {
			return err
		}
	} else {
		v6, err = xtunnel.ToIPv6(v4, mode)
		if err != nil {
			return err
		}
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "模式:\t%s\n", mode)
	fmt.Fprintf(tw, "地址:\t%s\n", v6)
	fmt.Fprintf(tw, "完整形式:\t%s\n", v6.Expanded())
	return tw.Flush()
}

// createTunnelDecodeCommand 创建 tunnel decode 子命令。
func createTunnelDecodeCommand() *cli.Command {
	return &cli.Command{
		Name:      "decode",
		Usage:     "从隧道 V6 地址解出 V4 要素",
		ArgsUsage: "<v6-address>",
		Description: "mapped 与 6to4 模式输出嵌入的 V4 地址；\n" +
			"teredo 模式输出服务器、客户端、标志与端口（已去混淆）。",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "mode",
				Usage:    "隧道模式: mapped/6to4/teredo",
				Required: true,
			},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() != 1 {
				return &usageError{msg: "tunnel decode 需要且仅需要一个 V6 地址参数"}
			}
			return cmdTunnelDecode(os.Stdout, cmd.Args().First(), cmd.String("mode"))
		},
	}
}

// cmdTunnelDecode 执行隧道解码。
func cmdTunnelDecode(w io.Writer, arg, modeText string) error {
	mode, err := xtunnel.ParseMode(modeText)
	if err != nil {
		return err
	}
	v6, err := xaddr.ParseV6(arg)
	if err != nil {
		return err
	}

	if mode == xtunnel.Teredo {
		info, err := xtunnel.ParseTeredo(v6)
		if err != nil {
			return err
		}
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		fmt.Fprintf(tw, "模式:\t%s\n", mode)
		fmt.Fprintf(tw, "服务器:\t%s\n", info.Server)
		fmt.Fprintf(tw, "客户端:\t%s\n", info.Client)
		fmt.Fprintf(tw, "标志:\t0x%04x\n", info.Flags)
		fmt.Fprintf(tw, "端口:\t%d\n", info.Port)
		return tw.Flush()
	}

	v4, err := xtunnel.ToIPv4(v6, mode)
	if err != nil {
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "模式:\t%s\n", mode)
	fmt.Fprintf(tw, "地址:\t%s\n", v4)
	return tw.Flush()
}
