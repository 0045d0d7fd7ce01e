package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/log"
	"github.com/urfave/cli/v3"

	"github.com/omeyang/ipkit/pkg/ip/xplan"
)

// createPlanCommand 创建 plan 命令及其子命令。
func createPlanCommand() *cli.Command {
	return &cli.Command{
		Name:  "plan",
		Usage: "子网规划文档操作",
		Commands: []*cli.Command{
			createPlanCheckCommand(),
		},
	}
}

// createPlanCheckCommand 创建 plan check 子命令。
func createPlanCheckCommand() *cli.Command {
	return &cli.Command{
		Name:      "check",
		Usage:     "加载并校验规划文档",
		ArgsUsage: "<file | ->",
		Description: "加载 YAML/JSON 规划文档，校验所有网段定义与重叠约束，\n" +
			"输出网段清单。格式默认按扩展名推断，读取标准输入时\n" +
			"必须用 --format 指定。",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "format",
				Usage: "文档格式: yaml/json（默认按扩展名推断）",
			},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() != 1 {
				return &usageError{msg: "plan check 需要且仅需要一个文档路径参数"}
			}
			return cmdPlanCheck(os.Stdout, cmd.Args().First(), cmd.String("format"))
		},
	}
}

// cmdPlanCheck 加载规划文档并输出网段清单。
func cmdPlanCheck(w io.Writer, path, formatText string) error {
	format, err := resolvePlanFormat(path, formatText)
	if err != nil {
		return err
	}

	var data []byte
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return err
	}

	plan, err := xplan.Load(data, format)
	if err != nil {
		return err
	}

	names := plan.Networks()
	log.Debug("规划文档已加载", "path", path, "format", format, "networks", len(names))

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "网段\t子网\t可用主机")
	for _, name := range names {
		sn, _ := plan.Get(name)
		fmt.Fprintf(tw, "%s\t%s\t%s\n", name, sn, sn.Hosts())
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(w, "\n共 %d 个网段，规划合法\n", len(names))
	return nil
}

// resolvePlanFormat 确定文档格式：--format 优先，其次按扩展名推断。
func resolvePlanFormat(path, formatText string) (xplan.Format, error) {
	switch strings.ToLower(formatText) {
	case "yaml", "yml":
		return xplan.FormatYAML, nil
	case "json":
		return xplan.FormatJSON, nil
	case "":
	default:
		return "", &usageError{msg: fmt.Sprintf("非法的格式 %q，取 yaml 或 json", formatText)}
	}
	if path == "-" {
		return "", &usageError{msg: "从标准输入读取时必须用 --format 指定格式"}
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return xplan.FormatYAML, nil
	case ".json":
		return xplan.FormatJSON, nil
	default:
		return "", &usageError{msg: fmt.Sprintf("无法从 %q 的扩展名推断格式，请用 --format 指定", path)}
	}
}
