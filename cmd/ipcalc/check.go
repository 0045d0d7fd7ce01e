package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/urfave/cli/v3"
	"golang.org/x/sync/errgroup"

	"github.com/omeyang/ipkit/pkg/ip/xaddr"
	"github.com/omeyang/ipkit/pkg/ip/xsubnet"
)

// createCheckCommand 创建 check 命令。
func createCheckCommand() *cli.Command {
	return &cli.Command{
		Name:      "check",
		Usage:     "逐行校验地址/子网清单",
		ArgsUsage: "[file ...]",
		Description: "每行一个条目：含 \"/\" 的行按子网解析，其余按地址解析。\n" +
			"空行与 # 开头的注释行跳过。多个文件并发处理，输出按参数顺序。\n" +
			"无参数或参数为 \"-\" 时读取标准输入。存在不合法行时退出码为 1。",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return cmdCheck(ctx, os.Stdout, cmd.Args().Slice())
		},
	}
}

// checkResult 是单个输入源的校验结果。
type checkResult struct {
	source   string
	verdicts []string
	bad      int
}

// cmdCheck 并发校验所有输入源，按参数顺序输出逐行判定。
func cmdCheck(ctx context.Context, w io.Writer, args []string) error {
	if len(args) == 0 {
		args = []string{"-"}
	}

	results := make([]*checkResult, len(args))
	g, ctx := errgroup.WithContext(ctx)
	for i, name := range args {
		g.Go(func() error {
			res, err := checkSource(ctx, name)
			if err != nil {
				return fmt.Errorf("check %s: %w", name, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	bad := 0
	for _, res := range results {
		for _, v := range res.verdicts {
			fmt.Fprintln(w, v)
		}
		bad += res.bad
		log.Debug("校验完成", "source", res.source, "lines", len(res.verdicts), "bad", res.bad)
	}
	if bad > 0 {
		fmt.Fprintf(os.Stderr, "check: %d 行不合法\n", bad)
		return &exitError{code: 1}
	}
	return nil
}

// checkSource 打开输入源并逐行校验。"-" 表示标准输入。
func checkSource(ctx context.Context, name string) (*checkResult, error) {
	if name == "-" {
		return checkLines(ctx, "stdin", os.Stdin)
	}
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return checkLines(ctx, name, f)
}

// checkLines 逐行产出判定文本。行号从 1 起算，含跳过的行。
func checkLines(ctx context.Context, source string, r io.Reader) (*checkResult, error) {
	res := &checkResult{source: source}
	sc := bufio.NewScanner(r)
	for n := 1; sc.Scan(); n++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		canonical, err := checkLine(line)
		if err != nil {
			res.verdicts = append(res.verdicts, fmt.Sprintf("%s:%d: BAD %v", source, n, err))
			res.bad++
			continue
		}
		res.verdicts = append(res.verdicts, fmt.Sprintf("%s:%d: OK  %s", source, n, canonical))
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return res, nil
}

// checkLine 校验单行并返回规范形式。
func checkLine(line string) (string, error) {
	if strings.ContainsRune(line, '/') {
		sn, err := xsubnet.Parse(line)
		if err != nil {
			return "", err
		}
		return sn.String(), nil
	}
	addr, err := xaddr.Parse(line)
	if err != nil {
		return "", err
	}
	return addr.StringWithZone(), nil
}
