package commands

import (
	"os"

	"github.com/spf13/cobra"

	"symboleq"
	"symboleq/errors"
	"symboleq/logger"
	"symboleq/mna"
	"symboleq/mna/debug"
)

func newDiagramCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "diagram <filename>",
		Short: "导出电路拓扑图",
		Long: `导出电路拓扑：节点、元件连接关系以及生成的方程。

输出格式由 --type 指定，未指定时取 --output 的扩展名：
  json  拓扑记录
  html  交互式网络图
  svg, png, pdf  静态拓扑图

未指定 --output 时写到标准输出。`,
		Args: cobra.ExactArgs(1),
		RunE: runDiagram,
	}
	cmd.Flags().StringP("output", "o", "", "输出文件")
	cmd.Flags().StringP("type", "t", "", "输出格式: json, html, svg, png, pdf")
	return cmd
}

func runDiagram(cmd *cobra.Command, args []string) error {
	output, _ := cmd.Flags().GetString("output")
	// 写到标准输出时调试信息改写到标准错误
	logOut := cmd.OutOrStdout()
	if output == "" {
		logOut = cmd.ErrOrStderr()
	}
	cfg, err := loadConfig(cmd, logOut)
	if err != nil {
		return err
	}
	mode, err := cfg.Mode()
	if err != nil {
		return err
	}
	cir, err := symboleq.Load(args[0], cfg.Ground...)
	if err != nil {
		return err
	}

	kind, _ := cmd.Flags().GetString("type")
	if kind == "" {
		kind = debug.FormatOf(output)
	}
	if kind == "" {
		kind = "json"
	}
	r, err := debug.NewRenderer(cir.Record(mode, mna.WithWorkers(cfg.Workers)), kind)
	if err != nil {
		return err
	}

	if output == "" {
		return r.Render(cmd.OutOrStdout())
	}
	file, err := os.Create(output)
	if err != nil {
		return errors.Wrapf(err, "创建 %s", output)
	}
	if err := r.Render(file); err != nil {
		file.Close()
		return errors.Wrapf(err, "导出 %s", output)
	}
	logger.Infow("拓扑图已导出", "file", output, "type", kind)
	return file.Close()
}
