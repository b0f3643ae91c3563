package commands

import (
	"io"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"symboleq"
	"symboleq/config"
	"symboleq/errors"
	"symboleq/format"
	"symboleq/logger"
	"symboleq/mna"
	"symboleq/types"
)

// NewRootCmd 创建根命令
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "symboleq <filename>",
		Short: "由 SPICE 网表生成符号方程",
		Long: `由 SPICE 网表生成改进节点分析（MNA）的符号方程。

每个非地节点输出一个 KCL 方程，随后输出每个电压源的约束方程。

配置来源（优先级从高到低）：
1. 命令行参数
2. 环境变量（SYMBOLEQ_FORMAT, SYMBOLEQ_DEBUG, SYMBOLEQ_WORKERS）
3. 配置文件（./symboleq.toml 或 --config）
4. 默认值

示例：
  symboleq rc.cir                 # 默认格式
  symboleq rc.cir -f maxima       # Maxima 格式
  symboleq rc.cir -d              # 输出调试信息
  symboleq diagram rc.cir -o rc.svg`,
		Args:          cobra.ExactArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE:          runRoot,
	}

	flags := root.PersistentFlags()
	flags.String("config", "", "配置文件路径（TOML）")
	flags.StringP("format", "f", string(format.ModeDefault), "输出格式: default, maxima")
	flags.BoolP("debug", "d", false, "输出调试信息")
	flags.Int("workers", 1, "并发生成的节点数")
	flags.StringSlice("ground", types.DefaultGroundNames, "参考地节点名称")

	root.AddCommand(newDiagramCmd())
	root.AddCommand(newConfigCmd())
	return root
}

// Execute 执行命令，返回退出码
func Execute() int {
	root := NewRootCmd()
	err := root.Execute()
	logger.Cleanup()
	if err != nil {
		printError(root.ErrOrStderr(), err)
		return 1
	}
	return 0
}

func runRoot(cmd *cobra.Command, args []string) error {
	// 方程与调试信息交错写入同一输出
	cfg, err := loadConfig(cmd, cmd.OutOrStdout())
	if err != nil {
		return err
	}
	cir, err := symboleq.Load(args[0], cfg.Ground...)
	if err != nil {
		return err
	}
	mode, err := cfg.Mode()
	if err != nil {
		return err
	}
	return cir.WriteEquations(cmd.OutOrStdout(), mode, mna.WithWorkers(cfg.Workers))
}

// loadConfig 合并配置并初始化日志，调试信息写入 logOut
func loadConfig(cmd *cobra.Command, logOut io.Writer) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	v, err := config.New(path)
	if err != nil {
		return nil, err
	}
	if err := bindFlags(v, cmd); err != nil {
		return nil, err
	}
	cfg, err := config.Load(v)
	if err != nil {
		return nil, err
	}
	logger.Initialize(logOut, cfg.Debug)
	return cfg, nil
}

// bindFlags 命令行参数覆盖配置
func bindFlags(v *viper.Viper, cmd *cobra.Command) error {
	for _, name := range []string{"format", "debug", "workers", "ground"} {
		if err := v.BindPFlag(name, cmd.Flags().Lookup(name)); err != nil {
			return errors.Wrapf(err, "参数 --%s", name)
		}
	}
	return nil
}

// printError 输出错误和提示
func printError(w io.Writer, err error) {
	pterm.Error.WithWriter(w).Println(err.Error())
	for _, hint := range errors.GetAllHints(err) {
		pterm.Info.WithWriter(w).Println(hint)
	}
}
