package commands

import (
	"github.com/spf13/cobra"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "显示当前配置",
		Long: `合并默认值、配置文件、环境变量和命令行参数后输出当前配置。

示例：
  symboleq config               # TOML
  symboleq config -o yaml       # YAML`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			kind, _ := cmd.Flags().GetString("output")
			return cfg.Dump(cmd.OutOrStdout(), kind)
		},
	}
	cmd.Flags().StringP("output", "o", "toml", "输出格式: toml, yaml, json")
	return cmd
}
