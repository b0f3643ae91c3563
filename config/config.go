// Package config 命令行配置。
//
// 优先级从低到高：默认值、symboleq.toml（或 --config 指定的文件）、
// SYMBOLEQ_* 环境变量、命令行参数。
package config

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"symboleq/errors"
	"symboleq/format"
	"symboleq/types"
)

// FileName 工作目录中的默认配置文件名（不含扩展名）
const FileName = "symboleq"

// Config 配置
type Config struct {
	Format  string   `mapstructure:"format" toml:"format" yaml:"format" json:"format"`     // 输出记法
	Debug   bool     `mapstructure:"debug" toml:"debug" yaml:"debug" json:"debug"`         // 调试输出
	Ground  []string `mapstructure:"ground" toml:"ground" yaml:"ground" json:"ground"`     // 参考地名称
	Workers int      `mapstructure:"workers" toml:"workers" yaml:"workers" json:"workers"` // 并发生成的节点数
}

// SetDefaults 默认值
func SetDefaults(v *viper.Viper) {
	v.SetDefault("format", string(format.ModeDefault))
	v.SetDefault("debug", false)
	v.SetDefault("ground", types.DefaultGroundNames)
	v.SetDefault("workers", 1)
}

// New 创建配置来源
// path 为空时查找工作目录中的 symboleq.toml，文件不存在不是错误
func New(path string) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix("SYMBOLEQ")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	SetDefaults(v)

	v.SetConfigType("toml")
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(FileName)
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path == "" && errors.As(err, &notFound) {
			return v, nil
		}
		return nil, errors.WithHint(errors.Wrapf(err, "读取配置文件 %s", path), "配置文件使用 TOML 格式")
	}
	return v, nil
}

// Load 读取配置
func Load(v *viper.Viper) (*Config, error) {
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, errors.Wrap(err, "解析配置")
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate 检查并补全配置
func (c *Config) Validate() error {
	if _, err := c.Mode(); err != nil {
		return err
	}
	if len(c.Ground) == 0 {
		c.Ground = append([]string(nil), types.DefaultGroundNames...)
	}
	if c.Workers < 1 {
		c.Workers = 1
	}
	return nil
}

// Mode 输出记法
func (c *Config) Mode() (format.Mode, error) {
	return format.ParseMode(c.Format)
}

// DumpFormats Dump 支持的格式
var DumpFormats = []string{"toml", "yaml", "json"}

// Dump 按格式输出，kind 为空时使用 TOML
func (c *Config) Dump(w io.Writer, kind string) error {
	var (
		data []byte
		err  error
	)
	switch strings.ToLower(kind) {
	case "", "toml":
		data, err = toml.Marshal(c)
	case "yaml":
		data, err = yaml.Marshal(c)
	case "json":
		data, err = json.MarshalIndent(c, "", "  ")
		data = append(data, '\n')
	default:
		err = errors.Newf("不支持的格式 %q", kind)
		return errors.WithHintf(err, "可选格式: %s", strings.Join(DumpFormats, ", "))
	}
	if err != nil {
		return errors.Wrap(err, "序列化配置")
	}
	_, err = w.Write(data)
	return err
}
