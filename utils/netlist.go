package utils

import (
	"strings"
)

// NetList 网表一行的字段
type NetList []string

// SeparationPrick 分离元件名称的类型前缀
// SPICE 使用名称首字母表示元件类型，如 "Rload" 得到 "R" 和 "load"
func (value NetList) SeparationPrick(i int) (typeName string, id string) {
	if i >= len(value) || value[i] == "" {
		return "", ""
	}
	name := value[i]
	return strings.ToUpper(name[:1]), name[1:]
}

// ParseString 安全获取字符串
func (value NetList) ParseString(i int, defaultValue string) string {
	if i < len(value) {
		return value[i]
	}
	return defaultValue
}

// Slice 安全截取 [i, j)，越界部分忽略
func (value NetList) Slice(i, j int) NetList {
	i, j = min(max(i, 0), len(value)), min(max(j, 0), len(value))
	if i >= j {
		return NetList{}
	}
	return value[i:j]
}

// Join 拼接字段
func (value NetList) Join() string {
	return strings.Join(value, " ")
}
