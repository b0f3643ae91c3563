package format

import (
	"regexp"
)

// Rule 一条改写规则，对整个字符串做替换
type Rule struct {
	Name    string         // 规则名称
	Pattern *regexp.Regexp // 匹配
	Replace string         // 替换模板，使用 ${1} 引用分组
}

// Apply 应用规则
func (r Rule) Apply(s string) string {
	return r.Pattern.ReplaceAllString(s, r.Replace)
}

// Formatter 按顺序应用改写规则
type Formatter struct {
	Rules []Rule
}

// Render 依次应用全部规则，没有规则时原样返回
func (f *Formatter) Render(s string) string {
	for _, r := range f.Rules {
		s = r.Apply(s)
	}
	return s
}

// maximaRules 的顺序不能调整：后面的规则更宽泛，会匹配前面已改写的片段。
// 例如 V(1) 必须先按节点编号改写为 V[1]，否则会被节点名称规则改写为 U[1]。
var maximaRules = []Rule{
	{"branch-current", regexp.MustCompile(`I\(V([A-Za-z0-9]+)\)`), "I[V${1}]"},
	{"node-number", regexp.MustCompile(`V\(([0-9]*)\)`), "V[${1}]"},
	{"node-name", regexp.MustCompile(`V\(([A-Za-z0-9]+)\)`), "U[${1}]"},
	{"current", regexp.MustCompile(`I([A-Za-z0-9]+)`), "I[${1}]"},
	{"resistor", regexp.MustCompile(`R([A-Za-z0-9]+)`), "R[${1}]"},
	{"capacitor", regexp.MustCompile(`C([A-Za-z0-9]+)`), "C[${1}]"},
	{"inductor", regexp.MustCompile(`L([A-Za-z0-9]+)`), "L[${1}]"},
}

// MaximaRules 返回 maxima 改写规则的副本，按应用顺序排列
func MaximaRules() []Rule {
	return append([]Rule(nil), maximaRules...)
}
