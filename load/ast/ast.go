// Package ast 提供 SPICE 网表解析的抽象语法树（AST）功能。
// 它能够解析包含标题、元件定义、控制命令和注释的网表文本，
// 并构建相应的语法树结构供后续处理使用。
package ast

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"symboleq/errors"
)

// 常量定义 - 用于语法分析的关键字和符号
const (
	tokenComment       = "*"       // 整行注释
	tokenInlineComment = ";"       // 行内注释
	tokenContinue      = "+"       // 续行
	tokenControl       = "."       // 控制命令
	tokenTitle         = ".title"  // 标题命令
	tokenEnd           = ".end"    // 网表结束
	tokenSubckt        = ".subckt" // 子电路开始
	tokenEnds          = ".ends"   // 子电路结束
)

// ElementNode 表示元件定义节点
type ElementNode struct {
	Name   string   // 元件名称，如 "R1"
	Fields []string // 名称之后的字段（引脚和值）
	Line   int      // 行号
}

// ControlNode 表示控制命令节点
type ControlNode struct {
	Command string   // 命令，如 ".tran"
	Args    []string // 参数
	Line    int      // 行号
}

// CommentNode 表示注释节点
type CommentNode struct {
	Text string // 注释文本
	Line int    // 行号
}

// ParseTree 解析树
type ParseTree struct {
	Title        string         // 标题
	ElementNodes []*ElementNode // 元件列表
	ControlNodes []*ControlNode // 控制命令列表
	CommentNodes []*CommentNode // 注释列表
}

// String 解析摘要
func (parseTree *ParseTree) String() string {
	return fmt.Sprintf("标题 %q: %d 个元件, %d 个控制命令, %d 个注释",
		parseTree.Title, len(parseTree.ElementNodes), len(parseTree.ControlNodes), len(parseTree.CommentNodes))
}

// logicalLine 合并续行后的逻辑行
type logicalLine struct {
	text string
	line int
}

// NewParseTree 生成网表解析树
// 第一行总是标题
func NewParseTree(r io.Reader) (parseTree *ParseTree, err error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	parseTree = &ParseTree{}
	var (
		pending  *logicalLine
		inSubckt bool
		ended    bool
		lineNum  int
	)
	// 处理一个完整的逻辑行，遇到 .end 时设置 ended
	flush := func() error {
		if pending == nil {
			return nil
		}
		l := pending
		pending = nil
		if strings.HasPrefix(l.text, tokenControl) {
			control := parseControl(l)
			parseTree.ControlNodes = append(parseTree.ControlNodes, control)
			switch control.Command {
			case tokenEnd:
				ended = true
			case tokenTitle:
				parseTree.Title = strings.Join(control.Args, " ")
			case tokenSubckt:
				inSubckt = true
			case tokenEnds:
				if !inSubckt {
					return errors.Parsef(l.line, ".ends 没有对应的 .subckt")
				}
				inSubckt = false
			}
			return nil
		}
		// 子电路内部的元件不属于顶层电路
		if inSubckt {
			return nil
		}
		fields := Tokenize(l.text)
		if len(fields) == 0 {
			return nil
		}
		parseTree.ElementNodes = append(parseTree.ElementNodes, &ElementNode{
			Name:   fields[0],
			Fields: fields[1:],
			Line:   l.line,
		})
		return nil
	}
	for !ended && scanner.Scan() {
		lineNum++
		raw := scanner.Text()
		if lineNum == 1 {
			parseTree.Title = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(raw), tokenComment))
			continue
		}
		line := strings.TrimSpace(raw)
		// 处理注释
		if strings.HasPrefix(line, tokenComment) {
			parseTree.CommentNodes = append(parseTree.CommentNodes, &CommentNode{
				Text: strings.TrimSpace(line[1:]),
				Line: lineNum,
			})
			continue
		}
		if i := strings.Index(line, tokenInlineComment); i >= 0 {
			parseTree.CommentNodes = append(parseTree.CommentNodes, &CommentNode{
				Text: strings.TrimSpace(line[i+1:]),
				Line: lineNum,
			})
			line = strings.TrimSpace(line[:i])
		}
		if line == "" {
			continue
		}
		// 处理续行
		if strings.HasPrefix(line, tokenContinue) {
			if pending == nil {
				return nil, errors.Parsef(lineNum, "续行没有对应的上一行")
			}
			pending.text += " " + strings.TrimSpace(line[1:])
			continue
		}
		if err := flush(); err != nil {
			return nil, err
		}
		if ended {
			break
		}
		pending = &logicalLine{text: line, line: lineNum}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Mark(errors.Wrap(err, "读取网表时出错"), errors.ErrParse)
	}
	if err := flush(); err != nil {
		return nil, err
	}
	if inSubckt {
		return nil, errors.Parsef(lineNum, ".subckt 缺少 .ends")
	}
	return parseTree, nil
}

// parseControl 解析控制命令
func parseControl(l *logicalLine) *ControlNode {
	fields := Tokenize(l.text)
	return &ControlNode{
		Command: strings.ToLower(fields[0]),
		Args:    fields[1:],
		Line:    l.line,
	}
}

// Tokenize 把一行拆分为字段
func Tokenize(line string) []string {
	scanner := bufio.NewScanner(strings.NewReader(line))
	scanner.Split(SplitTokens)
	var fields []string
	for scanner.Scan() {
		fields = append(fields, scanner.Text())
	}
	return fields
}

// SplitTokens 分割标识符
// 空白和逗号为分隔符，括号内的内容保持为一个字段，如 "SIN(0 1 1k)"
func SplitTokens(data []byte, atEOF bool) (advance int, token []byte, err error) {
	start := 0
	for start < len(data) && isSeparator(data[start]) {
		start++
	}
	depth := 0
	for i := start; i < len(data); i++ {
		switch c := data[i]; {
		case c == '(':
			depth++
		case c == ')':
			if depth > 0 {
				depth--
			}
		case depth == 0 && isSeparator(c):
			return i + 1, data[start:i], nil
		}
	}
	if atEOF && len(data) > start {
		return len(data), data[start:], nil
	}
	return start, nil, nil
}

// isSeparator 字段分隔符
func isSeparator(c byte) bool {
	switch c {
	case ' ', '\t', '\r', '\n', ',':
		return true
	}
	return false
}
