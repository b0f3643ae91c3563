package load

import (
	"io"
	"os"
	"strings"

	"symboleq/errors"
	"symboleq/load/ast"
	"symboleq/logger"
	"symboleq/types"
	"symboleq/utils"
)

// LoadFile 从文件加载网表。
// 文件不存在或不可读时在解析前返回 errors.ErrInputFile。
func LoadFile(path string) (*types.Netlist, error) {
	info, err := os.Stat(path)
	if err == nil && info.IsDir() {
		err = errors.Newf("%s 是目录", path)
	}
	if err != nil {
		return nil, inputError(err, path)
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, inputError(err, path)
	}
	defer file.Close()
	return LoadReader(file)
}

// inputError 标记为输入错误并附加提示
func inputError(err error, path string) error {
	err = errors.Mark(errors.Wrapf(err, "网表文件 %s", path), errors.ErrInputFile)
	return errors.WithHint(err, "检查网表文件路径是否存在且可读")
}

// LoadString 从字符串加载网表。
func LoadString(s string) (*types.Netlist, error) {
	return LoadReader(strings.NewReader(s))
}

// LoadReader 加载网表。
func LoadReader(r io.Reader) (*types.Netlist, error) {
	// 解析网表
	parseTree, err := ast.NewParseTree(r)
	if err != nil {
		return nil, err
	}
	logger.Debugw("网表解析完成", "summary", parseTree.String())

	netlist := &types.Netlist{Title: parseTree.Title}
	names := map[string]int{} // 元件名称 -> 首次定义行号
	for _, elemNode := range parseTree.ElementNodes {
		element, err := createElementFromAST(elemNode)
		if err != nil {
			return nil, err
		}
		if element == nil {
			continue
		}
		// SPICE 名称不区分大小写
		key := strings.ToUpper(element.Name)
		if line, ok := names[key]; ok {
			return nil, errors.Parsef(elemNode.Line, "元件 '%s' 重复定义，首次定义于第 %d 行", element.Name, line)
		}
		names[key] = elemNode.Line
		netlist.Elements = append(netlist.Elements, element)
	}
	return netlist, nil
}

// createElementFromAST 根据AST元素节点创建元件
// 没有节点引脚的元件（如互感 K）返回 nil
func createElementFromAST(elemNode *ast.ElementNode) (*types.Element, error) {
	netlist := utils.NetList(append([]string{elemNode.Name}, elemNode.Fields...))
	prefix, _ := netlist.SeparationPrick(0)
	pinNum := types.GetPostCount(prefix, len(elemNode.Fields))
	if pinNum == 0 {
		logger.Warnw("元件没有节点引脚，已跳过", "element", elemNode.Name, "line", elemNode.Line)
		return nil, nil
	}
	// 检查引脚数量是否足够
	if len(elemNode.Fields) < pinNum {
		return nil, errors.Parsef(elemNode.Line, "元件 '%s' 引脚数量不足。需要 %d，得到 %d",
			elemNode.Name, pinNum, len(elemNode.Fields))
	}
	t := types.GetNameType(prefix)
	if t == types.TypeUnknown {
		logger.Debugw("未识别的元件类型", "element", elemNode.Name, "prefix", prefix, "line", elemNode.Line)
	}
	return &types.Element{
		Name:  elemNode.Name,
		Type:  t,
		Pins:  append([]string(nil), netlist.Slice(1, 1+pinNum)...),
		Value: netlist.Slice(1+pinNum, len(netlist)).Join(),
		Line:  elemNode.Line,
	}, nil
}
