// Package errors 统一的错误处理。
//
// 重新导出 github.com/cockroachdb/errors，提供堆栈、包装和提示信息：
//
//	if err := load.LoadFile(path); err != nil {
//	    return errors.Wrap(err, "加载网表失败")
//	}
//	return errors.WithHint(err, "检查文件路径")
//
// 哨兵错误配合 errors.Is 使用。
package errors

import (
	crdb "github.com/cockroachdb/errors"
)

// 创建与包装
var (
	New          = crdb.New
	Newf         = crdb.Newf
	Wrap         = crdb.Wrap
	Wrapf        = crdb.Wrapf
	WithStack    = crdb.WithStack
	WithMessage  = crdb.WithMessage
	WithMessagef = crdb.WithMessagef
	Mark         = crdb.Mark
)

// 面向用户的提示
var (
	WithHint      = crdb.WithHint
	WithHintf     = crdb.WithHintf
	WithDetail    = crdb.WithDetail
	WithDetailf   = crdb.WithDetailf
	GetAllHints   = crdb.GetAllHints
	GetAllDetails = crdb.GetAllDetails
	FlattenHints  = crdb.FlattenHints
)

// 检查
var (
	Is        = crdb.Is
	IsAny     = crdb.IsAny
	As        = crdb.As
	Unwrap    = crdb.Unwrap
	UnwrapAll = crdb.UnwrapAll
)

// 哨兵错误
var (
	// ErrInputFile 网表文件不存在或无法读取
	ErrInputFile = New("无法读取网表文件")

	// ErrParse 网表语法错误
	ErrParse = New("网表解析失败")

	// ErrNoGround 电路中没有参考地节点
	ErrNoGround = New("未找到参考地节点")

	// ErrInvalidFormat 未知的输出格式
	ErrInvalidFormat = New("未知的输出格式")
)

// Parsef 生成带行号的解析错误
func Parsef(line int, format string, args ...any) error {
	return Mark(Wrapf(Newf(format, args...), "第 %d 行", line), ErrParse)
}
