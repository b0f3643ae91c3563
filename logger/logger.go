package logger

import (
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Logger 全局日志
	Logger *zap.SugaredLogger
	// DebugOutput 是否开启调试输出
	DebugOutput bool
)

func init() {
	// 未初始化前使用空日志，避免空指针
	Logger = zap.NewNop().Sugar()
}

// Initialize 初始化全局日志
// 调试模式写入 w，否则只把警告写到标准错误
func Initialize(w io.Writer, debug bool) {
	DebugOutput = debug
	level := zap.WarnLevel
	var sink io.Writer = os.Stderr
	if debug {
		level = zap.DebugLevel
		sink = w
	}
	Logger = zap.New(
		zapcore.NewCore(
			newEncoder(),
			zapcore.AddSync(sink),
			level,
		),
	).Sugar()
}

// newEncoder 控制台编码，不输出时间和调用位置
func newEncoder() zapcore.Encoder {
	config := zap.NewDevelopmentEncoderConfig()
	config.TimeKey = ""
	config.CallerKey = ""
	config.NameKey = ""
	config.StacktraceKey = ""
	config.EncodeLevel = zapcore.CapitalLevelEncoder
	return zapcore.NewConsoleEncoder(config)
}

// Cleanup 刷新缓存
func Cleanup() {
	if Logger != nil {
		_ = Logger.Sync()
	}
}

// Debugw 调试信息
func Debugw(msg string, keysAndValues ...any) {
	if Logger != nil {
		Logger.Debugw(msg, keysAndValues...)
	}
}

// Infow 普通信息
func Infow(msg string, keysAndValues ...any) {
	if Logger != nil {
		Logger.Infow(msg, keysAndValues...)
	}
}

// Warnw 警告信息
func Warnw(msg string, keysAndValues ...any) {
	if Logger != nil {
		Logger.Warnw(msg, keysAndValues...)
	}
}

// Errorw 错误信息
func Errorw(msg string, keysAndValues ...any) {
	if Logger != nil {
		Logger.Errorw(msg, keysAndValues...)
	}
}
