package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Init 初始化全局 zap 日志器，之后统一通过 zap.L() 使用
func Init() *zap.Logger {
	cfg := zap.NewProductionConfig()
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	l, err := cfg.Build()
	if err != nil {
		// 构建失败时退回 Nop，避免影响启动
		l = zap.NewNop()
	}
	zap.ReplaceGlobals(l)
	return l
}
