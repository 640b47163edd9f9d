package log

import (
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const projectName = "Foodgram"

var (
	L *zap.Logger

	// Level 运行期可调整的日志级别
	Level = zap.NewAtomicLevelAt(envLevel())
)

func init() {
	L = build(false)
}

// Setup 按运行环境重建全局日志：dev 环境输出彩色文本，其余环境输出 JSON。
// debug 为 true 时打开 debug 级别
func Setup(env string, debug bool) {
	if debug {
		Level.SetLevel(zap.DebugLevel)
	}
	L = build(env == "dev").With(zap.String("env", env))
}

func build(console bool) *zap.Logger {
	var encoder zapcore.Encoder
	if console {
		cfg := zap.NewDevelopmentEncoderConfig()
		cfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
		cfg.EncodeCaller = projectCaller
		encoder = zapcore.NewConsoleEncoder(cfg)
	} else {
		cfg := zap.NewProductionEncoderConfig()
		cfg.EncodeCaller = projectCaller
		cfg.EncodeTime = zapcore.ISO8601TimeEncoder
		encoder = zapcore.NewJSONEncoder(cfg)
	}
	core := zapcore.NewCore(encoder, zapcore.AddSync(os.Stdout), Level)
	return zap.New(core, zap.AddCaller(), zap.AddStacktrace(zap.ErrorLevel))
}

// projectCaller 调用位置从项目目录开始截取
func projectCaller(caller zapcore.EntryCaller, enc zapcore.PrimitiveArrayEncoder) {
	if index := strings.Index(caller.File, projectName); index != -1 {
		enc.AppendString(caller.File[index:] + ":" + strconv.Itoa(caller.Line))
		return
	}
	enc.AppendString(caller.TrimmedPath())
}

// envLevel 读取 LOG_LEVEL 环境变量，默认 info
func envLevel() zapcore.Level {
	lvl, err := zapcore.ParseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		return zap.InfoLevel
	}
	return lvl
}
