package log

import (
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	logger *zap.Logger
	Logger *zap.SugaredLogger
	level  = zap.NewAtomicLevelAt(zap.WarnLevel)
)

func init() {
	Init(os.Stderr)
}

// Init rebuilds the logger on top of the given writer. Logs go to stderr by default so they
// never mix with the weather line on stdout.
func Init(w io.Writer) {
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.MessageKey = "msg"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.TimeKey = "@timestamp"
	encoderConfig.CallerKey = "logger_name"

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig),
		zapcore.AddSync(w),
		level,
	)

	logger = zap.New(core,
		zap.Fields(zap.String("logName", os.Getenv("APPLICATION_NAME"))),
		zap.AddCaller(),
		zap.AddCallerSkip(1))

	Logger = logger.Sugar()
}

// SetLevel changes the minimum enabled level of the logger.
func SetLevel(l zapcore.Level) {
	level.SetLevel(l)
}

// Level returns the minimum enabled level of the logger.
func Level() zapcore.Level {
	return level.Level()
}

// Sync flushes any buffered log entries.
func Sync() {
	_ = logger.Sync()
}

// Info logs a message at InfoLevel. The message includes any fields passed at the log site, as well as any fields accumulated on the logger.
func Info(message string, fields ...zap.Field) {
	logger.Info(message, fields...)
}

// Debug logs a message at DebugLevel. The message includes any fields passed at the log site, as well as any fields accumulated on the logger.
func Debug(message string, fields ...zap.Field) {
	logger.Debug(message, fields...)
}

// Warnw logs a message with some additional context at WarnLevel.
func Warnw(message string, keysAndValues ...interface{}) {
	Logger.Warnw(message, keysAndValues...)
}

// Error logs a message at ErrorLevel. The message includes any fields passed at the log site, as well as any fields accumulated on the logger.
func Error(message string, fields ...zap.Field) {
	logger.Error(message, fields...)
}
