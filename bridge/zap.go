package bridge

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/philipp01105/synclog/core"
	"github.com/philipp01105/synclog/logger"
)

// ZapCallback returns a callback writing each message to z. The original
// level name and timestamp travel as fields.
func ZapCallback(z *zap.Logger) logger.Callback {
	return func(msg core.Message) error {
		ce := z.Check(zapLevel(msg.Level), msg.Body)
		if ce == nil {
			return nil
		}
		ce.Write(
			zap.String("level_name", msg.Level.String()),
			zap.String("timestamp", msg.Timestamp),
		)
		return nil
	}
}

func zapLevel(level core.Level) zapcore.Level {
	switch level {
	case core.TraceLevel, core.DebugLevel:
		return zapcore.DebugLevel
	case core.InfoLevel:
		return zapcore.InfoLevel
	case core.WarnLevel:
		return zapcore.WarnLevel
	default:
		// ERROR and ASSERT. zap's panic levels would alter control flow.
		return zapcore.ErrorLevel
	}
}
