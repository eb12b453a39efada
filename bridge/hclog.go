package bridge

import (
	"github.com/hashicorp/go-hclog"

	"github.com/philipp01105/synclog/core"
	"github.com/philipp01105/synclog/logger"
)

// HCLogCallback returns a callback writing each message to h
func HCLogCallback(h hclog.Logger) logger.Callback {
	return func(msg core.Message) error {
		h.Log(hclogLevel(msg.Level), msg.Body,
			"level_name", msg.Level.String(),
			"timestamp", msg.Timestamp,
		)
		return nil
	}
}

func hclogLevel(level core.Level) hclog.Level {
	switch level {
	case core.TraceLevel:
		return hclog.Trace
	case core.InfoLevel:
		return hclog.Info
	case core.WarnLevel:
		return hclog.Warn
	case core.DebugLevel:
		return hclog.Debug
	default:
		return hclog.Error
	}
}
