// Package bridge provides logger callbacks that forward every emitted
// message to another logging library.
//
// The callbacks receive the unformatted body, so the receiving library
// applies its own encoding:
//
//	z, _ := zap.NewProduction()
//	cfg := logger.NewConfig().AddCallback(bridge.ZapCallback(z))
//
// The forwarded logger must not write back into the synclog logger that
// owns the callback.
package bridge
