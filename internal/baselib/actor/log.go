package actor

import "context"

// Logger is the structured logging surface the runtime writes through.
// Call sites pass a context (reserved for trace-id propagation) and
// alternating key/value pairs, mirroring btclog/v2's "S"-suffixed
// structured logging idiom (DebugS, InfoS, ...). A real logger is wired
// in with UseLogger during process startup; until then all calls are
// no-ops.
type Logger interface {
	TraceS(ctx context.Context, msg string, keyvals ...interface{})
	DebugS(ctx context.Context, msg string, keyvals ...interface{})
	InfoS(ctx context.Context, msg string, keyvals ...interface{})
	WarnS(ctx context.Context, msg string, keyvals ...interface{})
	ErrorS(ctx context.Context, msg string, keyvals ...interface{})
}

// log is the package-wide logger, installed via UseLogger. It starts out
// disabled so the package is silent by default when embedded in a
// program that hasn't configured logging.
var log Logger = disabledLogger{}

// UseLogger installs l as the package-wide logger. Intended to be called
// once during process startup, before any Pool is created, the same way
// cmd/actorctl wires btclog into this package.
func UseLogger(l Logger) {
	if l == nil {
		log = disabledLogger{}
		return
	}
	log = l
}

type disabledLogger struct{}

func (disabledLogger) TraceS(context.Context, string, ...interface{}) {}
func (disabledLogger) DebugS(context.Context, string, ...interface{}) {}
func (disabledLogger) InfoS(context.Context, string, ...interface{})  {}
func (disabledLogger) WarnS(context.Context, string, ...interface{})  {}
func (disabledLogger) ErrorS(context.Context, string, ...interface{}) {}
