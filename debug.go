package mixcore

import "sync/atomic"

// debugLogFn holds the hook installed by SetDebugLog; nil means no-op.
var debugLogFn atomic.Value // func(format string, args ...any)

// SetDebugLog installs a logging hook consulted when a call is rejected
// for an invalid argument, resource exhaustion, or a format error. nil
// disables logging (the default); release deployments pay only an atomic
// load per rejected call.
func SetDebugLog(fn func(format string, args ...any)) {
	if fn == nil {
		debugLogFn.Store((func(format string, args ...any))(nil))
		return
	}
	debugLogFn.Store(fn)
}

func debugf(format string, args ...any) {
	fn, _ := debugLogFn.Load().(func(format string, args ...any))
	if fn != nil {
		fn(format, args...)
	}
}
