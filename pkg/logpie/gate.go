package logpie

// Enabler is implemented by loggers that can be switched off.
type Enabler interface {
	IsEnabled() bool
}

// CheckState wraps a logger method so that its body only runs while the
// logger reports itself enabled. A disabled logger is a silent no-op, not
// an error.
//
//	var record = logpie.CheckState((*Logger).record)
func CheckState[L Enabler, A any](method func(L, A)) func(L, A) {
	return func(l L, args A) {
		if l.IsEnabled() {
			method(l, args)
		}
	}
}

// Gate calls fn only if e is enabled.
func Gate(e Enabler, fn func()) {
	if e.IsEnabled() {
		fn()
	}
}
