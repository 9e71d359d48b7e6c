// Package logpie provides the small helpers shared by logpie loggers and
// handlers: timestamps, type names, UTF-8 byte sizes, race-tolerant
// directory creation, and two wrappers that gate a method on the logger
// being enabled or materialize the directory a method returns.
//
// Quick start:
//
//	type handler struct{ root string }
//
//	func (h *handler) folder() string { return filepath.Join(h.root, "logs") }
//
//	var handlerFolder = logpie.CheckTree((*handler).folder)
//
//	dir, err := handlerFolder(h) // dir exists on disk when err == nil
//
// Nothing in this package logs or retries. Errors are returned to the caller.
package logpie
