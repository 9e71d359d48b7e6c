// Package recorder provides a minimal named logger that writes records to an
// output. A disabled recorder drops records before they are built.
package recorder

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"

	"github.com/crimson-sun/logpie/internal/model"
	"github.com/crimson-sun/logpie/internal/output"
	"github.com/crimson-sun/logpie/pkg/logpie"
)

// Option configures a Recorder.
type Option func(*Recorder)

// WithClock sets the clock used to timestamp records. Default: logpie.UTCClock.
func WithClock(c logpie.Clock) Option {
	return func(r *Recorder) { r.clock = c }
}

// WithEnabled sets the initial state. Default: enabled.
func WithEnabled(enabled bool) Option {
	return func(r *Recorder) { r.enabled.Store(enabled) }
}

// Recorder is safe for concurrent use if its output is.
type Recorder struct {
	name    string
	out     output.Output
	clock   logpie.Clock
	enabled atomic.Bool
}

// New creates an enabled Recorder named name that writes to out.
func New(name string, out output.Output, opts ...Option) *Recorder {
	r := &Recorder{
		name:  name,
		out:   out,
		clock: logpie.UTCClock{},
	}
	r.enabled.Store(true)
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Name returns the recorder's name.
func (r *Recorder) Name() string { return r.name }

// IsEnabled reports whether records are currently written.
func (r *Recorder) IsEnabled() bool { return r.enabled.Load() }

// Enable turns recording on.
func (r *Recorder) Enable() { r.enabled.Store(true) }

// Disable turns recording off. Log calls become no-ops.
func (r *Recorder) Disable() { r.enabled.Store(false) }

// Log records msg at level. It returns the output's write error, if any.
func (r *Recorder) Log(ctx context.Context, level slog.Level, msg string) error {
	e := &entry{ctx: ctx, level: level, msg: msg}
	record(r, e)
	return e.err
}

// LogValue records msg at level, tagging the record with the type of value.
func (r *Recorder) LogValue(ctx context.Context, level slog.Level, msg string, value any) error {
	e := &entry{ctx: ctx, level: level, msg: msg, value: value, hasValue: true}
	record(r, e)
	return e.err
}

// Close closes the underlying output.
func (r *Recorder) Close() error {
	return r.out.Close()
}

type entry struct {
	ctx      context.Context
	level    slog.Level
	msg      string
	value    any
	hasValue bool
	err      error
}

var record = logpie.CheckState((*Recorder).record)

func (r *Recorder) record(e *entry) {
	rec := model.Record{
		Timestamp: r.clock.Now(),
		Level:     e.level.String(),
		Logger:    r.name,
		Message:   e.msg,
		Size:      logpie.SizeOf(e.msg),
	}
	if e.hasValue {
		rec.Type = logpie.TypeOf(e.value)
	}
	if err := r.out.Write(e.ctx, rec); err != nil {
		e.err = fmt.Errorf("recorder %s: %w", r.name, err)
	}
}
