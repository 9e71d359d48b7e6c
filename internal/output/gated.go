package output

import (
	"context"

	"github.com/crimson-sun/logpie/internal/model"
	"github.com/crimson-sun/logpie/pkg/logpie"
)

// Gated wraps an Output so that writes are silently dropped while e reports
// disabled. Close always reaches the wrapped output.
func Gated(e logpie.Enabler, out Output) Output {
	return &gated{enabler: e, out: out}
}

type gated struct {
	enabler logpie.Enabler
	out     Output
}

func (g *gated) Write(ctx context.Context, record model.Record) error {
	var err error
	logpie.Gate(g.enabler, func() {
		err = g.out.Write(ctx, record)
	})
	return err
}

func (g *gated) Close() error {
	return g.out.Close()
}

// Toggle is an Enabler fixed at construction time.
type Toggle bool

// IsEnabled returns the toggle value.
func (t Toggle) IsEnabled() bool { return bool(t) }
