package output

import (
	"context"

	"github.com/crimson-sun/logpie/internal/model"
)

// Output defines the interface for log record destinations.
type Output interface {
	Write(ctx context.Context, record model.Record) error
	Close() error
}
