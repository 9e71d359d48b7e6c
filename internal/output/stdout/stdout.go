package stdout

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/crimson-sun/logpie/internal/model"
	"github.com/crimson-sun/logpie/internal/output"
)

// Output writes JSON-encoded records to stdout.
type Output struct {
	enc   *json.Encoder
	local bool
}

// New creates a stdout Output. local selects local-zone timestamps; pretty
// enables indented JSON.
func New(local, pretty bool) *Output {
	return newWriter(os.Stdout, local, pretty)
}

func newWriter(w io.Writer, local, pretty bool) *Output {
	enc := json.NewEncoder(w)
	if pretty {
		enc.SetIndent("", "  ")
	}
	return &Output{enc: enc, local: local}
}

func (o *Output) Write(_ context.Context, record model.Record) error {
	if err := o.enc.Encode(output.FormatRecord(record, o.local)); err != nil {
		return fmt.Errorf("stdout output: %w", err)
	}
	return nil
}

func (o *Output) Close() error {
	return nil
}
