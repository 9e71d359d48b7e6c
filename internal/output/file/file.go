package file

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/crimson-sun/logpie/internal/model"
	"github.com/crimson-sun/logpie/internal/output"
	"github.com/crimson-sun/logpie/pkg/logpie"
)

const (
	defaultBufSize = 64 * 1024 // 64KB
	maxBackups     = 10
)

// Option configures a file Output.
type Option func(*Output)

// WithMaxSize sets the file size (bytes) at which rotation triggers.
// 0 (default) disables rotation.
func WithMaxSize(bytes int64) Option {
	return func(o *Output) { o.maxSize = bytes }
}

// WithBufSize sets the bufio.Writer buffer size. Default: 64KB.
func WithBufSize(bytes int) Option {
	return func(o *Output) { o.bufSize = bytes }
}

// WithLocalTime writes timestamps in the local zone instead of UTC.
func WithLocalTime() Option {
	return func(o *Output) { o.local = true }
}

// Output appends NDJSON records to {dir}/{name} with buffered I/O and
// optional size-based rotation. The directory is created on demand.
type Output struct {
	w       *bufio.Writer
	f       *os.File
	mu      sync.Mutex
	dir     string
	name    string
	local   bool
	maxSize int64 // 0 = no rotation
	written int64
	bufSize int
	broken  error // set when a failed rotation left no open file
}

// folder is wrapped by logFolder, so every open sees an existing directory.
func (o *Output) folder() string {
	return o.dir
}

var logFolder = logpie.CheckTree((*Output).folder)

// New creates a file output writing to name inside dir.
func New(dir, name string, opts ...Option) (*Output, error) {
	o := &Output{
		dir:     dir,
		name:    name,
		bufSize: defaultBufSize,
	}
	for _, opt := range opts {
		opt(o)
	}
	if err := o.openFile(); err != nil {
		return nil, err
	}
	return o, nil
}

// Path returns the path of the active log file.
func (o *Output) Path() string {
	return filepath.Join(o.dir, o.name)
}

// Write JSON-encodes the record and appends it as a line to the file.
func (o *Output) Write(_ context.Context, record model.Record) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.broken != nil {
		return fmt.Errorf("file output: %w", o.broken)
	}

	data, err := json.Marshal(output.FormatRecord(record, o.local))
	if err != nil {
		return fmt.Errorf("file output: marshal: %w", err)
	}
	line := string(data) + "\n"

	if o.maxSize > 0 && o.written > 0 && o.written+int64(logpie.SizeOf(line)) > o.maxSize {
		if err := o.rotate(); err != nil {
			return fmt.Errorf("file output: rotate: %w", err)
		}
	}

	n, err := o.w.WriteString(line)
	o.written += int64(n)
	if err != nil {
		return fmt.Errorf("file output: write: %w", err)
	}
	return nil
}

// Close flushes the buffer and closes the file.
func (o *Output) Close() error {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.broken != nil {
		return fmt.Errorf("file output: %w", o.broken)
	}
	if err := o.w.Flush(); err != nil {
		o.f.Close()
		return fmt.Errorf("file output: flush: %w", err)
	}
	return o.f.Close()
}

// openFile makes sure the directory exists, then opens (or creates) the log
// file and wraps it in a bufio.Writer.
func (o *Output) openFile() error {
	dir, err := logFolder(o)
	if err != nil {
		return fmt.Errorf("file output: create dir %s: %w", o.dir, err)
	}
	path := filepath.Join(dir, o.name)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("file output: open %s: %w", path, err)
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return fmt.Errorf("file output: stat %s: %w", path, err)
	}
	o.f = f
	o.w = bufio.NewWriterSize(f, o.bufSize)
	o.written = info.Size()
	return nil
}

// rotate flushes, closes the current file, renames it to {path}.1
// (shifting existing rotated files), and opens a new file. If the rename
// fails the current file is reopened; if no file can be opened the output
// is marked broken.
func (o *Output) rotate() error {
	if err := o.w.Flush(); err != nil {
		return err
	}
	if err := o.f.Close(); err != nil {
		o.broken = fmt.Errorf("close before rotation: %w", err)
		return err
	}

	path := o.Path()
	for i := maxBackups - 1; i >= 1; i-- {
		from := fmt.Sprintf("%s.%d", path, i)
		to := fmt.Sprintf("%s.%d", path, i+1)
		os.Rename(from, to) // ignore errors — file may not exist
	}
	if err := os.Rename(path, path+".1"); err != nil {
		if rerr := o.openFile(); rerr != nil {
			o.broken = fmt.Errorf("reopen after failed rotation: %w", rerr)
			return errors.Join(err, rerr)
		}
		return err
	}
	slog.Debug("file output rotated", "path", path, "size", o.written)

	o.written = 0
	if err := o.openFile(); err != nil {
		o.broken = fmt.Errorf("open after rotation: %w", err)
		return err
	}
	return nil
}
