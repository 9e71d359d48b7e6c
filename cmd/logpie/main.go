package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/crimson-sun/logpie/internal/config"
	"github.com/crimson-sun/logpie/internal/logging"
	"github.com/crimson-sun/logpie/internal/output"
	"github.com/crimson-sun/logpie/internal/output/file"
	"github.com/crimson-sun/logpie/internal/output/multi"
	"github.com/crimson-sun/logpie/internal/output/stdout"
	"github.com/crimson-sun/logpie/internal/recorder"
	"github.com/crimson-sun/logpie/pkg/logpie"
)

const usage = `usage: logpie <command> [args]

commands:
  now [-utc]                 print the current time (local by default)
  size <text>...             print UTF-8 byte size and character count
  mkdirs <path>...           create directory trees
  log [-level info] <msg>    record a message to the configured outputs
`

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "logpie: %v\n", err)
		os.Exit(1)
	}
	logging.Init(cfg.Output.Stdout, logging.ParseLevel(cfg.Log.Level), isLocal(cfg.Output.Timezone))

	os.Exit(run(context.Background(), cfg, os.Args[1:], os.Stdout, os.Stderr))
}

func run(ctx context.Context, cfg config.Config, args []string, w, errw io.Writer) int {
	if len(args) == 0 {
		fmt.Fprint(errw, usage)
		return 2
	}

	var err error
	switch args[0] {
	case "now":
		err = runNow(args[1:], w)
	case "size":
		err = runSize(args[1:], w)
	case "mkdirs":
		err = runMkdirs(args[1:])
	case "log":
		err = runLog(ctx, cfg, args[1:])
	default:
		fmt.Fprintf(errw, "logpie: unknown command %q\n%s", args[0], usage)
		return 2
	}
	if err != nil {
		fmt.Fprintf(errw, "logpie %s: %v\n", args[0], err)
		return 1
	}
	return 0
}

func runNow(args []string, w io.Writer) error {
	fs := flag.NewFlagSet("now", flag.ContinueOnError)
	utc := fs.Bool("utc", false, "print UTC instead of local time")
	if err := fs.Parse(args); err != nil {
		return err
	}

	now := logpie.Local()
	if *utc {
		now = logpie.UTC()
	}
	fmt.Fprintln(w, now.Format(time.RFC3339Nano))
	return nil
}

func runSize(args []string, w io.Writer) error {
	for _, s := range args {
		fmt.Fprintf(w, "%d\t%d\t%s\n", logpie.SizeOf(s), utf8.RuneCountInString(s), s)
	}
	return nil
}

func runMkdirs(args []string) error {
	for _, path := range args {
		if err := logpie.MakeDirs(path); err != nil {
			return err
		}
		slog.Debug("directory ready", "path", path)
	}
	return nil
}

func runLog(ctx context.Context, cfg config.Config, args []string) (err error) {
	fs := flag.NewFlagSet("log", flag.ContinueOnError)
	level := fs.String("level", "info", "record level (debug, info, warn, error)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() == 0 {
		return fmt.Errorf("missing message")
	}
	if !cfg.Recorder.Enabled {
		slog.Debug("recorder disabled, message dropped", "recorder", cfg.Recorder.Name)
		return nil
	}

	out, err := buildOutput(cfg)
	if err != nil {
		return err
	}
	rec := recorder.New(cfg.Recorder.Name, out,
		recorder.WithClock(logpie.ClockFor(cfg.Output.Timezone)),
	)
	// Buffered write errors only surface when the file output flushes.
	defer func() { err = errors.Join(err, rec.Close()) }()

	return rec.Log(ctx, logging.ParseLevel(*level), strings.Join(fs.Args(), " "))
}

func buildOutput(cfg config.Config) (output.Output, error) {
	var opts []file.Option
	if cfg.Output.MaxSize > 0 {
		opts = append(opts, file.WithMaxSize(cfg.Output.MaxSize))
	}
	local := isLocal(cfg.Output.Timezone)
	if local {
		opts = append(opts, file.WithLocalTime())
	}

	f, err := file.New(cfg.Output.Dir, cfg.Output.File, opts...)
	if err != nil {
		return nil, err
	}
	echo := output.Gated(output.Toggle(cfg.Output.Stdout), stdout.New(local, false))
	return multi.New(f, echo), nil
}

func isLocal(zone string) bool {
	_, ok := logpie.ClockFor(zone).(logpie.LocalClock)
	return ok
}
