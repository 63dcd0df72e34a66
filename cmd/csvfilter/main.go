package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/leengari/csvfilter/internal/config"
	"github.com/leengari/csvfilter/internal/logging"
	"github.com/leengari/csvfilter/internal/processor"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr, os.Getenv)
	stop()
	os.Exit(code)
}

// run executes one csvfilter invocation and returns the process exit code
// The CSV result goes to stdout; diagnostics and logs go to stderr
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer, getenv func(string) string) int {
	cfg, err := config.Load(args, getenv, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintln(stderr, err)
		return 2
	}

	logger, closeFn := logging.SetupLogger(logging.Options{
		Level:  cfg.LogLevel,
		Output: stderr,
		SeqURL: cfg.SeqURL,
	})
	defer closeFn()
	slog.SetDefault(logger)

	p := processor.New(
		processor.WithLogger(logger),
		processor.WithObserver(processor.NewLoggingObserver(logger)),
	)

	switch {
	case cfg.File != "":
		err = p.ProcessFile(ctx, stdout, cfg.File, cfg.Selected, cfg.Filters)
	case cfg.FromStdin:
		var input []byte
		input, err = io.ReadAll(stdin)
		if err != nil {
			err = fmt.Errorf("failed to read stdin: %w", err)
			break
		}
		err = p.ProcessText(ctx, stdout, string(input), cfg.Selected, cfg.Filters)
	default:
		err = p.ProcessText(ctx, stdout, cfg.CSV, cfg.Selected, cfg.Filters)
	}

	if err != nil {
		if !processor.IsUserError(err) {
			logger.Error("csv processing failed", "error", err)
		}
		fmt.Fprintln(stderr, err)
		return 1
	}
	return 0
}
