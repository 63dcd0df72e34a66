package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Environment variables consulted when the matching flag is not given
const (
	EnvSeqURL   = "CSVFILTER_SEQ_URL"
	EnvLogLevel = "CSVFILTER_LOG_LEVEL"
)

// Config holds the settings of one csvfilter invocation
type Config struct {
	File      string // path of the CSV file; empty means CSV text
	CSV       string // CSV text; used when File is empty
	FromStdin bool   // neither File nor CSV was given
	Selected  string // comma separated headers, empty selects all
	Filters   string // newline separated filter definitions
	SeqURL    string
	LogLevel  slog.Level
}

// filterList collects repeated -filter flags
type filterList []string

func (f *filterList) String() string {
	return strings.Join(*f, "\n")
}

func (f *filterList) Set(value string) error {
	*f = append(*f, value)
	return nil
}

// Load parses command line arguments (without the program name)
// getenv is used for environment fallbacks; nil means os.Getenv
func Load(args []string, getenv func(string) string, output io.Writer) (*Config, error) {
	if getenv == nil {
		getenv = os.Getenv
	}

	fs := flag.NewFlagSet("csvfilter", flag.ContinueOnError)
	fs.SetOutput(output)

	var (
		cfg      Config
		filters  filterList
		logLevel string
	)
	fs.StringVar(&cfg.File, "file", "", "Path of the CSV file to read (.lz4 files are decompressed)")
	csvText := fs.String("csv", "", "CSV text to process instead of a file")
	fs.StringVar(&cfg.Selected, "select", "", "Comma separated headers to keep (default all)")
	fs.Var(&filters, "filter", "Filter definition <header><op><value>, op one of = < > != <= >= (repeatable)")
	fs.StringVar(&cfg.SeqURL, "seq", getenv(EnvSeqURL), "Seq server URL for log shipping")
	fs.StringVar(&logLevel, "log-level", getenv(EnvLogLevel), "Log level: debug, info, warn or error (default warn)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}

	csvSet := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "csv" {
			csvSet = true
		}
	})
	if cfg.File != "" && csvSet {
		return nil, errors.New("-file and -csv are mutually exclusive")
	}
	cfg.CSV = *csvText
	cfg.FromStdin = cfg.File == "" && !csvSet
	cfg.Filters = filters.String()

	level, err := parseLevel(logLevel)
	if err != nil {
		return nil, err
	}
	cfg.LogLevel = level

	return &cfg, nil
}

func parseLevel(s string) (slog.Level, error) {
	if s == "" {
		return slog.LevelWarn, nil
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("invalid log level %q: %w", s, err)
	}
	return level, nil
}
