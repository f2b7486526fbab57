// Command vecdemo demonstrates the geometry vector types.
//
// Usage:
//
//	vecdemo [flags] demo
//	vecdemo [flags] eval <op> <a> [b]
//
// Vectors are written as comma-separated components, e.g. "1,2,3".
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/hupe1980/geometry"
	"github.com/hupe1980/geometry/internal/logging"
)

type config struct {
	logFormat string
	logLevel  string
	separator string
	precision int
}

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "vecdemo:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	var cfg config

	fs := flag.NewFlagSet("vecdemo", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&cfg.logFormat, "log-format", "text", "log format: text or json")
	fs.StringVar(&cfg.logLevel, "log-level", "info", "log level: debug, info, warn, error or off")
	fs.StringVar(&cfg.separator, "sep", ";", "separator between printed components")
	fs.IntVar(&cfg.precision, "prec", -1, "digits after the decimal point (-1 for shortest)")
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "Usage: vecdemo [flags] demo | eval <op> <a> [b]")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	logger, err := newLogger(cfg, stderr)
	if err != nil {
		return err
	}

	rest := fs.Args()
	if len(rest) == 0 {
		rest = []string{"demo"}
	}

	switch rest[0] {
	case "demo":
		runDemo(stdout)
		return nil
	case "eval":
		if len(rest) < 3 {
			return fmt.Errorf("eval: %w", ErrMissingOperand)
		}

		res, err := evaluate(ctx, logger, rest[1], rest[2:], cfg)
		if err != nil {
			return fmt.Errorf("eval %s: %w", rest[1], err)
		}

		fmt.Fprintln(stdout, res)

		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownCommand, rest[0])
	}
}

func newLogger(cfg config, w io.Writer) (*logging.Logger, error) {
	if cfg.logLevel == "off" {
		return logging.NoopLogger(), nil
	}

	level, err := logging.ParseLevel(cfg.logLevel)
	if err != nil {
		return nil, err
	}

	switch cfg.logFormat {
	case "text":
		return logging.NewTextLogger(w, level), nil
	case "json":
		return logging.NewJSONLogger(w, level), nil
	default:
		return nil, fmt.Errorf("unknown log format %q", cfg.logFormat)
	}
}

func (c config) verb() string {
	if c.precision < 0 {
		return "%v"
	}

	return fmt.Sprintf("%%.%df", c.precision)
}

func (c config) formatOptions() []geometry.FormatOption {
	return []geometry.FormatOption{
		geometry.WithSeparator(c.separator),
		geometry.WithVerb(c.verb()),
	}
}
