package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/fatih/color"
	"github.com/kolibri/clippy/internal/config"
	"github.com/kolibri/clippy/internal/logger"
	"github.com/kolibri/clippy/internal/types"
	"github.com/kolibri/clippy/pkg/clippy"
)

var pushWithRetry = clippy.PushWithRetry

type options struct {
	logLevel    string
	logFilename string
	retries     int
	retryDelay  time.Duration
	quiet       bool
	initConfig  bool
}

// newFlagSet builds the flag set with the -- style usage printer
func newFlagSet(out io.Writer, opts *options) *flag.FlagSet {
	fs := flag.NewFlagSet("clippy", flag.ContinueOnError)
	fs.SetOutput(out)
	fs.StringVar(&opts.logLevel, "log-level", types.DefaultLogLevel, "Set log level (debug|info|warn|error)")
	fs.StringVar(&opts.logFilename, "log-filename", "", "Log to file instead of stderr")
	fs.IntVar(&opts.retries, "retries", types.DefaultRetryAttempts, "Total push attempts when the clipboard is busy")
	fs.DurationVar(&opts.retryDelay, "retry-delay", types.DefaultRetryDelay, "Wait between push attempts")
	fs.BoolVar(&opts.quiet, "quiet", false, "Do not print the confirmation line")
	fs.BoolVar(&opts.initConfig, "init-config", false, "Write the effective settings to the config file and exit")

	fs.Usage = func() {
		printUsage(out)
		fmt.Fprintf(out, "\nOptions:\n")
		fs.VisitAll(func(f *flag.Flag) {
			fmt.Fprintf(out, "  --%s", f.Name)
			name, usage := flag.UnquoteUsage(f)
			if len(name) > 0 {
				fmt.Fprintf(out, " %s", name)
			}
			fmt.Fprintf(out, "\n    \t%s", usage)
			if f.DefValue != "" && f.DefValue != "false" {
				fmt.Fprintf(out, " (default %q)", f.DefValue)
			}
			fmt.Fprintf(out, "\n")
		})
	}
	return fs
}

func printUsage(out io.Writer) {
	fmt.Fprintln(out, `usage: clippy "<message>"`)
	fmt.Fprintln(out, "       pushes the message <message> onto the clipboard.")
}

// applyConfig fills cfg from the flags the user set explicitly
func applyConfig(fs *flag.FlagSet, opts *options, cfg *types.Config) {
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "log-level":
			cfg.LogLevel = opts.logLevel
		case "log-filename":
			cfg.LogFile = opts.logFilename
		case "retries":
			cfg.Retry.Attempts = opts.retries
		case "retry-delay":
			cfg.Retry.Delay = opts.retryDelay
		case "quiet":
			cfg.Quiet = opts.quiet
		}
	})
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	var opts options
	fs := newFlagSet(stderr, &opts)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	cfg, err := config.LoadOrDefault()
	if err != nil {
		logger.Error("Error loading config", err)
		return 1
	}
	applyConfig(fs, &opts, cfg)

	logger.SetLevel(cfg.GetLogLevel())
	if cfg.LogFile != "" {
		if err := logger.SetOutputFile(cfg.LogFile); err != nil {
			fmt.Fprintf(stderr, "Error setting log file: %v\n", err)
			return 1
		}
		defer logger.CloseLogFile()
	}

	if opts.initConfig {
		if err := config.SaveConfig(cfg); err != nil {
			logger.Error("Error saving config", err)
			return 1
		}
		if path, err := config.Path(); err == nil {
			fmt.Fprintf(stdout, "wrote %s\n", path)
		}
		return 0
	}

	if fs.NArg() == 0 {
		printUsage(stdout)
		return 0
	}

	message := fs.Arg(0)
	retry := cfg.GetRetryConfig()
	res := pushWithRetry(ctx, message, clippy.RetryPolicy{Attempts: retry.Attempts, Delay: retry.Delay})
	if !res.OK() {
		logger.Error("Failed to push message to the clipboard", res.Err())
		color.New(color.FgRed).Fprintf(stderr, "could not push to the clipboard: %s (last error %d)\n", res.Code, res.LastError)
		return 1
	}

	if !cfg.Quiet {
		color.New(color.FgGreen).Fprintf(stdout, "pushed %q to the clipboard.\n", message)
	}
	return 0
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}
