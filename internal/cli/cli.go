package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/vk/framegraphgo/internal/app"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("framegraphgo", flag.ContinueOnError)
	flagSet.SetOutput(output)

	// Custom usage/help text function
	flagSet.Usage = func() {
		fmt.Fprint(output, `
FrameGraphGo - A declarative frame graph scheduler for render and compute passes.

Usage:
  framegraphgo [options] [FRAME_PATH]

Arguments:
  FRAME_PATH
    Path to a single frame file (.hcl, .yaml or .yml) or a directory of them.

Options:
`)
		flagSet.PrintDefaults()
	}

	frameFlag := flagSet.String("frame", "", "Path to the frame file or directory.")
	fFlag := flagSet.String("f", "", "Path to the frame file or directory (shorthand).")
	logFormatFlag := flagSet.String("log-format", "json", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	strategyFlag := flagSet.String("strategy", "kahn", "Topological sort strategy. Options: 'kahn' or 'dfs'.")
	dryRunFlag := flagSet.Bool("dry-run", false, "Resolve and print the execution order without running passes.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	path := ""
	if *frameFlag != "" {
		path = *frameFlag
	} else if *fFlag != "" {
		path = *fFlag
	} else if flagSet.NArg() > 0 {
		path = flagSet.Arg(0)
	}
	slog.Debug("Frame path determined.", "path", path)

	if path == "" {
		slog.Debug("No frame path provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}

	strategy := strings.ToLower(*strategyFlag)
	if strategy != "kahn" && strategy != "dfs" {
		return nil, false, &ExitError{Code: 2, Message: "invalid strategy: must be 'kahn' or 'dfs'"}
	}
	slog.Debug("CLI parameter validation complete.")

	config, err := app.NewConfig(app.Config{
		FramePath: path,
		LogFormat: logFormat,
		LogLevel:  logLevel,
		Strategy:  strategy,
		DryRun:    *dryRunFlag,
	})

	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}
