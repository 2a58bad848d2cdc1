// Package main is the entry point for wordarray.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	_ "github.com/donaldgifford/wordarray/internal/rules" // Register rules via init().
	"github.com/donaldgifford/wordarray/internal/runner"
)

// Build-time variables set via ldflags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	// A missing .env file is not an error.
	_ = godotenv.Load()

	os.Exit(execute(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// execute runs the root command with args and returns the process exit
// code.
func execute(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	code := runner.ExitOK
	cmd := newRootCmd(&code, stdin, stdout, stderr)
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(stderr, "wordarray: %v\n", err)
		return runner.ExitError
	}
	return code
}

func newRootCmd(code *int, stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	opts := &runner.Options{}

	cmd := &cobra.Command{
		Use:   "wordarray [flags] [paths...]",
		Short: "Enforce %w / %W word arrays in Ruby source",
		Long: `wordarray reports Ruby array literals made only of simple words that are
not written in the configured style, and can rewrite them in place.

Directories are searched for *.rb files. With no paths, reads from stdin.`,
		Version:       fmt.Sprintf("%s (%s) %s", version, commit, date),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger(opts.Verbose)
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			defer func() { _ = logger.Sync() }()

			opts.Files = args
			opts.Stdin = stdin
			opts.Stdout = stdout
			opts.Stderr = stderr
			opts.Logger = logger

			*code = runner.RunContext(cmd.Context(), opts)
			return nil
		},
	}
	cmd.SetVersionTemplate("wordarray {{.Version}}\n")
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	f := cmd.Flags()
	f.BoolVar(&opts.Check, "check", false, "exit 1 if any file has offenses, listing those files")
	f.BoolVar(&opts.Diff, "diff", false, "print unified diff of corrections")
	f.BoolVarP(&opts.Write, "write", "w", false, "write corrections to files (stdin: print corrected source)")
	f.BoolVar(&opts.AutoGenConfig, "auto-gen-config", false, "print a config that silences the current offenses")
	f.StringVar(&opts.ConfigPath, "config", "", "path to config file")
	f.IntVarP(&opts.Jobs, "jobs", "j", 0, "files inspected in parallel (default: number of CPUs)")
	f.BoolVarP(&opts.Quiet, "quiet", "q", false, "suppress informational output")
	f.BoolVarP(&opts.Verbose, "verbose", "v", false, "print files as they are processed and enable debug logs")
	cmd.MarkFlagsMutuallyExclusive("check", "diff", "write", "auto-gen-config")

	return cmd
}

func newLogger(verbose bool) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	if verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return config.Build()
}
