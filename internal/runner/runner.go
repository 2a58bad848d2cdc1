// Package runner orchestrates the parse -> lint -> correct -> output pipeline.
package runner

import (
	"context"
	"fmt"
	"io"
	"os"
	"runtime"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/donaldgifford/wordarray/internal/advisor"
	"github.com/donaldgifford/wordarray/internal/config"
	"github.com/donaldgifford/wordarray/internal/linter"
	"github.com/donaldgifford/wordarray/internal/parser"
	"github.com/donaldgifford/wordarray/internal/rules"
	"github.com/donaldgifford/wordarray/internal/rules/style"
)

// Exit codes.
const (
	ExitOK       = 0
	ExitOffenses = 1
	ExitError    = 2
)

const stdinName = "<stdin>"

// Options configures the runner behavior.
type Options struct {
	Files         []string
	Check         bool
	Diff          bool
	Write         bool
	AutoGenConfig bool
	ConfigPath    string
	Quiet         bool
	Verbose       bool
	// Jobs is the number of files inspected in parallel. Zero means one
	// per CPU.
	Jobs int

	// Advisor collects observations for --auto-gen-config. It is reset at
	// the start of every run; a fresh one is used when nil.
	Advisor *advisor.Advisor

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	Logger *zap.Logger
}

// result is the outcome of inspecting one input.
type result struct {
	path     string
	input    string
	output   string
	offenses []linter.Offense
	fixed    int
	err      error
}

// Run executes the lint pipeline and returns an exit code.
func Run(opts *Options) int {
	return RunContext(context.Background(), opts)
}

// RunContext is Run with a caller supplied context.
func RunContext(ctx context.Context, opts *Options) int {
	setDefaults(opts)
	log := opts.Logger

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		writeErr(opts.Stderr, "wordarray: %v\n", err)
		return ExitError
	}
	if shape := style.CompileShape(cfg.Rules.WordArray.WordRegex); shape.Err() != nil {
		log.Warn("word_regex does not compile; bracketed arrays will not be reported",
			zap.String("pattern", shape.Pattern()), zap.Error(shape.Err()))
	}

	adv := opts.Advisor
	adv.Reset()
	ruleSet := rules.New(adv)

	// stdin mode: no files given.
	if len(opts.Files) == 0 {
		return runStdin(ctx, opts, cfg, ruleSet)
	}

	paths, err := expandPaths(opts.Files, cfg.Exclude)
	if err != nil {
		writeErr(opts.Stderr, "wordarray: %v\n", err)
		return ExitError
	}
	log.Debug("inspecting files", zap.Int("files", len(paths)), zap.Int("jobs", opts.Jobs))

	results, err := inspectAll(ctx, paths, opts.Jobs, cfg, ruleSet)
	if err != nil {
		writeErr(opts.Stderr, "wordarray: %v\n", err)
		return ExitError
	}

	exitCode := ExitOK
	total := 0
	for _, res := range results {
		total += len(res.offenses)
		code := emitFile(opts, res)
		if code > exitCode {
			exitCode = code
		}
	}

	if opts.AutoGenConfig {
		return emitAutoGenConfig(opts, adv, total, exitCode)
	}
	return exitCode
}

func setDefaults(opts *Options) {
	if opts.Stdin == nil {
		opts.Stdin = os.Stdin
	}
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	if opts.Stderr == nil {
		opts.Stderr = os.Stderr
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Jobs <= 0 {
		opts.Jobs = runtime.NumCPU()
	}
	if opts.Advisor == nil {
		opts.Advisor = advisor.New()
	}
}

// inspectAll lints every path with up to jobs workers. Each worker owns a
// parser. Results are returned in input order; per-file failures are
// recorded on the result rather than aborting the run.
func inspectAll(ctx context.Context, paths []string, jobs int, cfg *config.Config, ruleSet []linter.Rule) ([]result, error) {
	results := make([]result, len(paths))
	jobs = min(jobs, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	next := make(chan int)

	g.Go(func() error {
		defer close(next)
		for i := range paths {
			select {
			case next <- i:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	})

	for range jobs {
		g.Go(func() error {
			p := parser.New()
			defer p.Close()
			for i := range next {
				results[i] = inspectFile(ctx, p, paths[i], cfg, ruleSet)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("inspecting files: %w", err)
	}
	return results, nil
}

func inspectFile(ctx context.Context, p *parser.Parser, path string, cfg *config.Config, ruleSet []linter.Rule) result {
	src, err := os.ReadFile(path)
	if err != nil {
		return result{path: path, err: err}
	}
	return inspect(ctx, p, path, src, cfg, ruleSet)
}

func inspect(ctx context.Context, p *parser.Parser, path string, src []byte, cfg *config.Config, ruleSet []linter.Rule) result {
	res := result{path: path, input: string(src), output: string(src)}

	f, err := p.Parse(ctx, path, src)
	if err != nil {
		res.err = err
		return res
	}
	res.offenses = linter.Run(f, cfg, ruleSet)
	res.output, res.fixed = linter.Apply(res.input, res.offenses)
	return res
}

func runStdin(ctx context.Context, opts *Options, cfg *config.Config, ruleSet []linter.Rule) int {
	src, err := io.ReadAll(opts.Stdin)
	if err != nil {
		writeErr(opts.Stderr, "wordarray: reading stdin: %v\n", err)
		return ExitError
	}

	p := parser.New()
	defer p.Close()
	res := inspect(ctx, p, "", src, cfg, ruleSet)
	res.path = stdinName

	if res.err != nil {
		writeErr(opts.Stderr, "wordarray: %v\n", res.err)
		return ExitError
	}

	if opts.AutoGenConfig {
		return emitAutoGenConfig(opts, opts.Advisor, len(res.offenses), ExitOK)
	}

	// Write mode on stdin prints the corrected source.
	if opts.Write {
		writeOut(opts.Stdout, res.output)
		return uncorrected(res)
	}
	return emitFile(opts, res)
}

// emitFile reports one result according to the output mode and returns
// its exit code.
func emitFile(opts *Options, res result) int {
	if res.err != nil {
		writeErr(opts.Stderr, "wordarray: %v\n", res.err)
		return ExitError
	}

	if opts.Verbose {
		writeErr(opts.Stderr, "%s\n", res.path)
	}
	opts.Logger.Debug("inspected file",
		zap.String("path", res.path),
		zap.Int("offenses", len(res.offenses)),
		zap.Int("correctable", res.fixed))

	switch {
	case opts.AutoGenConfig:
		return ExitOK

	case opts.Check:
		if len(res.offenses) > 0 {
			if !opts.Quiet {
				writeErr(opts.Stderr, "%s\n", res.path)
			}
			return ExitOffenses
		}
		return ExitOK

	case opts.Diff:
		d, err := unifiedDiff(res.path, res.input, res.output)
		if err != nil {
			writeErr(opts.Stderr, "wordarray: %v\n", err)
			return ExitError
		}
		if d != "" {
			writeOut(opts.Stdout, d)
			return ExitOffenses
		}
		return ExitOK

	case opts.Write:
		if res.input != res.output {
			if err := os.WriteFile(res.path, []byte(res.output), 0o644); err != nil {
				writeErr(opts.Stderr, "wordarray: writing %s: %v\n", res.path, err)
				return ExitError
			}
			if !opts.Quiet {
				writeErr(opts.Stderr, "%s: corrected %d offense(s)\n", res.path, res.fixed)
			}
		}
		return uncorrected(res)
	}

	if !opts.Quiet {
		for _, o := range res.offenses {
			writeOut(opts.Stdout, formatOffense(res.path, o))
		}
	}
	if len(res.offenses) > 0 {
		return ExitOffenses
	}
	return ExitOK
}

// uncorrected returns ExitOffenses when autocorrection left offenses
// behind.
func uncorrected(res result) int {
	if res.fixed < len(res.offenses) {
		return ExitOffenses
	}
	return ExitOK
}

func emitAutoGenConfig(opts *Options, adv *advisor.Advisor, offenses, exitCode int) int {
	if offenses == 0 {
		if !opts.Quiet {
			writeErr(opts.Stderr, "wordarray: no offenses, no configuration needed\n")
		}
		return exitCode
	}

	rec := adv.Recommend()
	opts.Logger.Debug("recommendation", zap.Stringer("config", rec), zap.Int("offenses", offenses))
	out, err := rec.Config(style.RuleName)
	if err != nil {
		writeErr(opts.Stderr, "wordarray: %v\n", err)
		return ExitError
	}
	writeOut(opts.Stdout, out)
	return exitCode
}

func formatOffense(path string, o linter.Offense) string {
	suffix := ""
	if o.Correctable {
		suffix = " [Correctable]"
	}
	return fmt.Sprintf("%s:%d:%d: %s: %s%s\n", path, o.Line, o.Column, o.Rule, o.Message, suffix)
}

// writeOut writes to stdout.
func writeOut(w io.Writer, s string) {
	fmt.Fprint(w, s)
}

// writeErr formats and writes to stderr.
func writeErr(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, format, args...)
}
