package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/NotAShelf/ssa/pkg/models/domain"
	"github.com/NotAShelf/ssa/pkg/runtime/terminal/export"
	"github.com/NotAShelf/ssa/pkg/services/audit"
	"github.com/NotAShelf/ssa/pkg/services/config"
	"github.com/NotAShelf/ssa/pkg/services/hostinfo"
	"github.com/NotAShelf/ssa/pkg/services/sysd"
	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

type AnalyzeCmd struct {
	opts Options

	topN        int
	predicate   string
	okOnly      bool
	mediumOnly  bool
	exposedOnly bool
	unsafeOnly  bool
	debug       bool
	jsonOut     bool
	format      string
	output      string
	input       string
	noColor     bool
	timeout     time.Duration
	failOn      string
	configPath  string
	verbose     bool

	analyzeBin string
}

// NewAnalyzeCmd returns the analyze subcommand. The root command binds the
// same runner, so a bare `ssa` performs the analysis too.
func NewAnalyzeCmd(opts Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Capture and summarize the systemd security report",
	}
	BindAnalyze(cmd, opts)
	return cmd
}

// BindAnalyze registers the analysis flags and runner on cmd.
func BindAnalyze(cmd *cobra.Command, opts Options) {
	ac := &AnalyzeCmd{opts: opts}
	cmd.RunE = ac.run

	f := cmd.Flags()
	f.IntVarP(&ac.topN, "top-n", "t", 0, "number of top services to display (0 shows all, unranked)")
	f.StringVarP(&ac.predicate, "predicate", "p", "", "predicate by which to filter services (OK, MEDIUM, EXPOSED or UNSAFE)")
	f.BoolVar(&ac.okOnly, "ok", false, `only return services with the "OK" predicate`)
	f.BoolVar(&ac.mediumOnly, "medium", false, `only return services with the "MEDIUM" predicate`)
	f.BoolVar(&ac.exposedOnly, "exposed", false, `only return services with the "EXPOSED" predicate`)
	f.BoolVar(&ac.unsafeOnly, "unsafe", false, `only return services with the "UNSAFE" predicate`)
	f.BoolVar(&ac.debug, "debug", false, "print the raw json report instead of the analysis")
	f.BoolVar(&ac.jsonOut, "json", false, "output results in json format")
	f.StringVar(&ac.format, "format", "text", "output format: text or json")
	f.StringVarP(&ac.output, "output", "o", "", "write the report to a file instead of stdout")
	f.StringVarP(&ac.input, "input", "i", "", "read a captured report from a file instead of invoking systemd-analyze (- for stdin)")
	f.BoolVar(&ac.noColor, "no-color", false, "disable colored output")
	f.DurationVar(&ac.timeout, "timeout", 0, "timeout for invoking systemd-analyze")
	f.StringVar(&ac.failOn, "fail-on", "", "exit non-zero when any service is at or above this predicate")
	f.StringVar(&ac.configPath, "config", "", "path to the config file (default: .ssa.yaml in . or $HOME)")
	f.BoolVar(&ac.verbose, "verbose", false, "enable verbose logging")
}

func (ac *AnalyzeCmd) run(cmd *cobra.Command, _ []string) error {
	settings, err := config.Load(ac.configPath)
	if err != nil {
		return err
	}
	ac.applySettings(cmd, settings)

	if ac.debug && (ac.jsonOut || cmd.Flags().Changed("format")) {
		return fmt.Errorf("--debug is a raw echo mode and cannot be combined with --json or --format")
	}
	if ac.jsonOut {
		ac.format = "json"
	}
	switch ac.format {
	case "text", "json":
	default:
		return fmt.Errorf("unsupported format: %s (use text or json)", ac.format)
	}
	if ac.topN < 0 {
		return fmt.Errorf("top-n must not be negative, got %d", ac.topN)
	}
	predicate, err := ac.resolvePredicate()
	if err != nil {
		return err
	}
	failOn, err := ac.resolveFailOn()
	if err != nil {
		return err
	}

	logger := newLogger(ac.opts.ErrOutput, ac.verbose)
	ctx := logger.WithContext(cmd.Context())
	if ac.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, ac.timeout)
		defer cancel()
	}

	out, closeOut, err := ac.openOutput()
	if err != nil {
		return err
	}
	defer closeOut()
	ac.setupColor(out)

	data, err := ac.selectSource().Collect(ctx)
	if err != nil {
		return fmt.Errorf("failed to acquire security report: %w", err)
	}

	// debug short-circuits the pipeline: raw echo, nothing else
	if ac.debug {
		return export.NewRawReporter(out).Handle(data)
	}

	reports, err := audit.Parse(data)
	if err != nil {
		return err
	}
	logger.Debug().Int("services", len(reports)).Msg("parsed security report")

	subset := reports
	if predicate != nil {
		subset = audit.FilterByPredicate(reports, *predicate)
		if len(subset) == 0 {
			logger.Info().Stringer("predicate", *predicate).Msg("no services matched the filter")
		}
	}
	if ac.topN > 0 {
		subset = audit.TopN(subset, ac.topN)
	}

	analysis := &domain.Analysis{
		Stats:    audit.ComputeStats(reports),
		Services: subset,
		Total:    len(reports),
		Filter:   domain.FilterSpec{Predicate: predicate, TopN: ac.topN},
		Host:     hostinfo.Describe(),
	}

	if err := ac.selectReporter(out).Handle(analysis); err != nil {
		return err
	}

	if failOn != nil && anyAtOrAbove(reports, *failOn) {
		logger.Warn().Stringer("fail_on", *failOn).Msg("fail-on threshold met")
		return ExitCodeError{Code: 1}
	}
	return nil
}

// applySettings fills in flag values the user did not set explicitly from the
// file/environment-backed settings.
func (ac *AnalyzeCmd) applySettings(cmd *cobra.Command, settings config.Settings) {
	f := cmd.Flags()
	if !f.Changed("top-n") && settings.TopN > 0 {
		ac.topN = settings.TopN
	}
	if !f.Changed("predicate") && settings.Predicate != "" {
		ac.predicate = settings.Predicate
	}
	if !f.Changed("format") && settings.Format != "" && !ac.debug {
		ac.format = settings.Format
	}
	if !f.Changed("no-color") && settings.NoColor {
		ac.noColor = true
	}
	if !f.Changed("timeout") && settings.Timeout > 0 {
		ac.timeout = settings.Timeout
	}
	if !f.Changed("fail-on") && settings.FailOn != "" {
		ac.failOn = settings.FailOn
	}
	if !f.Changed("verbose") && settings.Verbose {
		ac.verbose = true
	}
	ac.analyzeBin = settings.AnalyzeBin
}

// resolvePredicate applies the shorthand precedence (--ok before --medium
// before --exposed before --unsafe), then the named --predicate value.
func (ac *AnalyzeCmd) resolvePredicate() (*domain.Predicate, error) {
	var p domain.Predicate
	switch {
	case ac.okOnly:
		p = domain.PredicateOK
	case ac.mediumOnly:
		p = domain.PredicateMedium
	case ac.exposedOnly:
		p = domain.PredicateExposed
	case ac.unsafeOnly:
		p = domain.PredicateUnsafe
	case ac.predicate != "":
		parsed, err := parsePredicateName(ac.predicate)
		if err != nil {
			return nil, err
		}
		p = parsed
	default:
		return nil, nil
	}
	return &p, nil
}

func (ac *AnalyzeCmd) resolveFailOn() (*domain.Predicate, error) {
	if ac.failOn == "" {
		return nil, nil
	}
	p, err := parsePredicateName(ac.failOn)
	if err != nil {
		return nil, fmt.Errorf("invalid fail-on threshold: %w", err)
	}
	return &p, nil
}

func (ac *AnalyzeCmd) selectSource() sysd.Source {
	if ac.input != "" {
		return sysd.FileSource{Path: ac.input}
	}
	return sysd.ExecSource{Bin: ac.analyzeBin}
}

func (ac *AnalyzeCmd) selectReporter(w io.Writer) export.Reporter {
	if ac.format == "json" {
		return export.NewJSONReporter(w, ac.opts.Version)
	}
	return export.NewTextReporter(w)
}

func (ac *AnalyzeCmd) openOutput() (io.Writer, func(), error) {
	if ac.output == "" {
		return ac.opts.Output, func() {}, nil
	}
	f, err := os.Create(ac.output)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create output file: %w", err)
	}
	return f, func() { _ = f.Close() }, nil
}

// setupColor disables escape codes for machine formats, files and
// non-terminal writers.
func (ac *AnalyzeCmd) setupColor(out io.Writer) {
	if ac.noColor || ac.format == "json" || ac.output != "" {
		color.NoColor = true
		return
	}
	f, ok := out.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		color.NoColor = true
	}
}

func newLogger(w io.Writer, verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: w}).Level(level).With().Timestamp().Logger()
}
