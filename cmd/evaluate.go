package cmd

import (
	"fmt"
	"io"

	"github.com/dotcommander/vendorsel/internal/config"
	"github.com/dotcommander/vendorsel/internal/discovery"
	"github.com/dotcommander/vendorsel/internal/evaluate"
	"github.com/dotcommander/vendorsel/internal/greeting"
	"github.com/dotcommander/vendorsel/internal/logging"
	"github.com/dotcommander/vendorsel/internal/outputters"
	"github.com/dotcommander/vendorsel/internal/types"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var evaluateFlagKeys = map[string]string{
	"input-format": "inputFormat",
	"format":       "format",
	"output":       "output",
	"mode":         "mode",
	"greet":        "greet",
	"name":         "name",
	"time":         "time",
	"urgent":       "urgent",
}

var evaluateCmd = &cobra.Command{
	Use:   "evaluate [files|globs...]",
	Short: "Validate, score and rank supplier data",
	Long: `Evaluate reads supplier records from files or stdin, validates every record,
computes overall scores and writes the validation and ranking report.

Arguments may be file paths or doublestar globs (data/**/*.csv). With no
arguments, or "-", the input is read from stdin. The input format is taken
from --input-format, else from the file extension; stdin without the flag is
sniffed (a leading '{' means JSON).

In strict mode (default) the first invalid record aborts the run and no report
is written. Tolerant mode skips invalid records and lists them in the report.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runEvaluate(cmd, args); err != nil {
			fail(cmd, err)
		}
	},
}

func init() {
	f := evaluateCmd.Flags()
	f.StringP("input-format", "i", "", "Input format (csv|json); detected from the extension if empty")
	f.StringP("format", "f", types.ReportMarkdown, "Report format (markdown|json|yaml|console)")
	f.StringP("output", "o", "", "Write the report to a file instead of stdout")
	f.String("mode", types.ModeStrict, "Validation mode (strict|tolerant)")
	f.Bool("greet", false, "Print a greeting before the report")
	f.String("name", "", "Greet the user by name")
	f.String("time", "", "Local time (HH or HH:MM) used to pick the greeting")
	f.Bool("urgent", false, "Use the short urgent greeting")

	rootCmd.AddCommand(evaluateCmd)
}

func runEvaluate(cmd *cobra.Command, args []string) error {
	if err := bindFlags(cmd, evaluateFlagKeys); err != nil {
		return err
	}
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("error loading configuration: %w", err)
	}

	logger, err := logging.New(cfg.Verbose, cfg.Quiet)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	paths, err := discovery.Expand(args)
	if err != nil {
		return err
	}
	if cfg.Output != "" && len(paths) > 1 {
		return fmt.Errorf("--output needs a single input, got %d", len(paths))
	}

	// Every input is evaluated before anything is written, so a strict
	// failure in any input produces no report at all.
	results := make([]*evaluate.Result, 0, len(paths))
	for _, path := range paths {
		res, err := evaluateOne(cmd.InOrStdin(), path, cfg, logger)
		if err != nil {
			if len(paths) > 1 {
				return fmt.Errorf("%s: %w", path, err)
			}
			return err
		}
		results = append(results, res)
	}

	out := cmd.OutOrStdout()
	if wantsGreeting(cfg) && !cfg.Quiet {
		text, err := greeting.Greeting(greeting.Options{Name: cfg.Name, Time: cfg.Time, Urgent: cfg.Urgent})
		if err != nil {
			return err
		}
		fmt.Fprintln(out, text)
		fmt.Fprintln(out)
	}

	outputter := outputters.NewOutputter(cfg).WithWriter(out)
	for i, res := range results {
		if i > 0 {
			writeSeparator(out, cfg.Format)
		}
		if err := outputter.Format(res, cfg.Format); err != nil {
			return fmt.Errorf("error formatting output: %w", err)
		}
	}
	return nil
}

func evaluateOne(stdin io.Reader, path string, cfg *config.Config, logger *zap.Logger) (*evaluate.Result, error) {
	file, err := discovery.Load(path, cfg.InputFormat, stdin)
	if err != nil {
		return nil, err
	}
	logger.Debug("evaluating input", zap.String("source", file.Path), zap.String("format", file.Format))

	return evaluate.Evaluate(file.Contents, evaluate.Options{
		Format: file.Format,
		Mode:   cfg.Mode,
		Source: file.Path,
		Logger: logger,
	})
}

func wantsGreeting(cfg *config.Config) bool {
	return cfg.Greet || cfg.Urgent || cfg.Name != "" || cfg.Time != ""
}

func writeSeparator(w io.Writer, format string) {
	if format == types.ReportYAML {
		fmt.Fprintln(w, "---")
		return
	}
	fmt.Fprintln(w)
}
