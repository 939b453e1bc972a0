package outputters

import (
	"fmt"
	"io"
	"os"

	"github.com/dotcommander/vendorsel/internal/config"
	"github.com/dotcommander/vendorsel/internal/evaluate"
	"github.com/dotcommander/vendorsel/internal/output"
	"github.com/dotcommander/vendorsel/internal/types"
)

// Formatter renders and writes one evaluation result.
type Formatter interface {
	Format(res *evaluate.Result) error
}

// Outputter handles output formatting
type Outputter struct {
	config *config.Config
	out    io.Writer
}

// NewOutputter creates a new Outputter writing to stdout unless the config
// names an output file.
func NewOutputter(config *config.Config) *Outputter {
	return &Outputter{config: config, out: os.Stdout}
}

// WithWriter redirects stdout output to w.
func (o *Outputter) WithWriter(w io.Writer) *Outputter {
	o.out = w
	return o
}

// Formatter returns the formatter for a report format.
func (o *Outputter) Formatter(format string) (Formatter, error) {
	switch format {
	case types.ReportMarkdown, "":
		return output.NewMarkdownFormatter(o.out, o.config.Output), nil
	case types.ReportJSON:
		return output.NewJSONFormatter(o.out, true, o.config.Output), nil
	case types.ReportYAML:
		return output.NewYAMLFormatter(o.out, o.config.Output), nil
	case types.ReportConsole:
		return output.NewConsoleFormatter(o.out, o.config.Verbose, o.config.Output), nil
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}

// Format formats the result using the given report format.
func (o *Outputter) Format(res *evaluate.Result, format string) error {
	f, err := o.Formatter(format)
	if err != nil {
		return err
	}
	return f.Format(res)
}
