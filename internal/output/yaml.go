package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/dotcommander/vendorsel/internal/evaluate"
	"gopkg.in/yaml.v3"
)

// YAMLFormatter formats an evaluation as YAML.
type YAMLFormatter struct {
	out        io.Writer
	outputFile string
}

// NewYAMLFormatter creates a new YAMLFormatter.
func NewYAMLFormatter(out io.Writer, outputFile string) *YAMLFormatter {
	return &YAMLFormatter{out: out, outputFile: outputFile}
}

// Format renders res and writes it.
func (f *YAMLFormatter) Format(res *evaluate.Result) error {
	text, err := f.Render(res)
	if err != nil {
		return err
	}
	return emit(f.out, f.outputFile, text)
}

// Render returns the YAML document.
func (f *YAMLFormatter) Render(res *evaluate.Result) (string, error) {
	var b strings.Builder
	enc := yaml.NewEncoder(&b)
	enc.SetIndent(2)
	if err := enc.Encode(NewReport(res)); err != nil {
		return "", fmt.Errorf("error marshaling YAML: %w", err)
	}
	if err := enc.Close(); err != nil {
		return "", fmt.Errorf("error marshaling YAML: %w", err)
	}
	return b.String(), nil
}

// RenderYAML returns the YAML report.
func RenderYAML(res *evaluate.Result) (string, error) {
	return NewYAMLFormatter(nil, "").Render(res)
}
