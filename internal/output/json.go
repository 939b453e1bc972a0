package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/dotcommander/vendorsel/internal/evaluate"
)

// JSONFormatter formats an evaluation as JSON.
type JSONFormatter struct {
	out        io.Writer
	indent     bool
	outputFile string
}

// NewJSONFormatter creates a new JSONFormatter.
func NewJSONFormatter(out io.Writer, indent bool, outputFile string) *JSONFormatter {
	return &JSONFormatter{out: out, indent: indent, outputFile: outputFile}
}

// Format renders res and writes it.
func (f *JSONFormatter) Format(res *evaluate.Result) error {
	text, err := f.Render(res)
	if err != nil {
		return err
	}
	return emit(f.out, f.outputFile, text)
}

// Render returns the JSON document followed by a newline.
func (f *JSONFormatter) Render(res *evaluate.Result) (string, error) {
	var (
		data []byte
		err  error
	)
	if f.indent {
		data, err = json.MarshalIndent(NewReport(res), "", "  ")
	} else {
		data, err = json.Marshal(NewReport(res))
	}
	if err != nil {
		return "", fmt.Errorf("error marshaling JSON: %w", err)
	}
	return string(data) + "\n", nil
}

// RenderJSON returns the indented JSON report.
func RenderJSON(res *evaluate.Result) (string, error) {
	return NewJSONFormatter(nil, true, "").Render(res)
}
