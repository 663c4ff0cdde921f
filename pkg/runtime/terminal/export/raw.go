package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

// RawReporter echoes the captured report document for inspection. It is the
// debug presentation mode: it never aggregates, filters or ranks, it only
// validates that the payload is JSON and re-indents it.
type RawReporter struct {
	writer io.Writer
}

// NewRawReporter creates a raw-echo reporter writing to writer.
func NewRawReporter(writer io.Writer) *RawReporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &RawReporter{writer: writer}
}

func (r *RawReporter) Handle(data []byte) error {
	var buf bytes.Buffer
	if err := json.Indent(&buf, data, "", "  "); err != nil {
		return fmt.Errorf("failed to format raw report: %w", err)
	}

	header := color.New(color.FgYellow, color.Bold)
	body := color.New(color.FgGreen)
	if _, err := fmt.Fprintf(r.writer, "%s\n%s\n", header.Sprint("Raw JSON output:"), body.Sprint(buf.String())); err != nil {
		return fmt.Errorf("failed to write raw report: %w", err)
	}
	return nil
}
