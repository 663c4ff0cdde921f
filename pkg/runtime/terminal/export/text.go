package export

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/NotAShelf/ssa/pkg/models/domain"
	"github.com/fatih/color"
)

// TextReporter renders the colorized console report: header, the filtered
// service listing, then the system-wide averages.
type TextReporter struct {
	writer io.Writer
}

// NewTextReporter creates a console reporter writing to writer.
func NewTextReporter(writer io.Writer) *TextReporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &TextReporter{writer: writer}
}

func (r *TextReporter) Handle(analysis *domain.Analysis) error {
	var b strings.Builder

	header := color.New(color.FgCyan, color.Bold)
	fmt.Fprintf(&b, "%s\n\n", header.Sprint("# Systemd Security Analysis"))

	if line := hostLine(analysis.Host); line != "" {
		fmt.Fprintf(&b, "%s\n\n", line)
	}

	fmt.Fprintf(&b, "%s %d %s %s\n\n",
		header.Sprint("## Top"),
		len(analysis.Services),
		header.Sprint("services for predicate:"),
		predicateLabel(analysis.Filter.Predicate),
	)

	bullet := color.New(color.FgGreen)
	arrow := color.New(color.FgBlue)
	unitStyle := color.New(color.Bold)
	for _, svc := range analysis.Services {
		pc := predicateColor(svc.Predicate)
		line := fmt.Sprintf("%s %s %s %s %s",
			bullet.Sprint("•"),
			unitStyle.Sprint(svc.Unit),
			arrow.Sprint("->"),
			pc.Sprint(svc.Predicate.String()),
			pc.Sprintf("(%.2f)", svc.Exposure),
		)
		if svc.Happy != "" {
			line += " " + svc.Happy
		}
		b.WriteString(line + "\n")
	}

	fmt.Fprintf(&b, "\nAverage Exposure: %s | Average Happiness: %s\n",
		formatMean(analysis.Stats.MeanExposure, analysis.Stats.Count),
		formatMean(analysis.Stats.MeanHappiness, analysis.Stats.Count),
	)

	if _, err := io.WriteString(r.writer, b.String()); err != nil {
		return fmt.Errorf("failed to write text report: %w", err)
	}
	return nil
}

// formatMean renders an average, or N/A when there was nothing to average.
func formatMean(v float64, count int) string {
	if count == 0 {
		return "N/A"
	}
	return fmt.Sprintf("%.2f", v)
}

func predicateLabel(p *domain.Predicate) string {
	if p == nil {
		return "'N/A'"
	}
	return fmt.Sprintf("'%s'", predicateColor(*p).Sprint(p.String()))
}

func hostLine(host domain.HostInfo) string {
	if host.Hostname == "" && host.OS == "" {
		return ""
	}
	line := "Host: " + host.Hostname
	if host.OS != "" {
		line = fmt.Sprintf("%s (%s)", line, host.OS)
	}
	return line
}
