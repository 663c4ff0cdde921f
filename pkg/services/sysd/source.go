package sysd

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// DefaultBin is the analyzer binary ExecSource invokes when none is configured.
const DefaultBin = "systemd-analyze"

// securityArgs is the fixed argument set for the machine-readable overview
// report.
var securityArgs = []string{"security", "--json=short", "--no-pager"}

// Source yields one raw security report document per Collect call.
type Source interface {
	Collect(ctx context.Context) ([]byte, error)
}

// InvocationError reports a failed run of the external analyzer. Stderr holds
// the tail of the process error output when any was produced.
type InvocationError struct {
	Bin    string
	Stderr string
	Err    error
}

func (e *InvocationError) Error() string {
	msg := fmt.Sprintf("failed to run %s: %v", e.Bin, e.Err)
	if e.Stderr != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Stderr)
	}
	return msg
}

func (e *InvocationError) Unwrap() error {
	return e.Err
}

// ExecSource captures the report by invoking systemd-analyze on the local
// machine. The caller's context bounds the run.
type ExecSource struct {
	Bin string
}

func (s ExecSource) Collect(ctx context.Context) ([]byte, error) {
	logger := zerolog.Ctx(ctx)

	bin := s.Bin
	if bin == "" {
		bin = DefaultBin
	}

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, bin, securityArgs...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	start := time.Now()
	if err := cmd.Run(); err != nil {
		return nil, &InvocationError{Bin: bin, Stderr: stderrTail(stderr.String()), Err: err}
	}

	logger.Debug().
		Str("bin", bin).
		Dur("took", time.Since(start)).
		Int("bytes", stdout.Len()).
		Msg("captured security report")

	return stdout.Bytes(), nil
}

// stderrTail keeps the last few lines of process error output so invocation
// errors stay readable.
func stderrTail(s string) string {
	const maxLines = 5
	lines := strings.Split(strings.TrimSpace(s), "\n")
	if len(lines) > maxLines {
		lines = lines[len(lines)-maxLines:]
	}
	return strings.Join(lines, "\n")
}

// FileSource reads a previously captured report from Path, or from In when
// Path is "-". In defaults to stdin.
type FileSource struct {
	Path string
	In   io.Reader
}

func (s FileSource) Collect(ctx context.Context) ([]byte, error) {
	logger := zerolog.Ctx(ctx)

	if s.Path == "-" {
		in := s.In
		if in == nil {
			in = os.Stdin
		}
		data, err := io.ReadAll(in)
		if err != nil {
			return nil, fmt.Errorf("failed to read report from stdin: %w", err)
		}
		logger.Debug().Int("bytes", len(data)).Msg("read security report from stdin")
		return data, nil
	}

	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read report file: %w", err)
	}
	logger.Debug().Str("path", s.Path).Int("bytes", len(data)).Msg("read security report file")
	return data, nil
}
