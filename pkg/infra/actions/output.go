package actions

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/upstreamci/relver/pkg/domain/model"
)

// OnActions reports whether the process runs inside a GitHub Actions job.
func OnActions() bool {
	return os.Getenv("GITHUB_ACTIONS") == "true"
}

// OutputSink appends the resolution to a GitHub Actions step output file in
// the key=value format GITHUB_OUTPUT expects.
type OutputSink struct {
	path string
}

// NewOutputSink creates a sink writing to the step output file at path.
func NewOutputSink(path string) *OutputSink {
	return &OutputSink{path: path}
}

// Write appends the version and is-for-release outputs. The file is opened in
// append mode because other steps share it.
func (s *OutputSink) Write(ctx context.Context, res *model.Resolution) error {
	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return goerr.Wrap(err, "failed to open step output file", goerr.V("path", s.path))
	}
	defer f.Close()

	if _, err := fmt.Fprintf(f, "version=%s\nis-for-release=%t\n", res.Version.String(), res.ForRelease); err != nil {
		return goerr.Wrap(err, "failed to write step outputs", goerr.V("path", s.path))
	}
	return nil
}

// Warning emits a workflow command that surfaces msg as a warning annotation
// on the run summary.
func Warning(w io.Writer, msg string) {
	fmt.Fprintf(w, "::warning::%s\n", escapeData(msg))
}

// Error emits a workflow command that surfaces msg as an error annotation.
func Error(w io.Writer, msg string) {
	fmt.Fprintf(w, "::error::%s\n", escapeData(msg))
}

// escapeData escapes the characters the workflow command parser treats
// specially in the data section.
func escapeData(s string) string {
	s = strings.ReplaceAll(s, "%", "%25")
	s = strings.ReplaceAll(s, "\r", "%0D")
	s = strings.ReplaceAll(s, "\n", "%0A")
	return s
}
