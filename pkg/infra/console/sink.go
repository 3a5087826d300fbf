package console

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/m-mizutani/goerr/v2"
	"github.com/upstreamci/relver/pkg/domain/model"
)

// Sink renders the resolution on a stream, by default as the bare version
// string so the output can be captured directly in shell pipelines.
type Sink struct {
	w       io.Writer
	jsonOut bool
}

// NewSink creates a console sink. With jsonOut the resolution is rendered as
// a single JSON object instead of the bare version string.
func NewSink(w io.Writer, jsonOut bool) *Sink {
	return &Sink{w: w, jsonOut: jsonOut}
}

type jsonResult struct {
	Version    string `json:"version"`
	ForRelease bool   `json:"for_release"`
}

// Write renders the resolution. Release-bound versions are highlighted when
// the stream supports color.
func (s *Sink) Write(ctx context.Context, res *model.Resolution) error {
	if s.jsonOut {
		enc := json.NewEncoder(s.w)
		if err := enc.Encode(jsonResult{
			Version:    res.String(),
			ForRelease: res.ForRelease,
		}); err != nil {
			return goerr.Wrap(err, "failed to encode resolution")
		}
		return nil
	}

	var err error
	if res.ForRelease {
		_, err = color.New(color.FgGreen, color.Bold).Fprintln(s.w, res.String())
	} else {
		_, err = fmt.Fprintln(s.w, res.String())
	}
	if err != nil {
		return goerr.Wrap(err, "failed to write resolution")
	}
	return nil
}
