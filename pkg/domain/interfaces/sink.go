package interfaces

import (
	"context"

	"github.com/upstreamci/relver/pkg/domain/model"
)

// ResultSink defines where a finished resolution is delivered. A sink is
// invoked at most once per run, and only after resolution succeeded.
type ResultSink interface {
	Write(ctx context.Context, res *model.Resolution) error
}
