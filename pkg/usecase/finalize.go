package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/blang/semver/v4"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/upstreamci/relver/pkg/domain/model"
	"github.com/upstreamci/relver/pkg/domain/types"
)

// finalize applies the last checks to the resolved version. Build metadata is
// fatal on a release-bound version and stripped with a warning otherwise, and
// the result must survive re-validation.
func (uc *Resolver) finalize(ctx context.Context, res *model.Resolution) error {
	logger := ctxlog.From(ctx)

	if len(res.Version.Build) > 0 {
		metadata := strings.Join(res.Version.Build, ".")
		if res.ForRelease {
			return goerr.New("release version carries build metadata",
				goerr.T(types.ErrTagUnexpectedBuildMetadata),
				goerr.V("version", res.Version.String()))
		}

		logger.Warn("Dropping build metadata from resolved version",
			"version", res.Version.String(),
			"metadata", metadata,
		)

		stripped := res.Version
		stripped.Build = nil
		res.Version = stripped
		res.Warnings = append(res.Warnings, fmt.Sprintf("build metadata %q dropped from resolved version", metadata))
	}

	if err := res.Version.Validate(); err != nil {
		return goerr.Wrap(err, "resolved version failed validation",
			goerr.T(types.ErrTagInternalInvariant),
			goerr.V("version", res.Version.String()))
	}
	if _, err := semver.Parse(res.Version.String()); err != nil {
		return goerr.Wrap(err, "resolved version does not round-trip",
			goerr.T(types.ErrTagInternalInvariant),
			goerr.V("version", res.Version.String()))
	}

	return nil
}
