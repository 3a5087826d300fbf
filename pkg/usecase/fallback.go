package usecase

import (
	"context"
	"errors"

	"github.com/blang/semver/v4"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/upstreamci/relver/pkg/domain/interfaces"
	"github.com/upstreamci/relver/pkg/domain/model"
	"github.com/upstreamci/relver/pkg/domain/types"
)

// fallbackBase determines the base version for a trigger that carries none,
// by asking the release source for the latest published release. A repository
// without releases starts from 0.0.0. Repository identity is handed to the
// source untouched; a source that needs it rejects the lookup itself.
func (uc *Resolver) fallbackBase(ctx context.Context, trigger *model.TriggerContext, forRelease bool) (semver.Version, error) {
	logger := ctxlog.From(ctx)

	latest, err := uc.source.LatestRelease(ctx, trigger.Owner, trigger.Repo)
	if err != nil {
		if errors.Is(err, interfaces.ErrNoReleases) {
			// Every release-bound path carries an explicit version, so the
			// 0.0.0 default must never stand in for one.
			if forRelease {
				return semver.Version{}, goerr.New("no releases to derive from on a release-bound run",
					goerr.T(types.ErrTagInternalInvariant))
			}
			logger.Info("No published releases, starting from 0.0.0",
				"owner", trigger.Owner,
				"repo", trigger.Repo,
			)
			return semver.Version{}, nil
		}
		return semver.Version{}, goerr.Wrap(err, "failed to look up the latest release",
			goerr.T(types.ErrTagReleaseLookupFailed),
			goerr.V("owner", trigger.Owner),
			goerr.V("repo", trigger.Repo))
	}

	v, err := model.ParseVersion(latest.TagName)
	if err != nil {
		return semver.Version{}, goerr.Wrap(err, "latest release tag is not a semantic version",
			goerr.T(types.ErrTagInvalidVersion),
			goerr.V("tag", latest.TagName))
	}

	base := model.NextBase(v)

	logger.Debug("Derived base version from latest release",
		"latest", latest.TagName,
		"base", base.String(),
	)

	return base, nil
}
