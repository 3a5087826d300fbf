package interfaces

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/upstreamci/relver/pkg/domain/model"
)

// ErrNoReleases is returned by a ReleaseSource when the repository has no
// published release to report. It is an expected answer, not a failure.
var ErrNoReleases = goerr.New("no published releases")

// ReleaseSource defines the lookup of the most recently published release
type ReleaseSource interface {
	// LatestRelease returns the latest published release of the repository.
	// It returns ErrNoReleases when there is none.
	LatestRelease(ctx context.Context, owner, repo string) (*model.ReleaseInfo, error)
}
