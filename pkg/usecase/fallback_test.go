package usecase

import (
	"context"
	"testing"

	"github.com/blang/semver/v4"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/upstreamci/relver/pkg/domain/interfaces"
	"github.com/upstreamci/relver/pkg/domain/model"
	"github.com/upstreamci/relver/pkg/domain/types"
)

type stubSource struct {
	info *model.ReleaseInfo
	err  error
}

func (s *stubSource) LatestRelease(ctx context.Context, owner, repo string) (*model.ReleaseInfo, error) {
	return s.info, s.err
}

// The classifier guarantees an explicit version on every release-bound path,
// so the 0.0.0 substitution must refuse to run for one.
func TestFallbackBase_ReleaseBoundInvariant(t *testing.T) {
	uc := &Resolver{source: &stubSource{err: interfaces.ErrNoReleases}}

	trigger := &model.TriggerContext{Owner: "octo", Repo: "hello"}
	_, err := uc.fallbackBase(context.Background(), trigger, true)

	gt.Error(t, err)
	gt.Value(t, goerr.HasTag(err, types.ErrTagInternalInvariant)).Equal(true)
}

func TestFinalize_RejectsInvalidIdentifiers(t *testing.T) {
	uc := &Resolver{}

	res := &model.Resolution{
		Version: semver.Version{Major: 1, Pre: []semver.PRVersion{{VersionStr: "bad_char"}}},
	}
	err := uc.finalize(context.Background(), res)

	gt.Error(t, err)
	gt.Value(t, goerr.HasTag(err, types.ErrTagInternalInvariant)).Equal(true)
}
