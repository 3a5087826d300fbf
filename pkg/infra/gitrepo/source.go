package gitrepo

import (
	"context"

	"github.com/blang/semver/v4"
	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/m-mizutani/goerr/v2"
	"github.com/upstreamci/relver/pkg/domain/interfaces"
	"github.com/upstreamci/relver/pkg/domain/model"
)

// Source reads release history from the tags of a local git repository, for
// runs that cannot reach a release API. The highest semantic version among
// the tags stands in for the latest published release.
type Source struct {
	repo *git.Repository
}

// Open opens the repository at path, searching upward for the .git directory
// the way git itself does.
func Open(path string) (*Source, error) {
	repo, err := git.PlainOpenWithOptions(path, &git.PlainOpenOptions{
		DetectDotGit:          true,
		EnableDotGitCommonDir: true,
	})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to open git repository", goerr.V("path", path))
	}
	return &Source{repo: repo}, nil
}

// NewSource wraps an already opened repository.
func NewSource(repo *git.Repository) *Source {
	return &Source{repo: repo}
}

// LatestRelease scans the repository tags and returns the one naming the
// highest semantic version. Tags that do not parse as versions are skipped.
// Owner and repo are ignored; a local repository identifies itself.
func (s *Source) LatestRelease(ctx context.Context, owner, repo string) (*model.ReleaseInfo, error) {
	tags, err := s.repo.Tags()
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list repository tags")
	}

	var (
		bestTag string
		best    semver.Version
		found   bool
	)
	err = tags.ForEach(func(ref *plumbing.Reference) error {
		if err := ctx.Err(); err != nil {
			return err
		}

		name := ref.Name().Short()
		v, err := model.ParseVersion(name)
		if err != nil {
			return nil // not a release tag
		}

		if !found || v.GT(best) {
			best = v
			bestTag = name
			found = true
		}
		return nil
	})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to scan repository tags")
	}

	if !found {
		return nil, interfaces.ErrNoReleases
	}

	return &model.ReleaseInfo{TagName: bestTag}, nil
}
