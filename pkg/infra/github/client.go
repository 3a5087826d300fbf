package github

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/google/go-github/v75/github"
	"github.com/m-mizutani/goerr/v2"
	"github.com/upstreamci/relver/pkg/domain/interfaces"
	"github.com/upstreamci/relver/pkg/domain/model"
)

type client struct {
	githubClient *github.Client
	timeout      time.Duration
}

// NewClient creates a release source backed by the GitHub releases API. An
// empty token means unauthenticated access, which works for public
// repositories within rate limits. A non-empty baseURL switches the client to
// a GitHub Enterprise endpoint; the public api.github.com endpoint is the
// default and needs no baseURL.
func NewClient(token, baseURL string, timeout time.Duration) (interfaces.ReleaseSource, error) {
	gh := github.NewClient(nil)
	if token != "" {
		gh = gh.WithAuthToken(token)
	}

	// Actions sets GITHUB_API_URL to the public endpoint on github.com runs,
	// which the client already points at.
	if u := strings.TrimSuffix(baseURL, "/"); u != "" && u != "https://api.github.com" {
		var err error
		gh, err = gh.WithEnterpriseURLs(baseURL, baseURL)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to configure GitHub API base URL",
				goerr.V("base_url", baseURL))
		}
	}

	return &client{
		githubClient: gh,
		timeout:      timeout,
	}, nil
}

// LatestRelease returns the most recently published release of the
// repository, or ErrNoReleases when it has none. The lookup is attempted
// exactly once and needs the repository named by owner and repo.
func (c *client) LatestRelease(ctx context.Context, owner, repo string) (*model.ReleaseInfo, error) {
	if owner == "" || repo == "" {
		return nil, goerr.New("repository owner and name are required for a release lookup",
			goerr.V("owner", owner),
			goerr.V("repo", repo))
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	release, resp, err := c.githubClient.Repositories.GetLatestRelease(ctx, owner, repo)
	if err != nil {
		if resp != nil && resp.StatusCode == http.StatusNotFound {
			return nil, interfaces.ErrNoReleases
		}
		return nil, goerr.Wrap(err, "failed to fetch the latest release",
			goerr.V("owner", owner),
			goerr.V("repo", repo))
	}

	tag := release.GetTagName()
	if tag == "" {
		return nil, goerr.New("latest release has no tag name",
			goerr.V("owner", owner),
			goerr.V("repo", repo))
	}

	return &model.ReleaseInfo{TagName: tag}, nil
}
