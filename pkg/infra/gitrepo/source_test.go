package gitrepo_test

import (
	"context"
	"testing"
	"time"

	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/storage/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/upstreamci/relver/pkg/domain/interfaces"
	"github.com/upstreamci/relver/pkg/infra/gitrepo"
)

func testSignature() *object.Signature {
	return &object.Signature{
		Name:  "test",
		Email: "test@example.com",
		When:  time.Now(),
	}
}

// newTestRepo creates an in-memory repository with a single commit.
func newTestRepo(t *testing.T) (*git.Repository, plumbing.Hash) {
	t.Helper()

	repo, err := git.Init(memory.NewStorage(), memfs.New())
	require.NoError(t, err)

	wt, err := repo.Worktree()
	require.NoError(t, err)

	f, err := wt.Filesystem.Create("README.md")
	require.NoError(t, err)
	_, err = f.Write([]byte("test repository"))
	require.NoError(t, err)
	require.NoError(t, f.Close())

	_, err = wt.Add("README.md")
	require.NoError(t, err)

	hash, err := wt.Commit("initial commit", &git.CommitOptions{Author: testSignature()})
	require.NoError(t, err)

	return repo, hash
}

func createTags(t *testing.T, repo *git.Repository, hash plumbing.Hash, names ...string) {
	t.Helper()
	for _, name := range names {
		_, err := repo.CreateTag(name, hash, nil)
		require.NoError(t, err)
	}
}

func TestSource_LatestRelease_PicksHighestVersion(t *testing.T) {
	repo, hash := newTestRepo(t)
	createTags(t, repo, hash, "v0.9.9", "v1.2.0", "v1.0.0")

	info, err := gitrepo.NewSource(repo).LatestRelease(context.Background(), "", "")
	require.NoError(t, err)
	assert.Equal(t, "v1.2.0", info.TagName)
}

func TestSource_LatestRelease_StableBeatsPrereleaseOfSameVersion(t *testing.T) {
	repo, hash := newTestRepo(t)
	createTags(t, repo, hash, "v1.0.0-rc.1", "v1.0.0")

	info, err := gitrepo.NewSource(repo).LatestRelease(context.Background(), "", "")
	require.NoError(t, err)
	assert.Equal(t, "v1.0.0", info.TagName)
}

func TestSource_LatestRelease_HigherPrereleaseBeatsLowerStable(t *testing.T) {
	repo, hash := newTestRepo(t)
	createTags(t, repo, hash, "v1.2.0", "v2.0.0-beta.1")

	info, err := gitrepo.NewSource(repo).LatestRelease(context.Background(), "", "")
	require.NoError(t, err)
	assert.Equal(t, "v2.0.0-beta.1", info.TagName)
}

func TestSource_LatestRelease_SkipsNonVersionTags(t *testing.T) {
	repo, hash := newTestRepo(t)
	createTags(t, repo, hash, "nightly", "v1.0.0", "release-candidate")

	info, err := gitrepo.NewSource(repo).LatestRelease(context.Background(), "", "")
	require.NoError(t, err)
	assert.Equal(t, "v1.0.0", info.TagName)
}

func TestSource_LatestRelease_UnprefixedTags(t *testing.T) {
	repo, hash := newTestRepo(t)
	createTags(t, repo, hash, "1.0.0", "1.1.0")

	info, err := gitrepo.NewSource(repo).LatestRelease(context.Background(), "", "")
	require.NoError(t, err)
	assert.Equal(t, "1.1.0", info.TagName)
}

func TestSource_LatestRelease_AnnotatedTag(t *testing.T) {
	repo, hash := newTestRepo(t)

	_, err := repo.CreateTag("v3.0.0", hash, &git.CreateTagOptions{
		Tagger:  testSignature(),
		Message: "release v3.0.0",
	})
	require.NoError(t, err)

	info, err := gitrepo.NewSource(repo).LatestRelease(context.Background(), "", "")
	require.NoError(t, err)
	assert.Equal(t, "v3.0.0", info.TagName)
}

func TestSource_LatestRelease_NoTags(t *testing.T) {
	repo, _ := newTestRepo(t)

	_, err := gitrepo.NewSource(repo).LatestRelease(context.Background(), "", "")
	assert.ErrorIs(t, err, interfaces.ErrNoReleases)
}

func TestSource_LatestRelease_OnlyNonVersionTags(t *testing.T) {
	repo, hash := newTestRepo(t)
	createTags(t, repo, hash, "nightly", "latest")

	_, err := gitrepo.NewSource(repo).LatestRelease(context.Background(), "", "")
	assert.ErrorIs(t, err, interfaces.ErrNoReleases)
}

func TestOpen_NotARepository(t *testing.T) {
	_, err := gitrepo.Open(t.TempDir())
	assert.Error(t, err)
}
