package cli_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/upstreamci/relver/pkg/cli"
)

// newAPIServer fakes the GitHub latest-release endpoint.
func newAPIServer(t *testing.T, body string) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v3/repos/octo/hello/releases/latest", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, body)
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func TestRun_PushFallback(t *testing.T) {
	t.Setenv("GITHUB_EVENT_PATH", "")

	server := newAPIServer(t, `{"tag_name":"v1.2.3"}`)
	outPath := filepath.Join(t.TempDir(), "output")

	err := cli.Run(context.Background(), []string{
		"relver", "--log-level", "error", "resolve",
		"--event-name", "push",
		"--ref", "refs/heads/feature/x",
		"--run-number", "42",
		"--repository", "octo/hello",
		"--default-branch", "main",
		"--source", "github",
		"--github-api-url", server.URL,
		"--output-file", outPath,
	})
	gt.NoError(t, err)

	data, err := os.ReadFile(outPath)
	gt.NoError(t, err)
	gt.String(t, string(data)).Contains("version=1.2.4-feature-x-ci42\n")
	gt.String(t, string(data)).Contains("is-for-release=false\n")
}

// The default branch comes only from the config file here: the resolved
// version carries no branch prefix exactly when the file value was applied.
func TestRun_ConfigFileDefaults(t *testing.T) {
	t.Setenv("GITHUB_EVENT_PATH", "")

	server := newAPIServer(t, `{"tag_name":"v1.2.3"}`)

	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "relver.toml")
	gt.NoError(t, os.WriteFile(cfgPath, []byte("default_branch = \"trunk\"\n"), 0644))
	outPath := filepath.Join(dir, "output")

	err := cli.Run(context.Background(), []string{
		"relver", "--log-level", "error", "resolve",
		"--config", cfgPath,
		"--event-name", "push",
		"--ref", "refs/heads/trunk",
		"--run-number", "6",
		"--repository", "octo/hello",
		"--source", "github",
		"--github-api-url", server.URL,
		"--output-file", outPath,
	})
	gt.NoError(t, err)

	data, err := os.ReadFile(outPath)
	gt.NoError(t, err)
	gt.String(t, string(data)).Contains("version=1.2.4-ci6\n")
}

func TestRun_ReleaseEvent(t *testing.T) {
	payloadPath := filepath.Join(t.TempDir(), "event.json")
	payload := `{
		"release": {"tag_name": "v1.4.0", "prerelease": false},
		"repository": {"name": "hello", "default_branch": "main", "owner": {"login": "octo"}}
	}`
	gt.NoError(t, os.WriteFile(payloadPath, []byte(payload), 0644))

	outPath := filepath.Join(t.TempDir(), "output")

	err := cli.Run(context.Background(), []string{
		"relver", "--log-level", "error", "resolve",
		"--event-name", "release",
		"--event-path", payloadPath,
		"--ref", "refs/tags/v1.4.0",
		"--run-number", "9",
		"--repository", "octo/hello",
		"--default-branch", "main",
		"--source", "github",
		"--output-file", outPath,
	})
	gt.NoError(t, err)

	data, err := os.ReadFile(outPath)
	gt.NoError(t, err)
	gt.String(t, string(data)).Contains("version=1.4.0\n")
	gt.String(t, string(data)).Contains("is-for-release=true\n")
}

func TestRun_ReleaseEvent_PrereleaseMismatch(t *testing.T) {
	payloadPath := filepath.Join(t.TempDir(), "event.json")
	payload := `{
		"release": {"tag_name": "v1.4.0-rc.1", "prerelease": false},
		"repository": {"name": "hello", "default_branch": "main", "owner": {"login": "octo"}}
	}`
	gt.NoError(t, os.WriteFile(payloadPath, []byte(payload), 0644))

	err := cli.Run(context.Background(), []string{
		"relver", "--log-level", "error", "resolve",
		"--event-name", "release",
		"--event-path", payloadPath,
		"--ref", "refs/tags/v1.4.0-rc.1",
		"--run-number", "9",
		"--repository", "octo/hello",
		"--default-branch", "main",
		"--source", "github",
	})
	gt.Error(t, err)
}

func TestRun_NoReleasesYet(t *testing.T) {
	t.Setenv("GITHUB_EVENT_PATH", "")

	mux := http.NewServeMux()
	mux.HandleFunc("/api/v3/repos/octo/hello/releases/latest", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		fmt.Fprint(w, `{"message":"Not Found"}`)
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	outPath := filepath.Join(t.TempDir(), "output")

	err := cli.Run(context.Background(), []string{
		"relver", "--log-level", "error", "resolve",
		"--event-name", "push",
		"--ref", "refs/heads/main",
		"--run-number", "1",
		"--repository", "octo/hello",
		"--default-branch", "main",
		"--source", "github",
		"--github-api-url", server.URL,
		"--output-file", outPath,
	})
	gt.NoError(t, err)

	data, err := os.ReadFile(outPath)
	gt.NoError(t, err)
	gt.String(t, string(data)).Contains("version=0.0.0-ci1\n")
}

func TestRun_UnknownLogLevel(t *testing.T) {
	err := cli.Run(context.Background(), []string{
		"relver", "--log-level", "verbose", "resolve",
		"--event-name", "push",
	})
	gt.Error(t, err)
}

func TestRun_UnknownSource(t *testing.T) {
	err := cli.Run(context.Background(), []string{
		"relver", "--log-level", "error", "resolve",
		"--event-name", "push",
		"--ref", "refs/heads/main",
		"--run-number", "1",
		"--repository", "octo/hello",
		"--source", "svn",
	})
	gt.Error(t, err)
}
