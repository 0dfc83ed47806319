package travis

import (
	"context"
	"fmt"
	"os"

	"github.com/google/go-github/v62/github"
	"golang.org/x/oauth2"
)

// getGitHubToken returns a GitHub API token from the environment, if any
func getGitHubToken() string {
	if token := os.Getenv("TRYTRAVIS_GITHUB_TOKEN"); token != "" {
		return token
	}
	return os.Getenv("GITHUB_TOKEN")
}

// newGitHubClient creates a GitHub API client, authenticated when a token
// is available
func newGitHubClient(ctx context.Context) *github.Client {
	token := getGitHubToken()
	if token == "" {
		return github.NewClient(nil)
	}

	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	return github.NewClient(oauth2.NewClient(ctx, ts))
}

// VerifyRepository checks that a repository exists on GitHub. Without a
// token the check is skipped; a missing repository is an error; other API
// failures (rate limits, no network) are non-fatal so configuration still
// works offline.
func VerifyRepository(ctx context.Context, owner, name string) (found bool, err error) {
	if getGitHubToken() == "" {
		return false, nil
	}

	client := newGitHubClient(ctx)

	_, resp, err := client.Repositories.Get(ctx, owner, name)
	if err != nil {
		if resp != nil && resp.StatusCode == 404 {
			return false, fmt.Errorf("repository %s/%s was not found on GitHub", owner, name)
		}
		// Can't reach the API, skip verification
		return false, nil
	}
	return true, nil
}
