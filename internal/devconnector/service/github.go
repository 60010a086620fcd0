package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/aussiebroadwan/devconnector/pkg/devsdk"
	"github.com/aussiebroadwan/devconnector/pkg/slogx"
)

const (
	DefaultGitHubURL = "https://api.github.com"

	// GitHubRepoCount is how many repositories a profile shows.
	GitHubRepoCount = 5
)

// GitHubService proxies the public repository list of a GitHub user.
type GitHubService struct {
	BaseURL    string
	Token      string
	HTTPClient *http.Client
}

// NewGitHubService returns a service talking to baseURL (the public API when
// empty), authenticating with token when one is set.
func NewGitHubService(baseURL, token string) *GitHubService {
	if baseURL == "" {
		baseURL = DefaultGitHubURL
	}
	return &GitHubService{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		Token:      token,
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// ListRepos returns the user's most recently created repositories. Any
// non-200 answer becomes an *UpstreamError carrying the upstream status.
func (s *GitHubService) ListRepos(ctx context.Context, username string) ([]devsdk.Repo, error) {
	q := url.Values{}
	q.Set("per_page", fmt.Sprint(GitHubRepoCount))
	q.Set("sort", "created")
	q.Set("direction", "desc")

	endpoint := fmt.Sprintf("%s/users/%s/repos?%s", s.BaseURL, url.PathEscape(username), q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("github: build request: %w", err)
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("User-Agent", "devconnector")
	if s.Token != "" {
		req.Header.Set("Authorization", "Bearer "+s.Token)
	}

	client := s.HTTPClient
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("github: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		slogx.FromContext(ctx).Info("github lookup failed", "username", username, "status", resp.StatusCode)
		return nil, &UpstreamError{StatusCode: resp.StatusCode}
	}

	repos := []devsdk.Repo{}
	if err := json.NewDecoder(resp.Body).Decode(&repos); err != nil {
		return nil, fmt.Errorf("github: decode repos: %w", err)
	}
	if len(repos) > GitHubRepoCount {
		repos = repos[:GitHubRepoCount]
	}
	return repos, nil
}
