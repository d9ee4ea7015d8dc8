package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

var ErrBadRepoURL = errors.New("repository url is not a github repository")

type Github struct {
	BaseURL string
	Token   string
	Client  *http.Client
}

func NewGithub(baseURL, token string) *Github {
	return &Github{
		BaseURL: baseURL,
		Token:   token,
		Client:  &http.Client{Timeout: 10 * time.Second},
	}
}

type RepoStats struct {
	Stars      int       `json:"stargazers_count"`
	Forks      int       `json:"forks_count"`
	OpenIssues int       `json:"open_issues_count"`
	LastCommit time.Time `json:"pushed_at"`
}

// RepoStats fetches the stats block for one github repository url,
// e.g. https://github.com/owner/repo.
func (g *Github) RepoStats(ctx context.Context, repoURL string) (*RepoStats, error) {
	owner, repo, err := splitRepoURL(repoURL)
	if err != nil {
		return nil, err
	}

	endpoint := fmt.Sprintf("%s/repos/%s/%s", g.BaseURL, owner, repo)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	if g.Token != "" {
		req.Header.Set("Authorization", "Bearer "+g.Token)
	}

	resp, err := g.Client.Do(req)
	if err != nil {
		log.Error().
			Err(err).
			Str("repo", repoURL).
			Msg("failed to reach github")
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Error().
			Int("status", resp.StatusCode).
			Str("repo", repoURL).
			Msg("github repo lookup failed")
		return nil, fmt.Errorf("github responded with status %d", resp.StatusCode)
	}

	var stats RepoStats
	if err := json.NewDecoder(resp.Body).Decode(&stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

func splitRepoURL(repoURL string) (string, string, error) {
	parsed, err := url.Parse(repoURL)
	if err != nil {
		return "", "", ErrBadRepoURL
	}
	parts := strings.Split(strings.Trim(parsed.Path, "/"), "/")
	if len(parts) < 2 || parts[0] == "" || parts[1] == "" {
		return "", "", ErrBadRepoURL
	}
	return parts[0], strings.TrimSuffix(parts[1], ".git"), nil
}
