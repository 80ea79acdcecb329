package fetcher

import (
	"context"
	"fmt"

	"github.com/jonesrussell/trendscout/internal/domain"
	"github.com/jonesrussell/trendscout/internal/logger"
	"github.com/jonesrussell/trendscout/internal/normalizer"
)

const defaultGitHubPageSize = 5

// Repositories polled when none are configured.
var defaultGitHubRepos = []string{
	"facebook/react",
	"microsoft/vscode",
	"nodejs/node",
	"expressjs/express",
}

// GitHub fetches open bug and help-wanted issues from a set of repositories.
type GitHub struct {
	client   *Client
	norm     *normalizer.Normalizer
	log      logger.Logger
	repos    []string
	pageSize int
}

// NewGitHub creates the GitHub source adapter.
func NewGitHub(client *Client, norm *normalizer.Normalizer, log logger.Logger, repos []string, pageSize int) *GitHub {
	if len(repos) == 0 {
		repos = defaultGitHubRepos
	}
	if pageSize <= 0 {
		pageSize = defaultGitHubPageSize
	}
	return &GitHub{
		client:   client,
		norm:     norm,
		log:      log,
		repos:    repos,
		pageSize: pageSize,
	}
}

// Name implements the source interface.
func (g *GitHub) Name() string { return "github" }

// Fetch pulls open issues labelled bug or help wanted from each repository.
func (g *GitHub) Fetch(ctx context.Context) ([]*domain.Record, error) {
	var records []*domain.Record

	for _, repo := range g.repos {
		url := fmt.Sprintf(
			"https://api.github.com/repos/%s/issues?state=open&labels=bug,help%%20wanted&per_page=%d",
			repo, g.pageSize,
		)

		var issues []normalizer.GitHubIssue
		if err := g.client.GetJSON(ctx, url, &issues); err != nil {
			if ctx.Err() != nil {
				return records, ctx.Err()
			}
			g.log.Warn("github fetch failed",
				logger.String("repo", repo),
				logger.Error(err),
			)
			continue
		}

		for _, is := range issues {
			if !g.norm.IsProblem(is.Title, is.Body) {
				continue
			}
			records = append(records, g.norm.FromGitHubIssue(ctx, is, repo))
		}
	}

	return records, nil
}
