package models

import "time"

// GithubMeta carries the repository stats block attached to a project.
// Rows are written by the sync worker, never by the API.
type GithubMeta struct {
	ProjectId  uint      `gorm:"primaryKey" json:"-"`
	RepoURL    string    `json:"repo_url"`
	Stars      int       `json:"stars"`
	Forks      int       `json:"forks"`
	OpenIssues int       `json:"open_issues"`
	LastCommit time.Time `json:"last_commit"`
	SyncedAt   time.Time `json:"synced_at"`
}

func (GithubMeta) TableName() string {
	return "github_meta"
}
