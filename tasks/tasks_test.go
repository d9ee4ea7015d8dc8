package tasks

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strconv"
	"testing"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scienceapi/config"
	"scienceapi/models"
)

func TestMain(m *testing.M) {
	config.C = &config.Config{}
	models.ConnectDatabase("file:tasks_test?mode=memory&cache=shared")
	os.Exit(m.Run())
}

func syncTask(t *testing.T, id uint) *asynq.Task {
	t.Helper()
	payload, err := json.Marshal(Task{ID: strconv.FormatUint(uint64(id), 10)})
	require.NoError(t, err)
	return asynq.NewTask(TypeGithubSync, payload)
}

func TestHandleGithubSyncTask(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"stargazers_count": 128,
			"forks_count": 31,
			"open_issues_count": 9,
			"pushed_at": "2024-06-15T08:30:00Z"
		}`))
	}))
	defer server.Close()
	config.C.GithubAPIURL = server.URL

	project := models.Project{
		Name:     "Synced Project",
		IsPublic: true,
		Github:   &models.GithubMeta{RepoURL: "https://github.com/acme/synced"},
	}
	require.NoError(t, models.DB.Create(&project).Error)

	err := HandleGithubSyncTask(context.Background(), syncTask(t, project.Id))
	require.NoError(t, err)

	var meta models.GithubMeta
	require.NoError(t, models.DB.First(&meta, "project_id = ?", project.Id).Error)
	assert.Equal(t, 128, meta.Stars)
	assert.Equal(t, 31, meta.Forks)
	assert.Equal(t, 9, meta.OpenIssues)
	assert.False(t, meta.SyncedAt.IsZero())
	assert.Equal(t, "https://github.com/acme/synced", meta.RepoURL)
}

func TestHandleGithubSyncTaskSkipsProjectsWithoutRepo(t *testing.T) {
	project := models.Project{Name: "No Repo", IsPublic: true}
	require.NoError(t, models.DB.Create(&project).Error)

	err := HandleGithubSyncTask(context.Background(), syncTask(t, project.Id))
	assert.NoError(t, err)
}

func TestHandleGithubSyncTaskUnknownProject(t *testing.T) {
	err := HandleGithubSyncTask(context.Background(), syncTask(t, 424242))
	assert.Error(t, err)
}
