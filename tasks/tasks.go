package tasks

import (
	"context"
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"

	"scienceapi/config"
	"scienceapi/models"
	"scienceapi/services"
)

const TypeGithubSync = "sync:github"

type Task struct {
	ID string
}

func NewTask(typeName string, ID string) error {
	client := asynq.NewClient(asynq.RedisClientOpt{Addr: config.C.RedisAddr})
	defer client.Close()

	payload, err := json.Marshal(Task{ID: ID})
	if err != nil {
		log.Error().
			Err(err).
			Str("type", typeName).
			Str("id", ID).
			Msg("failed to create new task")
		return err
	}
	task := asynq.NewTask(typeName, payload)

	_, err = client.Enqueue(task, asynq.TaskID(ID), asynq.MaxRetry(1))
	if err != nil {
		log.Error().
			Err(err).
			Str("type", typeName).
			Str("task", ID).
			Msg("failed to enqueue task")
		return err
	}

	return nil
}

// HandleGithubSyncTask refreshes the stored repository stats block of one
// project from the GitHub API. Projects without a repo url are skipped.
func HandleGithubSyncTask(ctx context.Context, t *asynq.Task) error {
	var task Task
	var project models.Project

	if err := json.Unmarshal(t.Payload(), &task); err != nil {
		return err
	}

	if err := models.DB.Preload("Github").First(&project, "id = ?", task.ID).Error; err != nil {
		log.Error().
			Err(err).
			Str("type", t.Type()).
			Str("project", task.ID).
			Msg("project not found")
		return err
	}
	if project.Github == nil || project.Github.RepoURL == "" {
		return nil
	}

	gh := services.NewGithub(config.C.GithubAPIURL, config.C.GithubToken)
	stats, err := gh.RepoStats(ctx, project.Github.RepoURL)
	if err != nil {
		return err
	}

	project.Github.Stars = stats.Stars
	project.Github.Forks = stats.Forks
	project.Github.OpenIssues = stats.OpenIssues
	project.Github.LastCommit = stats.LastCommit
	project.Github.SyncedAt = time.Now().UTC()

	return models.DB.Save(project.Github).Error
}
