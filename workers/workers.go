package main

import (
	"context"
	"strconv"
	"time"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"

	"scienceapi/config"
	"scienceapi/models"
	"scienceapi/tasks"
)

// enqueueSyncTasks schedules a github refresh for every public project
// that carries a repository url.
func enqueueSyncTasks() {
	var metas []models.GithubMeta
	err := models.DB.
		Joins("JOIN projects ON projects.id = github_meta.project_id").
		Scopes(models.Public).
		Where("github_meta.repo_url <> ''").
		Find(&metas).Error
	if err != nil {
		log.Error().Err(err).Msg("failed to list projects for github sync")
		return
	}

	for _, meta := range metas {
		id := strconv.FormatUint(uint64(meta.ProjectId), 10)
		if err := tasks.NewTask(tasks.TypeGithubSync, id); err != nil {
			log.Debug().
				Str("project", id).
				Msg("github sync already queued")
		}
	}
}

func startSyncScheduler(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	enqueueSyncTasks()
	for {
		select {
		case <-ticker.C:
			enqueueSyncTasks()
		case <-ctx.Done():
			return
		}
	}
}

func main() {
	cfg := config.Load()
	models.ConnectDatabase(cfg.DatabaseDSN)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go startSyncScheduler(ctx, cfg.SyncInterval)

	srv := asynq.NewServer(
		asynq.RedisClientOpt{Addr: cfg.RedisAddr},
		asynq.Config{
			Concurrency: 10,
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeGithubSync, tasks.HandleGithubSyncTask)

	if err := srv.Run(mux); err != nil {
		log.Fatal().Err(err).Msg("failed to start workers")
	}
}
