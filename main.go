package main

import (
	"os"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"scienceapi/config"
	"scienceapi/controllers"
	"scienceapi/models"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout})
	gin.DefaultWriter = zerolog.ConsoleWriter{Out: os.Stdout}

	cfg := config.Load()
	models.ConnectDatabase(cfg.DatabaseDSN)

	router := gin.New()
	router.Use(controllers.ZLogMiddleware(), gin.Recovery())

	// Projects
	router.GET("/projects", controllers.ProjectList)
	router.GET("/projects/:id", controllers.ProjectGet)

	// Categories
	router.GET("/categories", controllers.CategoryList)

	// Service status
	router.GET("/status", controllers.Status)

	if err := router.Run(cfg.Addr); err != nil {
		log.Fatal().Err(err).Msg("app failed to start")
	}
}
