package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"scienceapi/api/types"
	"scienceapi/models"
)

func Status(c *gin.Context) {
	var projects int64
	models.DB.Model(&models.Project{}).Scopes(models.Public).Count(&projects)
	var categories int64
	models.DB.Model(&models.Category{}).Count(&categories)
	var tags int64
	models.DB.Model(&models.Tag{}).Count(&tags)

	c.JSON(http.StatusOK, types.Response{
		Status: "success",
		Data: map[string]any{
			"status":     "ok",
			"projects":   projects,
			"categories": categories,
			"tags":       tags,
		},
	})
}
