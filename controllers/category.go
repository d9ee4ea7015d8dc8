package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"scienceapi/api/types"
	"scienceapi/models"
)

// CategoryList returns every category, unpaginated. Categories carry no
// visibility flag of their own.
func CategoryList(c *gin.Context) {
	var categories []models.Category

	if err := models.DB.Order("id").Find(&categories).Error; err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, types.Response{
		Status: "success",
		Data:   categories,
	})
}
