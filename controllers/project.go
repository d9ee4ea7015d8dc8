package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"scienceapi/api/errs"
	"scienceapi/api/types"
	"scienceapi/config"
	"scienceapi/models"
	"scienceapi/services"
)

func ProjectList(c *gin.Context) {
	var query types.ProjectListQuery
	_ = c.ShouldBindQuery(&query)

	q := models.DB.Model(&models.Project{}).Scopes(models.Public)

	// filters first, then search, then ordering, then pagination
	if query.Tags != "" {
		q = services.FilterByRelatedName(q, "tags", query.Tags)
	}
	if query.Categories != "" {
		q = services.FilterByRelatedName(q, "categories", query.Categories)
	}
	if _, ok := c.GetQuery("search"); ok {
		q = services.ApplySearch(q, query.Search)
	}

	order, err := services.SortClause(query.Sort)
	if err != nil {
		c.Error(err)
		return
	}

	page, q, err := services.Paginate(q, query.Page, config.C.PageSize)
	if err != nil {
		c.Error(err)
		return
	}
	if order != "" {
		q = q.Order(order)
	}

	var projects []models.Project
	if err := q.Preload("Tags").Preload("Categories").Find(&projects).Error; err != nil {
		c.Error(err)
		return
	}

	page.Results = types.NewProjectSummaries(projects)
	c.JSON(http.StatusOK, types.Response{
		Status: "success",
		Data:   page,
	})
}

func ProjectGet(c *gin.Context) {
	id, err := strconv.Atoi(c.Params.ByName("id"))
	if err != nil {
		c.Error(errs.ErrProjectNotFound)
		return
	}
	mode := types.ParseExpand(c.Query("expand"))

	var project models.Project
	q := models.DB.Scopes(models.Public).
		Preload("Tags").
		Preload("Categories").
		Preload("Users").
		Preload("Events").
		Preload("Github")
	if err := q.First(&project, "projects.id = ?", id).Error; err != nil {
		c.Error(errs.ErrProjectNotFound)
		return
	}

	c.JSON(http.StatusOK, types.Response{
		Status: "success",
		Data:   types.NewProjectDetail(&project, mode),
	})
}
