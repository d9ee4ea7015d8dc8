package controllers

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"scienceapi/config"
	"scienceapi/models"
)

var (
	testRouter *gin.Engine
	baseTime   = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	// fixture projects, seeded once for the whole package
	openScience   models.Project
	genomeBrowser models.Project
	secretProject models.Project
	weatherWatch  models.Project
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	config.C = &config.Config{PageSize: 20}
	models.ConnectDatabase("file:controllers_test?mode=memory&cache=shared")
	seed()

	testRouter = gin.New()
	testRouter.Use(ZLogMiddleware(), gin.Recovery())
	testRouter.GET("/projects", ProjectList)
	testRouter.GET("/projects/:id", ProjectGet)
	testRouter.GET("/categories", CategoryList)
	testRouter.GET("/status", Status)

	os.Exit(m.Run())
}

func seed() {
	science := models.Tag{Name: "science"}
	biology := models.Tag{Name: "biology"}
	tools := models.Category{Name: "Tools"}
	data := models.Category{Name: "Data"}
	models.DB.Create(&science)
	models.DB.Create(&biology)
	models.DB.Create(&tools)
	models.DB.Create(&data)

	alice := models.User{Username: "alice", Name: "Alice Doe", Role: "lead"}
	bob := models.User{Username: "bob", Name: "Bob Roe", Role: "contributor"}
	models.DB.Create(&alice)
	models.DB.Create(&bob)

	sprint := models.Event{Name: "Global Sprint", Location: "Online", DateStart: baseTime, DateEnd: baseTime.Add(48 * time.Hour)}
	workshop := models.Event{Name: "Data Workshop", Location: "Berlin", DateStart: baseTime.AddDate(0, 1, 0)}
	meetup := models.Event{Name: "Community Meetup", Location: "Toronto", DateStart: baseTime.AddDate(0, 2, 0)}
	models.DB.Create(&sprint)
	models.DB.Create(&workshop)
	models.DB.Create(&meetup)

	openScience = models.Project{
		Name:             "Open Science Platform",
		Institution:      "MIT",
		Description:      "A collaborative platform for open research",
		ShortDescription: "Collaboration tools",
		License:          "MIT",
		IsPublic:         true,
		DateCreated:      baseTime,
		DateUpdated:      baseTime.Add(72 * time.Hour),
		Tags:             []models.Tag{science},
		Categories:       []models.Category{tools},
		Users:            []models.User{alice, bob},
		Events:           []models.Event{sprint, workshop, meetup},
		Github: &models.GithubMeta{
			RepoURL:    "https://github.com/science/platform",
			Stars:      42,
			Forks:      7,
			OpenIssues: 3,
		},
	}
	genomeBrowser = models.Project{
		Name:             "Genome Browser",
		Institution:      "EMBL",
		Description:      "Interactive genome visualization for researchers",
		ShortDescription: "Genome tracks",
		License:          "GPL-3.0",
		IsPublic:         true,
		DateCreated:      baseTime.Add(24 * time.Hour),
		DateUpdated:      baseTime.Add(48 * time.Hour),
		Tags:             []models.Tag{biology},
		Categories:       []models.Category{data},
	}
	secretProject = models.Project{
		Name:        "Secret Project",
		Institution: "MIT",
		IsPublic:    false,
		DateCreated: baseTime.Add(2 * time.Hour),
		DateUpdated: baseTime.Add(2 * time.Hour),
		Tags:        []models.Tag{science},
	}
	weatherWatch = models.Project{
		Name:             "Weather Archive",
		Institution:      "NOAA",
		Description:      "Historical weather measurements",
		ShortDescription: "Climate data archive",
		License:          "Apache-2.0",
		IsPublic:         true,
		DateCreated:      baseTime.Add(48 * time.Hour),
		DateUpdated:      baseTime.Add(96 * time.Hour),
	}
	models.DB.Create(&openScience)
	models.DB.Create(&genomeBrowser)
	models.DB.Create(&secretProject)
	models.DB.Create(&weatherWatch)
}

func doGet(t *testing.T, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	testRouter.ServeHTTP(rec, req)
	return rec
}
