package types

import (
	"time"

	"scienceapi/models"
)

// ProjectSummary is the list-endpoint shape: scalar fields plus
// tag/category names, related users and events never expanded.
type ProjectSummary struct {
	Id               uint      `json:"id"`
	Name             string    `json:"name"`
	Institution      string    `json:"institution"`
	Description      string    `json:"description"`
	ShortDescription string    `json:"short_description"`
	License          string    `json:"license"`
	DateCreated      time.Time `json:"date_created"`
	DateUpdated      time.Time `json:"date_updated"`
	Tags             []string  `json:"tags"`
	Categories       []string  `json:"categories"`
}

// ProjectDetail is the detail-endpoint shape. Users and Events hold either
// plain id references or fully inlined objects depending on the expand mode.
type ProjectDetail struct {
	ProjectSummary
	Github *models.GithubMeta `json:"github"`
	Users  any                `json:"users"`
	Events any                `json:"events"`
}

func NewProjectSummary(p *models.Project) ProjectSummary {
	return ProjectSummary{
		Id:               p.Id,
		Name:             p.Name,
		Institution:      p.Institution,
		Description:      p.Description,
		ShortDescription: p.ShortDescription,
		License:          p.License,
		DateCreated:      p.DateCreated,
		DateUpdated:      p.DateUpdated,
		Tags:             tagNames(p.Tags),
		Categories:       categoryNames(p.Categories),
	}
}

func NewProjectSummaries(projects []models.Project) []ProjectSummary {
	summaries := make([]ProjectSummary, 0, len(projects))
	for i := range projects {
		summaries = append(summaries, NewProjectSummary(&projects[i]))
	}
	return summaries
}

func NewProjectDetail(p *models.Project, mode ExpandMode) ProjectDetail {
	detail := ProjectDetail{
		ProjectSummary: NewProjectSummary(p),
		Github:         p.Github,
	}

	switch mode {
	case ExpandNone:
		detail.Users = userIds(p.Users)
		detail.Events = eventIds(p.Events)
	case ExpandUsers:
		detail.Users = p.Users
		detail.Events = eventIds(p.Events)
	case ExpandEvents:
		detail.Users = userIds(p.Users)
		detail.Events = p.Events
	case ExpandAll:
		detail.Users = p.Users
		detail.Events = p.Events
	}
	return detail
}

func tagNames(tags []models.Tag) []string {
	names := make([]string, 0, len(tags))
	for _, t := range tags {
		names = append(names, t.Name)
	}
	return names
}

func categoryNames(categories []models.Category) []string {
	names := make([]string, 0, len(categories))
	for _, c := range categories {
		names = append(names, c.Name)
	}
	return names
}

func userIds(users []models.User) []uint {
	ids := make([]uint, 0, len(users))
	for _, u := range users {
		ids = append(ids, u.Id)
	}
	return ids
}

func eventIds(events []models.Event) []uint {
	ids := make([]uint, 0, len(events))
	for _, e := range events {
		ids = append(ids, e.Id)
	}
	return ids
}
