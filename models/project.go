package models

import (
	"time"

	"gorm.io/gorm"
)

type Project struct {
	Id               uint      `gorm:"primaryKey" json:"id"`
	Name             string    `gorm:"not null" json:"name"`
	Institution      string    `json:"institution"`
	Description      string    `json:"description"`
	ShortDescription string    `json:"short_description"`
	License          string    `json:"license"`
	IsPublic         bool      `gorm:"index" json:"is_public"`
	DateCreated      time.Time `gorm:"autoCreateTime" json:"date_created"`
	DateUpdated      time.Time `gorm:"autoUpdateTime" json:"date_updated"`

	Tags       []Tag       `gorm:"many2many:project_tags" json:"tags"`
	Categories []Category  `gorm:"many2many:project_categories" json:"categories"`
	Users      []User      `gorm:"many2many:project_users" json:"users"`
	Events     []Event     `gorm:"many2many:project_events" json:"events"`
	Github     *GithubMeta `gorm:"foreignKey:ProjectId" json:"github,omitempty"`
}

// Public restricts a query to publicly visible projects. Every project
// query must go through this scope; non-public rows never leave the store.
func Public(db *gorm.DB) *gorm.DB {
	return db.Where("projects.is_public = ?", true)
}
