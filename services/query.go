package services

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"gorm.io/gorm"

	"scienceapi/api/errs"
	"scienceapi/api/types"
	"scienceapi/models"
)

// SearchField declares one free-text searchable field. Exact fields match
// the whole value case-insensitively, the rest match by substring. Fields
// with a Relation live on a many2many related table and are resolved
// through a subquery on the join table.
type SearchField struct {
	Column   string
	Exact    bool
	Relation string
}

var ProjectSearchFields = []SearchField{
	{Column: "projects.name"},
	{Column: "projects.institution", Exact: true},
	{Column: "projects.description"},
	{Column: "projects.short_description"},
	{Column: "projects.license", Exact: true},
	{Column: "tags.name", Exact: true, Relation: "tags"},
	{Column: "categories.name", Exact: true, Relation: "categories"},
}

var ProjectSortFields = []string{"date_created", "date_updated"}

var projectRelations = map[string]struct {
	joinTable string
	joinCol   string
}{
	"tags":       {"project_tags", "tag_id"},
	"categories": {"project_categories", "category_id"},
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// relatedNameQuery selects the ids of projects whose related entity name
// equals the given value, case-folded.
func relatedNameQuery(relation, name string) *gorm.DB {
	rel := projectRelations[relation]
	return models.DB.Table(rel.joinTable).
		Select(rel.joinTable+".project_id").
		Joins(fmt.Sprintf("JOIN %s ON %s.id = %s.%s", relation, relation, rel.joinTable, rel.joinCol)).
		Where(fmt.Sprintf("LOWER(%s.name) = ?", relation), strings.ToLower(name))
}

// FilterByRelatedName narrows the query to projects holding a related
// entity (tag or category) with the given name. The subquery keeps the
// outer row set free of join duplicates.
func FilterByRelatedName(db *gorm.DB, relation, name string) *gorm.DB {
	return db.Where("projects.id IN (?)", relatedNameQuery(relation, name))
}

// ApplySearch narrows the query by the raw search parameter. The parameter
// splits on commas into terms as-is: no trimming, an empty parameter is one
// empty term. A project matches when any term matches any searchable field.
func ApplySearch(db *gorm.DB, raw string) *gorm.DB {
	var group *gorm.DB
	for _, term := range strings.Split(raw, ",") {
		lowered := strings.ToLower(term)
		for _, field := range ProjectSearchFields {
			var cond *gorm.DB
			switch {
			case field.Relation != "":
				cond = models.DB.Where("projects.id IN (?)", relatedNameQuery(field.Relation, term))
			case field.Exact:
				cond = models.DB.Where("LOWER("+field.Column+") = ?", lowered)
			default:
				cond = models.DB.Where("LOWER("+field.Column+") LIKE ? ESCAPE '\\'", "%"+likeEscaper.Replace(lowered)+"%")
			}
			if group == nil {
				group = cond
			} else {
				group = group.Or(cond)
			}
		}
	}
	if group == nil {
		return db
	}
	return db.Where(group)
}

// SortClause validates the sort parameter and returns the ORDER BY clause.
// A leading '-' flips to descending. Unknown fields are rejected rather
// than ignored.
func SortClause(sort string) (string, error) {
	if sort == "" {
		return "", nil
	}
	field := strings.TrimPrefix(sort, "-")
	if !slices.Contains(ProjectSortFields, field) {
		return "", errs.ErrInvalidSort
	}
	if strings.HasPrefix(sort, "-") {
		return field + " DESC", nil
	}
	return field, nil
}

// Paginate counts the refined query, validates the requested page number
// and returns the page envelope together with the offset/limited query.
// Pages start at 1; a page past the last one is a not-found condition.
func Paginate(db *gorm.DB, rawPage string, size int) (*types.Page, *gorm.DB, error) {
	page := 1
	if rawPage != "" {
		n, err := strconv.Atoi(rawPage)
		if err != nil || n < 1 {
			return nil, nil, errs.ErrInvalidPage
		}
		page = n
	}

	db = db.Session(&gorm.Session{})
	var count int64
	if err := db.Count(&count).Error; err != nil {
		return nil, nil, err
	}

	pages := int((count + int64(size) - 1) / int64(size))
	if pages == 0 {
		pages = 1
	}
	if page > pages {
		return nil, nil, errs.ErrPageNotFound
	}

	envelope := &types.Page{
		Count: count,
		Page:  page,
		Pages: pages,
	}
	return envelope, db.Offset((page - 1) * size).Limit(size), nil
}
