package types

import "strings"

type ProjectListQuery struct {
	Search     string `form:"search"`
	Sort       string `form:"sort"`
	Tags       string `form:"tags"`
	Categories string `form:"categories"`
	Page       string `form:"page"`
}

// ExpandMode is the four-way dispatch over the recognized `expand` tokens.
type ExpandMode int

const (
	ExpandNone ExpandMode = iota
	ExpandUsers
	ExpandEvents
	ExpandAll
)

// ParseExpand reduces a raw `expand` parameter to its mode. Tokens are
// matched case-sensitively; duplicates and unknown tokens carry no weight,
// so an absent or empty parameter lands on ExpandNone.
func ParseExpand(raw string) ExpandMode {
	var users, events bool
	for _, token := range strings.Split(raw, ",") {
		switch token {
		case "users":
			users = true
		case "events":
			events = true
		}
	}

	switch {
	case users && events:
		return ExpandAll
	case users:
		return ExpandUsers
	case events:
		return ExpandEvents
	default:
		return ExpandNone
	}
}
