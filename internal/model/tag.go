package model

import (
	"strings"

	"gorm.io/gorm"
)

// Tag is a free-form label on bookmarks. Within one owner tag names are
// unique under case-insensitive comparison; the taxonomy resolver enforces
// that on lookup-or-create, the table itself carries no constraint.
type Tag struct {
	gorm.Model
	ID        string      `gorm:"primaryKey;uuid;not null"`
	OwnerID   string      `gorm:"uuid;not null;index"`
	Name      string      `gorm:"not null"`
	Bookmarks []*Bookmark `gorm:"many2many:bookmark_tags;"`
}

// NormalizeTagName trims and lower-cases a user-supplied tag name.
func NormalizeTagName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
