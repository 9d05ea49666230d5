package model

import (
	"net/url"
	"strings"

	"gorm.io/gorm"
)

// Bookmark is a saved link owned by one user. The folder reference is
// optional; a nil FolderID files the bookmark at the root. Archive and
// favicon live in their own tables so that list queries stay cheap.
type Bookmark struct {
	gorm.Model
	ID        string  `gorm:"primaryKey;uuid;not null"`
	OwnerID   string  `gorm:"uuid;not null;index"`
	URL       string  `gorm:"not null"`
	Title     string  `gorm:"not null"`
	FolderID  *string `gorm:"uuid;index"`
	Folder    *Folder `gorm:"foreignKey:FolderID"`
	Tags      []*Tag  `gorm:"many2many:bookmark_tags;"`
	ArchiveID *string `gorm:"uuid"`
	FaviconID *string `gorm:"uuid"`
}

// Archived reports whether the bookmark has an archive attached.
func (b *Bookmark) Archived() bool {
	return b.ArchiveID != nil
}

// Domain returns the lower-cased host of the bookmark URL, or the empty
// string when the URL does not parse.
func (b *Bookmark) Domain() string {
	u, err := url.Parse(b.URL)
	if err != nil {
		return ""
	}
	return strings.ToLower(u.Hostname())
}

// TagNames returns the bookmark's tag names in unspecified order.
func (b *Bookmark) TagNames() []string {
	names := make([]string, 0, len(b.Tags))
	for _, tag := range b.Tags {
		names = append(names, tag.Name)
	}
	return names
}
