package model

import "gorm.io/gorm"

// Favicon stores the small site icon of a bookmark. It could live on the
// bookmark row, but keeping the blob in its own table speeds up queries
// that touch many bookmarks at once.
type Favicon struct {
	gorm.Model
	ID        string `gorm:"primaryKey;uuid;not null"`
	Data      []byte `gorm:"not null"`
	Mime      string
	SourceURL string
}
