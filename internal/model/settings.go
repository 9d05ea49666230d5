package model

import "gorm.io/gorm"

const defaultPageSize = 100

// Settings are the per-owner preferences applied by the search surface.
type Settings struct {
	gorm.Model
	OwnerID          string `gorm:"primaryKey;uuid;not null"`
	DefaultQuery     string
	DefaultPageSize  int
	ArchiveByDefault bool
}

// DefaultSettings returns the settings used before an owner saved any.
func DefaultSettings(ownerID string) *Settings {
	return &Settings{
		OwnerID:         ownerID,
		DefaultPageSize: defaultPageSize,
	}
}
