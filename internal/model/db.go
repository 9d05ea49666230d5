package model

import "gorm.io/gorm"

func Migrate(db *gorm.DB) error {
	for _, entity := range []any{
		&Folder{},
		&Tag{},
		&Bookmark{},
		&Archive{},
		&Favicon{},
		&Settings{},
	} {
		if err := db.AutoMigrate(entity); err != nil {
			return err
		}
	}

	return nil
}
