package store

import (
	"context"
	"errors"

	mapset "github.com/deckarep/golang-set/v2"
	"gorm.io/gorm"

	"bookstore/internal/model"
)

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{
		db: db,
	}
}

var _ Store = (*GormStore)(nil)

type GormStore struct {
	db *gorm.DB
}

func (g *GormStore) CreateBookmark(ctx context.Context, bookmark *model.Bookmark) error {
	return g.db.WithContext(ctx).Create(bookmark).Error
}

func (g *GormStore) GetBookmark(ctx context.Context, ownerID, id string) (*model.Bookmark, error) {
	var bookmark model.Bookmark
	err := g.db.WithContext(ctx).
		Preload("Tags").
		Where("id = ? AND owner_id = ?", id, ownerID).
		First(&bookmark).Error
	if err != nil {
		return nil, err
	}

	if err := g.attachFolders(ctx, ownerID, []*model.Bookmark{&bookmark}); err != nil {
		return nil, err
	}

	return &bookmark, nil
}

func (g *GormStore) ListBookmarks(ctx context.Context, ownerID string) ([]*model.Bookmark, error) {
	var bookmarks []*model.Bookmark
	err := g.db.WithContext(ctx).
		Preload("Tags").
		Where("owner_id = ?", ownerID).
		Find(&bookmarks).Error
	if err != nil {
		return nil, err
	}

	if err := g.attachFolders(ctx, ownerID, bookmarks); err != nil {
		return nil, err
	}

	return bookmarks, nil
}

func (g *GormStore) ListBookmarksFromIDs(ctx context.Context, ownerID string, ids []string) ([]*model.Bookmark, error) {
	var bookmarks []*model.Bookmark
	err := g.db.WithContext(ctx).
		Preload("Tags").
		Where("owner_id = ? AND id IN (?)", ownerID, ids).
		Find(&bookmarks).Error
	if err != nil {
		return nil, err
	}

	if err := g.attachFolders(ctx, ownerID, bookmarks); err != nil {
		return nil, err
	}

	return bookmarks, nil
}

// attachFolders loads the owner's full folder tree once and points each
// bookmark at its linked folder node, so ancestor walks work even when the
// intermediate folders hold no bookmarks themselves.
func (g *GormStore) attachFolders(ctx context.Context, ownerID string, bookmarks []*model.Bookmark) error {
	folders, err := g.ListFolders(ctx, ownerID)
	if err != nil {
		return err
	}

	byID := make(map[string]*model.Folder, len(folders))
	for _, folder := range folders {
		byID[folder.ID] = folder
	}

	for _, bookmark := range bookmarks {
		if bookmark.FolderID != nil {
			bookmark.Folder = byID[*bookmark.FolderID]
		}
	}

	return nil
}

func (g *GormStore) UpdateBookmark(ctx context.Context, bookmark *model.Bookmark) error {
	if err := g.db.WithContext(ctx).Save(bookmark).Error; err != nil {
		return err
	}

	return g.db.WithContext(ctx).Model(bookmark).Association("Tags").Replace(bookmark.Tags)
}

func (g *GormStore) DeleteBookmarks(ctx context.Context, ownerID string, ids []string) error {
	return g.db.WithContext(ctx).
		Where("owner_id = ? AND id IN (?)", ownerID, ids).
		Delete(&model.Bookmark{}).Error
}

func (g *GormStore) ListFolders(ctx context.Context, ownerID string) ([]*model.Folder, error) {
	var folders []*model.Folder
	err := g.db.WithContext(ctx).Where("owner_id = ?", ownerID).Find(&folders).Error
	if err != nil {
		return nil, err
	}

	model.LinkFolders(folders)

	return folders, nil
}

func (g *GormStore) ListTags(ctx context.Context, ownerID string) ([]*model.Tag, error) {
	var tags []*model.Tag
	err := g.db.WithContext(ctx).
		Preload("Bookmarks").
		Where("owner_id = ?", ownerID).
		Find(&tags).Error
	return tags, err
}

func (g *GormStore) CreateFolder(ctx context.Context, folder *model.Folder) error {
	return g.db.WithContext(ctx).Create(folder).Error
}

func (g *GormStore) CreateTag(ctx context.Context, tag *model.Tag) error {
	return g.db.WithContext(ctx).Create(tag).Error
}

func (g *GormStore) DeleteFolders(ctx context.Context, ownerID string, ids []string) error {
	if len(ids) == 0 {
		return nil
	}

	return g.db.WithContext(ctx).
		Where("owner_id = ? AND id IN (?)", ownerID, ids).
		Delete(&model.Folder{}).Error
}

func (g *GormStore) DeleteTags(ctx context.Context, ownerID string, ids []string) error {
	if len(ids) == 0 {
		return nil
	}

	return g.db.WithContext(ctx).
		Where("owner_id = ? AND id IN (?)", ownerID, ids).
		Delete(&model.Tag{}).Error
}

func (g *GormStore) ListOwnerIDs(ctx context.Context) ([]string, error) {
	owners := mapset.NewSet[string]()

	for _, entity := range []any{&model.Folder{}, &model.Tag{}} {
		var ids []string
		err := g.db.WithContext(ctx).Model(entity).Distinct().Pluck("owner_id", &ids).Error
		if err != nil {
			return nil, err
		}
		owners.Append(ids...)
	}

	return owners.ToSlice(), nil
}

func (g *GormStore) CreateArchive(ctx context.Context, archive *model.Archive) error {
	return g.db.WithContext(ctx).Create(archive).Error
}

func (g *GormStore) GetArchiveByBookmark(ctx context.Context, ownerID, bookmarkID string) (*model.Archive, error) {
	var archive model.Archive
	err := g.db.WithContext(ctx).
		Where("owner_id = ? AND bookmark_id = ?", ownerID, bookmarkID).
		First(&archive).Error
	if err != nil {
		return nil, err
	}
	return &archive, nil
}

func (g *GormStore) ListArchives(ctx context.Context, ownerID string) ([]*model.Archive, error) {
	var archives []*model.Archive
	err := g.db.WithContext(ctx).Where("owner_id = ?", ownerID).Find(&archives).Error
	return archives, err
}

func (g *GormStore) DeleteArchives(ctx context.Context, ownerID string, ids []string) error {
	if len(ids) == 0 {
		return nil
	}

	return g.db.WithContext(ctx).
		Where("owner_id = ? AND id IN (?)", ownerID, ids).
		Delete(&model.Archive{}).Error
}

func (g *GormStore) CreateFavicon(ctx context.Context, favicon *model.Favicon) error {
	return g.db.WithContext(ctx).Create(favicon).Error
}

func (g *GormStore) GetFavicon(ctx context.Context, id string) (*model.Favicon, error) {
	var favicon model.Favicon
	err := g.db.WithContext(ctx).Where("id = ?", id).First(&favicon).Error
	if err != nil {
		return nil, err
	}
	return &favicon, nil
}

func (g *GormStore) DeleteFavicons(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}

	return g.db.WithContext(ctx).
		Where("id IN (?)", ids).
		Delete(&model.Favicon{}).Error
}

func (g *GormStore) GetSettings(ctx context.Context, ownerID string) (*model.Settings, error) {
	var settings model.Settings
	err := g.db.WithContext(ctx).Where("owner_id = ?", ownerID).First(&settings).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.DefaultSettings(ownerID), nil
	}
	if err != nil {
		return nil, err
	}
	return &settings, nil
}

func (g *GormStore) SaveSettings(ctx context.Context, settings *model.Settings) error {
	return g.db.WithContext(ctx).Save(settings).Error
}

func (g *GormStore) Migrate() error {
	return model.Migrate(g.db)
}

func (g *GormStore) Transaction(ctx context.Context, f func(tx Store) error) error {
	return g.db.Transaction(func(tx *gorm.DB) error {
		return f(&GormStore{db: tx})
	})
}
