package store

import (
	"context"

	"bookstore/internal/model"
)

type Store interface {
	BookmarkStore
	TaxonomyStore
	ArchiveStore
	FaviconStore
	SettingsStore
	Transaction(ctx context.Context, f func(tx Store) error) error
	Migrate() error
}

type BookmarkStore interface {
	// CreateBookmark creates a new bookmark with its tag associations.
	CreateBookmark(ctx context.Context, bookmark *model.Bookmark) error
	// GetBookmark retrieves one bookmark with folder and tags resolved.
	GetBookmark(ctx context.Context, ownerID, id string) (*model.Bookmark, error)
	// ListBookmarks retrieves an owner's full bookmark snapshot with
	// folder parent chains linked and tags resolved.
	ListBookmarks(ctx context.Context, ownerID string) ([]*model.Bookmark, error)
	// ListBookmarksFromIDs retrieves a subset of an owner's bookmarks.
	ListBookmarksFromIDs(ctx context.Context, ownerID string, ids []string) ([]*model.Bookmark, error)
	// UpdateBookmark saves a modified bookmark and its associations.
	UpdateBookmark(ctx context.Context, bookmark *model.Bookmark) error
	// DeleteBookmarks deletes bookmarks by ID.
	DeleteBookmarks(ctx context.Context, ownerID string, ids []string) error
}

type TaxonomyStore interface {
	// ListFolders retrieves an owner's folders with parent chains linked.
	ListFolders(ctx context.Context, ownerID string) ([]*model.Folder, error)
	// ListTags retrieves an owner's tags with bookmark associations.
	ListTags(ctx context.Context, ownerID string) ([]*model.Tag, error)
	// CreateFolder registers a folder resolved for the first time.
	CreateFolder(ctx context.Context, folder *model.Folder) error
	// CreateTag registers a tag resolved for the first time.
	CreateTag(ctx context.Context, tag *model.Tag) error
	// DeleteFolders deletes folders by ID.
	DeleteFolders(ctx context.Context, ownerID string, ids []string) error
	// DeleteTags deletes tags by ID.
	DeleteTags(ctx context.Context, ownerID string, ids []string) error
	// ListOwnerIDs lists the owners that have any taxonomy entries.
	ListOwnerIDs(ctx context.Context) ([]string, error)
}

type ArchiveStore interface {
	// CreateArchive stores the archive of a bookmark.
	CreateArchive(ctx context.Context, archive *model.Archive) error
	// GetArchiveByBookmark retrieves the archive attached to a bookmark.
	GetArchiveByBookmark(ctx context.Context, ownerID, bookmarkID string) (*model.Archive, error)
	// ListArchives retrieves all archives of an owner.
	ListArchives(ctx context.Context, ownerID string) ([]*model.Archive, error)
	// DeleteArchives deletes archives by ID.
	DeleteArchives(ctx context.Context, ownerID string, ids []string) error
}

type FaviconStore interface {
	// CreateFavicon stores a site icon.
	CreateFavicon(ctx context.Context, favicon *model.Favicon) error
	// GetFavicon retrieves a site icon by ID.
	GetFavicon(ctx context.Context, id string) (*model.Favicon, error)
	// DeleteFavicons deletes site icons by ID.
	DeleteFavicons(ctx context.Context, ids []string) error
}

type SettingsStore interface {
	// GetSettings retrieves an owner's settings, falling back to defaults.
	GetSettings(ctx context.Context, ownerID string) (*model.Settings, error)
	// SaveSettings creates or replaces an owner's settings.
	SaveSettings(ctx context.Context, settings *model.Settings) error
}
