package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"bookstore/internal/cache"
	"bookstore/internal/compress"
	"bookstore/internal/model"
	"bookstore/internal/search"
	"bookstore/internal/store"
	"bookstore/internal/taxonomy"
)

const archiveTextTTL = time.Hour

// NewBookmarkService creates a new BookmarkService.
func NewBookmarkService(codec compress.Compress, store store.Store, textCache cache.ArchiveTextCache) *BookmarkService {
	service := &BookmarkService{
		codec: codec,
		store: store,
		cache: textCache,
	}

	return service
}

// BookmarkService is the edit/search/delete surface over one bookmark
// store. Folder paths and tag names on the way in go through a fresh
// per-request taxonomy resolver; deletions sweep the taxonomy for
// orphans before committing.
type BookmarkService struct {
	codec compress.Compress
	store store.Store
	cache cache.ArchiveTextCache
}

type AddBookmarkRequest struct {
	OwnerID string
	URL     string
	Title   string
	// Folder is a display path like "Dev/Go" or "Dev > Go"; empty files
	// the bookmark at the root.
	Folder string
	Tags   []string
}

// AddBookmark creates a bookmark, resolving its folder path and tags and
// persisting any newly created taxonomy entries in the same transaction.
func (s *BookmarkService) AddBookmark(ctx context.Context, request *AddBookmarkRequest) (*model.Bookmark, error) {
	if strings.TrimSpace(request.URL) == "" {
		return nil, ErrMissingURL
	}

	title := strings.TrimSpace(request.Title)
	if title == "" {
		title = request.URL
	}

	var bookmark *model.Bookmark
	err := s.store.Transaction(ctx, func(tx store.Store) error {
		folder, tags, err := s.resolveTaxonomy(ctx, tx, request.OwnerID, request.Folder, request.Tags)
		if err != nil {
			return err
		}

		bookmark = &model.Bookmark{
			ID:      uuid.New().String(),
			OwnerID: request.OwnerID,
			URL:     request.URL,
			Title:   title,
			Tags:    tags,
		}
		if folder != nil {
			folderID := folder.ID
			bookmark.FolderID = &folderID
			bookmark.Folder = folder
		}

		return tx.CreateBookmark(ctx, bookmark)
	})
	if err != nil {
		return nil, err
	}

	return bookmark, nil
}

type UpdateBookmarkRequest struct {
	OwnerID    string
	BookmarkID string
	URL        string
	Title      string
	Folder     string
	Tags       []string
}

// UpdateBookmark re-files an existing bookmark, resolving the new folder
// path and tag list the same way AddBookmark does. Taxonomy entries the
// bookmark leaves behind stay in place; the periodic sweeper reclaims
// them once nothing references them.
func (s *BookmarkService) UpdateBookmark(ctx context.Context, request *UpdateBookmarkRequest) (*model.Bookmark, error) {
	var bookmark *model.Bookmark
	err := s.store.Transaction(ctx, func(tx store.Store) error {
		var err error
		bookmark, err = tx.GetBookmark(ctx, request.OwnerID, request.BookmarkID)
		if err != nil {
			return err
		}

		folder, tags, err := s.resolveTaxonomy(ctx, tx, request.OwnerID, request.Folder, request.Tags)
		if err != nil {
			return err
		}

		if request.URL != "" {
			bookmark.URL = request.URL
		}
		if title := strings.TrimSpace(request.Title); title != "" {
			bookmark.Title = title
		}
		bookmark.Tags = tags
		bookmark.FolderID = nil
		bookmark.Folder = nil
		if folder != nil {
			folderID := folder.ID
			bookmark.FolderID = &folderID
			bookmark.Folder = folder
		}

		return tx.UpdateBookmark(ctx, bookmark)
	})
	if err != nil {
		return nil, err
	}

	return bookmark, nil
}

// resolveTaxonomy runs one resolver over the owner's current snapshot and
// persists whatever it created.
func (s *BookmarkService) resolveTaxonomy(ctx context.Context, tx store.Store, ownerID, folderPath string, tagNames []string) (*model.Folder, []*model.Tag, error) {
	folders, err := tx.ListFolders(ctx, ownerID)
	if err != nil {
		return nil, nil, err
	}
	existingTags, err := tx.ListTags(ctx, ownerID)
	if err != nil {
		return nil, nil, err
	}

	changes := &taxonomy.Changes{}
	resolver := taxonomy.NewResolver(ownerID, folders, existingTags, changes)

	folder := resolver.ResolveFolder(model.SplitFolderPath(folderPath))
	tags := resolver.ResolveTags(tagNames)

	for _, created := range changes.Folders {
		if err := tx.CreateFolder(ctx, created); err != nil {
			return nil, nil, err
		}
	}
	for _, created := range changes.Tags {
		if err := tx.CreateTag(ctx, created); err != nil {
			return nil, nil, err
		}
	}

	return folder, tags, nil
}

// Search parses the query string and evaluates it over the owner's full
// bookmark snapshot. An empty query falls back to the owner's default
// query, and a non-positive pageSize to the owner's default page size.
func (s *BookmarkService) Search(ctx context.Context, ownerID, rawQuery string, page, pageSize int) (*search.Result, error) {
	if rawQuery == "" || pageSize < 1 {
		settings, err := s.store.GetSettings(ctx, ownerID)
		if err != nil {
			return nil, err
		}
		if rawQuery == "" {
			rawQuery = settings.DefaultQuery
		}
		if pageSize < 1 {
			pageSize = settings.DefaultPageSize
		}
	}

	bookmarks, err := s.store.ListBookmarks(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	query := search.Parse(rawQuery)
	executor := search.NewExecutor(s.archiveTextLookup(ctx, ownerID))

	return executor.Execute(query, bookmarks, page, pageSize), nil
}

// archiveTextLookup serves intext() filters: cached archive text when
// available, otherwise a store read that warms the cache.
func (s *BookmarkService) archiveTextLookup(ctx context.Context, ownerID string) search.ArchiveTextFunc {
	return func(bookmarkID string) (string, bool) {
		if s.cache != nil {
			text, ok, err := s.cache.GetText(ctx, bookmarkID)
			if err != nil {
				logrus.Errorf("archive text cache read failed: %v", err)
			} else if ok {
				return text, true
			}
		}

		archive, err := s.store.GetArchiveByBookmark(ctx, ownerID, bookmarkID)
		if err != nil || archive.PlainText == nil {
			return "", false
		}

		if s.cache != nil {
			if err := s.cache.SetText(ctx, bookmarkID, *archive.PlainText, archiveTextTTL); err != nil {
				logrus.Errorf("archive text cache write failed: %v", err)
			}
		}

		return *archive.PlainText, true
	}
}

// DeleteBookmarks removes the given bookmarks and, in the same
// transaction, every folder, tag and archive that the removal leaves
// unreferenced. It returns what was reclaimed.
func (s *BookmarkService) DeleteBookmarks(ctx context.Context, ownerID string, ids []string) (*taxonomy.ReclaimSet, error) {
	var reclaimed *taxonomy.ReclaimSet
	var deleting []*model.Bookmark

	err := s.store.Transaction(ctx, func(tx store.Store) error {
		var err error
		deleting, err = tx.ListBookmarksFromIDs(ctx, ownerID, ids)
		if err != nil {
			return err
		}
		if len(deleting) == 0 {
			reclaimed = &taxonomy.ReclaimSet{}
			return nil
		}

		folders, err := tx.ListFolders(ctx, ownerID)
		if err != nil {
			return err
		}
		tags, err := tx.ListTags(ctx, ownerID)
		if err != nil {
			return err
		}
		bookmarks, err := tx.ListBookmarks(ctx, ownerID)
		if err != nil {
			return err
		}

		reclaimed = taxonomy.NewReclaimer(folders, tags, bookmarks, nil).Reclaim(deleting)

		deletingIDs := make([]string, len(deleting))
		for i, bookmark := range deleting {
			deletingIDs[i] = bookmark.ID
		}

		if err := tx.DeleteBookmarks(ctx, ownerID, deletingIDs); err != nil {
			return err
		}
		if err := tx.DeleteFolders(ctx, ownerID, reclaimed.FolderIDs()); err != nil {
			return err
		}
		if err := tx.DeleteTags(ctx, ownerID, reclaimed.TagIDs()); err != nil {
			return err
		}
		if err := tx.DeleteArchives(ctx, ownerID, reclaimed.Archives); err != nil {
			return err
		}

		var faviconIDs []string
		for _, bookmark := range deleting {
			if bookmark.FaviconID != nil {
				faviconIDs = append(faviconIDs, *bookmark.FaviconID)
			}
		}
		return tx.DeleteFavicons(ctx, faviconIDs)
	})
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		for _, bookmark := range deleting {
			if err := s.cache.DeleteText(ctx, bookmark.ID); err != nil {
				logrus.Errorf("archive text cache invalidation failed: %v", err)
			}
		}
	}

	return reclaimed, nil
}

type SetArchiveRequest struct {
	OwnerID    string
	BookmarkID string
	Bytes      []byte
	Formatted  []byte
	PlainText  *string
	Mime       string
}

// SetArchive attaches (or replaces) the stored page content of a
// bookmark. Raw and formatted renderings are compressed with the
// service codec; the extracted plain text stays uncompressed for search.
func (s *BookmarkService) SetArchive(ctx context.Context, request *SetArchiveRequest) (*model.Archive, error) {
	if len(request.Bytes) == 0 {
		return nil, ErrMissingArchiveContent
	}

	raw, err := s.codec.Encode(request.Bytes)
	if err != nil {
		return nil, err
	}
	var formatted []byte
	if len(request.Formatted) > 0 {
		if formatted, err = s.codec.Encode(request.Formatted); err != nil {
			return nil, err
		}
	}

	archive := &model.Archive{
		ID:          uuid.New().String(),
		OwnerID:     request.OwnerID,
		BookmarkID:  request.BookmarkID,
		Bytes:       raw,
		Formatted:   formatted,
		PlainText:   request.PlainText,
		Mime:        request.Mime,
		Compression: s.codec.Name(),
	}

	err = s.store.Transaction(ctx, func(tx store.Store) error {
		bookmark, err := tx.GetBookmark(ctx, request.OwnerID, request.BookmarkID)
		if err != nil {
			return err
		}

		if bookmark.ArchiveID != nil {
			if err := tx.DeleteArchives(ctx, request.OwnerID, []string{*bookmark.ArchiveID}); err != nil {
				return err
			}
		}

		if err := tx.CreateArchive(ctx, archive); err != nil {
			return err
		}

		archiveID := archive.ID
		bookmark.ArchiveID = &archiveID
		return tx.UpdateBookmark(ctx, bookmark)
	})
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.DeleteText(ctx, request.BookmarkID); err != nil {
			logrus.Errorf("archive text cache invalidation failed: %v", err)
		}
	}

	return archive, nil
}

// GetArchive returns the bookmark's archive with Bytes and Formatted
// decoded using the codec the archive was written with.
func (s *BookmarkService) GetArchive(ctx context.Context, ownerID, bookmarkID string) (*model.Archive, error) {
	archive, err := s.store.GetArchiveByBookmark(ctx, ownerID, bookmarkID)
	if err != nil {
		return nil, err
	}

	codec := compress.ByName(archive.Compression)
	if archive.Bytes, err = codec.Decode(archive.Bytes); err != nil {
		return nil, err
	}
	if len(archive.Formatted) > 0 {
		if archive.Formatted, err = codec.Decode(archive.Formatted); err != nil {
			return nil, err
		}
	}

	return archive, nil
}

// DropArchive detaches and deletes a bookmark's archive.
func (s *BookmarkService) DropArchive(ctx context.Context, ownerID, bookmarkID string) error {
	err := s.store.Transaction(ctx, func(tx store.Store) error {
		bookmark, err := tx.GetBookmark(ctx, ownerID, bookmarkID)
		if err != nil {
			return err
		}
		if bookmark.ArchiveID == nil {
			return ErrNoArchive
		}

		if err := tx.DeleteArchives(ctx, ownerID, []string{*bookmark.ArchiveID}); err != nil {
			return err
		}

		bookmark.ArchiveID = nil
		return tx.UpdateBookmark(ctx, bookmark)
	})
	if err != nil {
		return err
	}

	if s.cache != nil {
		if err := s.cache.DeleteText(ctx, bookmarkID); err != nil {
			logrus.Errorf("archive text cache invalidation failed: %v", err)
		}
	}

	return nil
}

type SetFaviconRequest struct {
	OwnerID    string
	BookmarkID string
	Data       []byte
	Mime       string
	SourceURL  string
}

// SetFavicon attaches (or replaces) the site icon of a bookmark. Icons
// are small and stay uncompressed.
func (s *BookmarkService) SetFavicon(ctx context.Context, request *SetFaviconRequest) (*model.Favicon, error) {
	favicon := &model.Favicon{
		ID:        uuid.New().String(),
		Data:      request.Data,
		Mime:      request.Mime,
		SourceURL: request.SourceURL,
	}

	err := s.store.Transaction(ctx, func(tx store.Store) error {
		bookmark, err := tx.GetBookmark(ctx, request.OwnerID, request.BookmarkID)
		if err != nil {
			return err
		}

		if bookmark.FaviconID != nil {
			if err := tx.DeleteFavicons(ctx, []string{*bookmark.FaviconID}); err != nil {
				return err
			}
		}

		if err := tx.CreateFavicon(ctx, favicon); err != nil {
			return err
		}

		faviconID := favicon.ID
		bookmark.FaviconID = &faviconID
		return tx.UpdateBookmark(ctx, bookmark)
	})
	if err != nil {
		return nil, err
	}

	return favicon, nil
}

// GetFavicon returns the site icon attached to a bookmark.
func (s *BookmarkService) GetFavicon(ctx context.Context, ownerID, bookmarkID string) (*model.Favicon, error) {
	bookmark, err := s.store.GetBookmark(ctx, ownerID, bookmarkID)
	if err != nil {
		return nil, err
	}
	if bookmark.FaviconID == nil {
		return nil, ErrNoFavicon
	}

	return s.store.GetFavicon(ctx, *bookmark.FaviconID)
}

// Stats summarizes one owner's collection.
type Stats struct {
	Bookmarks    int
	Archived     int
	Folders      int
	Tags         int
	ArchiveBytes int64
}

func (s *BookmarkService) Stats(ctx context.Context, ownerID string) (*Stats, error) {
	bookmarks, err := s.store.ListBookmarks(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	folders, err := s.store.ListFolders(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	tags, err := s.store.ListTags(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	archives, err := s.store.ListArchives(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	stats := &Stats{
		Bookmarks: len(bookmarks),
		Archived:  len(archives),
		Folders:   len(folders),
		Tags:      len(tags),
	}
	for _, archive := range archives {
		stats.ArchiveBytes += archive.ByteCount()
	}

	return stats, nil
}

func (s *BookmarkService) GetSettings(ctx context.Context, ownerID string) (*model.Settings, error) {
	return s.store.GetSettings(ctx, ownerID)
}

type UpdateSettingsRequest struct {
	OwnerID          string
	DefaultQuery     string
	DefaultPageSize  int
	ArchiveByDefault bool
}

func (s *BookmarkService) UpdateSettings(ctx context.Context, request *UpdateSettingsRequest) (*model.Settings, error) {
	settings, err := s.store.GetSettings(ctx, request.OwnerID)
	if err != nil {
		return nil, err
	}

	settings.DefaultQuery = request.DefaultQuery
	settings.ArchiveByDefault = request.ArchiveByDefault
	if request.DefaultPageSize > 0 {
		settings.DefaultPageSize = request.DefaultPageSize
	}

	if err := s.store.SaveSettings(ctx, settings); err != nil {
		return nil, err
	}

	return settings, nil
}
