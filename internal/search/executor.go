package search

import (
	"fmt"
	"sort"
	"strings"

	"bookstore/internal/model"
)

// ArchiveTextFunc returns the extracted plain text of a bookmark's
// archive. ok is false when the bookmark has no archive or the archive
// carries no extracted text; such bookmarks never pass an intext filter.
type ArchiveTextFunc func(bookmarkID string) (text string, ok bool)

// Result is one evaluated, paginated search.
type Result struct {
	Bookmarks    []*model.Bookmark
	TotalMatched int
	TotalAll     int
	Page         int
	PageSize     int
}

// PageCount returns the number of pages of the filtered result.
func (r *Result) PageCount() int {
	if r.TotalMatched == 0 {
		return 0
	}
	return (r.TotalMatched + r.PageSize - 1) / r.PageSize
}

// Executor evaluates structured queries against an owner's bookmark
// snapshot. It is a read-only pass and holds no state besides the archive
// text collaborator.
type Executor struct {
	archiveText ArchiveTextFunc
}

func NewExecutor(archiveText ArchiveTextFunc) *Executor {
	if archiveText == nil {
		archiveText = func(string) (string, bool) { return "", false }
	}
	return &Executor{archiveText: archiveText}
}

// Execute filters, sorts and paginates the snapshot. page and pageSize
// are clamped to at least 1; a page past the end yields an empty result.
func (e *Executor) Execute(query *Query, bookmarks []*model.Bookmark, page, pageSize int) *Result {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 1
	}

	matched := make([]*model.Bookmark, 0, len(bookmarks))
	for _, bookmark := range bookmarks {
		if e.matches(query, bookmark) {
			matched = append(matched, bookmark)
		}
	}

	// Stable sort: equal keys keep the snapshot's iteration order so
	// repeated identical queries page consistently.
	key := sortKeys[query.SortField]
	sort.SliceStable(matched, func(i, j int) bool {
		if query.SortDir == Descending {
			return key(matched[j]) < key(matched[i])
		}
		return key(matched[i]) < key(matched[j])
	})

	start := (page - 1) * pageSize
	end := start + pageSize
	if start > len(matched) {
		start = len(matched)
	}
	if end > len(matched) {
		end = len(matched)
	}

	return &Result{
		Bookmarks:    matched[start:end],
		TotalMatched: len(matched),
		TotalAll:     len(bookmarks),
		Page:         page,
		PageSize:     pageSize,
	}
}

// sortKeys maps each sort field to its key extraction. Keys compare as
// strings; the modified timestamp is rendered fixed-width for that.
var sortKeys = map[Field]func(*model.Bookmark) string{
	SortByTitle: func(b *model.Bookmark) string { return strings.ToLower(b.Title) },
	SortByURL:   func(b *model.Bookmark) string { return strings.ToLower(b.URL) },
	SortByTag: func(b *model.Bookmark) string {
		names := b.TagNames()
		for i, name := range names {
			names[i] = strings.ToLower(name)
		}
		sort.Strings(names)
		return strings.Join(names, ",")
	},
	SortByFolder: func(b *model.Bookmark) string {
		if b.Folder == nil {
			return ""
		}
		return strings.ToLower(b.Folder.Path())
	},
	SortByArchived: func(b *model.Bookmark) string {
		if b.Archived() {
			return "0"
		}
		return "1"
	},
	SortByModified: func(b *model.Bookmark) string {
		return fmt.Sprintf("%020d", b.UpdatedAt.UnixNano())
	},
	SortByDomain: func(b *model.Bookmark) string { return b.Domain() },
}

// matches applies every filter category; all of them must pass.
func (e *Executor) matches(query *Query, bookmark *model.Bookmark) bool {
	if !e.matchesTerms(query.Terms, bookmark) {
		return false
	}

	if query.Archived != nil && bookmark.Archived() != *query.Archived {
		return false
	}

	if !matchCalls(query.Titles, func(arg string) bool {
		return containsFold(bookmark.Title, arg)
	}) {
		return false
	}

	if !matchCalls(query.URLs, func(arg string) bool {
		return containsFold(bookmark.URL, arg)
	}) {
		return false
	}

	if !matchCalls(query.Tags, func(arg string) bool {
		for _, name := range bookmark.TagNames() {
			if containsFold(name, arg) {
				return true
			}
		}
		return false
	}) {
		return false
	}

	own := ownPath(bookmark)
	if !matchPathCalls(query.Folders, func(target Path) bool {
		return own.Equal(target)
	}) {
		return false
	}

	if !matchPathCalls(query.Ancestors, func(target Path) bool {
		for node := bookmark.Folder; node != nil; node = node.Parent {
			if foldedPath(node).Equal(target) {
				return true
			}
		}
		return false
	}) {
		return false
	}

	if !matchCalls(query.Texts, func(arg string) bool {
		text, ok := e.archiveText(bookmark.ID)
		return ok && containsFold(text, arg)
	}) {
		return false
	}

	return true
}

// matchesTerms is the general filter: a bookmark passes when any term
// matches any of url, title, a tag name, or an ancestor folder name.
func (e *Executor) matchesTerms(terms []string, bookmark *model.Bookmark) bool {
	if len(terms) == 0 {
		return true
	}

	for _, term := range terms {
		if containsFold(bookmark.URL, term) || containsFold(bookmark.Title, term) {
			return true
		}
		for _, name := range bookmark.TagNames() {
			if strings.EqualFold(name, term) {
				return true
			}
		}
		for node := bookmark.Folder; node != nil; node = node.Parent {
			if strings.EqualFold(node.Name, term) {
				return true
			}
		}
	}

	return false
}

// matchCalls evaluates one named filter: AND over the arguments of a
// call, OR over repeated calls. No calls means the filter is absent.
func matchCalls(calls [][]string, match func(arg string) bool) bool {
	if len(calls) == 0 {
		return true
	}

	for _, args := range calls {
		all := true
		for _, arg := range args {
			if !match(arg) {
				all = false
				break
			}
		}
		if all {
			return true
		}
	}

	return false
}

func matchPathCalls(calls [][]Path, match func(target Path) bool) bool {
	if len(calls) == 0 {
		return true
	}

	for _, paths := range calls {
		all := true
		for _, path := range paths {
			if !match(path) {
				all = false
				break
			}
		}
		if all {
			return true
		}
	}

	return false
}

func ownPath(bookmark *model.Bookmark) Path {
	if bookmark.Folder == nil {
		return nil
	}
	return foldedSegments(bookmark.Folder.PathSegments())
}

func foldedPath(folder *model.Folder) Path {
	return foldedSegments(folder.PathSegments())
}

func foldedSegments(segments []string) Path {
	path := make(Path, len(segments))
	for i, segment := range segments {
		path[i] = strings.ToLower(segment)
	}
	return path
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}
