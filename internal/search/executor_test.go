package search

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"bookstore/internal/model"
)

// folderChain builds a linked folder chain, root name first, and returns
// the deepest folder.
func folderChain(names ...string) *model.Folder {
	var parent *model.Folder
	for _, name := range names {
		folder := &model.Folder{ID: "folder-" + name, Name: name, Parent: parent}
		if parent != nil {
			parentID := parent.ID
			folder.ParentID = &parentID
		}
		parent = folder
	}
	return parent
}

func tagged(names ...string) []*model.Tag {
	tags := make([]*model.Tag, len(names))
	for i, name := range names {
		tags[i] = &model.Tag{ID: "tag-" + name, Name: name}
	}
	return tags
}

func titles(result *Result) []string {
	names := make([]string, len(result.Bookmarks))
	for i, bookmark := range result.Bookmarks {
		names[i] = bookmark.Title
	}
	return names
}

func TestExecute_TagAndOr(t *testing.T) {
	bookmarks := []*model.Bookmark{
		{ID: "1", Title: "both", Tags: tagged("a", "b")},
		{ID: "2", Title: "only a", Tags: tagged("a")},
		{ID: "3", Title: "only c", Tags: tagged("c")},
		{ID: "4", Title: "none"},
	}

	result := NewExecutor(nil).Execute(Parse("tag(a,b) tag(c)"), bookmarks, 1, 10)

	assert.Equal(t, 2, result.TotalMatched)
	assert.Equal(t, []string{"both", "only c"}, titles(result))
}

func TestExecute_FolderExactVsAncestor(t *testing.T) {
	bookmarks := []*model.Bookmark{
		{ID: "1", Title: "deep", Folder: folderChain("Dev", "Go")},
		{ID: "2", Title: "shallow", Folder: folderChain("Dev")},
		{ID: "3", Title: "root"},
	}
	executor := NewExecutor(nil)

	result := executor.Execute(Parse("folder(Dev)"), bookmarks, 1, 10)
	assert.Equal(t, []string{"shallow"}, titles(result))

	result = executor.Execute(Parse("folder(dev/go)"), bookmarks, 1, 10)
	assert.Equal(t, []string{"deep"}, titles(result))

	result = executor.Execute(Parse("folders(Dev)"), bookmarks, 1, 10)
	assert.Equal(t, []string{"deep", "shallow"}, titles(result))

	// the bookmark's own path counts as an ancestor of itself
	result = executor.Execute(Parse("folders(Dev/Go)"), bookmarks, 1, 10)
	assert.Equal(t, []string{"deep"}, titles(result))

	// "Go" alone is not an ancestor path, only "Dev/Go" is
	result = executor.Execute(Parse("folders(Go)"), bookmarks, 1, 10)
	assert.Equal(t, 0, result.TotalMatched)
}

func TestExecute_GeneralTerms(t *testing.T) {
	bookmarks := []*model.Bookmark{
		{ID: "1", Title: "Go weekly", URL: "https://golangweekly.com"},
		{ID: "2", Title: "Rust blog", URL: "https://example.com", Tags: tagged("go")},
		{ID: "3", Title: "News", URL: "https://news.site", Folder: folderChain("Go")},
		{ID: "4", Title: "Cooking", URL: "https://tasty.example"},
	}

	// tag and folder names match whole, url and title by substring
	result := NewExecutor(nil).Execute(Parse("go"), bookmarks, 1, 10)

	assert.Equal(t, 3, result.TotalMatched)
	assert.Equal(t, []string{"Go weekly", "News", "Rust blog"}, titles(result))
}

func TestExecute_TermsCombineWithFilters(t *testing.T) {
	bookmarks := []*model.Bookmark{
		{ID: "1", Title: "Go weekly", Tags: tagged("newsletter")},
		{ID: "2", Title: "Go blog"},
		{ID: "3", Title: "Rust weekly", Tags: tagged("newsletter")},
	}

	result := NewExecutor(nil).Execute(Parse("go tag(newsletter)"), bookmarks, 1, 10)

	assert.Equal(t, []string{"Go weekly"}, titles(result))
}

func TestExecute_ArchivedSorted(t *testing.T) {
	archiveID := "archive-1"
	otherID := "archive-2"
	bookmarks := []*model.Bookmark{
		{ID: "1", Title: "Cherry", ArchiveID: &otherID},
		{ID: "2", Title: "Apple"},
		{ID: "3", Title: "Banana", ArchiveID: &archiveID},
	}

	result := NewExecutor(nil).Execute(Parse("archived(true) sort(title, asc)"), bookmarks, 1, 10)

	assert.Equal(t, []string{"Banana", "Cherry"}, titles(result))
}

func TestExecute_SortModifiedDesc(t *testing.T) {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	bookmarks := []*model.Bookmark{
		{ID: "1", Title: "old", Model: gorm.Model{UpdatedAt: base}},
		{ID: "2", Title: "newest", Model: gorm.Model{UpdatedAt: base.Add(2 * time.Hour)}},
		{ID: "3", Title: "newer", Model: gorm.Model{UpdatedAt: base.Add(time.Hour)}},
	}

	result := NewExecutor(nil).Execute(Parse("sort(modified, desc)"), bookmarks, 1, 10)

	assert.Equal(t, []string{"newest", "newer", "old"}, titles(result))
}

func TestExecute_StableSortKeepsSnapshotOrder(t *testing.T) {
	bookmarks := []*model.Bookmark{
		{ID: "1", Title: "Same", URL: "https://a.example"},
		{ID: "2", Title: "Same", URL: "https://b.example"},
		{ID: "3", Title: "Same", URL: "https://c.example"},
	}

	result := NewExecutor(nil).Execute(Parse(""), bookmarks, 1, 10)

	assert.Equal(t, "1", result.Bookmarks[0].ID)
	assert.Equal(t, "2", result.Bookmarks[1].ID)
	assert.Equal(t, "3", result.Bookmarks[2].ID)
}

func TestExecute_Pagination(t *testing.T) {
	var bookmarks []*model.Bookmark
	for i := 0; i < 25; i++ {
		bookmarks = append(bookmarks, &model.Bookmark{
			ID:    fmt.Sprintf("%02d", i),
			Title: fmt.Sprintf("bookmark %02d", i),
		})
	}
	executor := NewExecutor(nil)

	result := executor.Execute(Parse(""), bookmarks, 3, 10)
	assert.Len(t, result.Bookmarks, 5)
	assert.Equal(t, 25, result.TotalMatched)
	assert.Equal(t, 3, result.PageCount())

	result = executor.Execute(Parse(""), bookmarks, 4, 10)
	assert.Empty(t, result.Bookmarks)
	assert.Equal(t, 25, result.TotalMatched)
}

func TestExecute_ClampsPageAndPageSize(t *testing.T) {
	bookmarks := []*model.Bookmark{
		{ID: "1", Title: "a"},
		{ID: "2", Title: "b"},
	}

	result := NewExecutor(nil).Execute(Parse(""), bookmarks, 0, -5)

	assert.Equal(t, 1, result.Page)
	assert.Equal(t, 1, result.PageSize)
	assert.Len(t, result.Bookmarks, 1)
	assert.Equal(t, 2, result.PageCount())
}

func TestExecute_Intext(t *testing.T) {
	texts := map[string]string{
		"1": "a page about gophers and hiking",
		"2": "a page about cooking",
	}
	lookup := func(bookmarkID string) (string, bool) {
		text, ok := texts[bookmarkID]
		return text, ok
	}

	bookmarks := []*model.Bookmark{
		{ID: "1", Title: "hiking"},
		{ID: "2", Title: "cooking"},
		{ID: "3", Title: "no archive"},
	}

	result := NewExecutor(lookup).Execute(Parse("intext(Gophers)"), bookmarks, 1, 10)

	assert.Equal(t, []string{"hiking"}, titles(result))
}
