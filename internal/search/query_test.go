package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse_TagCalls(t *testing.T) {
	query := Parse("tag(a,b) tag(c)")

	assert.Equal(t, [][]string{{"a", "b"}, {"c"}}, query.Tags)
	assert.Empty(t, query.Terms)
}

func TestParse_FolderPaths(t *testing.T) {
	query := Parse("folder(Dev/Go) folders(Dev > Tools)")

	assert.Equal(t, [][]Path{{{"dev", "go"}}}, query.Folders)
	assert.Equal(t, [][]Path{{{"dev", "tools"}}}, query.Ancestors)
	assert.Empty(t, query.Terms)
}

func TestParse_SortDefaults(t *testing.T) {
	query := Parse("")
	assert.Equal(t, SortByTitle, query.SortField)
	assert.Equal(t, Ascending, query.SortDir)

	query = Parse("sort(modified, desc)")
	assert.Equal(t, SortByModified, query.SortField)
	assert.Equal(t, Descending, query.SortDir)
}

func TestParse_FirstSortWins(t *testing.T) {
	query := Parse("sort(url) sort(modified, desc)")

	assert.Equal(t, SortByURL, query.SortField)
	assert.Equal(t, Ascending, query.SortDir)
}

func TestParse_UnknownSortKeepsDefault(t *testing.T) {
	query := Parse("sort(banana)")

	assert.Equal(t, SortByTitle, query.SortField)
	assert.Equal(t, Ascending, query.SortDir)
	assert.Empty(t, query.Terms)
}

func TestParse_Archived(t *testing.T) {
	query := Parse("archived(true)")
	assert.NotNil(t, query.Archived)
	assert.True(t, *query.Archived)

	query = Parse("archived(FALSE)")
	assert.NotNil(t, query.Archived)
	assert.False(t, *query.Archived)

	// a value that does not parse leaves the filter off, the call is
	// still consumed
	query = Parse("archived(maybe)")
	assert.Nil(t, query.Archived)
	assert.Empty(t, query.Terms)
}

func TestParse_MalformedCallBecomesTerm(t *testing.T) {
	query := Parse("tag(a")

	assert.Empty(t, query.Tags)
	assert.Equal(t, []string{"tag(a"}, query.Terms)
}

func TestParse_WordBoundary(t *testing.T) {
	query := Parse("mytag(a)")

	assert.Empty(t, query.Tags)
	assert.Equal(t, []string{"mytag(a)"}, query.Terms)
}

func TestParse_MixedCallsAndTerms(t *testing.T) {
	query := Parse("Go tag(web) news")

	assert.Equal(t, [][]string{{"web"}}, query.Tags)
	assert.Equal(t, []string{"go", "news"}, query.Terms)
}

func TestParse_FoldersBeforeFolder(t *testing.T) {
	query := Parse("folders(Dev)")

	assert.Empty(t, query.Folders)
	assert.Equal(t, [][]Path{{{"dev"}}}, query.Ancestors)
}

func TestSplitPath(t *testing.T) {
	assert.Equal(t, Path{"dev", "go"}, SplitPath("Dev/Go"))
	assert.Equal(t, Path{"dev", "go"}, SplitPath(" Dev > Go "))
	assert.Equal(t, Path{"dev"}, SplitPath("/Dev//"))
	assert.Empty(t, SplitPath("  "))
}
