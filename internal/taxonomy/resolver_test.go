package taxonomy

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"bookstore/internal/model"
)

func TestResolveFolder_CreatesChain(t *testing.T) {
	changes := &Changes{}
	resolver := NewResolver("owner", nil, nil, changes)

	folder := resolver.ResolveFolder([]string{"Dev", "Go"})

	assert.NotNil(t, folder)
	assert.Equal(t, "Dev/Go", folder.Path())
	assert.Len(t, changes.Folders, 2)
	assert.Equal(t, "Dev", changes.Folders[0].Name)
	assert.Nil(t, changes.Folders[0].ParentID)
	assert.Equal(t, "Go", changes.Folders[1].Name)
	assert.Equal(t, changes.Folders[0].ID, *changes.Folders[1].ParentID)
	assert.Equal(t, "owner", changes.Folders[1].OwnerID)
}

func TestResolveFolder_Idempotent(t *testing.T) {
	changes := &Changes{}
	resolver := NewResolver("owner", nil, nil, changes)

	first := resolver.ResolveFolder([]string{"Dev", "Go"})
	second := resolver.ResolveFolder([]string{"Dev", "Go"})

	assert.Same(t, first, second)
	assert.Len(t, changes.Folders, 2)
}

func TestResolveFolder_LongestExistingPrefix(t *testing.T) {
	a := &model.Folder{ID: "a", OwnerID: "owner", Name: "A"}
	aID := a.ID
	b := &model.Folder{ID: "b", OwnerID: "owner", Name: "B", ParentID: &aID, Parent: a}

	changes := &Changes{}
	resolver := NewResolver("owner", []*model.Folder{a, b}, nil, changes)

	folder := resolver.ResolveFolder([]string{"A", "B", "C"})

	assert.Len(t, changes.Folders, 1)
	assert.Equal(t, "C", folder.Name)
	assert.Equal(t, b.ID, *folder.ParentID)
	assert.Equal(t, "A/B/C", folder.Path())
}

func TestResolveFolder_CaseInsensitiveLookup(t *testing.T) {
	existing := &model.Folder{ID: "dev", OwnerID: "owner", Name: "Dev"}

	changes := &Changes{}
	resolver := NewResolver("owner", []*model.Folder{existing}, nil, changes)

	folder := resolver.ResolveFolder([]string{"dev"})

	assert.Same(t, existing, folder)
	assert.Empty(t, changes.Folders)
}

func TestResolveFolder_EmptyPathIsRoot(t *testing.T) {
	changes := &Changes{}
	resolver := NewResolver("owner", nil, nil, changes)

	assert.Nil(t, resolver.ResolveFolder(nil))
	assert.Nil(t, resolver.ResolveFolder([]string{" ", ""}))
	assert.Empty(t, changes.Folders)
}

func TestResolveTags_NormalizesAndDedupes(t *testing.T) {
	changes := &Changes{}
	resolver := NewResolver("owner", nil, nil, changes)

	tags := resolver.ResolveTags([]string{"x", "X", " x ", ""})

	assert.Len(t, tags, 1)
	assert.Equal(t, "x", tags[0].Name)
	assert.Len(t, changes.Tags, 1)
}

func TestResolveTags_ReusesExisting(t *testing.T) {
	existing := &model.Tag{ID: "go", OwnerID: "owner", Name: "go"}

	changes := &Changes{}
	resolver := NewResolver("owner", nil, []*model.Tag{existing}, changes)

	tags := resolver.ResolveTags([]string{"Go", "web"})

	assert.Len(t, tags, 2)
	assert.Same(t, existing, tags[0])
	assert.Equal(t, "web", tags[1].Name)
	assert.Len(t, changes.Tags, 1)
}
