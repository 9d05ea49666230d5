package taxonomy

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"bookstore/internal/model"
)

func chain(names ...string) []*model.Folder {
	folders := make([]*model.Folder, len(names))
	var parent *model.Folder
	for i, name := range names {
		folder := &model.Folder{ID: name, Name: name, Parent: parent}
		if parent != nil {
			parentID := parent.ID
			folder.ParentID = &parentID
		}
		folders[i] = folder
		parent = folder
	}
	return folders
}

func inFolder(id string, folder *model.Folder) *model.Bookmark {
	folderID := folder.ID
	return &model.Bookmark{ID: id, FolderID: &folderID}
}

func TestReclaim_EmptyChainCollapses(t *testing.T) {
	folders := chain("root", "mid", "leaf")
	bookmark := inFolder("b1", folders[2])

	set := NewReclaimer(folders, nil, []*model.Bookmark{bookmark}, nil).
		Reclaim([]*model.Bookmark{bookmark})

	assert.ElementsMatch(t, []string{"root", "mid", "leaf"}, set.FolderIDs())
}

func TestReclaim_OccupiedAncestorSurvives(t *testing.T) {
	folders := chain("root", "mid", "leaf")
	doomed := inFolder("b1", folders[2])
	kept := inFolder("b2", folders[1])

	set := NewReclaimer(folders, nil, []*model.Bookmark{doomed, kept}, nil).
		Reclaim([]*model.Bookmark{doomed})

	assert.Equal(t, []string{"leaf"}, set.FolderIDs())
}

func TestReclaim_PartialDeleteReclaimsNothing(t *testing.T) {
	folders := chain("root", "mid", "leaf")
	doomed := inFolder("b1", folders[2])
	kept := inFolder("b2", folders[2])

	set := NewReclaimer(folders, nil, []*model.Bookmark{doomed, kept}, nil).
		Reclaim([]*model.Bookmark{doomed})

	assert.Empty(t, set.Folders)
}

func TestReclaim_PendingFoldersExcluded(t *testing.T) {
	folders := chain("fresh")

	set := NewReclaimer(folders, nil, nil, folders).Reclaim(nil)

	assert.Empty(t, set.Folders)
	assert.True(t, set.Empty())
}

func TestReclaim_Tags(t *testing.T) {
	b1 := &model.Bookmark{ID: "b1"}
	b2 := &model.Bookmark{ID: "b2"}
	shared := &model.Tag{ID: "shared", Name: "shared", Bookmarks: []*model.Bookmark{b1, b2}}
	single := &model.Tag{ID: "single", Name: "single", Bookmarks: []*model.Bookmark{b1}}
	unused := &model.Tag{ID: "unused", Name: "unused"}

	set := NewReclaimer(nil, []*model.Tag{shared, single, unused}, []*model.Bookmark{b1, b2}, nil).
		Reclaim([]*model.Bookmark{b1})

	assert.ElementsMatch(t, []string{"single", "unused"}, set.TagIDs())
}

func TestReclaim_Archives(t *testing.T) {
	archiveID := "archive-1"
	withArchive := &model.Bookmark{ID: "b1", ArchiveID: &archiveID}
	without := &model.Bookmark{ID: "b2"}

	set := NewReclaimer(nil, nil, []*model.Bookmark{withArchive, without}, nil).
		Reclaim([]*model.Bookmark{withArchive, without})

	assert.Equal(t, []string{"archive-1"}, set.Archives)
}

func TestReclaim_SweepMode(t *testing.T) {
	// an empty delete set turns the reclaimer into an orphan sweep
	folders := chain("empty", "nested")
	occupied := chain("occupied")
	bookmark := inFolder("b1", occupied[0])
	unused := &model.Tag{ID: "unused", Name: "unused"}

	set := NewReclaimer(append(folders, occupied...), []*model.Tag{unused}, []*model.Bookmark{bookmark}, nil).
		Reclaim(nil)

	assert.ElementsMatch(t, []string{"empty", "nested"}, set.FolderIDs())
	assert.Equal(t, []string{"unused"}, set.TagIDs())
}
