package taxonomy

import (
	mapset "github.com/deckarep/golang-set/v2"

	"bookstore/internal/model"
)

// ReclaimSet lists the taxonomy entries that become unreferenced once a
// bookmark deletion commits. The persistence layer removes them in the
// same transaction as the bookmarks.
type ReclaimSet struct {
	Folders  []*model.Folder
	Tags     []*model.Tag
	Archives []string
}

// Empty reports whether there is nothing to reclaim.
func (s *ReclaimSet) Empty() bool {
	return len(s.Folders) == 0 && len(s.Tags) == 0 && len(s.Archives) == 0
}

// FolderIDs returns the IDs of the reclaimable folders.
func (s *ReclaimSet) FolderIDs() []string {
	ids := make([]string, len(s.Folders))
	for i, folder := range s.Folders {
		ids[i] = folder.ID
	}
	return ids
}

// TagIDs returns the IDs of the reclaimable tags.
func (s *ReclaimSet) TagIDs() []string {
	ids := make([]string, len(s.Tags))
	for i, tag := range s.Tags {
		ids[i] = tag.ID
	}
	return ids
}

// Reclaimer computes the orphan closure for one owner's taxonomy. It
// must run after the delete set is final and before the deletion commits.
// The folder tree is assumed acyclic; that invariant is maintained by the
// resolver and is not re-checked here.
type Reclaimer struct {
	folders   []*model.Folder
	tags      []*model.Tag
	bookmarks []*model.Bookmark
	pending   mapset.Set[string]
}

// NewReclaimer builds a reclaimer over the owner's full folder tree, the
// tag set with bookmark associations loaded, and the full bookmark
// snapshot. pendingFolders are folders created earlier in the same
// operation; they are never reclaimed even while still empty.
func NewReclaimer(folders []*model.Folder, tags []*model.Tag, bookmarks []*model.Bookmark, pendingFolders []*model.Folder) *Reclaimer {
	pending := mapset.NewSet[string]()
	for _, folder := range pendingFolders {
		pending.Add(folder.ID)
	}

	return &Reclaimer{
		folders:   folders,
		tags:      tags,
		bookmarks: bookmarks,
		pending:   pending,
	}
}

// Reclaim returns everything left unreferenced by deleting the given
// bookmarks. A folder is reclaimable when all bookmarks directly in it
// are being deleted and every child folder is itself reclaimable; a tag
// when all its bookmarks are being deleted; an archive when its owning
// bookmark is.
func (r *Reclaimer) Reclaim(deleting []*model.Bookmark) *ReclaimSet {
	doomed := mapset.NewSet[string]()
	for _, bookmark := range deleting {
		doomed.Add(bookmark.ID)
	}

	byFolder := make(map[string][]string)
	for _, bookmark := range r.bookmarks {
		if bookmark.FolderID != nil {
			byFolder[*bookmark.FolderID] = append(byFolder[*bookmark.FolderID], bookmark.ID)
		}
	}

	children := make(map[string][]*model.Folder)
	for _, folder := range r.folders {
		if folder.ParentID != nil {
			children[*folder.ParentID] = append(children[*folder.ParentID], folder)
		}
	}

	var canDelete func(folder *model.Folder) bool
	canDelete = func(folder *model.Folder) bool {
		for _, id := range byFolder[folder.ID] {
			if !doomed.Contains(id) {
				return false
			}
		}
		for _, child := range children[folder.ID] {
			if !canDelete(child) {
				return false
			}
		}
		return true
	}

	set := &ReclaimSet{}

	for _, folder := range r.folders {
		if r.pending.Contains(folder.ID) {
			continue
		}
		if canDelete(folder) {
			set.Folders = append(set.Folders, folder)
		}
	}

	for _, tag := range r.tags {
		orphaned := true
		for _, bookmark := range tag.Bookmarks {
			if !doomed.Contains(bookmark.ID) {
				orphaned = false
				break
			}
		}
		if orphaned {
			set.Tags = append(set.Tags, tag)
		}
	}

	for _, bookmark := range deleting {
		if bookmark.ArchiveID != nil {
			set.Archives = append(set.Archives, *bookmark.ArchiveID)
		}
	}

	return set
}
