// Package taxonomy resolves user-supplied folder paths and tag names onto
// canonical tree nodes and flat tag records, and computes which of them
// become orphaned when bookmarks are deleted.
package taxonomy

import (
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/google/uuid"

	"bookstore/internal/model"
)

// Sink receives the folders and tags a resolver creates, in creation
// order, so the caller can persist them in the same transaction.
type Sink interface {
	AddFolder(folder *model.Folder)
	AddTag(tag *model.Tag)
}

// Changes is a Sink that collects created entities for one operation.
type Changes struct {
	Folders []*model.Folder
	Tags    []*model.Tag
}

func (c *Changes) AddFolder(folder *model.Folder) {
	c.Folders = append(c.Folders, folder)
}

func (c *Changes) AddTag(tag *model.Tag) {
	c.Tags = append(c.Tags, tag)
}

// Resolver maps folder paths and tag name lists onto one owner's
// taxonomy, creating missing entries on demand. It mutates its in-memory
// snapshot as it creates, so one instance serves exactly one logical
// operation and must not be shared across concurrent requests.
type Resolver struct {
	ownerID string
	folders []*model.Folder
	tags    []*model.Tag
	sink    Sink
}

// NewResolver builds a resolver over a snapshot of the owner's existing
// folders (parent chains linked) and tags.
func NewResolver(ownerID string, folders []*model.Folder, tags []*model.Tag, sink Sink) *Resolver {
	return &Resolver{
		ownerID: ownerID,
		folders: folders,
		tags:    tags,
		sink:    sink,
	}
}

// ResolveFolder returns the folder at the given path, creating any
// missing suffix under the longest existing prefix. Resolution is
// idempotent: an existing folder is returned untouched. A nil or empty
// path resolves to the root, which is represented as no folder at all.
func (r *Resolver) ResolveFolder(path []string) *model.Folder {
	path = cleanPath(path)
	if len(path) == 0 {
		return nil
	}

	if found := r.findFolder(path); found != nil {
		return found
	}

	return r.createFromPath(path)
}

func (r *Resolver) findFolder(path []string) *model.Folder {
	for _, folder := range r.folders {
		if pathEqualFold(folder.PathSegments(), path) {
			return folder
		}
	}
	return nil
}

func (r *Resolver) createFromPath(path []string) *model.Folder {
	// walk back from the full path until some prefix already exists
	depth := 0
	var anchor *model.Folder
	for cut := len(path) - 1; cut > 0; cut-- {
		if found := r.findFolder(path[:cut]); found != nil {
			anchor = found
			depth = cut
			break
		}
	}

	for _, name := range path[depth:] {
		folder := &model.Folder{
			ID:      uuid.New().String(),
			OwnerID: r.ownerID,
			Name:    name,
			Parent:  anchor,
		}
		if anchor != nil {
			parentID := anchor.ID
			folder.ParentID = &parentID
		}

		r.folders = append(r.folders, folder)
		r.sink.AddFolder(folder)
		anchor = folder
	}

	return anchor
}

// ResolveTags looks up or creates one tag per distinct name. Names are
// trimmed and case-folded first, so "x", "X" and " x " collapse onto a
// single tag.
func (r *Resolver) ResolveTags(names []string) []*model.Tag {
	seen := mapset.NewSet[string]()

	var tags []*model.Tag
	for _, name := range names {
		name = model.NormalizeTagName(name)
		if name == "" || seen.Contains(name) {
			continue
		}
		seen.Add(name)
		tags = append(tags, r.resolveTag(name))
	}

	return tags
}

func (r *Resolver) resolveTag(name string) *model.Tag {
	for _, tag := range r.tags {
		if strings.EqualFold(tag.Name, name) {
			return tag
		}
	}

	tag := &model.Tag{
		ID:      uuid.New().String(),
		OwnerID: r.ownerID,
		Name:    name,
	}
	r.tags = append(r.tags, tag)
	r.sink.AddTag(tag)

	return tag
}

func cleanPath(path []string) []string {
	cleaned := make([]string, 0, len(path))
	for _, segment := range path {
		if segment = strings.TrimSpace(segment); segment != "" {
			cleaned = append(cleaned, segment)
		}
	}
	return cleaned
}

func pathEqualFold(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !strings.EqualFold(a[i], b[i]) {
			return false
		}
	}
	return true
}
