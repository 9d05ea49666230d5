package model

import (
	"strings"

	"gorm.io/gorm"
)

// PathSeparator joins folder names into a display path.
const PathSeparator = "/"

// Folder is a node in a user's bookmark folder tree. Folders are linked
// through ParentID rather than stored nesting; a nil ParentID means the
// folder sits at the root. The parent chain must be acyclic and every
// ancestor shares the folder's OwnerID.
type Folder struct {
	gorm.Model
	ID       string  `gorm:"primaryKey;uuid;not null"`
	OwnerID  string  `gorm:"uuid;not null;index"`
	Name     string  `gorm:"not null"`
	ParentID *string `gorm:"uuid;index"`
	Parent   *Folder `gorm:"foreignKey:ParentID"`
}

// PathSegments returns the folder names from the root ancestor down to f.
// The Parent chain must be linked, see LinkFolders.
func (f *Folder) PathSegments() []string {
	var names []string
	for node := f; node != nil; node = node.Parent {
		names = append(names, node.Name)
	}
	for i, j := 0, len(names)-1; i < j; i, j = i+1, j-1 {
		names[i], names[j] = names[j], names[i]
	}
	return names
}

// Path returns the display path of f, root first.
func (f *Folder) Path() string {
	return strings.Join(f.PathSegments(), PathSeparator)
}

// LinkFolders wires the Parent pointers of a flat folder list loaded from
// the store. Folders whose parent is missing from the list stay root.
func LinkFolders(folders []*Folder) {
	byID := make(map[string]*Folder, len(folders))
	for _, f := range folders {
		byID[f.ID] = f
	}
	for _, f := range folders {
		if f.ParentID != nil {
			f.Parent = byID[*f.ParentID]
		}
	}
}

// SplitFolderPath splits a user-supplied folder path on "/" or ">" into
// trimmed segment names, preserving case. Empty segments are dropped.
func SplitFolderPath(path string) []string {
	parts := strings.FieldsFunc(path, func(r rune) bool {
		return r == '/' || r == '>'
	})
	segments := make([]string, 0, len(parts))
	for _, part := range parts {
		if part = strings.TrimSpace(part); part != "" {
			segments = append(segments, part)
		}
	}
	return segments
}
