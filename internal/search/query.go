package search

import (
	"strconv"
	"strings"
)

// Field selects the sort key of a query.
type Field int

const (
	SortByTitle Field = iota
	SortByURL
	SortByTag
	SortByFolder
	SortByArchived
	SortByModified
	SortByDomain
)

// Direction selects the sort order of a query.
type Direction int

const (
	Ascending Direction = iota
	Descending
)

// Path is a case-folded folder path, root segment first.
type Path []string

// Query is the structured form of one search-box string.
//
// The inner slices of each filter are logical-AND, the outer slices are
// logical-OR: `tag(a,b) tag(c)` matches bookmarks tagged both a and b, or
// tagged c. Distinct filters combine with AND, as do the general Terms.
type Query struct {
	Raw string

	Tags   [][]string
	URLs   [][]string
	Titles [][]string
	Texts  [][]string

	// Folders matches the bookmark's exact folder path, Ancestors matches
	// any ancestor of it.
	Folders   [][]Path
	Ancestors [][]Path

	Archived  *bool
	SortField Field
	SortDir   Direction

	// Terms are the whitespace tokens not consumed by a function call,
	// matched broadly across url, title, tag names and folder names.
	Terms []string

	sortSeen bool
}

// Function names recognized by the scanner. "folders" sorts before
// "folder" so the longer name wins the prefix match.
var functionNames = []string{
	"archived",
	"folders",
	"folder",
	"intext",
	"sort",
	"tag",
	"title",
	"url",
}

var sortFields = map[string]Field{
	"tag":      SortByTag,
	"folder":   SortByFolder,
	"title":    SortByTitle,
	"url":      SortByURL,
	"archived": SortByArchived,
	"modified": SortByModified,
	"domain":   SortByDomain,
}

// Parse compiles a free-form search string into a Query. Parsing never
// fails: text that is not a well-formed call to a known function falls
// through to the general filter terms.
func Parse(raw string) *Query {
	query := &Query{Raw: raw, SortField: SortByTitle, SortDir: Ascending}

	var leftover strings.Builder
	for i := 0; i < len(raw); {
		if name, args, next, ok := scanCall(raw, i); ok {
			query.apply(name, args)
			i = next
			// keep tokens on either side of the call separated
			leftover.WriteByte(' ')
			continue
		}
		leftover.WriteByte(raw[i])
		i++
	}

	for _, term := range strings.Fields(leftover.String()) {
		query.Terms = append(query.Terms, strings.ToLower(term))
	}

	return query
}

// scanCall recognizes `name(args...)` at position i, where name is one of
// the known function names starting on a word boundary. It reports the
// position after the closing parenthesis. An unbalanced call is not
// recognized at all and degrades to plain tokens.
func scanCall(s string, i int) (name string, args []string, next int, ok bool) {
	if i > 0 && isWordByte(s[i-1]) {
		return "", nil, 0, false
	}

	for _, fn := range functionNames {
		if !strings.HasPrefix(s[i:], fn+"(") {
			continue
		}

		open := i + len(fn) + 1
		end := strings.IndexByte(s[open:], ')')
		if end < 0 {
			return "", nil, 0, false
		}

		for _, arg := range strings.Split(s[open:open+end], ",") {
			args = append(args, strings.TrimSpace(arg))
		}

		return fn, args, open + end + 1, true
	}

	return "", nil, 0, false
}

func isWordByte(c byte) bool {
	return c == '_' ||
		('a' <= c && c <= 'z') ||
		('A' <= c && c <= 'Z') ||
		('0' <= c && c <= '9')
}

func (q *Query) apply(name string, args []string) {
	switch name {
	case "tag":
		q.Tags = append(q.Tags, foldAll(args))
	case "url":
		q.URLs = append(q.URLs, foldAll(args))
	case "title":
		q.Titles = append(q.Titles, foldAll(args))
	case "intext":
		q.Texts = append(q.Texts, foldAll(args))
	case "folder":
		q.Folders = append(q.Folders, splitPaths(args))
	case "folders":
		q.Ancestors = append(q.Ancestors, splitPaths(args))
	case "archived":
		// only the first parsable occurrence is meaningful
		if q.Archived == nil && len(args) > 0 {
			if v, err := strconv.ParseBool(strings.ToLower(args[0])); err == nil {
				q.Archived = &v
			}
		}
	case "sort":
		// only the first occurrence is honored, unknown values keep the
		// title-ascending default
		if q.sortSeen {
			return
		}
		q.sortSeen = true
		if len(args) > 0 {
			if field, ok := sortFields[strings.ToLower(args[0])]; ok {
				q.SortField = field
			}
		}
		if len(args) > 1 && strings.EqualFold(args[1], "desc") {
			q.SortDir = Descending
		}
	}
}

func foldAll(args []string) []string {
	folded := make([]string, len(args))
	for i, arg := range args {
		folded[i] = strings.ToLower(arg)
	}
	return folded
}

func splitPaths(args []string) []Path {
	paths := make([]Path, len(args))
	for i, arg := range args {
		paths[i] = SplitPath(arg)
	}
	return paths
}

// SplitPath splits a folder path argument on "/" or ">" into trimmed,
// case-folded segments.
func SplitPath(arg string) Path {
	parts := strings.FieldsFunc(arg, func(r rune) bool {
		return r == '/' || r == '>'
	})

	path := make(Path, 0, len(parts))
	for _, part := range parts {
		if part = strings.TrimSpace(part); part != "" {
			path = append(path, strings.ToLower(part))
		}
	}
	return path
}

// Equal reports segment-wise equality of two case-folded paths.
func (p Path) Equal(other Path) bool {
	if len(p) != len(other) {
		return false
	}
	for i := range p {
		if p[i] != other[i] {
			return false
		}
	}
	return true
}
