// Package types defines every cross-package data structure used by the treeview CLI.
package types

import "time"

const (
	KindFolder  = "folder"
	KindFile    = "file"
	KindComment = "comment"

	SortKeyName     = "name"
	SortKeyCreated  = "created"
	SortKeyModified = "modified"

	SortDirectionAscending  = "asc"
	SortDirectionDescending = "desc"

	OutputModeText   = "text"
	OutputModeFlat   = "flat"
	OutputModeNested = "nested"
)

// TreeEntry is one node of a scanned directory tree. Folder nodes own their
// Children slice; file and comment nodes never carry children. Comment nodes
// are synthetic leaves reporting elided content and never correspond to a
// filesystem entry.
//
// RelativePath uses forward slashes on every platform and is empty for the
// scan root. Synthetic comment nodes mark their RelativePath with a
// "#summary:<noun>:<count>" or "#summary:limit" suffix.
type TreeEntry struct {
	Name         string
	Level        int
	Kind         string
	Created      time.Time
	Modified     time.Time
	RelativePath string
	Parent       *TreeEntry
	Children     []*TreeEntry
	IsLast       bool
	RenderedText string
}
