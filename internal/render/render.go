// Package render emits the three output representations of a finished tree.
package render

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/temirov/treeview/internal/types"
)

const rootBannerSuffix = "/"

// Item is one record of the flat and nested representations. Flat records and
// leaves carry a null Items field; nested folder records carry their children.
type Item struct {
	Name     string    `json:"name"`
	Level    int       `json:"level"`
	Type     string    `json:"type"`
	Created  time.Time `json:"created"`
	Modified time.Time `json:"modified"`
	Text     string    `json:"text"`
	Items    []*Item   `json:"items"`
}

// Text renders the ASCII tree. The first line is the display name of the
// scanned root with a trailing slash; each subsequent line is the precomputed
// rendered text of a node in depth-first order.
func Text(rootNode *types.TreeEntry, displayName string) string {
	trimmedDisplayName := strings.TrimSpace(displayName)
	if trimmedDisplayName == "" {
		trimmedDisplayName = rootNode.Name
	}
	trimmedDisplayName = strings.TrimRight(trimmedDisplayName, rootBannerSuffix+string(filepath.Separator))

	lines := []string{trimmedDisplayName + rootBannerSuffix}
	appendRenderedLines(&lines, rootNode.Children)
	return strings.Join(lines, "\n")
}

func appendRenderedLines(lines *[]string, children []*types.TreeEntry) {
	for _, child := range children {
		*lines = append(*lines, child.RenderedText)
		appendRenderedLines(lines, child.Children)
	}
}

// Flat returns the depth-first list of item records with no nesting populated.
func Flat(rootNode *types.TreeEntry) []*Item {
	flatItems := make([]*Item, 0)
	var walk func(children []*types.TreeEntry)
	walk = func(children []*types.TreeEntry) {
		for _, child := range children {
			flatItems = append(flatItems, newItem(child, nil))
			walk(child.Children)
		}
	}
	walk(rootNode.Children)
	return flatItems
}

// Nested returns item records mirroring the tree: folders carry a recursive
// Items slice, leaves carry none.
func Nested(rootNode *types.TreeEntry) []*Item {
	nestedTopLevel := nestedItems(rootNode.Children)
	if nestedTopLevel == nil {
		nestedTopLevel = make([]*Item, 0)
	}
	return nestedTopLevel
}

func nestedItems(children []*types.TreeEntry) []*Item {
	if children == nil {
		return nil
	}
	items := make([]*Item, 0, len(children))
	for _, child := range children {
		items = append(items, newItem(child, nestedItems(child.Children)))
	}
	return items
}

func newItem(node *types.TreeEntry, nestedChildren []*Item) *Item {
	return &Item{
		Name:     node.Name,
		Level:    node.Level,
		Type:     node.Kind,
		Created:  node.Created,
		Modified: node.Modified,
		Text:     node.RenderedText,
		Items:    nestedChildren,
	}
}
