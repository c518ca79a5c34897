package scan

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/temirov/treeview/internal/ignore"
	"github.com/temirov/treeview/internal/types"
	"github.com/temirov/treeview/internal/utils"
)

const (
	// errorRootStatFormat reports a scan root that vanished before traversal began.
	errorRootStatFormat = "scan root disappeared: %s: %w"
	// warningDirectoryListFormat reports a directory that could not be listed mid-scan.
	warningDirectoryListFormat = "Warning: could not list %s: %v\n"

	treeBranchConnector = "├── "
	treeLastConnector   = "└── "
	treeBranchPadding   = "│   "
	treeLastPadding     = "    "

	folderLabelSuffix  = "/"
	commentLabelPrefix = "# "
)

// Builder performs one bounded, breadth-first scan. All mutable state lives in
// a single Build call; a Builder value itself is reusable but never concurrent.
type Builder struct {
	Options Options
	Matcher *ignore.Matcher
}

// workItem pairs a queued directory node with its absolute path and the depth
// of its direct children.
type workItem struct {
	node         *types.TreeEntry
	absolutePath string
	level        int
}

// Build scans absoluteRootPath breadth-first, honoring the depth bound, the
// per-directory caps, and the global line budget, and returns the finalized
// root node with IsLast flags and rendered text computed.
func (builder *Builder) Build(absoluteRootPath string) (*types.TreeEntry, error) {
	rootInfo, rootStatError := os.Lstat(absoluteRootPath)
	if rootStatError != nil {
		return nil, fmt.Errorf(errorRootStatFormat, absoluteRootPath, types.ErrNotFound)
	}
	rootCreatedTime, rootModifiedTime := utils.StatTimes(rootInfo)
	rootNode := &types.TreeEntry{
		Name:     filepath.Base(absoluteRootPath),
		Level:    0,
		Kind:     types.KindFolder,
		Created:  rootCreatedTime,
		Modified: rootModifiedTime,
	}

	queue := []workItem{{node: rootNode, absolutePath: absoluteRootPath, level: 1}}
	var emittedNodes []*types.TreeEntry
	renderedCount := 0
	limitReached := false
	cache := visibilityCache{}

	for len(queue) > 0 && !limitReached {
		currentItem := queue[0]
		queue = queue[1:]

		if builder.Options.MaxDepth > 0 && currentItem.level > builder.Options.MaxDepth {
			continue
		}

		remainingDepth := -1
		if builder.Options.MaxDepth > 0 {
			remainingDepth = builder.Options.MaxDepth - currentItem.level
		}

		folderEntries, fileEntries := builder.listDirectoryChildren(currentItem, cache, remainingDepth)
		children := applySortingAndLimits(currentItem.node, folderEntries, fileEntries, builder.Options)

		var acceptedChildren []*types.TreeEntry
		var hiddenChildren []*types.TreeEntry
		if builder.Options.MaxLines > 0 && renderedCount >= builder.Options.MaxLines {
			limitReached = true
			hiddenChildren = children
		} else {
			for childIndex, child := range children {
				if builder.Options.MaxLines > 0 && renderedCount >= builder.Options.MaxLines {
					limitReached = true
					hiddenChildren = children[childIndex:]
					break
				}
				acceptedChildren = append(acceptedChildren, child)
				emittedNodes = append(emittedNodes, child)
				if !isGlobalLimitComment(child) {
					renderedCount++
				}
			}
		}
		if limitReached && len(hiddenChildren) > 0 {
			limitComment := newGlobalLimitComment(currentItem.node, hiddenChildren)
			acceptedChildren = append(acceptedChildren, limitComment)
			emittedNodes = append(emittedNodes, limitComment)
		}

		currentItem.node.Children = acceptedChildren

		if limitReached {
			break
		}

		for _, child := range acceptedChildren {
			if child.Kind != types.KindFolder {
				continue
			}
			if builder.Options.MaxDepth > 0 && currentItem.level >= builder.Options.MaxDepth {
				continue
			}
			queue = append(queue, workItem{
				node:         child,
				absolutePath: filepath.Join(currentItem.absolutePath, child.Name),
				level:        currentItem.level + 1,
			})
		}
	}

	if limitReached {
		for _, unprocessedItem := range queue {
			summaryComment := builder.newUnprocessedComment(unprocessedItem)
			if summaryComment == nil {
				continue
			}
			unprocessedItem.node.Children = append(unprocessedItem.node.Children, summaryComment)
			emittedNodes = append(emittedNodes, summaryComment)
		}
	}

	pruneToEmitted(rootNode, emittedNodes)
	markLastFlags(rootNode)
	refreshRenderedText(rootNode)

	return rootNode, nil
}

// listDirectoryChildren lists the directory and partitions surviving entries
// into folder and file nodes. Files matching an exclusion are dropped
// unconditionally; an excluded directory survives only when it has a visible
// descendant. A directory that vanished mid-scan lists as empty.
func (builder *Builder) listDirectoryChildren(currentItem workItem, cache visibilityCache, remainingDepth int) ([]*types.TreeEntry, []*types.TreeEntry) {
	directoryEntries, readError := os.ReadDir(currentItem.absolutePath)
	if readError != nil {
		fmt.Fprintf(os.Stderr, warningDirectoryListFormat, currentItem.absolutePath, readError)
		return nil, nil
	}

	var folderEntries []*types.TreeEntry
	var fileEntries []*types.TreeEntry
	for _, directoryEntry := range directoryEntries {
		childRelativePath := joinRelative(currentItem.node.RelativePath, directoryEntry.Name())
		isDirectory := directoryEntry.IsDir()

		if isDirectory && builder.Matcher.Matches(childRelativePath, true) {
			nextDepth := remainingDepth - 1
			if remainingDepth < 0 {
				nextDepth = -1
			}
			childAbsolutePath := filepath.Join(currentItem.absolutePath, directoryEntry.Name())
			if !hasVisibleDescendant(childAbsolutePath, childRelativePath, builder.Matcher, cache, nextDepth) {
				continue
			}
		} else if !isDirectory && builder.Matcher.Matches(childRelativePath, false) {
			continue
		}

		childNode := newEntry(directoryEntry, currentItem.node, currentItem.level, childRelativePath, isDirectory)
		if childNode == nil {
			continue
		}
		if isDirectory {
			folderEntries = append(folderEntries, childNode)
		} else {
			fileEntries = append(fileEntries, childNode)
		}
	}
	return folderEntries, fileEntries
}

// newEntry creates a tree node for a surviving directory entry. An entry whose
// metadata vanished mid-scan is treated as absent.
func newEntry(directoryEntry os.DirEntry, parentNode *types.TreeEntry, level int, relativePath string, isDirectory bool) *types.TreeEntry {
	entryInfo, infoError := directoryEntry.Info()
	if infoError != nil {
		return nil
	}
	createdTime, modifiedTime := utils.StatTimes(entryInfo)
	entryKind := types.KindFile
	if isDirectory {
		entryKind = types.KindFolder
	}
	return &types.TreeEntry{
		Name:         directoryEntry.Name(),
		Level:        level,
		Kind:         entryKind,
		Created:      createdTime,
		Modified:     modifiedTime,
		RelativePath: relativePath,
		Parent:       parentNode,
	}
}

// newUnprocessedComment summarizes the direct children of a directory that was
// queued but never expanded because the global budget ran out. The look-ahead
// is one level deep and applies the same exclusion rules as the main pass.
func (builder *Builder) newUnprocessedComment(unprocessedItem workItem) *types.TreeEntry {
	folderEntries, fileEntries := builder.listDirectoryChildren(unprocessedItem, visibilityCache{}, -1)
	hiddenEntries := append(folderEntries, fileEntries...)
	if len(hiddenEntries) == 0 {
		return nil
	}
	return newGlobalLimitComment(unprocessedItem.node, hiddenEntries)
}

// pruneToEmitted removes any node reachable from the root that was never
// emitted during traversal. A normal scan emits every attached node; this is a
// consistency safeguard, not a regular code path.
func pruneToEmitted(rootNode *types.TreeEntry, emittedNodes []*types.TreeEntry) {
	if len(emittedNodes) == 0 {
		rootNode.Children = nil
		return
	}
	emittedSet := make(map[*types.TreeEntry]struct{}, len(emittedNodes))
	for _, emittedNode := range emittedNodes {
		emittedSet[emittedNode] = struct{}{}
	}
	pruneChildren(rootNode, emittedSet)
}

func pruneChildren(node *types.TreeEntry, emittedSet map[*types.TreeEntry]struct{}) {
	if node.Children == nil {
		return
	}
	var keptChildren []*types.TreeEntry
	for _, child := range node.Children {
		if _, emitted := emittedSet[child]; emitted {
			pruneChildren(child, emittedSet)
			keptChildren = append(keptChildren, child)
		}
	}
	node.Children = keptChildren
}

// markLastFlags recomputes IsLast across every sibling group. Valid only after
// the tree is final.
func markLastFlags(node *types.TreeEntry) {
	for childIndex, child := range node.Children {
		child.IsLast = childIndex == len(node.Children)-1
		markLastFlags(child)
	}
}

// refreshRenderedText computes each node's one-line textual form. Parents are
// processed before children because a line's indentation glyphs depend on the
// ancestors' IsLast flags.
func refreshRenderedText(node *types.TreeEntry) {
	for _, child := range node.Children {
		child.RenderedText = formatLine(child)
		refreshRenderedText(child)
	}
}

// formatLine builds the ASCII tree line for a node: indentation derived from
// the IsLast flags of its ancestor chain, a connector, and a kind-specific label.
func formatLine(node *types.TreeEntry) string {
	var indentSegments []string
	for ancestorNode := node.Parent; ancestorNode != nil && ancestorNode.Parent != nil; ancestorNode = ancestorNode.Parent {
		if ancestorNode.IsLast {
			indentSegments = append(indentSegments, treeLastPadding)
		} else {
			indentSegments = append(indentSegments, treeBranchPadding)
		}
	}

	var lineBuilder strings.Builder
	for segmentIndex := len(indentSegments) - 1; segmentIndex >= 0; segmentIndex-- {
		lineBuilder.WriteString(indentSegments[segmentIndex])
	}
	if node.IsLast {
		lineBuilder.WriteString(treeLastConnector)
	} else {
		lineBuilder.WriteString(treeBranchConnector)
	}
	switch node.Kind {
	case types.KindFolder:
		lineBuilder.WriteString(node.Name + folderLabelSuffix)
	case types.KindComment:
		lineBuilder.WriteString(commentLabelPrefix + node.Name)
	default:
		lineBuilder.WriteString(node.Name)
	}
	return lineBuilder.String()
}
