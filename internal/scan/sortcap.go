package scan

import (
	"fmt"
	"sort"
	"strings"

	"github.com/temirov/treeview/internal/types"
)

const (
	summaryNounFolder = "folder"
	summaryNounFile   = "file"
	summaryNounItem   = "item"

	// summaryMoreNameFormat labels a per-directory overflow comment.
	summaryMoreNameFormat = "%d more %s"
	// summaryLimitNameFormat labels a global budget exhaustion comment.
	summaryLimitNameFormat = "limit reached – hidden: %s"
	// summaryRelativePathFormat suffixes a per-directory overflow comment path.
	summaryRelativePathFormat = "%s#summary:%s:%d"
	// summaryLimitRelativePathSuffix suffixes a global budget exhaustion comment path.
	summaryLimitRelativePathSuffix = "#summary:limit"

	labelPartSeparator = ", "
)

// sortEntries stably sorts entries in place by the configured key and
// direction. Entries sharing a key retain their scan order.
func sortEntries(entries []*types.TreeEntry, sortKey string, sortDirection string) {
	descending := sortDirection == types.SortDirectionDescending
	sort.SliceStable(entries, func(firstIndex, secondIndex int) bool {
		firstEntry, secondEntry := entries[firstIndex], entries[secondIndex]
		if descending {
			firstEntry, secondEntry = secondEntry, firstEntry
		}
		switch sortKey {
		case types.SortKeyCreated:
			return firstEntry.Created.Before(secondEntry.Created)
		case types.SortKeyModified:
			return firstEntry.Modified.Before(secondEntry.Modified)
		default:
			return strings.ToLower(firstEntry.Name) < strings.ToLower(secondEntry.Name)
		}
	})
}

// applySortingAndLimits sorts the folder and file groups independently,
// applies the per-group caps, and interleaves the groups according to
// foldersFirst. A capped group with overflow contributes exactly one summary
// comment entry after its visible prefix.
func applySortingAndLimits(directoryNode *types.TreeEntry, folderEntries []*types.TreeEntry, fileEntries []*types.TreeEntry, options Options) []*types.TreeEntry {
	sortEntries(folderEntries, options.SortKey, options.SortDirection)
	sortEntries(fileEntries, options.SortKey, options.SortDirection)

	var combined []*types.TreeEntry
	appendGroup := func(group []*types.TreeEntry, limit int, noun string) {
		if len(group) == 0 {
			return
		}
		if limit <= 0 {
			combined = append(combined, group...)
			return
		}
		visibleEntries := group
		if len(group) > limit {
			visibleEntries = group[:limit]
		}
		combined = append(combined, visibleEntries...)
		overflowCount := len(group) - len(visibleEntries)
		if overflowCount > 0 {
			combined = append(combined, newSummaryComment(directoryNode, noun, overflowCount))
		}
	}

	if options.FoldersFirst {
		appendGroup(folderEntries, options.MaxFolders, summaryNounFolder)
		appendGroup(fileEntries, options.MaxFiles, summaryNounFile)
	} else {
		appendGroup(fileEntries, options.MaxFiles, summaryNounFile)
		appendGroup(folderEntries, options.MaxFolders, summaryNounFolder)
	}
	return combined
}

// newSummaryComment creates the per-directory overflow comment for a capped group.
func newSummaryComment(parentNode *types.TreeEntry, noun string, overflowCount int) *types.TreeEntry {
	label := noun
	if overflowCount != 1 {
		label = noun + "s"
	}
	return &types.TreeEntry{
		Name:         fmt.Sprintf(summaryMoreNameFormat, overflowCount, label),
		Level:        parentNode.Level + 1,
		Kind:         types.KindComment,
		Created:      parentNode.Created,
		Modified:     parentNode.Modified,
		RelativePath: fmt.Sprintf(summaryRelativePathFormat, parentNode.RelativePath, noun, overflowCount),
		Parent:       parentNode,
	}
}

// newGlobalLimitComment creates the comment summarizing children hidden by the
// global line budget, counted by kind with a generic fallback when the hidden
// set holds neither folders nor files.
func newGlobalLimitComment(parentNode *types.TreeEntry, hiddenChildren []*types.TreeEntry) *types.TreeEntry {
	var hiddenFolderCount, hiddenFileCount int
	for _, hiddenChild := range hiddenChildren {
		switch hiddenChild.Kind {
		case types.KindFolder:
			hiddenFolderCount++
		case types.KindFile:
			hiddenFileCount++
		}
	}

	var labelParts []string
	if hiddenFolderCount > 0 {
		labelParts = append(labelParts, pluralizedCount(hiddenFolderCount, summaryNounFolder))
	}
	if hiddenFileCount > 0 {
		labelParts = append(labelParts, pluralizedCount(hiddenFileCount, summaryNounFile))
	}
	if len(labelParts) == 0 {
		labelParts = append(labelParts, pluralizedCount(len(hiddenChildren), summaryNounItem))
	}

	return &types.TreeEntry{
		Name:         fmt.Sprintf(summaryLimitNameFormat, strings.Join(labelParts, labelPartSeparator)),
		Level:        parentNode.Level + 1,
		Kind:         types.KindComment,
		Created:      parentNode.Created,
		Modified:     parentNode.Modified,
		RelativePath: parentNode.RelativePath + summaryLimitRelativePathSuffix,
		Parent:       parentNode,
	}
}

// pluralizedCount renders "1 folder" / "2 folders" style labels.
func pluralizedCount(count int, noun string) string {
	if count == 1 {
		return fmt.Sprintf("%d %s", count, noun)
	}
	return fmt.Sprintf("%d %ss", count, noun)
}

// isGlobalLimitComment reports whether a node is a global budget exhaustion
// comment. These do not count against the line budget, unlike per-directory
// overflow comments.
func isGlobalLimitComment(node *types.TreeEntry) bool {
	return node.Kind == types.KindComment && strings.HasSuffix(node.RelativePath, summaryLimitRelativePathSuffix)
}
