package scan

import (
	"testing"
	"time"

	"github.com/temirov/treeview/internal/types"
)

func TestPluralizedCount(testInstance *testing.T) {
	testCases := []struct {
		count    int
		noun     string
		expected string
	}{
		{count: 1, noun: "folder", expected: "1 folder"},
		{count: 2, noun: "folder", expected: "2 folders"},
		{count: 1, noun: "file", expected: "1 file"},
		{count: 5, noun: "file", expected: "5 files"},
	}

	for _, testCase := range testCases {
		actual := pluralizedCount(testCase.count, testCase.noun)
		if actual != testCase.expected {
			testInstance.Fatalf("pluralizedCount(%d, %q): expected %q, received %q", testCase.count, testCase.noun, testCase.expected, actual)
		}
	}
}

func TestSortEntriesCaseInsensitiveNames(testInstance *testing.T) {
	entries := []*types.TreeEntry{
		{Name: "Zulu"},
		{Name: "alpha"},
		{Name: "Mike"},
	}
	sortEntries(entries, types.SortKeyName, types.SortDirectionAscending)

	expectedOrder := []string{"alpha", "Mike", "Zulu"}
	for entryIndex, expectedName := range expectedOrder {
		if entries[entryIndex].Name != expectedName {
			testInstance.Fatalf("position %d: expected %q, received %q", entryIndex, expectedName, entries[entryIndex].Name)
		}
	}
}

func TestSortEntriesDescendingKeepsEqualKeysStable(testInstance *testing.T) {
	sharedTimestamp := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	entries := []*types.TreeEntry{
		{Name: "first", Modified: sharedTimestamp},
		{Name: "second", Modified: sharedTimestamp},
		{Name: "third", Modified: sharedTimestamp.Add(-time.Hour)},
	}
	sortEntries(entries, types.SortKeyModified, types.SortDirectionDescending)

	expectedOrder := []string{"first", "second", "third"}
	for entryIndex, expectedName := range expectedOrder {
		if entries[entryIndex].Name != expectedName {
			testInstance.Fatalf("position %d: expected %q, received %q", entryIndex, expectedName, entries[entryIndex].Name)
		}
	}
}

func TestNewGlobalLimitCommentLabels(testInstance *testing.T) {
	parentNode := &types.TreeEntry{Name: "root", Kind: types.KindFolder}
	testCases := []struct {
		name           string
		hiddenChildren []*types.TreeEntry
		expectedLabel  string
	}{
		{
			name: "mixed kinds",
			hiddenChildren: []*types.TreeEntry{
				{Kind: types.KindFolder},
				{Kind: types.KindFile},
				{Kind: types.KindFile},
			},
			expectedLabel: "limit reached – hidden: 1 folder, 2 files",
		},
		{
			name: "comments only fall back to items",
			hiddenChildren: []*types.TreeEntry{
				{Kind: types.KindComment},
			},
			expectedLabel: "limit reached – hidden: 1 item",
		},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			limitComment := newGlobalLimitComment(parentNode, testCase.hiddenChildren)
			if limitComment.Name != testCase.expectedLabel {
				testInstance.Fatalf("expected %q, received %q", testCase.expectedLabel, limitComment.Name)
			}
			if !isGlobalLimitComment(limitComment) {
				testInstance.Fatalf("expected the comment to be recognized as a budget comment")
			}
		})
	}
}
