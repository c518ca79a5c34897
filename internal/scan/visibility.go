package scan

import (
	"os"
	"path/filepath"

	"github.com/temirov/treeview/internal/ignore"
)

// visibilityCache memoizes, per absolute directory path, whether the directory
// transitively contains at least one entry that survives exclusion. The cache
// lives for a single scan and is never shared.
type visibilityCache map[string]bool

// hasVisibleDescendant reports whether directoryPath holds any entry not
// excluded by the matcher. A file counts when it is not excluded; an excluded
// subdirectory counts when it recursively holds a visible descendant.
// Recursion stops once remainingDepth reaches zero; a negative remainingDepth
// means unbounded. A directory that vanished mid-scan has no visible descendants.
func hasVisibleDescendant(directoryPath string, relativePath string, matcher *ignore.Matcher, cache visibilityCache, remainingDepth int) bool {
	if remainingDepth == 0 {
		return false
	}
	if cachedResult, cached := cache[directoryPath]; cached {
		return cachedResult
	}

	directoryEntries, readError := os.ReadDir(directoryPath)
	if readError != nil {
		cache[directoryPath] = false
		return false
	}

	for _, directoryEntry := range directoryEntries {
		childRelativePath := joinRelative(relativePath, directoryEntry.Name())
		if directoryEntry.IsDir() {
			if matcher.Matches(childRelativePath, true) {
				nextDepth := remainingDepth - 1
				if remainingDepth < 0 {
					nextDepth = -1
				}
				if nextDepth == 0 {
					continue
				}
				childAbsolutePath := filepath.Join(directoryPath, directoryEntry.Name())
				if hasVisibleDescendant(childAbsolutePath, childRelativePath, matcher, cache, nextDepth) {
					cache[directoryPath] = true
					return true
				}
				continue
			}
		} else if matcher.Matches(childRelativePath, false) {
			continue
		}
		cache[directoryPath] = true
		return true
	}

	cache[directoryPath] = false
	return false
}

// joinRelative appends a name to a normalized forward-slash relative path.
func joinRelative(parentRelativePath string, name string) string {
	if parentRelativePath == "" {
		return name
	}
	return parentRelativePath + "/" + name
}
