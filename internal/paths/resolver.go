// Package paths resolves caller-supplied paths against a fixed base directory.
package paths

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/temirov/treeview/internal/types"
)

const (
	// errorPathMissingFormat reports a path that does not exist.
	errorPathMissingFormat = "path does not exist: %q: %w"
	// errorNotADirectoryFormat reports a path that exists but is not a directory.
	errorNotADirectoryFormat = "expected a directory, received: %q: %w"
	// errorStatFormat reports failure to retrieve file statistics.
	errorStatFormat = "stat failed for %q: %w"
)

// Resolver maps relative paths onto absolute paths rooted at BaseDirectory.
type Resolver struct {
	BaseDirectory string
}

// Resolve converts relativePath to an absolute path rooted at the base
// directory and validates that it names an existing directory. An already
// absolute input is used as given.
func (resolver Resolver) Resolve(relativePath string) (string, error) {
	absolutePath := filepath.Join(resolver.BaseDirectory, relativePath)
	if filepath.IsAbs(relativePath) {
		absolutePath = filepath.Clean(relativePath)
	}

	pathInfo, statError := os.Stat(absolutePath)
	if statError != nil {
		if os.IsNotExist(statError) {
			return "", fmt.Errorf(errorPathMissingFormat, relativePath, types.ErrNotFound)
		}
		return "", fmt.Errorf(errorStatFormat, relativePath, statError)
	}
	if !pathInfo.IsDir() {
		return "", fmt.Errorf(errorNotADirectoryFormat, relativePath, types.ErrNotADirectory)
	}
	return absolutePath, nil
}
