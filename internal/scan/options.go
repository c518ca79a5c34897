// Package scan builds bounded, filter-aware directory trees.
package scan

import (
	"fmt"

	"github.com/temirov/treeview/internal/types"
)

const (
	// errorSortKeyFormat reports an unsupported sort key.
	errorSortKeyFormat = "unsupported sort key %q: %w"
	// errorSortDirectionFormat reports an unsupported sort direction.
	errorSortDirectionFormat = "unsupported sort direction %q: %w"
	// errorOutputModeFormat reports an unsupported output mode.
	errorOutputModeFormat = "unsupported output mode %q: %w"
	// errorNegativeDepthFormat reports a negative depth bound.
	errorNegativeDepthFormat = "max depth must be >= 0, received %d: %w"
	// errorNegativeLinesFormat reports a negative line budget.
	errorNegativeLinesFormat = "max lines must be >= 0, received %d: %w"
	// errorNegativeFoldersFormat reports a negative per-directory folder cap.
	errorNegativeFoldersFormat = "max folders must be >= 0, received %d: %w"
	// errorNegativeFilesFormat reports a negative per-directory file cap.
	errorNegativeFilesFormat = "max files must be >= 0, received %d: %w"
)

// Options configures a single scan. Zero values for the numeric bounds mean
// unlimited. Depth starts at 1 for the root's direct children; MaxLines caps
// rendered non-comment entries.
type Options struct {
	MaxDepth      int
	MaxLines      int
	FoldersFirst  bool
	MaxFolders    int
	MaxFiles      int
	SortKey       string
	SortDirection string
	OutputMode    string
}

// DefaultOptions returns the option set used when the caller specifies nothing:
// newest-first by modification time, folders before files, text output, no bounds.
func DefaultOptions() Options {
	return Options{
		FoldersFirst:  true,
		SortKey:       types.SortKeyModified,
		SortDirection: types.SortDirectionDescending,
		OutputMode:    types.OutputModeText,
	}
}

// Validate fails fast on unsupported enum values and negative bounds. It runs
// before any filesystem access.
func (options Options) Validate() error {
	switch options.SortKey {
	case types.SortKeyName, types.SortKeyCreated, types.SortKeyModified:
	default:
		return fmt.Errorf(errorSortKeyFormat, options.SortKey, types.ErrConfiguration)
	}
	switch options.SortDirection {
	case types.SortDirectionAscending, types.SortDirectionDescending:
	default:
		return fmt.Errorf(errorSortDirectionFormat, options.SortDirection, types.ErrConfiguration)
	}
	switch options.OutputMode {
	case types.OutputModeText, types.OutputModeFlat, types.OutputModeNested:
	default:
		return fmt.Errorf(errorOutputModeFormat, options.OutputMode, types.ErrConfiguration)
	}
	if options.MaxDepth < 0 {
		return fmt.Errorf(errorNegativeDepthFormat, options.MaxDepth, types.ErrConfiguration)
	}
	if options.MaxLines < 0 {
		return fmt.Errorf(errorNegativeLinesFormat, options.MaxLines, types.ErrConfiguration)
	}
	if options.MaxFolders < 0 {
		return fmt.Errorf(errorNegativeFoldersFormat, options.MaxFolders, types.ErrConfiguration)
	}
	if options.MaxFiles < 0 {
		return fmt.Errorf(errorNegativeFilesFormat, options.MaxFiles, types.ErrConfiguration)
	}
	return nil
}
