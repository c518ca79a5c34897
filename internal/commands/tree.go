// Package commands contains the core logic for assembling scan results.
package commands

import (
	"encoding/json"
	"fmt"

	"github.com/temirov/treeview/internal/ignore"
	"github.com/temirov/treeview/internal/paths"
	"github.com/temirov/treeview/internal/render"
	"github.com/temirov/treeview/internal/scan"
	"github.com/temirov/treeview/internal/types"
)

const (
	jsonIndentPrefix = ""
	jsonIndentSpacer = "  "

	// errorEncodeItemsFormat reports a failure to marshal structured output.
	errorEncodeItemsFormat = "encoding %s items: %w"
)

// TreeRequest describes one scan invocation. RelativePath is resolved against
// BaseDirectory; Ignore is an optional exclusion specification (inline
// gitignore-style text or a file: reference).
type TreeRequest struct {
	BaseDirectory string
	RelativePath  string
	Ignore        string
	Options       scan.Options
}

// RunTree validates the request, scans, and renders in the requested output
// mode. Text mode returns the ASCII tree verbatim; flat and nested modes
// return indented JSON.
func RunTree(request TreeRequest) (string, error) {
	if validationError := request.Options.Validate(); validationError != nil {
		return "", validationError
	}

	resolver := paths.Resolver{BaseDirectory: request.BaseDirectory}
	absoluteRootPath, resolveError := resolver.Resolve(request.RelativePath)
	if resolveError != nil {
		return "", resolveError
	}

	matcher, compileError := ignore.Compile(request.Ignore, absoluteRootPath)
	if compileError != nil {
		return "", compileError
	}

	builder := &scan.Builder{Options: request.Options, Matcher: matcher}
	rootNode, buildError := builder.Build(absoluteRootPath)
	if buildError != nil {
		return "", buildError
	}

	switch request.Options.OutputMode {
	case types.OutputModeFlat:
		return encodeItems(types.OutputModeFlat, render.Flat(rootNode))
	case types.OutputModeNested:
		return encodeItems(types.OutputModeNested, render.Nested(rootNode))
	default:
		return render.Text(rootNode, request.RelativePath), nil
	}
}

// encodeItems marshals structured output records the same way for both modes.
func encodeItems(modeName string, items []*render.Item) (string, error) {
	encoded, encodeError := json.MarshalIndent(items, jsonIndentPrefix, jsonIndentSpacer)
	if encodeError != nil {
		return "", fmt.Errorf(errorEncodeItemsFormat, modeName, encodeError)
	}
	return string(encoded), nil
}
