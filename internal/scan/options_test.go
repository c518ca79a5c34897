package scan_test

import (
	"errors"
	"testing"

	"github.com/temirov/treeview/internal/scan"
	"github.com/temirov/treeview/internal/types"
)

func TestOptionsValidate(testInstance *testing.T) {
	testCases := []struct {
		name        string
		mutate      func(options *scan.Options)
		expectError bool
	}{
		{
			name:   "defaults are valid",
			mutate: func(options *scan.Options) {},
		},
		{
			name:        "unsupported sort key",
			mutate:      func(options *scan.Options) { options.SortKey = "size" },
			expectError: true,
		},
		{
			name:        "unsupported sort direction",
			mutate:      func(options *scan.Options) { options.SortDirection = "sideways" },
			expectError: true,
		},
		{
			name:        "unsupported output mode",
			mutate:      func(options *scan.Options) { options.OutputMode = "xml" },
			expectError: true,
		},
		{
			name:        "negative depth",
			mutate:      func(options *scan.Options) { options.MaxDepth = -1 },
			expectError: true,
		},
		{
			name:        "negative line budget",
			mutate:      func(options *scan.Options) { options.MaxLines = -5 },
			expectError: true,
		},
		{
			name:        "negative folder cap",
			mutate:      func(options *scan.Options) { options.MaxFolders = -1 },
			expectError: true,
		},
		{
			name:        "negative file cap",
			mutate:      func(options *scan.Options) { options.MaxFiles = -1 },
			expectError: true,
		},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			options := scan.DefaultOptions()
			testCase.mutate(&options)
			validationError := options.Validate()
			if !testCase.expectError {
				if validationError != nil {
					testInstance.Fatalf("unexpected validation error: %v", validationError)
				}
				return
			}
			if !errors.Is(validationError, types.ErrConfiguration) {
				testInstance.Fatalf("expected ErrConfiguration, received %v", validationError)
			}
		})
	}
}
