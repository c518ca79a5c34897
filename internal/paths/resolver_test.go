package paths_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/temirov/treeview/internal/paths"
	"github.com/temirov/treeview/internal/types"
)

func TestResolve(testInstance *testing.T) {
	baseDirectory := testInstance.TempDir()
	if mkdirError := os.Mkdir(filepath.Join(baseDirectory, "project"), 0o755); mkdirError != nil {
		testInstance.Fatalf("creating directory: %v", mkdirError)
	}
	if writeError := os.WriteFile(filepath.Join(baseDirectory, "notes.txt"), []byte("notes"), 0o644); writeError != nil {
		testInstance.Fatalf("writing file: %v", writeError)
	}

	resolver := paths.Resolver{BaseDirectory: baseDirectory}

	testCases := []struct {
		name          string
		relativePath  string
		expectedPath  string
		expectedError error
	}{
		{
			name:         "relative directory resolves against base",
			relativePath: "project",
			expectedPath: filepath.Join(baseDirectory, "project"),
		},
		{
			name:         "absolute path used as given",
			relativePath: filepath.Join(baseDirectory, "project"),
			expectedPath: filepath.Join(baseDirectory, "project"),
		},
		{
			name:          "missing path",
			relativePath:  "absent",
			expectedError: types.ErrNotFound,
		},
		{
			name:          "file instead of directory",
			relativePath:  "notes.txt",
			expectedError: types.ErrNotADirectory,
		},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			resolvedPath, resolveError := resolver.Resolve(testCase.relativePath)
			if testCase.expectedError != nil {
				if !errors.Is(resolveError, testCase.expectedError) {
					testInstance.Fatalf("expected %v, received %v", testCase.expectedError, resolveError)
				}
				return
			}
			if resolveError != nil {
				testInstance.Fatalf("unexpected resolve error: %v", resolveError)
			}
			if resolvedPath != testCase.expectedPath {
				testInstance.Fatalf("expected %q, received %q", testCase.expectedPath, resolvedPath)
			}
		})
	}
}
