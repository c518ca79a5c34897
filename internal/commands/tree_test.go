package commands_test

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/temirov/treeview/internal/commands"
	"github.com/temirov/treeview/internal/render"
	"github.com/temirov/treeview/internal/scan"
	"github.com/temirov/treeview/internal/types"
)

func nameAscendingOptions() scan.Options {
	options := scan.DefaultOptions()
	options.SortKey = types.SortKeyName
	options.SortDirection = types.SortDirectionAscending
	return options
}

func createFixtureDirectory(testInstance *testing.T) string {
	testInstance.Helper()
	baseDirectory := testInstance.TempDir()
	projectDirectory := filepath.Join(baseDirectory, "project")
	if mkdirError := os.MkdirAll(filepath.Join(projectDirectory, "src"), 0o755); mkdirError != nil {
		testInstance.Fatalf("creating fixture directories: %v", mkdirError)
	}
	for _, filePath := range []string{
		filepath.Join(projectDirectory, "src", "main.go"),
		filepath.Join(projectDirectory, "README.md"),
		filepath.Join(projectDirectory, "debug.log"),
	} {
		if writeError := os.WriteFile(filePath, []byte("content"), 0o644); writeError != nil {
			testInstance.Fatalf("writing %s: %v", filePath, writeError)
		}
	}
	return baseDirectory
}

func TestRunTreeTextMode(testInstance *testing.T) {
	baseDirectory := createFixtureDirectory(testInstance)

	renderedOutput, runError := commands.RunTree(commands.TreeRequest{
		BaseDirectory: baseDirectory,
		RelativePath:  "project",
		Ignore:        "*.log",
		Options:       nameAscendingOptions(),
	})
	if runError != nil {
		testInstance.Fatalf("unexpected run error: %v", runError)
	}

	expectedOutput := strings.Join([]string{
		"project/",
		"├── src/",
		"│   └── main.go",
		"└── README.md",
	}, "\n")
	if renderedOutput != expectedOutput {
		testInstance.Fatalf("expected:\n%s\nreceived:\n%s", expectedOutput, renderedOutput)
	}
}

func TestRunTreeFlatMode(testInstance *testing.T) {
	baseDirectory := createFixtureDirectory(testInstance)

	options := nameAscendingOptions()
	options.OutputMode = types.OutputModeFlat
	renderedOutput, runError := commands.RunTree(commands.TreeRequest{
		BaseDirectory: baseDirectory,
		RelativePath:  "project",
		Options:       options,
	})
	if runError != nil {
		testInstance.Fatalf("unexpected run error: %v", runError)
	}

	var decodedItems []render.Item
	if decodeError := json.Unmarshal([]byte(renderedOutput), &decodedItems); decodeError != nil {
		testInstance.Fatalf("decoding flat output: %v", decodeError)
	}
	if len(decodedItems) != 4 {
		testInstance.Fatalf("expected 4 flat items, received %d", len(decodedItems))
	}
	if decodedItems[0].Name != "src" || decodedItems[0].Type != types.KindFolder || decodedItems[0].Level != 1 {
		testInstance.Fatalf("unexpected first flat item: %+v", decodedItems[0])
	}
	if decodedItems[1].Name != "main.go" || decodedItems[1].Level != 2 {
		testInstance.Fatalf("unexpected second flat item: %+v", decodedItems[1])
	}
}

func TestRunTreeNestedMode(testInstance *testing.T) {
	baseDirectory := createFixtureDirectory(testInstance)

	options := nameAscendingOptions()
	options.OutputMode = types.OutputModeNested
	renderedOutput, runError := commands.RunTree(commands.TreeRequest{
		BaseDirectory: baseDirectory,
		RelativePath:  "project",
		Options:       options,
	})
	if runError != nil {
		testInstance.Fatalf("unexpected run error: %v", runError)
	}

	var decodedItems []render.Item
	if decodeError := json.Unmarshal([]byte(renderedOutput), &decodedItems); decodeError != nil {
		testInstance.Fatalf("decoding nested output: %v", decodeError)
	}
	if len(decodedItems) != 3 {
		testInstance.Fatalf("expected 3 top level items, received %d", len(decodedItems))
	}
	if decodedItems[0].Name != "src" || len(decodedItems[0].Items) != 1 {
		testInstance.Fatalf("expected src to nest one child, received %+v", decodedItems[0])
	}
}

func TestRunTreeRequestErrors(testInstance *testing.T) {
	baseDirectory := createFixtureDirectory(testInstance)

	testCases := []struct {
		name          string
		request       commands.TreeRequest
		expectedError error
	}{
		{
			name: "invalid options",
			request: commands.TreeRequest{
				BaseDirectory: baseDirectory,
				RelativePath:  "project",
				Options:       scan.Options{SortKey: "size", SortDirection: types.SortDirectionAscending, OutputMode: types.OutputModeText},
			},
			expectedError: types.ErrConfiguration,
		},
		{
			name: "missing scan root",
			request: commands.TreeRequest{
				BaseDirectory: baseDirectory,
				RelativePath:  "absent",
				Options:       nameAscendingOptions(),
			},
			expectedError: types.ErrNotFound,
		},
		{
			name: "missing ignore file",
			request: commands.TreeRequest{
				BaseDirectory: baseDirectory,
				RelativePath:  "project",
				Ignore:        "file:absent.gitignore",
				Options:       nameAscendingOptions(),
			},
			expectedError: types.ErrNotFound,
		},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			_, runError := commands.RunTree(testCase.request)
			if !errors.Is(runError, testCase.expectedError) {
				testInstance.Fatalf("expected %v, received %v", testCase.expectedError, runError)
			}
		})
	}
}
