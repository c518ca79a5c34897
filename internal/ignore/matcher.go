// Package ignore compiles gitignore-style exclusion specifications into path matchers.
package ignore

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	gitignore "github.com/sabhiram/go-gitignore"

	"github.com/temirov/treeview/internal/types"
)

const (
	// fileReferencePrefix marks a specification that names an ignore file instead of inline patterns.
	fileReferencePrefix = "file:"
	// commentLinePrefix marks pattern lines that are discarded before compilation.
	commentLinePrefix = "#"

	// errorIgnoreFileMissingFormat reports a referenced ignore file that does not exist.
	errorIgnoreFileMissingFormat = "ignore file not found: %s: %w"
	// errorIgnoreFileReadFormat reports failure to read a referenced ignore file.
	errorIgnoreFileReadFormat = "reading ignore file %s: %w"
)

// Matcher decides whether a path relative to the scan root is excluded.
// A nil Matcher never excludes anything.
type Matcher struct {
	spec *gitignore.GitIgnore
}

// Compile builds a Matcher from an exclusion specification. The specification
// is either inline newline-delimited gitignore-style text or a reference to an
// ignore file in one of four forms:
//
//	file:.gitignore          relative to the scan root
//	file://.gitignore        URI-style relative path
//	file:/abs/.gitignore     absolute path
//	file:///abs/.gitignore   URI-style absolute path
//
// Blank lines and comment lines are discarded. An empty specification, or one
// that holds no patterns after filtering, yields a nil Matcher.
func Compile(specification string, scanRootPath string) (*Matcher, error) {
	if specification == "" {
		return nil, nil
	}

	content := specification
	if strings.HasPrefix(specification, fileReferencePrefix) {
		referencePath := resolveReferencePath(strings.TrimPrefix(specification, fileReferencePrefix), scanRootPath)
		fileContent, readError := os.ReadFile(referencePath)
		if readError != nil {
			if os.IsNotExist(readError) {
				return nil, fmt.Errorf(errorIgnoreFileMissingFormat, referencePath, types.ErrNotFound)
			}
			return nil, fmt.Errorf(errorIgnoreFileReadFormat, referencePath, readError)
		}
		content = string(fileContent)
	}

	patternLines := collectPatternLines(content)
	if len(patternLines) == 0 {
		return nil, nil
	}
	return &Matcher{spec: gitignore.CompileIgnoreLines(patternLines...)}, nil
}

// resolveReferencePath maps the four ignore file reference forms onto filesystem paths.
func resolveReferencePath(reference string, scanRootPath string) string {
	switch {
	case strings.HasPrefix(reference, "///"):
		return reference[2:]
	case strings.HasPrefix(reference, "//"):
		return filepath.Join(scanRootPath, reference[2:])
	case strings.HasPrefix(reference, "/"):
		return reference
	default:
		return filepath.Join(scanRootPath, reference)
	}
}

// collectPatternLines trims the specification content down to compilable pattern lines.
func collectPatternLines(content string) []string {
	var patternLines []string
	for _, rawLine := range strings.Split(content, "\n") {
		trimmedLine := strings.TrimSpace(rawLine)
		if trimmedLine == "" || strings.HasPrefix(trimmedLine, commentLinePrefix) {
			continue
		}
		patternLines = append(patternLines, trimmedLine)
	}
	return patternLines
}

// Matches reports whether the relative POSIX path is excluded. Directories are
// additionally probed with a trailing slash so that directory-only patterns apply.
func (matcher *Matcher) Matches(relativePath string, isDirectory bool) bool {
	if matcher == nil || matcher.spec == nil {
		return false
	}
	if matcher.spec.MatchesPath(relativePath) {
		return true
	}
	if isDirectory && !strings.HasSuffix(relativePath, "/") {
		return matcher.spec.MatchesPath(relativePath + "/")
	}
	return false
}
