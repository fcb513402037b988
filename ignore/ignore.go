// Package ignore decides which paths a search run skips. All rules are
// opt-in: with no exclude patterns, no gitignore support, and no size limit,
// every reachable path is a candidate.
package ignore

import (
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	gitignore "github.com/denormal/go-gitignore"
)

// Matcher determines whether a path should be excluded from the search.
// It combines user-provided glob patterns, optional .gitignore rules, and an
// optional file size limit.
type Matcher struct {
	rootDir          string
	gitIgnore        gitignore.GitIgnore
	excludePatterns  []string
	maxFileSizeBytes int64
}

// MatcherOptions configures the ignore matcher.
type MatcherOptions struct {
	RootDir string
	// ExcludePatterns are doublestar globs matched against the root-relative
	// path (forward slashes) and against the basename.
	ExcludePatterns []string
	// UseGitignore loads .gitignore from RootDir and honors its rules.
	UseGitignore bool
	// MaxFileSizeBytes caps the size of files whose content is read.
	// Zero means no limit.
	MaxFileSizeBytes int64
}

// NewMatcher creates an ignore matcher for a single search run.
func NewMatcher(options MatcherOptions) *Matcher {
	matcher := &Matcher{
		rootDir:          options.RootDir,
		excludePatterns:  options.ExcludePatterns,
		maxFileSizeBytes: options.MaxFileSizeBytes,
	}

	if options.UseGitignore {
		matcher.gitIgnore = loadIgnoreFile(filepath.Join(options.RootDir, ".gitignore"), options.RootDir)
	}

	return matcher
}

// ShouldIgnore returns true if the given file should be excluded from the
// search. The path should be absolute or relative to the root directory.
func (m *Matcher) ShouldIgnore(absolutePath string) bool {
	return m.shouldIgnore(absolutePath, false)
}

// ShouldIgnoreDir returns true if a directory and everything under it should
// be skipped during traversal.
func (m *Matcher) ShouldIgnoreDir(absolutePath string) bool {
	return m.shouldIgnore(absolutePath, true)
}

func (m *Matcher) shouldIgnore(absolutePath string, isDir bool) bool {
	// Get path relative to root for pattern matching
	relativePath, err := filepath.Rel(m.rootDir, absolutePath)
	if err != nil {
		relativePath = absolutePath
	}
	// Normalize to forward slashes for consistent matching
	relativePath = filepath.ToSlash(relativePath)

	if m.matchesExcludePatterns(relativePath) {
		return true
	}

	// Check .gitignore using Relative() which doesn't require the file to exist on disk
	if m.gitIgnore != nil {
		match := m.gitIgnore.Relative(relativePath, isDir)
		if match != nil && match.Ignore() {
			return true
		}
	}

	return false
}

// IsFileTooLarge returns true if the file exceeds the max file size limit.
// With no limit configured it always returns false.
func (m *Matcher) IsFileTooLarge(fileSize int64) bool {
	return m.maxFileSizeBytes > 0 && fileSize > m.maxFileSizeBytes
}

// MaxFileSizeBytes returns the configured maximum file size, zero for
// unlimited.
func (m *Matcher) MaxFileSizeBytes() int64 {
	return m.maxFileSizeBytes
}

// matchesExcludePatterns checks if the path matches any user-provided exclude
// pattern. Invalid patterns never match.
func (m *Matcher) matchesExcludePatterns(relativePath string) bool {
	baseName := filepath.Base(relativePath)

	for _, pattern := range m.excludePatterns {
		if matched, err := doublestar.Match(pattern, relativePath); err == nil && matched {
			return true
		}
		if matched, err := doublestar.Match(pattern, baseName); err == nil && matched {
			return true
		}
	}
	return false
}

// loadIgnoreFile reads an ignore file and creates a GitIgnore matcher from it.
// Uses io.Reader approach to ensure the file handle is properly closed on Windows.
func loadIgnoreFile(filePath string, baseDir string) gitignore.GitIgnore {
	f, err := os.Open(filePath)
	if err != nil {
		return nil
	}
	defer f.Close()

	gi := gitignore.New(f, baseDir, nil)
	return gi
}
