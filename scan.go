package main

import (
	"os"
	"path/filepath"
	"time"

	"log/slog"

	"github.com/lexandro/jargrep/extract"
	"github.com/lexandro/jargrep/ignore"
	"github.com/lexandro/jargrep/report"
	"github.com/lexandro/jargrep/search"
	"github.com/lexandro/jargrep/target"
)

// ScanStats holds the outcome of a single search run.
type ScanStats struct {
	FilesSearched    int // plain files whose content was searched
	ArchivesSearched int // jar archives inspected, including failed opens
	EntriesSearched  int // archive entries whose content was searched
	SkippedFiles     int // candidate files skipped by exclusion rules or size limit
	Duration         time.Duration
}

// runSearch walks the root directory and searches every eligible file,
// streaming match lines through the reporter and recording them in results.
// The walk is fully synchronous; results is owned by this call for its
// duration.
func runSearch(
	rootDir string,
	matcher *search.Matcher,
	ignoreMatcher *ignore.Matcher,
	results *search.Results,
	reporter *report.Reporter,
	logger *slog.Logger,
) ScanStats {
	start := time.Now()
	var stats ScanStats

	info, err := os.Stat(rootDir)
	if err != nil || !info.IsDir() {
		logger.Warn("directory does not exist or is not a directory", "path", rootDir)
		stats.Duration = time.Since(start)
		return stats
	}

	filepath.WalkDir(rootDir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			logger.Warn("cannot read path", "path", path, "error", err)
			return nil
		}
		if d.IsDir() {
			if path != rootDir && ignoreMatcher.ShouldIgnoreDir(path) {
				logger.Debug("skipped directory", "path", path)
				return filepath.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}

		kind := target.Classify(d.Name())
		if kind == target.KindNone {
			return nil
		}

		if ignoreMatcher.ShouldIgnore(path) {
			stats.SkippedFiles++
			logger.Debug("skipped file", "path", path)
			return nil
		}
		info, err := d.Info()
		if err != nil {
			logger.Warn("cannot stat file", "path", path, "error", err)
			return nil
		}
		if ignoreMatcher.IsFileTooLarge(info.Size()) {
			stats.SkippedFiles++
			logger.Debug("skipped large file", "path", path, "size", info.Size())
			return nil
		}

		switch kind {
		case target.KindArchive:
			stats.ArchivesSearched++
			stats.EntriesSearched += searchArchive(path, matcher, results, reporter, logger)
		case target.KindText:
			stats.FilesSearched++
			searchFile(path, matcher, results, reporter, logger)
		}
		return nil
	})

	stats.Duration = time.Since(start)
	return stats
}

// searchFile reads one plain file and records a match if the query occurs in
// its content. Read failures are logged and the walk continues; undecodable
// content is demoted to a debug log.
func searchFile(
	path string,
	matcher *search.Matcher,
	results *search.Results,
	reporter *report.Reporter,
	logger *slog.Logger,
) {
	content, err := extract.File(path)
	if err != nil {
		if extract.KindOf(err) == extract.KindEncoding {
			logger.Debug("undecodable file", "path", path, "error", err)
			return
		}
		logger.Warn("failed to read file", "path", path, "error", err)
		return
	}

	if matcher.Matches(content) {
		results.Add(search.Result{Path: path})
		reporter.FoundFile(path)
	}
}

// searchArchive opens a jar archive and searches every entry whose full name
// carries a target extension. Nested jar entries are searched as raw text,
// never expanded. Returns the number of entries searched.
func searchArchive(
	path string,
	matcher *search.Matcher,
	results *search.Results,
	reporter *report.Reporter,
	logger *slog.Logger,
) int {
	archive, err := extract.OpenArchive(path)
	if err != nil {
		switch extract.KindOf(err) {
		case extract.KindEmptyArchive:
			logger.Warn("skipping empty jar file", "path", path)
		case extract.KindAccessDenied:
			logger.Warn("skipping access-restricted jar file", "path", path)
		default:
			logger.Warn("failed to open jar file", "path", path, "error", err)
		}
		return 0
	}
	defer archive.Close()

	searched := 0
	for _, entry := range archive.Entries() {
		if !target.IsTarget(entry.Name()) {
			continue
		}
		searched++

		text, err := entry.Text()
		if err != nil {
			if extract.KindOf(err) == extract.KindEncoding {
				logger.Debug("undecodable jar entry", "path", path, "entry", entry.Name(), "error", err)
				continue
			}
			logger.Warn("failed to read jar entry", "path", path, "entry", entry.Name(), "error", err)
			continue
		}

		if matcher.Matches(text) {
			results.Add(search.Result{Path: path, Entry: entry.Name()})
			reporter.FoundArchiveEntry(path, entry.Name())
		}
	}
	return searched
}
