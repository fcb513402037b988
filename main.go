package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"log/slog"

	"github.com/mattn/go-isatty"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/lexandro/jargrep/ignore"
	"github.com/lexandro/jargrep/report"
	"github.com/lexandro/jargrep/search"
	"github.com/lexandro/jargrep/target"
)

// excludePatterns is a repeatable CLI flag for exclusion glob patterns.
type excludePatterns []string

func (e *excludePatterns) String() string { return strings.Join(*e, ", ") }
func (e *excludePatterns) Set(value string) error {
	*e = append(*e, value)
	return nil
}

func main() {
	// Parse CLI flags
	var excludes excludePatterns
	var useGitignore bool
	var maxFileSizeBytes int64
	var logLevel string
	var logFile string
	var logJSON bool
	var noColor bool

	flag.Var(&excludes, "exclude", "Exclusion glob pattern, doublestar syntax (repeatable)")
	flag.BoolVar(&useGitignore, "gitignore", false, "Honor .gitignore rules found in the search root")
	flag.Int64Var(&maxFileSizeBytes, "max-file-size", 0, "Skip files larger than this many bytes (0 = no limit)")
	flag.StringVar(&logLevel, "log-level", "info", "Log level: debug|info|warn|error")
	flag.StringVar(&logFile, "log-file", "", "Log file path with rotation (default: stderr)")
	flag.BoolVar(&logJSON, "log-json", false, "Write log records as JSON")
	flag.BoolVar(&noColor, "no-color", false, "Disable colored output")
	flag.Usage = func() { printUsage(os.Stderr) }
	flag.Parse()

	if flag.NArg() < 2 {
		printUsage(os.Stdout)
		os.Exit(2)
	}

	// The search path is taken as given; relative roots produce relative
	// result paths. Positionals beyond the first two are ignored.
	searchPath := flag.Arg(0)
	searchString := flag.Arg(1)

	// Logs go to stderr or a file, never to stdout - stdout carries the
	// search output.
	logger := setupLogger(logLevel, logFile, logJSON)

	logger.Info("starting search",
		"root", searchPath,
		"query", searchString,
		"maxFileSize", maxFileSizeBytes,
		"gitignore", useGitignore,
		"excludes", len(excludes),
	)

	colorEnabled := !noColor && isatty.IsTerminal(os.Stdout.Fd())
	reporter := report.New(os.Stdout, colorEnabled)

	matcher := search.NewMatcher(searchString)
	results := search.NewResults()
	ignoreMatcher := ignore.NewMatcher(ignore.MatcherOptions{
		RootDir:          searchPath,
		ExcludePatterns:  excludes,
		UseGitignore:     useGitignore,
		MaxFileSizeBytes: maxFileSizeBytes,
	})

	reporter.Header(searchString, searchPath, target.Extensions())

	stats := runSearch(searchPath, matcher, ignoreMatcher, results, reporter, logger)

	reporter.Summary(results)

	logger.Info("search complete",
		"files", stats.FilesSearched,
		"archives", stats.ArchivesSearched,
		"entries", stats.EntriesSearched,
		"skipped", stats.SkippedFiles,
		"matches", results.Count(),
		"duration", stats.Duration,
	)
}

// printUsage writes the usage and example lines plus the flag defaults.
func printUsage(w io.Writer) {
	binaryName := filepath.Base(os.Args[0])
	fmt.Fprintf(w, "Usage: %s [flags] <search_path> <search_string>\n", binaryName)
	fmt.Fprintf(w, "Example: %s /opt/app \"myString\"\n", binaryName)
	fmt.Fprintln(w, "\nFlags:")
	flag.CommandLine.SetOutput(w)
	flag.PrintDefaults()
}

// setupLogger creates an slog.Logger writing to stderr or a rotating log file.
func setupLogger(level string, logFile string, jsonFormat bool) *slog.Logger {
	var logLevel slog.Level
	switch strings.ToLower(level) {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	var writer io.Writer = os.Stderr
	if logFile != "" {
		writer = &lumberjack.Logger{
			Filename:   logFile,
			MaxSize:    100, // megabytes
			MaxBackups: 3,
			MaxAge:     30, // days
			Compress:   true,
		}
	}

	opts := &slog.HandlerOptions{Level: logLevel}
	var handler slog.Handler
	if jsonFormat {
		handler = slog.NewJSONHandler(writer, opts)
	} else {
		handler = slog.NewTextHandler(writer, opts)
	}
	return slog.New(handler)
}
