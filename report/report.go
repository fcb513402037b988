// Package report renders the search output: the run header, the streaming
// match lines, and the closing summary. All output goes to a single injected
// writer so the rest of the program never prints directly.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/lexandro/jargrep/search"
)

const divider = "=========================================="

// colorScheme defines consistent colors for the report lines.
// Green: match lines
// Cyan: header and summary labels
// Yellow: the not-found line
type colorScheme struct {
	found    *color.Color
	label    *color.Color
	notFound *color.Color
}

// newColorScheme creates the report color scheme. The enabled flag is applied
// per color so rendering does not depend on fatih/color's global TTY
// detection; the caller decides based on the actual output destination.
func newColorScheme(enabled bool) *colorScheme {
	scheme := &colorScheme{
		found:    color.New(color.FgGreen),
		label:    color.New(color.FgCyan),
		notFound: color.New(color.FgYellow),
	}
	if enabled {
		scheme.found.EnableColor()
		scheme.label.EnableColor()
		scheme.notFound.EnableColor()
	} else {
		scheme.found.DisableColor()
		scheme.label.DisableColor()
		scheme.notFound.DisableColor()
	}
	return scheme
}

// Reporter writes search output to a single destination. With colors disabled
// the output is byte-identical to the plain format, so pipelines and tests
// can rely on exact lines.
type Reporter struct {
	out    io.Writer
	scheme *colorScheme
}

// New creates a reporter writing to out. colorEnabled should already account
// for the user's preference and whether out is a terminal.
func New(out io.Writer, colorEnabled bool) *Reporter {
	return &Reporter{
		out:    out,
		scheme: newColorScheme(colorEnabled),
	}
}

// Header prints the run banner: query, search root, and the extension list.
func (r *Reporter) Header(query, root string, extensions []string) {
	fmt.Fprintf(r.out, "%s \"%s\"\n", r.scheme.label.Sprint("Searching for string:"), query)
	fmt.Fprintf(r.out, "%s %s\n", r.scheme.label.Sprint("In directory:"), root)
	fmt.Fprintf(r.out, "%s %s\n", r.scheme.label.Sprint("Looking for files with extensions:"), strings.Join(extensions, ", "))
	fmt.Fprintln(r.out, divider)
}

// FoundFile prints a streaming match line for a plain file.
func (r *Reporter) FoundFile(path string) {
	fmt.Fprintf(r.out, "%s %s\n", r.scheme.found.Sprint("Found in file:"), path)
}

// FoundArchiveEntry prints a streaming match line for an entry inside an
// archive.
func (r *Reporter) FoundArchiveEntry(path, entry string) {
	fmt.Fprintf(r.out, "%s %s -> %s\n", r.scheme.found.Sprint("Found in JAR:"), path, entry)
}

// Summary prints the closing block: either the not-found line or the match
// count followed by every result in discovery order.
func (r *Reporter) Summary(results *search.Results) {
	if results.Empty() {
		fmt.Fprintln(r.out, r.scheme.notFound.Sprint("String not found in specified files."))
		return
	}

	fmt.Fprintf(r.out, "%s %d\n", r.scheme.label.Sprint("Found matches:"), results.Count())
	fmt.Fprintln(r.out, "Results:")
	for _, result := range results.All() {
		fmt.Fprintf(r.out, "  %s\n", result)
	}
}
