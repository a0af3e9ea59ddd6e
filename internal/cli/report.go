package cli

import (
	"fmt"
	"io"

	"theme-migrator/internal/palette"
)

// consoleReporter prints migration progress one line per event.
type consoleReporter struct {
	w      io.Writer
	styles *palette.Styles
}

func newConsoleReporter(w io.Writer, styles *palette.Styles) *consoleReporter {
	return &consoleReporter{w: w, styles: styles}
}

func (r *consoleReporter) Discovered(count int) {
	fmt.Fprintln(r.w, r.styles.Info.Render(fmt.Sprintf("Found %d theme files.", count)))
}

func (r *consoleReporter) Generated(outputFile string, dryRun bool) {
	if dryRun {
		fmt.Fprintln(r.w, r.styles.Muted.Render("Would generate "+outputFile))
		return
	}
	fmt.Fprintln(r.w, r.styles.Success.Render("Generated "+outputFile))
}

func (r *consoleReporter) Skipped(fileName string) {
	fmt.Fprintln(r.w, r.styles.Warning.Render(fmt.Sprintf("Skipping %s (parse error)", fileName)))
}

func (r *consoleReporter) Completed(generated int) {
	fmt.Fprintln(r.w, r.styles.Title.Render(fmt.Sprintf("Migration complete. %d themes generated.", generated)))
}
