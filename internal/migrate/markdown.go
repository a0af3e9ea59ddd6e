package migrate

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"theme-migrator/internal/domain"
)

const frontMatterDelimiter = "---"

// WriteMarkdown renders a theme as front matter followed by an import note.
// The layout is byte-stable: tools downstream diff these files.
func WriteMarkdown(w io.Writer, t *domain.Theme) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, frontMatterDelimiter)
	fmt.Fprintf(bw, "id: %s\n", t.ID)
	fmt.Fprintf(bw, "name: %s\n", t.Name)
	fmt.Fprintf(bw, "type: %s\n", t.Variant)
	fmt.Fprintln(bw, "colors:")
	for _, entry := range t.Colors.Entries() {
		fmt.Fprintf(bw, "  %s: \"%s\"\n", entry.Token, entry.Value)
	}
	fmt.Fprintln(bw, frontMatterDelimiter)
	fmt.Fprintln(bw)
	fmt.Fprintf(bw, "<!-- Imported from %s -->\n", t.ID)

	return bw.Flush()
}

// WriteMarkdownFile creates or truncates path and writes the theme to it.
func WriteMarkdownFile(path string, t *domain.Theme) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, outputFileMode)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	if err := WriteMarkdown(f, t); err != nil {
		f.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", path, err)
	}

	return nil
}
