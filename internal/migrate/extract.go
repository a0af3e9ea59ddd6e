package migrate

import (
	"errors"
	"regexp"
	"strings"

	"theme-migrator/internal/domain"
)

var ErrNoThemeID = errors.New("no theme id found")

var (
	idPattern      = regexp.MustCompile(`id:\s*'([^']+)'`)
	namePattern    = regexp.MustCompile(`name:\s*'([^']+)'`)
	variantPattern = regexp.MustCompile(`type:\s*'([^']+)'`)

	// Both blocks end at the first closing brace, so a nested object inside
	// either block truncates it.
	colorsBlockPattern = regexp.MustCompile(`colors:\s*\{([^}]+)\}`)
	editorBlockPattern = regexp.MustCompile(`editor:\s*(?:createDefaultEditorTheme\(\s*)?\{([^}]+)\}`)

	entryPattern = regexp.MustCompile(`^(\w+):\s*'([^']+)'`)
)

// Extract pulls a theme out of the text of one source file. It returns
// ErrNoThemeID when the text has no recognizable id.
func Extract(content string) (*domain.Theme, error) {
	id := firstGroup(idPattern, content)
	if id == "" {
		return nil, ErrNoThemeID
	}

	colors := domain.NewColorSet()

	// primary block first, editor block second; the last write wins
	if block := firstGroup(colorsBlockPattern, content); block != "" {
		applyBlock(colors, block, primaryColors)
	}
	if block := firstGroup(editorBlockPattern, content); block != "" {
		applyBlock(colors, block, editorColors)
	}

	if !colors.Has(domain.TokenListHover) {
		if accent, ok := colors.Get(domain.TokenAccentPrimary); ok {
			colors.Set(domain.TokenListHover, accent)
		}
	}

	return domain.NewTheme(
		id,
		firstGroup(namePattern, content),
		firstGroup(variantPattern, content),
		colors,
	), nil
}

func applyBlock(colors *domain.ColorSet, block string, table map[string]domain.Token) {
	for _, line := range strings.Split(block, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "//") {
			continue
		}

		m := entryPattern.FindStringSubmatch(line)
		if m == nil {
			continue
		}

		if token, ok := table[m[1]]; ok {
			colors.Set(token, m[2])
		}
	}
}

func firstGroup(re *regexp.Regexp, s string) string {
	m := re.FindStringSubmatch(s)
	if m == nil {
		return ""
	}
	return m[1]
}
