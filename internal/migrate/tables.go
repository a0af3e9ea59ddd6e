package migrate

import "theme-migrator/internal/domain"

// Mapping is one source key to output token pair.
type Mapping struct {
	Key   string
	Token domain.Token
}

// primaryColors remaps keys found in the general colors block.
var primaryColors = map[string]domain.Token{
	"chromeBg":         domain.TokenBgApp,
	"secondary":        domain.TokenBgPanel,
	"surface":          domain.TokenBgPanel,
	"surfaceHighlight": domain.TokenBgHeader,
	"windowBg":         domain.TokenBgInput,
	"text":             domain.TokenTextMain,
	"textMuted":        domain.TokenTextMuted,
	"primary":          domain.TokenAccentPrimary,
	"success":          domain.TokenAccentSecondary,
	"border":           domain.TokenBorderLight,
	"windowBorder":     domain.TokenBorderDark,

	// editor names also accepted in the colors block; the editor block
	// overwrites them in place
	"background": domain.TokenEditorBg,
	"selection":  domain.TokenEditorSelection,
	"line":       domain.TokenEditorLineNumber,
	"caret":      domain.TokenEditorCursor,
	"gutter":     domain.TokenEditorGutter,
}

// editorColors remaps keys found in the editor block. It is consulted
// instead of primaryColors for that block, so text lands on --editor-fg.
var editorColors = map[string]domain.Token{
	"background": domain.TokenEditorBg,
	"text":       domain.TokenEditorFg,
	"selection":  domain.TokenEditorSelection,
	"line":       domain.TokenEditorLineNumber,
	"caret":      domain.TokenEditorCursor,
	"gutter":     domain.TokenEditorGutter,
}

var (
	primaryOrder = []string{
		"chromeBg", "secondary", "surface", "surfaceHighlight", "windowBg",
		"text", "textMuted", "primary", "success", "border", "windowBorder",
		"background", "selection", "line", "caret", "gutter",
	}
	editorOrder = []string{"background", "text", "selection", "line", "caret", "gutter"}
)

// PrimaryMappings lists the general remapping table in declaration order.
func PrimaryMappings() []Mapping {
	return mappings(primaryOrder, primaryColors)
}

// EditorMappings lists the editor remapping table in declaration order.
func EditorMappings() []Mapping {
	return mappings(editorOrder, editorColors)
}

func mappings(order []string, table map[string]domain.Token) []Mapping {
	out := make([]Mapping, 0, len(order))
	for _, key := range order {
		out = append(out, Mapping{Key: key, Token: table[key]})
	}
	return out
}
