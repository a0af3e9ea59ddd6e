package domain

import (
	"errors"
	"strings"
)

// DefaultVariant is used when a source theme does not declare its type.
const DefaultVariant = "dark"

// Token is an output-side color variable name such as "--bg-app".
type Token string

const (
	TokenBgApp            Token = "--bg-app"
	TokenBgPanel          Token = "--bg-panel"
	TokenBgHeader         Token = "--bg-header"
	TokenBgInput          Token = "--bg-input"
	TokenTextMain         Token = "--text-main"
	TokenTextMuted        Token = "--text-muted"
	TokenAccentPrimary    Token = "--accent-primary"
	TokenAccentSecondary  Token = "--accent-secondary"
	TokenBorderLight      Token = "--border-light"
	TokenBorderDark       Token = "--border-dark"
	TokenListHover        Token = "--list-hover"
	TokenEditorBg         Token = "--editor-bg"
	TokenEditorFg         Token = "--editor-fg"
	TokenEditorSelection  Token = "--editor-selection"
	TokenEditorLineNumber Token = "--editor-line-number"
	TokenEditorCursor     Token = "--editor-cursor"
	TokenEditorGutter     Token = "--editor-gutter"
)

// Tokens returns the full output vocabulary.
func Tokens() []Token {
	return []Token{
		TokenBgApp,
		TokenBgPanel,
		TokenBgHeader,
		TokenBgInput,
		TokenTextMain,
		TokenTextMuted,
		TokenAccentPrimary,
		TokenAccentSecondary,
		TokenBorderLight,
		TokenBorderDark,
		TokenListHover,
		TokenEditorBg,
		TokenEditorFg,
		TokenEditorSelection,
		TokenEditorLineNumber,
		TokenEditorCursor,
		TokenEditorGutter,
	}
}

func IsValidToken(t Token) bool {
	for _, known := range Tokens() {
		if known == t {
			return true
		}
	}
	return false
}

// ColorEntry is a single token/value pair of a ColorSet.
type ColorEntry struct {
	Token Token
	Value string
}

// ColorSet maps tokens to color values and remembers first-insertion order.
// Overwriting an existing token keeps its position and replaces the value.
type ColorSet struct {
	order  []Token
	values map[Token]string
}

func NewColorSet() *ColorSet {
	return &ColorSet{values: make(map[Token]string)}
}

func (c *ColorSet) Set(token Token, value string) {
	if _, exists := c.values[token]; !exists {
		c.order = append(c.order, token)
	}
	c.values[token] = value
}

func (c *ColorSet) Get(token Token) (string, bool) {
	if c == nil {
		return "", false
	}
	v, ok := c.values[token]
	return v, ok
}

func (c *ColorSet) Has(token Token) bool {
	_, ok := c.Get(token)
	return ok
}

func (c *ColorSet) Len() int {
	if c == nil {
		return 0
	}
	return len(c.order)
}

// Entries returns a copy of the entries in insertion order.
func (c *ColorSet) Entries() []ColorEntry {
	if c == nil {
		return nil
	}
	entries := make([]ColorEntry, 0, len(c.order))
	for _, t := range c.order {
		entries = append(entries, ColorEntry{Token: t, Value: c.values[t]})
	}
	return entries
}

// Theme is a single extracted theme, built once per input file.
type Theme struct {
	ID      string
	Name    string
	Variant string
	Colors  *ColorSet
}

// NewTheme applies the name and variant fallbacks.
func NewTheme(id, name, variant string, colors *ColorSet) *Theme {
	if name == "" {
		name = id
	}
	if variant == "" {
		variant = DefaultVariant
	}
	if colors == nil {
		colors = NewColorSet()
	}
	return &Theme{
		ID:      id,
		Name:    name,
		Variant: variant,
		Colors:  colors,
	}
}

func (t *Theme) Validate() error {
	if strings.TrimSpace(t.ID) == "" {
		return errors.New("theme id cannot be empty")
	}

	for _, entry := range t.Colors.Entries() {
		if !IsValidToken(entry.Token) {
			return errors.New("unknown color token: " + string(entry.Token))
		}
	}

	return nil
}

// OutputFileName is the file name the theme is emitted under.
func (t *Theme) OutputFileName() string {
	return t.ID + ".md"
}
