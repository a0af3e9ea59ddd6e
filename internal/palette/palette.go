// Package palette holds the console color palettes used to style operator
// output and the previewer.
package palette

import (
	"errors"
	"fmt"
)

var ErrPaletteNotFound = errors.New("palette not found")

type Palette struct {
	Name string

	Primary   string
	Secondary string
	Success   string
	Warning   string
	Error     string

	Text  string
	Muted string

	Border     string
	HeaderBg   string
	HeaderFg   string
	SelectedBg string
	SelectedFg string
}

// Get returns a predefined palette by name.
func Get(name string) (*Palette, error) {
	p, ok := predefined[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrPaletteNotFound, name)
	}
	// copy so callers cannot mutate the shared table
	cp := p
	return &cp, nil
}

// GetOrDefault falls back to the default palette for unknown names.
func GetOrDefault(name string) *Palette {
	p, err := Get(name)
	if err != nil {
		p, _ = Get(DefaultName)
	}
	return p
}

func Exists(name string) bool {
	_, ok := predefined[name]
	return ok
}

// Names lists palettes in display order.
func Names() []string {
	return append([]string(nil), order...)
}
