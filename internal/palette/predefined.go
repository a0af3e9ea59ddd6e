package palette

const DefaultName = "default"

var order = []string{"default", "dark", "light", "dracula", "nord", "gruvbox"}

var predefined = map[string]Palette{
	"default": {
		Name:       "default",
		Primary:    "#7D56F4",
		Secondary:  "#8AA4EB",
		Success:    "#04B575",
		Warning:    "#FF8800",
		Error:      "#FF0000",
		Text:       "#FAFAFA",
		Muted:      "#6C6C6C",
		Border:     "#7D56F4",
		HeaderBg:   "#7D56F4",
		HeaderFg:   "#FAFAFA",
		SelectedBg: "#7D56F4",
		SelectedFg: "#FAFAFA",
	},
	"dark": {
		Name:       "dark",
		Primary:    "#BB9AF7",
		Secondary:  "#7AA2F7",
		Success:    "#9ECE6A",
		Warning:    "#E0AF68",
		Error:      "#F7768E",
		Text:       "#C0CAF5",
		Muted:      "#565F89",
		Border:     "#BB9AF7",
		HeaderBg:   "#BB9AF7",
		HeaderFg:   "#1A1B26",
		SelectedBg: "#BB9AF7",
		SelectedFg: "#1A1B26",
	},
	"light": {
		Name:       "light",
		Primary:    "#5B3CC4",
		Secondary:  "#2563EB",
		Success:    "#059669",
		Warning:    "#D97706",
		Error:      "#DC2626",
		Text:       "#1F2937",
		Muted:      "#9CA3AF",
		Border:     "#5B3CC4",
		HeaderBg:   "#5B3CC4",
		HeaderFg:   "#FFFFFF",
		SelectedBg: "#5B3CC4",
		SelectedFg: "#FFFFFF",
	},
	"dracula": {
		Name:       "dracula",
		Primary:    "#BD93F9",
		Secondary:  "#8BE9FD",
		Success:    "#50FA7B",
		Warning:    "#FFB86C",
		Error:      "#FF5555",
		Text:       "#F8F8F2",
		Muted:      "#6272A4",
		Border:     "#BD93F9",
		HeaderBg:   "#BD93F9",
		HeaderFg:   "#282A36",
		SelectedBg: "#BD93F9",
		SelectedFg: "#282A36",
	},
	"nord": {
		Name:       "nord",
		Primary:    "#88C0D0",
		Secondary:  "#81A1C1",
		Success:    "#A3BE8C",
		Warning:    "#EBCB8B",
		Error:      "#BF616A",
		Text:       "#ECEFF4",
		Muted:      "#4C566A",
		Border:     "#88C0D0",
		HeaderBg:   "#88C0D0",
		HeaderFg:   "#2E3440",
		SelectedBg: "#88C0D0",
		SelectedFg: "#2E3440",
	},
	"gruvbox": {
		Name:       "gruvbox",
		Primary:    "#D3869B",
		Secondary:  "#83A598",
		Success:    "#B8BB26",
		Warning:    "#FABD2F",
		Error:      "#FB4934",
		Text:       "#EBDBB2",
		Muted:      "#665C54",
		Border:     "#D3869B",
		HeaderBg:   "#D3869B",
		HeaderFg:   "#282828",
		SelectedBg: "#D3869B",
		SelectedFg: "#282828",
	},
}
