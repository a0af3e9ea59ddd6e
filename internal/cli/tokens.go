package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"theme-migrator/internal/domain"
	"theme-migrator/internal/migrate"
	"theme-migrator/internal/palette"
)

var tokensCmd = &cobra.Command{
	Use:   "tokens",
	Short: "Show the output token vocabulary and remapping tables",
	Long: `Show every output color token and the source keys that produce it.

Keys from the general colors block and the editor block are remapped through
separate tables. --list-hover is copied from --accent-primary when no
other value is present.`,
	Args: cobra.NoArgs,
	RunE: runTokens,
}

func init() {
	rootCmd.AddCommand(tokensCmd)
}

func runTokens(cmd *cobra.Command, args []string) error {
	styles := stylesFor(loadConfigOrDefault(cmd))
	fmt.Fprintln(cmd.OutOrStdout(), renderTokensTable(styles))
	return nil
}

type tokenRow struct {
	Token   domain.Token
	Colors  []string
	Editor  []string
	Derived string
}

func buildTokenRows() []tokenRow {
	rows := make([]tokenRow, 0, len(domain.Tokens()))
	index := make(map[domain.Token]int)
	for _, tok := range domain.Tokens() {
		index[tok] = len(rows)
		rows = append(rows, tokenRow{Token: tok})
	}

	for _, m := range migrate.PrimaryMappings() {
		r := &rows[index[m.Token]]
		r.Colors = append(r.Colors, m.Key)
	}
	for _, m := range migrate.EditorMappings() {
		r := &rows[index[m.Token]]
		r.Editor = append(r.Editor, m.Key)
	}
	rows[index[domain.TokenListHover]].Derived = string(domain.TokenAccentPrimary)

	return rows
}

func renderTokensTable(styles *palette.Styles) string {
	t := newTable(styles).Headers("Token", "colors: keys", "editor: keys", "Fallback")
	for _, r := range buildTokenRows() {
		t.Row(string(r.Token), strings.Join(r.Colors, ", "), strings.Join(r.Editor, ", "), r.Derived)
	}
	return t.Render()
}
