package cmd

import (
	"github.com/spf13/cobra"

	"github.com/msto63/strview/internal/query"
)

var (
	splitUnique    bool
	linesSkipBlank bool
	linesTrim      bool
)

var splitCmd = &cobra.Command{
	Use:   "split <text> <sep>",
	Short: "An einem Trenner zerlegen",
	Long: `Zerlegt den Text an jedem Vorkommen von sep. Leere Teile bleiben
erhalten, ein leerer Trenner ist ein Fehler. Höchstens query.max_results
Teile; der letzte enthält dann den Rest.

Beispiele:
  strview split "a,b,,c" ","
  strview split --unique "x;y;x" ";"`,
	Args: textArgs(1, 0),
	RunE: runSplit,
}

var fieldsCmd = &cobra.Command{
	Use:   "fields <text>",
	Short: "In Wörter zerlegen",
	Long: `Zerlegt den Text an Leerraum. Leere Felder entstehen nicht.

Beispiele:
  strview fields "  eins zwei\tdrei "
  strview fields --file notes.txt --unique`,
	Args: textArgs(0, 0),
	RunE: runFields,
}

var tokensCmd = &cobra.Command{
	Use:   "tokens <text> <delims>",
	Short: "An Trennzeichen zerlegen",
	Long: `Zerlegt den Text an jedem Zeichen aus delims und verwirft leere
Teile.

Beispiele:
  strview tokens "a;b,,c" ";,"`,
	Args: textArgs(1, 0),
	RunE: runTokens,
}

var linesCmd = &cobra.Command{
	Use:   "lines <text>",
	Short: "In Zeilen zerlegen",
	Long: `Zerlegt den Text in Zeilen. \n und \r\n beenden eine Zeile.

Beispiele:
  strview lines --file README.md --skip-blank
  cat log.txt | strview lines --file - --trim --unique`,
	Args: textArgs(0, 0),
	RunE: runLines,
}

func init() {
	rootCmd.AddCommand(splitCmd)
	rootCmd.AddCommand(fieldsCmd)
	rootCmd.AddCommand(tokensCmd)
	rootCmd.AddCommand(linesCmd)

	for _, c := range []*cobra.Command{splitCmd, fieldsCmd, tokensCmd, linesCmd} {
		c.Flags().BoolVarP(&splitUnique, "unique", "u", false, "Doppelte Teile verwerfen")
	}
	linesCmd.Flags().BoolVar(&linesSkipBlank, "skip-blank", false, "Leere Zeilen überspringen")
	linesCmd.Flags().BoolVar(&linesTrim, "trim", false, "Leerraum an den Zeilenrändern entfernen")
}

func runSplit(cmd *cobra.Command, args []string) error {
	text, rest, err := inputText(cmd, args)
	if err != nil {
		return err
	}
	return runQuery(cmd, query.Request{Operation: query.OpSplit, Text: text, Arg: rest[0], Unique: splitUnique})
}

func runFields(cmd *cobra.Command, args []string) error {
	text, _, err := inputText(cmd, args)
	if err != nil {
		return err
	}
	return runQuery(cmd, query.Request{Operation: query.OpFields, Text: text, Unique: splitUnique})
}

func runTokens(cmd *cobra.Command, args []string) error {
	text, rest, err := inputText(cmd, args)
	if err != nil {
		return err
	}
	return runQuery(cmd, query.Request{Operation: query.OpTokens, Text: text, Arg: rest[0], Unique: splitUnique})
}

func runLines(cmd *cobra.Command, args []string) error {
	text, _, err := inputText(cmd, args)
	if err != nil {
		return err
	}
	return runQuery(cmd, query.Request{
		Operation: query.OpLines,
		Text:      text,
		Unique:    splitUnique,
		SkipBlank: linesSkipBlank,
		TrimLines: linesTrim,
	})
}
