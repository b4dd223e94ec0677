package cmd

import (
	"github.com/spf13/cobra"

	"github.com/msto63/strview/internal/query"
)

var (
	comparePos   int
	compareCount int
	compareFold  bool
)

var substrCmd = &cobra.Command{
	Use:   "substr <text> <pos> [count]",
	Short: "Teilansicht bilden",
	Long: `Bildet die Teilansicht ab pos mit höchstens count Zeichen. Ohne count
oder mit negativem count reicht sie bis zum Ende. pos gleich der Größe
ergibt eine leere Ansicht, eine größere Position ist ein Fehler.

Beispiele:
  strview substr "hello world" 6
  strview substr "hello world" 0 5
  strview substr --width 16 "Grüße 😀" 6 2`,
	Args: textArgs(1, 1),
	RunE: runSubstr,
}

var compareCmd = &cobra.Command{
	Use:   "compare <text> <other>",
	Short: "Lexikographisch vergleichen",
	Long: `Vergleicht den Text mit other Code-Einheit für Code-Einheit. Mit --pos
wird nur die Teilansicht (pos, count) verglichen, --fold vergleicht ohne
Beachtung der ASCII-Groß-/Kleinschreibung, mit --pos auch nur die
Teilansicht.

Beispiele:
  strview compare "abc" "abd"
  strview compare --pos 6 --count 5 "hello world" "world"
  strview compare --fold "HeLLo" "hello"`,
	Args: textArgs(1, 0),
	RunE: runCompare,
}

func init() {
	rootCmd.AddCommand(substrCmd)
	rootCmd.AddCommand(compareCmd)

	compareCmd.Flags().IntVar(&comparePos, "pos", 0, "Startposition im Text")
	compareCmd.Flags().IntVar(&compareCount, "count", -1, "Anzahl Zeichen ab --pos (negativ: bis zum Ende)")
	compareCmd.Flags().BoolVar(&compareFold, "fold", false, "ASCII-Groß-/Kleinschreibung ignorieren")
}

func runSubstr(cmd *cobra.Command, args []string) error {
	text, rest, err := inputText(cmd, args)
	if err != nil {
		return err
	}
	pos, err := parseInt("position", rest[0])
	if err != nil {
		return err
	}
	count := -1
	if len(rest) > 1 {
		if count, err = parseInt("count", rest[1]); err != nil {
			return err
		}
	}
	return runQuery(cmd, query.Request{Operation: query.OpSubstr, Text: text, Pos: pos, Count: count})
}

func runCompare(cmd *cobra.Command, args []string) error {
	text, rest, err := inputText(cmd, args)
	if err != nil {
		return err
	}
	return runQuery(cmd, query.Request{
		Operation: query.OpCompare,
		Text:      text,
		Arg:       rest[0],
		Pos:       comparePos,
		HasPos:    cmd.Flags().Changed("pos") || cmd.Flags().Changed("count"),
		Count:     compareCount,
		Fold:      compareFold,
	})
}
