package cmd

import (
	"github.com/spf13/cobra"

	"github.com/msto63/strview/internal/query"
)

var (
	findPos     int
	findReverse bool
	findAll     bool
	findLast    bool
	findNot     bool
)

var findCmd = &cobra.Command{
	Use:   "find <text> <needle>",
	Short: "Teilzeichenkette suchen",
	Long: `Sucht needle im Text. Ohne --pos beginnt die Vorwärtssuche am Anfang
und die Rückwärtssuche am Ende. Eine leere needle wird an der Startposition
gefunden.

Beispiele:
  strview find "key=value" "="
  strview find --reverse "a.b.c" "."
  strview find --all "abcabc" "bc"
  strview find --pos 4 --width 16 "Grüße Grüße" "ße"`,
	Args: textArgs(1, 0),
	RunE: runFind,
}

var findOfCmd = &cobra.Command{
	Use:   "find-of <text> <set>",
	Short: "Zeichen aus einer Menge suchen",
	Long: `Sucht das erste Zeichen, das in set enthalten ist. --last sucht
rückwärts, --not sucht Zeichen außerhalb von set.

Beispiele:
  strview find-of "hello world" "ol"
  strview find-of --last "path/to/file" "/"
  strview find-of --not "   text" " "`,
	Args: textArgs(1, 0),
	RunE: runFindOf,
}

func init() {
	rootCmd.AddCommand(findCmd)
	rootCmd.AddCommand(findOfCmd)

	findCmd.Flags().IntVarP(&findPos, "pos", "p", 0, "Startposition")
	findCmd.Flags().BoolVarP(&findReverse, "reverse", "r", false, "Rückwärts suchen")
	findCmd.Flags().BoolVarP(&findAll, "all", "a", false, "Alle Vorkommen (max. query.max_results)")

	findOfCmd.Flags().IntVarP(&findPos, "pos", "p", 0, "Startposition")
	findOfCmd.Flags().BoolVarP(&findLast, "last", "l", false, "Letztes Vorkommen")
	findOfCmd.Flags().BoolVarP(&findNot, "not", "n", false, "Zeichen außerhalb der Menge")
}

func runFind(cmd *cobra.Command, args []string) error {
	text, rest, err := inputText(cmd, args)
	if err != nil {
		return err
	}
	return runQuery(cmd, query.Request{
		Operation: query.OpFind,
		Text:      text,
		Arg:       rest[0],
		Pos:       findPos,
		HasPos:    cmd.Flags().Changed("pos"),
		Reverse:   findReverse,
		All:       findAll,
	})
}

func runFindOf(cmd *cobra.Command, args []string) error {
	text, rest, err := inputText(cmd, args)
	if err != nil {
		return err
	}
	return runQuery(cmd, query.Request{
		Operation: query.OpFindOf,
		Text:      text,
		Arg:       rest[0],
		Pos:       findPos,
		HasPos:    cmd.Flags().Changed("pos"),
		Last:      findLast,
		Not:       findNot,
	})
}
