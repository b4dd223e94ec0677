package cmd

import (
	"github.com/spf13/cobra"

	"github.com/msto63/strview/internal/query"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <text>",
	Short: "Ansicht untersuchen",
	Long: `Zeigt Größe, erstes und letztes Zeichen sowie die Code-Einheiten
des Textes in der gewählten Breite.

Beispiele:
  strview inspect "Grüße"
  strview inspect --width 16 "Grüße 😀"
  strview inspect --file notes.txt --json`,
	Args: textArgs(0, 0),
	RunE: runInspect,
}

var atCmd = &cobra.Command{
	Use:   "at <text> <pos>",
	Short: "Zeichen an einer Position",
	Long: `Liefert das Zeichen an Position pos. Eine Position außerhalb von
[0, Größe) ist ein Fehler.

Beispiele:
  strview at "hello" 1
  strview at --width 32 "Grüße" 2`,
	Args: textArgs(1, 0),
	RunE: runAt,
}

func init() {
	rootCmd.AddCommand(inspectCmd)
	rootCmd.AddCommand(atCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	text, _, err := inputText(cmd, args)
	if err != nil {
		return err
	}
	return runQuery(cmd, query.Request{Operation: query.OpInspect, Text: text})
}

func runAt(cmd *cobra.Command, args []string) error {
	text, rest, err := inputText(cmd, args)
	if err != nil {
		return err
	}
	pos, err := parseInt("position", rest[0])
	if err != nil {
		return err
	}
	return runQuery(cmd, query.Request{Operation: query.OpAt, Text: text, Pos: pos})
}
