package cmd

import (
	"github.com/spf13/cobra"

	mdwerrors "github.com/msto63/strview/foundation/core/errors"
	"github.com/msto63/strview/internal/query"
)

var (
	trimSet   string
	trimLeft  bool
	trimRight bool
)

var trimCmd = &cobra.Command{
	Use:   "trim <text>",
	Short: "Zeichen an den Rändern entfernen",
	Long: `Entfernt Zeichen aus --set an beiden Enden. Ohne --set gilt
query.trim_set aus der Konfiguration.

Beispiele:
  strview trim "  text  "
  strview trim --set "-_" "--name__"
  strview trim --left "   eingerückt"`,
	Args: textArgs(0, 0),
	RunE: runTrim,
}

var cutCmd = &cobra.Command{
	Use:   "cut <text> <sep>",
	Short: "Am ersten Trenner teilen",
	Long: `Teilt den Text am ersten Vorkommen von sep in zwei Teile.

Beispiele:
  strview cut "key=value" "="`,
	Args: textArgs(1, 0),
	RunE: runCut,
}

func init() {
	rootCmd.AddCommand(trimCmd)
	rootCmd.AddCommand(cutCmd)

	trimCmd.Flags().StringVarP(&trimSet, "set", "s", "", "Zu entfernende Zeichen")
	trimCmd.Flags().BoolVar(&trimLeft, "left", false, "Nur am Anfang")
	trimCmd.Flags().BoolVar(&trimRight, "right", false, "Nur am Ende")
}

func runTrim(cmd *cobra.Command, args []string) error {
	if trimLeft && trimRight {
		return mdwerrors.InvalidInput(mdwerrors.ModuleCLI, "trim", "--left --right", "at most one of --left and --right")
	}

	text, _, err := inputText(cmd, args)
	if err != nil {
		return err
	}

	side := query.TrimBoth
	switch {
	case trimLeft:
		side = query.TrimLeft
	case trimRight:
		side = query.TrimRight
	}
	return runQuery(cmd, query.Request{Operation: query.OpTrim, Text: text, Arg: trimSet, Side: side})
}

func runCut(cmd *cobra.Command, args []string) error {
	text, rest, err := inputText(cmd, args)
	if err != nil {
		return err
	}
	return runQuery(cmd, query.Request{Operation: query.OpCut, Text: text, Arg: rest[0]})
}
