package cmd

import (
	"github.com/spf13/cobra"

	"github.com/msto63/strview/internal/query"
)

var containsCmd = &cobra.Command{
	Use:   "contains <text> <needle>",
	Short: "Prüft, ob needle enthalten ist",
	Long: `Prüft, ob needle im Text vorkommt, und markiert das erste Vorkommen.

Beispiele:
  strview contains "key=value" "y=v"`,
	Args: textArgs(1, 0),
	RunE: predicateRunner(query.OpContains),
}

var startsWithCmd = &cobra.Command{
	Use:   "starts-with <text> <prefix>",
	Short: "Prüft das Präfix",
	Long: `Prüft, ob der Text mit prefix beginnt, und zeigt den Rest.

Beispiele:
  strview starts-with "key=value" "key="`,
	Args: textArgs(1, 0),
	RunE: predicateRunner(query.OpStartsWith),
}

var endsWithCmd = &cobra.Command{
	Use:   "ends-with <text> <suffix>",
	Short: "Prüft das Suffix",
	Long: `Prüft, ob der Text mit suffix endet, und zeigt den Rest.

Beispiele:
  strview ends-with "report.toml" ".toml"`,
	Args: textArgs(1, 0),
	RunE: predicateRunner(query.OpEndsWith),
}

func init() {
	rootCmd.AddCommand(containsCmd)
	rootCmd.AddCommand(startsWithCmd)
	rootCmd.AddCommand(endsWithCmd)
}

func predicateRunner(op query.Operation) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		text, rest, err := inputText(cmd, args)
		if err != nil {
			return err
		}
		return runQuery(cmd, query.Request{Operation: op, Text: text, Arg: rest[0]})
	}
}
