package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/validation/internal/errors"
	"github.com/thoreinstein/validation/pkg/result"
)

func init() {
	rootCmd.AddCommand(resultCmd)
}

var resultCmd = &cobra.Command{
	Use:   "result",
	Short: "Demonstrate the Result combinators",
	Long: `Evaluate a handful of Result expressions and print each outcome.

The expressions cover Map, a plain Error, Compose with an Error, Compose
of two Successes, and Filter.`,
	Example: `  validation result`,
	Args:    cobra.NoArgs,
	RunE:    runResult,
}

type demo struct {
	expr    string
	outcome fmt.Stringer
}

func resultDemos() []demo {
	add := func(i, j int) int { return i + j }
	invalid := func() string { return "Invalid value" }

	return []demo{
		{
			expr:    "Map(Success(2), i+1)",
			outcome: result.Map(result.Success[string](2), func(i int) int { return i + 1 }),
		},
		{
			expr:    `Error("Invalid value")`,
			outcome: result.Error[string, int]("Invalid value"),
		},
		{
			expr:    `Success(2).Compose(Error("Invalid value"), +)`,
			outcome: result.Success[string](2).Compose(result.Error[string, int]("Invalid value"), add),
		},
		{
			expr:    "Success(2).Compose(Success(3), +)",
			outcome: result.Success[string](2).Compose(result.Success[string](3), add),
		},
		{
			expr: "Success(2).Compose(Success(3), +).Filter(i > 5)",
			outcome: result.Success[string](2).
				Compose(result.Success[string](3), add).
				Filter(func(i int) bool { return i > 5 }, invalid),
		},
	}
}

func runResult(cmd *cobra.Command, _ []string) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	for _, d := range resultDemos() {
		fmt.Fprintf(w, "%s\t%s\n", d.expr, d.outcome)
	}
	return errors.Wrap(w.Flush(), "writing results")
}
