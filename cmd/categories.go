package cmd

import (
	"github.com/spf13/cobra"
)

// categoriesCmd prints the category table.
var categoriesCmd = &cobra.Command{
	Use:     "categories",
	Aliases: []string{"cats"},
	Short:   "List timer categories and their colors",
	Long: `List the categories offered by the timer form, with the color each
one is drawn in. Unknown categories are accepted and drawn without color.

Categories can be added or recolored in the config file:

  categories:
    - name: Holiday
      color: "#F59E0B"`,
	Args: cobra.NoArgs,
	RunE: runCategories,
}

func init() {
	rootCmd.AddCommand(categoriesCmd)
}

func runCategories(cmd *cobra.Command, args []string) error {
	categories := ctx.Config.Categories

	if ctx.IsJSON() {
		return ctx.JSONFormatter().PrintCategories(categories)
	}
	if !ctx.IsCLI() {
		for _, c := range categories {
			ctx.Formatter.Printf("%s\t%s\n", c.Name, c.Color)
		}
		return nil
	}

	cli := ctx.CLIFormatter()
	cli.PrintCategories(categories)
	return nil
}
