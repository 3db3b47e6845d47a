package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	recipeCommands "github.com/kibahcorps/schedule1-go/internal/application/recipes/commands"
	recipeQueries "github.com/kibahcorps/schedule1-go/internal/application/recipes/queries"
	"github.com/kibahcorps/schedule1-go/internal/application/recipes/types"
)

// NewRecipesCommand manages saved and predefined recipes
func NewRecipesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "recipes",
		Short: "Save, list and delete named recipes",
		Long: `Manage named recipes stored in the configured database.

Saved recipes are re-valued against the current catalog every time they are read.

Examples:
  schedule1 recipes save "Bright Kush" "OG Kush" Battery --notes "cheap and quick"
  schedule1 recipes list
  schedule1 recipes delete 3f9c...
  schedule1 recipes predefined`,
	}

	cmd.AddCommand(newRecipesSaveCommand())
	cmd.AddCommand(newRecipesListCommand())
	cmd.AddCommand(newRecipesShowCommand())
	cmd.AddCommand(newRecipesDeleteCommand())
	cmd.AddCommand(newRecipesPredefinedCommand())

	return cmd
}

func newRecipesSaveCommand() *cobra.Command {
	var notes string

	cmd := &cobra.Command{
		Use:   "save <name> <product> [mixer...]",
		Short: "Save a named recipe",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd, true)
			if err != nil {
				return err
			}
			defer s.close()

			resp, err := s.send(&recipeCommands.SaveRecipeCommand{
				Name:    args[0],
				Product: args[1],
				Mixers:  args[2:],
				Notes:   notes,
			})
			if err != nil {
				return err
			}
			saved := resp.(*recipeCommands.SaveRecipeResponse).Recipe

			w := cmd.OutOrStdout()
			if jsonOutput {
				return printJSON(w, saved)
			}
			success.Fprintf(w, "✓ Saved %q\n", saved.Name)
			fmt.Fprintf(w, "  ID: %s\n", saved.ID)
			if saved.Recipe != nil {
				printRecipe(w, saved.Recipe)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&notes, "notes", "", "Free-form notes")
	return cmd
}

func newRecipesListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved recipes, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd, true)
			if err != nil {
				return err
			}
			defer s.close()

			resp, err := s.send(&recipeQueries.ListSavedRecipesQuery{})
			if err != nil {
				return err
			}
			recipes := resp.(*recipeQueries.ListSavedRecipesResponse).Recipes

			w := cmd.OutOrStdout()
			if jsonOutput {
				return printJSON(w, recipes)
			}
			if len(recipes) == 0 {
				neutral.Fprintln(w, "No saved recipes")
				return nil
			}
			tw := newTable(w)
			fmt.Fprintln(tw, "ID\tNAME\tPRODUCT\tMIXERS\tPROFIT\tSAVED")
			for _, r := range recipes {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
					shortID(r.ID), r.Name, savedProduct(r), savedMixers(r), savedProfit(r),
					r.CreatedAt.Format("2006-01-02 15:04"))
			}
			return tw.Flush()
		},
	}
}

func newRecipesShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one saved recipe",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd, true)
			if err != nil {
				return err
			}
			defer s.close()

			resp, err := s.send(&recipeQueries.GetSavedRecipeQuery{ID: args[0]})
			if err != nil {
				return err
			}
			saved := resp.(*recipeQueries.GetSavedRecipeResponse).Recipe

			w := cmd.OutOrStdout()
			if jsonOutput {
				return printJSON(w, saved)
			}
			accent.Fprintf(w, "%s (%s)\n", saved.Name, saved.ID)
			if saved.Notes != "" {
				fmt.Fprintf(w, "  Notes: %s\n", saved.Notes)
			}
			if saved.Error != "" {
				danger.Fprintf(w, "  %s\n", saved.Error)
				return nil
			}
			printRecipe(w, saved.Recipe)
			return nil
		},
	}
}

func newRecipesDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a saved recipe",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd, true)
			if err != nil {
				return err
			}
			defer s.close()

			if _, err := s.send(&recipeCommands.DeleteSavedRecipeCommand{ID: args[0]}); err != nil {
				return err
			}
			success.Fprintf(cmd.OutOrStdout(), "✓ Deleted %s\n", args[0])
			return nil
		},
	}
}

func newRecipesPredefinedCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "predefined",
		Short: "Value the built-in example recipes on each of their base products",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd, false)
			if err != nil {
				return err
			}
			defer s.close()

			resp, err := s.send(&recipeQueries.EvaluatePredefinedQuery{})
			if err != nil {
				return err
			}
			recipes := resp.(*recipeQueries.EvaluatePredefinedResponse).Recipes

			w := cmd.OutOrStdout()
			if jsonOutput {
				return printJSON(w, recipes)
			}
			tw := newTable(w)
			fmt.Fprintln(tw, "NAME\tPRODUCT\tMIXERS\tVALUE\tPROFIT\tMARGIN\tMATCHES LISTING")
			for _, p := range recipes {
				match := "yes"
				if !p.EffectsMatch {
					match = "no"
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\t$%d\t$%d\t%.1f%%\t%s\n",
					p.Name, p.Recipe.Product, mixerList(p.Recipe.Mixers), p.Recipe.MarketValue,
					p.Recipe.Profit, p.Recipe.ProfitMargin, match)
			}
			return tw.Flush()
		},
	}
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func savedProduct(r *types.SavedRecipeDTO) string {
	if r.Recipe == nil {
		return "?"
	}
	return r.Recipe.Product
}

func savedMixers(r *types.SavedRecipeDTO) string {
	if r.Recipe == nil {
		return "-"
	}
	return strings.Join(r.Recipe.Mixers, ", ")
}

func savedProfit(r *types.SavedRecipeDTO) string {
	if r.Recipe == nil {
		return r.Error
	}
	return fmt.Sprintf("$%d (%.1f%%)", r.Recipe.Profit, r.Recipe.ProfitMargin)
}
