// cmd/meal-balance/foods.go
package main

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"mcp-meal-balance/internal/catalog"
	"mcp-meal-balance/internal/models"
	"mcp-meal-balance/internal/session"
)

func newFoodsCmd() *cobra.Command {
	var difficulty string

	cmd := &cobra.Command{
		Use:   "foods",
		Short: "List the food catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return listFoods(cmd.OutOrStdout(), models.Difficulty(difficulty))
		},
	}
	cmd.Flags().StringVarP(&difficulty, "difficulty", "d", "", "only list foods offered at this difficulty")

	return cmd
}

func newProfilesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "profiles",
		Short: "List the target profiles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return listProfiles(cmd.OutOrStdout())
		},
	}
}

func listFoods(out io.Writer, difficulty models.Difficulty) error {
	foods := catalog.Foods()
	if difficulty != "" {
		if !catalog.ValidDifficulty(difficulty) {
			return fmt.Errorf("%w: %q", session.ErrInvalidDifficulty, difficulty)
		}
		foods = catalog.FoodsFor(difficulty)
	}

	w := tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)
	if _, err := fmt.Fprintln(w, "ID\tNAME\tCATEGORY\tP\tL\tC\tV\tKCAL"); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for _, f := range foods {
		if _, err := fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			f.ID, f.Name, f.Category,
			fnum(f.Protein), fnum(f.Fat), fnum(f.Carbohydrate), fnum(f.Vegetable), fnum(f.Calories),
		); err != nil {
			return fmt.Errorf("failed to write food: %w", err)
		}
	}
	return w.Flush()
}

func listProfiles(out io.Writer) error {
	w := tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)
	if _, err := fmt.Fprintln(w, "ID\tNAME\tPROTEIN\tFAT\tCARBOHYDRATE\tVEGETABLE MIN\tKCAL MAX"); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for _, p := range catalog.Profiles() {
		if _, err := fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			p.ID, p.Name,
			frange(p.Protein), frange(p.Fat), frange(p.Carbohydrate),
			fnum(p.VegetableMin), fnum(p.CaloriesMax),
		); err != nil {
			return fmt.Errorf("failed to write profile: %w", err)
		}
	}
	return w.Flush()
}

func fnum(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func frange(r models.Range) string {
	return fnum(r.Min) + "-" + fnum(r.Max)
}
