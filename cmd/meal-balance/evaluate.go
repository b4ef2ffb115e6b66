// cmd/meal-balance/evaluate.go
package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"mcp-meal-balance/internal/evaluation"
	"mcp-meal-balance/internal/models"
	"mcp-meal-balance/internal/output"
)

func newEvaluateCmd() *cobra.Command {
	var profile string

	cmd := &cobra.Command{
		Use:   "evaluate FOOD...",
		Short: "Score a meal against a target profile",
		Example: `  meal-balance evaluate --profile adult-male rice grilled-salmon vegetable-salad
  meal-balance evaluate --profile child --format json rice miso-soup`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEvaluate(cmd.OutOrStdout(), args, models.ProfileID(profile), cfg.Format)
		},
	}

	cmd.Flags().StringVarP(&profile, "profile", "p", "", "target profile: child, adult-male, adult-female, elderly")
	cmd.Flags().StringP("format", "f", "text", "output format: text, json, yaml")
	_ = cmd.MarkFlagRequired("profile")

	return cmd
}

func runEvaluate(w io.Writer, foods []string, profile models.ProfileID, format string) error {
	formatter, err := output.NewFormatter(format, w)
	if err != nil {
		return err
	}

	result, err := evaluation.Evaluate(foods, profile)
	if err != nil {
		return fmt.Errorf("evaluation failed: %w", err)
	}

	return formatter.Format(result)
}
