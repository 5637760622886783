package cli

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// NewPopularCommand creates the popular command.
func NewPopularCommand(rootOpts *RootOptions) *cobra.Command {
	var restaurant, period string

	cmd := &cobra.Command{
		Use:   "popular",
		Short: "Show a restaurant's best sellers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			restaurantID, err := uuid.Parse(restaurant)
			if err != nil {
				return fmt.Errorf("invalid --restaurant %q", restaurant)
			}
			items, err := rootOpts.client().PopularItems(cmd.Context(), restaurantID, period)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if rootOpts.Format == "json" {
				return writeJSON(out, items)
			}
			for i, it := range items {
				fmt.Fprintf(out, "%2d. %-30s %g\n", i+1, it.Name, it.Score)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&restaurant, "restaurant", "r", "", "restaurant id")
	cmd.Flags().StringVar(&period, "period", "today", "ranking window (today|all)")
	cmd.MarkFlagRequired("restaurant")

	return cmd
}
