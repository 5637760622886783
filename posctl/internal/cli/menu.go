package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewMenuCommand creates the menu command.
func NewMenuCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "menu <slug>",
		Short: "Show a restaurant's active menus",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			menus, err := rootOpts.client().PublicMenus(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if rootOpts.Format == "json" {
				return writeJSON(out, menus)
			}
			if len(menus) == 0 {
				fmt.Fprintln(out, "no active menus")
				return nil
			}
			for _, m := range menus {
				fmt.Fprintf(out, "%s\n", m.Name)
				for _, it := range m.Items {
					mark := ""
					if !it.IsAvailable {
						mark = " (unavailable)"
					}
					fmt.Fprintf(out, "  %s  %-30s %8s%s\n", it.ID, it.Name, it.Price.StringFixed(2), mark)
				}
			}
			return nil
		},
	}
}
