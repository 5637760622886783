package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewQRCodeCommand creates the qrcode command.
func NewQRCodeCommand(rootOpts *RootOptions) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "qrcode <slug>",
		Short: "Download the QR code linking to a restaurant's order page",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			png, err := rootOpts.client().QRCode(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			path := output
			if path == "" {
				path = args[0] + "-qrcode.png"
			}
			if err := os.WriteFile(path, png, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", path, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%d bytes)\n", path, len(png))
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default <slug>-qrcode.png)")

	return cmd
}
