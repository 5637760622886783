package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"orderdesk/posctl/internal/client"

	"github.com/spf13/cobra"
)

const defaultBaseURL = "http://localhost:8081"

// RootOptions holds global flags for all commands.
type RootOptions struct {
	BaseURL string
	Format  string // "json" | "text"
	Verbose bool

	// HTTPClient overrides the transport. Tests point it at httptest servers.
	HTTPClient client.HTTPClient
}

var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for posctl.
func NewRootCommand() *cobra.Command {
	return newRootCommand(&RootOptions{})
}

func newRootCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "posctl",
		Short: "posctl - orderdesk point of sale",
		Long:  "Browse menus, place orders and run the order board of an orderdesk restaurant.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			return nil
		},
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&opts.BaseURL, "url", getEnv("ORDERDESK_URL", defaultBaseURL), "pos-svc base URL")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")

	cmd.AddCommand(NewMenuCommand(opts))
	cmd.AddCommand(NewOrderCommand(opts))
	cmd.AddCommand(NewBoardCommand(opts))
	cmd.AddCommand(NewAcceptCommand(opts))
	cmd.AddCommand(NewCompleteCommand(opts))
	cmd.AddCommand(NewStatusCommand(opts))
	cmd.AddCommand(NewPopularCommand(opts))
	cmd.AddCommand(NewQRCodeCommand(opts))

	return cmd
}

func (o *RootOptions) client() *client.Client {
	return client.New(o.BaseURL, o.HTTPClient)
}

func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
