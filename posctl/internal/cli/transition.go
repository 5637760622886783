package cli

import (
	"context"
	"fmt"

	"orderdesk/internal/domain"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// NewAcceptCommand creates the accept command.
func NewAcceptCommand(rootOpts *RootOptions) *cobra.Command {
	return newTransitionCommand(rootOpts, "accept", "Accept a new order",
		func(ctx context.Context, orderID uuid.UUID) (*domain.Order, error) {
			return rootOpts.client().Accept(ctx, orderID)
		})
}

// NewCompleteCommand creates the complete command.
func NewCompleteCommand(rootOpts *RootOptions) *cobra.Command {
	return newTransitionCommand(rootOpts, "complete", "Complete an accepted order",
		func(ctx context.Context, orderID uuid.UUID) (*domain.Order, error) {
			return rootOpts.client().Complete(ctx, orderID)
		})
}

// NewStatusCommand creates the status command, the generic form of accept
// and complete.
func NewStatusCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "status <order-id> <status>",
		Short: "Move an order to a status",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			orderID, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid order id %q", args[0])
			}
			status, err := domain.ParseStatus(args[1])
			if err != nil {
				return err
			}
			order, err := rootOpts.client().SetStatus(cmd.Context(), orderID, status)
			if err != nil {
				return err
			}
			return printOrderStatus(cmd, rootOpts, order)
		},
	}
}

func newTransitionCommand(rootOpts *RootOptions, use, short string, apply func(context.Context, uuid.UUID) (*domain.Order, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <order-id>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			orderID, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid order id %q", args[0])
			}
			order, err := apply(cmd.Context(), orderID)
			if err != nil {
				return err
			}
			return printOrderStatus(cmd, rootOpts, order)
		},
	}
}

func printOrderStatus(cmd *cobra.Command, rootOpts *RootOptions, order *domain.Order) error {
	if rootOpts.Format == "json" {
		return writeJSON(cmd.OutOrStdout(), order)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "order #%s is %s\n", order.ShortID(), order.Status)
	return nil
}
