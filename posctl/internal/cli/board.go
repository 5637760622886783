package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
	"time"

	"orderdesk/internal/board"
	"orderdesk/internal/domain"
	"orderdesk/internal/logger"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

type boardOptions struct {
	restaurant string
	once       bool
	interval   time.Duration
}

// NewBoardCommand creates the board command. Without --once it keeps
// polling, reprints the board after every refresh and reads operator
// commands from stdin.
func NewBoardCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &boardOptions{}

	cmd := &cobra.Command{
		Use:   "board",
		Short: "Show the order board of a restaurant",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			restaurantID, err := uuid.Parse(opts.restaurant)
			if err != nil {
				return fmt.Errorf("invalid --restaurant %q", opts.restaurant)
			}

			var outMu sync.Mutex
			out := cmd.OutOrStdout()
			show := func(snap board.Snapshot) {
				outMu.Lock()
				defer outMu.Unlock()
				if err := printBoard(out, rootOpts.Format, snap); err != nil {
					fmt.Fprintln(cmd.ErrOrStderr(), err)
				}
			}

			popts := []board.Option{board.WithInterval(opts.interval)}
			if rootOpts.Verbose {
				popts = append(popts, board.WithLogger(logger.NewWithWriter("posctl", cmd.ErrOrStderr(), slog.LevelDebug)))
			}
			c := rootOpts.client()

			if opts.once {
				snap, err := board.NewPoller(c, restaurantID, popts...).Refresh(cmd.Context())
				if err != nil {
					return err
				}
				show(snap)
				return nil
			}

			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()

			ready := make(chan struct{})
			var readyOnce sync.Once
			poller := board.NewPoller(c, restaurantID, append(popts, board.OnUpdate(func(snap board.Snapshot) {
				show(snap)
				readyOnce.Do(func() { close(ready) })
			}))...)

			fmt.Fprintln(cmd.ErrOrStderr(), "commands: a <order> accept, c <order> complete, r refresh, q quit")
			go func() {
				defer cancel()
				select {
				case <-ready:
				case <-ctx.Done():
					return
				}
				op := &boardOperator{poller: poller, setter: c, out: out, mu: &outMu}
				op.serve(ctx, cmd.InOrStdin())
			}()

			if err := poller.Run(ctx); err != nil && ctx.Err() == nil {
				return err
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.restaurant, "restaurant", "r", "", "restaurant id")
	cmd.Flags().BoolVar(&opts.once, "once", false, "print the board once and exit")
	cmd.Flags().DurationVar(&opts.interval, "interval", board.DefaultInterval, "refresh interval")
	cmd.MarkFlagRequired("restaurant")

	return cmd
}

// boardOperator applies operator commands read line by line to a running
// board. Status changes go through the poller so the board is refreshed as
// soon as they succeed.
type boardOperator struct {
	poller *board.Poller
	setter board.StatusSetter
	out    io.Writer
	mu     *sync.Mutex
}

// serve returns on "q", at end of input, or when ctx is done.
func (o *boardOperator) serve(ctx context.Context, in io.Reader) {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		if ctx.Err() != nil {
			return
		}
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		switch fields[0] {
		case "q", "quit":
			return
		case "r", "refresh":
			o.poller.RequestRefresh()
		case "a", "accept":
			o.transition(ctx, fields, domain.StatusAccepted)
		case "c", "complete":
			o.transition(ctx, fields, domain.StatusCompleted)
		default:
			o.printf("unknown command %q\n", fields[0])
		}
	}
}

func (o *boardOperator) transition(ctx context.Context, fields []string, status domain.Status) {
	if len(fields) != 2 {
		o.printf("usage: %s <order>\n", fields[0])
		return
	}
	orderID, err := resolveOrder(o.poller.Snapshot(), fields[1])
	if err != nil {
		o.printf("%v\n", err)
		return
	}
	order, err := o.poller.Transition(ctx, o.setter, orderID, status)
	if err != nil {
		o.printf("order %s: %v\n", fields[1], err)
		return
	}
	o.printf("order #%s is %s\n", order.ShortID(), order.Status)
}

func (o *boardOperator) printf(format string, args ...any) {
	o.mu.Lock()
	defer o.mu.Unlock()
	fmt.Fprintf(o.out, format, args...)
}

// resolveOrder accepts a full order id or the ticket number shown on the
// board, with or without the leading "#".
func resolveOrder(snap board.Snapshot, ref string) (uuid.UUID, error) {
	if id, err := uuid.Parse(ref); err == nil {
		return id, nil
	}
	short := strings.ToUpper(strings.TrimPrefix(ref, "#"))
	var match uuid.UUID
	found := 0
	for _, o := range snap.Orders {
		if o.ShortID() == short {
			match = o.ID
			found++
		}
	}
	switch found {
	case 0:
		return uuid.Nil, fmt.Errorf("order %s: %w", ref, domain.ErrOrderNotFound)
	case 1:
		return match, nil
	}
	return uuid.Nil, fmt.Errorf("order %s is ambiguous, use the full id", ref)
}

type boardView struct {
	RestaurantID uuid.UUID      `json:"restaurant_id"`
	New          []domain.Order `json:"new"`
	Accepted     []domain.Order `json:"accepted"`
	Completed    []domain.Order `json:"completed"`
	FetchedAt    time.Time      `json:"fetched_at"`
}

func printBoard(w io.Writer, format string, snap board.Snapshot) error {
	if format == "json" {
		return writeJSON(w, boardView{
			RestaurantID: snap.RestaurantID,
			New:          snap.Buckets.New,
			Accepted:     snap.Buckets.Accepted,
			Completed:    snap.Buckets.Completed,
			FetchedAt:    snap.FetchedAt,
		})
	}

	fmt.Fprintf(w, "board at %s\n", snap.FetchedAt.Format(time.Kitchen))
	printBucket(w, "NEW", snap.Buckets.New)
	printBucket(w, "ACCEPTED", snap.Buckets.Accepted)
	printBucket(w, "COMPLETED", snap.Buckets.Completed)
	return nil
}

func printBucket(w io.Writer, title string, orders []domain.Order) {
	fmt.Fprintf(w, "%s (%d)\n", title, len(orders))
	for _, o := range orders {
		fmt.Fprintf(w, "  #%s  %s  %s\n", o.ShortID(), o.CreatedAt.Local().Format(time.Kitchen), o.Total.StringFixed(2))
		for _, it := range o.Items {
			fmt.Fprintf(w, "      %dx %s\n", it.Quantity, it.DisplayName())
		}
	}
}
