package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"my_trip/internal/app"
	"my_trip/internal/domain/entities"
	"my_trip/internal/usecase"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
)

// NewOrdersCommand groups the order store operations.
func NewOrdersCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "orders",
		Short: "Inspect and change local orders",
	}
	cmd.AddCommand(newOrdersListCommand(opts))
	cmd.AddCommand(newOrdersStatsCommand(opts))
	cmd.AddCommand(newOrdersSeedCommand(opts))
	cmd.AddCommand(newOrdersPayCommand(opts))
	cmd.AddCommand(newOrdersTransitionCommand(opts, "cancel", "Cancel an order", func(a *app.App) func(cmd *cobra.Command, id string) error {
		return func(cmd *cobra.Command, id string) error { return a.Orders.Cancel(cmd.Context(), id) }
	}))
	cmd.AddCommand(newOrdersTransitionCommand(opts, "complete", "Complete an order", func(a *app.App) func(cmd *cobra.Command, id string) error {
		return func(cmd *cobra.Command, id string) error { return a.Orders.Complete(cmd.Context(), id) }
	}))
	cmd.AddCommand(newOrdersDeleteCommand(opts))
	cmd.AddCommand(newOrdersClearCommand(opts))
	return cmd
}

func newOrdersListCommand(opts *RootOptions) *cobra.Command {
	var status string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List orders, most recent first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tab := entities.OrderStatus(strings.ToLower(strings.TrimSpace(status)))
			if tab == "" {
				tab = entities.OrderStatusAll
			}
			if !tab.IsValid() {
				return NewExitError(ExitCommandError, fmt.Sprintf("invalid status %q", status))
			}
			return opts.withApp(cmd, func(a *app.App) error {
				orders := a.Orders.FilteredBy(tab)
				return opts.formatter(cmd).Success(orders, func(w io.Writer) error {
					return renderOrders(w, orders)
				})
			})
		},
	}
	cmd.Flags().StringVarP(&status, "status", "s", "all", "status tab (all|pending|paid|completed|cancelled)")
	return cmd
}

func newOrdersStatsCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show order counts and amounts per status",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withApp(cmd, func(a *app.App) error {
				stats := a.Orders.Statistics()
				return opts.formatter(cmd).Success(stats, func(w io.Writer) error {
					return renderStatistics(w, stats)
				})
			})
		},
	}
}

func newOrdersSeedCommand(opts *RootOptions) *cobra.Command {
	var fetch bool
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Fill an empty store with demo orders",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withApp(cmd, func(a *app.App) error {
				f := opts.formatter(cmd)
				if fetch {
					if err := a.Home.FetchHouselist(cmd.Context()); err != nil {
						f.VerboseLog("houselist fetch failed, seeding without listings: %v", err)
					}
				}
				a.Orders.EnsureSeeded(cmd.Context())
				orders := a.Orders.List()
				return f.Success(orders, func(w io.Writer) error {
					return renderOrders(w, orders)
				})
			})
		},
	}
	cmd.Flags().BoolVar(&fetch, "fetch", false, "load one houselist page from TRIP_API_BASE_URL before seeding")
	return cmd
}

func newOrdersPayCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "pay <order-id>",
		Short: "Pay a pending order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withApp(cmd, func(a *app.App) error {
				f := opts.formatter(cmd)
				result, err := a.Payments.PayOrder(cmd.Context(), args[0])
				if err != nil {
					var payErr *entities.PaymentError
					if errors.As(err, &payErr) {
						_ = f.Error(payErr.Code, payErr.Message)
						return NewExitError(ExitFailure, payErr.Message)
					}
					return orderCommandError(f, err)
				}
				return f.Success(result, func(w io.Writer) error {
					_, err := fmt.Fprintf(w, "%s %s payment_id=%s amount=%.2f\n", result.Data.OrderID, result.Message, result.Data.PaymentID, result.Data.Amount)
					return err
				})
			})
		},
	}
}

func newOrdersTransitionCommand(opts *RootOptions, use, short string, apply func(a *app.App) func(cmd *cobra.Command, id string) error) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <order-id>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withApp(cmd, func(a *app.App) error {
				f := opts.formatter(cmd)
				if _, ok := a.Orders.GetByID(args[0]); !ok {
					return orderCommandError(f, usecase.ErrOrderNotFound)
				}
				if err := apply(a)(cmd, args[0]); err != nil {
					return orderCommandError(f, err)
				}
				order, _ := a.Orders.GetByID(args[0])
				return f.Success(order, func(w io.Writer) error {
					return renderOrders(w, []entities.Order{order})
				})
			})
		},
	}
}

func newOrdersDeleteCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <order-id>",
		Short: "Delete an order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withApp(cmd, func(a *app.App) error {
				a.Orders.Delete(cmd.Context(), args[0])
				return opts.formatter(cmd).Success(map[string]int{"count": a.Orders.Count()}, func(w io.Writer) error {
					_, err := fmt.Fprintf(w, "deleted %s (%d orders left)\n", args[0], a.Orders.Count())
					return err
				})
			})
		},
	}
}

func newOrdersClearCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove every order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withApp(cmd, func(a *app.App) error {
				a.Orders.Clear(cmd.Context())
				return opts.formatter(cmd).Success(map[string]int{"count": 0}, func(w io.Writer) error {
					_, err := fmt.Fprintln(w, "cleared")
					return err
				})
			})
		},
	}
}

func orderCommandError(f *OutputFormatter, err error) error {
	var transitionErr *entities.InvalidStatusTransitionError
	switch {
	case errors.Is(err, usecase.ErrOrderNotFound):
		_ = f.Error("ORDER_NOT_FOUND", "Order not found")
		return WrapExitError(ExitFailure, "order not found", err)
	case errors.Is(err, usecase.ErrOrderNotPayable):
		_ = f.Error("ORDER_NOT_PAYABLE", "Only pending orders can be paid")
		return WrapExitError(ExitFailure, "order not payable", err)
	case errors.As(err, &transitionErr):
		_ = f.Error("INVALID_STATUS_TRANSITION", transitionErr.Error())
		return WrapExitError(ExitFailure, "invalid status transition", err)
	}
	_ = f.Error("INTERNAL_ERROR", err.Error())
	return WrapExitError(ExitCommandError, "command failed", err)
}

func renderOrders(w io.Writer, orders []entities.Order) error {
	if len(orders) == 0 {
		_, err := fmt.Fprintln(w, "no orders")
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ORDER ID\tSTATUS\tHOUSE\tCHECK-IN\tNIGHTS\tTOTAL")
	for _, o := range orders {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%d\t%.2f\n",
			o.OrderID, entities.StatusText(o.Status, language.English), o.HouseInfo.HouseName, o.CheckInDate, o.Nights, o.TotalPrice)
	}
	return tw.Flush()
}

func renderStatistics(w io.Writer, stats usecase.OrderStatistics) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "STATUS\tCOUNT\tAMOUNT")
	statuses := append([]entities.OrderStatus{entities.OrderStatusAll}, entities.StoredOrderStatuses...)
	for _, s := range statuses {
		fmt.Fprintf(tw, "%s\t%d\t%.2f\n", entities.StatusText(s, language.English), stats.Counts[s], stats.TotalAmount[s])
	}
	return tw.Flush()
}
