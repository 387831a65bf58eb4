package commands

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/charliescheer/woocommerce-ios/internal/domain/commerce"
	"github.com/charliescheer/woocommerce-ios/internal/infrastructure/remote"
)

func ordersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "orders",
		Short: "Inspect and manage orders",
	}
	cmd.AddCommand(ordersListCmd(), ordersGetCmd(), ordersUpdateStatusCmd())
	return cmd
}

func ordersListCmd() *cobra.Command {
	var (
		status   string
		keyword  string
		page     int
		pageSize int
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the site's orders, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			siteID, err := app.siteID()
			if err != nil {
				return err
			}
			orders, err := app.orders.List(cmd.Context(), siteID, remote.ListOrdersOptions{
				Status:   commerce.OrderStatus(status),
				Keyword:  keyword,
				Page:     page,
				PageSize: pageSize,
			})
			if err != nil {
				return err
			}
			return printJSON(orders)
		},
	}
	cmd.Flags().StringVar(&status, "status", "", "filter by order status (e.g. processing)")
	cmd.Flags().StringVar(&keyword, "search", "", "search order contents")
	cmd.Flags().IntVar(&page, "page", 1, "page number")
	cmd.Flags().IntVar(&pageSize, "page-size", 25, "orders per page")
	return cmd
}

func ordersGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <order-id>",
		Short: "Show a single order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			siteID, err := app.siteID()
			if err != nil {
				return err
			}
			orderID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return err
			}
			order, err := app.orders.Get(cmd.Context(), siteID, orderID)
			if err != nil {
				return err
			}
			return printJSON(order)
		},
	}
}

func ordersUpdateStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "update-status <order-id> <status>",
		Short: "Set an order's status",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			siteID, err := app.siteID()
			if err != nil {
				return err
			}
			orderID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return err
			}
			order, err := app.orders.UpdateStatus(cmd.Context(), siteID, orderID, commerce.OrderStatus(args[1]))
			if err != nil {
				return err
			}
			return printJSON(order)
		},
	}
}
