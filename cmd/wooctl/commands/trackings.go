package commands

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/charliescheer/woocommerce-ios/internal/infrastructure/remote"
)

func trackingsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "trackings",
		Short: "Manage an order's shipment trackings",
	}
	cmd.AddCommand(
		trackingsListCmd(),
		trackingsAddCmd(),
		trackingsAddCustomCmd(),
		trackingsDeleteCmd(),
		trackingsProvidersCmd(),
	)
	return cmd
}

func parseOrderID(arg string) (int64, error) {
	return strconv.ParseInt(arg, 10, 64)
}

func trackingsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list <order-id>",
		Short: "List an order's shipment trackings",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			siteID, err := app.siteID()
			if err != nil {
				return err
			}
			orderID, err := parseOrderID(args[0])
			if err != nil {
				return err
			}
			trackings, err := app.trackings.List(cmd.Context(), siteID, orderID)
			if err != nil {
				return err
			}
			return printJSON(trackings)
		},
	}
}

func trackingsAddCmd() *cobra.Command {
	var (
		number      string
		provider    string
		dateShipped string
	)
	cmd := &cobra.Command{
		Use:   "add <order-id>",
		Short: "Add a tracking with a preset provider",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			siteID, err := app.siteID()
			if err != nil {
				return err
			}
			orderID, err := parseOrderID(args[0])
			if err != nil {
				return err
			}
			tracking, err := app.trackings.Create(cmd.Context(), siteID, orderID, remote.CreateShipmentTrackingOptions{
				TrackingNumber: number,
				ProviderName:   provider,
				DateShipped:    dateShipped,
			})
			if err != nil {
				return err
			}
			return printJSON(tracking)
		},
	}
	cmd.Flags().StringVar(&number, "number", "", "carrier tracking number")
	cmd.Flags().StringVar(&provider, "provider", "", "preset provider name")
	cmd.Flags().StringVar(&dateShipped, "date-shipped", "", "shipment date (YYYY-MM-DD)")
	_ = cmd.MarkFlagRequired("number")
	_ = cmd.MarkFlagRequired("provider")
	return cmd
}

func trackingsAddCustomCmd() *cobra.Command {
	var (
		number      string
		provider    string
		link        string
		dateShipped string
	)
	cmd := &cobra.Command{
		Use:   "add-custom <order-id>",
		Short: "Add a tracking with a custom provider",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			siteID, err := app.siteID()
			if err != nil {
				return err
			}
			orderID, err := parseOrderID(args[0])
			if err != nil {
				return err
			}
			tracking, err := app.trackings.CreateWithCustomProvider(cmd.Context(), siteID, orderID, remote.CreateCustomShipmentTrackingOptions{
				TrackingNumber: number,
				ProviderName:   provider,
				ProviderURL:    link,
				DateShipped:    dateShipped,
			})
			if err != nil {
				return err
			}
			return printJSON(tracking)
		},
	}
	cmd.Flags().StringVar(&number, "number", "", "carrier tracking number")
	cmd.Flags().StringVar(&provider, "provider", "", "custom provider name")
	cmd.Flags().StringVar(&link, "link", "", "tracking page URL")
	cmd.Flags().StringVar(&dateShipped, "date-shipped", "", "shipment date (YYYY-MM-DD)")
	_ = cmd.MarkFlagRequired("number")
	_ = cmd.MarkFlagRequired("provider")
	return cmd
}

func trackingsDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <order-id> <tracking-id>",
		Short: "Delete a shipment tracking",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			siteID, err := app.siteID()
			if err != nil {
				return err
			}
			orderID, err := parseOrderID(args[0])
			if err != nil {
				return err
			}
			tracking, err := app.trackings.Delete(cmd.Context(), siteID, orderID, args[1])
			if err != nil {
				return err
			}
			return printJSON(tracking)
		},
	}
}

func trackingsProvidersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "providers <order-id>",
		Short: "List the site's known tracking providers",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			siteID, err := app.siteID()
			if err != nil {
				return err
			}
			orderID, err := parseOrderID(args[0])
			if err != nil {
				return err
			}
			groups, err := app.trackings.ListProviderGroups(cmd.Context(), siteID, orderID)
			if err != nil {
				return err
			}
			return printJSON(groups)
		},
	}
}
