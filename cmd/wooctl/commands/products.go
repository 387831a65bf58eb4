package commands

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/charliescheer/woocommerce-ios/internal/infrastructure/remote"
)

func productsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "products",
		Short: "Inspect the site's products",
	}
	cmd.AddCommand(productsListCmd(), productsGetCmd())
	return cmd
}

func productsListCmd() *cobra.Command {
	var (
		keyword  string
		page     int
		pageSize int
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the site's products",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			siteID, err := app.siteID()
			if err != nil {
				return err
			}
			products, err := app.products.List(cmd.Context(), siteID, remote.ListProductsOptions{
				Keyword:  keyword,
				Page:     page,
				PageSize: pageSize,
			})
			if err != nil {
				return err
			}
			return printJSON(products)
		},
	}
	cmd.Flags().StringVar(&keyword, "search", "", "search product names and SKUs")
	cmd.Flags().IntVar(&page, "page", 1, "page number")
	cmd.Flags().IntVar(&pageSize, "page-size", 25, "products per page")
	return cmd
}

func productsGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <product-id>",
		Short: "Show a single product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			siteID, err := app.siteID()
			if err != nil {
				return err
			}
			productID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return err
			}
			product, err := app.products.Get(cmd.Context(), siteID, productID)
			if err != nil {
				return err
			}
			return printJSON(product)
		},
	}
}
