package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/charliescheer/woocommerce-ios/internal/infrastructure/config"
	"github.com/charliescheer/woocommerce-ios/internal/infrastructure/logger"
	"github.com/charliescheer/woocommerce-ios/internal/infrastructure/network"
	"github.com/charliescheer/woocommerce-ios/internal/infrastructure/remote"
)

var (
	configFlag string
	siteFlag   int64
	app        *appContext
)

// appContext holds the wired accessors shared by all subcommands
type appContext struct {
	cfg       *config.Config
	log       *zap.Logger
	orders    *remote.Orders
	products  *remote.Products
	trackings *remote.ShipmentTrackings
	reports   *remote.Reports
}

// siteID resolves the site to operate on, flag wins over config
func (a *appContext) siteID() (int64, error) {
	if siteFlag > 0 {
		return siteFlag, nil
	}
	if a.cfg.API.SiteID > 0 {
		return a.cfg.API.SiteID, nil
	}
	return 0, fmt.Errorf("no site configured, set api.site_id or pass --site")
}

func Execute() error {
	root := &cobra.Command{
		Use:           "wooctl",
		Short:         "Manage a WooCommerce store from the command line",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configFlag)
			if err != nil {
				return err
			}

			log, err := logger.New(&logger.Config{
				Level:  cfg.Log.Level,
				Format: cfg.Log.Format,
				Output: cfg.Log.Output,
			})
			if err != nil {
				return err
			}

			creds := &network.Credentials{
				AuthToken: cfg.API.AuthToken,
				BaseURL:   cfg.API.BaseURL,
				UserAgent: cfg.API.UserAgent,
			}
			httpDispatcher, err := network.NewHTTPDispatcher(creds, cfg.API.Timeout, log)
			if err != nil {
				return err
			}

			var dispatcher network.Dispatcher = httpDispatcher
			if cfg.Cache.Enabled {
				dispatcher = network.NewCachingDispatcher(httpDispatcher, cfg.Cache.TTL)
			}

			app = &appContext{
				cfg:       cfg,
				log:       log,
				orders:    remote.NewOrders(dispatcher, log),
				products:  remote.NewProducts(dispatcher, log),
				trackings: remote.NewShipmentTrackings(dispatcher, log),
				reports:   remote.NewReports(dispatcher, log),
			}

			// One request ID per invocation, shared by every dispatch
			cmd.SetContext(logger.WithRequestID(cmd.Context(), uuid.NewString()))
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if app != nil && app.log != nil {
				_ = logger.Sync(app.log)
			}
		},
	}

	root.PersistentFlags().StringVar(&configFlag, "config", "", "config file (default searches . and ~/.config/wooctl)")
	root.PersistentFlags().Int64Var(&siteFlag, "site", 0, "site ID (overrides api.site_id from config)")

	root.AddCommand(ordersCmd(), productsCmd(), trackingsCmd(), statsCmd())
	return root.Execute()
}

// printJSON renders the result on stdout
func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
