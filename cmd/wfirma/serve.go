package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/mtlab/wfirma-go/pkg/wfirma"
)

var (
	serveAddr     string
	serveInterval time.Duration
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the invoice dashboard",
	Long: `Serves the HTML invoice list, the period report, the JSON API and
a websocket feed that tells open pages to refresh. Flags override the
dashboard section of the config file.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address (default from config, then :8000)")
	serveCmd.Flags().DurationVar(&serveInterval, "interval", 0, "Websocket refresh interval (default from config, then 30s)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logger := newLogger()

	client, err := newClient(cfg, logger)
	if err != nil {
		return err
	}

	addr := cfg.Dashboard.Addr
	if serveAddr != "" {
		addr = serveAddr
	}
	interval := cfg.Dashboard.PollInterval
	if cmd.Flags().Changed("interval") {
		interval = serveInterval
	}

	server, err := wfirma.NewDashboardServer(
		wfirma.DashboardWithAddr(addr),
		wfirma.DashboardWithSource(wfirma.NewClientSource(client)),
		wfirma.DashboardWithPollInterval(interval),
		wfirma.DashboardWithLogger(logger),
	)
	if err != nil {
		return fmt.Errorf("build dashboard: %w", err)
	}

	fmt.Printf("Dashboard listening on %s\n", addr)
	return server.Start(cmd.Context())
}
