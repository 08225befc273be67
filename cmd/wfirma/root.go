package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mtlab/wfirma-go/pkg/wfirma"
)

var (
	cfgPath  string
	logLevel string
	logDev   bool
)

var rootCmd = &cobra.Command{
	Use:   "wfirma",
	Short: "wFirma invoicing toolbox",
	Long: `Command line companion for the wFirma XML API: a live invoice
dashboard, period reports with CSV/parquet export, account balance
snapshots, document archival to S3 and an interactive invoice browser.

Credentials come from the config file or the WFIRMA_* environment
variables; the environment wins.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", wfirma.DefaultConfigPath, "Path to the TOML config file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&logDev, "dev", false, "Readable console log output instead of JSON")
}

// loadConfig reads the config file. The default path may be absent; an
// explicit --config must exist.
func loadConfig(cmd *cobra.Command) (wfirma.Config, error) {
	optional := !cmd.Flags().Changed("config")
	cfg, err := wfirma.LoadConfig(cfgPath, optional)
	if err != nil {
		return wfirma.Config{}, fmt.Errorf("load config %s: %w", cfgPath, err)
	}
	return cfg, nil
}

func newLogger() wfirma.Logger {
	return wfirma.NewLogger(
		wfirma.LoggerWithLevel(logLevel),
		wfirma.LoggerWithDevelopment(logDev),
	)
}

func newClient(cfg wfirma.Config, logger wfirma.Logger) (*wfirma.Client, error) {
	options := cfg.API.ClientOptions()
	options = append(options, wfirma.ClientWithLogger(logger))
	c, err := wfirma.NewClient(options...)
	if err != nil {
		return nil, fmt.Errorf("build API client: %w", err)
	}
	return c, nil
}
