package main

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	flagMode       string
	flagRoutes     string
	flagMaxWorkers int
	flagDebug      bool
)

var rootCmd = &cobra.Command{
	Use:          "peelbox",
	Short:        "Canned-response HTTP server over a raw TCP listener",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger, err := newLogger(flagDebug)
		if err != nil {
			return err
		}
		defer logger.Sync()

		cfg, err := loadConfig(flagMode, flagRoutes, flagMaxWorkers, flagDebug)
		if err != nil {
			return err
		}

		router := PlainRouter()
		if cfg.RouteTable == "json" {
			router = JSONRouter()
		}

		srv := NewServer(cfg, router, logger)
		return srv.ListenAndServe(cfg.Port)
	},
}

func init() {
	rootCmd.Flags().StringVar(&flagMode, "mode", string(DispatchSequential),
		"dispatch mode: sequential or concurrent")
	rootCmd.Flags().StringVar(&flagRoutes, "routes", "plain",
		"route table: plain or json")
	rootCmd.Flags().IntVar(&flagMaxWorkers, "max-workers", defaultMaxWorkers,
		"cap on in-flight connections in concurrent mode")
	rootCmd.Flags().BoolVar(&flagDebug, "debug", false,
		"enable debug logging")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
