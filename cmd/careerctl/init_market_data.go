package main

import (
	"fmt"

	"career-guide/internal/domain/catalog"
	"career-guide/internal/infrastructure/marketdata"

	"github.com/spf13/cobra"
)

var initMarketDataCmd = &cobra.Command{
	Use:   "init-market-data",
	Short: "Write the default market data file",
	RunE:  runInitMarketData,
}

var (
	initMarketDataPath  string
	initMarketDataForce bool
)

func init() {
	initMarketDataCmd.Flags().StringVarP(&initMarketDataPath, "path", "p", envOr("MARKET_DATA_PATH", "job_market_data.json"), "Destination path")
	initMarketDataCmd.Flags().BoolVar(&initMarketDataForce, "force", false, "Overwrite an existing file")

	rootCmd.AddCommand(initMarketDataCmd)
}

func runInitMarketData(cmd *cobra.Command, _ []string) error {
	if !initMarketDataForce && fileExists(initMarketDataPath) {
		return fmt.Errorf("%s already exists (use --force to overwrite)", initMarketDataPath)
	}

	md := catalog.DefaultMarketData()
	if err := marketdata.WriteJSON(initMarketDataPath, md); err != nil {
		return fmt.Errorf("failed to write market data: %w", err)
	}

	_, err := fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%d skills, %d careers)\n",
		initMarketDataPath, len(md.RequiredSkills), len(md.CareerPaths))
	return err
}
