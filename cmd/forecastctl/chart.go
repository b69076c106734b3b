package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"forecastkit/internal/forecast"
	"forecastkit/internal/views"
)

var chartCmd = &cobra.Command{
	Use:   "chart",
	Short: "Print continuous chart windows (each day bridged into the next)",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := setup()
		if err != nil {
			return err
		}
		defer a.logger.Sync()

		date, err := a.startDate()
		if err != nil {
			return err
		}

		windows, ok := a.service.ChartWindows(date, a.cfg.Days)
		if !ok {
			return fmt.Errorf("forecast for %s does not cover %s",
				a.service.Location(), date.Format("2006-01-02"))
		}

		fmt.Print(views.ChartRows(forecast.ChartSeries(windows)))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(chartCmd)
}
