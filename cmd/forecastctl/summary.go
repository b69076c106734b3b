package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"forecastkit/internal/views"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Print day summaries (min/max temperature, precipitation, wind)",
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

		summaries, ok := a.summary.Summaries(date, a.cfg.Days)
		if !ok {
			return fmt.Errorf("forecast for %s does not cover %s",
				a.service.Location(), date.Format("2006-01-02"))
		}

		fmt.Printf("%s\n\n", a.service.Location())
		fmt.Print(views.SummaryTable(summaries))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}
