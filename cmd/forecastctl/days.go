package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"forecastkit/internal/views"
)

var daysCmd = &cobra.Command{
	Use:   "days",
	Short: "Print per-day hour tables",
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

		days, ok := a.service.Days(date, a.cfg.Days)
		if !ok {
			return fmt.Errorf("forecast for %s does not cover %s",
				a.service.Location(), date.Format("2006-01-02"))
		}

		fmt.Printf("%s — %d day(s) from %s\n\n",
			a.service.Location(), len(days), date.Format("2006-01-02"))
		for _, day := range days {
			fmt.Println(views.DayTable(day))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(daysCmd)
}
