package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"forecastkit/internal/views"
)

var (
	flagFrom  string
	flagCount int
	flagBack  bool
)

var hoursCmd = &cobra.Command{
	Use:   "hours",
	Short: "Print a range of forecast hours",
	Long: `Print forecast hours starting at --from (inclusive), or the hours
leading up to --from when --back is set.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := setup()
		if err != nil {
			return err
		}
		defer a.logger.Sync()

		at := a.forecast.Period.Start()
		if flagFrom != "" {
			loc := a.forecast.Period.Start().Location()
			at, err = time.ParseInLocation("2006-01-02T15:04", flagFrom, loc)
			if err != nil {
				return fmt.Errorf("invalid time %q, want YYYY-MM-DDTHH:MM: %w", flagFrom, err)
			}
		}

		if flagCount <= 0 {
			return fmt.Errorf("count must be positive, got %d", flagCount)
		}

		period := a.forecast.Period
		slice, ok := period.From(at, flagCount)
		if flagBack {
			slice, ok = period.Until(at, flagCount)
		}
		if !ok {
			return fmt.Errorf("forecast for %s does not cover %s",
				a.service.Location(), at.Format("2006-01-02 15:04"))
		}

		fmt.Println(views.DayTable(slice))
		return nil
	},
}

func init() {
	hoursCmd.Flags().StringVar(&flagFrom, "from", "", "Reference hour, YYYY-MM-DDTHH:MM (defaults to the forecast start)")
	hoursCmd.Flags().IntVar(&flagCount, "count", 6, "Number of hours")
	hoursCmd.Flags().BoolVar(&flagBack, "back", false, "Take the hours before --from instead")
	rootCmd.AddCommand(hoursCmd)
}
