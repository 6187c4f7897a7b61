package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// The chart view never navigates past page 10 regardless of how deep the
// upstream chart goes; deeper pages are reachable through --page only.
const chartMaxPages = 10

var chartPage int

var chartCmd = &cobra.Command{
	Use:   "chart",
	Short: "Show the global top tracks chart",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit := viper.GetInt("lastfm.chart_page_size")
		page, err := client.ChartTopTracks(cmd.Context(), limit, chartPage)
		if err != nil {
			return err
		}
		if len(page.Items) == 0 {
			fmt.Println("Chart is empty.")
			return nil
		}

		printTracks(page.Items)

		shownPages := page.TotalPages
		if shownPages > chartMaxPages {
			shownPages = chartMaxPages
		}
		fmt.Printf("Page %d of %d\n", page.Page, shownPages)
		return nil
	},
}

func init() {
	chartCmd.Flags().IntVar(&chartPage, "page", 1, "chart page to show")
	rootCmd.AddCommand(chartCmd)
}
