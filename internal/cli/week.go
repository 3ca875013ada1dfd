package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"clubplan/internal/application/projections"
)

var (
	weekAnchor  string
	weekOffset  int
	weekSite    string
	weekPole    string
	weekTerrain string
	weekSearch  string
)

var weekCmd = &cobra.Command{
	Use:   "week",
	Short: "Print the computed weekly planning layout",
	RunE: func(cmd *cobra.Command, args []string) error {
		anchor := time.Now()
		if weekAnchor != "" {
			parsed, err := time.Parse("2006-01-02", weekAnchor)
			if err != nil {
				return fmt.Errorf("invalid anchor date %q (want YYYY-MM-DD)", weekAnchor)
			}
			anchor = parsed
		}

		store, db, err := openStore()
		if err != nil {
			return err
		}
		defer db.Close()

		query := projections.GetWeekPlanningQuery{
			Anchor:     anchor,
			DeltaWeeks: weekOffset,
			Filters: projections.SessionFilters{
				Site:    weekSite,
				Pole:    weekPole,
				Terrain: weekTerrain,
				Search:  weekSearch,
			},
		}
		deps := projections.GetWeekPlanningDeps{SessionStore: store}
		res, err := projections.QueryGetWeekPlanning(cmd.Context(), query, deps)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Week %d (%d)\n", res.WeekNumber, res.WeekYear)
		for _, day := range res.Days {
			fmt.Fprintf(out, "%-9s %s\n", day.Day, day.Date)
			for _, p := range day.Sessions {
				marker := ""
				if p.InvalidTime {
					marker = " [invalid time]"
				}
				fmt.Fprintf(out, "  %s-%s  %-14s %-24s %s (lane %d/%d)%s\n",
					p.Session.StartTime, p.Session.EndTime, p.Kind,
					p.Session.TeamLabel(), p.Session.Location,
					p.LaneIndex+1, p.LaneCount, marker)
			}
		}
		return nil
	},
}

func init() {
	weekCmd.Flags().StringVar(&weekAnchor, "anchor", "", "anchor date YYYY-MM-DD (default today)")
	weekCmd.Flags().IntVar(&weekOffset, "offset", 0, "week navigation offset in whole weeks")
	weekCmd.Flags().StringVar(&weekSite, "site", "", "site substring filter")
	weekCmd.Flags().StringVar(&weekPole, "pole", "", "pole filter (exact, 'all' disables)")
	weekCmd.Flags().StringVar(&weekTerrain, "terrain", "", "terrain filter: synthetic, grass, clubhouse, all")
	weekCmd.Flags().StringVar(&weekSearch, "search", "", "free-text filter")
}
