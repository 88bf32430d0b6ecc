package main

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/lixenwraith/allerbees/core"
	"github.com/lixenwraith/allerbees/engine"
	"github.com/lixenwraith/allerbees/history"
)

func newHistoryCmd(a *app) *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent sessions and totals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := history.Open(a.settings.HistoryPath())
			if err != nil {
				return err
			}
			defer store.Close()
			return printHistory(cmd, store, limit)
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 10, "sessions to list")
	return cmd
}

func printHistory(cmd *cobra.Command, store *history.Store, limit int) error {
	ctx := cmd.Context()
	recent, err := store.Recent(ctx, limit)
	if err != nil {
		return err
	}
	stats, err := store.Stats(ctx)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	writeSessions(out, recent)
	fmt.Fprintf(out, "\n%d sessions, %d wins, %d losses, %d pollen", stats.Sessions, stats.Wins, stats.Losses, stats.Pollen)
	if stats.BestWin > 0 {
		fmt.Fprintf(out, ", best win %s", engine.FormatSessionTime(stats.BestWin))
	}
	fmt.Fprintln(out)
	return nil
}

func writeSessions(out io.Writer, sessions []core.SessionResult) {
	if len(sessions) == 0 {
		fmt.Fprintln(out, "no sessions recorded")
		return
	}
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "SESSION\tSTARTED\tOUTCOME\tTIME\tPOLLEN\tSNEEZES\tREASON")
	for _, r := range sessions {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%d\t%d\t%s\n",
			r.Session,
			r.StartedAt.Local().Format(time.DateTime),
			r.Outcome,
			engine.FormatSessionTime(r.Elapsed),
			r.Pollen,
			r.Sneezes,
			r.Reason,
		)
	}
	tw.Flush()
}
