package commands

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/laplogger/internal/query"
	"github.com/spf13/cobra"
)

func newDashboardCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "dashboard",
		Aliases: []string{"dash"},
		Short:   "Totals and the most recent times",
		Args:    cobra.NoArgs,
		RunE: a.protected(func(cmd *cobra.Command, args []string) error {
			s, err := query.Dashboard(cmd.Context(), a.api.Swimmers, a.api.Times)
			if err != nil {
				return err
			}
			renderDashboard(cmd.OutOrStdout(), s)
			return nil
		}),
	}
}

func statCard(label, value string) string {
	return cardStyle.Render(mutedStyle.Render(label) + "\n" + titleStyle.Render(value))
}

func renderDashboard(w io.Writer, s *query.Summary) {
	cards := lipgloss.JoinHorizontal(lipgloss.Top,
		statCard("Swimmers", strconv.Itoa(s.TotalSwimmers)),
		statCard("Times Logged", strconv.Itoa(s.TotalTimes)),
		statCard("Latest Time", s.LatestTime),
	)
	fmt.Fprintln(w, cards)
	fmt.Fprintln(w)
	fmt.Fprintln(w, titleStyle.Render("Recent Times"))
	renderTimes(w, s.RecentTimes)
}
