package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

func newEventsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "events",
		Short: "List events (distance and stroke)",
		Args:  cobra.NoArgs,
		RunE: a.protected(func(cmd *cobra.Command, args []string) error {
			events, err := a.api.Events.List(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, headerStyle.Render(cell("ID", 6)+"EVENT"))
			fmt.Fprintln(out, mutedStyle.Render(strings.Repeat("-", 30)))
			for _, e := range events {
				fmt.Fprintln(out, cell(strconv.FormatInt(e.ID, 10), 6)+textStyle.Render(e.Name))
			}
			return nil
		}),
	}
}

func newStrokesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "strokes",
		Short: "List strokes",
		Args:  cobra.NoArgs,
		RunE: a.protected(func(cmd *cobra.Command, args []string) error {
			strokes, err := a.api.Strokes.List(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, s := range strokes {
				fmt.Fprintln(out, cell(strconv.FormatInt(s.ID, 10), 6)+textStyle.Render(s.Name))
			}
			return nil
		}),
	}
}
