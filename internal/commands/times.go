package commands

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/laplogger/internal/apiclient"
	"github.com/laplogger/internal/duration"
	"github.com/laplogger/internal/model"
	"github.com/laplogger/internal/query"
	"github.com/spf13/cobra"
)

func newTimesCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "times",
		Aliases: []string{"time"},
		Short:   "List and record swim times",
	}
	cmd.AddCommand(newTimesListCmd(a), newTimesAddCmd(a))
	return cmd
}

func newTimesListCmd(a *app) *cobra.Command {
	var (
		swimmerID int64
		filter    string
	)
	cmd := &cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "List recorded times, newest first",
		Args:    cobra.NoArgs,
		RunE: a.protected(func(cmd *cobra.Command, args []string) error {
			f, err := query.ParseFilter(filter)
			if err != nil {
				return err
			}
			var times []model.TimeRecord
			if swimmerID > 0 {
				times, err = a.api.Times.ListBySwimmer(cmd.Context(), swimmerID)
			} else {
				times, err = a.api.Times.List(cmd.Context())
			}
			if err != nil {
				return err
			}
			renderTimes(cmd.OutOrStdout(), query.FilterTimes(times, f))
			return nil
		}),
	}
	cmd.Flags().Int64VarP(&swimmerID, "swimmer", "s", 0, "Only this swimmer's times")
	cmd.Flags().StringVarP(&filter, "filter", "f", "all", "all, practice or meets")
	return cmd
}

func newTimesAddCmd(a *app) *cobra.Command {
	var (
		in                       model.CreateTimeInput
		timeStr                  string
		minutes, seconds, millis string
		meetID                   int64
	)
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a time",
		Long: `Record a time for a swimmer in an event.
The time is given either as --time MM:SS.mmm or as separate --min, --sec and --ms parts.
Run without --swimmer or --event to see the available choices.`,
		Args: cobra.NoArgs,
		RunE: a.protected(func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := cmd.OutOrStdout()
			if in.SwimmerID <= 0 || in.EventID <= 0 {
				form, err := query.LoadTimeForm(ctx, a.api.Swimmers, a.api.Events)
				if err != nil {
					return err
				}
				renderTimeForm(out, form)
				return &apiclient.APIError{Message: "--swimmer and --event are required", Kind: apiclient.ErrValidation}
			}

			flags := cmd.Flags()
			switch {
			case flags.Changed("time"):
				ms, err := duration.Parse(timeStr)
				if err != nil {
					return fmt.Errorf("%w: %w", apiclient.ErrValidation, err)
				}
				in.TimeMs = ms
			case flags.Changed("min") || flags.Changed("sec") || flags.Changed("ms"):
				in.TimeMs = duration.Encode(minutes, seconds, millis)
			default:
				return &apiclient.APIError{Message: "a time is required: --time MM:SS.mmm or --min/--sec/--ms", Kind: apiclient.ErrValidation}
			}
			if flags.Changed("meet") {
				in.MeetID = &meetID
			}

			rec, err := a.api.Times.Create(ctx, in)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, successStyle.Render(fmt.Sprintf("Recorded %s for %s (%s)", rec.FormattedTime, rec.SwimmerName, rec.EventName)))
			return nil
		}),
	}
	flags := cmd.Flags()
	flags.Int64VarP(&in.SwimmerID, "swimmer", "s", 0, "Swimmer ID")
	flags.Int64VarP(&in.EventID, "event", "e", 0, "Event ID")
	flags.StringVarP(&timeStr, "time", "t", "", "Time as MM:SS.mmm")
	flags.StringVar(&minutes, "min", "", "Minutes")
	flags.StringVar(&seconds, "sec", "", "Seconds")
	flags.StringVar(&millis, "ms", "", "Milliseconds")
	flags.StringVarP(&in.Notes, "notes", "n", "", "Notes")
	flags.Int64Var(&meetID, "meet", 0, "Meet ID, if swum at a meet")
	cmd.MarkFlagsMutuallyExclusive("time", "min")
	cmd.MarkFlagsMutuallyExclusive("time", "sec")
	cmd.MarkFlagsMutuallyExclusive("time", "ms")
	return cmd
}

func timeType(t *model.TimeRecord) string {
	if t.IsMeet() {
		return *t.MeetName
	}
	return "Practice"
}

func renderTimes(w io.Writer, times []model.TimeRecord) {
	if len(times) == 0 {
		fmt.Fprintln(w, mutedStyle.Render("No times recorded yet."))
		return
	}
	fmt.Fprintln(w, headerStyle.Render(cell("DATE", 12)+cell("SWIMMER", 20)+cell("EVENT", 22)+cell("TIME", 11)+cell("TYPE", 22)+"NOTES"))
	fmt.Fprintln(w, mutedStyle.Render(strings.Repeat("-", 100)))
	for i := range times {
		t := &times[i]
		typ := cell(timeType(t), 22)
		if t.IsMeet() {
			typ = meetStyle.Render(typ)
		} else {
			typ = mutedStyle.Render(typ)
		}
		fmt.Fprintln(w, mutedStyle.Render(cell(t.RecordedAt.Format("2006-01-02"), 12))+
			textStyle.Render(cell(t.SwimmerName, 20))+
			cell(t.EventName, 22)+
			titleStyle.Render(cell(t.FormattedTime, 11))+
			typ+
			mutedStyle.Render(t.Notes))
	}
}

func renderTimeForm(w io.Writer, form *query.TimeForm) {
	fmt.Fprintln(w, titleStyle.Render("Swimmers"))
	if len(form.Swimmers) == 0 {
		fmt.Fprintln(w, mutedStyle.Render("  none, add one with 'laplogger swimmers add'"))
	}
	for _, s := range form.Swimmers {
		fmt.Fprintln(w, "  "+cell(strconv.FormatInt(s.ID, 10), 6)+s.Name)
	}
	fmt.Fprintln(w, titleStyle.Render("Events"))
	for _, e := range form.Events {
		fmt.Fprintln(w, "  "+cell(strconv.FormatInt(e.ID, 10), 6)+e.Name)
	}
}
