package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/laplogger/internal/model"
	"github.com/spf13/cobra"
)

func newSwimmersCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "swimmers",
		Aliases: []string{"swimmer"},
		Short:   "List, show and add swimmers",
	}
	cmd.AddCommand(newSwimmersListCmd(a), newSwimmersGetCmd(a), newSwimmersAddCmd(a))
	return cmd
}

func newSwimmersListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "List swimmers",
		Args:    cobra.NoArgs,
		RunE: a.protected(func(cmd *cobra.Command, args []string) error {
			swimmers, err := a.api.Swimmers.List(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(swimmers) == 0 {
				fmt.Fprintln(out, "No swimmers yet. Use 'laplogger swimmers add --name \"...\"' to add one.")
				return nil
			}
			fmt.Fprintln(out, headerStyle.Render(cell("ID", 6)+cell("NAME", 28)+"EMAIL"))
			fmt.Fprintln(out, mutedStyle.Render(strings.Repeat("-", 60)))
			for _, s := range swimmers {
				fmt.Fprintln(out, cell(strconv.FormatInt(s.ID, 10), 6)+textStyle.Render(cell(s.Name, 28))+mutedStyle.Render(s.Email))
			}
			return nil
		}),
	}
}

func newSwimmersGetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show a swimmer with their times",
		Args:  cobra.ExactArgs(1),
		RunE: a.protected(func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil || id <= 0 {
				return fmt.Errorf("invalid swimmer id %q", args[0])
			}
			ctx := cmd.Context()
			s, err := a.api.Swimmers.Get(ctx, id)
			if err != nil {
				return err
			}
			times, err := a.api.Times.ListBySwimmer(ctx, id)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, titleStyle.Render(s.Name))
			if s.Email != "" {
				fmt.Fprintln(out, mutedStyle.Render(s.Email))
			}
			fmt.Fprintln(out)
			renderTimes(out, times)
			return nil
		}),
	}
}

func newSwimmersAddCmd(a *app) *cobra.Command {
	var in model.CreateSwimmerInput
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a swimmer",
		Args:  cobra.NoArgs,
		RunE: a.protected(func(cmd *cobra.Command, args []string) error {
			s, err := a.api.Swimmers.Create(cmd.Context(), in)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), successStyle.Render(fmt.Sprintf("Added swimmer #%d %s", s.ID, s.Name)))
			return nil
		}),
	}
	cmd.Flags().StringVarP(&in.Name, "name", "n", "", "Swimmer name")
	cmd.Flags().StringVarP(&in.Email, "email", "e", "", "Email (optional)")
	return cmd
}
