package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"sort"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/milk9111/maidmodes/sim"
	"github.com/spf13/cobra"
)

func newRunCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Simulate a scenario and report where each maid ended up",
		Example: heredoc.Doc(`
			modesim run --ticks 1200 --db-path state/maids.db
			MODESIM_SCENARIO=meadow.yaml modesim run --watch --ticks 0
		`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, log, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			s, err := sim.New(cfg, log)
			if err != nil {
				return err
			}
			defer s.Close()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			if err := s.Run(ctx); err != nil {
				return err
			}
			printStatus(cmd.OutOrStdout(), s.Status())
			printEvents(cmd.OutOrStdout(), s.EventCounts())
			return nil
		},
	}
	addRunFlags(cmd.Flags())
	return cmd
}

func printEvents(out io.Writer, counts map[string]int) {
	if len(counts) == 0 {
		return
	}
	types := make([]string, 0, len(counts))
	for t := range counts {
		types = append(types, t)
	}
	sort.Strings(types)
	parts := make([]string, 0, len(types))
	for _, t := range types {
		parts = append(parts, fmt.Sprintf("%s=%d", t, counts[t]))
	}
	fmt.Fprintf(out, "events: %s\n", strings.Join(parts, " "))
}

func printStatus(out io.Writer, rows []sim.MaidStatus) {
	bold := color.New(color.Bold).SprintFunc()
	table := uitable.New()
	table.MaxColWidth = 40
	table.AddRow(bold("MAID"), bold("MODE"), bold("ACTIVE"), bold("HEALTH"), bold("POSITION"))
	for _, r := range rows {
		health := fmt.Sprintf("%.1f", r.Health)
		if r.Health <= 0 {
			health = color.RedString(health)
		}
		table.AddRow(r.Name, r.Mode, r.Active, health, fmt.Sprintf("%.1f %.1f %.1f", r.X, r.Y, r.Z))
	}
	fmt.Fprintln(out, table)
}
