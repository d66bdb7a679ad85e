package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/milk9111/maidmodes/mode"
	"github.com/milk9111/maidmodes/prefabs"
	"github.com/milk9111/maidmodes/sim"
	"github.com/spf13/cobra"
)

func newModesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "modes",
		Short: "List the modes a scenario registers, in dispatch order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, log, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			prefabs.Dir = cfg.PrefabDir
			spec, err := prefabs.LoadScenarioSpec(cfg.Scenario)
			if err != nil {
				return err
			}
			reg, _, err := sim.BuildRegistry(spec.Modes, log)
			if err != nil {
				return err
			}

			bold := color.New(color.Bold).SprintFunc()
			table := uitable.New()
			table.MaxColWidth = 50
			table.AddRow(bold("NAME"), bold("PRIORITY"), bold("ENTRIES"), bold("SEARCH"), bold("FLAGS"))
			def, _ := reg.Default()
			for _, d := range reg.Descriptors() {
				table.AddRow(d.Name, d.Priority, entries(d, def), d.Search, flags(d))
			}
			fmt.Fprintln(cmd.OutOrStdout(), table)
			return nil
		},
	}
}

func entries(d *mode.Descriptor, def mode.ID) string {
	parts := make([]string, 0, len(d.Entries))
	for _, e := range d.Entries {
		s := fmt.Sprintf("%s(%s)", e.Name, e.ID)
		if e.ID == def {
			s = color.GreenString(s + "*")
		}
		parts = append(parts, s)
	}
	return strings.Join(parts, " ")
}

func flags(d *mode.Descriptor) string {
	var out []string
	if d.System {
		out = append(out, color.YellowString("system"))
	}
	if d.AnytimeUpdate {
		out = append(out, "anytime")
	}
	if d.EntitySearch {
		out = append(out, "entity-search")
	}
	return strings.Join(out, ",")
}
