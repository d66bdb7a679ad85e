package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/milk9111/maidmodes/prefabs"
	"github.com/milk9111/maidmodes/sim"
	"github.com/spf13/cobra"
)

func newValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [mode.yaml...]",
		Short: "Check mode prefabs, or the scenario and its modes when none are given",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			prefabs.Dir = cfg.PrefabDir
			out := cmd.OutOrStdout()

			files := args
			if len(files) == 0 {
				spec, err := prefabs.LoadScenarioSpec(cfg.Scenario)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "%s %s\n", color.GreenString("ok"), cfg.Scenario)
				files = spec.Modes
			}

			failed := 0
			for _, f := range files {
				d, _, err := sim.BuildMode(f, log)
				if err != nil {
					failed++
					fmt.Fprintf(out, "%s %s: %v\n", color.RedString("fail"), f, err)
					continue
				}
				fmt.Fprintf(out, "%s %s (%s, priority %d)\n", color.GreenString("ok"), f, d.Name, d.Priority)
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d mode prefabs failed", failed, len(files))
			}
			return nil
		},
	}
}
