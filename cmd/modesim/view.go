package main

import (
	"github.com/milk9111/maidmodes/render"
	"github.com/milk9111/maidmodes/sim"
	"github.com/spf13/cobra"
)

func newViewCommand() *cobra.Command {
	var scale float64
	cmd := &cobra.Command{
		Use:   "view",
		Short: "Run a scenario in a window, space pauses and period steps",
		Args:  cobra.NoArgs,
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
			return render.Run(render.NewViewer(s, scale), "modesim")
		},
	}
	addRunFlags(cmd.Flags())
	cmd.Flags().Float64Var(&scale, "scale", 12, "Pixels per block")
	return cmd
}
