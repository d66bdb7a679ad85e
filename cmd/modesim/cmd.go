package main

import (
	"io"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/milk9111/maidmodes/sim"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func NewModesimCommand(out, errOut io.Writer) *cobra.Command {
	cmds := &cobra.Command{
		Use:   "modesim",
		Short: "modesim runs maid behaviour modes in a small voxel world",
		Long: heredoc.Doc(`
			modesim loads a scenario prefab, registers the maid modes it lists
			and ticks the world headlessly.

			Settings come from flags, then MODESIM_* environment variables,
			then modesim.yaml in the working directory.
		`),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
	cmds.SetOut(out)
	cmds.SetErr(errOut)
	addGlobalFlags(cmds.PersistentFlags())

	cmds.AddCommand(
		newRunCommand(),
		newModesCommand(),
		newValidateCommand(),
		newViewCommand(),
	)
	return cmds
}

// loadConfig merges the command's flags with the environment and config
// file and sets up logging.
func loadConfig(cmd *cobra.Command) (sim.Config, *logrus.Logger, error) {
	v := sim.NewViper()
	if err := bindFlags(v, cmd.Flags()); err != nil {
		return sim.Config{}, nil, err
	}
	cfg, err := sim.LoadConfig(v)
	if err != nil {
		return sim.Config{}, nil, err
	}
	log, err := cfg.NewLogger()
	if err != nil {
		return sim.Config{}, nil, err
	}
	log.SetOutput(cmd.ErrOrStderr())
	return cfg, log, nil
}
