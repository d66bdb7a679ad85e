package main

import (
	"strings"

	"github.com/milk9111/maidmodes/sim"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

func addGlobalFlags(flags *pflag.FlagSet) {
	def := sim.DefaultConfig()
	flags.String(flagName(sim.KeyScenario), def.Scenario, "Scenario prefab to load")
	flags.String(flagName(sim.KeyPrefabDir), def.PrefabDir, "Directory whose prefabs override the embedded ones")
	flags.String(flagName(sim.KeyLogLevel), def.LogLevel, "Log level (trace, debug, info, warn, error)")
	flags.SetNormalizeFunc(wordSepNormalizeFunc)
}

func addRunFlags(flags *pflag.FlagSet) {
	def := sim.DefaultConfig()
	flags.Int(flagName(sim.KeyTicks), def.Ticks, "Ticks to simulate, 0 runs until interrupted")
	flags.String(flagName(sim.KeyDBPath), def.DBPath, "Bolt database for save and load events, empty disables persistence")
	flags.Bool(flagName(sim.KeyWatch), def.Watch, "Reload mode prefabs and scripts when they change on disk")
}

// bindFlags makes flag values win over the config file and environment.
func bindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	var err error
	flags.VisitAll(func(f *pflag.Flag) {
		if err != nil {
			return
		}
		err = v.BindPFlag(configKey(f.Name), f)
	})
	return err
}

func flagName(key string) string {
	return strings.ReplaceAll(key, "_", "-")
}

func configKey(flag string) string {
	return strings.ReplaceAll(flag, "-", "_")
}

// wordSepNormalizeFunc accepts "_" in place of "-" in flag names.
func wordSepNormalizeFunc(_ *pflag.FlagSet, name string) pflag.NormalizedName {
	if strings.Contains(name, "_") {
		return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
	}
	return pflag.NormalizedName(name)
}
