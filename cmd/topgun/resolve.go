package main

import (
	"fmt"

	"github.com/san-kum/topgun/internal/ballistics"
	"github.com/san-kum/topgun/internal/config"
	"github.com/san-kum/topgun/internal/session"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var (
	configFile string
	dataDir    string
	themeName  string
	logFile    string
	logLevel   string

	preset     string
	projectile float64
	velocity   float64
	rifle      float64
	free       string
	mode       string
)

func addInputFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&preset, "preset", "", "cartridge preset (see 'topgun presets')")
	cmd.Flags().Float64Var(&projectile, "projectile", ballistics.DefaultProjectile, "projectile weight (gr)")
	cmd.Flags().Float64Var(&velocity, "velocity", ballistics.DefaultVelocity, "muzzle velocity (fps)")
	cmd.Flags().Float64Var(&rifle, "rifle", ballistics.DefaultRifle, "rifle weight (lbs)")
	cmd.Flags().StringVar(&free, "free", config.DefaultFree, "graphed variable: projectile, velocity or weight")
	cmd.Flags().StringVar(&mode, "mode", config.DefaultMode, "interactive mode: select or graph")
}

// resolveConfig layers defaults, preset, config file, environment and
// explicitly set flags, in that order.
func resolveConfig(flags *pflag.FlagSet) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
	}

	if configFile != "" {
		if err := config.LoadInto(configFile, cfg); err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
	}

	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}

	if flags.Changed("data") {
		cfg.DataDir = dataDir
	}
	if flags.Changed("theme") {
		cfg.Theme = themeName
	}
	if flags.Changed("projectile") {
		cfg.Inputs.Projectile = projectile
	}
	if flags.Changed("velocity") {
		cfg.Inputs.Velocity = velocity
	}
	if flags.Changed("rifle") {
		cfg.Inputs.RifleWeight = rifle
	}
	if flags.Changed("mode") {
		cfg.Mode = mode
	}
	if flags.Changed("free") {
		cfg.Free = free
		if cfg.Mode != "graph" {
			v, err := ballistics.ParseVariable(free)
			if err != nil {
				return nil, err
			}
			a, b := ballistics.PairExcluding(v).Variables()
			cfg.Enabled = []string{a.String(), b.String()}
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// resolveSession is resolveConfig plus the session it describes.
func resolveSession(cmd *cobra.Command) (*config.Config, *session.Session, error) {
	cfg, err := resolveConfig(cmd.Flags())
	if err != nil {
		return nil, nil, err
	}
	sess, err := session.FromConfig(cfg)
	if err != nil {
		return nil, nil, err
	}
	return cfg, sess, nil
}
