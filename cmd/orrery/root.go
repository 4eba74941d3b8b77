package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "orrery",
	Short: "Terminal solar system and gravity sandbox",
	Long: "Orrery animates the planets, moons and asteroids of a body catalogue on elliptical orbits " +
		"and integrates user-spawned asteroids through their gravity field.",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runView(viewCmd, args)
	},
}

// Execute runs the root command and exits 1 on error
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "config file (default .orrery.yaml)")
	flags.Bool("debug", false, "write logs to logs/orrery.log")
	flags.Uint64("seed", 0, "random seed (0 seeds from the clock)")
	flags.String("catalog", "", "body catalogue TOML file (default embedded solar system)")
	flags.Float64("time-speed", 1, "initial time speed multiplier")
	flags.Float64("system-radius", 300, "escape radius in world units")
	flags.Int("asteroids", 20, "asteroids spawned at start")
	flags.Int("frame-rate", 60, "frames per second of simulated time")
	flags.Bool("explosion-time-scaling", false, "age explosions with scaled rather than real time")

	bind := map[string]string{
		"debug":                  "debug",
		"seed":                   "seed",
		"catalog":                "catalog",
		"time_speed":             "time-speed",
		"system_radius":          "system-radius",
		"asteroids":              "asteroids",
		"frame_rate":             "frame-rate",
		"explosion_time_scaling": "explosion-time-scaling",
	}
	for key, flag := range bind {
		_ = viper.BindPFlag(key, flags.Lookup(flag))
	}

	rootCmd.AddCommand(viewCmd, runCmd, catalogCmd)
}

func initConfig() {
	if cfgFile, _ := rootCmd.Flags().GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(".orrery")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
	}

	viper.SetEnvPrefix("ORRERY")
	viper.AutomaticEnv()

	// Missing config file falls back to defaults
	_ = viper.ReadInConfig()
}
