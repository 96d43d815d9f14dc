package main

import (
	"io"
	"log"
	"os"

	"github.com/roffe/speedometer/pkg/config"
	"github.com/roffe/speedometer/pkg/speedometer"
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
	loader  *config.Loader
)

var rootCmd = &cobra.Command{
	Use:   "speedometer",
	Short: "Render speedometer gauges",
	Long: `Render a three band speedometer gauge to PNG or inspect its geometry.

Gauge settings come from --config (yaml, json or toml), SPEEDOMETER_*
environment variables and command line flags, in increasing priority.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		log.SetOutput(os.Stderr)
		if !verbose {
			log.SetOutput(io.Discard)
		}
		return bindGaugeFlags(cmd.Root())
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	log.SetFlags(log.LstdFlags | log.Lshortfile | log.Lmicroseconds)
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "gauge config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	pf := rootCmd.PersistentFlags()
	pf.Float64(config.KeyLowSpeed, speedometer.LowSpeed, "end of the low speed band")
	pf.Float64(config.KeyMidSpeed, speedometer.MidSpeed, "end of the mid speed band")
	pf.Float64(config.KeyMaxSpeed, speedometer.MaxSpeed, "end of the scale, must be > 0")
	pf.String(config.KeyLowSpeedColor, "", "low band color (name or #rrggbb[aa])")
	pf.String(config.KeyMidSpeedColor, "", "mid band color")
	pf.String(config.KeyMaxSpeedColor, "", "max band color")
	pf.String(config.KeyTextColor, "", "readout color")
	pf.String(config.KeyArrowColor, "", "needle color")
	pf.Float64(config.KeyTextSize, speedometer.DefaultTextSize, "readout text size")
}

func initConfig() {
	loader = config.New(cfgFile)
}

func bindGaugeFlags(cmd *cobra.Command) error {
	for _, key := range []string{
		config.KeyLowSpeed, config.KeyMidSpeed, config.KeyMaxSpeed,
		config.KeyLowSpeedColor, config.KeyMidSpeedColor, config.KeyMaxSpeedColor,
		config.KeyTextColor, config.KeyArrowColor, config.KeyTextSize,
	} {
		if err := loader.BindFlag(key, cmd.PersistentFlags().Lookup(key)); err != nil {
			return err
		}
	}
	return nil
}
