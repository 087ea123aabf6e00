package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/alexshd/gammashield/internal/report"
)

// app carries the state shared by every subcommand.
type app struct {
	v       *viper.Viper
	cfgFile string
	verbose bool
	logger  *slog.Logger
}

// newRootCmd builds the command tree. Each call returns an independent tree
// with its own configuration.
func newRootCmd() *cobra.Command {
	a := &app{v: viper.New(), logger: slog.Default()}

	root := &cobra.Command{
		Use:   "shieldcalc",
		Short: "Gamma-ray shielding calculator",
		Long: `shieldcalc applies the linear attenuation law I = I₀·e^(-(μ/ρ)·ρ·x)
to answer three questions: the exposure rate behind a shield, the fraction
of radiation a shield transmits, and the thickness needed for a target
shielding factor.

Materials come from the built-in catalog (Water, Iron, Lead1332, Lead662),
from a YAML materials file, or ad hoc via --mu and --density.`,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.initConfig(); err != nil {
				return err
			}
			a.setupLogging(cmd.ErrOrStderr())
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (default is $HOME/.shieldcalc.yaml)")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "enable verbose output")
	flags.String("format", "table", "Output format: table, json, yaml")
	flags.Int("precision", report.DefaultOptions().Precision, "Decimal places in table output")
	flags.String("materials-file", "", "YAML file with additional materials")
	flags.Bool("no-color", false, "Disable colored output")

	for key, flag := range map[string]string{
		"format":         "format",
		"precision":      "precision",
		"materials_file": "materials-file",
		"no_color":       "no-color",
	} {
		_ = a.v.BindPFlag(key, flags.Lookup(flag))
	}

	root.AddCommand(
		newRateCmd(a),
		newFactorCmd(a),
		newDepthCmd(a),
		newSweepCmd(a),
		newMaterialsCmd(a),
		newVersionCmd(),
	)

	return root
}

// initConfig loads configuration from the config file and environment.
// A missing default config file is not an error; a missing --config file is.
func (a *app) initConfig() error {
	if a.cfgFile != "" {
		a.v.SetConfigFile(a.cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			a.v.AddConfigPath(home)
		}
		a.v.SetConfigType("yaml")
		a.v.SetConfigName(".shieldcalc")
	}

	a.v.SetEnvPrefix("shieldcalc")
	a.v.AutomaticEnv()

	if err := a.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if a.cfgFile != "" || !errors.As(err, &notFound) {
			return fmt.Errorf("failed to read config: %w", err)
		}
	}

	return nil
}

func (a *app) setupLogging(w io.Writer) {
	level := slog.LevelInfo
	if a.verbose {
		level = slog.LevelDebug
	}

	a.logger = slog.New(tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: "15:04:05",
		NoColor:    a.v.GetBool("no_color"),
	}))

	if used := a.v.ConfigFileUsed(); used != "" {
		a.logger.Debug("using config file", "file", used)
	}
}

// formatter returns the configured output formatter writing to w.
func (a *app) formatter(w io.Writer) (report.Formatter, error) {
	return report.NewFormatter(a.v.GetString("format"), w, report.Options{
		Precision:   a.v.GetInt("precision"),
		EnableColor: !a.v.GetBool("no_color"),
	})
}
