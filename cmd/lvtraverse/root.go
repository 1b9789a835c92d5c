package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/katalvlaran/lvtraverse/internal/logging"
)

// version is set at build time via -ldflags.
var version = "dev"

const envPrefix = "LVTRAVERSE"

// app carries the state shared by all subcommands of one root command.
type app struct {
	v       *viper.Viper
	cfgFile string
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New()}

	rootCmd := &cobra.Command{
		Use:   "lvtraverse",
		Short: "Order-agnostic graph traversal from the command line",
		Long: "lvtraverse loads a graph document (YAML, JSON, TOML or HCL) and walks it\n" +
			"depth-first, breadth-first or by priority, printing each vertex state lazily.",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			HiddenDefaultCmd: true,
		},
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.initConfig(cmd)
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "config file (yaml, json or toml) with flag defaults")
	pf.String("log-level", "warn", "log level: debug, info, warn or error")
	pf.String("log-format", "text", "log format: text or json")
	a.bind(pf.Lookup("log-level"), pf.Lookup("log-format"))

	rootCmd.AddCommand(newWalkCmd(a), newValidateCmd(a), newGenerateCmd(a))

	return rootCmd
}

// bind registers flags with viper under their own names.
func (a *app) bind(flags ...*pflag.Flag) {
	for _, f := range flags {
		_ = a.v.BindPFlag(f.Name, f)
	}
}

// initConfig reads in the config file and ENV variables, then configures logging.
func (a *app) initConfig(cmd *cobra.Command) error {
	a.v.SetEnvPrefix(envPrefix)
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()

	if a.cfgFile != "" {
		a.v.SetConfigFile(a.cfgFile)
		if err := a.v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config %s: %w", a.cfgFile, err)
		}
	}

	level, err := logging.ParseLevel(a.v.GetString("log-level"))
	if err != nil {
		return err
	}
	format, err := logging.ParseFormat(a.v.GetString("log-format"))
	if err != nil {
		return err
	}
	logging.Init(level, format, cmd.ErrOrStderr())

	return nil
}
