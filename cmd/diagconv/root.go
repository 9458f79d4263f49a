package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/bburda42dot/diag-converter-sub000/internal/logging"
)

var rootCmd = &cobra.Command{
	Use:   "diagconv",
	Short: "Convert ECU diagnostic descriptions between ODX, YAML, and MDD",
	Long: `diagconv converts ECU diagnostic layer containers between their three
on-disk representations -- ODX/PDX (ASAM MCD-2D XML), a declarative YAML
dialect, and the binary MDD container -- through one shared intermediate
representation (SPEC_FULL.md §1).`,
	SilenceUsage:      true,
	PersistentPreRunE: initLogging,
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "config file (default: none; see --help for precedence)")
	rootCmd.PersistentFlags().String("log-level", "info", "log level (off|info|debug|warn|error)")

	_ = viper.BindPFlag("log-level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.SetEnvPrefix("diagconv")
	viper.AutomaticEnv()
}

// initLogging configures the process-wide logging.Helper before any
// subcommand runs (spec.md §6.3 "Log level is set by the standard verbosity
// flag or an environment variable honored by the logging layer").
func initLogging(cmd *cobra.Command, args []string) error {
	if cfg, _ := cmd.Flags().GetString("config"); cfg != "" {
		viper.SetConfigFile(cfg)
		if err := viper.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config %s: %w", cfg, err)
		}
	}
	logging.SetDefault(logging.New(logging.ParseLevel(viper.GetString("log-level"))))
	return nil
}

func main() {
	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(infoCmd)

	defer func() { _ = logging.Default().Sync() }()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
