package cmd

import (
	"ipmanager/internal/pkg/config"
	"ipmanager/internal/pkg/logging"

	"github.com/spf13/cobra"
)

var (
	configFlag   string
	storeFlag    string
	logLevelFlag string

	// cfg is loaded once per invocation before any subcommand runs
	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "ipmanager",
	Short: "ipmanager keeps named IP configuration jobs and applies them to an interface with netsh",
	Long: `ipmanager keeps named IP configuration jobs and applies them to an interface with netsh.

A job is either DHCP or a list of candidate static addresses; the selected
addresses of a static job are applied on the next "apply". Jobs are stored
in a JSON file that is rewritten after every change.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadConfig,
}

func loadConfig(cmd *cobra.Command, args []string) error {
	loaded, err := config.Load(configFlag)
	if err != nil {
		return err
	}
	if storeFlag != "" {
		loaded.Store.Path = storeFlag
	}
	if logLevelFlag != "" {
		loaded.Logging.Level = logLevelFlag
	}
	if err := loaded.Validate(); err != nil {
		return err
	}

	logging.InitLoggerWithOutput(loaded.Logging, cmd.ErrOrStderr())
	logging.GetLogger().WithField("config_file", configFlag).Debug("Configuration loaded")
	cfg = loaded
	return nil
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "f", "", "Path to config file (YAML)")
	rootCmd.PersistentFlags().StringVar(&storeFlag, "store", "", "Path to the jobs file (overrides store.path)")
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "", "Log level (overrides logging.level)")
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
