package cmd

import (
	"fmt"
	"os"
	"strings"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/tutils/xxrand/logger"
	"golang.org/x/term"
)

var (
	cfgFile string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "xxrand",
	Short: "Deterministic hash-chained random numbers.",
	Long: `Deterministic hash-chained random numbers (not for secrets).
Repo: https://github.com/tutils/xxrand
Draw values locally or from a stream server, For example:
  xxrand random --seed=foo -n 5
  xxrand bits --seed=foo --offset=1 -n 5
  xxrand serve --listen=ws://0.0.0.0:8080/stream
  xxrand pull --connect=ws://127.0.0.1:8080/stream --seed=foo -n 5`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := initConfig(); err != nil {
			return err
		}
		return initLogger()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logger.Log().Error().Err(err).Msg("xxrand")
		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default is $HOME/.xxrand.yaml)")
	flags.String("log-format", "auto", "log format: auto, console or json")
	flags.String("log-level", "info", "log level")
	viper.BindPFlag("log-format", flags.Lookup("log-format"))
	viper.BindPFlag("log-level", flags.Lookup("log-level"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() error {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := homedir.Dir()
		if err != nil {
			return err
		}

		// Search config in home directory with name ".xxrand" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigName(".xxrand")
	}

	viper.SetEnvPrefix("xxrand")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || cfgFile != "" {
			return fmt.Errorf("read config: %w", err)
		}
		return nil
	}
	logger.Log().Debug().Str("file", viper.ConfigFileUsed()).Msg("using config file")
	return nil
}

func initLogger() error {
	switch format := viper.GetString("log-format"); format {
	case "console":
		logger.SetConsoleWriter()
	case "json":
		logger.SetJsonWriter()
	case "auto", "":
		if term.IsTerminal(int(os.Stderr.Fd())) {
			logger.SetConsoleWriter()
		} else {
			logger.SetJsonWriter()
		}
	default:
		return fmt.Errorf("unknown log format %q", format)
	}
	return logger.SetLevel(viper.GetString("log-level"))
}
