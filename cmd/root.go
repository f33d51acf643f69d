package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/Manu343726/iscreate/cmd/generate"
	"github.com/Manu343726/iscreate/cmd/instructionset"
	"github.com/Manu343726/iscreate/pkg/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string
var logCloser io.Closer

// rootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "iscreate",
	Short: "Instruction set modeling and C/C++ table generation",
	Long: `iscreate keeps the description of a processor instruction set (opcodes, mnemonics and operands)
in a JSON file and generates the C/C++ enums and lookup tables assemblers and disassemblers
need from it.

Settings are read from $HOME/.iscreate.yaml (or the file given with --config) and from
ISCREATE_* environment variables.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logger, closer, err := logging.New(logging.Config{
			Level: viper.GetString("log.level"),
			File:  viper.GetString("log.file"),
		})
		if err != nil {
			return err
		}

		logCloser = closer
		slog.SetDefault(logger)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logCloser != nil {
			logCloser.Close()
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := RootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	RootCmd.AddCommand(generate.GenerateCmd, instructionset.IsaCmd)
	cobra.OnInitialize(initConfig)

	RootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.iscreate.yaml)")
	RootCmd.PersistentFlags().String("log-level", "info", "Log level: debug, info, warn or error")
	RootCmd.PersistentFlags().String("log-file", "", "Also write JSON log records to this file")

	viper.SetDefault("log.level", "info")
	cobra.CheckErr(viper.BindPFlag("log.level", RootCmd.PersistentFlags().Lookup("log-level")))
	cobra.CheckErr(viper.BindPFlag("log.file", RootCmd.PersistentFlags().Lookup("log-file")))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		// Search config in home directory with name ".iscreate" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".iscreate")
	}

	viper.SetEnvPrefix("iscreate")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}
