/*
Copyright 2020 Google LLC

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/ademuri/apple-music-stats/internal/report"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

var cfgFile string

// Config holds every option the command recognizes. Flags, the config file
// and the positional argument all end up here.
type Config struct {
	LibraryPath string `mapstructure:"library_path"`
	Plain       bool   `mapstructure:"plain"`
	Format      string `mapstructure:"format"`
	LogLevel    string `mapstructure:"log_level"`
	LogFile     string `mapstructure:"log_file"`
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "apple-music-stats [library]",
	Short: "Prints listening statistics from an Apple Music library",
	Long: `Reads a library exported from Apple Music (File > Library > Export Library...)
and prints the most played and skipped tracks, top artists, albums and genres,
total play time and total play count.

The library defaults to Library.xml in the current directory.`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		config, err := loadConfig(args)
		if err != nil {
			return err
		}
		return printStats(cmd.OutOrStdout(), config)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(
		&cfgFile, "config", "", "config file (default is $HOME/.apple-music-stats.yaml)")

	rootCmd.Flags().StringP("library", "l", "Library.xml", "Path to the exported library")
	viper.BindPFlag("library_path", rootCmd.Flags().Lookup("library"))

	rootCmd.Flags().Bool("plain", false, "Disable colors")
	viper.BindPFlag("plain", rootCmd.Flags().Lookup("plain"))

	format := formatValue(report.FormatList)
	rootCmd.Flags().Var(&format, "format", "Output format: list or table")
	viper.BindPFlag("format", rootCmd.Flags().Lookup("format"))

	rootCmd.Flags().String("log_level", "warn", "Log level: debug, info, warn or error")
	viper.BindPFlag("log_level", rootCmd.Flags().Lookup("log_level"))

	rootCmd.Flags().String("log_file", "", "Also write logs to this file")
	viper.BindPFlag("log_file", rootCmd.Flags().Lookup("log_file"))
}

// initConfig reads in config file if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := homedir.Dir()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		// Search config in home directory with name ".apple-music-stats" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigName(".apple-music-stats")
	}

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// formatValue rejects unknown output formats while flags are parsed.
type formatValue report.Format

var _ pflag.Value = (*formatValue)(nil)

func (f *formatValue) String() string {
	return string(*f)
}

func (f *formatValue) Set(s string) error {
	format, err := report.ParseFormat(s)
	if err != nil {
		return err
	}
	*f = formatValue(format)
	return nil
}

func (f *formatValue) Type() string {
	return "format"
}

// loadConfig resolves the effective configuration. A positional library
// path overrides the flag and the config file.
func loadConfig(args []string) (Config, error) {
	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return config, fmt.Errorf("reading config: %w", err)
	}
	if len(args) == 1 {
		config.LibraryPath = args[0]
	}
	if config.LibraryPath == "" {
		config.LibraryPath = "Library.xml"
	}
	return config, nil
}
