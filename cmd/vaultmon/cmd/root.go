// Copyright © 2018 One Concern

package cmd

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const envPrefix = "VAULTMON"

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "vaultmon",
	Short: "Vaultmon keeps the metadata of a notes vault consistent",
	Long: `Vaultmon keeps the metadata of a notes vault consistent.

Notes are organized in a hierarchy of programs, courses and classes. Index documents
(e.g. a "program-index" note) mark the level of the directory holding them. Vaultmon
resolves the hierarchy every note inherits from its location and keeps the program,
course and class fields of its frontmatter in line.
`,
	SilenceUsage: true,
}

var config *CLIConfig

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		osExit(1)
	}
}

func init() {
	log.SetFlags(0)
	cobra.OnInitialize(initConfig)

	addLogLevelFlag(rootCmd)
	addLogFormatFlag(rootCmd)
	addVaultFlag(rootCmd)
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	viper.SetDefault(keyVault, "")
	viper.SetDefault(keyProgram, "")
	viper.SetDefault(keyLogLevel, "")
	viper.SetDefault(keyLogFormat, "")
	viper.SetDefault(keyExtensions, []string{})
	viper.SetDefault(keySkipSegments, []string{})
	viper.SetDefault(keyDefaultProgram, "")
	viper.SetDefault(keyCacheSize, 0)

	if os.Getenv(envPrefix+"_CONFIG") != "" {
		viper.SetConfigFile(os.Getenv(envPrefix + "_CONFIG"))
	} else {
		viper.AddConfigPath(".")
		viper.AddConfigPath("$HOME/.vaultmon")
		viper.AddConfigPath("/etc/vaultmon")
		viper.SetConfigName("vaultmon")
	}

	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		infoLogger.Println("Using config file:", viper.ConfigFileUsed())
	}

	var err error
	config, err = newConfig()
	if err != nil {
		wrapFatalln("invalid configuration", err)
		return
	}
	config.setVaultParams(&vaultmonFlags)
}
