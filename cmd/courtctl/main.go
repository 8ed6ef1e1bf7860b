package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ahmed-n-abdeltwab/tennis-coach-platform-sub007/internal/version"
)

var (
	cfgFile  string
	apiURL   string
	apiToken string
	verbose  bool
)

// Config holds CLI configuration
type Config struct {
	APIURL   string `mapstructure:"api_url"`
	APIToken string `mapstructure:"api_token"`
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:     "courtctl",
	Short:   "Courtside CLI - tennis coaching platform management tool",
	Long:    `courtctl provides command-line access to the Courtside coaching marketplace API: login, session listing, and notification dispatch.`,
	Version: version.String(),
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if v := viper.GetString("api_url"); v != "" {
			apiURL = v
		}
		if v := viper.GetString("api_token"); v != "" && apiToken == "" {
			apiToken = v
		}
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default $HOME/.courtctl.yaml)")
	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", "http://localhost:8080", "API base URL")
	rootCmd.PersistentFlags().StringVar(&apiToken, "token", "", "bearer token")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	// Bind flags to viper
	_ = viper.BindPFlag("api_url", rootCmd.PersistentFlags().Lookup("api-url"))
	_ = viper.BindPFlag("api_token", rootCmd.PersistentFlags().Lookup("token"))

	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(sessionsCmd)
	rootCmd.AddCommand(emailCmd)
	rootCmd.AddCommand(confirmCmd)
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
			viper.SetConfigName(".courtctl")
			viper.SetConfigType("yaml")
		}
	}
	viper.SetEnvPrefix("COURTCTL")
	viper.AutomaticEnv()
	_ = viper.ReadInConfig()
}
