// Package cmd implements the randomorg command-line interface, one
// subcommand per Basic API method.
package cmd

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/sebamiro/randomorg"
)

var (
	logger zerolog.Logger

	rootCmd = &cobra.Command{
		Use:          "randomorg",
		Short:        "True random values from the Random.org Basic API",
		Long:         "randomorg generates true random integers, fractions, strings, UUIDs and blobs\nthrough the Random.org JSON-RPC Basic API.",
		SilenceUsage: true,
	}
)

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("api-key", "", "Random.org API key")
	rootCmd.PersistentFlags().String("endpoint", randomorg.Endpoint, "Basic API invoke URL")
	rootCmd.PersistentFlags().Duration("timeout", 10*time.Second, "request timeout")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "log requests and quota metadata")

	// Binding can only fail on a misspelled flag name, a programmer error.
	_ = viper.BindPFlag("api_key", rootCmd.PersistentFlags().Lookup("api-key"))
	_ = viper.BindPFlag("endpoint", rootCmd.PersistentFlags().Lookup("endpoint"))
	_ = viper.BindPFlag("timeout", rootCmd.PersistentFlags().Lookup("timeout"))
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
}

// initConfig wires the RANDOMORG_* environment, so the key can come from
// RANDOMORG_API_KEY instead of a flag.
func initConfig() {
	viper.SetEnvPrefix("randomorg")
	viper.AutomaticEnv()
}

// newClient builds a client from flags and environment.
func newClient() (*randomorg.Client, error) {
	client, err := randomorg.New(viper.GetString("api_key"))
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}
	client.URL = viper.GetString("endpoint")
	client.HTTP = &http.Client{Timeout: viper.GetDuration("timeout")}

	logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	if !viper.GetBool("verbose") {
		logger = logger.Level(zerolog.InfoLevel)
	}
	client.Logger = logger
	return client, nil
}

// logQuota reports the usage metadata of a generation, advisory delay included.
func logQuota(info *randomorg.GenerationInfo) {
	logger.Debug().
		Int64("bitsUsed", info.BitsUsed).
		Int64("bitsLeft", info.BitsLeft).
		Int64("requestsLeft", info.RequestsLeft).
		Int64("advisoryDelay", info.AdvisoryDelay).
		Msg("generation complete")
}
