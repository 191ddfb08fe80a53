// sondeo cli
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/sondeo/sondeo/pkg/client"
	"github.com/sondeo/sondeo/pkg/env"
	"github.com/sondeo/sondeo/pkg/models"
	"github.com/sondeo/sondeo/pkg/static"
)

type State struct {
	host  string
	token string
}

var state State

func (s *State) api() *client.APIClient {
	return client.NewAPIClient(http.DefaultClient, s.host, s.token)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version and build information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("github.com/sondeo/sondeo@%s (%s)\n", static.Version, static.Commit)
	},
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Read the system stats summary",
	RunE: func(cmd *cobra.Command, args []string) error {
		stats, err := state.api().GetStats(cmd.Context())
		if err != nil {
			return err
		}
		return models.JSONEncoder(os.Stdout).Encode(stats)
	},
}

var probeCmd = &cobra.Command{
	Use:   "probe <url>",
	Short: "Check that a webhook endpoint is reachable",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		method, _ := cmd.Flags().GetString("method")
		result, err := state.api().Probe(cmd.Context(), models.ProbeRequest{
			URL:    args[0],
			Method: method,
		})
		if err != nil {
			return err
		}
		return models.JSONEncoder(os.Stdout).Encode(result)
	},
}

func main() {
	log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()

	accessor := env.NewAccessor()
	rootCmd := &cobra.Command{
		Use:           "sondeo",
		Long:          `sondeo cli`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVar(&state.host,
		"host", accessor.Optional("SONDEO_HOST", "http://127.0.0.1:8600"),
		"Base URL of the sondeo server",
	)
	rootCmd.PersistentFlags().StringVar(&state.token,
		"token", accessor.Optional("SONDEO_TOKEN", ""),
		"Bearer token for the API",
	)
	probeCmd.Flags().StringP("method", "m", "", "HTTP method to probe with (GET, POST, HEAD)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(probeCmd)

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		log.Error().Err(err).Send()
		os.Exit(1)
	}
}
