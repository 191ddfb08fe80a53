// sondeo server
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/sondeo/sondeo/pkg/collectors"
	"github.com/sondeo/sondeo/pkg/models"
	"github.com/sondeo/sondeo/pkg/probe"
	"github.com/sondeo/sondeo/pkg/server"
	"github.com/sondeo/sondeo/pkg/static"
)

var configPath string

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version and build information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("github.com/sondeo/sondeo@%s (%s)\n", static.Version, static.Commit)
	},
}

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the server",
	RunE: func(cmd *cobra.Command, args []string) error {
		config, err := models.ReadConfiguration(configPath)
		if err != nil {
			return err
		}

		level, _ := zerolog.ParseLevel(config.LogLevel)
		log.Logger = log.Logger.Level(level)

		registry := collectors.NewRegistry()
		registry.Add("runtime", collectors.NewRuntimeCollector())
		if config.Redis.Address != "" {
			registry.Add("redis", collectors.NewRedisCollector(config.Redis))
		}

		prober := probe.NewProber(http.DefaultClient, time.Duration(config.Probe.Timeout))

		gin.SetMode(gin.ReleaseMode)
		api := server.NewAPI(config, registry, prober)
		return run(api)
	},
}

// run serves the API until SIGINT/SIGTERM, then drains in-flight
// requests before exiting.
func run(api *server.API) error {
	srv := &http.Server{
		Addr:    api.Config.Listen,
		Handler: api.Gin,
	}

	serverErrors := make(chan error, 1)
	go func() {
		log.Info().Str("address", srv.Addr).Msg("starting api server")
		serverErrors <- srv.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return err

	case sig := <-shutdown:
		log.Info().Str("signal", sig.String()).Msg("shutting down")

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			log.Error().Err(err).Msg("graceful shutdown did not complete")
			return srv.Close()
		}
	}
	return nil
}

func main() {
	log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()

	rootCmd := &cobra.Command{
		Use:           "sondeo-server",
		Long:          `sondeo stats and webhook probing server`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(startCmd)

	startCmd.Flags().StringVarP(&configPath,
		"config", "c", "config.yaml",
		"Path to the configuration file",
	)

	if len(os.Args) == 1 {
		rootCmd.SetArgs([]string{"start"})
	}

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		log.Error().Err(err).Send()
		os.Exit(1)
	}
}
