package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"doctor-booking-server/internal/config"
	"doctor-booking-server/internal/directory"
	"doctor-booking-server/internal/logger"
	"doctor-booking-server/internal/models"
	"doctor-booking-server/internal/routes"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "doctor-booking",
		Short: "Demo doctor booking API with a generated directory",
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(doctorsCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig reads .env when present, then the environment.
func loadConfig() (*config.Config, zerolog.Logger, error) {
	envErr := godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, zerolog.Nop(), fmt.Errorf("load config: %w", err)
	}

	log := logger.New(cfg)
	if envErr != nil {
		log.Debug().Err(envErr).Msg("no .env file loaded")
	}
	return cfg, log, nil
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the booking API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := loadConfig()
			if err != nil {
				return err
			}

			if !cfg.IsDevelopment() {
				gin.SetMode(gin.ReleaseMode)
			}

			router, err := routes.NewRouter(cfg, log)
			if err != nil {
				return err
			}

			serverAddr := fmt.Sprintf(":%s", cfg.Port)
			log.Info().Str("addr", serverAddr).Str("env", cfg.Environment).Msg("server starting")
			if err := router.Run(serverAddr); err != nil {
				log.Error().Err(err).Msg("server stopped")
				return err
			}
			return nil
		},
	}
}

func doctorsCmd() *cobra.Command {
	var (
		loc       models.LocationDescriptor
		specialty string
	)

	cmd := &cobra.Command{
		Use:   "doctors",
		Short: "Print the generated doctor listing for a location as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			doctors := directory.Generate(loc, specialty)

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(doctors)
		},
	}

	cmd.Flags().StringVar(&loc.Area, "area", "", "area / neighbourhood")
	cmd.Flags().StringVar(&loc.District, "district", "", "district / city")
	cmd.Flags().StringVar(&loc.State, "state", "", "state / province")
	cmd.Flags().StringVar(&loc.Country, "country", "", "country")
	cmd.Flags().StringVar(&specialty, "specialty", "", "only list this specialty (id or name)")

	return cmd
}
