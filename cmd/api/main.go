// @title           FindMyPet API
// @version         1.0
// @description     Lost-and-found pet registry: missing and found pets, shelters and status history.
// @BasePath        /
// @securityDefinitions.apikey  ApiKeyAuth
// @in                          header
// @name                        Authorization
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"findmypet/internal/platform/config"
	"findmypet/internal/platform/logger"
)

var configDir string

var rootCmd = &cobra.Command{
	Use:   "findmypet",
	Short: "Lost-and-found pet registry API",
	// Sin subcomando se levanta el servidor.
	RunE:          runServe,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", ".", "directory holding an optional config.yml")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(seedSheltersCmd)
	rootCmd.AddCommand(migrateCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func loadConfig() (*config.Config, logger.Logger, error) {
	cfg, err := config.Load(configDir)
	if err != nil {
		return nil, nil, err
	}
	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.LogLevel),
		Format: logger.ParseFormat(cfg.LogFormat),
		App:    cfg.AppName,
	})
	return cfg, log, nil
}
