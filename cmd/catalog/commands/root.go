package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/narwhalmedia/catalog/internal/container"
	"github.com/narwhalmedia/catalog/pkg/config"
)

const serviceName = "catalog"

var (
	// Global flags
	configPaths []string
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Catalog service for games, movies and their reviews",
	Long: `Catalog serves games, movies, their developers, genres, platforms and crew,
together with user likes and reviews, over a JSON HTTP API.

Configuration is read from catalog.yaml or catalog.json and CATALOG_* environment
variables (nested keys use a double underscore, e.g. CATALOG_AUTH__JWT_SECRET).`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringSliceVarP(&configPaths, "config", "c", nil, "Config file paths, later files override earlier ones")
}

func loadConfig() (*config.CatalogConfig, error) {
	cfg := config.GetDefaultCatalogConfig()
	if err := config.LoadServiceConfig(serviceName, cfg, configPaths...); err != nil {
		return nil, err
	}
	return cfg, nil
}

func initialize(ctx context.Context) (*container.App, func(), error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}
	if config.IsProduction(&cfg.Service) {
		gin.SetMode(gin.ReleaseMode)
	}
	return container.InitializeApp(ctx, cfg)
}
