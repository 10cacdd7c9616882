package main

import (
	"context"
	"fmt"
	"os"

	"fotolia/catalog/internal/config"
	"fotolia/catalog/internal/container"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	app     *container.Container
)

var rootCmd = &cobra.Command{
	Use:   "fotolia",
	Short: "Query the Fotolia stock media catalog",
	Long: `fotolia searches the stock media catalog and lists its categories, colors,
countries, galleries and tags. Results are written to stdout as JSON lines.`,
	SilenceUsage:      true,
	PersistentPreRunE: initializeApp,
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if app == nil {
			return nil
		}
		return app.Close(cmd.Context())
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")

	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(categoriesCmd)
	rootCmd.AddCommand(colorsCmd)
	rootCmd.AddCommand(countriesCmd)
	rootCmd.AddCommand(galleriesCmd)
	rootCmd.AddCommand(tagsCmd)
	rootCmd.AddCommand(countCmd)
	rootCmd.AddCommand(mediumCmd)
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// initializeApp loads the configuration, sets up logging and wires the container
func initializeApp(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	setupLogger(cfg.Logging)
	log.Debug("Configuration loaded successfully")

	app, err = container.New(cmd.Context(), cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize container: %w", err)
	}

	return nil
}

func setupLogger(cfg config.LoggingConfig) {
	level, err := log.ParseLevel(cfg.Level)
	if err != nil {
		level = log.InfoLevel
	}
	log.SetLevel(level)
	log.SetOutput(os.Stderr)

	if cfg.Format == "json" {
		log.SetFormatter(&log.JSONFormatter{})
		return
	}
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
}
