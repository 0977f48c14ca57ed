package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"lumakin.dev/internal/config"
	"lumakin.dev/internal/handlers"
	"lumakin.dev/internal/views"
)

var generateCmd = &cobra.Command{
	Use:   "generate <output-dir>",
	Short: "Write a static build of the site",
	Long: `Render index.html and write one JSON file per content table under
<output-dir>/api, so the site can be hosted without the server.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		return generate(cfg, args[0])
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)
}

// generate writes the static build into outputDir.
func generate(cfg *config.Config, outputDir string) error {
	apiDir := filepath.Join(outputDir, "api")
	if err := os.MkdirAll(apiDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	renderer, err := views.New()
	if err != nil {
		return err
	}
	svc, err := handlers.NewServices(cfg)
	if err != nil {
		return err
	}
	pages := handlers.NewPageHandler(svc, cfg.Site, renderer, logger)

	store := cfg.Content
	tables := map[string]any{
		"profile.json":      store.Profile,
		"projects.json":     store.Projects,
		"accolades.json":    store.Accolades,
		"affiliations.json": store.Affiliations,
		"testimonials.json": store.Testimonials,
	}

	var g errgroup.Group
	g.Go(func() error {
		path := filepath.Join(outputDir, "index.html")
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("failed to create %s: %w", path, err)
		}
		defer f.Close()

		if err := renderer.Render(f, pages.Build(views.Query{}, views.ContactView{})); err != nil {
			return err
		}
		logger.Info("wrote page", zap.String("path", path))
		return f.Close()
	})
	for name, table := range tables {
		name, table := name, table
		g.Go(func() error {
			data, err := json.MarshalIndent(table, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal %s: %w", name, err)
			}
			path := filepath.Join(apiDir, name)
			if err := os.WriteFile(path, data, 0644); err != nil {
				return fmt.Errorf("failed to write %s: %w", path, err)
			}
			logger.Info("wrote table", zap.String("path", path))
			return nil
		})
	}
	return g.Wait()
}
