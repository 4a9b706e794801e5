package commands

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"Recipe-Publisher/cmd/config"
	"Recipe-Publisher/internal/utils"
	"Recipe-Publisher/internal/utils/logger"
	"Recipe-Publisher/pkg/content"
	"Recipe-Publisher/pkg/sanity"

	"github.com/spf13/cobra"
)

var rateLimit int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve recipe content as a read-only JSON API",
	RunE: func(cmd *cobra.Command, args []string) error {
		var client sanity.Client
		if cfg := sanity.LoadConfig(); cfg.ProjectID != "" {
			client = sanity.NewClient(cfg, nil)
		}
		repo := content.NewContentRepository(client, utils.GetConfig("SITE_ID"))

		app := config.NewApp(content.NewContentService(repo), config.AppOptions{
			AccessLog: os.Stdout,
			RateLimit: rateLimit,
		})

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		go func() {
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = app.ShutdownWithContext(shutdownCtx)
		}()

		addr := ":" + utils.GetConfig("APP_PORT")
		logger.Info("Content API listening", map[string]interface{}{"addr": addr})
		return app.Listen(addr)
	},
}

func init() {
	serveCmd.Flags().IntVar(&rateLimit, "rate-limit", 10, "requests per second per client, 0 disables")
}
