package commands

import (
	"Recipe-Publisher/internal/utils"
	"Recipe-Publisher/internal/utils/logger"
	"Recipe-Publisher/internal/utils/storage"
	"Recipe-Publisher/pkg/assets"
	"Recipe-Publisher/pkg/sanity"

	"github.com/spf13/cobra"
)

var assetsCmd = &cobra.Command{
	Use:   "assets",
	Short: "Mirror images referenced by store documents into the public directory",
	Long: `assets downloads the site logo, favicon and every image referenced by recipes, posts,
categories, authors and pages. Files already present are skipped. When AWS_S3_BUCKET is set
each newly downloaded file is also uploaded to the bucket.

Download failures never fail the build: the site falls back to the assets already on disk.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()

		var publisher assets.Publisher
		if s3Cfg := storage.LoadS3Config(); s3Cfg.Bucket != "" {
			s3, err := storage.NewAwsS3(ctx, s3Cfg)
			if err != nil {
				logger.Error("S3 publishing disabled", err)
			} else {
				publisher = s3
			}
		}

		var client sanity.Client
		if cfg := sanity.LoadConfig(); cfg.ProjectID != "" {
			client = sanity.NewClient(cfg, nil)
		}

		svc := assets.NewMirrorService(client, assets.NewDownloader(nil), publisher, assets.MirrorConfig{
			PublicDir: utils.GetConfig("PUBLIC_DIR"),
			SiteID:    utils.GetConfig("SITE_ID"),
		})

		if _, err := svc.Mirror(ctx); err != nil {
			logger.Error("Asset mirror failed", err)
			logger.Info("Using existing static assets.", nil)
		}
	},
}
