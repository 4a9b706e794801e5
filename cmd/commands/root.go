package commands

import (
	"fmt"
	"os"

	"Recipe-Publisher/internal/utils"
	"Recipe-Publisher/internal/utils/logger"

	"github.com/spf13/cobra"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "recipes",
	Short: "Content tooling for the recipe site",
	Long: `recipes reads recipe content from the content store (or bundled fixtures), mirrors
referenced images into the static site's public directory, generates new recipes with AI
and serves the content as a read-only JSON API for the site renderer.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := utils.LoadConfigFrom(cfgFile); err != nil {
			return err
		}
		logger.Init(utils.GetConfig("APP_ENV"), utils.GetConfig("LOG_LEVEL"))
		utils.InitValidator()
		return nil
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config.yaml", "config file")
	rootCmd.AddCommand(assetsCmd, generateCmd, serveCmd, migrateCmd, logsCmd)
}
