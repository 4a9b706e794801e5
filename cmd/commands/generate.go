package commands

import (
	"errors"
	"fmt"
	"os"

	"Recipe-Publisher/cmd/config"
	"Recipe-Publisher/domain"
	"Recipe-Publisher/internal/utils/logger"
	"Recipe-Publisher/internal/utils/mailing"
	"Recipe-Publisher/internal/utils/prompt"
	"Recipe-Publisher/pkg/gemini"
	"Recipe-Publisher/pkg/recipe"
	"Recipe-Publisher/pkg/sanity"

	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Interactively generate a recipe with AI and create it in the content store",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		p := prompt.NewSurveyPrompter()

		sanityCfg := sanity.LoadConfig()
		geminiCfg := gemini.LoadConfig()
		creds := recipe.Credentials{
			SanityProjectID: sanityCfg.ProjectID,
			SanityToken:     sanityCfg.Token,
			GeminiAPIKey:    geminiCfg.APIKey,
		}
		if err := recipe.CheckCredentials(p, creds); err != nil {
			return err
		}

		// writes and the taxonomy lookups must see fresh data
		sanityCfg.UseCDN = false

		var logRepository recipe.GenerationLogRepository
		if config.DatabaseConfigured() {
			db, err := config.ConnectDB()
			if err != nil {
				logger.Warn("Generation log disabled", map[string]interface{}{"error": err.Error()})
			} else {
				logRepository = recipe.NewGenerationLogRepository(db)
			}
		}

		var notifier recipe.Notifier
		if mailCfg := mailing.LoadMailConfig(); mailCfg.Enabled() {
			notifier = mailing.NewEditorNotifier(mailCfg)
		} else {
			logger.Debug("Editor notification disabled, SMTP_HOST or NOTIFY_EMAIL not set")
		}

		svc := recipe.NewRecipeService(
			recipe.NewRecipeRepository(sanity.NewClient(sanityCfg, nil)),
			gemini.NewGeminiClient(geminiCfg, nil),
			logRepository,
			notifier,
		)

		_, err := recipe.NewWizard(p, svc, creds).Run(ctx)
		if errors.Is(err, domain.ErrPromptCancelled) {
			fmt.Fprintln(os.Stdout, domain.MessageRecipeCreationCancel)
			return nil
		}
		return err
	},
}
