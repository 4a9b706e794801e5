package commands

import (
	"fmt"
	"os"
	"text/tabwriter"

	"Recipe-Publisher/cmd/config"
	"Recipe-Publisher/domain"
	"Recipe-Publisher/pkg/recipe"

	"github.com/spf13/cobra"
)

var logsCmd = &cobra.Command{
	Use:   "logs <slug>",
	Short: "Show the generation history of a recipe slug",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !config.DatabaseConfigured() {
			return fmt.Errorf("%w: DB_HOST", domain.ErrMissingConfig)
		}
		db, err := config.ConnectDB()
		if err != nil {
			return err
		}

		entries, err := recipe.NewGenerationLogRepository(db).GetLogsBySlug(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		if len(entries) == 0 {
			fmt.Fprintf(os.Stdout, "No generation history for %s\n", args[0])
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "WHEN\tSTATUS\tSITE\tMODEL\tDOCUMENT\tERROR")
		for _, e := range entries {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
				e.CreatedAt.Format("2006-01-02 15:04"), e.Status, e.SiteID, e.Model, e.DocumentID, e.ErrorDetail)
		}
		return w.Flush()
	},
}
