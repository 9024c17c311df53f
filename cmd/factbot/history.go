package main

import (
	"fmt"

	"github.com/sandevgo/factbot/internal/config"
	"github.com/sandevgo/factbot/internal/storage/sqlite"
	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recently answered queries",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, flushLog := setupLogger(cmd.Context())
		defer flushLog()

		appCfg := config.NewAppConfig(ctx)
		db, err := sqlite.NewDB(ctx, appCfg.GetDatabasePath())
		if err != nil {
			return err
		}
		defer db.Close()

		entries, err := sqlite.NewHistoryRepo(db).Recent(ctx, appCfg.HistoryLimit)
		if err != nil {
			return err
		}
		for _, e := range entries {
			fmt.Printf("%s  [%s]  %s\n", e.CreatedAt.Format("2006-01-02 15:04"), e.Kind, e.Query)
			if e.Answers != "" {
				fmt.Printf("    -> %s\n", e.Answers)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(historyCmd)
}
