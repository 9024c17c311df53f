package main

import (
	"fmt"
	"strings"

	"github.com/sandevgo/factbot/internal/config"
	"github.com/sandevgo/factbot/internal/core"
	"github.com/sandevgo/factbot/internal/service/dispatch"
	"github.com/spf13/cobra"
)

var askCmd = &cobra.Command{
	Use:   "ask [question]",
	Short: "Answer a single question and exit",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, flushLog := setupLogger(cmd.Context())
		defer flushLog()

		appCfg := config.NewAppConfig(ctx)
		dispatcher := newDispatcher(appCfg)

		query := strings.Join(args, " ")
		res := dispatcher.Dispatch(ctx, dispatch.NewSession(), core.Tokenize(query))
		if res.Kind == core.Terminated {
			fmt.Println(core.MsgGoodbye)
			return nil
		}
		for _, line := range res.Lines() {
			fmt.Println(line)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(askCmd)
}
