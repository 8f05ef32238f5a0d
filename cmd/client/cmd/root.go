package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/exp/slog"

	"gotodo/cmd/client/cmd/auth"
	"gotodo/cmd/client/cmd/todo"
	"gotodo/cmd/client/cmd/types"
	"gotodo/internal/app/client"
	"gotodo/internal/app/client/config"
	"gotodo/internal/utils/logger"
)

var (
	cfg       *config.Config
	log       *slog.Logger
	app       *client.App
	serverURL string
)

var rootCmd = &cobra.Command{
	Use:   "gotodo",
	Short: "GoTodo - command line client for the todo service",
	Long: `GoTodo is a command line client for the multi-user todo service.

Sign up or sign in once; the bearer token is stored locally and reused
for todo operations until it expires.`,
	PersistentPreRunE: setupApp,
	SilenceUsage:      true,
}

func Execute() {
	defer func() {
		if app != nil {
			app.Close()
		}
	}()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func setupApp(cmd *cobra.Command, _ []string) error {
	cfg = config.MustLoad()
	if serverURL != "" {
		cfg.ServerAddress = serverURL
	}

	log = logger.New(cfg.Env)

	var err error
	app, err = client.New(cfg, log)
	if err != nil {
		return fmt.Errorf("initialize client: %w", err)
	}

	cmd.SetContext(context.WithValue(cmd.Context(), types.ClientAppKey, app))

	return nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "", "todo server address (host:port)")

	rootCmd.AddCommand(auth.AuthCmd)
	rootCmd.AddCommand(todo.TodoCmd)
}
