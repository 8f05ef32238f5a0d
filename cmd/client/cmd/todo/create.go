package todo

import (
	"context"
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var createDescription string

var CreateCmd = &cobra.Command{
	Use:   "create <title>",
	Short: "Create a todo",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := appFrom(cmd)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		if err := app.CreateTodo(ctx, args[0], createDescription); err != nil {
			return describeError(fmt.Errorf("create todo: %w", err))
		}

		color.Green("Todo created.")
		return nil
	},
}

func init() {
	CreateCmd.Flags().StringVarP(&createDescription, "description", "d", "", "todo description")
}
