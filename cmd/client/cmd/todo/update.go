package todo

import (
	"context"
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	updateTitle       string
	updateDescription string
)

var UpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a todo",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := appFrom(cmd)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		if err := app.UpdateTodo(ctx, args[0], updateTitle, updateDescription); err != nil {
			return describeError(fmt.Errorf("update todo: %w", err))
		}

		color.Green("Todo updated.")
		return nil
	},
}

func init() {
	UpdateCmd.Flags().StringVarP(&updateTitle, "title", "t", "", "new title")
	UpdateCmd.Flags().StringVarP(&updateDescription, "description", "d", "", "new description")
}
