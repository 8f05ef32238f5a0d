package todo

import (
	"context"
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var ListCmd = &cobra.Command{
	Use:   "list",
	Short: "List your todos",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := appFrom(cmd)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		items, fromCache, err := app.Todos(ctx)
		if err != nil {
			return describeError(err)
		}

		if fromCache {
			color.Yellow("Server unreachable, showing cached todos.")
		}

		if len(items) == 0 {
			fmt.Println("No todos yet.")
			return nil
		}

		for _, item := range items {
			fmt.Printf("%s  %s\n", color.CyanString(item.ID), color.New(color.Bold).Sprint(item.Title))
			if item.Description != "" {
				fmt.Printf("    %s\n", item.Description)
			}
		}

		return nil
	},
}
