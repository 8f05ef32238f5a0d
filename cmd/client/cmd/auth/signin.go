package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"gotodo/cmd/client/cmd/types"
	"gotodo/internal/app/client"
)

var SignInCmd = &cobra.Command{
	Use:   "signin",
	Short: "Sign in to an existing account",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, ok := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if !ok {
			return fmt.Errorf("client is not initialized")
		}

		username, password, err := promptCredentials()
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		if err := app.SignIn(ctx, username, password); err != nil {
			return fmt.Errorf("sign in: %w", err)
		}

		color.Green("Signed in as %s. Token saved.", username)
		return nil
	},
}
