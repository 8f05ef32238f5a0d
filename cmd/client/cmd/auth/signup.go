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

var SignUpCmd = &cobra.Command{
	Use:   "signup",
	Short: "Register a new account",
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

		if err := app.SignUp(ctx, username, password); err != nil {
			return fmt.Errorf("sign up: %w", err)
		}

		color.Green("Signed up as %s. Token saved.", username)
		return nil
	},
}
