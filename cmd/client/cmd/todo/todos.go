package todo

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"gotodo/cmd/client/cmd/types"
	"gotodo/internal/app/client"
)

var TodoCmd = &cobra.Command{
	Use:   "todo",
	Short: "Manage your todos",
}

func init() {
	TodoCmd.AddCommand(ListCmd)
	TodoCmd.AddCommand(CreateCmd)
	TodoCmd.AddCommand(UpdateCmd)
	TodoCmd.AddCommand(DeleteCmd)
}

func appFrom(cmd *cobra.Command) (*client.App, error) {
	app, ok := cmd.Context().Value(types.ClientAppKey).(*client.App)
	if !ok {
		return nil, fmt.Errorf("client is not initialized")
	}

	if !app.SignedIn() {
		return nil, fmt.Errorf("not signed in; run 'gotodo auth signin' first")
	}

	return app, nil
}

func describeError(err error) error {
	if errors.Is(err, client.ErrUnauthorized) {
		return fmt.Errorf("session expired or invalid; run 'gotodo auth signin' again")
	}
	return err
}
