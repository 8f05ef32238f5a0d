package auth

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var AuthCmd = &cobra.Command{
	Use:   "auth",
	Short: "Sign up or sign in",
}

func init() {
	AuthCmd.AddCommand(SignUpCmd)
	AuthCmd.AddCommand(SignInCmd)
}

// promptCredentials reads a username from stdin and a password without echo.
func promptCredentials() (string, string, error) {
	fmt.Print("Username: ")
	var username string
	if _, err := fmt.Scanln(&username); err != nil {
		return "", "", fmt.Errorf("read username: %w", err)
	}

	fmt.Print("Password: ")
	password, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		return "", "", fmt.Errorf("read password: %w", err)
	}

	return strings.TrimSpace(username), string(password), nil
}
