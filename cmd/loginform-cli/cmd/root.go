package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "loginform-cli",
	Short: "Terminal front end for the login form",
	Long: `loginform-cli drives the same login form the web page uses, from a terminal.

Available commands:
  validate    Check an email and password against the form's rules
  login       Validate, then authenticate against the backend
  whoami      Print the display name saved by the last login
  logout      Forget the saved display name
  version     Print the version number

Use "loginform-cli [command] --help" for more information about a command.`,
	SilenceUsage: true,
}

// Execute executes the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var (
	email    string
	password string
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&email, "email", "e", "", "Email address")
	rootCmd.PersistentFlags().StringVarP(&password, "password", "p", "", "Password")
}
