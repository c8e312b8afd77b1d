package cmd

import (
	"fmt"
	"io"

	"github.com/nfrund/loginform/internal/validation"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check an email and password against the login form's rules",
	Long: `Runs the same checks the login form runs before contacting the backend.
Both fields are always checked. Exits non-zero if either fails.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		errs := validation.Validate(validation.Input{Email: email, Password: passwordOrEnv()})
		return reportValidation(cmd.OutOrStdout(), errs)
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

// reportValidation prints OK when both fields passed. Otherwise it returns
// the field failures as *domain.ValidationError values for cobra to print.
func reportValidation(w io.Writer, errs validation.FieldErrors) error {
	if err := errs.Err(); err != nil {
		return err
	}
	fmt.Fprintln(w, "OK")
	return nil
}
