package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/nfrund/loginform/internal/authclient"
	"github.com/nfrund/loginform/internal/config"
	"github.com/nfrund/loginform/internal/domain"
	"github.com/nfrund/loginform/internal/loginform"
	"github.com/spf13/cobra"
)

var errLoginFailed = errors.New("login failed")

var (
	endpoint string
	timeout  time.Duration
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in against the authentication backend",
	Long: `Validates the email and password, then makes one authentication request.
On success the display name is saved to the user config directory.

The password can also be supplied through LOGINFORM_PASSWORD.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		config.LoadEnv()
		if endpoint == "" {
			endpoint = config.AuthEndpoint()
		}

		store, err := defaultStore()
		if err != nil {
			return err
		}

		client := authclient.New(endpoint, authclient.WithHTTPClient(&http.Client{Timeout: timeout}))
		return runLogin(cmd.Context(), cmd.OutOrStdout(), client, store, email, passwordOrEnv())
	},
}

func init() {
	rootCmd.AddCommand(loginCmd)
	loginCmd.Flags().StringVar(&endpoint, "endpoint", "", "Authentication endpoint (default $APP_AUTH_ENDPOINT or "+authclient.DefaultEndpoint+")")
	loginCmd.Flags().DurationVar(&timeout, "timeout", 30*time.Second, "Give up on the backend after this long (0 waits forever)")
}

// terminalNavigator remembers the requested route; the terminal has nowhere
// to go, so the route is printed instead.
type terminalNavigator struct {
	route string
}

func (n *terminalNavigator) Navigate(route string) { n.route = route }

// runLogin runs one submit cycle of the login form and prints the outcome.
func runLogin(ctx context.Context, w io.Writer, auth domain.Authenticator, store domain.ClientStore, email, password string) error {
	nav := &terminalNavigator{}
	form := loginform.New(auth, store, nav)
	defer form.Close()

	form.SetEmail(email)
	form.SetPassword(password)
	state := form.Submit(ctx)

	if state.Message != "" {
		fmt.Fprintln(w, state.Message)
	}
	if nav.route != "" {
		fmt.Fprintf(w, "Navigating to %s\n", nav.route)
	}

	switch state.Phase {
	case loginform.PhaseSucceeded:
		return nil
	case loginform.PhaseHaltedWithErrors:
		return state.Errors.Err()
	default:
		return errLoginFailed
	}
}

func passwordOrEnv() string {
	if password != "" {
		return password
	}
	return os.Getenv("LOGINFORM_PASSWORD")
}
