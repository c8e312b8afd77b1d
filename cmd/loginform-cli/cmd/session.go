package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/nfrund/loginform/internal/domain"
	"github.com/nfrund/loginform/internal/prefs"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Print the display name saved by the last successful login",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := defaultStore()
		if err != nil {
			return err
		}
		return runWhoami(cmd.Context(), cmd.OutOrStdout(), store)
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Forget the saved display name",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := defaultStore()
		if err != nil {
			return err
		}
		return runLogout(cmd.Context(), cmd.OutOrStdout(), store)
	},
}

func init() {
	rootCmd.AddCommand(whoamiCmd)
	rootCmd.AddCommand(logoutCmd)
}

func defaultStore() (*prefs.FileStore, error) {
	dir, err := prefs.DefaultDir()
	if err != nil {
		return nil, err
	}
	return prefs.NewFileStore(afero.NewOsFs(), dir), nil
}

func runWhoami(ctx context.Context, w io.Writer, store *prefs.FileStore) error {
	name, err := store.Get(ctx, domain.DisplayNameKey)
	if errors.Is(err, prefs.ErrNotFound) {
		fmt.Fprintln(w, "Not logged in.")
		return nil
	}
	if err != nil {
		return err
	}
	if name == "" {
		// The backend accepted the login but sent no name.
		fmt.Fprintln(w, "Logged in.")
		return nil
	}
	fmt.Fprintf(w, "Logged in as %s.\n", name)
	return nil
}

func runLogout(ctx context.Context, w io.Writer, store *prefs.FileStore) error {
	if err := store.Delete(ctx, domain.DisplayNameKey); err != nil {
		return err
	}
	fmt.Fprintln(w, "Logged out.")
	return nil
}
