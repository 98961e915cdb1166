package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/bnema/rocker/internal/boundaries/in"
)

func newLogoutCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Log out from the registry",
		Long: `Remove the stored credentials. Persistent credentials are kept in place.

Logging out without a session only prints a notice.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runLogout(cmd.Context(), a.sessions, cmd.OutOrStdout())
		},
	}
}

func runLogout(ctx context.Context, sessions in.SessionService, out io.Writer) error {
	result, err := sessions.Logout(ctx)
	if err != nil {
		return fmt.Errorf("logout failed: %w", err)
	}

	switch {
	case !result.LoggedIn:
		return cliWriteLine(out, cliRenderWarning("Not logged in"))
	case result.Removed:
		return cliWriteLine(out, cliRenderSuccess("Logged out from "+result.Host))
	default:
		return cliWriteLine(out, cliRenderInfo("Persistent session kept for "+result.Host))
	}
}
