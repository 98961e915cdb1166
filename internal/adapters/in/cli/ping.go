package cli

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"github.com/bnema/rocker/internal/boundaries/in"
	"github.com/bnema/rocker/internal/domain"
)

func newPingCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "ping",
		Short: "Check that the registry answers the v2 API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sess, err := a.openSession(cmd.Context())
			if err != nil {
				return err
			}
			return runPing(cmd.Context(), a.registry, sess, a.cfg.Output, cmd.OutOrStdout())
		},
	}
}

func runPing(ctx context.Context, svc in.RegistryService, sess *domain.Session, format string, out io.Writer) error {
	if err := svc.Ping(ctx, sess); err != nil {
		return err
	}

	if isStructured(format) {
		return writeStructured(out, format, pingOutput{Host: sess.Host(), Status: "ok"})
	}
	return cliWriteLine(out, cliRenderSuccess("Registry "+sess.Host()+" is reachable"))
}
