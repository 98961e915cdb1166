package cli

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"github.com/bnema/rocker/internal/adapters/in/cli/ui/components"
	"github.com/bnema/rocker/internal/boundaries/in"
	"github.com/bnema/rocker/internal/domain"
)

func newCatalogCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "catalog",
		Aliases: []string{"repos"},
		Short:   "List the repositories of the registry",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sess, err := a.openSession(cmd.Context())
			if err != nil {
				return err
			}
			return runCatalog(cmd.Context(), a.registry, sess, a.cfg.Output, cmd.OutOrStdout())
		},
	}
}

func runCatalog(ctx context.Context, svc in.RegistryService, sess *domain.Session, format string, out io.Writer) error {
	repos, err := svc.Catalog(ctx, sess)
	if err != nil {
		return err
	}

	if isStructured(format) {
		return writeStructured(out, format, catalogOutput{Repositories: nonNil(repos)})
	}

	if len(repos) == 0 {
		return cliWriteLine(out, cliRenderEmptyState("No repositories found"))
	}

	if err := cliWriteLine(out, cliRenderTitle("Repositories")); err != nil {
		return err
	}
	if err := cliWriteLine(out, components.ListTable("REPOSITORY", repos)); err != nil {
		return err
	}
	return cliWritef(out, "\nTotal repositories: %d\n", len(repos))
}
