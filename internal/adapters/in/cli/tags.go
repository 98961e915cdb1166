package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/bnema/rocker/internal/adapters/in/cli/ui/components"
	"github.com/bnema/rocker/internal/boundaries/in"
	"github.com/bnema/rocker/internal/domain"
)

func newTagsCmd(a *app) *cobra.Command {
	var sortOrder string

	cmd := &cobra.Command{
		Use:   "tags <repo_name>",
		Short: "List the tags of a repository",
		Long: `List the tags of a repository.

With --sort semver, semantic version tags come first, latest first, followed by
the other tags.

Examples:
  rocker tags myorg/app
  rocker tags myorg/app --sort semver -o json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			order := in.TagOrder(sortOrder)
			if order != in.TagOrderNone && order != in.TagOrderSemver {
				return fmt.Errorf("--sort must be one of: %s, %s", in.TagOrderNone, in.TagOrderSemver)
			}

			sess, err := a.openSession(cmd.Context())
			if err != nil {
				return err
			}
			return runTags(cmd.Context(), a.registry, sess, args[0], order, a.cfg.Output, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&sortOrder, "sort", string(in.TagOrderNone), "Tag order: none or semver")

	return cmd
}

func runTags(ctx context.Context, svc in.RegistryService, sess *domain.Session, repo string, order in.TagOrder, format string, out io.Writer) error {
	tags, err := svc.Tags(ctx, sess, repo, order)
	if err != nil {
		return err
	}

	if isStructured(format) {
		return writeStructured(out, format, tagsOutput{Name: repo, Tags: nonNil(tags)})
	}

	if len(tags) == 0 {
		return cliWriteLine(out, cliRenderEmptyState("No tags found for "+repo))
	}

	if err := cliWriteLine(out, cliRenderTitle("Tags for "+repo)); err != nil {
		return err
	}
	if err := cliWriteLine(out, components.ListTable("TAG", tags)); err != nil {
		return err
	}
	return cliWritef(out, "\nTotal tags: %d\n", len(tags))
}
