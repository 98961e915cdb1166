package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/bnema/rocker/internal/adapters/in/cli/ui/components"
	"github.com/bnema/rocker/internal/boundaries/in"
	"github.com/bnema/rocker/internal/domain"
	"github.com/bnema/rocker/pkg/validation"
)

var errDeleteCancelled = errors.New("operation cancelled by user")

// confirmFunc asks whether to go on. A nil confirmFunc always proceeds.
type confirmFunc func(message string) (bool, error)

func newDeleteCmd(a *app) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete <repo_name:tag>",
		Short: "Delete an image from the registry",
		Long: `Resolve the manifest digest of an image and delete it from the registry.

The registry must allow deletes (REGISTRY_STORAGE_DELETE_ENABLED=true), and
blobs are only reclaimed by the registry garbage collector.

Examples:
  rocker delete myorg/app:v1.2.0
  rocker delete myorg/app:old --yes`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ref, err := validation.ParseImageReference(args[0])
			if err != nil {
				return err
			}

			sess, err := a.openSession(cmd.Context())
			if err != nil {
				return err
			}

			var confirm confirmFunc
			if !yes && a.interactive() {
				confirm = func(message string) (bool, error) {
					return a.prompt.Confirm(message, false)
				}
			}

			return runDelete(cmd.Context(), a.registry, sess, ref, confirm, a.cfg.Output, cmd.OutOrStdout())
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}

func runDelete(ctx context.Context, svc in.RegistryService, sess *domain.Session, ref domain.ImageReference, confirm confirmFunc, format string, out io.Writer) error {
	if confirm != nil {
		proceed, err := confirm(fmt.Sprintf("Delete %s from %s?", ref, sess.Host()))
		if err != nil {
			return err
		}
		if !proceed {
			return errDeleteCancelled
		}
	}

	d, err := svc.Delete(ctx, sess, ref)
	if err != nil {
		return err
	}

	if isStructured(format) {
		return writeStructured(out, format, deleteOutput{Image: ref.String(), Digest: d.String()})
	}

	if err := cliWriteLine(out, cliRenderSuccess("Deleted "+ref.String())); err != nil {
		return err
	}
	return cliWriteLine(out, components.KeyValueTable([][2]string{
		{"image", ref.String()},
		{"digest", d.String()},
	}))
}
