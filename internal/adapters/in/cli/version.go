package cli

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/bnema/rocker/pkg/version"
)

func newVersionCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:         "version",
		Short:       "Print version information",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{annotationSkipDocker: "true"},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runVersion(a.cfg.Output, cmd.OutOrStdout())
		},
	}
}

func runVersion(format string, out io.Writer) error {
	if isStructured(format) {
		return writeStructured(out, format, versionOutput{Version: version.Version(), Commit: version.Commit(), BuildDate: version.BuildDate()})
	}

	if err := cliWriteLine(out, cliRenderTitle("rocker "+version.Version())); err != nil {
		return err
	}
	if err := cliWriteLine(out, cliRenderMeta("Commit:", version.Commit())); err != nil {
		return err
	}
	return cliWriteLine(out, cliRenderMeta("Build Date:", version.BuildDate()))
}
