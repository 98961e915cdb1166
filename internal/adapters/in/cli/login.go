package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bnema/rocker/internal/boundaries/in"
	"github.com/bnema/rocker/internal/domain"
)

type loginOptions struct {
	Username      string
	Password      string
	PasswordStdin bool
	Host          string
	Persistent    bool
}

func newLoginCmd(a *app) *cobra.Command {
	var opts loginOptions

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in to a Docker registry",
		Long: `Log in to a Docker registry through docker login and store the credentials.

Missing values are prompted for when stdin is a terminal. Without --persistent
the stored credentials are removed by the next logout.

Examples:
  rocker login --host https://registry.example.com --username alice
  echo "$PASSWORD" | rocker login -H https://registry.example.com -u alice --password-stdin
  rocker login --persistent`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			req, err := completeLoginRequest(opts, a.cfg.Host, cmd.InOrStdin(), a.prompt, a.interactive())
			if err != nil {
				return err
			}
			return runLogin(cmd.Context(), a.sessions, req, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVarP(&opts.Username, "username", "u", "", "Registry username")
	cmd.Flags().StringVarP(&opts.Password, "password", "p", "", "Registry password (visible in process listings; prefer --password-stdin or the prompt)")
	cmd.Flags().BoolVar(&opts.PasswordStdin, "password-stdin", false, "Read the password from stdin")
	cmd.Flags().StringVarP(&opts.Host, "host", "H", "", "Registry URL, e.g. https://registry.example.com")
	cmd.Flags().BoolVar(&opts.Persistent, "persistent", false, "Keep the credentials on logout")

	cmd.MarkFlagsMutuallyExclusive("password", "password-stdin")

	return cmd
}

// completeLoginRequest fills the values missing from opts, prompting on a
// terminal and failing otherwise.
func completeLoginRequest(opts loginOptions, defaultHost string, stdin io.Reader, p prompter, interactive bool) (in.LoginRequest, error) {
	req := in.LoginRequest{
		Username:   strings.TrimSpace(opts.Username),
		Password:   strings.TrimRight(opts.Password, "\r\n"),
		Host:       strings.TrimSpace(opts.Host),
		Persistent: opts.Persistent,
	}

	var err error
	if req.Host == "" {
		switch {
		case interactive:
			if req.Host, err = p.Input("Registry URL:", defaultHost); err != nil {
				return req, err
			}
		case defaultHost != "":
			req.Host = defaultHost
		default:
			return req, fmt.Errorf("--host is required when stdin is not a terminal")
		}
	}

	if req.Username == "" {
		if !interactive {
			return req, fmt.Errorf("--username is required when stdin is not a terminal")
		}
		if req.Username, err = p.Input("Username:", ""); err != nil {
			return req, err
		}
	}

	if opts.PasswordStdin {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return req, fmt.Errorf("failed to read password from stdin: %w", err)
		}
		req.Password = strings.TrimRight(string(data), "\r\n")
	}

	if req.Password == "" {
		if !interactive || opts.PasswordStdin {
			return req, fmt.Errorf("password cannot be empty")
		}
		if req.Password, err = p.Password("Password:"); err != nil {
			return req, err
		}
	}

	req.Host = domain.NormalizeHost(req.Host)
	return req, nil
}

func runLogin(ctx context.Context, sessions in.SessionService, req in.LoginRequest, out io.Writer) error {
	sess, err := sessions.Login(ctx, req)
	if err != nil {
		return fmt.Errorf("login failed: %w", err)
	}

	if err := cliWriteLine(out, cliRenderSuccess(fmt.Sprintf("Logged in to %s as %s", sess.Host(), sess.Credentials.Username))); err != nil {
		return err
	}
	if !sess.Credentials.Persistent {
		return cliWriteLine(out, cliRenderMuted("Credentials will be removed on logout (use --persistent to keep them)"))
	}
	return nil
}
