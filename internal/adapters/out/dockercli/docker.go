// Package dockercli wraps the external docker executable.
package dockercli

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os/exec"
	"strings"

	"github.com/bnema/rocker/internal/boundaries/out"
	"github.com/bnema/rocker/internal/domain"
	"github.com/bnema/rocker/pkg/logger"
)

// DefaultBinary is the executable looked up on the PATH.
const DefaultBinary = "docker"

var _ out.DockerCLI = (*CLI)(nil)

// CLI runs docker subcommands as child processes.
type CLI struct {
	binary string
	log    *logger.Logger
}

// New creates a docker CLI wrapper. An empty binary means DefaultBinary.
func New(binary string, log *logger.Logger) *CLI {
	if binary == "" {
		binary = DefaultBinary
	}
	if log == nil {
		log = logger.GetLogger()
	}
	return &CLI{binary: binary, log: log}
}

// EnsureAvailable checks that the docker executable can be found.
func (c *CLI) EnsureAvailable() error {
	path, err := exec.LookPath(c.binary)
	if err != nil {
		return fmt.Errorf("%w: %s", domain.ErrDockerNotFound, c.binary)
	}
	c.log.Debug("docker executable found", "path", path)
	return nil
}

// Login runs docker login for host. The password goes through stdin so it
// never shows up in the process list.
func (c *CLI) Login(ctx context.Context, host, username, password string) error {
	server, err := serverAddress(host)
	if err != nil {
		return err
	}

	// #nosec G204 -- binary comes from configuration, arguments are passed verbatim
	cmd := exec.CommandContext(ctx, c.binary, "login", "--username", username, "--password-stdin", server)
	cmd.Stdin = strings.NewReader(password)

	c.log.Debug("running docker login", "server", server, "username", username)

	output, err := cmd.CombinedOutput()
	if err != nil {
		msg := strings.TrimSpace(string(output))
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && msg != "" {
			return fmt.Errorf("docker login failed: %s", msg)
		}
		return fmt.Errorf("docker login failed: %w", err)
	}

	return nil
}

// serverAddress turns a registry URL into the host[:port] form docker expects.
func serverAddress(host string) (string, error) {
	u, err := url.Parse(domain.NormalizeHost(host))
	if err != nil || u.Host == "" {
		return "", fmt.Errorf("invalid registry host %q", host)
	}
	return u.Host, nil
}
