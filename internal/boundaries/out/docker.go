package out

import "context"

// DockerCLI defines the contract for the external docker executable.
type DockerCLI interface {
	// EnsureAvailable returns domain.ErrDockerNotFound when docker is not on the PATH.
	EnsureAvailable() error

	// Login runs docker login against the registry host.
	Login(ctx context.Context, host, username, password string) error
}
