// Package cli implements the CLI adapter for rocker.
// This package provides Cobra commands that delegate to the use case layer.
package cli

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/bnema/rocker/internal/adapters/out/credstore"
	"github.com/bnema/rocker/internal/adapters/out/dockercli"
	registryclient "github.com/bnema/rocker/internal/adapters/out/registry"
	"github.com/bnema/rocker/internal/boundaries/in"
	"github.com/bnema/rocker/internal/boundaries/out"
	"github.com/bnema/rocker/internal/config"
	"github.com/bnema/rocker/internal/domain"
	"github.com/bnema/rocker/internal/usecase/registry"
	"github.com/bnema/rocker/internal/usecase/session"
	"github.com/bnema/rocker/pkg/logger"
	"github.com/bnema/rocker/pkg/version"
)

// annotationSkipDocker marks commands that run without a docker executable.
const annotationSkipDocker = "rocker/skip-docker-check"

// app holds the dependencies of a single invocation. They are built by the
// root PersistentPreRunE once flags and configuration are known.
type app struct {
	v          *viper.Viper
	configFile string
	envFile    string

	cfg      *config.Config
	log      *logger.Logger
	docker   out.DockerCLI
	sessions in.SessionService
	registry in.RegistryService

	newDocker   func(binary string, log *logger.Logger) out.DockerCLI
	prompt      prompter
	interactive func() bool
}

func newApp() *app {
	return &app{
		v: viper.New(),
		newDocker: func(binary string, log *logger.Logger) out.DockerCLI {
			return dockercli.New(binary, log)
		},
		prompt:      surveyPrompter{},
		interactive: stdinIsTerminal,
	}
}

// NewRootCmd creates the root command for the rocker CLI.
func NewRootCmd() *cobra.Command {
	return newRootCmd(newApp())
}

func newRootCmd(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "rocker",
		Short: "rocker - Docker registry management from the command line",
		Long: `rocker talks to a Docker Registry v2 endpoint: it logs in through docker,
lists repositories and tags, and deletes images by manifest digest.

Credentials are stored in ~/.rocker/credentials.toml after a successful login.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.configFile, "config", "", "config file (default is ~/.rocker/rocker.toml)")
	flags.StringVar(&a.envFile, "env-file", "", "dotenv file loaded before ROCKER_ environment variables")
	flags.StringP("output", "o", config.OutputTable, "Output format: table, json or yaml")
	flags.String("log-level", "warn", "Log level: debug, info, warn or error")
	flags.Duration("timeout", 0, "Registry request timeout, 0 waits forever")

	_ = a.v.BindPFlag(config.KeyOutput, flags.Lookup("output"))
	_ = a.v.BindPFlag(config.KeyLogLevel, flags.Lookup("log-level"))
	_ = a.v.BindPFlag(config.KeyTimeout, flags.Lookup("timeout"))

	rootCmd.AddCommand(newLoginCmd(a))
	rootCmd.AddCommand(newLogoutCmd(a))
	rootCmd.AddCommand(newPingCmd(a))
	rootCmd.AddCommand(newCatalogCmd(a))
	rootCmd.AddCommand(newTagsCmd(a))
	rootCmd.AddCommand(newDeleteCmd(a))
	rootCmd.AddCommand(newVersionCmd(a))

	return rootCmd
}

// setup loads configuration and wires the services.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.v, config.LoadOptions{ConfigFile: a.configFile, EnvFile: a.envFile})
	if err != nil {
		return err
	}
	a.cfg = cfg

	if a.log == nil {
		a.log = logger.GetLogger()
	}
	a.log.SetLogLevel(cfg.LogLevel)

	a.docker = a.newDocker(cfg.DockerBinary, a.log)
	if !skipsDockerCheck(cmd) {
		if err := a.docker.EnsureAvailable(); err != nil {
			return err
		}
	}

	store, err := credstore.NewFileStore(cfg.CredentialsFile, a.log)
	if err != nil {
		return err
	}
	a.log.Debug("credentials store", "path", store.Path())

	client := registryclient.NewClient(
		registryclient.WithTimeout(cfg.Timeout),
		registryclient.WithUserAgent(version.UserAgent()),
		registryclient.WithLogger(a.log),
	)

	a.sessions = session.NewService(store, a.docker, a.log)
	a.registry = registry.NewService(client, a.log)
	return nil
}

// openSession returns the authenticated session or ErrNotAuthenticated.
func (a *app) openSession(ctx context.Context) (*domain.Session, error) {
	sess, err := a.sessions.Open(ctx)
	if err != nil {
		return nil, err
	}
	a.log.Debug("session opened", "host", sess.Host(), "username", sess.Credentials.Username)
	return sess, nil
}

func skipsDockerCheck(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations[annotationSkipDocker] == "true" {
			return true
		}
		switch c.Name() {
		case "help", "completion", cobra.ShellCompRequestCmd, cobra.ShellCompNoDescRequestCmd:
			return true
		}
	}
	return false
}

// Execute runs the rocker CLI.
func Execute(ctx context.Context) error {
	return NewRootCmd().ExecuteContext(ctx)
}

// SetVersionInfo sets the version information for the CLI.
func SetVersionInfo(v, commit, date string) {
	version.Set(v, commit, date)
}
