package cli

import (
	"context"
	"errors"

	"github.com/opencontainers/go-digest"

	"github.com/bnema/rocker/internal/boundaries/in"
	"github.com/bnema/rocker/internal/domain"
)

type fakeSessions struct {
	loginReq    in.LoginRequest
	loginErr    error
	logout      in.LogoutResult
	logoutErr   error
	session     *domain.Session
	loginCalls  int
	logoutCalls int
}

func (f *fakeSessions) Login(_ context.Context, req in.LoginRequest) (*domain.Session, error) {
	f.loginCalls++
	f.loginReq = req
	if f.loginErr != nil {
		return nil, f.loginErr
	}
	return domain.NewSession(domain.Credentials{
		Username:   req.Username,
		Password:   req.Password,
		Host:       req.Host,
		Persistent: req.Persistent,
	}), nil
}

func (f *fakeSessions) Logout(_ context.Context) (in.LogoutResult, error) {
	f.logoutCalls++
	return f.logout, f.logoutErr
}

func (f *fakeSessions) Open(_ context.Context) (*domain.Session, error) {
	if f.session == nil {
		return nil, domain.ErrNotAuthenticated
	}
	return f.session, nil
}

type fakeRegistryService struct {
	repos     []string
	tags      []string
	digest    digest.Digest
	err       error
	lastOrder in.TagOrder
	deleted   []domain.ImageReference
}

func (f *fakeRegistryService) Ping(_ context.Context, _ *domain.Session) error {
	return f.err
}

func (f *fakeRegistryService) Catalog(_ context.Context, _ *domain.Session) ([]string, error) {
	return f.repos, f.err
}

func (f *fakeRegistryService) Tags(_ context.Context, _ *domain.Session, _ string, order in.TagOrder) ([]string, error) {
	f.lastOrder = order
	return f.tags, f.err
}

func (f *fakeRegistryService) Delete(_ context.Context, _ *domain.Session, ref domain.ImageReference) (digest.Digest, error) {
	if f.err != nil {
		return "", f.err
	}
	f.deleted = append(f.deleted, ref)
	return f.digest, nil
}

type fakePrompter struct {
	inputs    []string
	password  string
	confirm   bool
	err       error
	questions []string
}

func (f *fakePrompter) Input(message, defaultValue string) (string, error) {
	f.questions = append(f.questions, message)
	if f.err != nil {
		return "", f.err
	}
	if len(f.inputs) == 0 {
		return defaultValue, nil
	}
	answer := f.inputs[0]
	f.inputs = f.inputs[1:]
	return answer, nil
}

func (f *fakePrompter) Password(message string) (string, error) {
	f.questions = append(f.questions, message)
	return f.password, f.err
}

func (f *fakePrompter) Confirm(message string, _ bool) (bool, error) {
	f.questions = append(f.questions, message)
	return f.confirm, f.err
}

type fakeDocker struct {
	missing bool
	err     error
	logins  []string
}

func (f *fakeDocker) EnsureAvailable() error {
	if f.missing {
		return domain.ErrDockerNotFound
	}
	return nil
}

func (f *fakeDocker) Login(_ context.Context, host, username, _ string) error {
	f.logins = append(f.logins, username+"@"+host)
	return f.err
}

var errFake = errors.New("boom")
