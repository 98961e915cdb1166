package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/opencontainers/go-digest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/bnema/rocker/internal/boundaries/in"
	"github.com/bnema/rocker/internal/config"
	"github.com/bnema/rocker/internal/domain"
	"github.com/bnema/rocker/pkg/version"
)

const testDigest = digest.Digest("sha256:a3ed95caeb02ffe68cdd9fd84406680ae93d633cb16422d00e8a7c22955b46d4")

func testSession() *domain.Session {
	return domain.NewSession(domain.Credentials{
		Username: "alice",
		Password: "secret",
		Host:     "https://registry.example.com",
	})
}

func TestCompleteLoginRequest_FromFlags(t *testing.T) {
	p := &fakePrompter{}
	req, err := completeLoginRequest(loginOptions{
		Username:   " alice ",
		Password:   "secret\n",
		Host:       "https://registry.example.com/",
		Persistent: true,
	}, "", strings.NewReader(""), p, false)
	require.NoError(t, err)

	assert.Equal(t, in.LoginRequest{
		Username:   "alice",
		Password:   "secret",
		Host:       "https://registry.example.com",
		Persistent: true,
	}, req)
	assert.Empty(t, p.questions)
}

func TestCompleteLoginRequest_PromptsOnTerminal(t *testing.T) {
	p := &fakePrompter{inputs: []string{"https://r.example.com", "bob"}, password: "pw"}

	req, err := completeLoginRequest(loginOptions{}, "", strings.NewReader(""), p, true)
	require.NoError(t, err)

	assert.Equal(t, "https://r.example.com", req.Host)
	assert.Equal(t, "bob", req.Username)
	assert.Equal(t, "pw", req.Password)
	assert.Equal(t, []string{"Registry URL:", "Username:", "Password:"}, p.questions)
}

func TestCompleteLoginRequest_DefaultHostWithoutTerminal(t *testing.T) {
	req, err := completeLoginRequest(loginOptions{Username: "alice", Password: "pw"}, "https://default.example.com", strings.NewReader(""), &fakePrompter{}, false)
	require.NoError(t, err)
	assert.Equal(t, "https://default.example.com", req.Host)
}

func TestCompleteLoginRequest_PasswordStdin(t *testing.T) {
	req, err := completeLoginRequest(loginOptions{
		Username:      "alice",
		PasswordStdin: true,
		Host:          "https://r.example.com",
	}, "", strings.NewReader("from-stdin\n"), &fakePrompter{}, false)
	require.NoError(t, err)
	assert.Equal(t, "from-stdin", req.Password)
}

func TestCompleteLoginRequest_MissingValuesWithoutTerminal(t *testing.T) {
	tests := []struct {
		name string
		opts loginOptions
		want string
	}{
		{"host", loginOptions{Username: "a", Password: "b"}, "--host is required"},
		{"username", loginOptions{Host: "https://r.example.com", Password: "b"}, "--username is required"},
		{"password", loginOptions{Host: "https://r.example.com", Username: "a"}, "password cannot be empty"},
		{"empty stdin", loginOptions{Host: "https://r.example.com", Username: "a", PasswordStdin: true}, "password cannot be empty"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := completeLoginRequest(tt.opts, "", strings.NewReader(""), &fakePrompter{}, false)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestCompleteLoginRequest_PromptError(t *testing.T) {
	_, err := completeLoginRequest(loginOptions{}, "", strings.NewReader(""), &fakePrompter{err: errFake}, true)
	assert.ErrorIs(t, err, errFake)
}

func TestRunLogin(t *testing.T) {
	sessions := &fakeSessions{}
	var out bytes.Buffer

	err := runLogin(context.Background(), sessions, in.LoginRequest{Username: "alice", Password: "pw", Host: "https://r.example.com"}, &out)
	require.NoError(t, err)

	assert.Contains(t, out.String(), "Logged in to https://r.example.com as alice")
	assert.Contains(t, out.String(), "removed on logout")
}

func TestRunLogin_Persistent(t *testing.T) {
	var out bytes.Buffer

	err := runLogin(context.Background(), &fakeSessions{}, in.LoginRequest{Username: "alice", Password: "pw", Host: "https://r.example.com", Persistent: true}, &out)
	require.NoError(t, err)
	assert.NotContains(t, out.String(), "removed on logout")
}

func TestRunLogin_Error(t *testing.T) {
	err := runLogin(context.Background(), &fakeSessions{loginErr: errFake}, in.LoginRequest{}, &bytes.Buffer{})
	require.Error(t, err)
	assert.ErrorIs(t, err, errFake)
	assert.Contains(t, err.Error(), "login failed")
}

func TestRunLogout(t *testing.T) {
	tests := []struct {
		name   string
		result in.LogoutResult
		want   string
	}{
		{"not logged in", in.LogoutResult{}, "Not logged in"},
		{"removed", in.LogoutResult{LoggedIn: true, Removed: true, Host: "https://r.example.com"}, "Logged out from https://r.example.com"},
		{"persistent", in.LogoutResult{LoggedIn: true, Host: "https://r.example.com"}, "Persistent session kept for https://r.example.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			require.NoError(t, runLogout(context.Background(), &fakeSessions{logout: tt.result}, &out))
			assert.Contains(t, out.String(), tt.want)
		})
	}
}

func TestRunCatalog_Table(t *testing.T) {
	svc := &fakeRegistryService{repos: []string{"app", "myorg/api"}}
	var out bytes.Buffer

	require.NoError(t, runCatalog(context.Background(), svc, testSession(), config.OutputTable, &out))

	text := out.String()
	assert.Contains(t, text, "REPOSITORY")
	assert.Contains(t, text, "myorg/api")
	assert.Contains(t, text, "Total repositories: 2")
}

func TestRunCatalog_Empty(t *testing.T) {
	var out bytes.Buffer

	require.NoError(t, runCatalog(context.Background(), &fakeRegistryService{}, testSession(), config.OutputTable, &out))
	assert.Contains(t, out.String(), "No repositories found")
}

func TestRunCatalog_JSON(t *testing.T) {
	var out bytes.Buffer

	require.NoError(t, runCatalog(context.Background(), &fakeRegistryService{}, testSession(), config.OutputJSON, &out))

	var decoded catalogOutput
	require.NoError(t, json.Unmarshal(out.Bytes(), &decoded))
	assert.NotNil(t, decoded.Repositories)
	assert.Empty(t, decoded.Repositories)
	assert.Contains(t, out.String(), `"repositories": []`)
}

func TestRunCatalog_Error(t *testing.T) {
	err := runCatalog(context.Background(), &fakeRegistryService{err: errFake}, testSession(), config.OutputTable, &bytes.Buffer{})
	assert.ErrorIs(t, err, errFake)
}

func TestRunTags_YAML(t *testing.T) {
	svc := &fakeRegistryService{tags: []string{"v2.0.0", "v1.0.0"}}
	var out bytes.Buffer

	require.NoError(t, runTags(context.Background(), svc, testSession(), "myorg/app", in.TagOrderSemver, config.OutputYAML, &out))

	var decoded tagsOutput
	require.NoError(t, yaml.Unmarshal(out.Bytes(), &decoded))
	assert.Equal(t, tagsOutput{Name: "myorg/app", Tags: []string{"v2.0.0", "v1.0.0"}}, decoded)
	assert.Equal(t, in.TagOrderSemver, svc.lastOrder)
}

func TestRunTags_Table(t *testing.T) {
	var out bytes.Buffer

	require.NoError(t, runTags(context.Background(), &fakeRegistryService{tags: []string{"latest"}}, testSession(), "app", in.TagOrderNone, config.OutputTable, &out))
	assert.Contains(t, out.String(), "Tags for app")
	assert.Contains(t, out.String(), "latest")
}

func TestRunTableOutput_KeepsLongNamesWhole(t *testing.T) {
	repo := "myorg/team-platform/services/payments-gateway-reconciliation-worker"
	tag := "sha-6c3c624b58dbbcd3c0dd82b4c53f04194d1247c6"

	var catalog bytes.Buffer
	require.NoError(t, runCatalog(context.Background(), &fakeRegistryService{repos: []string{repo}}, testSession(), config.OutputTable, &catalog))
	assert.Contains(t, catalog.String(), repo)

	var tags bytes.Buffer
	require.NoError(t, runTags(context.Background(), &fakeRegistryService{tags: []string{tag}}, testSession(), repo, in.TagOrderNone, config.OutputTable, &tags))
	assert.Contains(t, tags.String(), tag)
	assert.NotContains(t, tags.String(), "...")
}

func TestRunTags_Empty(t *testing.T) {
	var out bytes.Buffer

	require.NoError(t, runTags(context.Background(), &fakeRegistryService{}, testSession(), "app", in.TagOrderNone, config.OutputTable, &out))
	assert.Contains(t, out.String(), "No tags found for app")
}

func TestRunDelete(t *testing.T) {
	svc := &fakeRegistryService{digest: testDigest}
	ref := domain.ImageReference{Repository: "app", Tag: "v1"}
	var out bytes.Buffer

	require.NoError(t, runDelete(context.Background(), svc, testSession(), ref, nil, config.OutputTable, &out))

	assert.Equal(t, []domain.ImageReference{ref}, svc.deleted)
	assert.Contains(t, out.String(), "Deleted app:v1")
	assert.Contains(t, out.String(), testDigest.String())
}

func TestRunDelete_JSON(t *testing.T) {
	svc := &fakeRegistryService{digest: testDigest}
	var out bytes.Buffer

	require.NoError(t, runDelete(context.Background(), svc, testSession(), domain.ImageReference{Repository: "app", Tag: "v1"}, nil, config.OutputJSON, &out))

	var decoded deleteOutput
	require.NoError(t, json.Unmarshal(out.Bytes(), &decoded))
	assert.Equal(t, deleteOutput{Image: "app:v1", Digest: testDigest.String()}, decoded)
}

func TestRunDelete_Confirmation(t *testing.T) {
	ref := domain.ImageReference{Repository: "app", Tag: "v1"}

	t.Run("declined", func(t *testing.T) {
		svc := &fakeRegistryService{digest: testDigest}
		var asked string
		confirm := func(message string) (bool, error) {
			asked = message
			return false, nil
		}

		err := runDelete(context.Background(), svc, testSession(), ref, confirm, config.OutputTable, &bytes.Buffer{})
		assert.ErrorIs(t, err, errDeleteCancelled)
		assert.Empty(t, svc.deleted)
		assert.Equal(t, "Delete app:v1 from https://registry.example.com?", asked)
	})

	t.Run("accepted", func(t *testing.T) {
		svc := &fakeRegistryService{digest: testDigest}
		confirm := func(string) (bool, error) { return true, nil }

		require.NoError(t, runDelete(context.Background(), svc, testSession(), ref, confirm, config.OutputTable, &bytes.Buffer{}))
		assert.Len(t, svc.deleted, 1)
	})
}

func TestRunDelete_Error(t *testing.T) {
	svc := &fakeRegistryService{err: domain.ErrDigestUnavailable}

	err := runDelete(context.Background(), svc, testSession(), domain.ImageReference{Repository: "app", Tag: "v1"}, nil, config.OutputTable, &bytes.Buffer{})
	assert.ErrorIs(t, err, domain.ErrDigestUnavailable)
}

func TestRunPing(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, runPing(context.Background(), &fakeRegistryService{}, testSession(), config.OutputTable, &out))
	assert.Contains(t, out.String(), "https://registry.example.com is reachable")

	out.Reset()
	require.NoError(t, runPing(context.Background(), &fakeRegistryService{}, testSession(), config.OutputJSON, &out))
	assert.JSONEq(t, `{"host":"https://registry.example.com","status":"ok"}`, out.String())
}

func TestRunVersion(t *testing.T) {
	SetVersionInfo("1.2.3", "abc123", "2026-01-01")
	t.Cleanup(func() { version.Set("dev", "unknown", "unknown") })

	var out bytes.Buffer
	require.NoError(t, runVersion(config.OutputTable, &out))
	assert.Contains(t, out.String(), "rocker 1.2.3")
	assert.Contains(t, out.String(), "abc123")

	out.Reset()
	require.NoError(t, runVersion(config.OutputJSON, &out))
	assert.JSONEq(t, `{"version":"1.2.3","commit":"abc123","build_date":"2026-01-01"}`, out.String())
}

func TestWriteStructured_UnknownFormat(t *testing.T) {
	assert.Error(t, writeStructured(&bytes.Buffer{}, "xml", catalogOutput{}))
}
