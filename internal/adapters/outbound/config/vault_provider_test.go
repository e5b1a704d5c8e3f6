package config

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newVaultServer(t *testing.T) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "root-token", r.Header.Get("X-Vault-Token"))
		if r.URL.Path != "/v1/secret/data/mcpweb" {
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"errors":[]}`)) //nolint:errcheck
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data":{"data":{"OPENAI_API_KEY":"sk-vault","RETRIES":3},"metadata":{"version":1}}}`)) //nolint:errcheck
	}))
	t.Cleanup(server.Close)
	return server
}

func TestNewVaultProvider_Validation(t *testing.T) {
	tests := map[string]struct {
		server, token, mount, secret string
		expectErr                    string
	}{
		"missing-server": {token: "t", mount: "secret", secret: "mcpweb", expectErr: "server is required"},
		"missing-token":  {server: "http://localhost:8200", mount: "secret", secret: "mcpweb", expectErr: "token is required"},
		"missing-mount":  {server: "http://localhost:8200", token: "t", secret: "mcpweb", expectErr: "mountPath is required"},
		"missing-secret": {server: "http://localhost:8200", token: "t", mount: "secret", expectErr: "secretPath is required"},
		"valid":          {server: "http://localhost:8200", token: "t", mount: "secret", secret: "mcpweb"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := NewVaultProvider(tt.server, tt.token, tt.mount, tt.secret)
			if tt.expectErr != "" {
				assert.EqualError(t, err, tt.expectErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestVaultProvider_Get(t *testing.T) {
	server := newVaultServer(t)

	tests := map[string]struct {
		secretPath string
		key        string
		want       string
		expectErr  bool
	}{
		"found":          {secretPath: "mcpweb", key: "OPENAI_API_KEY", want: "sk-vault"},
		"missing-key":    {secretPath: "mcpweb", key: "HTTP_PORT", expectErr: true},
		"non-string":     {secretPath: "mcpweb", key: "RETRIES", expectErr: true},
		"missing-secret": {secretPath: "other", key: "OPENAI_API_KEY", expectErr: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			vp, err := NewVaultProvider(server.URL, "root-token", "secret", tt.secretPath)
			require.NoError(t, err)

			got, err := vp.Get(context.Background(), tt.key)
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestInitVaultProvider_Initialize(t *testing.T) {
	t.Run("disabled-by-default", func(t *testing.T) {
		ivp := InitVaultProvider{Server: "-", Token: "-", MountPath: "secret", SecretPath: "mcpweb"}
		assert.False(t, ivp.Enabled())

		ctx, err := ivp.Initialize(context.Background())
		assert.NoError(t, err)
		assert.NotNil(t, ctx)
	})

	t.Run("missing-token", func(t *testing.T) {
		ivp := InitVaultProvider{Server: "http://localhost:8200", Token: "-", MountPath: "secret", SecretPath: "mcpweb"}
		assert.True(t, ivp.Enabled())

		_, err := ivp.Initialize(context.Background())
		assert.Error(t, err)
	})
}
