package cli

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/folio/backend/internal/model"
)

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := NewRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func contactsServer(t *testing.T, token string) *httptest.Server {
	t.Helper()
	msgs := []*model.ContactMessage{
		{ID: 1, Name: "Jane Smith", Email: "jane@example.com", Message: "Hello", CreatedAt: time.Now()},
		{ID: 2, Name: "Bob", Email: "bob@example.com", Message: "re: jane project", CreatedAt: time.Now()},
		{ID: 3, Name: "Carol", Email: "carol@example.org", Message: "Other", CreatedAt: time.Now()},
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if token != "" && r.Header.Get("Authorization") != "Bearer "+token {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		_ = json.NewEncoder(w).Encode(msgs)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestContactSend(t *testing.T) {
	var got map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&got)
		_, _ = w.Write([]byte(`{"success":true,"message":"Message sent successfully!","contact":{"id":7}}`))
	}))
	defer srv.Close()

	out, _, err := run(t, "contact", "send", "--api-url", srv.URL,
		"--name", "Ann", "--email", "ann@example.com", "--message", "Hi")
	require.NoError(t, err)
	assert.Contains(t, out, "Thank you!")
	assert.Contains(t, out, "id: 7")
	assert.Equal(t, "ann@example.com", got["email"])
}

func TestContactSend_InvalidInput(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	_, errOut, err := run(t, "contact", "send", "--simulate", "--name", "Ann", "--email", "bad", "--message", "Hi")
	require.Error(t, err)
	assert.Contains(t, errOut, "email:")
}

func TestContactSend_Simulate(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	out, _, err := run(t, "contact", "send", "--simulate", "--name", "Ann", "--email", "ann@example.com", "--message", "Hi")
	require.NoError(t, err)
	assert.Contains(t, out, "simulated")
}

func TestContactSend_SimulateRefusedInProduction(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	_, _, err := run(t, "contact", "send", "--simulate", "--name", "Ann", "--email", "ann@example.com", "--message", "Hi")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "APP_ENV=production")
}

func TestAdminList(t *testing.T) {
	srv := contactsServer(t, "")

	out, _, err := run(t, "admin", "list", "--api-url", srv.URL, "--query", "jane")
	require.NoError(t, err)
	assert.Contains(t, out, "Jane Smith")
	assert.Contains(t, out, "bob@example.com")
	assert.NotContains(t, out, "carol@example.org")
}

func TestAdminList_TokenFromEnv(t *testing.T) {
	srv := contactsServer(t, "s3cret")
	t.Setenv("FOLIO_API_URL", srv.URL)

	_, _, err := run(t, "admin", "list")
	require.Error(t, err)

	t.Setenv("FOLIO_ADMIN_TOKEN", "s3cret")
	out, _, err := run(t, "admin", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Carol")
}

func TestAdminList_ConfigFile(t *testing.T) {
	srv := contactsServer(t, "")
	cfg := filepath.Join(t.TempDir(), "folio.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("api-url: "+srv.URL+"\n"), 0o600))

	out, _, err := run(t, "--config", cfg, "admin", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "3 total")
}

func TestAdminReply(t *testing.T) {
	srv := contactsServer(t, "")

	out, _, err := run(t, "admin", "reply", "2", "--api-url", srv.URL)
	require.NoError(t, err)
	assert.Equal(t, "mailto:bob@example.com?subject=Re%3A%20Your%20message\n", out)

	out, _, err = run(t, "admin", "reply", "2", "--email-only", "--api-url", srv.URL)
	require.NoError(t, err)
	assert.Equal(t, "bob@example.com\n", out)

	_, _, err = run(t, "admin", "reply", "42", "--api-url", srv.URL)
	assert.ErrorContains(t, err, "no message with id 42")

	_, _, err = run(t, "admin", "reply", "abc", "--api-url", srv.URL)
	assert.ErrorContains(t, err, "invalid id")
}
