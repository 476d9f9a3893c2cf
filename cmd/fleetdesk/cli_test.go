package main

import (
	"bytes"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fleetdesk/internal/prefs"
	"fleetdesk/internal/routes"
	"fleetdesk/internal/store/storetest"
)

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestCompaniesCommands(t *testing.T) {
	gin.SetMode(gin.TestMode)
	srv := httptest.NewServer(routes.SetupRouter(routes.Deps{Store: storetest.Open(t)}))
	defer srv.Close()
	prefsFile := filepath.Join(t.TempDir(), "prefs.json")
	common := []string{"--server", srv.URL, "--prefs", prefsFile}

	out, err := execute(t, "", append([]string{"companies", "add", "--name", "Acme", "--address", "1 Main St", "--phone", "555-0100", "--color", "green"}, common...)...)
	require.NoError(t, err, out)
	assert.Contains(t, out, "Created company 1 (Acme)")

	color, ok, err := prefs.NewCompanyColors(prefs.NewFileStorage(prefsFile)).Get(1)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "green", color)

	out, err = execute(t, "", append([]string{"companies", "list"}, common...)...)
	require.NoError(t, err, out)
	assert.Contains(t, out, "Acme")
	assert.Contains(t, out, "green")

	out, err = execute(t, "n\n", append([]string{"companies", "delete", "1"}, common...)...)
	require.NoError(t, err, out)
	assert.Contains(t, out, "[y/N]")
	assert.Contains(t, out, "Nothing deleted")

	out, err = execute(t, "y\n", append([]string{"companies", "delete", "1"}, common...)...)
	require.NoError(t, err, out)
	assert.Contains(t, out, "Deleted company 1")

	_, ok, err = prefs.NewCompanyColors(prefs.NewFileStorage(prefsFile)).Get(1)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestDriversListShowPINOnce(t *testing.T) {
	gin.SetMode(gin.TestMode)
	srv := httptest.NewServer(routes.SetupRouter(routes.Deps{Store: storetest.Open(t)}))
	defer srv.Close()
	common := []string{"--server", srv.URL, "--prefs", filepath.Join(t.TempDir(), "prefs.json")}

	out, err := execute(t, "", append([]string{"drivers", "add", "--name", "Jane", "--license", "DL-1", "--pin", "4321"}, common...)...)
	require.NoError(t, err, out)

	out, err = execute(t, "", append([]string{"drivers", "list", "--show-pin", "1,1"}, common...)...)
	require.NoError(t, err, out)
	assert.Contains(t, out, "4321")

	assert.Equal(t, []uint{1, 3}, uniqueIDs([]uint{3, 1, 3, 1}))
}

func TestContactCommandPrintsMailto(t *testing.T) {
	out, err := execute(t, "", "contact", "--suggestion", "--to", "ops@example.com",
		"--name", "Ann", "--email", "ann@example.com", "-m", "Night shuttle")
	require.NoError(t, err, out)
	assert.Contains(t, out, "mailto:ops@example.com?subject=%5BSuggestion%5D%20New%20idea%20from%20Ann")
	assert.Contains(t, out, "IDEA%2FSUGGESTION%3A%0ANight%20shuttle")
}

func TestPromptConfirm(t *testing.T) {
	for input, want := range map[string]bool{"y\n": true, "YES\n": true, "\n": false, "no\n": false, "": false} {
		var out bytes.Buffer
		got, err := promptConfirm{in: strings.NewReader(input), out: &out}.Confirm("Delete?")
		require.NoError(t, err)
		assert.Equal(t, want, got, "input %q", input)
		assert.Equal(t, "Delete? [y/N]: ", out.String())
	}
}
