package nimtest

import (
	"encoding/json"
	"net/http"
	"net/http/cookiejar"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func getJSON(t *testing.T, c *http.Client, method, url, body string) (int, map[string]any) {
	t.Helper()
	req, err := http.NewRequest(method, url, strings.NewReader(body))
	require.NoError(t, err)

	resp, err := c.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return resp.StatusCode, out
}

func TestServer_SessionFlow(t *testing.T) {
	srv := NewServer(t, map[string]string{"alice": "secret"})
	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	c := &http.Client{Jar: jar}

	status, body := getJSON(t, c, http.MethodGet, srv.URL+"/api/identity", "")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, map[string]any{"identity": nil}, body)

	status, body = getJSON(t, c, http.MethodPost, srv.URL+"/api/login", `{"username":"alice","password":"secret"}`)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, map[string]any{"identity": "alice"}, body)

	_, body = getJSON(t, c, http.MethodGet, srv.URL+"/api/identity", "")
	assert.Equal(t, map[string]any{"identity": "alice"}, body)

	_, body = getJSON(t, c, http.MethodGet, srv.URL+"/api/logout", "")
	assert.Equal(t, map[string]any{"identity": nil}, body)

	_, body = getJSON(t, c, http.MethodGet, srv.URL+"/api/identity", "")
	assert.Equal(t, map[string]any{"identity": nil}, body)

	assert.Len(t, srv.Requests(), 5)
}

func TestServer_LoginFailed(t *testing.T) {
	srv := NewServer(t, map[string]string{"alice": "secret"})

	status, body := getJSON(t, http.DefaultClient, http.MethodPost, srv.URL+"/api/login", `{"username":"alice","password":"nope"}`)

	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, map[string]any{"error": "LoginFailed"}, body)
}

func TestServer_UnknownAPIRoute(t *testing.T) {
	srv := NewServer(t, nil)

	status, body := getJSON(t, http.DefaultClient, http.MethodGet, srv.URL+"/api/game/list", "")

	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, map[string]any{
		"error":     "ApiNotDefined",
		"parameter": map[string]any{"route": "game/list"},
	}, body)
}

func TestServer_RecordsBody(t *testing.T) {
	srv := NewServer(t, nil)

	_, _ = getJSON(t, http.DefaultClient, http.MethodPost, srv.URL+"/api/login", `{"username":"x","password":"y"}`)

	reqs := srv.Requests()
	require.Len(t, reqs, 1)
	assert.Equal(t, http.MethodPost, reqs[0].Method)
	assert.Equal(t, "/api/login", reqs[0].Path)
	assert.JSONEq(t, `{"username":"x","password":"y"}`, string(reqs[0].Body))
}
