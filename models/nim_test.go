package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, raw string) any {
	t.Helper()
	var v any
	require.NoError(t, json.Unmarshal([]byte(raw), &v))
	return v
}

func TestAsLoginStatus(t *testing.T) {
	tests := []struct {
		name         string
		raw          string
		wantOK       bool
		wantLoggedIn bool
		wantIdentity string
	}{
		{name: "logged in", raw: `{"identity":"alice"}`, wantOK: true, wantLoggedIn: true, wantIdentity: "alice"},
		{name: "logged out", raw: `{"identity":null}`, wantOK: true},
		{name: "missing key", raw: `{"error":"LoginFailed"}`},
		{name: "wrong type", raw: `{"identity":42}`},
		{name: "not an object", raw: `["alice"]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, ok := AsLoginStatus(decode(t, tt.raw))
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantLoggedIn, status.LoggedIn())
			if tt.wantIdentity != "" {
				require.NotNil(t, status.Identity)
				assert.Equal(t, tt.wantIdentity, *status.Identity)
			}
		})
	}
}

func TestAsErrorResult(t *testing.T) {
	res, ok := AsErrorResult(decode(t, `{"error":"ApiNotDefined","parameter":{"route":"game/x","n":1}}`))
	require.True(t, ok)
	assert.Equal(t, ErrorCodeAPINotDefined, res.Error)
	assert.Equal(t, map[string]string{"route": "game/x"}, res.Parameter)

	res, ok = AsErrorResult(decode(t, `{"error":"LoginFailed"}`))
	require.True(t, ok)
	assert.Equal(t, ErrorCodeLoginFailed, res.Error)
	assert.Nil(t, res.Parameter)

	_, ok = AsErrorResult(decode(t, `{"identity":"alice"}`))
	assert.False(t, ok)

	_, ok = AsErrorResult(nil)
	assert.False(t, ok)
}
