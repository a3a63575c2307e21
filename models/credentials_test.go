package models

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCredentials_Payload(t *testing.T) {
	creds := Credentials{Username: "a", Password: "b"}

	body, err := json.Marshal(creds.Payload())
	require.NoError(t, err)
	assert.JSONEq(t, `{"username":"a","password":"b"}`, string(body))
}

// TestCredentials_PayloadRoundTrip verifies that the encoded request body
// decodes back into the same mapping, including non-ASCII and escaped input.
func TestCredentials_PayloadRoundTrip(t *testing.T) {
	for _, creds := range []Credentials{
		{},
		{Username: "alice", Password: "s3cret"},
		{Username: "Jürgen", Password: `quote" back\slash <tag> &`},
		{Username: "名前", Password: " \t\n"},
	} {
		payload := creds.Payload()

		body, err := json.Marshal(payload)
		require.NoError(t, err)

		var decoded map[string]string
		require.NoError(t, json.Unmarshal(body, &decoded))
		assert.Equal(t, payload, decoded)
	}
}

func TestCredentials_MarshalZerologObject_HidesPassword(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf)

	log.Info().Object("credentials", Credentials{Username: "alice", Password: "hunter2"}).Msg("login")

	assert.Contains(t, buf.String(), `"username":"alice"`)
	assert.Contains(t, buf.String(), `"password_set":true`)
	assert.NotContains(t, buf.String(), "hunter2")
}
