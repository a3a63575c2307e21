package client

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/nim-client/internal/adapter"
	"github.com/MKhiriev/nim-client/internal/config"
	"github.com/MKhiriev/nim-client/internal/logger"
	"github.com/MKhiriev/nim-client/internal/mock"
	"github.com/MKhiriev/nim-client/internal/nimtest"
	"github.com/MKhiriev/nim-client/internal/service"
	"github.com/MKhiriev/nim-client/internal/sink"
	"github.com/MKhiriev/nim-client/internal/validators"
	"github.com/MKhiriev/nim-client/models"
)

func newMockedApp(t *testing.T, args ...string) (*App, *mock.MockClientAuthService) {
	t.Helper()
	ctrl := gomock.NewController(t)
	auth := mock.NewMockClientAuthService(ctrl)

	app, err := NewApp(&service.ClientServices{AuthService: auth}, validators.NewCommandValidator(), args, logger.Nop())
	require.NoError(t, err)

	return app, auth
}

func TestNewApp_InvalidCommandLine(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr error
	}{
		{name: "no commands", args: nil, wantErr: validators.ErrNoCommandsToRun},
		{name: "unknown command", args: []string{"identity", "whoami"}, wantErr: validators.ErrUnknownCommand},
		{name: "missing password", args: []string{"login", "alice"}, wantErr: validators.ErrWrongArgCount},
		{name: "empty username", args: []string{"login", "", "pw"}, wantErr: validators.ErrEmptyUsername},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, err := NewApp(&service.ClientServices{}, validators.NewCommandValidator(), tt.args, logger.Nop())

			assert.Nil(t, app)
			assert.ErrorIs(t, err, ErrInvalidCommandLine)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestApp_Run_InOrder(t *testing.T) {
	app, auth := newMockedApp(t, "login", "alice", "secret", "identity", "logout")
	ctx := context.Background()

	gomock.InOrder(
		auth.EXPECT().Login(ctx, models.Credentials{Username: "alice", Password: "secret"}).Return(map[string]any{"identity": "alice"}, nil),
		auth.EXPECT().Identity(ctx).Return(map[string]any{"identity": "alice"}, nil),
		auth.EXPECT().Logout(ctx).Return(map[string]any{"identity": nil}, nil),
	)

	require.NoError(t, app.Run(ctx))
}

func TestApp_Run_ContinuesAfterFailure(t *testing.T) {
	app, auth := newMockedApp(t, "identity", "logout")
	ctx := context.Background()

	netErr := &adapter.NetworkError{Method: "GET", URL: adapter.IdentityPath, Err: assert.AnError}
	gomock.InOrder(
		auth.EXPECT().Identity(ctx).Return(nil, netErr),
		auth.EXPECT().Logout(ctx).Return(map[string]any{"identity": nil}, nil),
	)

	err := app.Run(ctx)

	require.ErrorIs(t, err, ErrCommandsFailed)
	assert.ErrorIs(t, err, adapter.ErrNetwork)
	assert.Contains(t, err.Error(), "identity: ")
}

func TestApp_Run_StopsOnCancelledContext(t *testing.T) {
	app, _ := newMockedApp(t, "identity", "logout")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := app.Run(ctx)

	assert.ErrorIs(t, err, context.Canceled)
}

// TestApp_Run_AgainstServer runs a full command line through the real
// adapter, services and sinks against the fake nim API.
func TestApp_Run_AgainstServer(t *testing.T) {
	srv := nimtest.NewServer(t, map[string]string{"alice": "secret"})

	api, err := adapter.NewHTTPJSONClient(config.ClientAdapter{HTTPAddress: srv.URL}, logger.Nop())
	require.NoError(t, err)

	var out bytes.Buffer
	services, err := service.NewClientServices(
		adapter.NewNimAPI(api),
		sink.NewJSONDisplay(&out, logger.Nop()),
		sink.NewLogErrorSink(logger.Nop()),
		logger.Nop(),
	)
	require.NoError(t, err)

	app, err := NewApp(services, validators.NewCommandValidator(),
		[]string{"identity", "login", "alice", "wrong", "login", "alice", "secret", "identity", "logout", "identity"},
		logger.Nop())
	require.NoError(t, err)

	require.NoError(t, app.Run(context.Background()))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	assert.Equal(t, []string{
		`{"identity":null}`,
		`{"error":"LoginFailed"}`,
		`{"identity":"alice"}`,
		`{"identity":"alice"}`,
		`{"identity":null}`,
		`{"identity":null}`,
	}, lines)
	assert.Len(t, srv.Requests(), 6)
}
