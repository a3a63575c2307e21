package adapter

import (
	"context"
	"fmt"

	"github.com/MKhiriev/nim-client/models"
)

// nim API endpoints.
const (
	LoginPath    = "/api/login"
	LogoutPath   = "/api/logout"
	IdentityPath = "/api/identity"
)

type nimAPI struct {
	client JSONClient
}

// NewNimAPI binds client to the nim authentication endpoints.
func NewNimAPI(client JSONClient) NimAPI {
	return &nimAPI{client: client}
}

// Login implements [NimAPI]. The request body is a JSON object with exactly
// the "username" and "password" keys. Key order is not preserved: the keys
// go on the wire sorted, as {"password":...,"username":...}.
func (n *nimAPI) Login(ctx context.Context, creds models.Credentials) (any, error) {
	value, err := n.client.PostJSON(ctx, LoginPath, creds.Payload())
	if err != nil {
		return nil, fmt.Errorf("login request: %w", err)
	}

	return value, nil
}

// Logout implements [NimAPI].
func (n *nimAPI) Logout(ctx context.Context) (any, error) {
	value, err := n.client.GetJSON(ctx, LogoutPath)
	if err != nil {
		return nil, fmt.Errorf("logout request: %w", err)
	}

	return value, nil
}

// Identity implements [NimAPI].
func (n *nimAPI) Identity(ctx context.Context) (any, error) {
	value, err := n.client.GetJSON(ctx, IdentityPath)
	if err != nil {
		return nil, fmt.Errorf("identity request: %w", err)
	}

	return value, nil
}
