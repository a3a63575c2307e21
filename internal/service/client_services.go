package service

import (
	"github.com/MKhiriev/nim-client/internal/adapter"
	"github.com/MKhiriev/nim-client/internal/logger"
)

// ClientServices groups the services used by the client application.
type ClientServices struct {
	AuthService ClientAuthService
}

// NewClientServices builds the client services on top of api. All
// dependencies are required.
func NewClientServices(api adapter.NimAPI, display DisplaySink, errs ErrorSink, logger *logger.Logger) (*ClientServices, error) {
	if api == nil || display == nil || errs == nil || logger == nil {
		return nil, ErrMissingDependency
	}

	return &ClientServices{
		AuthService: NewClientAuthService(api, display, errs, logger),
	}, nil
}
