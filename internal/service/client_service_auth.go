package service

import (
	"context"

	"github.com/MKhiriev/nim-client/internal/adapter"
	"github.com/MKhiriev/nim-client/internal/app"
	"github.com/MKhiriev/nim-client/internal/logger"
	"github.com/MKhiriev/nim-client/internal/utils"
	"github.com/MKhiriev/nim-client/models"
)

type clientAuthService struct {
	api     adapter.NimAPI
	display DisplaySink
	errs    ErrorSink

	logger *logger.Logger
}

func NewClientAuthService(api adapter.NimAPI, display DisplaySink, errs ErrorSink, logger *logger.Logger) ClientAuthService {
	return &clientAuthService{api: api, display: display, errs: errs, logger: logger}
}

func (a *clientAuthService) Login(ctx context.Context, creds models.Credentials) (any, error) {
	ctx = withCallTraceID(ctx)
	a.logger.Debug().Object("credentials", creds).Msg("sending login request")

	value, err := a.api.Login(ctx, creds)
	return a.deliver(ctx, OpLogin, value, err)
}

func (a *clientAuthService) Logout(ctx context.Context) (any, error) {
	ctx = withCallTraceID(ctx)
	value, err := a.api.Logout(ctx)
	return a.deliver(ctx, OpLogout, value, err)
}

func (a *clientAuthService) Identity(ctx context.Context) (any, error) {
	ctx = withCallTraceID(ctx)
	value, err := a.api.Identity(ctx)
	return a.deliver(ctx, OpIdentity, value, err)
}

// withCallTraceID gives the call one trace ID shared by the request and the
// sinks. A trace ID already in ctx is kept.
func withCallTraceID(ctx context.Context) context.Context {
	if _, ok := utils.GetTraceIDFromContext(ctx); ok {
		return ctx
	}
	return utils.WithTraceID(ctx, utils.NewTraceID())
}

// deliver hands the outcome of a single call to exactly one sink.
func (a *clientAuthService) deliver(ctx context.Context, op string, value any, err error) (any, error) {
	if err != nil {
		a.errs.Report(ctx, op, err)
		return nil, err
	}

	a.describe(op, value)
	a.display.Display(ctx, op, value)
	return value, nil
}

// describe logs what the reply means when it has a known nim shape.
func (a *clientAuthService) describe(op string, value any) {
	if res, ok := models.AsErrorResult(value); ok {
		a.logger.Warn().
			Str("op", op).
			Str("code", res.Error).
			Str("reason", app.DescribeErrorCode(res.Error)).
			Interface("parameter", res.Parameter).
			Msg("server rejected request")
		return
	}

	if status, ok := models.AsLoginStatus(value); ok {
		ev := a.logger.Debug().Str("op", op).Bool("logged_in", status.LoggedIn())
		if status.LoggedIn() {
			ev = ev.Str("identity", *status.Identity)
		}
		ev.Msg("session state")
	}
}
