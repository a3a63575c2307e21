package sink

import (
	"context"
	"errors"

	"github.com/MKhiriev/nim-client/internal/adapter"
	"github.com/MKhiriev/nim-client/internal/app"
	"github.com/MKhiriev/nim-client/internal/logger"
	"github.com/MKhiriev/nim-client/internal/utils"
)

// LogErrorSink reports call failures as error-level log entries.
type LogErrorSink struct {
	logger *logger.Logger
}

func NewLogErrorSink(logger *logger.Logger) *LogErrorSink {
	return &LogErrorSink{logger: logger}
}

func (s *LogErrorSink) Report(ctx context.Context, op string, err error) {
	ev := s.logger.Error().Err(err).Str("op", op)
	if traceID, ok := utils.GetTraceIDFromContext(ctx); ok {
		ev = ev.Str("trace_id", traceID)
	}

	var decodeErr *adapter.DecodeError
	switch {
	case errors.As(err, &decodeErr):
		ev = ev.Int("status", decodeErr.StatusCode).Str("body", decodeErr.Body)
		ev.Msg(app.MsgInvalidServerReply)
	case errors.Is(err, adapter.ErrNetwork):
		ev.Msg(app.MsgServerUnreachable)
	default:
		ev.Msg(app.MsgRequestFailed)
	}
}
