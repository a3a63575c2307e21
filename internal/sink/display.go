package sink

import (
	"context"
	"encoding/json"
	"io"
	"sync"

	"github.com/MKhiriev/nim-client/internal/logger"
)

// JSONDisplay writes every value as one line of compact JSON.
type JSONDisplay struct {
	mu     sync.Mutex
	out    io.Writer
	logger *logger.Logger
}

func NewJSONDisplay(out io.Writer, logger *logger.Logger) *JSONDisplay {
	return &JSONDisplay{out: out, logger: logger}
}

func (d *JSONDisplay) Display(ctx context.Context, op string, value any) {
	line, err := json.Marshal(value)
	if err != nil {
		d.logger.Err(err).Str("op", op).Msg("cannot encode value for display")
		return
	}
	line = append(line, '\n')

	d.mu.Lock()
	defer d.mu.Unlock()

	if _, err = d.out.Write(line); err != nil {
		d.logger.Err(err).Str("op", op).Msg("cannot write value")
	}
}
