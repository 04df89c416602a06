package impl

import (
	"io"
	"log/slog"
	"time"
)

const testSecond = time.Second

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
