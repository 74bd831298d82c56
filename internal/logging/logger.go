package logging

import (
	"io"
	"log/slog"
	"os"
)

// New builds the service logger: JSON records to stdout, optionally mirrored
// to a Logstash TCP input. The returned closer is a no-op when no mirror is
// configured.
func New(logstashAddr string) (*slog.Logger, func() error) {
	var out io.Writer = os.Stdout
	closer := func() error { return nil }

	if logstashAddr != "" {
		if lw, err := NewLogstashWriter(logstashAddr); err == nil {
			out = io.MultiWriter(os.Stdout, lw)
			closer = lw.Close
		}
	}

	return slog.New(slog.NewJSONHandler(out, nil)), closer
}
