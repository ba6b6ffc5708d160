package log

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/diode"
	"github.com/rs/zerolog/log"
)

// Options controls the logger built by NewContextWithLogger.
type Options struct {
	Debug bool
	// JSON switches from console output to one JSON object per line.
	JSON bool
	// Out defaults to os.Stderr. Stdout is reserved for reports.
	Out io.Writer
}

func NewContextWithLogger(ctx context.Context, opts Options) (context.Context, func()) {
	if opts.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	out := opts.Out
	if out == nil {
		out = os.Stderr
	}

	// diode closes an io.Closer it wraps; hide Close so os.Stderr survives.
	// Size: 1000, Poll interval: 5ms
	wr := diode.NewWriter(struct{ io.Writer }{out}, 1000, 5*time.Millisecond, func(missed int) {
		fmt.Fprintf(os.Stderr, "Logger Dropped %d messages\n", missed)
	})

	var sink io.Writer = wr
	if !opts.JSON {
		sink = zerolog.ConsoleWriter{
			Out:        wr,
			TimeFormat: time.DateTime,
			PartsOrder: []string{
				zerolog.LevelFieldName,
				zerolog.TimestampFieldName,
				zerolog.MessageFieldName,
			},
		}
	}

	logger := zerolog.New(sink).
		With().
		Timestamp().
		Logger()

	log.Logger = logger

	return logger.WithContext(ctx), func() {
		wr.Close()
	}
}

// FromCtx returns the logger stored in ctx, or a disabled logger.
func FromCtx(ctx context.Context) *zerolog.Logger {
	return log.Ctx(ctx)
}
