package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/shopspring/decimal"
)

type Options struct {
	Service   string
	Env       string
	Level     string
	AddSource bool

	// Output defaults to stdout.
	Output io.Writer
}

// New builds the JSON logger every component shares and installs it as the
// slog default.
func New(opts Options) *slog.Logger {
	out := opts.Output
	if out == nil {
		out = os.Stdout
	}

	h := slog.NewJSONHandler(out, &slog.HandlerOptions{
		Level:       parseLevel(opts.Level),
		AddSource:   opts.AddSource,
		ReplaceAttr: moneyAttr,
	})

	l := slog.New(h).With(
		slog.String("service", opts.Service),
		slog.String("env", opts.Env),
	)
	slog.SetDefault(l)
	return l
}

// moneyAttr logs decimal amounts as fixed two-place strings.
func moneyAttr(_ []string, a slog.Attr) slog.Attr {
	if a.Value.Kind() != slog.KindAny {
		return a
	}
	if d, ok := a.Value.Any().(decimal.Decimal); ok {
		return slog.String(a.Key, d.StringFixed(2))
	}
	return a
}

func parseLevel(lvl string) slog.Level {
	s := strings.TrimSpace(lvl)
	if strings.EqualFold(s, "warning") {
		return slog.LevelWarn
	}

	var l slog.Level
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo
	}
	return l
}
