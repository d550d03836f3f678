package logger

import (
	"io"
	"os"
	"time"

	"hoteladmin/config"
	"hoteladmin/shared/constant"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/rs/zerolog/pkgerrors"
)

// InitLogger installs a console logger that prints everything until
// SetLogLevel narrows it.
func InitLogger() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack
	zerolog.SetGlobalLevel(zerolog.TraceLevel)

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})
}

// SetOutput switches to structured JSON lines on w outside development,
// where log collectors expect one object per line.
func SetOutput(config *config.Config, w io.Writer) {
	switch config.Server.Env {
	case "", constant.ServerEnvDevelopment:
		return
	}

	zerolog.TimeFieldFormat = time.RFC3339Nano
	log.Logger = zerolog.New(w).With().
		Timestamp().
		Str("service", config.App.Name).
		Str("env", config.Server.Env).
		Logger()
}

// SetLogLevel applies LOG_LEVEL. An unparsable value keeps trace level.
func SetLogLevel(config *config.Config) {
	level, err := zerolog.ParseLevel(config.Server.LogLevel)
	if err != nil {
		level = zerolog.TraceLevel
	}

	zerolog.SetGlobalLevel(level)

	log.Debug().Str("loglevel", level.String()).Msg("log level set")
}

// ErrorWithStack logs err together with the stack that reached this call.
func ErrorWithStack(err error) {
	log.Error().Stack().Err(errors.WithStack(err)).Msg("unexpected error")
}
