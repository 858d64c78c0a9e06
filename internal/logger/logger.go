package logger

import (
	"os"

	"github.com/rs/zerolog"
)

// New создает логгер для указанного компонента приложения
func New(component string) zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		With().
		Timestamp().
		Str("component", component).
		Logger()
}
