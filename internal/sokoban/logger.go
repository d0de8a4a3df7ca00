package sokoban

import (
	"io"

	"github.com/charmbracelet/log"
)

// Logger is the sink the engine reports to. *log.Logger satisfies it.
type Logger interface {
	Debug(msg any, keyvals ...any)
	Info(msg any, keyvals ...any)
	Warn(msg any, keyvals ...any)
	Error(msg any, keyvals ...any)
}

// orDiscard also catches a nil *log.Logger stored in the interface.
func orDiscard(l Logger) Logger {
	if ll, ok := l.(*log.Logger); l == nil || (ok && ll == nil) {
		return log.New(io.Discard)
	}
	return l
}
