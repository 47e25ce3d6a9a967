// Package notice models the one-shot messages shown to a user after an action,
// and mirrors each of them to the diagnostic log.
package notice

import (
	"fmt"

	"go.uber.org/zap"
)

type Kind string

const (
	KindSuccess Kind = "success"
	KindInfo    Kind = "info"
	KindWarning Kind = "warning"
	KindError   Kind = "error"
)

// Notice is shown once and then discarded by the front end.
type Notice struct {
	Kind  Kind   `json:"kind"`
	Title string `json:"title"`
	Text  string `json:"text"`
}

func Success(title, format string, args ...any) Notice {
	return Notice{Kind: KindSuccess, Title: title, Text: fmt.Sprintf(format, args...)}
}

func Info(title, format string, args ...any) Notice {
	return Notice{Kind: KindInfo, Title: title, Text: fmt.Sprintf(format, args...)}
}

func Warning(title, format string, args ...any) Notice {
	return Notice{Kind: KindWarning, Title: title, Text: fmt.Sprintf(format, args...)}
}

func Error(title, format string, args ...any) Notice {
	return Notice{Kind: KindError, Title: title, Text: fmt.Sprintf(format, args...)}
}

// Log writes n to the diagnostic channel at a level matching its kind.
// keysAndValues are appended to the structured fields.
func (n Notice) Log(logger *zap.SugaredLogger, keysAndValues ...any) {
	if logger == nil {
		return
	}
	fields := append([]any{"kind", string(n.Kind), "title", n.Title}, keysAndValues...)
	switch n.Kind {
	case KindError:
		logger.Errorw(n.Text, fields...)
	case KindWarning:
		logger.Warnw(n.Text, fields...)
	default:
		logger.Infow(n.Text, fields...)
	}
}
