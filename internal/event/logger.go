// internal/event/logger.go
package event

import "log"

// Logger writes every event it receives to a standard logger.
type Logger struct {
	out *log.Logger
}

// NewLogger logs through out, or the standard logger when out is nil.
func NewLogger(out *log.Logger) *Logger {
	if out == nil {
		out = log.Default()
	}
	return &Logger{out: out}
}

func (l *Logger) OnEvent(e Event) {
	switch data := e.Data.(type) {
	case EnemyKilledData:
		l.out.Printf("%s: reward %.0f", e.Type, data.Reward)
	case ResourceCollectedData:
		l.out.Printf("%s: value %d, by pointer %v", e.Type, data.Value, data.ByPointer)
	case nil:
		l.out.Printf("%s", e.Type)
	default:
		l.out.Printf("%s: %+v", e.Type, data)
	}
}
