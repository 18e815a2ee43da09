package log

import "time"

// Logger is the sink the renderer, watcher and CLI write to.
// NewZerologLogger backs it with zerolog; NewNoopLogger discards everything.
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
}

// Field is one key/value attached to a message. Values are rendered by the
// backend according to their dynamic type.
type Field struct {
	Key   string
	Value interface{}
}

func String(key, value string) Field                 { return Field{key, value} }
func Int(key string, value int) Field                { return Field{key, value} }
func Float64(key string, value float64) Field        { return Field{key, value} }
func Bool(key string, value bool) Field              { return Field{key, value} }
func Duration(key string, value time.Duration) Field { return Field{key, value} }

// Err attaches err under the "error" key.
func Err(err error) Field { return Field{"error", err} }

// Any attaches a value of any type; the zerolog backend encodes it as JSON.
func Any(key string, value interface{}) Field { return Field{key, value} }
