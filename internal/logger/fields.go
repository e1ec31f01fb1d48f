package logger

import (
	"time"

	"go.uber.org/zap"
)

// String creates a field with a string value
func String(key, val string) Field {
	return zap.String(key, val)
}

// Int creates a field with an int value
func Int(key string, val int) Field {
	return zap.Int(key, val)
}

// Int64 creates a field with an int64 value
func Int64(key string, val int64) Field {
	return zap.Int64(key, val)
}

// Bool creates a field with a boolean value
func Bool(key string, val bool) Field {
	return zap.Bool(key, val)
}

// Duration creates a field with a time.Duration value
func Duration(key string, val time.Duration) Field {
	return zap.Duration(key, val)
}

// Time creates a field with a time.Time value
func Time(key string, val time.Time) Field {
	return zap.Time(key, val)
}

// Error creates a field for an error value under the key "error"
func Error(err error) Field {
	return zap.Error(err)
}

// Any creates a field with an arbitrary value. Prefer the typed constructors
// when possible; Any falls back to reflection.
func Any(key string, val any) Field {
	return zap.Any(key, val)
}
