package logging

import (
	"github.com/rs/zerolog"
)

// Dump logs the contents of v at Debug level, with the concrete type
// alongside. Structs, maps, and slices are serialized through zerolog's
// JSON marshaling. A no-op when debug is disabled on l.
func Dump(l zerolog.Logger, v interface{}) {
	if l.GetLevel() > zerolog.DebugLevel {
		return
	}
	if v == nil {
		l.Debug().Msg("dump: <nil>")
		return
	}
	l.Debug().Type("type", v).Interface("value", v).Msg("dump")
}
