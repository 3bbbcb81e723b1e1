package logging

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Component creates a logger tagged with a component identifier under the
// "cmp" key. It derives from the global logger, so call it after the global
// logger is configured.
func Component(name string) zerolog.Logger {
	return log.With().Str("cmp", name).Logger()
}
