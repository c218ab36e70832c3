package compass

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// compassLog is the package sub-logger; every record carries module=compass.
var compassLog zerolog.Logger = log.With().Str("module", "compass").Logger()
