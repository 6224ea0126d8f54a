// Package logger builds the zap logger shared by the CLI and the HTTP API.
//
// Level "debug" selects zap's development preset, any other level the production
// preset. Format "console" prints human-readable lines with ISO8601 times; "json"
// prints one object per entry. Both write to stderr, leaving stdout to the report.
//
// Request handlers use WithRayID so every entry of one request carries its ray_id:
//
//	l := logger.WithRayID(log, c)
//	l.Error("Count failed", zap.String("kind", fault.Kind(err)), zap.Error(err))
//
// Credentials are never passed to a logger; log the location, not the job.
package logger
