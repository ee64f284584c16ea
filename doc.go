// Package logging provides a thin, opinionated configuration layer over
// rs/zerolog: loggers built with sensible defaults (pretty console output in
// development, JSON in production), module-scoped child loggers, and
// formatting helpers for errors and HTTP requests.
//
// Key features
//   - One Config struct resolved into a concrete zerolog logger; production
//     mode forces level info and plain JSON output
//   - A LoggerSet deriving module-bound children (route, db, middleware,
//     auth, external) from a single root logger
//   - LogError enrichment: records carry the full error chain
//     (outermost -> root) and the root cause string
//   - LogRequest maps HTTP status codes to severities and emits a
//     "METHOD PATH STATUS DURms" summary line
//   - Optional rolling-file output via lumberjack and an environment-seeded
//     process-wide default LoggerSet
//
// Typical usage
//
//	log, err := logging.New(logging.Config{Name: "api", Level: "debug"})
//	if err != nil {
//		panic(err)
//	}
//	log.Info().Str("user_id", id).Msg("processed")
//
//	set, _ := logging.NewSet(logging.Config{Name: "api"})
//	set.DB.Debug().Str("query", q).Msg("executed")
//	logging.LogRequest(set.Route, "GET", "/api/users", 200, elapsed, nil)
package logging
