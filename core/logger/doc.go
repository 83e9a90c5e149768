// Package logger provides log/slog attribute helpers with consistent
// keys for the kit's structured logging.
//
// Helpers follow the empty-Attr pattern: passing a nil error or empty
// string yields an attribute slog silently drops, so call sites never
// need nil checks:
//
//	log.LogAttrs(ctx, slog.LevelInfo, "request finished",
//		logger.Method(r.Method),
//		logger.Path(r.URL.Path),
//		logger.Status(status),
//		logger.Duration(elapsed),
//		logger.Error(err), // dropped when err is nil
//	)
package logger
