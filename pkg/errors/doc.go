// Package errors provides structured error types for programmatic error
// handling across vbanner.
//
// Example usage:
//
//	err := errors.WrapWithContext(
//	    errors.ErrCodeNoStableVersion,
//	    "unable to determine latest stable version",
//	    version.ErrNoStableVersion,
//	    map[string]any{
//	        "collection": "api",
//	    },
//	)
//
//	if errors.HasCode(err, errors.ErrCodeNoStableVersion) {
//	    slog.Warn("skipping banner", "error", err)
//	}
package errors
