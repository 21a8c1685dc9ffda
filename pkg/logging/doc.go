// Package logging provides structured logging utilities for vbanner.
//
// # Overview
//
// This package wraps the standard library slog package with vbanner defaults
// and conventions for consistent logging across all components. It supports
// environment-based log level configuration, module/version context injection,
// and automatic source location tracking for debug logs.
//
// # Features
//
//   - Structured JSON logging to stderr
//   - Environment-based log level configuration (LOG_LEVEL)
//   - Automatic module and version context
// Package logging configures structured JSON logging for vbanner on top of
// log/slog.
//
// # Features
//
//   - JSON output on stderr
//   - Automatic module and version context
//   - Source location tracking for debug logs
//   - Flexible log level parsing
//
// # Log Levels
//
// Supported log levels (case-insensitive):
//   - DEBUG: Detailed diagnostic information with source location
//   - INFO: General informational messages (default)
//   - WARN/WARNING: Warning messages for potentially problematic situations
//   - ERROR: Error messages for failures requiring attention
//
// # Usage
//
// Set the default logger once, as soon as the level is known:
//
//	logging.SetDefaultStructuredLoggerWithLevel("vbanner", "v1.0.0", "warn")
//
//	slog.Info("site rendered", "pages", 412)
//	slog.Debug("ignoring entry", "entry", "index")
//
// # Environment Configuration
//
// The CLI reads the level from --log-level, falling back to LOG_LEVEL:
//
//	LOG_LEVEL=debug vbanner site --manifest site.yaml
//	LOG_LEVEL=error vbanner render --manifest site.yaml --url /api/3.9.0/Suite
//
// If neither is set, defaults to INFO level.
//
// # Output Format
//
//	{
//	    "time": "2025-01-15T10:30:00.123Z",
//	    "level": "INFO",
//	    "msg": "site rendered",
//	    "module": "vbanner",
//	    "version": "v1.0.0",
//	    "pages": 412
//	}
//
// Debug logs include source location:
//
//	{
//	    "time": "2025-01-15T10:30:00.123Z",
//	    "level": "DEBUG",
//	    "source": {
//	        "function": "banner.(*Generator).Evaluate",
//	        "file": "banner.go",
//	        "line": 45
//	    },
//	    "msg": "evaluated page",
//	    "module": "vbanner",
//	    "version": "v1.0.0"
//	}
//
// # Integration
//
// This package is used by:
//   - pkg/cli - CLI command logging
//   - pkg/banner - Page evaluation and batch rendering
//   - pkg/version - Ignored entries at debug level
//   - pkg/serializer - File loading
package logging
