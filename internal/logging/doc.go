// Package logging provides structured logging for the signup client.
//
// This package wraps Go's log/slog to write JSON lines. The interactive
// board owns the terminal, so it always logs to a file; one-shot commands
// log to the same file unless logging is disabled.
//
// # Basic Usage
//
//	logger, err := logging.NewLogger(dir, "INFO")
//	if err != nil {
//	    return err
//	}
//	defer logger.Close()
//
//	apiLog := logger.WithComponent("api")
//	apiLog.WithRequest(id).Error("sign-up failed", "activity", name, "error", err.Error())
//
// Output:
//
//	{"time":"...","level":"ERROR","msg":"sign-up failed","component":"api","request_id":"...","activity":"Chess Club","error":"..."}
//
// # Thread Safety
//
// All types in this package are safe for concurrent use. Child loggers
// created via With* share the parent's writer and file handle.
package logging
