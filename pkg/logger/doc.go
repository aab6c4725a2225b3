// Package logger builds *slog.Logger instances with functional options and
// injects request-scoped values from context.Context into every record.
//
// New picks a text or JSON handler, applies static attributes and wraps the
// handler so that registered ContextExtractor callbacks run on each Handle
// call. Attribute helpers in attr.go keep key names consistent across
// packages (session_id, partition_key, request_id, ...).
//
// # Usage
//
//	import "github.com/dmitrymomot/dfcsession/pkg/logger"
//
//	log := logger.New(
//	    logger.WithEnvironment("production", "sessiond"),
//	    logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//	logger.SetAsDefault(log)
//
//	log.WarnContext(ctx, "session id not valid", logger.SessionID(id))
//
// Libraries that accept an optional logger default to Discard, which drops
// every record without formatting it.
//
// # Error Handling
//
// Error and Errors return an empty attribute for nil errors, so they can be
// passed unconditionally:
//
//	log.Info("done", logger.Error(err))
package logger
