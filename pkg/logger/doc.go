// Package logger builds *slog.Logger values from functional options and adds
// helper attribute constructors with stable key names.
//
// New picks slog.NewTextHandler or slog.NewJSONHandler from the configured
// Format, applies static attributes, and wraps the result in
// LogHandlerDecorator, which runs the registered ContextExtractor callbacks
// on every record.
//
// # Usage
//
//	log := logger.New(
//		logger.WithEnvironment(cfg.Env, "regform"),
//		logger.WithRedactedKeys("password", "confirmPassword"),
//		logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//	logger.SetAsDefault(log)
//
//	log.InfoContext(ctx, "registration submitted",
//		logger.Submission(record, "fullName", "email", "password"),
//	)
//
// Error and Errors return an empty attribute for nil errors, so they can be
// passed without a nil check.
package logger
