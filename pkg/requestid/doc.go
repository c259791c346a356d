// Package requestid attaches a correlation id to every HTTP request.
//
// Middleware reuses a client supplied X-Request-ID header when it is made of
// letters, digits, '-' and '_' and is at most 128 bytes long; otherwise it
// generates a UUIDv4. The id is stored in the request context, echoed in the
// response header, and added to log records through LoggerExtractor:
//
//	log := logger.New(logger.WithContextExtractors(requestid.LoggerExtractor()))
//	r.Use(requestid.Middleware)
package requestid
