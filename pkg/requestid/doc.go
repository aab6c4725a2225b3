// Package requestid attaches a correlation id to every HTTP request.
//
// Middleware reuses a well-formed "X-Request-ID" header sent by the client
// or generates a UUID, stores it in the request context and echoes it in the
// response. LoggerExtractor plugs the id into pkg/logger so every record
// logged with the request context carries a request_id attribute:
//
//	log := logger.New(logger.WithContextExtractors(requestid.LoggerExtractor()))
//	http.ListenAndServe(":8080", requestid.Middleware(mux))
package requestid
