// Package clientip resolves the address of the client behind an HTTP request.
//
// Forwarding headers are only consulted when the caller names them, so a
// server exposed directly to clients keeps using RemoteAddr:
//
//	r.Use(clientip.Middleware())                         // direct
//	r.Use(clientip.Middleware(clientip.ProxyHeaders...)) // behind a proxy
//
// The resolved address is available through FromContext and can be attached
// to log records with LoggerExtractor.
package clientip
