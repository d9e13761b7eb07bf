// Package api serves species lookups over HTTP.
//
// Routes:
//
//	GET /pokemon/{name}             normalized summary
//	GET /pokemon/translated/{name}  summary with a stylised description
//	GET /healthz                    liveness and build version
//
// Successful lookups return the summary as JSON:
//
//	{"name":"mewtwo","description":"...","habitat":"rare","islegendary":true}
//
// Failures return {"message": "..."} with a status derived from the error
// code: NOT_FOUND is 404, INVALID_INPUT is 400, upstream and network
// failures are 500, a request deadline is 504 and a client disconnect is 499.
// Anything else is a 500 with a generic message. Every failure is logged
// with its request ID.
package api
