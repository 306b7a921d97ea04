// Package server implements the field record server.
//
// The record server keeps exactly one field definition in memory, the last
// one posted, and exposes it on a single resource:
//
//	POST /api/field   body: any JSON value
//	                  200 {"status":"ok","saved":<body>}
//	GET  /api/field   200 {"saved":<last body>}
//	                  200 {"message":"No data has been posted yet."}
//
// Bodies are not checked against any schema. An empty body is stored as {};
// a body that is not JSON is answered with 400. Nothing is persisted: a
// restart empties the slot.
//
// Concurrent writers simply overwrite each other; the slot's lock only keeps
// reads and writes memory-safe.
//
// # Usage Example
//
//	srv, err := server.New(&server.Config{Port: 4000, LogLevel: "info"})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	// Start blocks until SIGINT/SIGTERM
//	if err := srv.Start(); err != nil {
//	    log.Fatal(err)
//	}
//
// Every response allows any origin (CORS) and every request is logged.
package server
